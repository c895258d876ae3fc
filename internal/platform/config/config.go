// Package config junta la configuración por env del servicio.
package config

import (
	"os"
	"strconv"
	"strings"

	"pet-human-age/internal/platform/logger"
)

type Config struct {
	Addr string

	// DB opcional: si DSN viene, las curvas se leen de SQL.
	DBDriver string
	DBDSN    string

	// Archivo o URL (json/yaml). Vacío => dataset embebido.
	CurvesSource string

	CORSAllowedOrigins []string
	SwaggerEnabled     bool

	Log logger.Options
}

// FromEnv lee:
// PORT, DB_DRIVER (pgx|sqlite), DB_DSN, CURVES_SOURCE, CORS_ALLOWED_ORIGINS, SWAGGER_ENABLED,
// LOG_LEVEL, LOG_FORMAT, APP_NAME.
func FromEnv() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup permite inyectar el origen de las variables (tests).
func FromLookup(lookup func(string) (string, bool)) Config {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Addr:               ":" + get("PORT", "8080"),
		DBDriver:           get("DB_DRIVER", "pgx"),
		DBDSN:              get("DB_DSN", ""),
		CurvesSource:       get("CURVES_SOURCE", ""),
		CORSAllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:     true,
		Log: logger.Options{
			Level:  logger.ParseLevel(get("LOG_LEVEL", "")),
			Format: logger.ParseFormat(get("LOG_FORMAT", "")),
			App:    get("APP_NAME", "pet-human-age"),
		},
	}

	if b, err := strconv.ParseBool(get("SWAGGER_ENABLED", "true")); err == nil {
		cfg.SwaggerEnabled = b
	}
	return cfg
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
