package config

import (
	"reflect"
	"testing"

	"pet-human-age/internal/platform/logger"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg := FromLookup(lookupFrom(nil))

	if cfg.Addr != ":8080" || cfg.DBDriver != "pgx" || cfg.DBDSN != "" || cfg.CurvesSource != "" {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("swagger should default to enabled")
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"*"}) {
		t.Fatalf("unexpected cors default %v", cfg.CORSAllowedOrigins)
	}
	if cfg.Log.Level != logger.Info || cfg.Log.Format != logger.FormatText || cfg.Log.App != "pet-human-age" {
		t.Fatalf("unexpected log defaults %#v", cfg.Log)
	}
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		"PORT":                 "9090",
		"DB_DRIVER":            "sqlite",
		"DB_DSN":               "file:curves.db",
		"CURVES_SOURCE":        " ./curves.yaml ",
		"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
		"SWAGGER_ENABLED":      "false",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "json",
	}))

	if cfg.Addr != ":9090" || cfg.DBDriver != "sqlite" || cfg.DBDSN != "file:curves.db" {
		t.Fatalf("unexpected db/addr %#v", cfg)
	}
	if cfg.CurvesSource != "./curves.yaml" {
		t.Fatalf("expected trimmed source, got %q", cfg.CurvesSource)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled")
	}
	if cfg.Log.Level != logger.Debug || cfg.Log.Format != logger.FormatJSON {
		t.Fatalf("unexpected log options %#v", cfg.Log)
	}
}
