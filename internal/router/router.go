package router

import (
	"net/http"

	"pet-human-age/internal/domain/agingcurves"
	"pet-human-age/internal/middleware"
	"pet-human-age/internal/platform/logger"
	"pet-human-age/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-human-age/docs" // registra el swagger para /docs
)

type Options struct {
	// Obligatorio: de dónde salen las curvas (memory, sqldb, datafile).
	Curves agingcurves.Repository

	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => se crea uno propio

	CORSAllowedOrigins []string // vacío => "*"
	SwaggerEnabled     bool
}

// NewRouter arma el handler HTTP y devuelve también el Service para que main pueda precargarlo.
func NewRouter(opts Options) (http.Handler, *agingcurves.Service) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, m))
	r.Use(chimw.Recoverer)

	// el front (selector especie/raza/edad) llama directo desde el browser
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	if opts.SwaggerEnabled {
		r.Get("/docs/*", httpSwagger.WrapHandler)
	}

	svc := agingcurves.NewService(opts.Curves).WithRecorder(m)
	agingcurves.RegisterRoutes(r, svc)

	return r, svc
}
