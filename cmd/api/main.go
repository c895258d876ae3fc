package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "pet-human-age/internal/adapters/storage/memory"
	"pet-human-age/internal/adapters/storage/sqldb"
	"pet-human-age/internal/domain/agingcurves"
	"pet-human-age/internal/platform/config"
	"pet-human-age/internal/platform/datafile"
	"pet-human-age/internal/platform/httpclient"
	"pet-human-age/internal/platform/logger"
	"pet-human-age/internal/router"
)

// @title Pet Human Age API
// @version 1.0
// @description Conversión de edad de mascotas a años humanos por especie y raza.
// @BasePath /
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Log)

	repo, closeRepo, err := curvesRepository(cfg, log)
	if err != nil {
		log.Error("curves repository", map[string]any{"err": err})
		os.Exit(1)
	}
	defer closeRepo()

	h, svc := router.NewRouter(router.Options{
		Curves:             repo,
		Logger:             log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SwaggerEnabled:     cfg.SwaggerEnabled,
	})

	// precarga: un dataset inválido corta el arranque en vez del primer request
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	ds, err := svc.Dataset(ctx)
	cancel()
	if err != nil {
		log.Error("load aging curves", map[string]any{"err": err})
		os.Exit(1)
	}
	log.Info("aging curves loaded", map[string]any{
		"records": len(ds),
		"species": len(agingcurves.ListSpecies(ds)),
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", map[string]any{"err": err})
	}
	log.Info("server stopped", nil)
}

// curvesRepository elige el origen: SQL si hay DB_DSN, si no CURVES_SOURCE, si no el embebido.
func curvesRepository(cfg config.Config, log logger.Logger) (agingcurves.Repository, func(), error) {
	noop := func() {}

	switch {
	case cfg.DBDSN != "":
		db, err := sqldb.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return nil, noop, err
		}
		log.Info("using sql aging curves", map[string]any{"driver": cfg.DBDriver})
		return sqldb.NewCurvesRepo(db, cfg.DBDriver), func() { _ = db.Close() }, nil

	case cfg.CurvesSource != "":
		log.Info("using aging curves file", map[string]any{"source": cfg.CurvesSource})
		return datafile.NewRepo(cfg.CurvesSource, httpclient.New(0)), noop, nil

	default:
		log.Info("using embedded aging curves", nil)
		repo, err := mem.NewDefaultCurvesRepo()
		return repo, noop, err
	}
}
