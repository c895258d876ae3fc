// curves-import carga un dataset (archivo o URL, json/yaml) en la tabla aging_curves.
//
//	DB_DRIVER=sqlite DB_DSN=file:curves.db curves-import ./curves.yaml
package main

import (
	"context"
	"os"
	"time"

	mem "pet-human-age/internal/adapters/storage/memory"
	"pet-human-age/internal/adapters/storage/sqldb"
	"pet-human-age/internal/domain/agingcurves"
	"pet-human-age/internal/platform/config"
	"pet-human-age/internal/platform/datafile"
	"pet-human-age/internal/platform/httpclient"
	"pet-human-age/internal/platform/logger"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Log)

	if cfg.DBDSN == "" {
		log.Error("DB_DSN is required", nil)
		os.Exit(2)
	}

	source := cfg.CurvesSource
	if len(os.Args) > 1 {
		source = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var (
		ds  agingcurves.Dataset
		err error
	)
	if source == "" {
		ds, err = mem.DefaultCurves()
	} else {
		ds, err = datafile.NewRepo(source, httpclient.New(30*time.Second)).Load(ctx)
	}
	if err != nil {
		log.Error("read dataset", map[string]any{"source": source, "err": err})
		os.Exit(1)
	}

	db, err := sqldb.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Error("open db", map[string]any{"err": err})
		os.Exit(1)
	}
	defer db.Close()

	if err := sqldb.Import(ctx, db, cfg.DBDriver, ds); err != nil {
		log.Error("import", map[string]any{"err": err})
		os.Exit(1)
	}

	log.Info("aging curves imported", map[string]any{
		"records": len(ds),
		"species": agingcurves.ListSpecies(ds),
	})
}
