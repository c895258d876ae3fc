package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown sql driver")

// Open abre un pool (database/sql) con pgx o sqlite y hace ping.
func Open(driver, dsn string) (*sql.DB, error) {
	driver, err := normalizeDriver(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}

func normalizeDriver(driver string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "pgx", "postgres", "postgresql":
		return DriverPostgres, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Migrate crea la tabla aging_curves si no existe. SQL compatible con Postgres y SQLite.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS aging_curves (
			position          INTEGER NOT NULL,
			species           TEXT NOT NULL,
			breed             TEXT NOT NULL,
			first_phase_years DOUBLE PRECISION NOT NULL,
			first_phase_value DOUBLE PRECISION NOT NULL,
			later_per_year    DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (species, breed)
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate aging_curves: %w", err)
	}
	return nil
}
