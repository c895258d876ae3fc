package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"pet-human-age/internal/domain/agingcurves"
)

type CurvesRepo struct {
	db     *sql.DB
	driver string
}

func NewCurvesRepo(db *sql.DB, driver string) *CurvesRepo {
	d, err := normalizeDriver(driver)
	if err != nil {
		d = DriverPostgres
	}
	return &CurvesRepo{db: db, driver: d}
}

// Load trae todas las curvas en el orden del dataset (position).
func (r *CurvesRepo) Load(ctx context.Context) (agingcurves.Dataset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			species, breed,
			first_phase_years, first_phase_value, later_per_year
		FROM aging_curves
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(agingcurves.Dataset, 0)
	for rows.Next() {
		var rec agingcurves.AgingRecord
		if err := rows.Scan(
			&rec.Species,
			&rec.Breed,
			&rec.FirstPhaseYears,
			&rec.FirstPhaseValue,
			&rec.LaterPerYear,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

// ReplaceAll reemplaza el contenido de la tabla con ds en una transacción.
// La posición de cada fila es su índice en ds.
func (r *CurvesRepo) ReplaceAll(ctx context.Context, ds agingcurves.Dataset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM aging_curves`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO aging_curves (
			position, species, breed,
			first_phase_years, first_phase_value, later_per_year
		) VALUES (%s,%s,%s,%s,%s,%s)
	`, r.ph(1), r.ph(2), r.ph(3), r.ph(4), r.ph(5), r.ph(6)))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range ds {
		if _, err := stmt.ExecContext(ctx,
			i,
			rec.Species,
			rec.Breed,
			rec.FirstPhaseYears,
			rec.FirstPhaseValue,
			rec.LaterPerYear,
		); err != nil {
			return fmt.Errorf("insert row %d (%s/%s): %w", i, rec.Species, rec.Breed, err)
		}
	}

	return tx.Commit()
}

// Import deja la tabla aging_curves (creándola si falta) con exactamente ds.
func Import(ctx context.Context, db *sql.DB, driver string, ds agingcurves.Dataset) error {
	if err := Migrate(ctx, db); err != nil {
		return err
	}
	if err := NewCurvesRepo(db, driver).ReplaceAll(ctx, ds); err != nil {
		return fmt.Errorf("import aging curves: %w", err)
	}
	return nil
}

// ph devuelve el placeholder n según el driver ($n en Postgres, ? en SQLite).
func (r *CurvesRepo) ph(n int) string {
	if r.driver == DriverSQLite {
		return "?"
	}
	return "$" + strconv.Itoa(n)
}
