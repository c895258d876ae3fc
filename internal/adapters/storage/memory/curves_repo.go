package memory

import (
	"context"
	_ "embed"
	"fmt"

	"pet-human-age/internal/domain/agingcurves"
	"pet-human-age/internal/platform/datafile"
)

//go:embed default_curves.json
var defaultCurvesJSON []byte

type curvesRepo struct {
	ds agingcurves.Dataset
}

// NewCurvesRepo sirve un dataset fijo (tests, modo dev).
func NewCurvesRepo(ds agingcurves.Dataset) agingcurves.Repository {
	owned := make(agingcurves.Dataset, len(ds))
	copy(owned, ds)
	return &curvesRepo{ds: owned}
}

// NewDefaultCurvesRepo usa el dataset embebido en el binario.
func NewDefaultCurvesRepo() (agingcurves.Repository, error) {
	ds, err := DefaultCurves()
	if err != nil {
		return nil, err
	}
	return &curvesRepo{ds: ds}, nil
}

// DefaultCurves parsea y valida el dataset embebido.
func DefaultCurves() (agingcurves.Dataset, error) {
	ds, err := datafile.Parse(defaultCurvesJSON, datafile.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded curves: %w", err)
	}
	return ds, nil
}

func (r *curvesRepo) Load(ctx context.Context) (agingcurves.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(agingcurves.Dataset, len(r.ds))
	copy(out, r.ds)
	return out, nil
}
