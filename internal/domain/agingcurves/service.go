package agingcurves

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("aging curve not found")
)

// Recorder recibe el resultado de cada conversión (métricas).
type Recorder interface {
	ObserveConversion(species string, found bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveConversion(string, bool) {}

type Service struct {
	repo     Repository
	recorder Recorder

	mu      sync.Mutex
	dataset atomic.Pointer[Dataset]
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		recorder: nopRecorder{},
	}
}

// WithRecorder reemplaza el recorder (nil = sin métricas).
func (s *Service) WithRecorder(r Recorder) *Service {
	if r == nil {
		r = nopRecorder{}
	}
	s.recorder = r
	return s
}

// Dataset devuelve una copia: el caller puede modificarla sin afectar al servicio.
func (s *Service) Dataset(ctx context.Context) (Dataset, error) {
	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make(Dataset, len(ds))
	copy(out, ds)
	return out, nil
}

// load carga el dataset la primera vez y luego lo sirve sin locks.
// Si la carga falla no se cachea el error: el próximo llamado reintenta.
// El slice devuelto es compartido y no debe salir del paquete.
func (s *Service) load(ctx context.Context) (Dataset, error) {
	if ds := s.dataset.Load(); ds != nil {
		return *ds, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// otro goroutine pudo cargarlo mientras esperábamos el lock
	if ds := s.dataset.Load(); ds != nil {
		return *ds, nil
	}

	ds, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aging curves: %w", err)
	}

	// copia propia: el repo puede reutilizar su slice
	owned := make(Dataset, len(ds))
	copy(owned, ds)
	s.dataset.Store(&owned)

	return owned, nil
}

func (s *Service) Species(ctx context.Context) ([]string, error) {
	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return ListSpecies(ds), nil
}

func (s *Service) Breeds(ctx context.Context, species string) ([]string, error) {
	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return ListBreeds(species, ds), nil
}

// HumanAge resuelve la consulta. Species y breed son obligatorios; la edad no se valida acá.
func (s *Service) HumanAge(ctx context.Context, q AgeQuery) (Conversion, error) {
	if strings.TrimSpace(q.Species) == "" || strings.TrimSpace(q.Breed) == "" {
		return Conversion{}, ErrInvalidInput
	}

	ds, err := s.load(ctx)
	if err != nil {
		return Conversion{}, err
	}

	human, ok := ConvertAge(q.Species, q.Breed, q.PetAge, ds)
	s.recorder.ObserveConversion(q.Species, ok)
	if !ok {
		return Conversion{}, ErrNotFound
	}

	return Conversion{
		Species:  q.Species,
		Breed:    q.Breed,
		PetAge:   q.PetAge,
		HumanAge: human,
	}, nil
}
