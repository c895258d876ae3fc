package agingcurves

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

// -------------------------
// Test repo
// -------------------------

type testRepo struct {
	ds    Dataset
	err   error
	loads atomic.Int32
}

func (r *testRepo) Load(ctx context.Context) (Dataset, error) {
	r.loads.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return r.ds, nil
}

type testRecorder struct {
	mu    sync.Mutex
	found map[string]int
	miss  map[string]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{found: map[string]int{}, miss: map[string]int{}}
}

func (r *testRecorder) ObserveConversion(species string, found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if found {
		r.found[species]++
		return
	}
	r.miss[species]++
}

// -------------------------
// Tests
// -------------------------

func TestService_HumanAge_FoundAndNotFound(t *testing.T) {
	rec := newTestRecorder()
	svc := NewService(&testRepo{ds: labradorOnly()}).WithRecorder(rec)

	c, err := svc.HumanAge(context.Background(), AgeQuery{Species: "Dog", Breed: "Labrador", PetAge: 5})
	if err != nil {
		t.Fatalf("HumanAge error: %v", err)
	}
	if c.HumanAge != 33 {
		t.Fatalf("expected 33, got %v", c.HumanAge)
	}

	_, err = svc.HumanAge(context.Background(), AgeQuery{Species: "Cat", Breed: "Siamese", PetAge: 3})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if rec.found["Dog"] != 1 || rec.miss["Cat"] != 1 {
		t.Fatalf("unexpected recorder state found=%v miss=%v", rec.found, rec.miss)
	}
}

func TestService_HumanAge_RequiresSpeciesAndBreed(t *testing.T) {
	repo := &testRepo{ds: labradorOnly()}
	svc := NewService(repo)

	_, err := svc.HumanAge(context.Background(), AgeQuery{Species: "Dog", Breed: "  ", PetAge: 1})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.loads.Load() != 0 {
		t.Fatalf("dataset should not load for invalid input")
	}
}

func TestService_LoadsOnce_Concurrent(t *testing.T) {
	repo := &testRepo{ds: mixedDataset()}
	svc := NewService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Species(context.Background()); err != nil {
				t.Errorf("Species error: %v", err)
			}
			if _, err := svc.Breeds(context.Background(), "Dog"); err != nil {
				t.Errorf("Breeds error: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := repo.loads.Load(); n != 1 {
		t.Fatalf("expected exactly 1 load, got %d", n)
	}
}

func TestService_LoadError_IsRetried(t *testing.T) {
	boom := errors.New("boom")
	repo := &testRepo{err: boom}
	svc := NewService(repo)

	if _, err := svc.Species(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}

	repo.err = nil
	repo.ds = labradorOnly()

	species, err := svc.Species(context.Background())
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if len(species) != 1 || species[0] != "Dog" {
		t.Fatalf("unexpected species %v", species)
	}
	if n := repo.loads.Load(); n != 2 {
		t.Fatalf("expected 2 loads, got %d", n)
	}
}

func TestService_DatasetIsIsolatedFromRepo(t *testing.T) {
	src := labradorOnly()
	svc := NewService(&testRepo{ds: src})

	if _, err := svc.Dataset(context.Background()); err != nil {
		t.Fatalf("Dataset error: %v", err)
	}

	// mutar el slice de origen no cambia lo que sirve el servicio
	src[0].FirstPhaseValue = 1

	c, err := svc.HumanAge(context.Background(), AgeQuery{Species: "Dog", Breed: "Labrador", PetAge: 1})
	if err != nil {
		t.Fatalf("HumanAge error: %v", err)
	}
	if c.HumanAge != 10.5 {
		t.Fatalf("expected 10.5, got %v", c.HumanAge)
	}
}

func TestService_DatasetIsIsolatedFromCallers(t *testing.T) {
	svc := NewService(&testRepo{ds: labradorOnly()})

	ds, err := svc.Dataset(context.Background())
	if err != nil {
		t.Fatalf("Dataset error: %v", err)
	}
	ds[0].FirstPhaseValue = 1000
	ds[0].Species = "Cat"

	c, err := svc.HumanAge(context.Background(), AgeQuery{Species: "Dog", Breed: "Labrador", PetAge: 1})
	if err != nil {
		t.Fatalf("HumanAge error: %v", err)
	}
	if c.HumanAge != 10.5 {
		t.Fatalf("expected 10.5 after caller mutation, got %v", c.HumanAge)
	}

	again, _ := svc.Dataset(context.Background())
	if again[0].FirstPhaseValue != 10.5 || again[0].Species != "Dog" {
		t.Fatalf("second Dataset call saw caller mutation: %#v", again[0])
	}
}
