package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveConversion_CountsByOutcome(t *testing.T) {
	m := New()

	m.ObserveConversion("Dog", true)
	m.ObserveConversion("Dog", true)
	m.ObserveConversion("Cat", false)

	if got := testutil.ToFloat64(m.conversions.WithLabelValues("Dog", "found")); got != 2 {
		t.Fatalf("expected 2 Dog found, got %v", got)
	}
	if got := testutil.ToFloat64(m.conversions.WithLabelValues("Cat", "not_found")); got != 1 {
		t.Fatalf("expected 1 Cat not_found, got %v", got)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveConversion("Dog", true)
	m.ObserveRequest("GET", "/species", 200, 0.01)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{"pethumanage_conversions_total", "pethumanage_http_request_duration_seconds"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %s in metrics output", want)
		}
	}
}

func TestLabels_StayBoundedForClientInput(t *testing.T) {
	m := New()

	for i := 0; i < 50; i++ {
		junk := strings.Repeat("x", i+1)
		m.ObserveConversion(junk, false)
		m.ObserveRequest("M"+junk, "", 404, 0.001)
	}

	if n := testutil.CollectAndCount(m.conversions); n != 1 {
		t.Fatalf("expected 1 conversions series, got %d", n)
	}
	if n := testutil.CollectAndCount(m.requests); n != 1 {
		t.Fatalf("expected 1 request series, got %d", n)
	}
	if got := testutil.ToFloat64(m.conversions.WithLabelValues(UnknownSpecies, "not_found")); got != 50 {
		t.Fatalf("expected 50 misses under %q, got %v", UnknownSpecies, got)
	}
}
