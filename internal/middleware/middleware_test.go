package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-human-age/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

type testObserver struct {
	route  string
	status int
}

func (o *testObserver) ObserveRequest(method, route string, status int, seconds float64) {
	o.route = route
	o.status = status
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected generated id echoed, ctx=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("expected incoming id kept, got %q", seen)
	}
}

func TestAccessLog_LogsRoutePatternAndStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Writer: &buf})
	obs := &testObserver{}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(log, obs))
	r.Get("/species/{species}/breeds", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/species/Dog/breeds", nil))

	if obs.route != "/species/{species}/breeds" || obs.status != http.StatusNotFound {
		t.Fatalf("unexpected observation %#v", obs)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["status"] != float64(404) || entry["path"] != "/species/Dog/breeds" {
		t.Fatalf("unexpected log entry %v", entry)
	}
	if entry["request_id"] == "" {
		t.Fatalf("missing request id in %v", entry)
	}
}
