package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRouter(rec *Recorder) chi.Router {
	router := chi.NewRouter()
	router.Use(rec.Middleware())
	router.Get("/api/requirements", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	router.Get("/trips/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	router.Handle("/metrics", rec.Handler())
	return router
}

func TestMiddlewareCountsByRoutePattern(t *testing.T) {
	rec := New()
	router := newTestRouter(rec)

	for range 3 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/requirements", nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/trips/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/trips/2", nil))

	if got := testutil.ToFloat64(rec.requests.WithLabelValues("GET", "/api/requirements", "200")); got != 3 {
		t.Fatalf("expected 3 requirement requests, got %v", got)
	}
	if got := testutil.ToFloat64(rec.requests.WithLabelValues("GET", "/trips/{id}", "202")); got != 2 {
		t.Fatalf("expected 2 trip requests under one pattern, got %v", got)
	}
}

func TestMiddlewareLabelsUnmatchedRoutes(t *testing.T) {
	rec := New()
	router := newTestRouter(rec)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if got := testutil.ToFloat64(rec.requests.WithLabelValues("GET", unmatchedRoute, "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	rec := New()
	router := newTestRouter(rec)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/requirements", nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{
		`http_requests_total{method="GET",route="/api/requirements",status="200"} 1`,
		"http_request_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected metrics output to contain %q", want)
		}
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	first, second := New(), New()
	newTestRouter(first).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/requirements", nil))

	if got := testutil.CollectAndCount(second.requests); got != 0 {
		t.Fatalf("expected no series in second recorder, got %d", got)
	}
	if first.Registry() == second.Registry() {
		t.Fatal("expected separate registries")
	}
}
