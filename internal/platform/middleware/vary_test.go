package middleware

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
)

func TestVaryAppendsAccept(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Add("Vary", "Origin")
		w.WriteHeader(http.StatusOK)
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	values := resp.Header().Values("Vary")
	if !slices.Contains(values, "Accept") || !slices.Contains(values, "Origin") {
		t.Fatalf("expected Vary to contain Accept and Origin, got %v", values)
	}
}
