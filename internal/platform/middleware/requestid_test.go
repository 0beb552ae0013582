package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func serveRequestID(t *testing.T, incoming string) (captured string, header string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	})).ServeHTTP(rec, req)
	return captured, rec.Header().Get(chimiddleware.RequestIDHeader)
}

func TestRequestIDGeneratesUUID(t *testing.T) {
	captured, header := serveRequestID(t, "")

	if captured == "" || captured != header {
		t.Fatalf("expected matching generated ID, context %q header %q", captured, header)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", captured, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	captured, header := serveRequestID(t, "trip-42")
	if captured != "trip-42" || header != "trip-42" {
		t.Fatalf("expected incoming ID to be reused, context %q header %q", captured, header)
	}
}

func TestRequestIDReplacesInvalidHeader(t *testing.T) {
	for name, incoming := range map[string]string{
		"newline":   "abc\ninjected",
		"tab":       "abc\tdef",
		"non-ascii": "caf\xc3\xa9",
		"too long":  strings.Repeat("a", maxRequestIDLength+1),
	} {
		captured, _ := serveRequestID(t, incoming)
		if captured == incoming {
			t.Fatalf("%s: expected invalid ID to be replaced", name)
		}
		if _, err := uuid.Parse(captured); err != nil {
			t.Fatalf("%s: expected replacement UUID, got %q", name, captured)
		}
	}
}

func TestValidRequestIDBoundary(t *testing.T) {
	if !validRequestID(strings.Repeat("x", maxRequestIDLength)) {
		t.Fatal("expected max-length ID to be valid")
	}
	if validRequestID("") {
		t.Fatal("expected empty ID to be invalid")
	}
}
