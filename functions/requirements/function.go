// Package requirements serves the travel requirements endpoints as an HTTP Cloud Function.
package requirements

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

const (
	msgGet      = "Get travel requirements"
	msgCreate   = "Create travel requirements"
	msgNotFound = "resource not found"

	maxBodyBytes = 1 << 20
)

func init() {
	functions.HTTP("Requirements", handler)
}

// Response is the success payload.
type Response struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// The function is deployed at its own URL, so only the root path is served.
func handler(w http.ResponseWriter, r *http.Request) {
	if p := strings.TrimSuffix(r.URL.Path, "/"); p != "" {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgNotFound})
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		writeJSON(w, http.StatusOK, Response{Message: msgGet})
	case http.MethodPost:
		if err := discardJSON(r); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, Response{Message: msgCreate})
	default:
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgNotFound})
	}
}

// discardJSON checks that a non-empty JSON body is well-formed. Bodies of any other media
// type are not inspected.
func discardJSON(r *http.Request) error {
	if r.Body == nil || !isJSON(r.Header.Get("Content-Type")) {
		return nil
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	var doc any
	return json.Unmarshal(raw, &doc)
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
