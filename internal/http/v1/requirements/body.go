package requirements

import (
	"bytes"
	"encoding/json"
	"mime"
	"strings"
)

// isJSON reports whether contentType names application/json or a +json suffix type.
func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// decodePayload returns the document carried by raw. JSON bodies are decoded and must be
// well-formed; other media types are returned as the raw bytes. An empty body is nil.
func decodePayload(contentType string, raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !isJSON(contentType) {
		return bytes.Clone(raw), nil
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
