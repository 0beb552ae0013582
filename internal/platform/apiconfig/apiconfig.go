// Package apiconfig builds the huma configuration shared by the server and handler tests.
package apiconfig

import (
	"github.com/danielgtaylor/huma/v2"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
)

const (
	Title    = "Travel Planner API"
	DocsPath = "/api-docs"
)

// New returns huma.DefaultConfig without the schema link transformer, so response bodies
// carry exactly the fields of their output types (no "$schema" member, no describedBy Link).
// CBOR is documented next to JSON for every request and response body.
func New(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.DocsPath = DocsPath
	cfg.CreateHooks = nil
	cfg.OnAddOperation = append(cfg.OnAddOperation, documentCBOR)
	return cfg
}

func documentCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
