// Package requirements exposes the travel requirements endpoints.
package requirements

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/travel-planner-api/internal/platform/logging"
	"github.com/janisto/travel-planner-api/internal/platform/respond"
	reqsvc "github.com/janisto/travel-planner-api/internal/service/requirements"
)

// BasePath is where the requirements routes are mounted.
const BasePath = "/api/requirements"

// Register wires requirements routes into the provided API router.
func Register(api huma.API, svc reqsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-requirements",
		Method:      http.MethodGet,
		Path:        BasePath,
		Summary:     "Get travel requirements",
		Tags:        []string{"Requirements"},
	}, func(ctx context.Context, _ *struct{}) (*GetOutput, error) {
		msg, err := svc.Get(ctx)
		if err != nil {
			return nil, respond.FromError(ctx, err)
		}
		return &GetOutput{Body: Data{Message: msg.Text}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-requirements",
		Method:        http.MethodPost,
		Path:          BasePath,
		Summary:       "Create travel requirements",
		Description:   "Accepts any body. JSON bodies must be well-formed. Nothing is stored.",
		DefaultStatus: http.StatusOK,
		Tags:          []string{"Requirements"},
	}, func(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
		payload, err := decodePayload(input.ContentType, input.RawBody)
		if err != nil {
			return nil, respond.Error(ctx, http.StatusBadRequest, "malformed JSON body", err)
		}
		msg, err := svc.Create(ctx, payload)
		if err != nil {
			applog.LogAudit(ctx, applog.AuditEvent{
				Action:   "create",
				Resource: "requirements",
				Result:   applog.AuditFailure,
				Details:  map[string]any{"reason": err.Error()},
			})
			return nil, respond.FromError(ctx, err)
		}
		applog.LogAudit(ctx, applog.AuditEvent{
			Action:   "create",
			Resource: "requirements",
			Result:   applog.AuditSuccess,
			Details: map[string]any{
				"contentType": input.ContentType,
				"bytes":       len(input.RawBody),
			},
		})
		return &CreateOutput{Body: Data{Message: msg.Text}}, nil
	})
}
