package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// AuditEvent describes a state-changing request. ActorID and ResourceID are optional;
// the API is unauthenticated and stores nothing, so they are usually empty.
type AuditEvent struct {
	Action     string
	ActorID    string
	Resource   string
	ResourceID string
	Result     string
	Details    map[string]any
}

// LogAudit writes e as an "audit event" entry with audit.* fields. Failures log at WARNING.
func LogAudit(ctx context.Context, e AuditEvent) {
	fields := []zap.Field{
		zap.String("audit.action", e.Action),
		zap.String("audit.resource", e.Resource),
		zap.String("audit.result", e.Result),
	}
	if e.ActorID != "" {
		fields = append(fields, zap.String("audit.actor_id", e.ActorID))
	}
	if e.ResourceID != "" {
		fields = append(fields, zap.String("audit.resource_id", e.ResourceID))
	}
	if len(e.Details) > 0 {
		fields = append(fields, zap.Any("audit.details", e.Details))
	}

	logger := LoggerFromContext(ctx)
	if e.Result == AuditFailure {
		logger.Warn("audit event", fields...)
		return
	}
	logger.Info("audit event", fields...)
}
