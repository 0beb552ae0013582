// Package respond is the single boundary where errors become HTTP responses.
//
// Every error the API emits, whether raised by huma (body parsing, validation,
// content negotiation), returned by a handler, produced by a panic or by an
// unmatched route, is rendered as {"error": "<message>"}.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/travel-planner-api/internal/platform/logging"
)

const (
	MsgNotFound      = "resource not found"
	msgInternalError = "internal server error"
)

// ErrorBody is the response body for every failed request.
type ErrorBody struct {
	Message string `json:"error" doc:"Error message" example:"resource not found"`
	status  int
}

// Error implements error.
func (e *ErrorBody) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *ErrorBody) GetStatus() int {
	return e.status
}

var _ huma.StatusError = (*ErrorBody)(nil)

var installOnce sync.Once

// Install replaces huma's error constructors so framework errors use ErrorBody.
// It must run before operations are registered; huma derives the documented error schema
// from the constructor.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return newError(status, msg, errs)
		}
		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			ctx := context.Background()
			if hctx != nil {
				ctx = hctx.Context()
			}
			se := newError(status, msg, errs)
			logError(ctx, se, errs)
			return se
		}
	})
}

// Error builds an ErrorBody with an explicit status and logs it against ctx.
func Error(ctx context.Context, status int, msg string, errs ...error) huma.StatusError {
	se := newError(status, msg, errs)
	logError(ctx, se, errs)
	return se
}

// FromError maps a handler result error to a status error. Status errors pass through
// unchanged; anything else is a 500 whose message is the error text.
func FromError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var se huma.StatusError
	if errors.As(err, &se) {
		return se
	}
	return Error(ctx, http.StatusInternalServerError, err.Error(), err)
}

// Write renders an ErrorBody as JSON outside of huma (chi fallbacks, recoverer).
func Write(w http.ResponseWriter, status int, msg string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(&ErrorBody{Message: msg, status: status})
}

// NotFoundHandler answers unmatched paths and unmatched methods with 404.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := Write(w, http.StatusNotFound, MsgNotFound); err != nil {
			applog.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// Recoverer converts panics into 500 responses carrying the panic value as the message.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				var err error
				switch v := rec.(type) {
				case error:
					err = v
				default:
					err = fmt.Errorf("%v", v)
				}
				msg := err.Error()
				if strings.TrimSpace(msg) == "" {
					msg = msgInternalError
				}
				applog.LogError(r.Context(), "panic recovered", err, zap.ByteString("stack", debug.Stack()))
				if writeErr := Write(w, http.StatusInternalServerError, msg); writeErr != nil {
					applog.LogError(r.Context(), "failed to render internal error", writeErr)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func newError(status int, msg string, errs []error) *ErrorBody {
	return &ErrorBody{Message: message(status, msg, errs), status: status}
}

// message picks the client-visible text. Server errors expose the cause, client errors
// append huma's field-level details so callers can see which input was rejected.
func message(status int, msg string, errs []error) string {
	causes := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		var detailer huma.ErrorDetailer
		if errors.As(err, &detailer) {
			if d := detailer.ErrorDetail(); d != nil {
				if d.Location != "" {
					causes = append(causes, d.Location+": "+d.Message)
				} else {
					causes = append(causes, d.Message)
				}
				continue
			}
		}
		causes = append(causes, err.Error())
	}

	msg = strings.TrimSpace(msg)
	switch {
	case status >= 500 && len(causes) > 0 && (msg == "" || msg == "unexpected error occurred"):
		return strings.Join(causes, "; ")
	case msg == "":
		if text := http.StatusText(status); text != "" {
			msg = text
		} else {
			msg = fmt.Sprintf("HTTP %d", status)
		}
	}
	if status >= 400 && status < 500 && len(causes) > 0 {
		return msg + ": " + strings.Join(causes, "; ")
	}
	return msg
}

func logError(ctx context.Context, se *ErrorBody, errs []error) {
	fields := []zap.Field{
		zap.Int("status", se.status),
		zap.String("reason", se.Message),
	}
	switch {
	case se.status >= 500:
		applog.LogError(ctx, "request failed", errors.Join(errs...), fields...)
	case se.status >= 400:
		applog.LogWarn(ctx, "request rejected", fields...)
	}
}
