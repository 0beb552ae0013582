// Package requirements produces the travel requirements messages.
package requirements

import "context"

const (
	MsgGet    = "Get travel requirements"
	MsgCreate = "Create travel requirements"
)

// Message is the result of a requirements operation.
type Message struct {
	Text string
}

// Service defines travel requirements operations.
type Service interface {
	Get(ctx context.Context) (Message, error)
	Create(ctx context.Context, payload any) (Message, error)
}

// Static answers every call with a fixed message. The create payload is not stored.
type Static struct{}

// NewStatic returns the stateless requirements service.
func NewStatic() *Static {
	return &Static{}
}

func (*Static) Get(context.Context) (Message, error) {
	return Message{Text: MsgGet}, nil
}

func (*Static) Create(context.Context, any) (Message, error) {
	return Message{Text: MsgCreate}, nil
}

var _ Service = (*Static)(nil)
