package requirements

import (
	"context"
	"sync"
)

// MockService implements Service for unit tests. Errors set on the mock are returned
// instead of the static messages.
type MockService struct {
	mu        sync.Mutex
	GetErr    error
	CreateErr error
	payloads  []any
}

// NewMockService creates a mock that behaves like Static until errors are set.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) Get(ctx context.Context) (Message, error) {
	m.mu.Lock()
	err := m.GetErr
	m.mu.Unlock()
	if err != nil {
		return Message{}, err
	}
	return NewStatic().Get(ctx)
}

func (m *MockService) Create(ctx context.Context, payload any) (Message, error) {
	m.mu.Lock()
	m.payloads = append(m.payloads, payload)
	err := m.CreateErr
	m.mu.Unlock()
	if err != nil {
		return Message{}, err
	}
	return NewStatic().Create(ctx, payload)
}

// Payloads returns the create payloads received so far.
func (m *MockService) Payloads() []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]any, len(m.payloads))
	copy(out, m.payloads)
	return out
}

var _ Service = (*MockService)(nil)
