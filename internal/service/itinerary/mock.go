package itinerary

import (
	"context"
	"fmt"
	"sync"
)

// MockService implements Service for unit tests. It echoes the party size unless Err is set.
type MockService struct {
	mu       sync.Mutex
	Err      error
	requests []Request
}

// NewMockService creates a mock that answers every request with a canned itinerary.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) Generate(_ context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	return fmt.Sprintf("Day 1: Magic Kingdom for %d adults and %d children", req.NumberOfAdults, req.NumberOfChildren), nil
}

// Requests returns the requests received so far.
func (m *MockService) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

var _ Service = (*MockService)(nil)
