// Package itinerary generates trip itineraries through a chat completions API.
package itinerary

import (
	"context"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrNotConfigured = errors.New("itinerary generation is not configured")
	ErrRateLimited   = errors.New("itinerary provider rate limit exceeded")
	ErrUnauthorized  = errors.New("itinerary provider rejected credentials")
	ErrUpstream      = errors.New("itinerary provider error")
)

// UpstreamErrorKind classifies provider failures.
type UpstreamErrorKind string

const (
	UpstreamErrorKindRateLimited  UpstreamErrorKind = "rate_limited"
	UpstreamErrorKindUnauthorized UpstreamErrorKind = "unauthorized"
	UpstreamErrorKindUpstream     UpstreamErrorKind = "upstream"
)

// UpstreamError carries provider response metadata for error mapping.
type UpstreamError struct {
	Kind       UpstreamErrorKind
	Status     int
	RetryAfter string
	Detail     string
	cause      error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return ErrUpstream.Error()
	}
	msg := fmt.Sprintf("itinerary provider error (kind=%s status=%d)", e.Kind, e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap enables errors.Is against the sentinel errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Request describes the party and trip an itinerary is generated for.
type Request struct {
	TravelDates      string
	NumberOfAdults   int
	NumberOfChildren int
	ChildrenAges     []int
	Preferences      string
}

// Service defines itinerary operations.
type Service interface {
	Generate(ctx context.Context, req Request) (string, error)
}
