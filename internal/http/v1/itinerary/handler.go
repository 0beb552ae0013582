// Package itinerary exposes the API root and itinerary generation.
package itinerary

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/travel-planner-api/internal/platform/logging"
	"github.com/janisto/travel-planner-api/internal/platform/respond"
	itinerarysvc "github.com/janisto/travel-planner-api/internal/service/itinerary"
)

const RootMessage = "Hello from the Travel Planner API!"

// Register wires the root and itinerary routes into the provided API router.
func Register(api huma.API, svc itinerarysvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "API greeting",
		Tags:        []string{"Itinerary"},
	}, func(_ context.Context, _ *struct{}) (*RootOutput, error) {
		return &RootOutput{Body: RootData{Message: RootMessage}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "generate-itinerary",
		Method:        http.MethodPost,
		Path:          "/generate-itinerary",
		Summary:       "Generate a trip itinerary",
		Description:   "Asks the configured chat model for a 3-day itinerary tailored to the party.",
		DefaultStatus: http.StatusOK,
		Tags:          []string{"Itinerary"},
	}, func(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
		applog.LogInfo(ctx, "itinerary requested",
			zap.Int("adults", input.Body.NumberOfAdults),
			zap.Int("children", input.Body.NumberOfChildren),
		)
		text, err := svc.Generate(ctx, itinerarysvc.Request{
			TravelDates:      input.Body.TravelDates,
			NumberOfAdults:   input.Body.NumberOfAdults,
			NumberOfChildren: input.Body.NumberOfChildren,
			ChildrenAges:     input.Body.ChildrenAges,
			Preferences:      input.Body.Preferences,
		})
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &GenerateOutput{Body: ItineraryData{ItineraryText: text}}, nil
	})
}

func mapServiceError(ctx context.Context, err error) error {
	if errors.Is(err, itinerarysvc.ErrNotConfigured) {
		return respond.Error(ctx, http.StatusServiceUnavailable, "itinerary generation is not configured", err)
	}

	var upstreamErr *itinerarysvc.UpstreamError
	if errors.As(err, &upstreamErr) {
		switch upstreamErr.Kind {
		case itinerarysvc.UpstreamErrorKindRateLimited:
			rateLimitErr := huma.Error429TooManyRequests("rate limit exceeded")
			if upstreamErr.RetryAfter != "" {
				headers := make(http.Header)
				headers.Set("Retry-After", upstreamErr.RetryAfter)
				return huma.ErrorWithHeaders(rateLimitErr, headers)
			}
			return rateLimitErr
		case itinerarysvc.UpstreamErrorKindUnauthorized:
			return huma.Error502BadGateway("upstream authentication failed")
		default:
			return huma.Error502BadGateway("upstream error")
		}
	}

	return respond.FromError(ctx, err)
}
