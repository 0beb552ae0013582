// Package routes wires every API operation into a huma API.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/travel-planner-api/internal/http/v1/itinerary"
	"github.com/janisto/travel-planner-api/internal/http/v1/requirements"
	itinerarysvc "github.com/janisto/travel-planner-api/internal/service/itinerary"
	reqsvc "github.com/janisto/travel-planner-api/internal/service/requirements"
)

// Services are the domain services the handlers depend on.
type Services struct {
	Requirements reqsvc.Service
	Itinerary    itinerarysvc.Service
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, svc Services) {
	requirements.Register(api, svc.Requirements)
	itinerary.Register(api, svc.Itinerary)
}
