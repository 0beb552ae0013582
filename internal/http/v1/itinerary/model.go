package itinerary

// RootData is the greeting returned from the API root.
type RootData struct {
	Message string `json:"message" doc:"Greeting" example:"Hello from the Travel Planner API!"`
}

// ItineraryData holds the generated itinerary.
type ItineraryData struct {
	ItineraryText string `json:"itinerary_text" doc:"Generated itinerary text"`
}
