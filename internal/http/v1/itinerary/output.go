package itinerary

// RootOutput is the response for GET /.
type RootOutput struct {
	Body RootData
}

// GenerateOutput is the response for POST /generate-itinerary.
type GenerateOutput struct {
	Body ItineraryData
}
