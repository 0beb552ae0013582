package itinerary

// GenerateInput is the request body for itinerary generation.
type GenerateInput struct {
	Body struct {
		TravelDates      string `json:"travel_dates" doc:"Travel dates, free text" example:"2025-03-01 to 2025-03-03"`
		NumberOfAdults   int    `json:"number_of_adults" doc:"Adults in the party" minimum:"0" example:"2"`
		NumberOfChildren int    `json:"number_of_children" doc:"Children in the party" minimum:"0" example:"2"`
		ChildrenAges     []int  `json:"children_ages" doc:"Age of each child" example:"[5,9]"`
		Preferences      string `json:"preferences" doc:"Interests and constraints" example:"thrill rides, no seafood"`
	}
}
