package itinerary

import (
	"fmt"
	"strconv"
	"strings"
)

const systemPrompt = "You are a helpful Disney World trip planner. " +
	"Provide concise, friendly, and accurate itineraries."

func userPrompt(req Request) string {
	ages := make([]string, len(req.ChildrenAges))
	for i, age := range req.ChildrenAges {
		ages[i] = strconv.Itoa(age)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Travel Dates: %s\n", req.TravelDates)
	fmt.Fprintf(&b, "Number of Adults: %d\n", req.NumberOfAdults)
	fmt.Fprintf(&b, "Number of Children: %d\n", req.NumberOfChildren)
	fmt.Fprintf(&b, "Children Ages: [%s]\n", strings.Join(ages, ", "))
	fmt.Fprintf(&b, "Preferences: %s\n\n", req.Preferences)
	b.WriteString("Create a 3-day itinerary for Disney World Florida, including recommended parks,\n")
	b.WriteString("rides suitable for these ages, meal options, and any useful tips.\n")
	return b.String()
}
