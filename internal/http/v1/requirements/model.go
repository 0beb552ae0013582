package requirements

// Data is the response payload for both requirements endpoints.
type Data struct {
	Message string `json:"message" doc:"Result message" example:"Get travel requirements"`
}
