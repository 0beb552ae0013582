package requirements

// GetOutput is the response for GET /api/requirements.
type GetOutput struct {
	Body Data
}

// CreateOutput is the response for POST /api/requirements.
type CreateOutput struct {
	Body Data
}
