package requirements

// CreateInput takes the body unparsed so any media type is accepted. Only JSON bodies are
// checked for well-formedness.
type CreateInput struct {
	ContentType string `header:"Content-Type" doc:"Media type of the body"`
	RawBody     []byte
}
