package cdxingest

import "errors"

var (
	// ErrMalformedDocument is returned when a document is not well-formed
	// JSON or XML.
	ErrMalformedDocument = errors.New("malformed document")

	ErrUnsupportedFormat      = errors.New("unsupported serialization")
	ErrInvalidDuplicatePolicy = errors.New("invalid duplicate policy")
)
