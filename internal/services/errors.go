package services

// Custom errors, mapped to HTTP status codes at the handler boundary.

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

// UpstreamError tags failures of the external model call, including a
// response with no extractable text. Surfaced as a 500 with the message.
type UpstreamError struct{ Message string }

func (e *UpstreamError) Error() string { return e.Message }
