package services

import "fmt"

// ValidationError reports caller-supplied fields that failed a required-field
// or shape check. Handlers map it to HTTP 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation error" }

// UpstreamError wraps a failure of an external collaborator (Gemini or the
// SMTP transport). The wrapped error is logged server-side only; callers get
// a generic message.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }

// TimeoutError marks an external call that hit its explicit deadline.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string { return fmt.Sprintf("%s: deadline exceeded", e.Op) }
