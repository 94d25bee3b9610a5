package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is one field-level violation. Violations accumulate within
// a request and are reported together, never fail-fast.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages flattens the list for the response envelope.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return msgs
}

// NotFoundError means no row matched the lead id. The operation performed no
// write.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lead %s not found", e.ID)
}

// BackendError wraps a failed remote-store call. The message carries the
// underlying error text for operator diagnosis, never credentials.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("lead store unavailable (%s): %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
