package monitor

import (
	"errors"
	"fmt"
)

// ValidationError rejects malformed ingest input at the boundary; it is the
// only error class surfaced synchronously to the ingestion caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
