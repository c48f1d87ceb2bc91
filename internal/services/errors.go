package services

import "fmt"

// ValidationError reports a malformed required field on a create or update
// request. It is the only error the domain layer raises besides duplicate
// ids; missing-id updates and deletes are silent no-ops.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "must not be empty"}
}
