package service

import (
	"errors"
	"fmt"
)

// Validation failure reasons.
const (
	ReasonMissingField     = "missing_required_field"
	ReasonInvalidTime      = "invalid_time"
	ReasonInvalidTimeRange = "invalid_time_range"
	ReasonInvalidStatus    = "invalid_status"
)

// Sentinel errors for account operations. Unknown email and wrong password
// share ErrInvalidCredentials so login never reveals which one failed.
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports bad or missing caller input. Always client-fault,
// never retried.
type ValidationError struct {
	Reason string
	Field  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Field)
	}
	return e.Reason
}

// NotFoundError reports a resource that is absent or not owned by the
// caller. The two cases are deliberately indistinguishable so the API never
// leaks the existence of another user's resources.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}
