package shared

import "errors"

// Store failure taxonomy. Both are surfaced to callers as a generic fetch
// failure; the split exists for logging and tests.
var (
	// ErrStoreUnavailable indicates a transport or backend failure on a store operation
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrQueryRejected indicates a malformed or unsupported query shape,
	// e.g. a missing composite index
	ErrQueryRejected = errors.New("query rejected")
)

// ValidationError reports a submission that failed format rules. It is
// returned synchronously, before any store interaction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return "validation failed: " + e.Field + ": " + e.Reason
}

// Is implements the errors.Is interface for ValidationError
func (e ValidationError) Is(target error) bool {
	t, ok := target.(ValidationError)
	if !ok {
		return false
	}
	// An empty target field matches any validation error
	if t.Field == "" {
		return true
	}
	return e.Field == t.Field
}
