package mail

import "fmt"

// UsageError reports a configuration or usage problem in the calling
// application, as opposed to a transport failure. Fields are structured so
// callers and tests can inspect them independently of the rendered message.
type UsageError struct {
	// Identifier is a stable, machine-readable tag for this error.
	Identifier string
	// Reason describes what went wrong, for humans.
	Reason string
	// PossibleCauses lists likely reasons the error occurred.
	PossibleCauses []string
	// SuggestedFixes lists actions that typically resolve the error.
	SuggestedFixes []string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Identifier, e.Reason)
}
