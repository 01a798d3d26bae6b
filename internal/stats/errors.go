package stats

import (
	"fmt"
	"strings"
)

// ValidationError reports a single rejected field so the UI can
// highlight the offending input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationErrors collects every rejected field of one submission.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}
	return "invalid stat log: " + strings.Join(parts, "; ")
}

// CooldownActiveError is returned when a submission arrives before the
// cooldown window has elapsed.
type CooldownActiveError struct {
	RemainingDays int
}

func (e *CooldownActiveError) Error() string {
	if e.RemainingDays == 1 {
		return "cooldown active: come back in 1 day"
	}
	return fmt.Sprintf("cooldown active: come back in %d days", e.RemainingDays)
}
