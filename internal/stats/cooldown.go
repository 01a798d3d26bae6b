package stats

import (
	"time"

	"gametracker/internal/constants"
)

// SubmissionState is the logging state of one tracked game.
type SubmissionState string

const (
	StateReady   SubmissionState = "ready"
	StateCooling SubmissionState = "cooling"
)

// CooldownStatus is the decision of the cooldown policy for one tracked
// game at one point in time.
type CooldownStatus struct {
	Allowed       bool
	RemainingDays int
}

func (s CooldownStatus) State() SubmissionState {
	if s.Allowed {
		return StateReady
	}
	return StateCooling
}

// Cooldown decides whether a new stat log may be submitted given the
// creation time of the most recent log (nil when no log exists) and the
// current time.
//
// Elapsed time is measured in whole days: a prior log less than 24h old
// counts as 0 elapsed days, exactly 7*24h counts as 7 and is allowed.
// A prior log in the future (clock skew between client and server)
// counts as 0 elapsed days rather than going negative.
func Cooldown(lastLoggedAt *time.Time, now time.Time) CooldownStatus {
	if lastLoggedAt == nil {
		return CooldownStatus{Allowed: true}
	}

	elapsed := now.Sub(*lastLoggedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	elapsedWholeDays := int(elapsed / (24 * time.Hour))

	remaining := constants.CooldownWindowDays - elapsedWholeDays
	if remaining <= 0 {
		return CooldownStatus{Allowed: true}
	}
	return CooldownStatus{Allowed: false, RemainingDays: remaining}
}

// CooldownCutoff returns the creation-time threshold equivalent to
// Cooldown: a submission at now is allowed iff no log was created after
// the cutoff. Used by the storage layer to make the check-then-insert
// atomic in a single guarded statement.
func CooldownCutoff(now time.Time) time.Time {
	return now.Add(-constants.CooldownWindowDays * 24 * time.Hour)
}
