package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownNoPriorLog(t *testing.T) {
	status := Cooldown(nil, time.Now())

	assert.True(t, status.Allowed)
	assert.Equal(t, 0, status.RemainingDays)
	assert.Equal(t, StateReady, status.State())
}

func TestCooldownExactWindowBoundary(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	exactly := now.Add(-7 * 24 * time.Hour)
	status := Cooldown(&exactly, now)
	assert.True(t, status.Allowed)
	assert.Equal(t, 0, status.RemainingDays)

	oneSecondShort := now.Add(-7*24*time.Hour + time.Second)
	status = Cooldown(&oneSecondShort, now)
	assert.False(t, status.Allowed)
	assert.Equal(t, 1, status.RemainingDays)
	assert.Equal(t, StateCooling, status.State())
}

func TestCooldownThreeDaysElapsed(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	prior := now.Add(-3 * 24 * time.Hour)

	status := Cooldown(&prior, now)

	assert.False(t, status.Allowed)
	assert.Equal(t, 4, status.RemainingDays)
}

func TestCooldownSameDay(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)
	prior := now.Add(-time.Hour)

	status := Cooldown(&prior, now)

	assert.False(t, status.Allowed)
	assert.Equal(t, 7, status.RemainingDays)
}

func TestCooldownClockSkew(t *testing.T) {
	// A prior log timestamped in the future counts as zero elapsed
	// time, not a negative duration.
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(2 * time.Hour)

	status := Cooldown(&future, now)

	assert.False(t, status.Allowed)
	assert.Equal(t, 7, status.RemainingDays)
}

func TestCooldownLongElapsed(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	prior := now.Add(-30 * 24 * time.Hour)

	status := Cooldown(&prior, now)

	assert.True(t, status.Allowed)
	assert.Equal(t, 0, status.RemainingDays)
}

func TestCooldownCutoffAgreesWithPolicy(t *testing.T) {
	// The SQL insert guard uses the cutoff; it must agree with the
	// policy at every offset around the boundary.
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	cutoff := CooldownCutoff(now)

	offsets := []time.Duration{
		-time.Hour, // future (skew)
		0,
		time.Hour,
		6 * 24 * time.Hour,
		7*24*time.Hour - time.Second,
		7 * 24 * time.Hour,
		7*24*time.Hour + time.Second,
		8 * 24 * time.Hour,
	}
	for _, offset := range offsets {
		prior := now.Add(-offset)
		policyAllowed := Cooldown(&prior, now).Allowed
		guardAllowed := !prior.After(cutoff)

		assert.Equal(t, policyAllowed, guardAllowed, "offset %v", offset)
	}
}
