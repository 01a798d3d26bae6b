package stats

import (
	"testing"
	"time"

	"gametracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func snapshot(matches int, kd *float64) *domain.StatLog {
	return &domain.StatLog{
		ID:            "log",
		TrackedGameID: "tg",
		MatchesPlayed: matches,
		KDRatio:       kd,
		CreatedAt:     time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestGrowthIsDeterministic(t *testing.T) {
	latest := snapshot(50, ptr(1.85))
	previous := snapshot(42, ptr(1.20))

	first := Growth(FieldKDRatio, latest, previous)
	second := Growth(FieldKDRatio, latest, previous)
	assert.Equal(t, first, second)

	// Swapping latest and previous negates the sign.
	swapped := Growth(FieldKDRatio, previous, latest)
	assert.Equal(t, DeltaValue, swapped.Kind)
	assert.InDelta(t, -first.Value, swapped.Value, 1e-9)
}

func TestGrowthNoData(t *testing.T) {
	latest := snapshot(50, ptr(1.85))

	// No previous log at all.
	d := Growth(FieldKDRatio, latest, nil)
	assert.Equal(t, DeltaNoData, d.Kind)
	assert.Equal(t, "", d.Display())

	// Field missing in the previous log.
	d = Growth(FieldKDRatio, latest, snapshot(42, nil))
	assert.Equal(t, DeltaNoData, d.Kind)

	// Field missing in the latest log.
	d = Growth(FieldKDRatio, snapshot(50, nil), snapshot(42, ptr(1.20)))
	assert.Equal(t, DeltaNoData, d.Kind)

	// No latest either; must not panic.
	d = Growth(FieldHeadshotPercent, nil, nil)
	assert.Equal(t, DeltaNoData, d.Kind)
}

func TestGrowthMatchesPlayed(t *testing.T) {
	latest := snapshot(50, nil)
	previous := snapshot(42, nil)

	d := Growth(FieldMatchesPlayed, latest, previous)

	assert.Equal(t, DeltaValue, d.Kind)
	assert.InDelta(t, 8, d.Value, 1e-9)
	// Integer field: no decimals.
	assert.Equal(t, "+8", d.Display())
}

func TestGrowthRatioDisplay(t *testing.T) {
	d := Growth(FieldKDRatio, snapshot(0, ptr(2.70)), snapshot(0, ptr(1.20)))
	assert.Equal(t, "+1.50", d.Display())

	d = Growth(FieldKDRatio, snapshot(0, ptr(1.00)), snapshot(0, ptr(4.00)))
	assert.Equal(t, "-3.00", d.Display())
}

func TestGrowthZero(t *testing.T) {
	d := Growth(FieldMatchesPlayed, snapshot(42, nil), snapshot(42, nil))

	assert.Equal(t, DeltaZero, d.Kind)
	assert.Equal(t, "+0", d.Display())
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "matches_played", FieldMatchesPlayed.String())
	assert.Equal(t, "kd_ratio", FieldKDRatio.String())
	assert.Equal(t, "fd_ratio", FieldFDRatio.String())
	assert.Equal(t, "headshot_percent", FieldHeadshotPercent.String())
}
