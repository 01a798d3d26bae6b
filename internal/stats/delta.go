package stats

import (
	"fmt"

	"gametracker/internal/domain"
)

// Field selects one of the numeric stat fields that support growth
// deltas. A closed set with explicit accessors, so adding a field is a
// compile-time change.
type Field int

const (
	FieldMatchesPlayed Field = iota
	FieldKDRatio
	FieldFDRatio
	FieldHeadshotPercent
)

// Fields lists every delta-capable field in display order.
var Fields = []Field{FieldMatchesPlayed, FieldKDRatio, FieldFDRatio, FieldHeadshotPercent}

func (f Field) String() string {
	switch f {
	case FieldMatchesPlayed:
		return "matches_played"
	case FieldKDRatio:
		return "kd_ratio"
	case FieldFDRatio:
		return "fd_ratio"
	case FieldHeadshotPercent:
		return "headshot_percent"
	default:
		return "unknown"
	}
}

// integer reports whether the field is displayed without decimals.
func (f Field) integer() bool {
	return f == FieldMatchesPlayed
}

// value extracts the field from a log. ok is false when the log is nil
// or the field was not recorded in it.
func (f Field) value(log *domain.StatLog) (float64, bool) {
	if log == nil {
		return 0, false
	}
	switch f {
	case FieldMatchesPlayed:
		return float64(log.MatchesPlayed), true
	case FieldKDRatio:
		if log.KDRatio == nil {
			return 0, false
		}
		return *log.KDRatio, true
	case FieldFDRatio:
		if log.FDRatio == nil {
			return 0, false
		}
		return *log.FDRatio, true
	case FieldHeadshotPercent:
		if log.HeadshotPercent == nil {
			return 0, false
		}
		return *log.HeadshotPercent, true
	default:
		return 0, false
	}
}

type DeltaKind int

const (
	// DeltaNoData: no previous log, or the field is absent in either log.
	DeltaNoData DeltaKind = iota
	// DeltaZero: both values present and exactly equal.
	DeltaZero
	// DeltaValue: a nonzero signed difference.
	DeltaValue
)

// Delta is the growth of one field between the two most recent logs.
type Delta struct {
	Field Field
	Kind  DeltaKind
	Value float64
}

// Growth computes latest[field] - previous[field]. Pure: identical
// inputs always yield the identical delta.
func Growth(field Field, latest, previous *domain.StatLog) Delta {
	latestVal, ok := field.value(latest)
	if !ok {
		return Delta{Field: field, Kind: DeltaNoData}
	}
	prevVal, ok := field.value(previous)
	if !ok {
		return Delta{Field: field, Kind: DeltaNoData}
	}

	diff := latestVal - prevVal
	if diff == 0 {
		return Delta{Field: field, Kind: DeltaZero}
	}
	return Delta{Field: field, Kind: DeltaValue, Value: diff}
}

// Display renders the delta for the UI: "" for no data, "+0" for zero,
// otherwise an explicitly signed value. Integer fields show no
// decimals, ratio and percent fields show two.
func (d Delta) Display() string {
	switch d.Kind {
	case DeltaNoData:
		return ""
	case DeltaZero:
		return "+0"
	}
	if d.Field.integer() {
		return fmt.Sprintf("%+d", int(d.Value))
	}
	return fmt.Sprintf("%+.2f", d.Value)
}
