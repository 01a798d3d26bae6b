package stats

import (
	"fmt"
	"strconv"
	"strings"

	"gametracker/internal/constants"
)

// StatLogInput is a raw stat submission as it arrives from the client.
// Every field is a string so that a non-numeric value in a numeric
// field surfaces as a ValidationError naming that field instead of a
// decode failure for the whole payload. Empty means the field was left
// blank.
type StatLogInput struct {
	Rank            string `json:"rank"`
	KDRatio         string `json:"kd_ratio"`
	FDRatio         string `json:"fd_ratio"`
	MatchesPlayed   string `json:"matches_played"`
	Season          string `json:"season"`
	HeadshotPercent string `json:"headshot_percent"`
	Notes           string `json:"notes"`
}

// StatLogValues is a validated submission ready for insertion. Optional
// numeric fields are nil when left blank.
type StatLogValues struct {
	Rank            string
	KDRatio         *float64
	FDRatio         *float64
	MatchesPlayed   int
	Season          string
	HeadshotPercent *float64
	Notes           string
}

// ValidateStatLog checks every field against its declared bounds and
// collects all violations instead of stopping at the first. The
// returned error is always a ValidationErrors when non-nil.
func ValidateStatLog(in StatLogInput) (StatLogValues, error) {
	var (
		out  StatLogValues
		errs ValidationErrors
	)

	out.Rank = checkText(&errs, "rank", in.Rank, constants.RankMaxLen)
	out.Season = checkText(&errs, "season", in.Season, constants.SeasonMaxLen)
	out.Notes = checkText(&errs, "notes", in.Notes, constants.NotesMaxLen)

	out.KDRatio = checkOptionalNumber(&errs, "kd_ratio", in.KDRatio, constants.RatioMin, constants.RatioMax)
	out.FDRatio = checkOptionalNumber(&errs, "fd_ratio", in.FDRatio, constants.RatioMin, constants.RatioMax)
	out.HeadshotPercent = checkOptionalNumber(&errs, "headshot_percent", in.HeadshotPercent, constants.HeadshotMin, constants.HeadshotMax)

	out.MatchesPlayed = checkMatchesPlayed(&errs, in.MatchesPlayed)

	if len(errs) > 0 {
		return StatLogValues{}, errs
	}
	return out, nil
}

func checkText(errs *ValidationErrors, field, value string, maxLen int) string {
	value = strings.TrimSpace(value)
	if len(value) > maxLen {
		*errs = append(*errs, ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must be at most %d characters", maxLen),
		})
		return ""
	}
	return value
}

func checkOptionalNumber(errs *ValidationErrors, field, value string, min, max float64) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, ValidationError{Field: field, Reason: "must be a number"})
		return nil
	}
	if n < min || n > max {
		*errs = append(*errs, ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must be between %g and %g", min, max),
		})
		return nil
	}
	return &n
}

func checkMatchesPlayed(errs *ValidationErrors, value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		*errs = append(*errs, ValidationError{Field: "matches_played", Reason: "is required"})
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, ValidationError{Field: "matches_played", Reason: "must be an integer"})
		return 0
	}
	if n < constants.MatchesPlayedMin || n > constants.MatchesPlayedMax {
		*errs = append(*errs, ValidationError{
			Field:  "matches_played",
			Reason: fmt.Sprintf("must be between %d and %d", constants.MatchesPlayedMin, constants.MatchesPlayedMax),
		})
		return 0
	}
	return n
}
