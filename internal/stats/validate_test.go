package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(err error) []string {
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	names := make([]string, 0, len(verrs))
	for _, v := range verrs {
		names = append(names, v.Field)
	}
	return names
}

func TestValidateStatLogHappyPath(t *testing.T) {
	values, err := ValidateStatLog(StatLogInput{
		Rank:            "Diamond 2",
		KDRatio:         "1.85",
		FDRatio:         "0.40",
		MatchesPlayed:   "50",
		Season:          "E8A3",
		HeadshotPercent: "27.5",
		Notes:           "warmed up first",
	})

	require.NoError(t, err)
	assert.Equal(t, "Diamond 2", values.Rank)
	assert.Equal(t, 50, values.MatchesPlayed)
	require.NotNil(t, values.KDRatio)
	assert.InDelta(t, 1.85, *values.KDRatio, 1e-9)
	require.NotNil(t, values.HeadshotPercent)
	assert.InDelta(t, 27.5, *values.HeadshotPercent, 1e-9)
}

func TestValidateStatLogOptionalFieldsBlank(t *testing.T) {
	values, err := ValidateStatLog(StatLogInput{MatchesPlayed: "12"})

	require.NoError(t, err)
	assert.Nil(t, values.KDRatio)
	assert.Nil(t, values.FDRatio)
	assert.Nil(t, values.HeadshotPercent)
	assert.Equal(t, "", values.Rank)
	assert.Equal(t, 12, values.MatchesPlayed)
}

func TestValidateStatLogMatchesPlayedRequired(t *testing.T) {
	_, err := ValidateStatLog(StatLogInput{})

	require.Error(t, err)
	assert.Equal(t, []string{"matches_played"}, fieldsOf(err))
}

func TestValidateStatLogMatchesPlayedBounds(t *testing.T) {
	_, err := ValidateStatLog(StatLogInput{MatchesPlayed: "10001"})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(err), "matches_played")

	_, err = ValidateStatLog(StatLogInput{MatchesPlayed: "10000"})
	assert.NoError(t, err)

	_, err = ValidateStatLog(StatLogInput{MatchesPlayed: "-1"})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(err), "matches_played")
}

func TestValidateStatLogHeadshotBounds(t *testing.T) {
	_, err := ValidateStatLog(StatLogInput{MatchesPlayed: "1", HeadshotPercent: "100.0"})
	assert.NoError(t, err)

	_, err = ValidateStatLog(StatLogInput{MatchesPlayed: "1", HeadshotPercent: "100.01"})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(err), "headshot_percent")
}

func TestValidateStatLogNonNumericNamesTheField(t *testing.T) {
	_, err := ValidateStatLog(StatLogInput{MatchesPlayed: "1", HeadshotPercent: "abc"})

	require.Error(t, err)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "headshot_percent", verrs[0].Field)
	assert.Equal(t, "must be a number", verrs[0].Reason)
}

func TestValidateStatLogNotesTooLong(t *testing.T) {
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'x'
	}

	_, err := ValidateStatLog(StatLogInput{MatchesPlayed: "1", Notes: string(long)})

	require.Error(t, err)
	assert.Contains(t, fieldsOf(err), "notes")
}

func TestValidateStatLogCollectsAllViolations(t *testing.T) {
	_, err := ValidateStatLog(StatLogInput{
		KDRatio:         "not-a-number",
		HeadshotPercent: "250",
	})

	require.Error(t, err)
	names := fieldsOf(err)
	assert.Contains(t, names, "kd_ratio")
	assert.Contains(t, names, "headshot_percent")
	assert.Contains(t, names, "matches_played")
	assert.Len(t, names, 3)
}

func TestValidateStatLogTrimsWhitespace(t *testing.T) {
	values, err := ValidateStatLog(StatLogInput{
		Rank:          "  Gold 1  ",
		MatchesPlayed: " 7 ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Gold 1", values.Rank)
	assert.Equal(t, 7, values.MatchesPlayed)
}
