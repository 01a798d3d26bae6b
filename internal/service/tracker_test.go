package service

import (
	"context"
	"testing"

	"gametracker/internal/db"
	"gametracker/internal/repository"
	"gametracker/internal/stats"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrackerService(t *testing.T) (*TrackerService, *db.Queries) {
	t.Helper()
	queries := db.New(openTestDB(t))
	svc := NewTrackerService(
		repository.NewTrackedGameRepository(queries, zerolog.Nop()),
		repository.NewStatLogRepository(queries, zerolog.Nop()),
		repository.NewGameRepository(queries, zerolog.Nop()),
		zerolog.Nop(),
	)
	return svc, queries
}

func validInput() stats.StatLogInput {
	return stats.StatLogInput{
		Rank:          "Diamond 2",
		KDRatio:       "1.85",
		MatchesPlayed: "50",
		Season:        "E8A3",
	}
}

func TestAddGameAndOverview(t *testing.T) {
	svc, queries := newTrackerService(t)
	userID := newTestUser(t, queries, "player@example.com")
	ctx := context.Background()

	tg, err := svc.AddGame(ctx, userID, TrackedGameInput{GameID: "game_valorant", Rank: "Gold 2"})
	require.NoError(t, err)
	require.NotNil(t, tg.Game)
	assert.Equal(t, "Valorant", tg.Game.Name)

	overviews, err := svc.Overview(ctx, userID)
	require.NoError(t, err)
	require.Len(t, overviews, 1)

	ov := overviews[0]
	assert.Nil(t, ov.Latest)
	assert.Nil(t, ov.Previous)
	assert.True(t, ov.Cooldown.Allowed)
	assert.Equal(t, stats.StateReady, ov.Cooldown.State())
	for _, d := range ov.Deltas {
		assert.Equal(t, stats.DeltaNoData, d.Kind)
	}
}

func TestAddGameUnknownCatalogID(t *testing.T) {
	svc, queries := newTrackerService(t)
	userID := newTestUser(t, queries, "player@example.com")

	_, err := svc.AddGame(context.Background(), userID, TrackedGameInput{GameID: "game_missing"})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSubmitLogHappyPath(t *testing.T) {
	svc, queries := newTrackerService(t)
	userID := newTestUser(t, queries, "player@example.com")
	ctx := context.Background()

	tg, err := svc.AddGame(ctx, userID, TrackedGameInput{GameID: "game_valorant"})
	require.NoError(t, err)

	result, err := svc.SubmitLog(ctx, userID, tg.ID, validInput())

	require.NoError(t, err)
	assert.Equal(t, 50, result.Log.MatchesPlayed)
	require.NotNil(t, result.Latest)
	assert.Equal(t, result.Log.ID, result.Latest.ID)
	assert.Nil(t, result.Previous)

	// The submission itself starts the cooldown.
	assert.False(t, result.Cooldown.Allowed)
	assert.Equal(t, 7, result.Cooldown.RemainingDays)
	assert.Equal(t, stats.StateCooling, result.Cooldown.State())

	// First log, so every delta lacks a comparison point.
	for _, d := range result.Deltas {
		assert.Equal(t, stats.DeltaNoData, d.Kind)
	}
}

func TestSubmitLogBlockedByCooldown(t *testing.T) {
	svc, queries := newTrackerService(t)
	userID := newTestUser(t, queries, "player@example.com")
	ctx := context.Background()

	tg, err := svc.AddGame(ctx, userID, TrackedGameInput{GameID: "game_valorant"})
	require.NoError(t, err)

	_, err = svc.SubmitLog(ctx, userID, tg.ID, validInput())
	require.NoError(t, err)

	_, err = svc.SubmitLog(ctx, userID, tg.ID, validInput())

	var cooldown *stats.CooldownActiveError
	require.ErrorAs(t, err, &cooldown)
	assert.Equal(t, 7, cooldown.RemainingDays)

	history, err := svc.History(ctx, userID, tg.ID, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSubmitLogRejectsInvalidInput(t *testing.T) {
	svc, queries := newTrackerService(t)
	userID := newTestUser(t, queries, "player@example.com")
	ctx := context.Background()

	tg, err := svc.AddGame(ctx, userID, TrackedGameInput{GameID: "game_valorant"})
	require.NoError(t, err)

	in := validInput()
	in.HeadshotPercent = "abc"
	_, err = svc.SubmitLog(ctx, userID, tg.ID, in)

	var verrs stats.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "headshot_percent", verrs[0].Field)

	// Invalid submissions never reach storage.
	history, err := svc.History(ctx, userID, tg.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSubmitLogHiddenFromNonOwner(t *testing.T) {
	svc, queries := newTrackerService(t)
	owner := newTestUser(t, queries, "owner@example.com")
	other := newTestUser(t, queries, "other@example.com")
	ctx := context.Background()

	tg, err := svc.AddGame(ctx, owner, TrackedGameInput{GameID: "game_valorant"})
	require.NoError(t, err)

	_, err = svc.SubmitLog(ctx, other, tg.ID, validInput())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.History(ctx, other, tg.ID, 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.RemoveGame(ctx, other, tg.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateGame(t *testing.T) {
	svc, queries := newTrackerService(t)
	userID := newTestUser(t, queries, "player@example.com")
	ctx := context.Background()

	tg, err := svc.AddGame(ctx, userID, TrackedGameInput{GameID: "game_valorant", Rank: "Gold 2"})
	require.NoError(t, err)

	kd := 1.4
	updated, err := svc.UpdateGame(ctx, userID, tg.ID, TrackedGameInput{
		GameID:      "game_valorant",
		Rank:        "Platinum 1",
		HoursPlayed: 320,
		KDRatio:     &kd,
	})

	require.NoError(t, err)
	assert.Equal(t, "Platinum 1", updated.Rank)
	assert.Equal(t, 320, updated.HoursPlayed)

	fresh, err := svc.ownedGame(ctx, userID, tg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Platinum 1", fresh.Rank)
}
