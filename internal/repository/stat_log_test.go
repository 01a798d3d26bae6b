package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gametracker/internal/config"
	"gametracker/internal/database"
	"gametracker/internal/db"
	"gametracker/internal/domain"
	"gametracker/internal/stats"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// The busy timeout goes in the DSN so every pooled connection
	// gets it, not just the one the pragma setup ran on.
	path := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	sqlDB, err := database.New(&config.Config{DBPath: path}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB
}

func seedTrackedGame(t *testing.T, queries *db.Queries) string {
	t.Helper()
	ctx := context.Background()

	users := NewUserRepository(queries, zerolog.Nop())
	user := &domain.User{Email: "player@example.com", PasswordHash: "x", Name: "Player"}
	require.NoError(t, users.Create(ctx, user))

	tracked := NewTrackedGameRepository(queries, zerolog.Nop())
	tg := &domain.TrackedGame{UserID: user.ID, GameID: "game_valorant", Rank: "Gold 2"}
	require.NoError(t, tracked.Create(ctx, tg))
	return tg.ID
}

func sampleValues(matches int) stats.StatLogValues {
	kd := 1.2
	return stats.StatLogValues{
		Rank:          "Gold 2",
		KDRatio:       &kd,
		MatchesPlayed: matches,
		Season:        "E8A3",
	}
}

func TestInsertGatedFirstLogAlwaysAllowed(t *testing.T) {
	queries := db.New(openTestDB(t))
	repo := NewStatLogRepository(queries, zerolog.Nop())
	tgID := seedTrackedGame(t, queries)
	ctx := context.Background()

	log, err := repo.InsertGated(ctx, tgID, sampleValues(10), time.Now().UTC())

	require.NoError(t, err)
	assert.NotEmpty(t, log.ID)
	assert.Equal(t, tgID, log.TrackedGameID)
	assert.Equal(t, 10, log.MatchesPlayed)
}

func TestInsertGatedRejectsWithinWindow(t *testing.T) {
	queries := db.New(openTestDB(t))
	repo := NewStatLogRepository(queries, zerolog.Nop())
	tgID := seedTrackedGame(t, queries)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.InsertGated(ctx, tgID, sampleValues(10), now)
	require.NoError(t, err)

	// Same day, three days later, and one second short of the window.
	for _, later := range []time.Time{
		now.Add(time.Hour),
		now.Add(3 * 24 * time.Hour),
		now.Add(7*24*time.Hour - time.Second),
	} {
		_, err = repo.InsertGated(ctx, tgID, sampleValues(11), later)

		var cooldown *stats.CooldownActiveError
		require.ErrorAs(t, err, &cooldown)
		assert.Positive(t, cooldown.RemainingDays)
	}

	// Rejected submissions leave no trace.
	count, err := repo.Count(ctx, tgID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	latest, err := repo.Latest(ctx, tgID)
	require.NoError(t, err)
	assert.Equal(t, 10, latest.MatchesPlayed)
}

func TestInsertGatedAllowsAfterWindow(t *testing.T) {
	queries := db.New(openTestDB(t))
	repo := NewStatLogRepository(queries, zerolog.Nop())
	tgID := seedTrackedGame(t, queries)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.InsertGated(ctx, tgID, sampleValues(10), now)
	require.NoError(t, err)

	_, err = repo.InsertGated(ctx, tgID, sampleValues(18), now.Add(7*24*time.Hour))
	require.NoError(t, err)

	logs, err := repo.ListRecent(ctx, tgID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 18, logs[0].MatchesPlayed)
	assert.Equal(t, 10, logs[1].MatchesPlayed)
}

func TestInsertGatedConcurrentSubmissions(t *testing.T) {
	queries := db.New(openTestDB(t))
	repo := NewStatLogRepository(queries, zerolog.Nop())
	tgID := seedTrackedGame(t, queries)
	ctx := context.Background()
	now := time.Now().UTC()

	// Every submission passes the client-visible check (no prior log)
	// at the same instant; the insert guard must admit exactly one.
	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(matches int) {
			defer wg.Done()
			_, err := repo.InsertGated(ctx, tgID, sampleValues(matches), now)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			var cooldown *stats.CooldownActiveError
			if errors.As(err, &cooldown) {
				rejected++
			}
		}(i + 1)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)

	count, err := repo.Count(ctx, tgID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLatestWithoutLogs(t *testing.T) {
	queries := db.New(openTestDB(t))
	repo := NewStatLogRepository(queries, zerolog.Nop())
	tgID := seedTrackedGame(t, queries)

	latest, err := repo.Latest(context.Background(), tgID)

	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestListRecentHonorsLimit(t *testing.T) {
	queries := db.New(openTestDB(t))
	repo := NewStatLogRepository(queries, zerolog.Nop())
	tgID := seedTrackedGame(t, queries)
	ctx := context.Background()
	now := time.Now().UTC().Add(-60 * 24 * time.Hour)

	for i := 0; i < 4; i++ {
		_, err := repo.InsertGated(ctx, tgID, sampleValues(i+1), now.Add(time.Duration(i)*7*24*time.Hour))
		require.NoError(t, err)
	}

	logs, err := repo.ListRecent(ctx, tgID, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 4, logs[0].MatchesPlayed)
	assert.Equal(t, 3, logs[1].MatchesPlayed)
}
