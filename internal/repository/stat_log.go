package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gametracker/internal/db"
	"gametracker/internal/domain"
	"gametracker/internal/stats"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// StatLogRepository is the append-only store of stat snapshots. Logs
// are only ever inserted, and only through the cooldown-gated path.
type StatLogRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewStatLogRepository(queries *db.Queries, logger zerolog.Logger) *StatLogRepository {
	return &StatLogRepository{queries: queries, logger: logger}
}

// InsertGated appends a validated snapshot, enforcing the cooldown at
// the point of insert. The guard lives in the INSERT statement itself
// ("insert unless a newer log exists"), so two near-simultaneous
// submissions that both passed a stale client-side check cannot both
// land: the database admits at most one.
func (r *StatLogRepository) InsertGated(ctx context.Context, trackedGameID string, values stats.StatLogValues, now time.Time) (*domain.StatLog, error) {
	latest, err := r.Latest(ctx, trackedGameID)
	if err != nil {
		return nil, err
	}

	var lastAt *time.Time
	if latest != nil {
		lastAt = &latest.CreatedAt
	}
	if status := stats.Cooldown(lastAt, now); !status.Allowed {
		r.logger.Debug().
			Str("tracked_game_id", trackedGameID).
			Int("remaining_days", status.RemainingDays).
			Msg("stat log rejected, cooldown active")
		return nil, &stats.CooldownActiveError{RemainingDays: status.RemainingDays}
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, wrap("generate stat log id", err)
	}

	inserted, err := r.queries.InsertStatLogGated(ctx, db.InsertStatLogGatedParams{
		ID:              id,
		TrackedGameID:   trackedGameID,
		Rank:            values.Rank,
		KdRatio:         toNullFloat(values.KDRatio),
		FdRatio:         toNullFloat(values.FDRatio),
		MatchesPlayed:   int64(values.MatchesPlayed),
		Season:          values.Season,
		HeadshotPercent: toNullFloat(values.HeadshotPercent),
		Notes:           values.Notes,
		CreatedAt:       now,
		Cutoff:          stats.CooldownCutoff(now),
	})
	if err != nil {
		r.logger.Error().Err(err).Str("tracked_game_id", trackedGameID).Msg("failed to insert stat log")
		return nil, wrap("insert stat log", err)
	}
	if inserted == 0 {
		// Lost the race to a concurrent submission.
		status := r.remainingAfterRace(ctx, trackedGameID, now)
		r.logger.Warn().
			Str("tracked_game_id", trackedGameID).
			Msg("stat log rejected by insert guard")
		return nil, &stats.CooldownActiveError{RemainingDays: status.RemainingDays}
	}

	return &domain.StatLog{
		ID:              id,
		TrackedGameID:   trackedGameID,
		Rank:            values.Rank,
		KDRatio:         values.KDRatio,
		FDRatio:         values.FDRatio,
		MatchesPlayed:   values.MatchesPlayed,
		Season:          values.Season,
		HeadshotPercent: values.HeadshotPercent,
		Notes:           values.Notes,
		CreatedAt:       now,
	}, nil
}

func (r *StatLogRepository) remainingAfterRace(ctx context.Context, trackedGameID string, now time.Time) stats.CooldownStatus {
	latest, err := r.Latest(ctx, trackedGameID)
	if err != nil || latest == nil {
		return stats.CooldownStatus{RemainingDays: 1}
	}
	status := stats.Cooldown(&latest.CreatedAt, now)
	if status.Allowed {
		// Guard said no but the policy says yes now; report the
		// shortest wait rather than zero.
		return stats.CooldownStatus{RemainingDays: 1}
	}
	return status
}

// Latest returns the most recent log, or nil when none exists.
func (r *StatLogRepository) Latest(ctx context.Context, trackedGameID string) (*domain.StatLog, error) {
	log, err := r.queries.GetLatestStatLog(ctx, trackedGameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get latest stat log", err)
	}
	return mapStatLog(log), nil
}

// ListRecent returns up to limit logs, most recent first.
func (r *StatLogRepository) ListRecent(ctx context.Context, trackedGameID string, limit int) ([]domain.StatLog, error) {
	logs, err := r.queries.ListRecentStatLogs(ctx, db.ListRecentStatLogsParams{
		TrackedGameID: trackedGameID,
		Limit:         int64(limit),
	})
	if err != nil {
		return nil, wrap("list recent stat logs", err)
	}
	result := make([]domain.StatLog, len(logs))
	for i, l := range logs {
		result[i] = *mapStatLog(l)
	}
	return result, nil
}

func (r *StatLogRepository) Count(ctx context.Context, trackedGameID string) (int, error) {
	count, err := r.queries.CountStatLogs(ctx, trackedGameID)
	if err != nil {
		return 0, wrap("count stat logs", err)
	}
	return int(count), nil
}

func mapStatLog(l db.StatLog) *domain.StatLog {
	return &domain.StatLog{
		ID:              l.ID,
		TrackedGameID:   l.TrackedGameID,
		Rank:            l.Rank,
		KDRatio:         fromNullFloat(l.KdRatio),
		FDRatio:         fromNullFloat(l.FdRatio),
		MatchesPlayed:   int(l.MatchesPlayed),
		Season:          l.Season,
		HeadshotPercent: fromNullFloat(l.HeadshotPercent),
		Notes:           l.Notes,
		CreatedAt:       l.CreatedAt,
	}
}
