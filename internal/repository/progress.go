package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gametracker/internal/db"
	"gametracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type ProgressRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewProgressRepository(queries *db.Queries, logger zerolog.Logger) *ProgressRepository {
	return &ProgressRepository{queries: queries, logger: logger}
}

func (r *ProgressRepository) Insert(ctx context.Context, p *domain.Progress) error {
	if p.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return wrap("generate progress id", err)
		}
		p.ID = id
	}
	err := r.queries.InsertProgress(ctx, db.InsertProgressParams{
		ID:              p.ID,
		UserID:          p.UserID,
		GuideID:         p.GuideID,
		DailyTaskID:     p.DailyTaskID,
		WeeklyMissionID: p.WeeklyMissionID,
		CompletedAt:     p.CompletedAt,
		StreakCount:     int64(p.StreakCount),
		XpEarned:        int64(p.XPEarned),
	})
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", p.UserID).Msg("failed to insert progress")
		return wrap("insert progress", err)
	}
	return nil
}

func (r *ProgressRepository) ListByUserGuide(ctx context.Context, userID, guideID string) ([]domain.Progress, error) {
	rows, err := r.queries.ListProgressByUserGuide(ctx, db.ListProgressByUserGuideParams{
		UserID:  userID,
		GuideID: guideID,
	})
	if err != nil {
		return nil, wrap("list progress", err)
	}
	result := make([]domain.Progress, len(rows))
	for i, p := range rows {
		result[i] = *mapProgress(p)
	}
	return result, nil
}

// CountTaskCompletions counts completions of one task in [from, to).
func (r *ProgressRepository) CountTaskCompletions(ctx context.Context, userID, taskID string, from, to time.Time) (int, error) {
	count, err := r.queries.CountTaskCompletions(ctx, db.CountTaskCompletionsParams{
		UserID:      userID,
		DailyTaskID: taskID,
		From:        from,
		To:          to,
	})
	if err != nil {
		return 0, wrap("count task completions", err)
	}
	return int(count), nil
}

// CountMissionCompletions counts completions of one mission in [from, to).
func (r *ProgressRepository) CountMissionCompletions(ctx context.Context, userID, missionID string, from, to time.Time) (int, error) {
	count, err := r.queries.CountMissionCompletions(ctx, db.CountMissionCompletionsParams{
		UserID:          userID,
		WeeklyMissionID: missionID,
		From:            from,
		To:              to,
	})
	if err != nil {
		return 0, wrap("count mission completions", err)
	}
	return int(count), nil
}

// Latest returns the most recent progress row, or nil when none exists.
func (r *ProgressRepository) Latest(ctx context.Context, userID string) (*domain.Progress, error) {
	p, err := r.queries.GetLatestProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get latest progress", err)
	}
	return mapProgress(p), nil
}

type ProgressTotals struct {
	Completions int
	TotalXP     int
}

func (r *ProgressRepository) Totals(ctx context.Context, userID string) (ProgressTotals, error) {
	t, err := r.queries.GetProgressTotals(ctx, userID)
	if err != nil {
		return ProgressTotals{}, wrap("get progress totals", err)
	}
	return ProgressTotals{Completions: int(t.Completions), TotalXP: int(t.TotalXP)}, nil
}

func mapProgress(p db.Progress) *domain.Progress {
	return &domain.Progress{
		ID:              p.ID,
		UserID:          p.UserID,
		GuideID:         p.GuideID,
		DailyTaskID:     p.DailyTaskID,
		WeeklyMissionID: p.WeeklyMissionID,
		CompletedAt:     p.CompletedAt,
		StreakCount:     int(p.StreakCount),
		XPEarned:        int(p.XpEarned),
	}
}
