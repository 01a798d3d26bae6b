package db

import (
	"context"
	"time"
)

const insertProgress = `
INSERT INTO progress (id, user_id, guide_id, daily_task_id, weekly_mission_id, completed_at, streak_count, xp_earned)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type InsertProgressParams struct {
	ID              string
	UserID          string
	GuideID         string
	DailyTaskID     string
	WeeklyMissionID string
	CompletedAt     time.Time
	StreakCount     int64
	XpEarned        int64
}

func (q *Queries) InsertProgress(ctx context.Context, arg InsertProgressParams) error {
	_, err := q.db.ExecContext(ctx, insertProgress,
		arg.ID,
		arg.UserID,
		arg.GuideID,
		arg.DailyTaskID,
		arg.WeeklyMissionID,
		arg.CompletedAt,
		arg.StreakCount,
		arg.XpEarned,
	)
	return err
}

const progressColumns = `id, user_id, guide_id, daily_task_id, weekly_mission_id, completed_at, streak_count, xp_earned`

func scanProgress(row interface{ Scan(...interface{}) error }) (Progress, error) {
	var i Progress
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.GuideID,
		&i.DailyTaskID,
		&i.WeeklyMissionID,
		&i.CompletedAt,
		&i.StreakCount,
		&i.XpEarned,
	)
	return i, err
}

const listProgressByUserGuide = `
SELECT ` + progressColumns + `
FROM progress WHERE user_id = ? AND guide_id = ?
ORDER BY completed_at DESC
`

type ListProgressByUserGuideParams struct {
	UserID  string
	GuideID string
}

func (q *Queries) ListProgressByUserGuide(ctx context.Context, arg ListProgressByUserGuideParams) ([]Progress, error) {
	rows, err := q.db.QueryContext(ctx, listProgressByUserGuide, arg.UserID, arg.GuideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Progress
	for rows.Next() {
		i, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countTaskCompletions = `
SELECT COUNT(*) FROM progress
WHERE user_id = ? AND daily_task_id = ? AND completed_at >= ? AND completed_at < ?
`

type CountTaskCompletionsParams struct {
	UserID      string
	DailyTaskID string
	From        time.Time
	To          time.Time
}

func (q *Queries) CountTaskCompletions(ctx context.Context, arg CountTaskCompletionsParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countTaskCompletions,
		arg.UserID, arg.DailyTaskID, arg.From, arg.To,
	).Scan(&count)
	return count, err
}

const countMissionCompletions = `
SELECT COUNT(*) FROM progress
WHERE user_id = ? AND weekly_mission_id = ? AND completed_at >= ? AND completed_at < ?
`

type CountMissionCompletionsParams struct {
	UserID          string
	WeeklyMissionID string
	From            time.Time
	To              time.Time
}

func (q *Queries) CountMissionCompletions(ctx context.Context, arg CountMissionCompletionsParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countMissionCompletions,
		arg.UserID, arg.WeeklyMissionID, arg.From, arg.To,
	).Scan(&count)
	return count, err
}

const getLatestProgress = `
SELECT ` + progressColumns + `
FROM progress WHERE user_id = ?
ORDER BY completed_at DESC LIMIT 1
`

func (q *Queries) GetLatestProgress(ctx context.Context, userID string) (Progress, error) {
	return scanProgress(q.db.QueryRowContext(ctx, getLatestProgress, userID))
}

const getProgressTotals = `
SELECT COUNT(*), COALESCE(SUM(xp_earned), 0)
FROM progress WHERE user_id = ?
`

type ProgressTotals struct {
	Completions int64
	TotalXP     int64
}

func (q *Queries) GetProgressTotals(ctx context.Context, userID string) (ProgressTotals, error) {
	var t ProgressTotals
	err := q.db.QueryRowContext(ctx, getProgressTotals, userID).Scan(&t.Completions, &t.TotalXP)
	return t, err
}
