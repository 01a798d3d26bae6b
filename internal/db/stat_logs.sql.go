package db

import (
	"context"
	"database/sql"
	"time"
)

const statLogColumns = `id, tracked_game_id, rank, kd_ratio, fd_ratio, matches_played, season, headshot_percent, notes, created_at`

func scanStatLog(row interface{ Scan(...interface{}) error }) (StatLog, error) {
	var i StatLog
	err := row.Scan(
		&i.ID,
		&i.TrackedGameID,
		&i.Rank,
		&i.KdRatio,
		&i.FdRatio,
		&i.MatchesPlayed,
		&i.Season,
		&i.HeadshotPercent,
		&i.Notes,
		&i.CreatedAt,
	)
	return i, err
}

// insertStatLogGated inserts only when no log for the game was created
// after the cutoff. The cooldown check and the insert are one statement,
// so two racing submissions cannot both pass the check.
const insertStatLogGated = `
INSERT INTO stat_logs (` + statLogColumns + `)
SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
WHERE NOT EXISTS (
    SELECT 1 FROM stat_logs
    WHERE tracked_game_id = ? AND created_at > ?
)
`

type InsertStatLogGatedParams struct {
	ID              string
	TrackedGameID   string
	Rank            string
	KdRatio         sql.NullFloat64
	FdRatio         sql.NullFloat64
	MatchesPlayed   int64
	Season          string
	HeadshotPercent sql.NullFloat64
	Notes           string
	CreatedAt       time.Time
	Cutoff          time.Time
}

// InsertStatLogGated returns the number of rows inserted: 1 on success,
// 0 when the cooldown guard rejected the submission.
func (q *Queries) InsertStatLogGated(ctx context.Context, arg InsertStatLogGatedParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, insertStatLogGated,
		arg.ID,
		arg.TrackedGameID,
		arg.Rank,
		arg.KdRatio,
		arg.FdRatio,
		arg.MatchesPlayed,
		arg.Season,
		arg.HeadshotPercent,
		arg.Notes,
		arg.CreatedAt,
		arg.TrackedGameID,
		arg.Cutoff,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getLatestStatLog = `
SELECT ` + statLogColumns + `
FROM stat_logs WHERE tracked_game_id = ?
ORDER BY created_at DESC LIMIT 1
`

func (q *Queries) GetLatestStatLog(ctx context.Context, trackedGameID string) (StatLog, error) {
	return scanStatLog(q.db.QueryRowContext(ctx, getLatestStatLog, trackedGameID))
}

const listRecentStatLogs = `
SELECT ` + statLogColumns + `
FROM stat_logs WHERE tracked_game_id = ?
ORDER BY created_at DESC LIMIT ?
`

type ListRecentStatLogsParams struct {
	TrackedGameID string
	Limit         int64
}

func (q *Queries) ListRecentStatLogs(ctx context.Context, arg ListRecentStatLogsParams) ([]StatLog, error) {
	rows, err := q.db.QueryContext(ctx, listRecentStatLogs, arg.TrackedGameID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StatLog
	for rows.Next() {
		i, err := scanStatLog(rows)
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

const countStatLogs = `
SELECT COUNT(*) FROM stat_logs WHERE tracked_game_id = ?
`

func (q *Queries) CountStatLogs(ctx context.Context, trackedGameID string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countStatLogs, trackedGameID).Scan(&count)
	return count, err
}
