package db

import (
	"context"
	"database/sql"
	"time"
)

const createTrackedGame = `
INSERT INTO tracked_games (id, user_id, game_id, rank, hours_played, kd_ratio, game_tag, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateTrackedGameParams struct {
	ID          string
	UserID      string
	GameID      string
	Rank        string
	HoursPlayed int64
	KdRatio     sql.NullFloat64
	GameTag     string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreateTrackedGame(ctx context.Context, arg CreateTrackedGameParams) error {
	_, err := q.db.ExecContext(ctx, createTrackedGame,
		arg.ID,
		arg.UserID,
		arg.GameID,
		arg.Rank,
		arg.HoursPlayed,
		arg.KdRatio,
		arg.GameTag,
		arg.Notes,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getTrackedGame = `
SELECT id, user_id, game_id, rank, hours_played, kd_ratio, game_tag, notes, created_at, updated_at
FROM tracked_games WHERE id = ?
`

func (q *Queries) GetTrackedGame(ctx context.Context, id string) (TrackedGame, error) {
	row := q.db.QueryRowContext(ctx, getTrackedGame, id)
	var i TrackedGame
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.GameID,
		&i.Rank,
		&i.HoursPlayed,
		&i.KdRatio,
		&i.GameTag,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTrackedGamesByUserRow = `
SELECT tg.id, tg.user_id, tg.game_id, tg.rank, tg.hours_played, tg.kd_ratio, tg.game_tag, tg.notes, tg.created_at, tg.updated_at,
       g.id, g.name, g.genre, g.platform, g.icon_url, g.created_at
FROM tracked_games tg
JOIN games g ON g.id = tg.game_id
WHERE tg.user_id = ?
ORDER BY tg.created_at DESC
`

type ListTrackedGamesByUserRow struct {
	TrackedGame TrackedGame
	Game        Game
}

func (q *Queries) ListTrackedGamesByUser(ctx context.Context, userID string) ([]ListTrackedGamesByUserRow, error) {
	rows, err := q.db.QueryContext(ctx, listTrackedGamesByUserRow, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListTrackedGamesByUserRow
	for rows.Next() {
		var i ListTrackedGamesByUserRow
		if err := rows.Scan(
			&i.TrackedGame.ID,
			&i.TrackedGame.UserID,
			&i.TrackedGame.GameID,
			&i.TrackedGame.Rank,
			&i.TrackedGame.HoursPlayed,
			&i.TrackedGame.KdRatio,
			&i.TrackedGame.GameTag,
			&i.TrackedGame.Notes,
			&i.TrackedGame.CreatedAt,
			&i.TrackedGame.UpdatedAt,
			&i.Game.ID,
			&i.Game.Name,
			&i.Game.Genre,
			&i.Game.Platform,
			&i.Game.IconUrl,
			&i.Game.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTrackedGame = `
UPDATE tracked_games
SET rank = ?, hours_played = ?, kd_ratio = ?, game_tag = ?, notes = ?, updated_at = ?
WHERE id = ?
`

type UpdateTrackedGameParams struct {
	Rank        string
	HoursPlayed int64
	KdRatio     sql.NullFloat64
	GameTag     string
	Notes       string
	UpdatedAt   time.Time
	ID          string
}

func (q *Queries) UpdateTrackedGame(ctx context.Context, arg UpdateTrackedGameParams) error {
	_, err := q.db.ExecContext(ctx, updateTrackedGame,
		arg.Rank,
		arg.HoursPlayed,
		arg.KdRatio,
		arg.GameTag,
		arg.Notes,
		arg.UpdatedAt,
		arg.ID,
	)
	return err
}

const deleteTrackedGame = `
DELETE FROM tracked_games WHERE id = ?
`

func (q *Queries) DeleteTrackedGame(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteTrackedGame, id)
	return err
}
