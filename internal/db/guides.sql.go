package db

import (
	"context"
)

const listGuidesRow = `
SELECT gd.id, gd.game_id, gd.title, gd.description, gd.difficulty_level, gd.estimated_days, gd.created_at,
       g.id, g.name, g.genre, g.platform, g.icon_url, g.created_at
FROM guides gd
JOIN games g ON g.id = gd.game_id
ORDER BY gd.created_at DESC
`

type ListGuidesRow struct {
	Guide Guide
	Game  Game
}

func (q *Queries) ListGuides(ctx context.Context) ([]ListGuidesRow, error) {
	rows, err := q.db.QueryContext(ctx, listGuidesRow)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListGuidesRow
	for rows.Next() {
		var i ListGuidesRow
		if err := rows.Scan(
			&i.Guide.ID,
			&i.Guide.GameID,
			&i.Guide.Title,
			&i.Guide.Description,
			&i.Guide.DifficultyLevel,
			&i.Guide.EstimatedDays,
			&i.Guide.CreatedAt,
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

const getGuide = `
SELECT id, game_id, title, description, difficulty_level, estimated_days, created_at
FROM guides WHERE id = ?
`

func (q *Queries) GetGuide(ctx context.Context, id string) (Guide, error) {
	row := q.db.QueryRowContext(ctx, getGuide, id)
	var i Guide
	err := row.Scan(
		&i.ID,
		&i.GameID,
		&i.Title,
		&i.Description,
		&i.DifficultyLevel,
		&i.EstimatedDays,
		&i.CreatedAt,
	)
	return i, err
}

const listDailyTasksByGuide = `
SELECT id, guide_id, title, description, task_order, xp_reward, created_at
FROM daily_tasks WHERE guide_id = ?
ORDER BY task_order
`

func (q *Queries) ListDailyTasksByGuide(ctx context.Context, guideID string) ([]DailyTask, error) {
	rows, err := q.db.QueryContext(ctx, listDailyTasksByGuide, guideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DailyTask
	for rows.Next() {
		var i DailyTask
		if err := rows.Scan(
			&i.ID,
			&i.GuideID,
			&i.Title,
			&i.Description,
			&i.TaskOrder,
			&i.XpReward,
			&i.CreatedAt,
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

const getDailyTask = `
SELECT id, guide_id, title, description, task_order, xp_reward, created_at
FROM daily_tasks WHERE id = ?
`

func (q *Queries) GetDailyTask(ctx context.Context, id string) (DailyTask, error) {
	row := q.db.QueryRowContext(ctx, getDailyTask, id)
	var i DailyTask
	err := row.Scan(
		&i.ID,
		&i.GuideID,
		&i.Title,
		&i.Description,
		&i.TaskOrder,
		&i.XpReward,
		&i.CreatedAt,
	)
	return i, err
}

const listWeeklyMissionsByGuide = `
SELECT id, guide_id, title, description, xp_reward, created_at
FROM weekly_missions WHERE guide_id = ?
ORDER BY created_at
`

func (q *Queries) ListWeeklyMissionsByGuide(ctx context.Context, guideID string) ([]WeeklyMission, error) {
	rows, err := q.db.QueryContext(ctx, listWeeklyMissionsByGuide, guideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WeeklyMission
	for rows.Next() {
		var i WeeklyMission
		if err := rows.Scan(
			&i.ID,
			&i.GuideID,
			&i.Title,
			&i.Description,
			&i.XpReward,
			&i.CreatedAt,
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

const getWeeklyMission = `
SELECT id, guide_id, title, description, xp_reward, created_at
FROM weekly_missions WHERE id = ?
`

func (q *Queries) GetWeeklyMission(ctx context.Context, id string) (WeeklyMission, error) {
	row := q.db.QueryRowContext(ctx, getWeeklyMission, id)
	var i WeeklyMission
	err := row.Scan(
		&i.ID,
		&i.GuideID,
		&i.Title,
		&i.Description,
		&i.XpReward,
		&i.CreatedAt,
	)
	return i, err
}
