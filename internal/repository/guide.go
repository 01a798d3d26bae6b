package repository

import (
	"context"

	"gametracker/internal/db"
	"gametracker/internal/domain"

	"github.com/rs/zerolog"
)

type GuideRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewGuideRepository(queries *db.Queries, logger zerolog.Logger) *GuideRepository {
	return &GuideRepository{queries: queries, logger: logger}
}

func (r *GuideRepository) List(ctx context.Context) ([]domain.Guide, error) {
	rows, err := r.queries.ListGuides(ctx)
	if err != nil {
		return nil, wrap("list guides", err)
	}
	result := make([]domain.Guide, len(rows))
	for i, row := range rows {
		result[i] = *mapGuide(row.Guide, mapGame(row.Game))
	}
	return result, nil
}

func (r *GuideRepository) Get(ctx context.Context, id string) (*domain.Guide, error) {
	guide, err := r.queries.GetGuide(ctx, id)
	if err != nil {
		return nil, wrap("get guide", err)
	}
	return mapGuide(guide, nil), nil
}

func (r *GuideRepository) ListTasks(ctx context.Context, guideID string) ([]domain.DailyTask, error) {
	tasks, err := r.queries.ListDailyTasksByGuide(ctx, guideID)
	if err != nil {
		return nil, wrap("list daily tasks", err)
	}
	result := make([]domain.DailyTask, len(tasks))
	for i, t := range tasks {
		result[i] = domain.DailyTask{
			ID:          t.ID,
			GuideID:     t.GuideID,
			Title:       t.Title,
			Description: t.Description,
			TaskOrder:   int(t.TaskOrder),
			XPReward:    int(t.XpReward),
			CreatedAt:   t.CreatedAt,
		}
	}
	return result, nil
}

func (r *GuideRepository) GetTask(ctx context.Context, id string) (*domain.DailyTask, error) {
	t, err := r.queries.GetDailyTask(ctx, id)
	if err != nil {
		return nil, wrap("get daily task", err)
	}
	return &domain.DailyTask{
		ID:          t.ID,
		GuideID:     t.GuideID,
		Title:       t.Title,
		Description: t.Description,
		TaskOrder:   int(t.TaskOrder),
		XPReward:    int(t.XpReward),
		CreatedAt:   t.CreatedAt,
	}, nil
}

func (r *GuideRepository) ListMissions(ctx context.Context, guideID string) ([]domain.WeeklyMission, error) {
	missions, err := r.queries.ListWeeklyMissionsByGuide(ctx, guideID)
	if err != nil {
		return nil, wrap("list weekly missions", err)
	}
	result := make([]domain.WeeklyMission, len(missions))
	for i, m := range missions {
		result[i] = domain.WeeklyMission{
			ID:          m.ID,
			GuideID:     m.GuideID,
			Title:       m.Title,
			Description: m.Description,
			XPReward:    int(m.XpReward),
			CreatedAt:   m.CreatedAt,
		}
	}
	return result, nil
}

func (r *GuideRepository) GetMission(ctx context.Context, id string) (*domain.WeeklyMission, error) {
	m, err := r.queries.GetWeeklyMission(ctx, id)
	if err != nil {
		return nil, wrap("get weekly mission", err)
	}
	return &domain.WeeklyMission{
		ID:          m.ID,
		GuideID:     m.GuideID,
		Title:       m.Title,
		Description: m.Description,
		XPReward:    int(m.XpReward),
		CreatedAt:   m.CreatedAt,
	}, nil
}

func mapGuide(g db.Guide, game *domain.Game) *domain.Guide {
	return &domain.Guide{
		ID:              g.ID,
		GameID:          g.GameID,
		Title:           g.Title,
		Description:     g.Description,
		DifficultyLevel: g.DifficultyLevel,
		EstimatedDays:   int(g.EstimatedDays),
		CreatedAt:       g.CreatedAt,
		Game:            game,
	}
}
