package repository

import (
	"context"

	"gametracker/internal/db"
	"gametracker/internal/domain"

	"github.com/rs/zerolog"
)

type GameRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewGameRepository(queries *db.Queries, logger zerolog.Logger) *GameRepository {
	return &GameRepository{queries: queries, logger: logger}
}

func (r *GameRepository) List(ctx context.Context) ([]domain.Game, error) {
	games, err := r.queries.ListGames(ctx)
	if err != nil {
		return nil, wrap("list games", err)
	}
	result := make([]domain.Game, len(games))
	for i, g := range games {
		result[i] = *mapGame(g)
	}
	return result, nil
}

func (r *GameRepository) Get(ctx context.Context, id string) (*domain.Game, error) {
	game, err := r.queries.GetGame(ctx, id)
	if err != nil {
		return nil, wrap("get game", err)
	}
	return mapGame(game), nil
}

func mapGame(g db.Game) *domain.Game {
	return &domain.Game{
		ID:        g.ID,
		Name:      g.Name,
		Genre:     g.Genre,
		Platform:  g.Platform,
		IconURL:   g.IconUrl,
		CreatedAt: g.CreatedAt,
	}
}
