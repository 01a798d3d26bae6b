package repository

import (
	"context"
	"time"

	"gametracker/internal/db"
	"gametracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type TrackedGameRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewTrackedGameRepository(queries *db.Queries, logger zerolog.Logger) *TrackedGameRepository {
	return &TrackedGameRepository{queries: queries, logger: logger}
}

func (r *TrackedGameRepository) Create(ctx context.Context, tg *domain.TrackedGame) error {
	if tg.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return wrap("generate tracked game id", err)
		}
		tg.ID = id
	}
	now := time.Now()
	tg.CreatedAt = now
	tg.UpdatedAt = now

	err := r.queries.CreateTrackedGame(ctx, db.CreateTrackedGameParams{
		ID:          tg.ID,
		UserID:      tg.UserID,
		GameID:      tg.GameID,
		Rank:        tg.Rank,
		HoursPlayed: int64(tg.HoursPlayed),
		KdRatio:     toNullFloat(tg.KDRatio),
		GameTag:     tg.GameTag,
		Notes:       tg.Notes,
		CreatedAt:   tg.CreatedAt,
		UpdatedAt:   tg.UpdatedAt,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", tg.UserID).Str("game_id", tg.GameID).Msg("failed to create tracked game")
		return wrap("create tracked game", err)
	}
	return nil
}

func (r *TrackedGameRepository) Get(ctx context.Context, id string) (*domain.TrackedGame, error) {
	tg, err := r.queries.GetTrackedGame(ctx, id)
	if err != nil {
		return nil, wrap("get tracked game", err)
	}
	return mapTrackedGame(tg, nil), nil
}

func (r *TrackedGameRepository) ListByUser(ctx context.Context, userID string) ([]domain.TrackedGame, error) {
	rows, err := r.queries.ListTrackedGamesByUser(ctx, userID)
	if err != nil {
		return nil, wrap("list tracked games", err)
	}
	result := make([]domain.TrackedGame, len(rows))
	for i, row := range rows {
		result[i] = *mapTrackedGame(row.TrackedGame, mapGame(row.Game))
	}
	return result, nil
}

func (r *TrackedGameRepository) Update(ctx context.Context, tg *domain.TrackedGame) error {
	err := r.queries.UpdateTrackedGame(ctx, db.UpdateTrackedGameParams{
		Rank:        tg.Rank,
		HoursPlayed: int64(tg.HoursPlayed),
		KdRatio:     toNullFloat(tg.KDRatio),
		GameTag:     tg.GameTag,
		Notes:       tg.Notes,
		UpdatedAt:   time.Now(),
		ID:          tg.ID,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("id", tg.ID).Msg("failed to update tracked game")
		return wrap("update tracked game", err)
	}
	return nil
}

func (r *TrackedGameRepository) Delete(ctx context.Context, id string) error {
	if err := r.queries.DeleteTrackedGame(ctx, id); err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("failed to delete tracked game")
		return wrap("delete tracked game", err)
	}
	return nil
}

func mapTrackedGame(tg db.TrackedGame, game *domain.Game) *domain.TrackedGame {
	return &domain.TrackedGame{
		ID:          tg.ID,
		UserID:      tg.UserID,
		GameID:      tg.GameID,
		Rank:        tg.Rank,
		HoursPlayed: int(tg.HoursPlayed),
		KDRatio:     fromNullFloat(tg.KdRatio),
		GameTag:     tg.GameTag,
		Notes:       tg.Notes,
		CreatedAt:   tg.CreatedAt,
		UpdatedAt:   tg.UpdatedAt,
		Game:        game,
	}
}
