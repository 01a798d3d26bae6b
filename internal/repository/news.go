package repository

import (
	"context"
	"time"

	"gametracker/internal/db"
	"gametracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type NewsRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewNewsRepository(queries *db.Queries, logger zerolog.Logger) *NewsRepository {
	return &NewsRepository{queries: queries, logger: logger}
}

func (r *NewsRepository) UpsertBatch(ctx context.Context, articles []domain.NewsArticle) error {
	now := time.Now()
	for _, a := range articles {
		id := a.ID
		if id == "" {
			var err error
			id, err = gonanoid.New()
			if err != nil {
				return wrap("generate article id", err)
			}
		}
		err := r.queries.UpsertNewsArticle(ctx, db.UpsertNewsArticleParams{
			ID:          id,
			Title:       a.Title,
			Summary:     a.Summary,
			Content:     a.Content,
			ImageUrl:    a.ImageURL,
			Source:      a.Source,
			Genre:       a.Genre,
			Url:         a.URL,
			PublishedAt: a.PublishedAt,
			CreatedAt:   now,
		})
		if err != nil {
			r.logger.Error().Err(err).Str("url", a.URL).Msg("failed to upsert news article")
			return wrap("upsert news article", err)
		}
	}
	return nil
}

func (r *NewsRepository) List(ctx context.Context, genre string, limit int) ([]domain.NewsArticle, error) {
	var (
		articles []db.NewsArticle
		err      error
	)
	if genre == "" || genre == "all" {
		articles, err = r.queries.ListNewsArticles(ctx, int64(limit))
	} else {
		articles, err = r.queries.ListNewsArticlesByGenre(ctx, db.ListNewsArticlesByGenreParams{
			Genre: genre,
			Limit: int64(limit),
		})
	}
	if err != nil {
		return nil, wrap("list news articles", err)
	}
	result := make([]domain.NewsArticle, len(articles))
	for i, a := range articles {
		result[i] = domain.NewsArticle{
			ID:          a.ID,
			Title:       a.Title,
			Summary:     a.Summary,
			Content:     a.Content,
			ImageURL:    a.ImageUrl,
			Source:      a.Source,
			Genre:       a.Genre,
			URL:         a.Url,
			PublishedAt: a.PublishedAt,
			CreatedAt:   a.CreatedAt,
		}
	}
	return result, nil
}

// NewestCreatedAt reports when the feed was last refreshed; zero when
// no articles are stored yet.
func (r *NewsRepository) NewestCreatedAt(ctx context.Context) (time.Time, error) {
	newest, err := r.queries.GetNewestArticleCreatedAt(ctx)
	if err != nil {
		return time.Time{}, wrap("get newest article", err)
	}
	return newest, nil
}
