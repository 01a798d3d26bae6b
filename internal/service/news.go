package service

import (
	"context"
	"time"

	"gametracker/internal/api"
	"gametracker/internal/config"
	"gametracker/internal/constants"
	"gametracker/internal/domain"
	"gametracker/internal/repository"

	"github.com/rs/zerolog"
)

type NewsService struct {
	feed   *api.NewsFeedClient
	repo   *repository.NewsRepository
	cfg    *config.Config
	logger zerolog.Logger
}

func NewNewsService(feed *api.NewsFeedClient, repo *repository.NewsRepository, cfg *config.Config, logger zerolog.Logger) *NewsService {
	return &NewsService{feed: feed, repo: repo, cfg: cfg, logger: logger}
}

// List returns stored articles for the genre, refreshing from the feed
// first when the stored set has gone stale. A feed failure is logged
// and the listing falls back to whatever is stored.
func (s *NewsService) List(ctx context.Context, genre string) ([]domain.NewsArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.maybeRefresh(ctx)

	return s.repo.List(ctx, genre, constants.NewsFetchLimit)
}

func (s *NewsService) maybeRefresh(ctx context.Context) {
	if !s.feed.Enabled() {
		return
	}

	newest, err := s.repo.NewestCreatedAt(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to check news freshness")
		return
	}
	if time.Since(newest) < s.cfg.NewsRefreshTTL {
		return
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.feed.GetLatest(apiCtx, constants.NewsFetchLimit)
	if err != nil {
		// Single attempt; stale articles beat no articles.
		s.logger.Warn().Err(err).Msg("news feed refresh failed")
		return
	}

	articles := make([]domain.NewsArticle, len(resp.Articles))
	for i, a := range resp.Articles {
		articles[i] = domain.NewsArticle{
			Title:       a.Title,
			Summary:     a.Summary,
			Content:     a.Content,
			ImageURL:    a.ImageURL,
			Source:      a.Source,
			Genre:       a.Genre,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		}
	}
	if err := s.repo.UpsertBatch(ctx, articles); err != nil {
		s.logger.Warn().Err(err).Msg("failed to store refreshed news")
		return
	}

	s.logger.Info().Int("count", len(articles)).Msg("news feed refreshed")
}
