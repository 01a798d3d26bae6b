package service

import (
	"context"
	"time"

	"gametracker/internal/constants"
	"gametracker/internal/domain"
	"gametracker/internal/repository"
	"gametracker/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type TrackerService struct {
	trackedRepo *repository.TrackedGameRepository
	statRepo    *repository.StatLogRepository
	gameRepo    *repository.GameRepository
	logger      zerolog.Logger
}

func NewTrackerService(
	trackedRepo *repository.TrackedGameRepository,
	statRepo *repository.StatLogRepository,
	gameRepo *repository.GameRepository,
	logger zerolog.Logger,
) *TrackerService {
	return &TrackerService{
		trackedRepo: trackedRepo,
		statRepo:    statRepo,
		gameRepo:    gameRepo,
		logger:      logger,
	}
}

// GameOverview is one tracked game as shown on the tracker page: the
// two most recent logs, the cooldown decision, and growth deltas.
type GameOverview struct {
	TrackedGame domain.TrackedGame
	Latest      *domain.StatLog
	Previous    *domain.StatLog
	Cooldown    stats.CooldownStatus
	Deltas      []stats.Delta
}

// Overview loads every tracked game for the user with its recent logs.
// The cooldown and deltas are recomputed from the snapshots on every
// call; nothing derived is cached.
func (s *TrackerService) Overview(ctx context.Context, userID string) ([]GameOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	tracked, err := s.trackedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	overviews := make([]GameOverview, len(tracked))

	g, gCtx := errgroup.WithContext(ctx)
	for i, tg := range tracked {
		g.Go(func() error {
			logs, err := s.statRepo.ListRecent(gCtx, tg.ID, constants.RecentLogCount)
			if err != nil {
				return err
			}
			overviews[i] = buildOverview(tg, logs, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to load stat logs")
		return nil, err
	}

	return overviews, nil
}

func buildOverview(tg domain.TrackedGame, logs []domain.StatLog, now time.Time) GameOverview {
	var latest, previous *domain.StatLog
	if len(logs) > 0 {
		latest = &logs[0]
	}
	if len(logs) > 1 {
		previous = &logs[1]
	}

	var lastAt *time.Time
	if latest != nil {
		lastAt = &latest.CreatedAt
	}

	deltas := make([]stats.Delta, 0, len(stats.Fields))
	for _, field := range stats.Fields {
		deltas = append(deltas, stats.Growth(field, latest, previous))
	}

	return GameOverview{
		TrackedGame: tg,
		Latest:      latest,
		Previous:    previous,
		Cooldown:    stats.Cooldown(lastAt, now),
		Deltas:      deltas,
	}
}

// Games lists the catalog available for tracking.
func (s *TrackerService) Games(ctx context.Context) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.gameRepo.List(ctx)
}

type TrackedGameInput struct {
	GameID      string
	Rank        string
	HoursPlayed int
	KDRatio     *float64
	GameTag     string
	Notes       string
}

func (s *TrackerService) AddGame(ctx context.Context, userID string, in TrackedGameInput) (*domain.TrackedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	game, err := s.gameRepo.Get(ctx, in.GameID)
	if err != nil {
		return nil, err
	}

	tg := &domain.TrackedGame{
		UserID:      userID,
		GameID:      game.ID,
		Rank:        in.Rank,
		HoursPlayed: in.HoursPlayed,
		KDRatio:     in.KDRatio,
		GameTag:     in.GameTag,
		Notes:       in.Notes,
		Game:        game,
	}
	if err := s.trackedRepo.Create(ctx, tg); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("game_id", game.ID).Msg("game added to tracker")
	return tg, nil
}

func (s *TrackerService) UpdateGame(ctx context.Context, userID, id string, in TrackedGameInput) (*domain.TrackedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	tg, err := s.ownedGame(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tg.Rank = in.Rank
	tg.HoursPlayed = in.HoursPlayed
	tg.KDRatio = in.KDRatio
	tg.GameTag = in.GameTag
	tg.Notes = in.Notes

	if err := s.trackedRepo.Update(ctx, tg); err != nil {
		return nil, err
	}
	return tg, nil
}

func (s *TrackerService) RemoveGame(ctx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.ownedGame(ctx, userID, id); err != nil {
		return err
	}

	if err := s.trackedRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("id", id).Msg("game removed from tracker")
	return nil
}

// SubmitResult is the outcome of a successful stat submission: the new
// snapshot plus the refreshed pair and recomputed deltas.
type SubmitResult struct {
	Log      *domain.StatLog
	Latest   *domain.StatLog
	Previous *domain.StatLog
	Cooldown stats.CooldownStatus
	Deltas   []stats.Delta
}

// SubmitLog runs the cooldown-gated submission flow: validate, insert
// under the server-side guard, then refresh the latest/previous pair.
// A failed refresh does not undo the insert; the stored log is returned
// as latest without retrying.
func (s *TrackerService) SubmitLog(ctx context.Context, userID, trackedGameID string, in stats.StatLogInput) (*SubmitResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	tg, err := s.ownedGame(ctx, userID, trackedGameID)
	if err != nil {
		return nil, err
	}

	values, err := stats.ValidateStatLog(in)
	if err != nil {
		s.logger.Debug().Err(err).Str("tracked_game_id", tg.ID).Msg("stat log rejected by validation")
		return nil, err
	}

	now := time.Now()
	log, err := s.statRepo.InsertGated(ctx, tg.ID, values, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("tracked_game_id", tg.ID).
		Str("log_id", log.ID).
		Int("matches_played", log.MatchesPlayed).
		Msg("stat log recorded")

	result := &SubmitResult{Log: log, Latest: log}

	// Single refresh attempt: the log is already durable, a failure
	// here only affects display freshness.
	logs, err := s.statRepo.ListRecent(ctx, tg.ID, constants.RecentLogCount)
	if err != nil {
		s.logger.Warn().Err(err).Str("tracked_game_id", tg.ID).Msg("failed to refresh logs after submit")
	} else {
		if len(logs) > 0 {
			result.Latest = &logs[0]
		}
		if len(logs) > 1 {
			result.Previous = &logs[1]
		}
	}

	result.Cooldown = stats.Cooldown(&result.Latest.CreatedAt, now)
	for _, field := range stats.Fields {
		result.Deltas = append(result.Deltas, stats.Growth(field, result.Latest, result.Previous))
	}
	return result, nil
}

// History returns recent logs for one tracked game, newest first.
func (s *TrackerService) History(ctx context.Context, userID, trackedGameID string, limit int) ([]domain.StatLog, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	tg, err := s.ownedGame(ctx, userID, trackedGameID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > constants.StatLogHistoryLimit {
		limit = constants.StatLogHistoryLimit
	}
	return s.statRepo.ListRecent(ctx, tg.ID, limit)
}

// ownedGame loads a tracked game and hides it from non-owners.
func (s *TrackerService) ownedGame(ctx context.Context, userID, id string) (*domain.TrackedGame, error) {
	tg, err := s.trackedRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tg.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return tg, nil
}
