package service

import (
	"context"
	"time"

	"gametracker/internal/constants"
	"gametracker/internal/domain"
	"gametracker/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type GuideService struct {
	guideRepo    *repository.GuideRepository
	progressRepo *repository.ProgressRepository
	logger       zerolog.Logger
}

func NewGuideService(guideRepo *repository.GuideRepository, progressRepo *repository.ProgressRepository, logger zerolog.Logger) *GuideService {
	return &GuideService{guideRepo: guideRepo, progressRepo: progressRepo, logger: logger}
}

func (s *GuideService) List(ctx context.Context) ([]domain.Guide, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.guideRepo.List(ctx)
}

type GuideDetail struct {
	Guide    domain.Guide
	Tasks    []domain.DailyTask
	Missions []domain.WeeklyMission
}

func (s *GuideService) Detail(ctx context.Context, guideID string) (*GuideDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	guide, err := s.guideRepo.Get(ctx, guideID)
	if err != nil {
		return nil, err
	}

	detail := &GuideDetail{Guide: *guide}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail.Tasks, err = s.guideRepo.ListTasks(gCtx, guideID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Missions, err = s.guideRepo.ListMissions(gCtx, guideID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// CompleteTask records one daily-task completion. A task can be
// completed once per calendar day; completing on consecutive days grows
// the streak, a gap resets it to 1.
func (s *GuideService) CompleteTask(ctx context.Context, userID, guideID, taskID string, now time.Time) (*domain.Progress, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	task, err := s.guideRepo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.GuideID != guideID {
		return nil, repository.ErrNotFound
	}

	dayStart := startOfDay(now)
	count, err := s.progressRepo.CountTaskCompletions(ctx, userID, taskID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrTaskCompletedToday
	}

	streak, err := s.nextStreak(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	progress := &domain.Progress{
		UserID:      userID,
		GuideID:     guideID,
		DailyTaskID: taskID,
		CompletedAt: now,
		StreakCount: streak,
		XPEarned:    task.XPReward,
	}
	if err := s.progressRepo.Insert(ctx, progress); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("task_id", taskID).
		Int("xp", task.XPReward).
		Int("streak", streak).
		Msg("daily task completed")
	return progress, nil
}

// CompleteMission records one weekly-mission completion, at most once
// per ISO week (Monday start).
func (s *GuideService) CompleteMission(ctx context.Context, userID, guideID, missionID string, now time.Time) (*domain.Progress, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	mission, err := s.guideRepo.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission.GuideID != guideID {
		return nil, repository.ErrNotFound
	}

	weekStart := startOfWeek(now)
	count, err := s.progressRepo.CountMissionCompletions(ctx, userID, missionID, weekStart, weekStart.Add(7*24*time.Hour))
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrMissionCompletedThisWeek
	}

	streak, err := s.currentStreak(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	progress := &domain.Progress{
		UserID:          userID,
		GuideID:         guideID,
		WeeklyMissionID: missionID,
		CompletedAt:     now,
		StreakCount:     streak,
		XPEarned:        mission.XPReward,
	}
	if err := s.progressRepo.Insert(ctx, progress); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("mission_id", missionID).
		Int("xp", mission.XPReward).
		Msg("weekly mission completed")
	return progress, nil
}

func (s *GuideService) GuideProgress(ctx context.Context, userID, guideID string) ([]domain.Progress, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.progressRepo.ListByUserGuide(ctx, userID, guideID)
}

type ProgressSummary struct {
	TotalXP     int
	Completions int
	Streak      int
}

func (s *GuideService) Summary(ctx context.Context, userID string) (*ProgressSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	totals, err := s.progressRepo.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}
	streak, err := s.currentStreak(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	return &ProgressSummary{
		TotalXP:     totals.TotalXP,
		Completions: totals.Completions,
		Streak:      streak,
	}, nil
}

// nextStreak computes the streak value for a completion happening now:
// activity yesterday extends the streak, activity today keeps it, a gap
// resets it.
func (s *GuideService) nextStreak(ctx context.Context, userID string, now time.Time) (int, error) {
	latest, err := s.progressRepo.Latest(ctx, userID)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 1, nil
	}
	switch startOfDay(now).Sub(startOfDay(latest.CompletedAt)) {
	case 0:
		return latest.StreakCount, nil
	case 24 * time.Hour:
		return latest.StreakCount + 1, nil
	default:
		return 1, nil
	}
}

// currentStreak is the streak as displayed: it fades to zero once a
// full day passes with no activity.
func (s *GuideService) currentStreak(ctx context.Context, userID string, now time.Time) (int, error) {
	latest, err := s.progressRepo.Latest(ctx, userID)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 0, nil
	}
	gap := startOfDay(now).Sub(startOfDay(latest.CompletedAt))
	if gap > 24*time.Hour {
		return 0, nil
	}
	return latest.StreakCount, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
