package server

import (
	"net/http"
	"time"

	"gametracker/internal/domain"
	"gametracker/internal/middleware"
)

type guideResponse struct {
	ID              string        `json:"id"`
	Game            *gameResponse `json:"game,omitempty"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	DifficultyLevel string        `json:"difficulty_level"`
	EstimatedDays   int           `json:"estimated_days"`
}

type taskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TaskOrder   int    `json:"task_order"`
	XPReward    int    `json:"xp_reward"`
}

type missionResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	XPReward    int    `json:"xp_reward"`
}

type progressResponse struct {
	ID              string    `json:"id"`
	GuideID         string    `json:"guide_id"`
	DailyTaskID     string    `json:"daily_task_id,omitempty"`
	WeeklyMissionID string    `json:"weekly_mission_id,omitempty"`
	CompletedAt     time.Time `json:"completed_at"`
	StreakCount     int       `json:"streak_count"`
	XPEarned        int       `json:"xp_earned"`
}

func toProgressResponse(p *domain.Progress) progressResponse {
	return progressResponse{
		ID:              p.ID,
		GuideID:         p.GuideID,
		DailyTaskID:     p.DailyTaskID,
		WeeklyMissionID: p.WeeklyMissionID,
		CompletedAt:     p.CompletedAt,
		StreakCount:     p.StreakCount,
		XPEarned:        p.XPEarned,
	}
}

func (s *Server) handleListGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := s.guides.List(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	out := make([]guideResponse, len(guides))
	for i, g := range guides {
		out[i] = guideResponse{
			ID:              g.ID,
			Game:            toGameResponse(g.Game),
			Title:           g.Title,
			Description:     g.Description,
			DifficultyLevel: g.DifficultyLevel,
			EstimatedDays:   g.EstimatedDays,
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"guides": out})
}

func (s *Server) handleGuideDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := s.guides.Detail(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	tasks := make([]taskResponse, len(detail.Tasks))
	for i, t := range detail.Tasks {
		tasks[i] = taskResponse{ID: t.ID, Title: t.Title, Description: t.Description, TaskOrder: t.TaskOrder, XPReward: t.XPReward}
	}
	missions := make([]missionResponse, len(detail.Missions))
	for i, m := range detail.Missions {
		missions[i] = missionResponse{ID: m.ID, Title: m.Title, Description: m.Description, XPReward: m.XPReward}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"guide": guideResponse{
			ID:              detail.Guide.ID,
			Title:           detail.Guide.Title,
			Description:     detail.Guide.Description,
			DifficultyLevel: detail.Guide.DifficultyLevel,
			EstimatedDays:   detail.Guide.EstimatedDays,
		},
		"daily_tasks":     tasks,
		"weekly_missions": missions,
	})
}

func (s *Server) handleGuideProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.guides.GuideProgress(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	out := make([]progressResponse, len(progress))
	for i := range progress {
		out[i] = toProgressResponse(&progress[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"progress": out})
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	progress, err := s.guides.CompleteTask(
		r.Context(),
		middleware.GetUserID(r.Context()),
		r.PathValue("id"),
		r.PathValue("taskID"),
		time.Now(),
	)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProgressResponse(progress))
}

func (s *Server) handleCompleteMission(w http.ResponseWriter, r *http.Request) {
	progress, err := s.guides.CompleteMission(
		r.Context(),
		middleware.GetUserID(r.Context()),
		r.PathValue("id"),
		r.PathValue("missionID"),
		time.Now(),
	)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProgressResponse(progress))
}

func (s *Server) handleProgressSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.guides.Summary(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_xp":    summary.TotalXP,
		"completions": summary.Completions,
		"streak":      summary.Streak,
	})
}
