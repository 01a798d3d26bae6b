// Package server exposes the HTTP JSON API. Handlers are thin: decode,
// call a service, map the result or error. All derived tracker state
// (cooldown, deltas) is recomputed by the service on every request.
package server

import (
	"net/http"

	"gametracker/internal/service"

	"github.com/rs/zerolog"
)

type Server struct {
	auth    *service.AuthService
	tracker *service.TrackerService
	guides  *service.GuideService
	news    *service.NewsService
	logger  zerolog.Logger
}

func New(
	auth *service.AuthService,
	tracker *service.TrackerService,
	guides *service.GuideService,
	news *service.NewsService,
	logger zerolog.Logger,
) *Server {
	return &Server{auth: auth, tracker: tracker, guides: guides, news: news, logger: logger}
}

// Register mounts every route. authMW guards everything except the
// auth endpoints themselves.
func (s *Server) Register(mux *http.ServeMux, authMW func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, authMW(h))
	}

	protected("GET /api/v1/profile", s.handleGetProfile)
	protected("PUT /api/v1/profile", s.handleUpdateProfile)

	protected("GET /api/v1/games", s.handleListGames)

	protected("GET /api/v1/tracker", s.handleOverview)
	protected("POST /api/v1/tracker", s.handleAddGame)
	protected("PUT /api/v1/tracker/{id}", s.handleUpdateGame)
	protected("DELETE /api/v1/tracker/{id}", s.handleRemoveGame)
	protected("POST /api/v1/tracker/{id}/logs", s.handleSubmitLog)
	protected("GET /api/v1/tracker/{id}/logs", s.handleHistory)

	protected("GET /api/v1/guides", s.handleListGuides)
	protected("GET /api/v1/guides/{id}", s.handleGuideDetail)
	protected("GET /api/v1/guides/{id}/progress", s.handleGuideProgress)
	protected("POST /api/v1/guides/{id}/tasks/{taskID}/complete", s.handleCompleteTask)
	protected("POST /api/v1/guides/{id}/missions/{missionID}/complete", s.handleCompleteMission)

	protected("GET /api/v1/progress", s.handleProgressSummary)

	protected("GET /api/v1/news", s.handleListNews)
}
