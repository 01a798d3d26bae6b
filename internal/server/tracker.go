package server

import (
	"net/http"
	"strconv"
	"time"

	"gametracker/internal/domain"
	"gametracker/internal/middleware"
	"gametracker/internal/service"
	"gametracker/internal/stats"
)

type gameResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Genre    string `json:"genre"`
	Platform string `json:"platform"`
	IconURL  string `json:"icon_url,omitempty"`
}

func toGameResponse(g *domain.Game) *gameResponse {
	if g == nil {
		return nil
	}
	return &gameResponse{ID: g.ID, Name: g.Name, Genre: g.Genre, Platform: g.Platform, IconURL: g.IconURL}
}

type statLogResponse struct {
	ID              string    `json:"id"`
	Rank            string    `json:"rank,omitempty"`
	KDRatio         *float64  `json:"kd_ratio,omitempty"`
	FDRatio         *float64  `json:"fd_ratio,omitempty"`
	MatchesPlayed   int       `json:"matches_played"`
	Season          string    `json:"season,omitempty"`
	HeadshotPercent *float64  `json:"headshot_percent,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func toStatLogResponse(l *domain.StatLog) *statLogResponse {
	if l == nil {
		return nil
	}
	return &statLogResponse{
		ID:              l.ID,
		Rank:            l.Rank,
		KDRatio:         l.KDRatio,
		FDRatio:         l.FDRatio,
		MatchesPlayed:   l.MatchesPlayed,
		Season:          l.Season,
		HeadshotPercent: l.HeadshotPercent,
		Notes:           l.Notes,
		CreatedAt:       l.CreatedAt,
	}
}

type deltaResponse struct {
	Field   string   `json:"field"`
	Status  string   `json:"status"`
	Value   *float64 `json:"value,omitempty"`
	Display string   `json:"display,omitempty"`
}

func toDeltaResponses(deltas []stats.Delta) []deltaResponse {
	out := make([]deltaResponse, len(deltas))
	for i, d := range deltas {
		resp := deltaResponse{Field: d.Field.String(), Display: d.Display()}
		switch d.Kind {
		case stats.DeltaNoData:
			resp.Status = "no_data"
		case stats.DeltaZero:
			resp.Status = "zero"
		case stats.DeltaValue:
			resp.Status = "delta"
			v := d.Value
			resp.Value = &v
		}
		out[i] = resp
	}
	return out
}

type trackedGameResponse struct {
	ID            string           `json:"id"`
	Game          *gameResponse    `json:"game,omitempty"`
	Rank          string           `json:"rank,omitempty"`
	HoursPlayed   int              `json:"hours_played"`
	KDRatio       *float64         `json:"kd_ratio,omitempty"`
	GameTag       string           `json:"game_tag,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	State         string           `json:"state"`
	RemainingDays int              `json:"remaining_days,omitempty"`
	Latest        *statLogResponse `json:"latest,omitempty"`
	Previous      *statLogResponse `json:"previous,omitempty"`
	Deltas        []deltaResponse  `json:"deltas"`
	CreatedAt     time.Time        `json:"created_at"`
}

func toOverviewResponse(o service.GameOverview) trackedGameResponse {
	return trackedGameResponse{
		ID:            o.TrackedGame.ID,
		Game:          toGameResponse(o.TrackedGame.Game),
		Rank:          o.TrackedGame.Rank,
		HoursPlayed:   o.TrackedGame.HoursPlayed,
		KDRatio:       o.TrackedGame.KDRatio,
		GameTag:       o.TrackedGame.GameTag,
		Notes:         o.TrackedGame.Notes,
		State:         string(o.Cooldown.State()),
		RemainingDays: o.Cooldown.RemainingDays,
		Latest:        toStatLogResponse(o.Latest),
		Previous:      toStatLogResponse(o.Previous),
		Deltas:        toDeltaResponses(o.Deltas),
		CreatedAt:     o.TrackedGame.CreatedAt,
	}
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.tracker.Games(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	out := make([]gameResponse, len(games))
	for i := range games {
		out[i] = *toGameResponse(&games[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"games": out})
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	overviews, err := s.tracker.Overview(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	out := make([]trackedGameResponse, len(overviews))
	for i, o := range overviews {
		out[i] = toOverviewResponse(o)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tracked_games": out})
}

type trackedGameRequest struct {
	GameID      string   `json:"game_id"`
	Rank        string   `json:"rank"`
	HoursPlayed int      `json:"hours_played"`
	KDRatio     *float64 `json:"kd_ratio"`
	GameTag     string   `json:"game_tag"`
	Notes       string   `json:"notes"`
}

func (req trackedGameRequest) toInput() service.TrackedGameInput {
	return service.TrackedGameInput{
		GameID:      req.GameID,
		Rank:        req.Rank,
		HoursPlayed: req.HoursPlayed,
		KDRatio:     req.KDRatio,
		GameTag:     req.GameTag,
		Notes:       req.Notes,
	}
}

func (s *Server) handleAddGame(w http.ResponseWriter, r *http.Request) {
	var req trackedGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	tg, err := s.tracker.AddGame(r.Context(), middleware.GetUserID(r.Context()), req.toInput())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, trackedGameResponse{
		ID:          tg.ID,
		Game:        toGameResponse(tg.Game),
		Rank:        tg.Rank,
		HoursPlayed: tg.HoursPlayed,
		KDRatio:     tg.KDRatio,
		GameTag:     tg.GameTag,
		Notes:       tg.Notes,
		State:       string(stats.StateReady),
		Deltas:      []deltaResponse{},
		CreatedAt:   tg.CreatedAt,
	})
}

func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	var req trackedGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	tg, err := s.tracker.UpdateGame(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id"), req.toInput())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": tg.ID, "updated_at": tg.UpdatedAt})
}

func (s *Server) handleRemoveGame(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.RemoveGame(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubmitLog(w http.ResponseWriter, r *http.Request) {
	var req stats.StatLogInput
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.tracker.SubmitLog(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id"), req)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"log":            toStatLogResponse(result.Log),
		"latest":         toStatLogResponse(result.Latest),
		"previous":       toStatLogResponse(result.Previous),
		"state":          string(result.Cooldown.State()),
		"remaining_days": result.Cooldown.RemainingDays,
		"deltas":         toDeltaResponses(result.Deltas),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := s.tracker.History(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id"), limit)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	out := make([]statLogResponse, len(logs))
	for i := range logs {
		out[i] = *toStatLogResponse(&logs[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": out})
}
