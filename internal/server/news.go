package server

import (
	"net/http"
	"time"
)

type newsArticleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Source      string    `json:"source,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	articles, err := s.news.List(r.Context(), r.URL.Query().Get("genre"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	out := make([]newsArticleResponse, len(articles))
	for i, a := range articles {
		out[i] = newsArticleResponse{
			ID:          a.ID,
			Title:       a.Title,
			Summary:     a.Summary,
			ImageURL:    a.ImageURL,
			Source:      a.Source,
			Genre:       a.Genre,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"articles": out})
}
