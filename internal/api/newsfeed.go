package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gametracker/internal/config"

	"github.com/valyala/fasthttp"
)

// NewsFeedClient pulls gaming news from the external feed API. The feed
// is the only outbound dependency, so failures here must never take the
// news listing down with them.
type NewsFeedClient struct {
	baseURL string
	apiKey  string
	client  *fasthttp.Client
}

func NewNewsFeedClient(cfg *config.Config) *NewsFeedClient {
	return &NewsFeedClient{
		baseURL: cfg.NewsFeedURL,
		apiKey:  cfg.NewsFeedAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// Enabled reports whether an API key is configured. Without one the
// news service serves stored articles only.
func (c *NewsFeedClient) Enabled() bool {
	return c.apiKey != ""
}

func (c *NewsFeedClient) GetLatest(ctx context.Context, limit int) (*FeedResponse, error) {
	url := fmt.Sprintf("%s/gaming/latest?limit=%d", c.baseURL, limit)
	return doRequest[FeedResponse](ctx, c, url)
}

func (c *NewsFeedClient) GetByGenre(ctx context.Context, genre string, limit int) (*FeedResponse, error) {
	url := fmt.Sprintf("%s/gaming/genre/%s?limit=%d", c.baseURL, genre, limit)
	return doRequest[FeedResponse](ctx, c, url)
}

func doRequest[T any](ctx context.Context, client *NewsFeedClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("feed API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type FeedResponse struct {
	Status   int           `json:"status"`
	Articles []FeedArticle `json:"articles"`
}

type FeedArticle struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	Source      string    `json:"source"`
	Genre       string    `json:"genre"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}
