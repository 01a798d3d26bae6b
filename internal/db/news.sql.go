package db

import (
	"context"
	"database/sql"
	"time"
)

const upsertNewsArticle = `
INSERT INTO news_articles (id, title, summary, content, image_url, source, genre, url, published_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
    title = excluded.title,
    summary = excluded.summary,
    content = excluded.content,
    image_url = excluded.image_url,
    source = excluded.source,
    genre = excluded.genre,
    published_at = excluded.published_at
`

type UpsertNewsArticleParams struct {
	ID          string
	Title       string
	Summary     string
	Content     string
	ImageUrl    string
	Source      string
	Genre       string
	Url         string
	PublishedAt time.Time
	CreatedAt   time.Time
}

func (q *Queries) UpsertNewsArticle(ctx context.Context, arg UpsertNewsArticleParams) error {
	_, err := q.db.ExecContext(ctx, upsertNewsArticle,
		arg.ID,
		arg.Title,
		arg.Summary,
		arg.Content,
		arg.ImageUrl,
		arg.Source,
		arg.Genre,
		arg.Url,
		arg.PublishedAt,
		arg.CreatedAt,
	)
	return err
}

const newsColumns = `id, title, summary, content, image_url, source, genre, url, published_at, created_at`

func scanNewsArticle(row interface{ Scan(...interface{}) error }) (NewsArticle, error) {
	var i NewsArticle
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Summary,
		&i.Content,
		&i.ImageUrl,
		&i.Source,
		&i.Genre,
		&i.Url,
		&i.PublishedAt,
		&i.CreatedAt,
	)
	return i, err
}

const listNewsArticles = `
SELECT ` + newsColumns + `
FROM news_articles ORDER BY published_at DESC LIMIT ?
`

func (q *Queries) ListNewsArticles(ctx context.Context, limit int64) ([]NewsArticle, error) {
	rows, err := q.db.QueryContext(ctx, listNewsArticles, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNewsArticles(rows)
}

const listNewsArticlesByGenre = `
SELECT ` + newsColumns + `
FROM news_articles WHERE genre = ?
ORDER BY published_at DESC LIMIT ?
`

type ListNewsArticlesByGenreParams struct {
	Genre string
	Limit int64
}

func (q *Queries) ListNewsArticlesByGenre(ctx context.Context, arg ListNewsArticlesByGenreParams) ([]NewsArticle, error) {
	rows, err := q.db.QueryContext(ctx, listNewsArticlesByGenre, arg.Genre, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNewsArticles(rows)
}

func collectNewsArticles(rows *sql.Rows) ([]NewsArticle, error) {
	var items []NewsArticle
	for rows.Next() {
		i, err := scanNewsArticle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getNewestArticleCreatedAt = `
SELECT MAX(created_at) FROM news_articles
`

// GetNewestArticleCreatedAt returns the zero time when the table is empty.
func (q *Queries) GetNewestArticleCreatedAt(ctx context.Context) (time.Time, error) {
	var newest sql.NullTime
	if err := q.db.QueryRowContext(ctx, getNewestArticleCreatedAt).Scan(&newest); err != nil {
		return time.Time{}, err
	}
	if !newest.Valid {
		return time.Time{}, nil
	}
	return newest.Time, nil
}
