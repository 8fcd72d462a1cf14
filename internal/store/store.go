// Package store implements read-only access to the news article table.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"

	"mednews/internal/models"
)

// ErrStoreUnavailable reports that the news store could not be reached after
// the configured number of attempts. Callers render an empty result and a
// visible warning instead of failing the request.
var ErrStoreUnavailable = errors.New("news store unavailable")

// Store is the read-only contract against the news table.
type Store interface {
	// ListArticles returns the newest articles, date descending, bounded
	// by the configured limit.
	ListArticles(ctx context.Context) ([]models.Article, error)
	// ListTags returns the distinct non-null tag values, sorted.
	ListTags(ctx context.Context) ([]string, error)
}

const (
	listArticlesQuery = `SELECT id, cleaned_title, malayalam_title, date, tag, image_data,
       cleaned_description, malayalam_description
FROM news_articles
ORDER BY date DESC
LIMIT ?`

	listTagsQuery = `SELECT DISTINCT tag FROM news_articles WHERE tag IS NOT NULL ORDER BY tag`
)

// MySQLStore implements Store against MySQL. Every operation runs a single
// query on a pooled connection and retries a fixed number of times with a
// fixed delay before giving up.
type MySQLStore struct {
	db       *sqlx.DB
	limit    int
	attempts uint
	delay    time.Duration
}

func New(db *sqlx.DB, limit int, attempts uint, delay time.Duration) *MySQLStore {
	return &MySQLStore{
		db:       db,
		limit:    limit,
		attempts: attempts,
		delay:    delay,
	}
}

// articleRow mirrors the table columns; every field except id is nullable.
type articleRow struct {
	ID                   int64          `db:"id"`
	CleanedTitle         sql.NullString `db:"cleaned_title"`
	MalayalamTitle       sql.NullString `db:"malayalam_title"`
	Date                 sql.NullTime   `db:"date"`
	Tag                  sql.NullString `db:"tag"`
	ImageData            sql.NullString `db:"image_data"`
	CleanedDescription   sql.NullString `db:"cleaned_description"`
	MalayalamDescription sql.NullString `db:"malayalam_description"`
}

func (r articleRow) toArticle() models.Article {
	return models.Article{
		ID:                   r.ID,
		TitleEnglish:         r.CleanedTitle.String,
		TitleMalayalam:       r.MalayalamTitle.String,
		Date:                 r.Date.Time,
		Tag:                  r.Tag.String,
		ImageData:            r.ImageData.String,
		DescriptionEnglish:   r.CleanedDescription.String,
		DescriptionMalayalam: r.MalayalamDescription.String,
	}
}

func (s *MySQLStore) ListArticles(ctx context.Context) ([]models.Article, error) {
	var rows []articleRow
	err := s.withRetry(ctx, "list articles", func() error {
		rows = rows[:0]
		return s.db.SelectContext(ctx, &rows, listArticlesQuery, s.limit)
	})
	if err != nil {
		return nil, err
	}

	articles := make([]models.Article, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, row.toArticle())
	}
	return articles, nil
}

func (s *MySQLStore) ListTags(ctx context.Context) ([]string, error) {
	var tags []string
	err := s.withRetry(ctx, "list tags", func() error {
		tags = tags[:0]
		return s.db.SelectContext(ctx, &tags, listTagsQuery)
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// withRetry runs op up to the configured attempt bound with a fixed delay
// between attempts. Once the bound is exhausted no further query is issued
// and the last error is wrapped as ErrStoreUnavailable.
func (s *MySQLStore) withRetry(ctx context.Context, what string, op func() error) error {
	err := retry.Do(
		op,
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, what, err)
	}
	return nil
}
