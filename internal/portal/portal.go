// Package portal holds the news-browsing pipeline: read-through snapshot
// access, the filter engine and the card renderer.
package portal

import (
	"context"
	"log"
	"time"

	"mednews/internal/cache"
	"mednews/internal/models"
	"mednews/internal/store"
)

// Portal is the read-through access point for article and tag snapshots.
// Snapshots are memoized process-wide; after expiry the next caller fetches
// synchronously from the store, there is no background refresh.
type Portal struct {
	cacheManager *cache.Manager
	store        store.Store
	articlesTTL  time.Duration
	tagsTTL      time.Duration
}

func New(cacheManager *cache.Manager, st store.Store, articlesTTL, tagsTTL time.Duration) *Portal {
	return &Portal{
		cacheManager: cacheManager,
		store:        st,
		articlesTTL:  articlesTTL,
		tagsTTL:      tagsTTL,
	}
}

// Articles returns the current article snapshot, fetching it from the store
// when the cached one has expired. A store failure yields an empty slice and
// the error; failures are not cached, so the next interaction retries.
func (p *Portal) Articles(ctx context.Context) ([]models.Article, error) {
	if cached, found := p.cacheManager.Get(cache.KeyArticles); found {
		if articles, ok := cached.([]models.Article); ok {
			return articles, nil
		}
	}

	articles, err := p.store.ListArticles(ctx)
	if err != nil {
		log.Printf("Warning: failed to load articles: %v", err)
		return []models.Article{}, err
	}

	p.cacheManager.Set(cache.KeyArticles, articles, p.articlesTTL)
	return articles, nil
}

// Tags returns the current distinct-tag snapshot under the same read-through
// contract as Articles.
func (p *Portal) Tags(ctx context.Context) ([]string, error) {
	if cached, found := p.cacheManager.Get(cache.KeyTags); found {
		if tags, ok := cached.([]string); ok {
			return tags, nil
		}
	}

	tags, err := p.store.ListTags(ctx)
	if err != nil {
		log.Printf("Warning: failed to load tags: %v", err)
		return []string{}, err
	}

	p.cacheManager.Set(cache.KeyTags, tags, p.tagsTTL)
	return tags, nil
}

// TagOptions returns the dropdown values: the sentinel first, then the
// distinct tags observed in the store.
func (p *Portal) TagOptions(ctx context.Context) ([]string, error) {
	tags, err := p.Tags(ctx)
	return append([]string{models.TagAll}, tags...), err
}
