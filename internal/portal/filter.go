package portal

import (
	"strings"

	"mednews/internal/models"
)

// FilterArticles returns the articles matching the criteria, preserving the
// relative order of the input. The tag filter is an exact match bypassed by
// the TagAll sentinel; the text filter is a case-insensitive substring match
// against the title or description of the active language only. Both must
// pass. An empty query bypasses the text filter entirely.
func FilterArticles(articles []models.Article, criteria models.FilterCriteria) []models.Article {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	result := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		if !matchesTag(article, criteria.Tag) {
			continue
		}
		if query != "" && !matchesQuery(article, criteria.Language, query) {
			continue
		}
		result = append(result, article)
	}
	return result
}

func matchesTag(article models.Article, tag string) bool {
	if tag == "" || tag == models.TagAll {
		return true
	}
	return article.Tag == tag
}

// matchesQuery checks only the active language's fields; text present in the
// other language never matches. Empty fields never match.
func matchesQuery(article models.Article, lang models.Language, loweredQuery string) bool {
	return containsFold(article.Title(lang), loweredQuery) ||
		containsFold(article.Description(lang), loweredQuery)
}

func containsFold(field, loweredQuery string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), loweredQuery)
}
