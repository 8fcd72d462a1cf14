package portal

import (
	"reflect"
	"testing"

	"mednews/internal/models"
)

func sampleArticles() []models.Article {
	return []models.Article{
		{
			ID:                   1,
			TitleEnglish:         "Flu Outbreak in the North",
			TitleMalayalam:       "വടക്ക് പനി പടരുന്നു",
			Tag:                  "health",
			DescriptionEnglish:   "Hospitals report rising cases",
			DescriptionMalayalam: "ആശുപത്രികളിൽ കേസുകൾ കൂടുന്നു",
		},
		{
			ID:                 2,
			TitleEnglish:       "New Cardiology Wing Opens",
			TitleMalayalam:     "പുതിയ കാർഡിയോളജി വിഭാഗം",
			Tag:                "cardiology",
			DescriptionEnglish: "A modern facility for heart care",
		},
		{
			ID:           3,
			TitleEnglish: "Vaccination Drive Extended",
			Tag:          "health",
			// Malayalam fields intentionally absent.
		},
	}
}

func ids(articles []models.Article) []int64 {
	out := make([]int64, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterArticles_TagExactMatch(t *testing.T) {
	got := FilterArticles(sampleArticles(), models.FilterCriteria{
		Language: models.LanguageEnglish,
		Tag:      "health",
	})

	if !reflect.DeepEqual(ids(got), []int64{1, 3}) {
		t.Errorf("Expected articles 1 and 3, got %v", ids(got))
	}

	for _, a := range got {
		if a.Tag != "health" {
			t.Errorf("Expected only tag 'health', got %q", a.Tag)
		}
	}
}

func TestFilterArticles_AllSentinelBypassesTagFilter(t *testing.T) {
	got := FilterArticles(sampleArticles(), models.FilterCriteria{
		Language: models.LanguageEnglish,
		Tag:      models.TagAll,
	})

	if len(got) != 3 {
		t.Errorf("Expected unfiltered set of 3, got %d", len(got))
	}
}

func TestFilterArticles_CaseInsensitiveQuery(t *testing.T) {
	got := FilterArticles(sampleArticles(), models.FilterCriteria{
		Language: models.LanguageEnglish,
		Query:    "flu",
		Tag:      models.TagAll,
	})

	if !reflect.DeepEqual(ids(got), []int64{1}) {
		t.Errorf("Expected 'flu' to match 'Flu Outbreak', got %v", ids(got))
	}
}

func TestFilterArticles_QueryMatchesDescription(t *testing.T) {
	got := FilterArticles(sampleArticles(), models.FilterCriteria{
		Language: models.LanguageEnglish,
		Query:    "heart care",
		Tag:      models.TagAll,
	})

	if !reflect.DeepEqual(ids(got), []int64{2}) {
		t.Errorf("Expected description match on article 2, got %v", ids(got))
	}
}

func TestFilterArticles_ActiveLanguageOnly(t *testing.T) {
	// "Flu" exists only in the English fields; with Malayalam active it
	// must not match.
	got := FilterArticles(sampleArticles(), models.FilterCriteria{
		Language: models.LanguageMalayalam,
		Query:    "flu",
		Tag:      models.TagAll,
	})

	if len(got) != 0 {
		t.Errorf("Expected no matches across languages, got %v", ids(got))
	}

	// The Malayalam text matches only when Malayalam is active.
	got = FilterArticles(sampleArticles(), models.FilterCriteria{
		Language: models.LanguageMalayalam,
		Query:    "പനി",
		Tag:      models.TagAll,
	})

	if !reflect.DeepEqual(ids(got), []int64{1}) {
		t.Errorf("Expected malayalam match on article 1, got %v", ids(got))
	}
}

func TestFilterArticles_EmptyQueryBypassesTextFilter(t *testing.T) {
	got := FilterArticles(sampleArticles(), models.FilterCriteria{
		Language: models.LanguageMalayalam,
		Query:    "   ",
		Tag:      models.TagAll,
	})

	// Articles with absent malayalam fields survive an empty query.
	if len(got) != 3 {
		t.Errorf("Expected all 3 articles for blank query, got %d", len(got))
	}
}

func TestFilterArticles_FiltersAreConjunctive(t *testing.T) {
	got := FilterArticles(sampleArticles(), models.FilterCriteria{
		Language: models.LanguageEnglish,
		Query:    "flu",
		Tag:      "cardiology",
	})

	if len(got) != 0 {
		t.Errorf("Expected no article to pass both filters, got %v", ids(got))
	}
}

func TestFilterArticles_AbsentFieldsNeverMatch(t *testing.T) {
	got := FilterArticles(sampleArticles(), models.FilterCriteria{
		Language: models.LanguageMalayalam,
		Query:    "vaccination",
		Tag:      models.TagAll,
	})

	if len(got) != 0 {
		t.Errorf("Expected article with absent malayalam fields not to match, got %v", ids(got))
	}
}

func TestFilterArticles_EmptyInput(t *testing.T) {
	got := FilterArticles(nil, models.FilterCriteria{
		Language: models.LanguageEnglish,
		Query:    "flu",
		Tag:      models.TagAll,
	})

	if len(got) != 0 {
		t.Errorf("Expected empty result for empty input, got %d", len(got))
	}
}

func TestFilterArticles_Idempotent(t *testing.T) {
	criteria := models.FilterCriteria{
		Language: models.LanguageEnglish,
		Query:    "o",
		Tag:      "health",
	}

	first := FilterArticles(sampleArticles(), criteria)
	second := FilterArticles(sampleArticles(), criteria)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical criteria on identical input to yield identical output")
	}
}
