package models

import (
	"time"
)

// Language is one of the two display languages of the portal.
type Language string

const (
	LanguageEnglish   Language = "english"
	LanguageMalayalam Language = "malayalam"
)

// ParseLanguage maps user input to a Language. Unknown values report ok=false.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LanguageEnglish:
		return LanguageEnglish, true
	case LanguageMalayalam:
		return LanguageMalayalam, true
	}
	return "", false
}

// LanguageSelection models the page-session language choice as a small state
// machine: it starts unselected and moves to a language on the user's
// selection. A page with no selection shows only the language chooser.
type LanguageSelection struct {
	language Language
	selected bool
}

// Select transitions the selection to the given language.
func (s *LanguageSelection) Select(lang Language) {
	s.language = lang
	s.selected = true
}

// Selected reports whether a language has been chosen yet.
func (s *LanguageSelection) Selected() bool {
	return s.selected
}

// Language returns the active language, valid only when Selected is true.
func (s *LanguageSelection) Language() Language {
	return s.language
}

// TagAll is the sentinel tag value that bypasses the tag filter.
const TagAll = "All"

// Article is one row of the news table. Every field except ID may be empty.
type Article struct {
	ID                   int64     `json:"id"`
	TitleEnglish         string    `json:"cleaned_title"`
	TitleMalayalam       string    `json:"malayalam_title"`
	Date                 time.Time `json:"date"`
	Tag                  string    `json:"tag"`
	ImageData            string    `json:"image_data,omitempty"`
	DescriptionEnglish   string    `json:"cleaned_description"`
	DescriptionMalayalam string    `json:"malayalam_description"`
}

// Title returns the title for the given language.
func (a Article) Title(lang Language) string {
	if lang == LanguageMalayalam {
		return a.TitleMalayalam
	}
	return a.TitleEnglish
}

// Description returns the description for the given language.
func (a Article) Description(lang Language) string {
	if lang == LanguageMalayalam {
		return a.DescriptionMalayalam
	}
	return a.DescriptionEnglish
}

// FilterCriteria is the tuple driving the filter engine. It is recomputed on
// every request and has no persistent identity.
type FilterCriteria struct {
	Language Language `json:"language"`
	Query    string   `json:"query"`
	Tag      string   `json:"tag"`
}

// Card is one rendered article in the active language.
type Card struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	DateLabel string `json:"date_label"`
	Tag       string `json:"tag"`
	// Preview is the default-visible description text. When Expandable is
	// true it holds the first 100 words plus an ellipsis and Full carries
	// the untruncated text behind the expand control.
	Preview    string `json:"preview"`
	Full       string `json:"full,omitempty"`
	Expandable bool   `json:"expandable"`
	// ImageURI is a data URI for the validated image; empty when the
	// article has no usable image, in which case ImageNote is shown.
	ImageURI  string `json:"image_uri,omitempty"`
	ImageNote string `json:"image_note,omitempty"`
}

// CardRow is one fixed-size layout row of the result grid.
type CardRow struct {
	Cards []Card `json:"cards"`
}

// PortalPage is everything the page template needs for one render pass.
type PortalPage struct {
	Language     Language  `json:"language"`
	Query        string    `json:"query"`
	Tag          string    `json:"tag"`
	Tags         []string  `json:"tags"`
	Rows         []CardRow `json:"rows"`
	Count        int       `json:"count"`
	StoreWarning string    `json:"store_warning,omitempty"`
}
