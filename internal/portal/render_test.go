package portal

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"mednews/internal/models"
)

func wordRun(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i+1)
	}
	return strings.Join(words, " ")
}

func TestTruncateWords(t *testing.T) {
	preview, truncated := TruncateWords(wordRun(150), 100)
	if !truncated {
		t.Fatal("Expected 150 words to be truncated")
	}
	if !strings.HasSuffix(preview, "...") {
		t.Error("Expected preview to end with an ellipsis")
	}
	previewWords := strings.Fields(strings.TrimSuffix(preview, "..."))
	if len(previewWords) != 100 {
		t.Errorf("Expected exactly 100 preview words, got %d", len(previewWords))
	}
	if previewWords[99] != "word100" {
		t.Errorf("Expected preview to keep input order, last word was %q", previewWords[99])
	}

	full, truncated := TruncateWords(wordRun(100), 100)
	if truncated {
		t.Error("Expected exactly 100 words to render in full")
	}
	if full != wordRun(100) {
		t.Error("Expected untruncated text to be unchanged")
	}
}

func TestBuildCards_TruncationAndExpand(t *testing.T) {
	long := wordRun(150)
	articles := []models.Article{
		{ID: 1, TitleEnglish: "Long", DescriptionEnglish: long},
		{ID: 2, TitleEnglish: "Short", DescriptionEnglish: wordRun(100)},
	}

	cards := BuildCards(articles, models.LanguageEnglish)
	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}

	if !cards[0].Expandable {
		t.Error("Expected 150-word description to be expandable")
	}
	if cards[0].Full != long {
		t.Error("Expected full text to be available behind the expand control")
	}
	if len(strings.Fields(strings.TrimSuffix(cards[0].Preview, "..."))) != 100 {
		t.Error("Expected default-visible preview of exactly 100 words")
	}

	if cards[1].Expandable {
		t.Error("Expected 100-word description to have no expand control")
	}
	if cards[1].Preview != wordRun(100) {
		t.Error("Expected 100-word description to render in full")
	}
	if cards[1].Full != "" {
		t.Error("Expected no hidden full text when nothing is truncated")
	}
}

func TestBuildCards_PlaceholdersPerLanguage(t *testing.T) {
	articles := []models.Article{{ID: 1, Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)}}

	english := BuildCards(articles, models.LanguageEnglish)
	if english[0].Title != "No title available" {
		t.Errorf("Expected english title placeholder, got %q", english[0].Title)
	}
	if english[0].Preview != "No description available" {
		t.Errorf("Expected english description placeholder, got %q", english[0].Preview)
	}
	if english[0].DateLabel != "2025-03-14" {
		t.Errorf("Expected date label, got %q", english[0].DateLabel)
	}

	malayalam := BuildCards(articles, models.LanguageMalayalam)
	if malayalam[0].Title != "ശീർഷകം ലഭ്യമല്ല" {
		t.Errorf("Expected malayalam title placeholder, got %q", malayalam[0].Title)
	}
	if malayalam[0].Preview != "വിവരണം ലഭ്യമല്ല" {
		t.Errorf("Expected malayalam description placeholder, got %q", malayalam[0].Preview)
	}
}

func TestBuildCards_ImageSlotNeverBlank(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	articles := []models.Article{
		{ID: 1, TitleEnglish: "With image", ImageData: base64.StdEncoding.EncodeToString(buf.Bytes())},
		{ID: 2, TitleEnglish: "Broken image", ImageData: "%%% garbage %%%"},
		{ID: 3, TitleEnglish: "No image"},
	}

	cards := BuildCards(articles, models.LanguageEnglish)

	if !strings.HasPrefix(cards[0].ImageURI, "data:image/png;base64,") {
		t.Errorf("Expected data URI for valid image, got %q", cards[0].ImageURI)
	}
	if cards[0].ImageNote != "" {
		t.Error("Expected no image note when the image renders")
	}

	for _, card := range cards[1:] {
		if card.ImageURI != "" {
			t.Errorf("Expected no image URI for card %d", card.ID)
		}
		if card.ImageNote != "No image available" {
			t.Errorf("Expected 'No image available' indicator for card %d, got %q", card.ID, card.ImageNote)
		}
	}
}

func TestGroupCards(t *testing.T) {
	cards := []models.Card{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	rows := GroupCards(cards)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows for 5 cards, got %d", len(rows))
	}
	if len(rows[0].Cards) != 2 || len(rows[1].Cards) != 2 {
		t.Error("Expected full rows of 2 cards")
	}
	if len(rows[2].Cards) != 1 {
		t.Errorf("Expected 1 card in the last row, got %d", len(rows[2].Cards))
	}
	if rows[0].Cards[0].ID != 1 || rows[2].Cards[0].ID != 5 {
		t.Error("Expected rows to keep input order")
	}

	if len(GroupCards(nil)) != 0 {
		t.Error("Expected no rows for no cards")
	}
}
