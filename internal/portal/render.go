package portal

import (
	"log"
	"strings"

	"mednews/internal/imaging"
	"mednews/internal/models"
)

// previewWordLimit is the number of whitespace-delimited words shown before
// the description folds behind the read-more control.
const previewWordLimit = 100

// cardsPerRow is the fixed column count of the result grid.
const cardsPerRow = 2

type placeholders struct {
	title       string
	description string
	noImage     string
}

var placeholderText = map[models.Language]placeholders{
	models.LanguageEnglish: {
		title:       "No title available",
		description: "No description available",
		noImage:     "No image available",
	},
	models.LanguageMalayalam: {
		title:       "ശീർഷകം ലഭ്യമല്ല",
		description: "വിവരണം ലഭ്യമല്ല",
		noImage:     "ചിത്രം ലഭ്യമല്ല",
	},
}

// BuildCards renders one card per article in the active language, in input
// order. Empty text fields get language-specific placeholders, long
// descriptions fold behind an expand control, and the image slot always
// shows either the decoded image or a "no image available" note.
func BuildCards(articles []models.Article, lang models.Language) []models.Card {
	text := placeholderText[lang]

	cards := make([]models.Card, 0, len(articles))
	for _, article := range articles {
		card := models.Card{
			ID:  article.ID,
			Tag: article.Tag,
		}

		if !article.Date.IsZero() {
			card.DateLabel = article.Date.Format("2006-01-02")
		}

		card.Title = article.Title(lang)
		if card.Title == "" {
			card.Title = text.title
		}

		description := article.Description(lang)
		if description == "" {
			card.Preview = text.description
		} else {
			preview, truncated := TruncateWords(description, previewWordLimit)
			card.Preview = preview
			if truncated {
				card.Full = description
				card.Expandable = true
			}
		}

		decoded := imaging.Decode(article.ImageData)
		if decoded.HasImage() {
			card.ImageURI = decoded.DataURI()
		} else {
			if decoded.Status == imaging.StatusInvalid {
				log.Printf("Warning: article %d carries an undecodable image: %s", article.ID, decoded.Reason)
			}
			card.ImageNote = text.noImage
		}

		cards = append(cards, card)
	}
	return cards
}

// TruncateWords splits s into whitespace-delimited words and, when there are
// more than limit, returns the first limit words followed by an ellipsis and
// truncated=true. Shorter texts are returned unchanged.
func TruncateWords(s string, limit int) (string, bool) {
	words := strings.Fields(s)
	if len(words) <= limit {
		return s, false
	}
	return strings.Join(words[:limit], " ") + "...", true
}

// GroupCards lays cards out in fixed-size rows of two, keeping input order.
// The last row may hold a single card.
func GroupCards(cards []models.Card) []models.CardRow {
	rows := make([]models.CardRow, 0, (len(cards)+cardsPerRow-1)/cardsPerRow)
	for start := 0; start < len(cards); start += cardsPerRow {
		end := start + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, models.CardRow{Cards: cards[start:end]})
	}
	return rows
}
