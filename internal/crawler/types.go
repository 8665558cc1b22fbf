package crawler

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// Category is the closed set of tool categories a record can carry
type Category string

const (
	CategoryChat    Category = "chat"
	CategoryWriting Category = "writing"
	CategoryImage   Category = "image"
	CategoryVideo   Category = "video"
	CategoryAudio   Category = "audio"
	CategoryCoding  Category = "coding"
	CategoryOffice  Category = "office"
	CategoryDesign  Category = "design"
)

// Categories lists every category in scrape order
var Categories = []Category{
	CategoryChat,
	CategoryWriting,
	CategoryImage,
	CategoryVideo,
	CategoryAudio,
	CategoryCoding,
	CategoryOffice,
	CategoryDesign,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ToolRecord represents one scraped AI tool
type ToolRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	URL         string   `json:"url"`
	Category    Category `json:"category"`
	IsHot       bool     `json:"isHot"`
	IsNew       bool     `json:"isNew"`
}

// PageFetcher retrieves the HTML of a page
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// CategorySource is a category listing page and the category its tools get
type CategorySource struct {
	Name     string
	URL      string
	Category Category
}

// ElementHandler extracts one value from a card, empty when not found
type ElementHandler func(*goquery.Selection) string

// FieldSelectors holds the ordered fallback selectors for text fields
type FieldSelectors struct {
	Name        []string
	Description []string
}

// DefaultFieldSelectors returns the name and description chains used for ai-bot.cn cards
func DefaultFieldSelectors() FieldSelectors {
	return FieldSelectors{
		Name:        []string{".card-title", ".site-title", "h3", "h4", ".title"},
		Description: []string{".card-desc", ".site-desc", ".desc", "p", ".description"},
	}
}
