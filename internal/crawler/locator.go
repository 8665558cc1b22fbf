package crawler

import "github.com/PuerkitoBio/goquery"

const (
	// HomepageMinCards is the match count a homepage selector must exceed to be accepted
	HomepageMinCards = 5
	// HomepageCardLimit caps the cards read from the homepage
	HomepageCardLimit = 100
	// CategoryCardLimit caps the cards read from a category page
	CategoryCardLimit = 50
)

// HomepageCardSelectors are tried in this order; the order is significant
var HomepageCardSelectors = []string{
	".site-card",
	".tool-card",
	".card-item",
	".site-item",
	".ai-tool-item",
	`[class*="card"]`,
	"article",
}

// CategoryCardSelector is applied as-is to category pages, without a threshold
const CategoryCardSelector = `.site-card, .tool-card, .card-item, article, [class*="card"]`

// LocateResult holds the located cards and the selector that produced them
type LocateResult struct {
	Selector string
	Cards    *goquery.Selection
	// Qualified is false when no selector passed the threshold and the last one was used anyway
	Qualified bool
}

// LocateCards returns the matches of the first selector with more than
// threshold matches, without evaluating later selectors. When none qualifies
// the matches of the last selector are used. At most limit cards are returned.
func LocateCards(doc *goquery.Document, selectors []string, threshold, limit int) LocateResult {
	result := LocateResult{Cards: doc.Selection.Slice(0, 0)}
	for _, sel := range selectors {
		cards := doc.Find(sel)
		result.Selector = sel
		result.Cards = cards
		if cards.Length() > threshold {
			result.Qualified = true
			break
		}
	}
	result.Cards = capCards(result.Cards, limit)
	return result
}

// LocateCategoryCards applies CategoryCardSelector, matches in document order
func LocateCategoryCards(doc *goquery.Document, limit int) LocateResult {
	return LocateResult{
		Selector:  CategoryCardSelector,
		Cards:     capCards(doc.Find(CategoryCardSelector), limit),
		Qualified: true,
	}
}

func capCards(cards *goquery.Selection, limit int) *goquery.Selection {
	if limit >= 0 && cards.Length() > limit {
		return cards.Slice(0, limit)
	}
	return cards
}
