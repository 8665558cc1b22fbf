package crawler

import (
	stderrors "errors"
	"fmt"

	"sjsage522/aitoolscraper/helpers"
	"sjsage522/aitoolscraper/pkg/errors"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DescriptionLimit caps descriptions at extraction time
	DescriptionLimit = 200
	defaultDescFmt   = "%s - AI工具"
)

// ErrNoName is wrapped by the error returned for cards without a name
var ErrNoName = stderrors.New("card has no name")

// IsNoName reports whether err means the card was dropped for lacking a name
func IsNoName(err error) bool {
	return stderrors.Is(err, ErrNoName)
}

// Extractor turns one card element into a ToolRecord
type Extractor struct {
	siteURL             string
	nameHandlers        []ElementHandler
	descriptionHandlers []ElementHandler
	iconHandler         ElementHandler
	linkHandler         ElementHandler
}

// NewExtractor creates an extractor resolving relative URLs against siteURL
func NewExtractor(siteURL string, selectors FieldSelectors) *Extractor {
	return &Extractor{
		siteURL:             siteURL,
		nameHandlers:        textHandlers(selectors.Name),
		descriptionHandlers: textHandlers(selectors.Description),
		iconHandler:         attrHandler("img", "src", "data-src", "data-lazy-src"),
		linkHandler:         attrHandler("a", "href"),
	}
}

// Extract reads name, description, icon and link from card. Cards without a
// name return an error wrapping ErrNoName. A panic while reading the card is
// turned into a parsing error so one broken card never stops a batch.
func (e *Extractor) Extract(card *goquery.Selection) (record *ToolRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = errors.NewParsing("card", "failed to read card", fmt.Errorf("%v", r))
		}
	}()

	name := applyHandlers(card, e.nameHandlers)
	if name == "" {
		return nil, errors.NewParsing("card", "no name selector matched", ErrNoName)
	}

	description := helpers.TruncateRunes(applyHandlers(card, e.descriptionHandlers), DescriptionLimit)
	if description == "" {
		description = fmt.Sprintf(defaultDescFmt, name)
	}

	return &ToolRecord{
		Name:        name,
		Description: description,
		Icon:        ResolveIconURL(e.iconHandler(card), e.siteURL),
		URL:         ResolveLinkURL(e.linkHandler(card), e.siteURL),
	}, nil
}

// extractAll extracts every card, skipping the ones that fail
func (e *Extractor) extractAll(cards *goquery.Selection, onError func(index int, err error)) []ToolRecord {
	var records []ToolRecord
	cards.Each(func(i int, card *goquery.Selection) {
		record, err := e.Extract(card)
		if err != nil {
			if onError != nil {
				onError(i, err)
			}
			return
		}
		records = append(records, *record)
	})
	return records
}
