package crawler

import (
	"strings"

	"sjsage522/aitoolscraper/helpers"
	"sjsage522/aitoolscraper/pkg/errors"

	"github.com/PuerkitoBio/goquery"
)

// createDocument parses a fetched page
func createDocument(source, body string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, errors.NewParsing(source, "failed to parse HTML", err)
	}
	return doc, nil
}

// applyHandlers runs handlers in order and returns the first non-empty result
func applyHandlers(s *goquery.Selection, handlers []ElementHandler) string {
	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		if result := handler(s); result != "" {
			return result
		}
	}
	return ""
}

// textHandler returns the trimmed text of the first element matching selector
func textHandler(selector string) ElementHandler {
	return func(s *goquery.Selection) string {
		return strings.TrimSpace(s.Find(selector).First().Text())
	}
}

// attrHandler returns the first non-blank value among attrs of the first
// element matching selector. The value is returned as written.
func attrHandler(selector string, attrs ...string) ElementHandler {
	return func(s *goquery.Selection) string {
		el := s.Find(selector).First()
		values := make([]string, 0, len(attrs))
		for _, attr := range attrs {
			values = append(values, el.AttrOr(attr, ""))
		}
		return helpers.FirstNonEmpty(values...)
	}
}

func textHandlers(selectors []string) []ElementHandler {
	handlers := make([]ElementHandler, 0, len(selectors))
	for _, sel := range selectors {
		handlers = append(handlers, textHandler(sel))
	}
	return handlers
}
