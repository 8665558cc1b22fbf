package emitter

import (
	"bytes"
	"encoding/json"

	"sjsage522/aitoolscraper/internal/crawler"
)

// RenderBackup renders records as an indented JSON array with non-ASCII
// text and HTML characters written as-is
func RenderBackup(records []crawler.ToolRecord) ([]byte, error) {
	if records == nil {
		records = []crawler.ToolRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
