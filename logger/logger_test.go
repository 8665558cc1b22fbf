package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf).WithField("component", "fetcher")

	log.Warn().Int("attempt", 1).Msg("fetch failed")
	log.Warn().Int("attempt", 2).Msg("fetch failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "fetcher", entry["component"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(2), entry["attempt"])
	assert.Equal(t, "fetch failed", entry["message"])
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).WithFields(Fields{"category": "chat", "count": 3}).Info().Msg("phase done")

	assert.Contains(t, buf.String(), `"category":"chat"`)
	assert.Contains(t, buf.String(), `"count":3`)
}

func TestNop(t *testing.T) {
	// Must not panic or write anywhere
	Nop().Error().Msg("discarded")
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, "warn", getLogLevel().String())

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SCRAPER_ENVIRONMENT", "production")
	assert.Equal(t, "info", getLogLevel().String())

	t.Setenv("SCRAPER_ENVIRONMENT", "development")
	assert.Equal(t, "debug", getLogLevel().String())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, "info", getLogLevel().String())
}

func TestPackageHelpersUseDefault(t *testing.T) {
	previous := Default
	t.Cleanup(func() { Default = previous })

	var buf bytes.Buffer
	Default = New(&buf)

	Debug("fetch timeout %s", "15s")
	Warn("Redis unavailable: %v", "refused")
	Error("close failed: %d", 1)
	LogError("worker", errors.New("disk full"), "Scrape failed after %d pages", 9)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"message":"fetch timeout 15s"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
	assert.Contains(t, lines[1], `"message":"Redis unavailable: refused"`)
	assert.Contains(t, lines[2], `"message":"close failed: 1"`)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "worker", entry["component"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "Scrape failed after 9 pages", entry["message"])
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).WithError(errors.New("connection reset")).Error().Msg("Failed to fetch page, skipping")

	assert.Contains(t, buf.String(), `"error":"connection reset"`)
}
