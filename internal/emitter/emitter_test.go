package emitter

import (
	"os"
	"path/filepath"
	"testing"

	"sjsage522/aitoolscraper/internal/crawler"
	"sjsage522/aitoolscraper/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	records := []crawler.ToolRecord{{Name: "Kimi", Category: crawler.CategoryChat, IsHot: true}}

	out, err := WriteFiles(dir, "ai-tools-scraped.ts", "ai-tools-scraped.json", records, generatedAt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ai-tools-scraped.ts"), out.FixturePath)
	assert.Equal(t, filepath.Join(dir, "ai-tools-scraped.json"), out.BackupPath)

	fixture, err := os.ReadFile(out.FixturePath)
	require.NoError(t, err)
	assert.Equal(t, RenderFixture(records, generatedAt), string(fixture))

	backup, err := os.ReadFile(out.BackupPath)
	require.NoError(t, err)
	want, err := RenderBackup(records)
	require.NoError(t, err)
	assert.Equal(t, want, backup)
}

func TestWriteFilesWithoutRecords(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteFiles(dir, "tools.ts", "tools.json", nil, generatedAt)
	require.NoError(t, err)

	backup, err := os.ReadFile(filepath.Join(dir, "tools.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(backup))
	assert.FileExists(t, filepath.Join(dir, "tools.ts"))
}

func TestWriteFilesError(t *testing.T) {
	dir := t.TempDir()
	// a regular file where the output directory should be
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	out, err := WriteFiles(blocker, "tools.ts", "tools.json", nil, generatedAt)
	assert.Nil(t, out)
	assert.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeEmit))
}

func TestWriteFilesBackupErrorRemovesFixture(t *testing.T) {
	dir := t.TempDir()
	// a directory where the backup file should be
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tools.json"), 0o755))

	out, err := WriteFiles(dir, "tools.ts", "tools.json", []crawler.ToolRecord{{Name: "Kimi"}}, generatedAt)
	assert.Nil(t, out)
	assert.True(t, errors.IsType(err, errors.ErrorTypeEmit))
	assert.NoFileExists(t, filepath.Join(dir, "tools.ts"))
}
