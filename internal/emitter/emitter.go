package emitter

import (
	"os"
	"path/filepath"
	"time"

	"sjsage522/aitoolscraper/internal/crawler"
	"sjsage522/aitoolscraper/logger"
	"sjsage522/aitoolscraper/pkg/errors"
)

// Output holds the paths of the written files
type Output struct {
	FixturePath string
	BackupPath  string
}

// WriteFiles renders records and writes the fixture and the backup into dir
func WriteFiles(dir, fixtureName, backupName string, records []crawler.ToolRecord, now time.Time) (*Output, error) {
	log := logger.ForEmitter()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.NewEmit(dir, "failed to create output directory", err)
	}

	out := &Output{
		FixturePath: filepath.Join(dir, fixtureName),
		BackupPath:  filepath.Join(dir, backupName),
	}

	// Both files are rendered before either is written
	fixture := RenderFixture(records, now)
	backup, err := RenderBackup(records)
	if err != nil {
		return nil, errors.NewEmit(out.BackupPath, "failed to encode backup", err)
	}

	if err := os.WriteFile(out.FixturePath, []byte(fixture), 0o644); err != nil {
		return nil, errors.NewEmit(out.FixturePath, "failed to write fixture", err)
	}
	log.Info().Str("path", out.FixturePath).Int("tools", len(records)).Msg("Fixture saved")

	if err := os.WriteFile(out.BackupPath, backup, 0o644); err != nil {
		if rmErr := os.Remove(out.FixturePath); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", out.FixturePath).Msg("Failed to remove fixture")
		}
		return nil, errors.NewEmit(out.BackupPath, "failed to write backup", err)
	}
	log.Info().Str("path", out.BackupPath).Msg("JSON backup saved")

	return out, nil
}
