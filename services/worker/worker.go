package worker

import (
	"context"
	"encoding/json"
	"time"

	"sjsage522/aitoolscraper/internal/crawler"
	"sjsage522/aitoolscraper/internal/emitter"
	"sjsage522/aitoolscraper/logger"
	"sjsage522/aitoolscraper/services/publisher"
)

// PreviewCount is the number of records listed at the end of a run
const PreviewCount = 5

// publishKey is the stream field each record is stored under
const publishKey = "tool"

// Collector produces the ordered records of one run
type Collector interface {
	Collect(ctx context.Context) (*crawler.Result, error)
}

// OutputConfig names the files a run writes
type OutputConfig struct {
	Dir         string
	FixtureFile string
	BackupFile  string
}

// Report summarizes a finished run
type Report struct {
	Total     int
	Published int
	Output    *emitter.Output
	Elapsed   time.Duration
}

// Worker runs one scrape: collect, write both files, then publish
type Worker struct {
	collector Collector
	publisher publisher.Publisher
	output    OutputConfig
	log       *logger.Logger
	now       func() time.Time
}

// NewWorker creates a new worker; pub may be nil to skip publishing
func NewWorker(collector Collector, pub publisher.Publisher, output OutputConfig, log *logger.Logger) *Worker {
	if log == nil {
		log = logger.Nop()
	}
	return &Worker{
		collector: collector,
		publisher: pub,
		output:    output,
		log:       log,
		now:       time.Now,
	}
}

// Run performs the scrape. Collection cancellation and file errors are
// returned; publishing failures are only logged.
func (w *Worker) Run(ctx context.Context) (*Report, error) {
	start := w.now()

	result, err := w.collector.Collect(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Total: len(result.Records)}
	w.log.Info().Int("total", report.Total).Msg("Scraping finished")
	if report.Total == 0 {
		w.log.Warn().Msg("No tools scraped, check the network or the site structure")
	}

	report.Output, err = emitter.WriteFiles(w.output.Dir, w.output.FixtureFile, w.output.BackupFile, result.Records, w.now())
	if err != nil {
		return nil, err
	}

	if w.publisher != nil {
		report.Published = w.publish(result.Records)
	}

	w.preview(result.Records)

	report.Elapsed = w.now().Sub(start)
	w.log.Info().
		Int("total", report.Total).
		Int("published", report.Published).
		Dur("elapsed", report.Elapsed).
		Msg("Run completed")
	return report, nil
}

// publish sends every record to the stream and trims it afterwards
func (w *Worker) publish(records []crawler.ToolRecord) int {
	published := 0
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			w.log.Error().Err(err).Str("tool", record.Name).Msg("Failed to encode record")
			continue
		}
		if err := w.publisher.Publish(publishKey, data); err != nil {
			w.log.Error().Err(err).Str("tool", record.Name).Msg("Failed to publish record")
			continue
		}
		published++
	}

	// Trim the stream after publishing
	if err := w.publisher.TrimStreams(); err != nil {
		w.log.Error().Err(err).Msg("Failed to trim stream")
	}
	return published
}

func (w *Worker) preview(records []crawler.ToolRecord) {
	for i, record := range records {
		if i == PreviewCount {
			break
		}
		w.log.Info().
			Int("rank", i+1).
			Str("name", record.Name).
			Bool("has_icon", record.Icon != "").
			Msg("Preview")
	}
}
