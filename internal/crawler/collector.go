package crawler

import (
	"context"
	"time"

	"sjsage522/aitoolscraper/helpers"
	"sjsage522/aitoolscraper/logger"

	"github.com/PuerkitoBio/goquery"
)

// CollectorConfig describes the pages a Collector visits
type CollectorConfig struct {
	HomepageURL     string
	Sources         []CategorySource
	PolitenessDelay time.Duration
}

// PhaseStats summarizes one page of a run
type PhaseStats struct {
	Source    string
	URL       string
	Category  Category
	Selector  string
	Located   int
	Extracted int
	Accepted  int
	Err       error
}

// Result is the ordered, deduplicated output of a run
type Result struct {
	Records []ToolRecord
	Phases  []PhaseStats
}

// collection owns the dedup set and the ordered record list of one run
type collection struct {
	seen    map[string]struct{}
	records []ToolRecord
}

func newCollection() *collection {
	return &collection{seen: make(map[string]struct{})}
}

// add appends record unless its name was already accepted
func (c *collection) add(record ToolRecord) bool {
	if _, dup := c.seen[record.Name]; dup {
		return false
	}
	c.seen[record.Name] = struct{}{}
	c.records = append(c.records, record)
	return true
}

// Collector fetches the homepage and every category page in turn
type Collector struct {
	fetcher   PageFetcher
	extractor *Extractor
	config    CollectorConfig
	log       *logger.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewCollector creates a collector
func NewCollector(fetcher PageFetcher, extractor *Extractor, config CollectorConfig, log *logger.Logger) *Collector {
	if log == nil {
		log = logger.Nop()
	}
	return &Collector{
		fetcher:   fetcher,
		extractor: extractor,
		config:    config,
		log:       log,
		sleep:     helpers.Sleep,
	}
}

// Collect runs the homepage phase and then each category phase. Page
// failures only cost that page's records; the returned error is non-nil
// only when ctx is cancelled.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	col := newCollection()
	result := &Result{}

	result.Phases = append(result.Phases, c.homepagePhase(ctx, col))

	for _, src := range c.config.Sources {
		if err := c.sleep(ctx, c.config.PolitenessDelay); err != nil {
			return nil, err
		}
		result.Phases = append(result.Phases, c.categoryPhase(ctx, src, col))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Records = col.records
	c.log.Info().
		Int("total", len(result.Records)).
		Int("phases", len(result.Phases)).
		Msg("Collection completed")
	return result, nil
}

func (c *Collector) homepagePhase(ctx context.Context, col *collection) PhaseStats {
	stats := PhaseStats{Source: "homepage", URL: c.config.HomepageURL, Category: CategoryChat}
	c.log.Info().Str("url", stats.URL).Msg("Scraping homepage")

	doc, ok := c.load(ctx, &stats)
	if !ok {
		return stats
	}

	located := LocateCards(doc, HomepageCardSelectors, HomepageMinCards, HomepageCardLimit)
	c.merge(located, &stats, col, func(r *ToolRecord) {
		r.Category = CategoryChat
		r.IsHot = true
	})
	return stats
}

func (c *Collector) categoryPhase(ctx context.Context, src CategorySource, col *collection) PhaseStats {
	stats := PhaseStats{Source: src.Name, URL: src.URL, Category: src.Category}
	c.log.Info().Str("url", src.URL).Str("category", string(src.Category)).Msg("Scraping category")

	doc, ok := c.load(ctx, &stats)
	if !ok {
		return stats
	}

	located := LocateCategoryCards(doc, CategoryCardLimit)
	c.merge(located, &stats, col, func(r *ToolRecord) {
		r.Category = src.Category
	})
	return stats
}

// load fetches and parses a phase page; the phase is empty when it fails
func (c *Collector) load(ctx context.Context, stats *PhaseStats) (*goquery.Document, bool) {
	body, err := c.fetcher.Fetch(ctx, stats.URL)
	if err != nil {
		stats.Err = err
		c.log.WithError(err).Error().Str("source", stats.Source).Msg("Failed to fetch page, skipping")
		return nil, false
	}

	doc, err := createDocument(stats.URL, body)
	if err != nil {
		stats.Err = err
		c.log.WithError(err).Error().Str("source", stats.Source).Msg("Failed to parse page, skipping")
		return nil, false
	}
	return doc, true
}

// merge extracts the located cards, tags every record and adds first sightings to col
func (c *Collector) merge(located LocateResult, stats *PhaseStats, col *collection, tag func(*ToolRecord)) {
	stats.Selector = located.Selector
	stats.Located = located.Cards.Length()

	if located.Qualified {
		c.log.Debug().Str("selector", located.Selector).Int("cards", stats.Located).Msg("Cards located")
	} else {
		c.log.Debug().Str("selector", located.Selector).Int("cards", stats.Located).Msg("No selector passed the threshold, using last resort")
	}

	records := c.extractor.extractAll(located.Cards, func(i int, err error) {
		if IsNoName(err) {
			c.log.Debug().Int("card", i).Msg("Card without name dropped")
			return
		}
		c.log.Warn().Err(err).Int("card", i).Msg("Failed to extract card")
	})
	stats.Extracted = len(records)

	for i := range records {
		tag(&records[i])
		if col.add(records[i]) {
			stats.Accepted++
		}
	}

	c.log.Info().
		Str("source", stats.Source).
		Int("found", stats.Extracted).
		Int("new", stats.Accepted).
		Msg("Page done")
}
