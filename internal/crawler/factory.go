package crawler

import (
	"sjsage522/aitoolscraper/config"
	"sjsage522/aitoolscraper/helpers"
	"sjsage522/aitoolscraper/logger"
	"sjsage522/aitoolscraper/services/cache"
)

// CategorySources returns the category pages of siteURL in scrape order
func CategorySources(siteURL string) []CategorySource {
	configurations := []struct {
		name     string
		path     string
		category Category
	}{
		{"AI对话", "/ai-chat/", CategoryChat},
		{"AI写作", "/ai-write/", CategoryWriting},
		{"AI图像", "/ai-image/", CategoryImage},
		{"AI视频", "/ai-video/", CategoryVideo},
		{"AI音频", "/ai-audio/", CategoryAudio},
		{"AI编程", "/ai-code/", CategoryCoding},
		{"AI办公", "/ai-office/", CategoryOffice},
		{"AI设计", "/ai-design/", CategoryDesign},
	}

	sources := make([]CategorySource, 0, len(configurations))
	for _, c := range configurations {
		sources = append(sources, CategorySource{
			Name:     c.name,
			URL:      siteURL + c.path,
			Category: c.category,
		})
	}
	return sources
}

// NewPageFetcher builds the HTTP fetcher from cfg, behind the page cache when cacheSvc is set
func NewPageFetcher(cfg *config.Config, cacheSvc cache.CacheService) PageFetcher {
	var fetcher PageFetcher = helpers.NewFetcher(helpers.FetcherConfig{
		Timeout:     cfg.RequestTimeout,
		MaxAttempts: cfg.MaxAttempts,
		Backoff:     cfg.RetryBackoff,
	}, logger.ForFetcher())

	if cacheSvc != nil {
		fetcher = NewCachedFetcher(fetcher, cacheSvc, cfg.PageCacheTTL, logger.ForCache())
	}
	return fetcher
}

// CreateCollector wires a collector for the site configured in cfg
func CreateCollector(cfg *config.Config, cacheSvc cache.CacheService) *Collector {
	return NewCollector(
		NewPageFetcher(cfg, cacheSvc),
		NewExtractor(cfg.SiteURL, DefaultFieldSelectors()),
		CollectorConfig{
			HomepageURL:     cfg.HomepageURL(),
			Sources:         CategorySources(cfg.SiteURL),
			PolitenessDelay: cfg.PolitenessDelay,
		},
		logger.ForCollector(),
	)
}
