package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"sjsage522/aitoolscraper/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Source site origin, also used to absolutize relative links
	SiteURL string

	// Fetcher configuration
	RequestTimeout  time.Duration
	MaxAttempts     int
	RetryBackoff    time.Duration
	PolitenessDelay time.Duration

	// Output configuration
	OutputDir   string
	FixtureFile string
	BackupFile  string

	// Memcache page cache, disabled when empty
	MemcacheAddr string
	PageCacheTTL time.Duration

	// Redis publisher, disabled when empty
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamMaxLength int

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	timeout, _ := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "15"))
	attempts, _ := strconv.Atoi(getEnv("FETCH_MAX_ATTEMPTS", "3"))
	backoff, _ := strconv.Atoi(getEnv("RETRY_BACKOFF_MS", "1000"))
	delay, _ := strconv.Atoi(getEnv("POLITENESS_DELAY_MS", "500"))
	cacheTTL, _ := strconv.Atoi(getEnv("PAGE_CACHE_TTL_SECONDS", "600"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "1000"))

	return &Config{
		SiteURL:              strings.TrimRight(getEnv("AITOOLS_SITE_URL", "https://ai-bot.cn"), "/"),
		RequestTimeout:       time.Duration(timeout) * time.Second,
		MaxAttempts:          attempts,
		RetryBackoff:         time.Duration(backoff) * time.Millisecond,
		PolitenessDelay:      time.Duration(delay) * time.Millisecond,
		OutputDir:            getEnv("OUTPUT_DIR", "."),
		FixtureFile:          getEnv("FIXTURE_FILE", "ai-tools-scraped.ts"),
		BackupFile:           getEnv("BACKUP_FILE", "ai-tools-scraped.json"),
		MemcacheAddr:         os.Getenv("MEMCACHE_ADDR"),
		PageCacheTTL:         time.Duration(cacheTTL) * time.Second,
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "aitools"),
		RedisStreamMaxLength: streamMaxLength,
		Environment:          getEnv("SCRAPER_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the pipeline cannot run with
func (c *Config) Validate() error {
	u, err := url.Parse(c.SiteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.NewConfiguration("AITOOLS_SITE_URL must be an absolute URL", err)
	}
	if c.RequestTimeout <= 0 {
		return errors.NewConfiguration("REQUEST_TIMEOUT_SECONDS must be positive", nil)
	}
	if c.MaxAttempts <= 0 {
		return errors.NewConfiguration("FETCH_MAX_ATTEMPTS must be positive", nil)
	}
	if c.RetryBackoff < 0 || c.PolitenessDelay < 0 || c.PageCacheTTL < 0 {
		return errors.NewConfiguration("delays must not be negative", nil)
	}
	if c.FixtureFile == "" || c.BackupFile == "" {
		return errors.NewConfiguration("FIXTURE_FILE and BACKUP_FILE must not be empty", nil)
	}
	if c.RedisAddr != "" && c.RedisStream == "" {
		return errors.NewConfiguration("REDIS_STREAM must be set when REDIS_ADDR is set", nil)
	}
	return nil
}

// HomepageURL returns the listing page scraped first
func (c *Config) HomepageURL() string {
	return c.SiteURL + "/"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
