package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sjsage522/aitoolscraper/config"
	"sjsage522/aitoolscraper/internal/crawler"
	"sjsage522/aitoolscraper/logger"
	"sjsage522/aitoolscraper/services/cache"
	"sjsage522/aitoolscraper/services/publisher"
	"sjsage522/aitoolscraper/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}
	logger.Debug("Fetch timeout %s, %d attempts, %s between pages",
		cfg.RequestTimeout, cfg.MaxAttempts, cfg.PolitenessDelay)

	log.Info().
		Str("environment", cfg.Environment).
		Str("site", cfg.SiteURL).
		Str("output_dir", cfg.OutputDir).
		Msg("Starting AI tool scraper")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			log.Info().
				Str("signal", sig.String()).
				Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	services := initializeServices(ctx, cfg)
	defer services.Cleanup()

	report, err := run(ctx, cfg, services)
	if err != nil {
		logger.LogError("worker", err, "Scrape failed")
		services.Cleanup()
		os.Exit(1)
	}

	log.Info().
		Str("fixture", report.Output.FixturePath).
		Str("backup", report.Output.BackupPath).
		Int("tools", report.Total).
		Msg("Done")
}

// run wires the collector and the worker for cfg and performs one scrape
func run(ctx context.Context, cfg *config.Config, services *Services) (*worker.Report, error) {
	collector := crawler.CreateCollector(cfg, services.Cache)

	w := worker.NewWorker(
		collector,
		services.Publisher,
		worker.OutputConfig{
			Dir:         cfg.OutputDir,
			FixtureFile: cfg.FixtureFile,
			BackupFile:  cfg.BackupFile,
		},
		logger.ForComponent("worker"),
	)
	return w.Run(ctx)
}

// Services holds the optional services; a field is nil when disabled
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		if err := s.Publisher.Close(); err != nil {
			logger.Error("Failed to close publisher: %v", err)
		}
		s.Publisher = nil
	}
}

// initializeServices connects the services whose address is configured.
// An unreachable service is logged and left disabled.
func initializeServices(ctx context.Context, cfg *config.Config) *Services {
	services := &Services{}

	if cfg.MemcacheAddr != "" {
		cacheService := cache.NewMemcacheService(cfg.MemcacheAddr)
		if err := cacheService.Ping(); err != nil {
			logger.Warn("Memcache unavailable, page cache disabled: %v", err)
		} else {
			services.Cache = cacheService
			logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)
		}
	}

	if cfg.RedisAddr != "" {
		redisPublisher := publisher.NewRedisPublisher(
			ctx,
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamMaxLength,
		)
		if err := redisPublisher.Ping(); err != nil {
			logger.Warn("Redis unavailable, publishing disabled: %v", err)
			redisPublisher.Close()
		} else {
			services.Publisher = redisPublisher
			logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
				cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
		}
	}

	return services
}
