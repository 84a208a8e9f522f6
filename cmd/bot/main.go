package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/app"
	"github.com/v7s7/DaresniCheckUpdated/internal/cache"
	"github.com/v7s7/DaresniCheckUpdated/internal/config"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller"
	"github.com/v7s7/DaresniCheckUpdated/internal/matching"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository"
	"github.com/v7s7/DaresniCheckUpdated/internal/service"
	"github.com/v7s7/DaresniCheckUpdated/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, "daresni-bot")
	defer logger.Sync()

	logger.Info("Starting Daresni tutor bot",
		zap.String("environment", cfg.Environment),
		zap.Bool("cache_enabled", cfg.CacheEnabled()),
		zap.Int("rank_workers", cfg.RankWorkers))

	if cfg.TelegramToken == "" {
		logger.Fatal("TELEGRAM_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, migrations.FS, ".", logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	// Репозитории
	userRepo := repository.NewUserRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool, logger)
	availabilityRepo := repository.NewAvailabilityRepository(pool, logger)
	tutorRepo := repository.NewTutorRepository(pool, subjectRepo, availabilityRepo, logger)

	// Кеш опционален, при выключенном интерфейсы остаются nil
	var (
		tutorCache  service.TutorCache
		invalidator service.CacheInvalidator
	)
	if cfg.CacheEnabled() {
		redisCfg := cache.DefaultConfig(cfg.RedisAddr)
		redisCfg.Password = cfg.RedisPassword
		redisCfg.DB = cfg.RedisDB

		store, err := cache.NewRedisStore(ctx, redisCfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer store.Close()

		c := cache.NewTutorCache(store, cfg.TutorCacheTTL, logger)
		tutorCache = c
		invalidator = c
	}

	// Сервисы
	userService := service.NewUserService(userRepo, tutorRepo, logger)
	searchService := service.NewSearchService(tutorRepo, tutorCache, matching.DefaultEngine(), cfg.RankWorkers, logger)
	availabilityService := service.NewAvailabilityService(availabilityRepo, tutorRepo, invalidator, logger)
	profileService := service.NewProfileService(tutorRepo, subjectRepo, tutorRepo, invalidator, logger)

	if tutorCache != nil && cfg.CacheWarmInterval > 0 {
		warmer := app.NewCacheWarmer(searchService, cfg.CacheWarmInterval, logger)
		warmer.Start(ctx)
		defer warmer.Stop()
	}

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, userService, searchService, availabilityService, profileService, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Failed to register bot commands menu", zap.Error(err))
	}

	// Блокируется до сигнала остановки
	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}
