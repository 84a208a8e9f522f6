package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvironment   = "development"
	defaultTutorCacheTTL = 5 * time.Minute
	defaultRankWorkers   = 8
)

type Config struct {
	TelegramToken string        `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN         string        `mapstructure:"DB_DSN"`
	Environment   string        `mapstructure:"ENV"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"` // пусто = кеш выключен
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	TutorCacheTTL time.Duration `mapstructure:"TUTOR_CACHE_TTL"`
	RankWorkers   int           `mapstructure:"RANK_WORKERS"`
	// Период фонового прогрева кеша, 0 = выключен
	CacheWarmInterval time.Duration `mapstructure:"CACHE_WARM_INTERVAL"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(os.Getenv)
}

// FromEnv собирает конфиг из переменных окружения через переданный getter
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBDSN:         getenv("DB_DSN"),
		TelegramToken: getenv("TELEGRAM_TOKEN"),
		Environment:   getenv("ENV"),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		TutorCacheTTL: defaultTutorCacheTTL,
		RankWorkers:   defaultRankWorkers,
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}

	if v := getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil || db < 0 {
			return nil, fmt.Errorf("REDIS_DB must be a non-negative integer, got %q", v)
		}
		cfg.RedisDB = db
	}

	if v := getenv("TUTOR_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("TUTOR_CACHE_TTL must be a positive duration, got %q", v)
		}
		cfg.TutorCacheTTL = ttl
	}

	if v := getenv("CACHE_WARM_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil || interval < 0 {
			return nil, fmt.Errorf("CACHE_WARM_INTERVAL must be a non-negative duration, got %q", v)
		}
		cfg.CacheWarmInterval = interval
	}

	if v := getenv("RANK_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("RANK_WORKERS must be a positive integer, got %q", v)
		}
		cfg.RankWorkers = workers
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// CacheEnabled включён ли Redis-кеш снимков репетиторов
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// IsProduction боевое окружение
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
