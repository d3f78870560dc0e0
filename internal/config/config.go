// README: Config loader with env defaults for HTTP, model source, cache, samples and external APIs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ModelSourceFile     = "file"
	ModelSourcePostgres = "postgres"
)

type ModelConfig struct {
	Source        string
	Path          string
	Name          string
	RemoteTimeout time.Duration
}

type SamplesConfig struct {
	Path string
	Size int
	Seed int64
}

type Config struct {
	AppEnv string
	HTTP   struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr     string
		CacheTTL time.Duration
	}
	Model   ModelConfig
	Samples SamplesConfig
	Maps    struct {
		APIKey string
	}
	AI struct {
		GeminiKey string
	}
}

// Load reads .env (if present) and then the process environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// a missing .env is normal outside local development
		_ = godotenv.Load(f)
	}

	var cfg Config
	cfg.AppEnv = envOrDefault("FARE_APP_ENV", "development")
	cfg.HTTP.Addr = envOrDefault("FARE_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("FARE_DB_DSN")
	cfg.Redis.Addr = os.Getenv("FARE_REDIS_ADDR")
	cfg.Redis.CacheTTL = time.Duration(envOrDefaultInt("FARE_CACHE_TTL_SECONDS", 3600)) * time.Second
	cfg.Model.Source = envOrDefault("FARE_MODEL_SOURCE", ModelSourceFile)
	cfg.Model.Path = envOrDefault("FARE_MODEL_PATH", "ny_taxifare_predictor.json")
	cfg.Model.Name = envOrDefault("FARE_MODEL_NAME", "ny_taxifare")
	cfg.Model.RemoteTimeout = time.Duration(envOrDefaultInt("FARE_REMOTE_TIMEOUT_SECONDS", 10)) * time.Second
	cfg.Samples.Path = envOrDefault("FARE_SAMPLES_PATH", "test.csv")
	cfg.Samples.Size = envOrDefaultInt("FARE_SAMPLES_SIZE", 100)
	cfg.Samples.Seed = int64(envOrDefaultInt("FARE_SAMPLES_SEED", 42))
	cfg.Maps.APIKey = os.Getenv("FARE_MAPS_API_KEY")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Model.Source {
	case ModelSourceFile:
		if c.Model.Path == "" {
			return fmt.Errorf("FARE_MODEL_PATH is required when FARE_MODEL_SOURCE=%s", ModelSourceFile)
		}
	case ModelSourcePostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("FARE_DB_DSN is required when FARE_MODEL_SOURCE=%s", ModelSourcePostgres)
		}
	default:
		return fmt.Errorf("unknown FARE_MODEL_SOURCE %q", c.Model.Source)
	}
	if c.Samples.Size < 0 {
		return fmt.Errorf("FARE_SAMPLES_SIZE must not be negative")
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
