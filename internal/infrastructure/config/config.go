package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=5000"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	// LocalTZ is the timezone submission timestamps are bucketed into for
	// the history view. Stored timestamps stay UTC.
	LocalTZ string `env:"LOCAL_TZ, default=America/New_York"`

	SQLitePath   string `env:"SQLITE_PATH,   default=stock.db"`
	DownloadsDir string `env:"DOWNLOADS_DIR, default=downloads"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Location resolves LocalTZ to a *time.Location for history date bucketing.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.LocalTZ)
	if err != nil {
		return nil, fmt.Errorf("config: invalid LOCAL_TZ %q: %w", c.LocalTZ, err)
	}
	return loc, nil
}
