package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store types
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreRedis    = "redis"
)

const (
	DefaultPort       = 8080
	DefaultTimezone   = "America/Los_Angeles"
	DefaultSQLitePath = "linkgames.db"
	DefaultRedisAddr  = "localhost:6379"
)

type Config struct {
	Port          int
	StoreType     string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Timezone      string
	RosterFile    string
	LogLevel      string
	EnvFile       string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("linkgames", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.StoreType, "store", "", "Document store (memory, postgres, sqlite or redis)")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite path")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", "", "Redis address")
	flags.StringVar(&cfg.Timezone, "tz", "", "Timezone that decides where a day ends")
	flags.StringVar(&cfg.RosterFile, "roster", "", "Roster YAML file (default: built-in roster)")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.EnvFile, "env-file", ".env", "Env file loaded before reading the environment")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables that are already set
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = getenv("STORE_TYPE", StoreSQLite)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = getenv("REDIS_ADDR", DefaultRedisAddr)
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.New("invalid REDIS_DB env variable")
		}
		cfg.RedisDB = n
	}
	if cfg.Timezone == "" {
		cfg.Timezone = getenv("TIMEZONE", DefaultTimezone)
	}
	if cfg.RosterFile == "" {
		cfg.RosterFile = os.Getenv("ROSTER_FILE")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = getenv("LOG_LEVEL", "info")
	}

	switch cfg.StoreType {
	case StoreMemory, StoreRedis:
	case StoreSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLitePath
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Location loads the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SlogLevel parses the configured log level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
