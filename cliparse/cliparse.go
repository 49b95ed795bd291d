package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port          int    `env:"PORT" envDefault:"3318"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DatabaseType  string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	TemplateDir   string `env:"THUMBER_TEMPLATES"`
	SessionCookie string `env:"SESSION_COOKIE_NAME" envDefault:"sessionid"`
	Env           string `env:"APP_ENV" envDefault:"production"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseFlags loads .env, reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env file is fine; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("thumber", flag.ContinueOnError)

	// Flag defaults are the environment values, so flags take precedence
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.TemplateDir, "templates", cfg.TemplateDir, "Directory of application templates")
	fs.StringVar(&cfg.SessionCookie, "session-cookie", cfg.SessionCookie, "Session cookie name")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "Environment (development or production)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.SessionCookie == "" {
		return Config{}, errors.New("session cookie name cannot be empty")
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	return cfg, nil
}
