package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret has no default on purpose: without it the service must
	// refuse to start rather than sign tokens with an empty secret.
	JWTSecret     string        `env:"JWT_SECRET, required"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,       default=1h"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL, default=1h"`
	BcryptCost    int           `env:"BCRYPT_COST,     default=12"`
	FrontendURL   string        `env:"FRONTEND_URL,    default=http://localhost:3000"`

	// SessionBackend selects the session registry: "memory" (default) or
	// "redis" for a shared registry across instances.
	SessionBackend string `env:"SESSION_BACKEND, default=memory"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bookstore"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"SMTP_FROM, default=noreply@bookhaven.local"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing required variable is a startup failure, not a degraded run.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
