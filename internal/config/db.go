package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver          string        `env:"DRIVER" envDefault:"postgres"`
	Host            string        `env:"HOST" envDefault:"postgres"`
	Port            int           `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER" envDefault:"marketplace"`
	Password        string        `env:"PASSWORD" envDefault:"marketplace"`
	Name            string        `env:"NAME" envDefault:"marketplace_db"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	TimeZone        string        `env:"TIMEZONE" envDefault:"UTC"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"data/marketplace.db"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"warn"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifeTime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

// Config — полная конфигурация процесса маркетплейса.
type Config struct {
	DB DBConfig `envPrefix:"DB_"`

	// Аккаунт, которому разрешено верифицировать гидов и закрывать споры.
	Authority string `env:"AUTHORITY"`

	// Запускать каждую операцию с изоляцией SERIALIZABLE (для postgres с несколькими писателями).
	SerializableTx bool `env:"SERIALIZABLE_TX" envDefault:"false"`

	GRPCAddr string `env:"GRPC_ADDR" envDefault:":50051"`

	OtelEndpoint string `env:"OTEL_ENDPOINT"`
	OtelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

const envPrefix = "MARKETPLACE_"

// Load читает конфигурацию из переменных окружения MARKETPLACE_*.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Authority) == "" {
		return fmt.Errorf("invalid config: %sAUTHORITY must not be empty", envPrefix)
	}
	return c.DB.Validate()
}

func (c *DBConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		// минимальная валидация
		if c.Host == "" || c.User == "" || c.Name == "" {
			return fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("invalid DB config: sqlite path must not be empty")
		}
	default:
		return fmt.Errorf("invalid DB config: unsupported driver %q", c.Driver)
	}
	return nil
}
