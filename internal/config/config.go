package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Storage    Storage  `yaml:"storage"`
	Redis      Redis    `yaml:"redis"`
	Postgres   Postgres `yaml:"postgres"`
	Timer      Timer    `yaml:"timer"`
	Session    Session  `yaml:"session"`
}

type Storage struct {
	Driver    string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"redis"`
	KeyPrefix string `yaml:"key-prefix" env:"STORAGE_KEY_PREFIX" env-default:"ttt:session:"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Postgres struct {
	DSN string `yaml:"dsn" env:"POSTGRES_DSN"`
}

type Timer struct {
	TickInterval time.Duration `yaml:"tick-interval" env:"TIMER_TICK_INTERVAL" env-default:"1s"`
}

type Session struct {
	CookieName    string        `yaml:"cookie-name" env:"SESSION_COOKIE_NAME" env-default:"ttt_session"`
	TTL           time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"720h"`
	IdleTimeout   time.Duration `yaml:"idle-timeout" env:"SESSION_IDLE_TIMEOUT" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1m"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

// Validate checks values cleanenv cannot constrain by itself.
func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case StorageRedis, StorageMemory:
	case StoragePostgres:
		if that.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for the %s storage driver", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", that.Storage.Driver)
	}

	if that.Timer.TickInterval <= 0 {
		return fmt.Errorf("timer.tick-interval must be positive, got %s", that.Timer.TickInterval)
	}

	if that.Session.IdleTimeout <= 0 || that.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.idle-timeout and session.sweep-interval must be positive")
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
