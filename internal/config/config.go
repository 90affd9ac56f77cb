package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	LogLevel          string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string   `yaml:"http-port" env:"PORT" env-default:"3000"`
	SocketPort        string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"3001"`
	Redis             Redis    `yaml:"redis"`
	Session           Session  `yaml:"session"`
	Telegram          Telegram `yaml:"telegram"`
	SQLiteStoragePath string   `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH"`
	RandSeed          uint64   `yaml:"rand-seed" env:"RAND_SEED"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Session struct {
	Store           string        `yaml:"store" env:"SESSION_STORE" env-default:"memory"`
	TTL             time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
	CleanupInterval time.Duration `yaml:"cleanup-interval" env:"SESSION_CLEANUP_INTERVAL" env-default:"10m"`
}

type Telegram struct {
	BotToken      string        `yaml:"bot-token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID        string        `yaml:"chat-id" env:"TELEGRAM_CHAT_ID"`
	FrontendURL   string        `yaml:"frontend-url" env:"FRONTEND_URL" env-default:"http://localhost:8080"`
	NotifyTimeout time.Duration `yaml:"notify-timeout" env:"TELEGRAM_NOTIFY_TIMEOUT" env-default:"10s"`
	APIEndpoint   string        `yaml:"api-endpoint" env:"TELEGRAM_API_ENDPOINT" env-default:"https://api.telegram.org/bot%s/%s"`
}

// MustLoad - load configuration from config.yml when it exists, environment variables override it.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unknown session store %q", that.Session.Store)
	}

	if that.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", that.Session.TTL)
	}

	if that.Session.CleanupInterval <= 0 {
		return fmt.Errorf("session cleanup interval must be positive, got %s", that.Session.CleanupInterval)
	}

	if that.Telegram.NotifyTimeout <= 0 {
		return fmt.Errorf("telegram notify timeout must be positive, got %s", that.Telegram.NotifyTimeout)
	}

	if _, err := that.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel as a slog level name such as "debug" or "warn".
func (that *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", that.LogLevel, err)
	}

	return level, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
