package config

import (
	"errors"
	"flag"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultRunAddress      = ":8080"
	DefaultDatabaseURI     = ""
	DefaultPushFunctionURL = "http://localhost:54321/functions/v1/send-push-notification"
	DefaultPushFunctionKey = ""
	DefaultSecretKey       = "secret"
	DefaultTokenLifetime   = 3 * time.Hour
	DefaultNotifyWorkers   = 2
	DefaultNotifyQueueSize = 64

	envFile = ".env"
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	PushFunctionURL string        `env:"PUSH_FUNCTION_URL"`
	PushFunctionKey string        `env:"PUSH_FUNCTION_KEY"`
	SecretKey       string        `env:"SECRET_KEY"`
	TokenLifetime   time.Duration `env:"TOKEN_LIFETIME"`
	// NotifyWorkers = 0 - push отправляется прямо в запросе, без очереди
	NotifyWorkers   int `env:"NOTIFY_WORKERS"`
	NotifyQueueSize int `env:"NOTIFY_QUEUE_SIZE"`
}

// Read - флаги задают значения по умолчанию, переменные окружения (и .env) их переопределяют
func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")
	flag.StringVar(&config.PushFunctionURL, "f", DefaultPushFunctionURL, "Push dispatch function URL")
	flag.StringVar(&config.PushFunctionKey, "k", DefaultPushFunctionKey, "Push dispatch function bearer key")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for token")
	flag.DurationVar(&config.TokenLifetime, "h", DefaultTokenLifetime, "Token lifetime (e.g. 1h, 30m, 2h30m)")
	flag.IntVar(&config.NotifyWorkers, "w", DefaultNotifyWorkers, "Push notification workers, 0 to send inline")
	flag.IntVar(&config.NotifyQueueSize, "q", DefaultNotifyQueueSize, "Push notification queue size")

	flag.Parse()

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, err
	}

	if err := env.Parse(&config); err != nil {
		return config, err
	}

	if config.NotifyWorkers < 0 {
		return config, errors.New("notify workers must not be negative")
	}
	if config.NotifyQueueSize < 1 {
		return config, errors.New("notify queue size must be positive")
	}

	return config, nil
}
