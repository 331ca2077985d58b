package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

// ReportOff disables the periodic queue report.
const ReportOff = "off"

type (
	Config struct {
		AppEnv         AppEnv
		LogLevel       logrus.Level
		HTTP           HTTP
		Redis          Redis
		ReportSchedule string
	}

	HTTP struct {
		Port int
	}

	// Redis is optional: an empty Addr means events are only sent to websocket clients.
	Redis struct {
		Addr     string
		Password string
		Database int
		Channel  string
	}
)

// Load reads the configuration from the environment. Unless ENV_CHECK is set,
// a .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if os.Getenv("ENV_CHECK") == "" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "config: load .env")
		}
	}

	port, err := intEnv("HTTP_PORT", 8000)
	if err != nil {
		return nil, err
	}
	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(stringEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "config: LOG_LEVEL")
	}

	return &Config{
		AppEnv:   AppEnv(stringEnv("APP_ENV", string(LocalEnv))),
		LogLevel: level,
		HTTP: HTTP{
			Port: port,
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			Database: redisDB,
			Channel:  stringEnv("REDIS_CHANNEL", "fila:eventos"),
		},
		ReportSchedule: stringEnv("REPORT_SCHEDULE", "0 * * * * *"),
	}, nil
}

func stringEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "config: invalid int for %s: %q", key, v)
	}
	return n, nil
}
