package config

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const defaultPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads the .env file named by CONFIG_PATH once. Without the file the
// process environment is used as is. Variables already set win over the file.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = defaultPath
		}
		err := godotenv.Load(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Fatal("loading envs error: ", err)
			}
			slog.Warn("env file not found, using process environment", slog.String("path", path))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// GetDuration parses values like "168h" or "30m".
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
