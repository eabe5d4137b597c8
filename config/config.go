package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppName         string `envconfig:"APP_NAME" default:"RRC Integrace API"`
	ListenIP        string `envconfig:"LISTEN_IP" default:"0.0.0.0"`
	ListenPort      int    `envconfig:"PORT" default:"3000"`
	DatabaseURL     string `envconfig:"DATABASE_URL" required:"true"`
	DatabaseSSLMode string `envconfig:"DATABASE_SSLMODE" default:"require"`
	SchemaStrict    bool   `envconfig:"SCHEMA_STRICT" default:"false"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load applies the optional dotenv file at envFile (a missing file is not an
// error, existing variables win) and then reads the environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ListenIP, c.ListenPort)
}

// StoreURL is DatabaseURL with the configured sslmode added to PostgreSQL
// URLs that do not name one.
func (c Config) StoreURL() string {
	if c.DatabaseSSLMode == "" ||
		!(strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")) {
		return c.DatabaseURL
	}
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return c.DatabaseURL
	}
	q := u.Query()
	if q.Get("sslmode") != "" {
		return c.DatabaseURL
	}
	q.Set("sslmode", c.DatabaseSSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
