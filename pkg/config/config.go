package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint = "http://localhost:8000"

	EnvEndpoint = "FACESWAP_ENDPOINT"
	EnvTimeout  = "FACESWAP_TIMEOUT"
	EnvLogFile  = "FACESWAP_LOG_FILE"
)

type Config struct {
	Endpoint  string
	Timeout   time.Duration
	LogFile   string
	OutputDir string
}

// LoadDotEnv loads variables from the given files (".env" when none), ignoring missing
// files. Variables already set in the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Resolve fills unset fields from the environment, then defaults, and validates the result.
func (c Config) Resolve() (Config, error) {
	if c.Endpoint == "" {
		c.Endpoint = os.Getenv(EnvEndpoint)
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	c.Endpoint = strings.TrimRight(c.Endpoint, "/")

	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Config{}, fmt.Errorf("invalid endpoint %q: must be an http(s) URL", c.Endpoint)
	}

	if c.Timeout == 0 {
		if raw := os.Getenv(EnvTimeout); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
			}
			c.Timeout = d
		}
	}
	if c.Timeout < 0 {
		return Config{}, errors.New("timeout cannot be negative")
	}

	if c.LogFile == "" {
		c.LogFile = os.Getenv(EnvLogFile)
	}
	return c, nil
}
