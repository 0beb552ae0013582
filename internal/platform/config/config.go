// Package config loads runtime settings from the process environment.
//
// A .env file in the working directory is read first when present; values
// already set in the environment take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "3000"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-4o"
)

// ErrInvalidPort is returned when PORT is not a TCP port number.
var ErrInvalidPort = errors.New("PORT must be an integer in 0..65535")

// Config holds the settings the server needs at startup.
type Config struct {
	Port   string
	OpenAI OpenAIConfig
}

// OpenAIConfig configures the chat completions client used for itineraries.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads an optional .env file and builds a validated Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup for each variable.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Port: getenv(lookup, "PORT", DefaultPort),
		OpenAI: OpenAIConfig{
			APIKey:  getenv(lookup, "OPENAI_API_KEY", ""),
			BaseURL: strings.TrimRight(getenv(lookup, "OPENAI_BASE_URL", DefaultOpenAIBaseURL), "/"),
			Model:   getenv(lookup, "OPENAI_MODEL", DefaultOpenAIModel),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the port range. Port 0 asks the kernel for an ephemeral port.
func (c Config) Validate() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("%w: got %q", ErrInvalidPort, c.Port)
	}
	return nil
}

func getenv(lookup func(string) (string, bool), key, fallback string) string {
	if v, ok := lookup(key); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return fallback
}
