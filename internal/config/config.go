// Package config loads runtime settings for the toolreason command.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional YAML file, a .env file, then process environment. Command-line
// flags are applied by the caller on the returned value.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/leofalp/toolreason/core/client"
)

// Environment variables read by Load.
const (
	EnvAPIKey         = "OPENAI_API_KEY"
	EnvBaseURL        = "OPENAI_API_BASE_URL"
	EnvModel          = "TOOLREASON_MODEL"
	EnvTemperature    = "TOOLREASON_TEMPERATURE"
	EnvMaxTokens      = "TOOLREASON_MAX_TOKENS"
	EnvTimeout        = "TOOLREASON_TIMEOUT"
	EnvLogLevel       = "TOOLREASON_LOG_LEVEL"
	EnvLogFormat      = "TOOLREASON_LOG_FORMAT"
	EnvRequestLogging = "TOOLREASON_REQUEST_LOGGING"
)

// DefaultTimeout bounds a single model request.
const DefaultTimeout = 60 * time.Second

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// envFile is the dotenv file read by Load; tests may replace it.
var envFile = ".env"

// Config holds every setting the command needs.
type Config struct {
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`
	// RequestLogging is off, minimal, standard or verbose.
	RequestLogging string `yaml:"request_logging"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Model:          client.DefaultModel,
		Temperature:    client.DefaultTemperature,
		MaxTokens:      client.DefaultMaxTokens,
		Timeout:        DefaultTimeout,
		LogLevel:       "info",
		LogFormat:      "compact",
		RequestLogging: "off",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the .env file in the working directory if present, and the
// environment. The result is validated.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config load: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config parse %s: %w", path, err)
		}
	}

	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config load %s: %w", envFile, err)
	}

	if err := c.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvAPIKey); ok {
		c.APIKey = v
	}
	if v, ok := get(EnvBaseURL); ok {
		c.BaseURL = v
	}
	if v, ok := get(EnvModel); ok {
		c.Model = v
	}
	if v, ok := get(EnvTemperature); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTemperature, err)
		}
		c.Temperature = f
	}
	if v, ok := get(EnvMaxTokens); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxTokens, err)
		}
		c.MaxTokens = n
	}
	if v, ok := get(EnvTimeout); ok {
		d, err := ParseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v, ok := get(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := get(EnvLogFormat); ok {
		c.LogFormat = v
	}
	if v, ok := get(EnvRequestLogging); ok {
		c.RequestLogging = v
	}
	return nil
}

// ParseTimeout accepts a Go duration ("30s", "1m") or a whole number of
// seconds.
func ParseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Model) == "":
		return fmt.Errorf("%w: model is empty", ErrInvalidConfig)
	case c.Temperature < 0 || c.Temperature > 2:
		return fmt.Errorf("%w: temperature %v is outside [0, 2]", ErrInvalidConfig, c.Temperature)
	case c.MaxTokens <= 0:
		return fmt.Errorf("%w: max tokens must be positive, got %d", ErrInvalidConfig, c.MaxTokens)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalidConfig, c.Timeout)
	}
	if !oneOf(c.LogLevel, "debug", "info", "warn", "warning", "error") {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if !oneOf(c.LogFormat, "compact", "pretty", "json") {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if !oneOf(c.RequestLogging, "off", "minimal", "standard", "verbose") {
		return fmt.Errorf("%w: unknown request logging mode %q", ErrInvalidConfig, c.RequestLogging)
	}
	return nil
}

// ClientSettings returns the sampling settings for the model client.
func (c *Config) ClientSettings() client.Settings {
	return client.Settings{
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}
}

func oneOf(value string, allowed ...string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
