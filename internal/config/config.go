package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress     string `env:"SERVER_ADDRESS" validate:"hostname_port"`
	BaseURL           string `env:"BASE_URL" validate:"url"`
	SessionSecret     string `env:"SESSION_SECRET" validate:"required"`
	SessionCookieName string `env:"SESSION_COOKIE_NAME" validate:"required"`
}

// ParseFlags builds the configuration from an optional .env file,
// command-line flags and environment variables, in ascending order of
// precedence.
func ParseFlags() (*Config, error) {
	// A missing .env file is not an error; it is only a convenience
	// for local runs.
	_ = godotenv.Load()

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	envServerAddress := cfg.ServerAddress
	envBaseURL := cfg.BaseURL
	envSessionSecret := cfg.SessionSecret
	envSessionCookieName := cfg.SessionCookieName

	flag.StringVar(&cfg.ServerAddress, "a", "localhost:8080", "Address of the server")
	flag.StringVar(&cfg.BaseURL, "b", "http://localhost:8080", "Base URL for short URLs")
	flag.StringVar(&cfg.SessionSecret, "s", "", "Secret key for signing session cookies (set one in production)")
	flag.StringVar(&cfg.SessionCookieName, "c", "session", "Name of the session cookie")

	flag.Parse()

	if envServerAddress != "" {
		cfg.ServerAddress = envServerAddress
	}
	if envBaseURL != "" {
		cfg.BaseURL = envBaseURL
	}
	if envSessionSecret != "" {
		cfg.SessionSecret = envSessionSecret
	}
	if envSessionCookieName != "" {
		cfg.SessionCookieName = envSessionCookieName
	}

	cfg.applyDefaultValues()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) applyDefaultValues() {
	if c.ServerAddress == "" {
		c.ServerAddress = getDefaultServerAddress()
	}
	if c.BaseURL == "" {
		c.BaseURL = getDefaultBaseURL()
	}
	if c.SessionCookieName == "" {
		c.SessionCookieName = getDefaultSessionCookieName()
	}
	if c.SessionSecret == "" {
		c.SessionSecret = getDefaultSessionSecret()
	}
}

func getDefaultServerAddress() string {
	return "localhost:8080"
}

func getDefaultBaseURL() string {
	return "http://localhost:8080"
}

func getDefaultSessionCookieName() string {
	return "session"
}

// getDefaultSessionSecret is a development fallback only; deployments
// must provide SESSION_SECRET.
func getDefaultSessionSecret() string {
	return "tinyapp-dev-secret"
}
