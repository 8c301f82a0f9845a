// Package config holds the app's runtime configuration, sourced from
// environment variables (a .env file is loaded in main before Load runs).
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all configurable parameters.
type Config struct {
	// APIBaseURL is the root of the remote game service.
	APIBaseURL string

	// HTTPTimeoutSeconds bounds each request to the game service.
	HTTPTimeoutSeconds int

	// Practice enables the bundled practice service: the app starts it on
	// loopback and plays against it instead of the remote service.
	Practice bool

	// PracticePort is the loopback port for the practice service.
	PracticePort int
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		APIBaseURL:         "http://localhost:8000",
		HTTPTimeoutSeconds: 30,
		Practice:           false,
		PracticePort:       8431,
	}
}

// Load builds the configuration from defaults plus environment overrides.
func Load() *Config {
	cfg := Defaults()

	overrideString(&cfg.APIBaseURL, "BLACKJACK_API_URL")
	overrideInt(&cfg.HTTPTimeoutSeconds, "BLACKJACK_HTTP_TIMEOUT_SECONDS")
	overrideBool(&cfg.Practice, "BLACKJACK_PRACTICE")
	overrideInt(&cfg.PracticePort, "BLACKJACK_PRACTICE_PORT")

	return cfg
}

func overrideString(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func overrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*field = n
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}

func overrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*field = b
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}
