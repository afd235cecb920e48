package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"quickcommerce/internal/apperr"
)

// Config carries every environment-provided setting. It is loaded once in
// main and injected into the pieces that need it; nothing re-reads the
// environment after startup, so newly-set variables require a restart.
type Config struct {
	Port string

	// Remote store endpoint and credentials. The service-role key is
	// preferred over the anon key when both are set.
	StoreURL        string
	StoreServiceKey string
	StoreAnonKey    string

	RedisAddr    string
	KafkaBrokers []string
	OSRMBaseURL  string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8000"),
		StoreURL:        os.Getenv("STORE_URL"),
		StoreServiceKey: os.Getenv("STORE_SERVICE_KEY"),
		StoreAnonKey:    os.Getenv("STORE_ANON_KEY"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBrokers:    splitList(os.Getenv("KAFKA_BROKERS")),
		OSRMBaseURL:     getEnv("OSRM_URL", "https://router.project-osrm.org"),
	}
}

// StoreConfigured reports whether both an endpoint and a credential are
// present. When it is false the service runs in demo mode for its lifetime.
func (c *Config) StoreConfigured() bool {
	return c.StoreURL != "" && (c.StoreServiceKey != "" || c.StoreAnonKey != "")
}

// StoreDSN builds the connection string for the remote store by injecting the
// credential into the endpoint URL as the password of the matching role.
func (c *Config) StoreDSN() (string, error) {
	if !c.StoreConfigured() {
		return "", apperr.ErrNotConfigured
	}
	u, err := url.Parse(c.StoreURL)
	if err != nil {
		return "", fmt.Errorf("parsing STORE_URL: %w", err)
	}
	if c.StoreServiceKey != "" {
		u.User = url.UserPassword("service_role", c.StoreServiceKey)
	} else {
		u.User = url.UserPassword("anon", c.StoreAnonKey)
	}
	return u.String(), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
