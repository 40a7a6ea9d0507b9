package config

import (
	"errors"
	"time"
)

// Config holds runtime settings of the terminal client.
type Config struct {
	// ServerURL is the base URL of the backend API.
	ServerURL string
	// OnlineCheckInterval is how often the client probes /health.
	OnlineCheckInterval time.Duration
	// LoginTimeout bounds a single login request.
	LoginTimeout time.Duration
	// DBPath is the SQLite file holding the persisted session.
	DBPath string
	// ExportDir receives CSV exports.
	ExportDir string
	// LogLevel of the diagnostic log written to stderr.
	LogLevel string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.OnlineCheckInterval = 3 * time.Second
	c.LoginTimeout = 5 * time.Second
	c.DBPath = "client.db"
	c.ExportDir = "."
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the optional JSON file, then flags.
// Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.OnlineCheckInterval <= 0 {
		return errors.New("online check interval must be positive")
	}
	if c.LoginTimeout <= 0 {
		return errors.New("login timeout must be positive")
	}
	return nil
}
