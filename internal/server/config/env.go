package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotenv is a seam for godotenv.Load. A missing .env file is not an
// error; variables already set in the process win over the file.
var loadDotenv = func() error { return godotenv.Load() }

// envKeys maps environment variables to the fields they set.
var envKeys = map[string]func(*Config, string){
	"LISTEN_ADDR":      func(c *Config, v string) { c.ListenAddr = v },
	"DATABASE_DSN":     func(c *Config, v string) { c.DatabaseDSN = v },
	"SECRET_KEY":       func(c *Config, v string) { c.SecretKey = v },
	"ADMIN_EMAIL":      func(c *Config, v string) { c.AdminEmail = v },
	"ADMIN_PASSWORD":   func(c *Config, v string) { c.AdminPassword = v },
	"CORS_ORIGINS":     func(c *Config, v string) { c.CORSOrigins = SplitOrigins(v) },
	"S3_ROOT_USER":     func(c *Config, v string) { c.S3RootUser = v },
	"S3_ROOT_PASSWORD": func(c *Config, v string) { c.S3RootPassword = v },
	"S3_BUCKET":        func(c *Config, v string) { c.S3Bucket = v },
	"S3_REGION":        func(c *Config, v string) { c.S3Region = v },
	"S3_BASE_ENDPOINT": func(c *Config, v string) { c.S3BaseEndpoint = v },
	"LOG_LEVEL":        func(c *Config, v string) { c.LogLevel = v },
}

// parseEnv overlays cfg with the non-empty variables of envKeys.
func parseEnv(cfg *Config) {
	_ = loadDotenv()

	for key, set := range envKeys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			set(cfg, v)
		}
	}
}

// SplitOrigins splits a comma separated origin list, dropping blanks.
func SplitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
