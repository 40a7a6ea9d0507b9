package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"listen_addr":    ":7000",
		"secret_key":     "from-json",
		"token_validity": "10m",
		"presign_expiry": 60000000000,
		"cors_origins":   []string{"https://app.example"},
		"log_format":     "console",
	})

	t.Run("overlays present keys", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}
		var c Config
		c.LoadDefaults()

		parseJson(&c)

		assert.Equal(t, ":7000", c.ListenAddr)
		assert.Equal(t, "from-json", c.SecretKey)
		assert.Equal(t, 10*time.Minute, c.TokenValidity)
		assert.Equal(t, time.Minute, c.PresignExpiry)
		assert.Equal(t, []string{"https://app.example"}, c.CORSOrigins)
		assert.Equal(t, "console", c.LogFormat)
		assert.Equal(t, "admin@cloudpyit.com", c.AdminEmail)
	})

	t.Run("no file", func(t *testing.T) {
		os.Args = []string{"testbin"}
		var c Config
		parseJson(&c)
		assert.Equal(t, Config{}, c)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
		os.Args = []string{"testbin", "-c", bad}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})
}
