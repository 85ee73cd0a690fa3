package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[server]
http_port = 8083

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "bookings"
sslmode = "disable"

[product_service]
url = "http://localhost:8081"

[security]
nonce_secret = "test-secret"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))

	require.NoError(t, err)
	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "bookings-dropdown-service", cfg.Metrics.ServiceName)
	assert.Equal(t, 5, cfg.ProductService.Timeout)
	assert.Equal(t, 24, cfg.Security.NonceTTLHours)
}

func TestLoad_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		config string
	}{
		{"missing port", `
[database]
host = "localhost"
dbname = "bookings"
[product_service]
url = "http://localhost:8081"
[security]
nonce_secret = "s"
`},
		{"missing database", `
[server]
http_port = 8083
[product_service]
url = "http://localhost:8081"
[security]
nonce_secret = "s"
`},
		{"missing product service url", `
[server]
http_port = 8083
[database]
host = "localhost"
dbname = "bookings"
[security]
nonce_secret = "s"
`},
		{"missing nonce secret", `
[server]
http_port = 8083
[database]
host = "localhost"
dbname = "bookings"
[product_service]
url = "http://localhost:8081"
`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.config))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=bookings sslmode=disable",
		cfg.Database.DSN())
}
