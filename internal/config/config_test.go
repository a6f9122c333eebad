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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	path := writeConfig(t, `
[server]
http_port = 8085

[database]
host = "db"
user = "postgres"
password = "from-file"
dbname = "availability"

[logs]
level = "debug"

[redis]
enabled = true
addr = "redis:6379"
ttl = 60

[availability]
slot_step_minutes = 30
default_timezone = "Europe/Moscow"
max_range_days = 14
min_notice_minutes = 120
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8085, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "from-file", cfg.Database.Password)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 60, cfg.Redis.TTL)
	assert.Equal(t, 30, cfg.Availability.SlotStepMinutes)
	assert.Equal(t, "Europe/Moscow", cfg.Availability.DefaultTimezone)
	assert.Equal(t, 14, cfg.Availability.MaxRangeDays)
	assert.Equal(t, 120, cfg.Availability.MinNoticeMinutes)

	// значения по умолчанию
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5, cfg.Server.RequestTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "availability"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Availability.SlotStepMinutes)
	assert.Equal(t, "UTC", cfg.Availability.DefaultTimezone)
	assert.Equal(t, 31, cfg.Availability.MaxRangeDays)
	assert.Equal(t, 0, cfg.Availability.MinNoticeMinutes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("REDIS_PASSWORD", "redis-secret")

	path := writeConfig(t, `
[database]
host = "localhost"
password = "from-file"
dbname = "availability"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, "redis-secret", cfg.Redis.Password)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server\nhttp_port = "))
		assert.Error(t, err)
	})

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing dbname",
			content: "[database]\nhost = \"localhost\"\n",
		},
		{
			name:    "bad port",
			content: "[server]\nhttp_port = 70000\n[database]\nhost = \"localhost\"\ndbname = \"a\"\n",
		},
		{
			name:    "negative step",
			content: "[database]\nhost = \"localhost\"\ndbname = \"a\"\n[availability]\nslot_step_minutes = -5\n",
		},
		{
			name:    "negative notice",
			content: "[database]\nhost = \"localhost\"\ndbname = \"a\"\n[availability]\nmin_notice_minutes = -1\n",
		},
		{
			name:    "unknown timezone",
			content: "[database]\nhost = \"localhost\"\ndbname = \"a\"\n[availability]\ndefault_timezone = \"Moon/Base\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "availability", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=availability sslmode=disable", d.DSN())
}
