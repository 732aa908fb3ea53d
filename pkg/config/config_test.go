package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "https://zoom.us/oauth/token", cfg.Zoom.TokenURL)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.ZoomEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("ZOOM_ACCOUNT_ID", "acc")
	t.Setenv("ZOOM_CLIENT_ID", "id")
	t.Setenv("ZOOM_CLIENT_SECRET", "secret")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Database.MaxConns)
	assert.Equal(t, time.Hour, cfg.JWT.Expiry)
	assert.True(t, cfg.Redis.Enabled)
	assert.True(t, cfg.ZoomEnabled())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Environment: "development", Timezone: "UTC"},
			Database: DatabaseConfig{MaxConns: 10},
			JWT:      JWTConfig{Secret: testSecret, Expiry: time.Hour},
		}
	}

	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("short secret", func(t *testing.T) {
		cfg := valid()
		cfg.JWT.Secret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("auto migrate in production", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Environment = "production"
		cfg.Database.AutoMigrate = true
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad timezone", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Timezone = "Mars/Olympus"
		assert.Error(t, cfg.Validate())
	})
}
