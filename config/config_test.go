package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, "https://dummyjson.com", cfg.RecipeAPI.BaseURL)
	assert.Equal(t, 10*time.Minute, cfg.OAuth.StateTTL)
	assert.True(t, cfg.DB.RunMigrations)
	assert.False(t, cfg.OAuth.Google.Enabled())
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9000")
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("JWT_ACCESS_EXPIRY", "1h")
	t.Setenv("JWT_REFRESH_EXPIRY", "not-a-duration")
	t.Setenv("RECIPE_API_BASE_URL", "http://recipes.local/")
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://app.example.com,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, StoreDriverRedis, cfg.Store.Driver)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, "http://recipes.local", cfg.RecipeAPI.BaseURL)
	assert.True(t, cfg.OAuth.Google.Enabled())
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, cfg.App.AllowedOrigins)
}
