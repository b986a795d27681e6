package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "JWT_SECRET", "JWT_EXPIRY", "REQUIRE_AUTH", "CRON_ENABLED", "GO_ENV"} {
		t.Setenv(key, "")
	}

	env, err := Get()
	require.NoError(t, err)

	assert.Equal(t, 4000, env.PORT)
	assert.Equal(t, "postgres", env.DB_DRIVER)
	assert.Equal(t, "localhost", env.DB_HOST)
	assert.Equal(t, 24*time.Hour, env.JWT_EXPIRY)
	assert.True(t, env.UsesInsecureSecret())
	assert.False(t, env.REQUIRE_AUTH)
	assert.True(t, env.CRON_ENABLED)
	assert.False(t, env.IsProduction())
}

func TestGetOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("CRON_ENABLED", "false")
	t.Setenv("GO_ENV", "production")

	env, err := Get()
	require.NoError(t, err)

	assert.Equal(t, 8081, env.PORT)
	assert.Equal(t, "sqlite", env.DB_DRIVER)
	assert.Equal(t, 90*time.Minute, env.JWT_EXPIRY)
	assert.False(t, env.UsesInsecureSecret())
	assert.True(t, env.REQUIRE_AUTH)
	assert.False(t, env.CRON_ENABLED)
	assert.True(t, env.IsProduction())
}

func TestGetRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("DB_DRIVER", "mysql")
	_, err := Get()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_EXPIRY", "one day")
	_, err = Get()
	assert.Error(t, err)
}
