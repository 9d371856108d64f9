package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_TYPE", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("STRICT_STATUS_TRANSITIONS", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("R2_ACCOUNT_ID", "")

	cfg := LoadConfig()

	assert.Equal(t, "memory", cfg.DBType)
	assert.Equal(t, "8080", cfg.Port)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.StrictStatusTransitions)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.R2Enabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("STRICT_STATUS_TRANSITIONS", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("PENDING_CUTOFF", "21:30")
	t.Setenv("TIMEZONE", "UTC")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.StrictStatusTransitions)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, time.UTC, cfg.Location())

	h, m, err := cfg.CutoffClock()
	require.NoError(t, err)
	assert.Equal(t, 21, h)
	assert.Equal(t, 30, m)
}

func TestCutoffClockRejectsGarbage(t *testing.T) {
	cfg := &Config{PendingCutoff: "late"}
	_, _, err := cfg.CutoffClock()
	assert.Error(t, err)
}
