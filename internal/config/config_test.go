package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanayko/fantasydraftpredictor/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 5, cfg.DefenseTierCount)
	assert.Equal(t, 9, cfg.MaxRounds)
	assert.Equal(t, 3, cfg.SelectorRetries)
	assert.Equal(t, 60*time.Second, cfg.SelectorTimeout)
	assert.Equal(t, 0.7, cfg.PassFriendlyPassWeight)
	assert.Equal(t, 0.6, cfg.QualityScoringWeight)
	assert.Equal(t, 80.0, cfg.ScheduleVeryFavorable)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("MAX_ROUNDS", "15")
	t.Setenv("ENV", "production")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.MaxRounds)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadConfigValidation(t *testing.T) {
	t.Setenv("DEFENSE_TIER_COUNT", "0")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
