package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerConfig_Validate(t *testing.T) {
	t.Run("interval set", func(t *testing.T) {
		cfg := &PollerConfig{InvariantCheckInterval: 3 * time.Minute}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, 3*time.Minute, cfg.InvariantCheckInterval)
	})
	t.Run("interval not set - should use default", func(t *testing.T) {
		cfg := &PollerConfig{}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, defaultInvariantCheckInterval, cfg.InvariantCheckInterval)
	})
	t.Run("interval negative - should error", func(t *testing.T) {
		cfg := &PollerConfig{InvariantCheckInterval: -time.Second}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invariant-check-interval must not be negative")
	})
}
