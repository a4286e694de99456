package config

import (
	"errors"
	"time"
)

const defaultInvariantCheckInterval = 5 * time.Minute

type PollerConfig struct {
	InvariantCheckInterval time.Duration `mapstructure:"invariant-check-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.InvariantCheckInterval < 0 {
		return errors.New("invariant-check-interval must not be negative")
	}
	if cfg.InvariantCheckInterval == 0 {
		cfg.InvariantCheckInterval = defaultInvariantCheckInterval
	}

	return nil
}
