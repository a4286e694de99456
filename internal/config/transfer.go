package config

import (
	"fmt"
	"time"
)

const (
	defaultTransferTimeout       = 10 * time.Second
	defaultTransferMaxRetryTimes = 3
	defaultTransferRetryInterval = 500 * time.Millisecond
)

type TransferConfig struct {
	// NativeURL is the base URL of the bank send endpoint, required for native tokens.
	NativeURL string `mapstructure:"native-url"`
	// CW20URL is the base URL of the contract execute endpoint, required for cw20 tokens.
	CW20URL       string        `mapstructure:"cw20-url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *TransferConfig) Validate(pool *PoolConfig) error {
	for _, token := range []TokenConfig{pool.StakingToken, pool.RewardToken} {
		if token.Kind == TokenKindNative && cfg.NativeURL == "" {
			return fmt.Errorf("transfer native-url is required for native token %s", token.ID)
		}
		if token.Kind == TokenKindCW20 && cfg.CW20URL == "" {
			return fmt.Errorf("transfer cw20-url is required for cw20 token %s", token.ID)
		}
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("transfer timeout must not be negative")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTransferTimeout
	}
	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultTransferMaxRetryTimes
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultTransferRetryInterval
	}

	return nil
}
