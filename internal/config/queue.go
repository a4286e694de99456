package config

import (
	"fmt"

	queue "github.com/babylonlabs-io/staking-queue-client/config"
)

const defaultQueueExchange = "staking-rewards-ledger"

type QueueConfig struct {
	queue.QueueConfig `mapstructure:",squash"`
	// Exchange is the topic exchange ledger events are published to.
	Exchange string `mapstructure:"exchange"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Exchange == "" {
		cfg.Exchange = defaultQueueExchange
	}

	if err := cfg.QueueConfig.Validate(); err != nil {
		return fmt.Errorf("invalid queue config: %w", err)
	}

	return nil
}
