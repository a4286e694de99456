package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Db       DbConfig       `mapstructure:"db"`
	Pool     PoolConfig     `mapstructure:"pool"`
	Transfer TransferConfig `mapstructure:"transfer"`
	// Queue is optional, event publishing is disabled when it is absent.
	Queue   *QueueConfig  `mapstructure:"queue"`
	Server  ServerConfig  `mapstructure:"server"`
	Poller  PollerConfig  `mapstructure:"poller"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}

	if err := cfg.Pool.Validate(); err != nil {
		return err
	}

	if err := cfg.Transfer.Validate(&cfg.Pool); err != nil {
		return err
	}

	if cfg.Queue != nil {
		if err := cfg.Queue.Validate(); err != nil {
			return err
		}
	}

	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	if err := cfg.Poller.Validate(); err != nil {
		return err
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// New returns a fully parsed Config object from a given file path.
// Every key can be overridden by an environment variable prefixed with LEDGER,
// e.g. LEDGER_DB_ADDRESS overrides db.address.
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
