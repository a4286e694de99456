package config

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultDbConnectTimeout = 10 * time.Second

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"db-name"`
	// Address must point at a replica set: ledger commits run in transactions.
	Address        string        `mapstructure:"address"`
	ConnectTimeout time.Duration `mapstructure:"connect-timeout"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Address == "" {
		return fmt.Errorf("database address is required")
	}
	if cfg.DbName == "" {
		return fmt.Errorf("database name is required")
	}
	if (cfg.Username == "") != (cfg.Password == "") {
		return fmt.Errorf("database username and password must be set together")
	}
	if cfg.ConnectTimeout < 0 {
		return fmt.Errorf("database connect timeout must not be negative")
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = defaultDbConnectTimeout
	}

	return nil
}

// ToClientOptions builds the mongo client options for this config.
func (cfg *DbConfig) ToClientOptions() *options.ClientOptions {
	opts := options.Client().ApplyURI(cfg.Address)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}
	return opts
}
