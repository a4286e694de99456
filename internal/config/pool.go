package config

import (
	"fmt"

	"github.com/babylonlabs-io/staking-rewards-ledger/pkg"
	"golang.org/x/mod/semver"
)

type TokenKind string

const (
	TokenKindNative TokenKind = "native"
	TokenKindCW20   TokenKind = "cw20"
)

const (
	defaultBech32Prefix = "bbn"
	defaultContractName = "staking-rewards"
)

type TokenConfig struct {
	// ID is the bank denom of a native token or the contract address of a cw20 token.
	ID   string    `mapstructure:"id"`
	Kind TokenKind `mapstructure:"kind"`
}

type PoolConfig struct {
	StakingToken   TokenConfig `mapstructure:"staking-token"`
	RewardToken    TokenConfig `mapstructure:"reward-token"`
	PeriodFinishAt uint64      `mapstructure:"period-finish-at"`
	RewardRate     uint64      `mapstructure:"reward-rate"`
	// Custody is the address holding staked and reward tokens on behalf of the pool.
	Custody         string `mapstructure:"custody"`
	Bech32Prefix    string `mapstructure:"bech32-prefix"`
	ContractName    string `mapstructure:"contract-name"`
	ContractVersion string `mapstructure:"contract-version"`
}

func (cfg *PoolConfig) Validate() error {
	if cfg.Bech32Prefix == "" {
		cfg.Bech32Prefix = defaultBech32Prefix
	}
	if cfg.ContractName == "" {
		cfg.ContractName = defaultContractName
	}

	if err := cfg.StakingToken.validate("staking-token", cfg.Bech32Prefix); err != nil {
		return err
	}
	if err := cfg.RewardToken.validate("reward-token", cfg.Bech32Prefix); err != nil {
		return err
	}

	if cfg.PeriodFinishAt == 0 {
		return fmt.Errorf("pool period-finish-at must be positive")
	}

	if err := pkg.ValidateAddress(cfg.Custody, cfg.Bech32Prefix); err != nil {
		return fmt.Errorf("invalid pool custody address: %w", err)
	}

	if !semver.IsValid(cfg.ContractVersion) {
		return fmt.Errorf("pool contract-version %q is not a valid semver version", cfg.ContractVersion)
	}

	return nil
}

func (cfg *TokenConfig) validate(name, prefix string) error {
	if cfg.ID == "" {
		return fmt.Errorf("pool %s id is required", name)
	}

	switch cfg.Kind {
	case TokenKindNative:
	case TokenKindCW20:
		if err := pkg.ValidateAddress(cfg.ID, prefix); err != nil {
			return fmt.Errorf("pool %s must be a cw20 contract address: %w", name, err)
		}
	default:
		return fmt.Errorf("pool %s kind must be %q or %q, got %q", name, TokenKindNative, TokenKindCW20, cfg.Kind)
	}

	return nil
}
