package model

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
)

type PoolDocument struct {
	ID             string `bson:"_id"`
	StakingToken   string `bson:"staking_token"`
	RewardToken    string `bson:"reward_token"`
	RewardRate     uint64 `bson:"reward_rate"`
	PeriodFinishAt uint64 `bson:"period_finish_at"`
	LastUpdateAt   uint64 `bson:"last_update_at"`
	TotalStaked    uint64 `bson:"total_staked"`
	// decimal string, the scaled accumulator does not fit in 64 bits
	RewardPerUnitStored string `bson:"reward_per_unit_stored"`
	UpdatedAt           int64  `bson:"updated_at"`
}

func FromPool(pool *ledger.Pool, updatedAt int64) *PoolDocument {
	return &PoolDocument{
		ID:                  SingletonID,
		StakingToken:        pool.StakingToken,
		RewardToken:         pool.RewardToken,
		RewardRate:          pool.RewardRate,
		PeriodFinishAt:      pool.PeriodFinishAt,
		LastUpdateAt:        pool.LastUpdateAt,
		TotalStaked:         pool.TotalStaked,
		RewardPerUnitStored: pool.RewardPerUnitStored.String(),
		UpdatedAt:           updatedAt,
	}
}

func (d *PoolDocument) ToPool() (*ledger.Pool, error) {
	rpu, err := sdkmath.ParseUint(d.RewardPerUnitStored)
	if err != nil {
		return nil, fmt.Errorf("invalid reward per unit stored %q: %w", d.RewardPerUnitStored, err)
	}

	return &ledger.Pool{
		StakingToken:        d.StakingToken,
		RewardToken:         d.RewardToken,
		RewardRate:          d.RewardRate,
		PeriodFinishAt:      d.PeriodFinishAt,
		LastUpdateAt:        d.LastUpdateAt,
		TotalStaked:         d.TotalStaked,
		RewardPerUnitStored: rpu,
	}, nil
}
