package ledger

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Pool is the ledger-wide accrual state.
type Pool struct {
	StakingToken   string
	RewardToken    string
	RewardRate     uint64
	PeriodFinishAt uint64
	LastUpdateAt   uint64
	TotalStaked    uint64
	// RewardPerUnitStored is the cumulative reward earned by one staked unit,
	// scaled by RewardScale. It never decreases.
	RewardPerUnitStored sdkmath.Uint
}

// PoolParams are fixed when the pool is created.
type PoolParams struct {
	StakingToken   string `json:"staking_token"`
	RewardToken    string `json:"reward_token"`
	PeriodFinishAt uint64 `json:"period_finish_at"`
	RewardRate     uint64 `json:"reward_rate"`
}

func (p PoolParams) Validate() error {
	if p.StakingToken == "" {
		return fmt.Errorf("%w: staking token is required", ErrInvalidPoolParams)
	}
	if p.RewardToken == "" {
		return fmt.Errorf("%w: reward token is required", ErrInvalidPoolParams)
	}
	if p.PeriodFinishAt == 0 {
		return fmt.Errorf("%w: period finish time is required", ErrInvalidPoolParams)
	}
	return nil
}

// NewPool returns a pool with nothing staked and an empty accumulator.
func NewPool(params PoolParams) *Pool {
	return &Pool{
		StakingToken:        params.StakingToken,
		RewardToken:         params.RewardToken,
		RewardRate:          params.RewardRate,
		PeriodFinishAt:      params.PeriodFinishAt,
		RewardPerUnitStored: sdkmath.ZeroUint(),
	}
}

// Clone returns a deep copy, so staged changes never alias the loaded state.
func (p *Pool) Clone() *Pool {
	c := *p
	c.RewardPerUnitStored = sdkmath.NewUintFromBigInt(orZero(p.RewardPerUnitStored).BigInt())
	return &c
}

// accrualEnd clamps now to the reward period.
func (p *Pool) accrualEnd(now uint64) uint64 {
	return min(now, p.PeriodFinishAt)
}

// RewardPerUnitAt returns the accumulator value as of now without mutating the pool.
// With nothing staked the stored value is returned unchanged. Remainders below one
// scaled unit are dropped.
func (p *Pool) RewardPerUnitAt(now uint64) (sdkmath.Uint, error) {
	stored := orZero(p.RewardPerUnitStored)
	if p.TotalStaked == 0 {
		return stored, nil
	}

	end := p.accrualEnd(now)
	if end < p.LastUpdateAt {
		return sdkmath.Uint{}, fmt.Errorf(
			"%w: time %d is before last update %d", ErrArithmeticOverflow, end, p.LastUpdateAt,
		)
	}
	elapsed := end - p.LastUpdateAt
	if elapsed == 0 || p.RewardRate == 0 {
		return stored, nil
	}

	emitted, err := mulUint64(sdkmath.NewUint(elapsed), p.RewardRate)
	if err != nil {
		return sdkmath.Uint{}, err
	}
	scaled, err := mulUint64(emitted, RewardScale)
	if err != nil {
		return sdkmath.Uint{}, err
	}

	return addUint(stored, scaled.QuoUint64(p.TotalStaked))
}

// advance moves the accumulator to now and records the settlement time.
func (p *Pool) advance(now uint64) error {
	rpu, err := p.RewardPerUnitAt(now)
	if err != nil {
		return err
	}
	p.RewardPerUnitStored = rpu
	// with nothing staked the window still moves, the emission is forfeited
	if end := p.accrualEnd(now); end > p.LastUpdateAt {
		p.LastUpdateAt = end
	}
	return nil
}
