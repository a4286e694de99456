package ledger

import (
	sdkmath "cosmossdk.io/math"
)

// Account is the per-owner ledger record.
type Account struct {
	Owner      string
	Staked     uint64
	RewardOwed uint64
	// RewardPerUnitPaid is the pool accumulator at the account's last settlement.
	RewardPerUnitPaid sdkmath.Uint
}

// NewAccount returns the zero baseline record for owner.
func NewAccount(owner string) *Account {
	return &Account{
		Owner:             owner,
		RewardPerUnitPaid: sdkmath.ZeroUint(),
	}
}

func (a *Account) Clone() *Account {
	c := *a
	c.RewardPerUnitPaid = sdkmath.NewUintFromBigInt(orZero(a.RewardPerUnitPaid).BigInt())
	return &c
}

// IsStaked reports whether the account currently holds principal in the pool.
func (a *Account) IsStaked() bool {
	return a.Staked > 0
}

// earned returns the reward accrued since the last settlement given the accumulator rpu.
func (a *Account) earned(rpu sdkmath.Uint) (uint64, error) {
	delta, err := subUint(rpu, orZero(a.RewardPerUnitPaid))
	if err != nil {
		return 0, err
	}
	if a.Staked == 0 || delta.IsZero() {
		return 0, nil
	}

	product, err := mulUint64(delta, a.Staked)
	if err != nil {
		return 0, err
	}
	return toUint64(product.QuoUint64(RewardScale))
}
