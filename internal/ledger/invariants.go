package ledger

import (
	"fmt"
)

// CheckPool verifies the accrual window of the pool.
func CheckPool(pool *Pool) error {
	if pool.LastUpdateAt > pool.PeriodFinishAt {
		return fmt.Errorf(
			"%w: last update %d is past period finish %d",
			ErrInvariantViolation, pool.LastUpdateAt, pool.PeriodFinishAt,
		)
	}
	return nil
}

// CheckAccount verifies that the account snapshot does not run ahead of the pool.
func CheckAccount(pool *Pool, account *Account) error {
	if orZero(account.RewardPerUnitPaid).GT(orZero(pool.RewardPerUnitStored)) {
		return fmt.Errorf(
			"%w: account %s paid up to %s, pool accumulator is %s",
			ErrInvariantViolation, account.Owner, account.RewardPerUnitPaid, pool.RewardPerUnitStored,
		)
	}
	return nil
}

// CheckConservation verifies that the pool total equals the sum of staked balances.
func CheckConservation(pool *Pool, accounts []*Account) error {
	var sum uint64
	for _, account := range accounts {
		var err error
		if sum, err = addUint64(sum, account.Staked); err != nil {
			return err
		}
	}
	return CheckTotalStaked(pool, sum)
}

// CheckTotalStaked compares the pool total with an externally computed sum of
// account stakes.
func CheckTotalStaked(pool *Pool, sum uint64) error {
	if sum != pool.TotalStaked {
		return fmt.Errorf(
			"%w: pool total staked %d, accounts hold %d",
			ErrInvariantViolation, pool.TotalStaked, sum,
		)
	}
	return nil
}
