package ledger

// Settle brings pool and account up to date with now: the pool accumulator is
// advanced, the account is credited with what it earned since its last settlement
// and its snapshot is moved to the new accumulator value.
//
// Both values are mutated in place; callers stage on clones and persist them
// together. Settling twice at the same now credits nothing the second time.
func Settle(pool *Pool, account *Account, now uint64) error {
	if err := pool.advance(now); err != nil {
		return err
	}

	accrued, err := account.earned(pool.RewardPerUnitStored)
	if err != nil {
		return err
	}
	owed, err := addUint64(account.RewardOwed, accrued)
	if err != nil {
		return err
	}

	account.RewardOwed = owed
	account.RewardPerUnitPaid = pool.RewardPerUnitStored
	return nil
}

// Project returns the account as it would look after settling at now, without
// touching either argument.
func Project(pool *Pool, account *Account, now uint64) (*Account, error) {
	p, a := pool.Clone(), account.Clone()
	if err := Settle(p, a, now); err != nil {
		return nil, err
	}
	return a, nil
}
