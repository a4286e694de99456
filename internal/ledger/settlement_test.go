package ledger_test

import (
	"testing"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle(t *testing.T) {
	t.Run("credits the staker with the emitted reward", func(t *testing.T) {
		pool := ledger.NewPool(defaultParams())
		account := ledger.NewAccount("alice")
		account.Staked = 50
		pool.TotalStaked = 50

		require.NoError(t, ledger.Settle(pool, account, 100))

		assert.Equal(t, scaled(200).String(), pool.RewardPerUnitStored.String())
		assert.Equal(t, uint64(100), pool.LastUpdateAt)
		// 50 units * 200 per unit
		assert.Equal(t, uint64(10_000), account.RewardOwed)
		assert.True(t, pool.RewardPerUnitStored.Equal(account.RewardPerUnitPaid))
	})

	t.Run("settling twice at the same time accrues nothing more", func(t *testing.T) {
		pool := ledger.NewPool(defaultParams())
		account := ledger.NewAccount("alice")
		account.Staked = 30
		pool.TotalStaked = 30

		require.NoError(t, ledger.Settle(pool, account, 250))
		owed := account.RewardOwed
		rpu := pool.RewardPerUnitStored

		require.NoError(t, ledger.Settle(pool, account, 250))
		assert.Equal(t, owed, account.RewardOwed)
		assert.Equal(t, rpu.String(), pool.RewardPerUnitStored.String())
	})

	t.Run("zero stake never accrues", func(t *testing.T) {
		pool := ledger.NewPool(defaultParams())
		account := ledger.NewAccount("bob")

		require.NoError(t, ledger.Settle(pool, account, 600))
		assert.True(t, pool.RewardPerUnitStored.IsZero())
		assert.Zero(t, account.RewardOwed)
		assert.Equal(t, uint64(600), pool.LastUpdateAt)
	})

	t.Run("last update never passes period finish", func(t *testing.T) {
		pool := ledger.NewPool(defaultParams())
		account := ledger.NewAccount("alice")
		account.Staked = 1
		pool.TotalStaked = 1

		require.NoError(t, ledger.Settle(pool, account, 5000))
		assert.Equal(t, pool.PeriodFinishAt, pool.LastUpdateAt)
		assert.Equal(t, uint64(100*1000), account.RewardOwed)
		require.NoError(t, ledger.CheckPool(pool))
	})

	t.Run("snapshot ahead of the accumulator is an error", func(t *testing.T) {
		pool := ledger.NewPool(defaultParams())
		account := ledger.NewAccount("mallory")
		account.Staked = 1
		account.RewardPerUnitPaid = scaled(1)

		err := ledger.Settle(pool, account, 10)
		require.ErrorIs(t, err, ledger.ErrArithmeticOverflow)
	})

	t.Run("owed reward beyond 64 bits is an error", func(t *testing.T) {
		params := defaultParams()
		params.RewardRate = 1 << 62
		pool := ledger.NewPool(params)
		account := ledger.NewAccount("whale")
		account.Staked = 1
		pool.TotalStaked = 1

		err := ledger.Settle(pool, account, 10)
		require.ErrorIs(t, err, ledger.ErrArithmeticOverflow)
	})
}

func TestProject(t *testing.T) {
	pool := ledger.NewPool(defaultParams())
	account := ledger.NewAccount("alice")
	account.Staked = 50
	pool.TotalStaked = 50

	projected, err := ledger.Project(pool, account, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), projected.RewardOwed)

	assert.Zero(t, account.RewardOwed)
	assert.True(t, pool.RewardPerUnitStored.IsZero())
	assert.Zero(t, pool.LastUpdateAt)
}
