package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvariantChecks(t *testing.T) {
	pool := ledger.NewPool(defaultParams())
	pool.TotalStaked = 30
	alice := ledger.NewAccount("alice")
	alice.Staked = 10
	bob := ledger.NewAccount("bob")
	bob.Staked = 20

	require.NoError(t, ledger.CheckConservation(pool, []*ledger.Account{alice, bob}))
	require.ErrorIs(t, ledger.CheckConservation(pool, []*ledger.Account{alice}), ledger.ErrInvariantViolation)

	require.NoError(t, ledger.CheckAccount(pool, alice))
	alice.RewardPerUnitPaid = scaled(1)
	require.ErrorIs(t, ledger.CheckAccount(pool, alice), ledger.ErrInvariantViolation)

	require.NoError(t, ledger.CheckPool(pool))
	pool.LastUpdateAt = pool.PeriodFinishAt + 1
	require.ErrorIs(t, ledger.CheckPool(pool), ledger.ErrInvariantViolation)
}

// TestEngine_RandomOperations drives the engine with a seeded random mix of
// operations and checks the ledger invariants at every quiescent point.
func TestEngine_RandomOperations(t *testing.T) {
	params := ledger.PoolParams{
		StakingToken:   "bbn1stakingtoken",
		RewardToken:    "bbn1rewardtoken",
		PeriodFinishAt: 5_000,
		RewardRate:     1_000,
	}
	owners := []string{"alice", "bob", "carol", "dave"}

	for seed := int64(1); seed <= 20; seed++ {
		engine, store, transfer := newTestEngine(t, params)
		rng := rand.New(rand.NewSource(seed))

		var (
			now     uint64
			claimed uint64
		)
		prevRPU := ledger.NewPool(params).RewardPerUnitStored

		for step := 0; step < 200; step++ {
			now += uint64(rng.Intn(60))
			owner := owners[rng.Intn(len(owners))]
			transfer.failWith = nil
			if rng.Intn(10) == 0 {
				transfer.failWith = errTransfer
			}

			switch rng.Intn(3) {
			case 0:
				_, _ = engine.Stake(t.Context(), now, owner, uint64(rng.Intn(500)+1))
			case 1:
				_, _ = engine.Withdraw(t.Context(), now, owner, uint64(rng.Intn(500)+1))
			case 2:
				if receipt, err := engine.ClaimReward(t.Context(), now, owner); err == nil {
					claimed += receipt.Amount
				}
			}

			pool, err := store.GetPool(t.Context())
			require.NoError(t, err)
			accounts := store.allAccounts()
			dump := spew.Sdump(pool, accounts)

			require.NoError(t, ledger.CheckConservation(pool, accounts), dump)
			require.NoError(t, ledger.CheckPool(pool), dump)
			for _, account := range accounts {
				require.NoError(t, ledger.CheckAccount(pool, account), dump)
			}
			assert.True(t, pool.RewardPerUnitStored.GTE(prevRPU), "accumulator decreased (seed %d)\n%s", seed, dump)
			prevRPU = pool.RewardPerUnitStored

			// never more reward than the pool has emitted so far
			var owed uint64
			for _, account := range accounts {
				owed += account.RewardOwed
			}
			emitted := params.RewardRate * min(now, params.PeriodFinishAt)
			require.LessOrEqual(t, owed+claimed, emitted, dump)
		}
	}
}
