package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ledgerState backs the db mock with committed state, so concurrent
// operations see each other's writes.
type ledgerState struct {
	mu       sync.Mutex
	pool     *ledger.Pool
	accounts map[string]*ledger.Account
	// lastUpdates records the pool update time of every commit in order
	lastUpdates []uint64
}

func (s *ledgerState) wire(env *testEnv) {
	env.db.On("GetPool", mock.Anything).Return(func(context.Context) (*ledger.Pool, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.pool.Clone(), nil
	})
	env.db.On("GetAccount", mock.Anything, mock.Anything).Return(func(_ context.Context, owner string) (*ledger.Account, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		account, ok := s.accounts[owner]
		if !ok {
			return nil, notFound()
		}
		return account.Clone(), nil
	})
	env.db.On("Commit", mock.Anything, mock.Anything, mock.Anything).Return(func(_ context.Context, pool *ledger.Pool, account *ledger.Account) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pool = pool.Clone()
		s.accounts[account.Owner] = account.Clone()
		s.lastUpdates = append(s.lastUpdates, pool.LastUpdateAt)
		return nil
	})
	env.db.On("SaveOperation", mock.Anything, mock.Anything).Return(nil)
	env.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	env.transfer.On("Transfer", mock.Anything, mock.Anything).Return(nil)
}

func TestConcurrentOperationsFollowTheClock(t *testing.T) {
	env := setupService(t)
	state := &ledgerState{
		pool:     stakedPool(),
		accounts: map[string]*ledger.Account{},
	}
	first := testutil.RandomAddress(t, "bbn")
	state.accounts[first] = stakedAccount(first)
	state.wire(env)

	const workers = 16
	owners := make([]string, workers)
	for i := range owners {
		owners[i] = testutil.RandomAddress(t, "bbn")
	}

	var (
		wg   sync.WaitGroup
		stop = make(chan struct{})
	)
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				env.clock.Advance(time.Second)
				time.Sleep(time.Millisecond)
			}
		}
	}()

	errs := make(chan error, workers*4)
	for _, owner := range owners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 3 {
				if _, err := env.srv.Stake(t.Context(), owner, 10); err != nil {
					errs <- err
				}
				if _, err := env.srv.GetProjected(t.Context(), first); err != nil {
					errs <- err
				}
			}
			if _, err := env.srv.Withdraw(t.Context(), owner, 5); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(stop)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	assert.Equal(t, uint64(100+workers*25), state.pool.TotalStaked)
	for i := 1; i < len(state.lastUpdates); i++ {
		require.LessOrEqual(t, state.lastUpdates[i-1], state.lastUpdates[i])
	}
}
