package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/stretchr/testify/require"
)

const custody = "bbn1custody"

// memStore keeps ledger state in maps and can be told to fail commits.
type memStore struct {
	mu        sync.Mutex
	pool      *ledger.Pool
	accounts  map[string]*ledger.Account
	commitErr error
	commitCnt int
	// beforeGetAccount, when set, runs at the start of every GetAccount.
	beforeGetAccount func()
}

func newMemStore() *memStore {
	return &memStore{accounts: make(map[string]*ledger.Account)}
}

func (s *memStore) GetPool(_ context.Context) (*ledger.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pool == nil {
		return nil, ledger.ErrPoolNotFound
	}
	return s.pool.Clone(), nil
}

func (s *memStore) CreatePool(_ context.Context, pool *ledger.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pool != nil {
		return ledger.ErrPoolExists
	}
	s.pool = pool.Clone()
	return nil
}

func (s *memStore) GetAccount(_ context.Context, owner string) (*ledger.Account, error) {
	if s.beforeGetAccount != nil {
		s.beforeGetAccount()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[owner]
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	return account.Clone(), nil
}

func (s *memStore) Commit(_ context.Context, pool *ledger.Pool, account *ledger.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.commitErr != nil {
		return s.commitErr
	}
	s.commitCnt++
	s.pool = pool.Clone()
	s.accounts[account.Owner] = account.Clone()
	return nil
}

func (s *memStore) allAccounts() []*ledger.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := make([]*ledger.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a.Clone())
	}
	return accounts
}

// recordingTransferer succeeds unless failWith is set and remembers every request.
type recordingTransferer struct {
	failWith error
	requests []ledger.TransferRequest
}

func (r *recordingTransferer) Transfer(_ context.Context, req ledger.TransferRequest) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.requests = append(r.requests, req)
	return nil
}

var errTransfer = errors.New("token contract rejected transfer")

func newTestEngine(t *testing.T, params ledger.PoolParams) (*ledger.Engine, *memStore, *recordingTransferer) {
	t.Helper()

	store := newMemStore()
	transfer := &recordingTransferer{}
	engine := ledger.NewEngine(store, transfer, custody)

	_, err := engine.Instantiate(t.Context(), params)
	require.NoError(t, err)

	return engine, store, transfer
}

func defaultParams() ledger.PoolParams {
	return ledger.PoolParams{
		StakingToken:   "bbn1stakingtoken",
		RewardToken:    "bbn1rewardtoken",
		PeriodFinishAt: 1000,
		RewardRate:     100,
	}
}
