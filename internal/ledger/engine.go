package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Engine applies stake, withdraw and claim operations to the pool. Operations are
// serialized; each one settles first and stages the new state on copies. Deposits
// move the tokens before committing, payouts commit before paying out.
type Engine struct {
	mu       sync.Mutex
	store    Store
	transfer Transferer
	// custody is the address holding staked principal and undistributed rewards.
	custody string
}

func NewEngine(store Store, transfer Transferer, custody string) *Engine {
	return &Engine{
		store:    store,
		transfer: transfer,
		custody:  custody,
	}
}

// Custody returns the address the pool holds tokens under.
func (e *Engine) Custody() string {
	return e.custody
}

// Instantiate creates the pool.
func (e *Engine) Instantiate(ctx context.Context, params PoolParams) (*Pool, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	pool := NewPool(params)
	if err := e.store.CreatePool(ctx, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

// Stake deposits amount of the staking token from owner, creating the owner's
// record on first use.
func (e *Engine) Stake(ctx context.Context, now uint64, owner string, amount uint64) (*Receipt, error) {
	if amount == 0 {
		return nil, fmt.Errorf("%w: stake amount must be positive", ErrInvalidAmount)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	pool, account, err := e.load(ctx, owner, true)
	if err != nil {
		return nil, err
	}
	if err := Settle(pool, account, now); err != nil {
		return nil, err
	}

	if account.Staked, err = addUint64(account.Staked, amount); err != nil {
		return nil, err
	}
	if pool.TotalStaked, err = addUint64(pool.TotalStaked, amount); err != nil {
		return nil, err
	}

	req := TransferRequest{
		Token:  pool.StakingToken,
		From:   owner,
		To:     e.custody,
		Amount: amount,
	}
	if err := e.transferAndCommit(ctx, req, pool, account); err != nil {
		return nil, err
	}

	return newReceipt(OperationStake, req, now, pool, account), nil
}

// Withdraw returns amount of staked principal to owner.
func (e *Engine) Withdraw(ctx context.Context, now uint64, owner string, amount uint64) (*Receipt, error) {
	if amount == 0 {
		return nil, fmt.Errorf("%w: withdraw amount must be positive", ErrInvalidAmount)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	pool, account, err := e.load(ctx, owner, false)
	if err != nil {
		return nil, err
	}
	prevPool, prevAccount := pool.Clone(), account.Clone()
	if err := Settle(pool, account, now); err != nil {
		return nil, err
	}

	if account.Staked < amount {
		return nil, fmt.Errorf(
			"%w: requested %d, staked %d", ErrInsufficientBalance, amount, account.Staked,
		)
	}
	if account.Staked, err = subUint64(account.Staked, amount); err != nil {
		return nil, err
	}
	if pool.TotalStaked, err = subUint64(pool.TotalStaked, amount); err != nil {
		return nil, err
	}

	req := TransferRequest{
		Token:  pool.StakingToken,
		From:   e.custody,
		To:     owner,
		Amount: amount,
	}
	if err := e.commitAndPayout(ctx, req, pool, account, prevPool, prevAccount); err != nil {
		return nil, err
	}

	return newReceipt(OperationWithdraw, req, now, pool, account), nil
}

// ClaimReward pays out everything owner has accrued. Claiming with nothing owed
// succeeds without moving tokens.
func (e *Engine) ClaimReward(ctx context.Context, now uint64, owner string) (*Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool, account, err := e.load(ctx, owner, false)
	if err != nil {
		return nil, err
	}
	prevPool, prevAccount := pool.Clone(), account.Clone()
	if err := Settle(pool, account, now); err != nil {
		return nil, err
	}

	req := TransferRequest{
		Token:  pool.RewardToken,
		From:   e.custody,
		To:     owner,
		Amount: account.RewardOwed,
	}
	account.RewardOwed = 0

	if req.Amount == 0 {
		if err := e.store.Commit(ctx, pool, account); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCommitFailed, err)
		}
	} else if err := e.commitAndPayout(ctx, req, pool, account, prevPool, prevAccount); err != nil {
		return nil, err
	}

	return newReceipt(OperationClaimReward, req, now, pool, account), nil
}

// Balance returns the stored staked principal and owed reward of owner. No
// settlement happens, so owed reward is as of the owner's last operation.
func (e *Engine) Balance(ctx context.Context, owner string) (staked, rewardOwed uint64, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return 0, 0, err
	}
	return account.Staked, account.RewardOwed, nil
}

// ProjectedBalance returns what Balance would report right after a settlement
// at now. Nothing is persisted.
func (e *Engine) ProjectedBalance(ctx context.Context, now uint64, owner string) (staked, rewardOwed uint64, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool, err := e.store.GetPool(ctx)
	if err != nil {
		return 0, 0, err
	}
	account, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return 0, 0, err
	}

	projected, err := Project(pool, account, now)
	if err != nil {
		return 0, 0, err
	}
	return projected.Staked, projected.RewardOwed, nil
}

// Pool returns the stored pool state.
func (e *Engine) Pool(ctx context.Context) (*Pool, error) {
	return e.store.GetPool(ctx)
}

// load returns private copies of the pool and the owner's account. With create
// set, an absent account becomes a zero-balance record; otherwise absence is an
// error.
func (e *Engine) load(ctx context.Context, owner string, create bool) (*Pool, *Account, error) {
	if owner == "" {
		return nil, nil, fmt.Errorf("%w: empty account", ErrUnauthorized)
	}

	pool, err := e.store.GetPool(ctx)
	if err != nil {
		return nil, nil, err
	}

	account, err := e.store.GetAccount(ctx, owner)
	switch {
	case err == nil:
	case create && errors.Is(err, ErrAccountNotFound):
		account = NewAccount(owner)
	default:
		return nil, nil, err
	}

	return pool.Clone(), account.Clone(), nil
}

// transferAndCommit moves tokens into custody and then persists the staged
// state. If the write fails the transfer is reversed, which custody can always
// do, so custody never disagrees with a reported failure.
func (e *Engine) transferAndCommit(ctx context.Context, req TransferRequest, pool *Pool, account *Account) error {
	if err := e.transfer.Transfer(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	commitErr := e.store.Commit(ctx, pool, account)
	if commitErr == nil {
		return nil
	}

	logger := log.Ctx(ctx).With().
		Str("token", req.Token).
		Str("from", req.From).
		Str("to", req.To).
		Uint64("amount", req.Amount).
		Logger()
	logger.Error().Err(commitErr).Msg("ledger commit failed after transfer, reversing transfer")

	if err := e.transfer.Transfer(ctx, req.Reverse()); err != nil {
		logger.Error().Err(err).Msg("failed to reverse transfer, custody needs manual reconciliation")
		return fmt.Errorf("%w: %w (%w: %w)", ErrCommitFailed, commitErr, ErrReverseTransferFailed, err)
	}
	return fmt.Errorf("%w: %w", ErrCommitFailed, commitErr)
}

// commitAndPayout persists the staged state and then pays out of custody. If
// the payout fails the previous state is written back. Paying first would leave
// a reversal depending on the owner's funds or allowance.
func (e *Engine) commitAndPayout(
	ctx context.Context,
	req TransferRequest,
	pool *Pool,
	account *Account,
	prevPool *Pool,
	prevAccount *Account,
) error {
	if err := e.store.Commit(ctx, pool, account); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}

	transferErr := e.transfer.Transfer(ctx, req)
	if transferErr == nil {
		return nil
	}

	logger := log.Ctx(ctx).With().
		Str("token", req.Token).
		Str("to", req.To).
		Uint64("amount", req.Amount).
		Logger()
	logger.Warn().Err(transferErr).Msg("payout failed, rolling back ledger state")

	if err := e.store.Commit(ctx, prevPool, prevAccount); err != nil {
		logger.Error().Err(err).Msg("failed to roll back ledger state, account needs manual reconciliation")
		return fmt.Errorf("%w: %w (%w: %w)", ErrTransferFailed, transferErr, ErrRollbackFailed, err)
	}
	return fmt.Errorf("%w: %w", ErrTransferFailed, transferErr)
}

func newReceipt(op Operation, req TransferRequest, now uint64, pool *Pool, account *Account) *Receipt {
	return &Receipt{
		Operation: op,
		Owner:     account.Owner,
		Amount:    req.Amount,
		Token:     req.Token,
		At:        now,
		Pool:      pool,
		Account:   account,
	}
}
