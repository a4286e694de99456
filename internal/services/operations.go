package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/tracing"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/types"
	"github.com/babylonlabs-io/staking-rewards-ledger/pkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	compensationReverseTransfer = "reverse_transfer"
	compensationRollback        = "ledger_rollback"
)

var eventTypes = map[ledger.Operation]types.EventType{
	ledger.OperationStake:       types.EventStaked,
	ledger.OperationWithdraw:    types.EventWithdrawn,
	ledger.OperationClaimReward: types.EventRewardClaimed,
}

func (s *Service) Stake(ctx context.Context, owner string, amount uint64) (*ledger.Receipt, error) {
	return s.execute(ctx, ledger.OperationStake, owner, func(now uint64) (*ledger.Receipt, error) {
		return s.engine.Stake(ctx, now, owner, amount)
	})
}

func (s *Service) Withdraw(ctx context.Context, owner string, amount uint64) (*ledger.Receipt, error) {
	return s.execute(ctx, ledger.OperationWithdraw, owner, func(now uint64) (*ledger.Receipt, error) {
		return s.engine.Withdraw(ctx, now, owner, amount)
	})
}

func (s *Service) ClaimReward(ctx context.Context, owner string) (*ledger.Receipt, error) {
	return s.execute(ctx, ledger.OperationClaimReward, owner, func(now uint64) (*ledger.Receipt, error) {
		return s.engine.ClaimReward(ctx, now, owner)
	})
}

// execute authenticates owner, runs op at the current time and, once it has
// committed, records and announces it. Recording and publishing are best
// effort: a committed operation is never reported as failed.
func (s *Service) execute(
	ctx context.Context,
	operation ledger.Operation,
	owner string,
	op func(now uint64) (*ledger.Receipt, error),
) (*ledger.Receipt, error) {
	if err := s.authenticate(owner); err != nil {
		return nil, err
	}

	startTime := time.Now()
	receipt, err := s.runAtNow(op)
	metrics.RecordLedgerOperation(time.Since(startTime), operation.String(), err != nil)
	recordCompensation(operation, err)
	if err != nil {
		log.Ctx(ctx).Warn().
			Err(err).
			Str("operation", operation.String()).
			Str("owner", owner).
			Msg("ledger operation failed")
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("operation", operation.String()).
		Str("owner", owner).
		Uint64("amount", receipt.Amount).
		Uint64("staked", receipt.Account.Staked).
		Uint64("total_staked", receipt.Pool.TotalStaked).
		Msg("ledger operation committed")

	s.recordOperation(ctx, receipt)
	return receipt, nil
}

// runAtNow reads the clock and runs op while holding the operation lock, so
// operations reach the engine in the order of the times they were given.
func (s *Service) runAtNow(op func(now uint64) (*ledger.Receipt, error)) (*ledger.Receipt, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	now, err := s.now()
	if err != nil {
		return nil, err
	}
	return op(now)
}

func recordCompensation(operation ledger.Operation, err error) {
	switch {
	case err == nil:
	case operation == ledger.OperationStake && errors.Is(err, ledger.ErrCommitFailed):
		metrics.IncCompensation(compensationReverseTransfer, errors.Is(err, ledger.ErrReverseTransferFailed))
	case operation != ledger.OperationStake && errors.Is(err, ledger.ErrTransferFailed):
		metrics.IncCompensation(compensationRollback, errors.Is(err, ledger.ErrRollbackFailed))
	}
}

func (s *Service) authenticate(owner string) error {
	if err := pkg.ValidateAddress(owner, s.cfg.Pool.Bech32Prefix); err != nil {
		return fmt.Errorf("%w: invalid caller address %q: %w", ledger.ErrUnauthorized, owner, err)
	}
	return nil
}

func (s *Service) recordOperation(ctx context.Context, receipt *ledger.Receipt) {
	id := uuid.New().String()

	doc := model.FromReceipt(id, tracing.TraceID(ctx), receipt)
	if err := s.db.SaveOperation(ctx, doc); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("operation_id", id).Msg("failed to save operation log")
	}

	event := &types.LedgerEvent{
		ID:          id,
		Type:        eventTypes[receipt.Operation],
		Owner:       receipt.Owner,
		Token:       receipt.Token,
		Amount:      receipt.Amount,
		At:          receipt.At,
		Staked:      receipt.Account.Staked,
		RewardOwed:  receipt.Account.RewardOwed,
		TotalStaked: receipt.Pool.TotalStaked,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Error().Err(err).Str("operation_id", id).Msg("failed to publish ledger event")
	}
}
