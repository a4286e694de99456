package services

import (
	"context"
	"fmt"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
)

const maxOperationsLimit = 100

// Balance is the staked principal and owed reward of an account.
type Balance struct {
	Staked     uint64
	RewardOwed uint64
}

// GetStaked returns the stored balance of owner, owed reward as of the
// owner's last operation.
func (s *Service) GetStaked(ctx context.Context, owner string) (*Balance, error) {
	staked, owed, err := s.engine.Balance(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &Balance{Staked: staked, RewardOwed: owed}, nil
}

// GetProjected returns the balance owner would have after a settlement now.
func (s *Service) GetProjected(ctx context.Context, owner string) (*Balance, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	now, err := s.now()
	if err != nil {
		return nil, err
	}
	staked, owed, err := s.engine.ProjectedBalance(ctx, now, owner)
	if err != nil {
		return nil, err
	}
	return &Balance{Staked: staked, RewardOwed: owed}, nil
}

func (s *Service) GetPool(ctx context.Context) (*ledger.Pool, error) {
	return s.engine.Pool(ctx)
}

// GetOperations returns the newest operations of owner. limit is capped at 100.
func (s *Service) GetOperations(ctx context.Context, owner string, limit int64) ([]*model.OperationDocument, error) {
	if limit <= 0 || limit > maxOperationsLimit {
		limit = maxOperationsLimit
	}
	docs, err := s.db.GetOperationsByOwner(ctx, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get operations of %s: %w", owner, err)
	}
	return docs, nil
}
