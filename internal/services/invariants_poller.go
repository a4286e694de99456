package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/utils/poller"
	"github.com/rs/zerolog/log"
)

const (
	checkPool        = "pool_window"
	checkTotalStaked = "total_staked"
	checkAccount     = "account_snapshot"
)

// InvariantReport is the outcome of one invariant check.
type InvariantReport struct {
	Pool       *ledger.Pool
	Stats      *model.OverallStatsDocument
	Violations []error
}

func (r *InvariantReport) Err() error {
	return errors.Join(r.Violations...)
}

// RunInvariantPoller checks the ledger invariants every configured interval
// until ctx is cancelled.
func (s *Service) RunInvariantPoller(ctx context.Context) error {
	invariantPoller := poller.NewPoller(
		"invariants",
		s.cfg.Poller.InvariantCheckInterval,
		s.clock,
		metrics.TimeInvariantCheck("fast", s.checkAndRecordInvariants),
	)
	invariantPoller.Start(ctx)
	return nil
}

func (s *Service) checkAndRecordInvariants(ctx context.Context) error {
	report, err := s.CheckInvariants(ctx, false)
	if err != nil {
		if errors.Is(err, ledger.ErrPoolNotFound) {
			log.Ctx(ctx).Debug().Msg("pool not instantiated yet, skipping invariant check")
			return nil
		}
		return err
	}

	if err := s.db.UpsertOverallStats(ctx, report.Stats); err != nil {
		return fmt.Errorf("failed to upsert overall stats: %w", err)
	}
	return report.Err()
}

// CheckInvariants compares the pool against the account records. The sum of
// stakes is always computed in the database; full additionally loads every
// account to check its accumulator snapshot.
func (s *Service) CheckInvariants(ctx context.Context, full bool) (*InvariantReport, error) {
	logger := log.Ctx(ctx)

	pool, err := s.engine.Pool(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.db.AggregateAccountStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate account stats: %w", err)
	}

	report := &InvariantReport{
		Pool: pool,
		Stats: &model.OverallStatsDocument{
			TotalStaked:         pool.TotalStaked,
			AccountsStakedSum:   stats.StakedSum,
			Accounts:            stats.Accounts,
			StakedAccounts:      stats.StakedAccounts,
			RewardOwedSum:       stats.RewardOwedSum,
			RewardPerUnitStored: pool.RewardPerUnitStored.String(),
		},
	}

	violation := func(check string, err error) {
		metrics.IncInvariantViolation(check)
		logger.Error().Err(err).Str("check", check).Msg("ledger invariant violated")
		report.Violations = append(report.Violations, err)
	}

	if err := ledger.CheckPool(pool); err != nil {
		violation(checkPool, err)
	}
	if err := ledger.CheckTotalStaked(pool, stats.StakedSum); err != nil {
		violation(checkTotalStaked, err)
	}

	if full {
		accounts, err := s.db.ListAccounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, account := range accounts {
			if err := ledger.CheckAccount(pool, account); err != nil {
				violation(checkAccount, err)
			}
		}
	}

	var rpu float64
	if !pool.RewardPerUnitStored.IsNil() {
		rpu, _ = new(big.Float).SetInt(pool.RewardPerUnitStored.BigInt()).Float64()
	}
	metrics.RecordPoolState(pool.TotalStaked, rpu, stats.Accounts, stats.StakedAccounts)

	logger.Debug().
		Uint64("total_staked", pool.TotalStaked).
		Uint64("accounts_staked_sum", stats.StakedSum).
		Uint64("accounts", stats.Accounts).
		Int("violations", len(report.Violations)).
		Msg("invariant check completed")

	return report, nil
}
