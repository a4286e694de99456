package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/rs/zerolog/log"
)

var ErrTokenMismatch = errors.New("pool tokens do not match configuration")

// InitPool creates the pool from the configured parameters.
func (s *Service) InitPool(ctx context.Context) (*ledger.Pool, error) {
	return s.Instantiate(ctx, ledger.PoolParams{
		StakingToken:   s.cfg.Pool.StakingToken.ID,
		RewardToken:    s.cfg.Pool.RewardToken.ID,
		PeriodFinishAt: s.cfg.Pool.PeriodFinishAt,
		RewardRate:     s.cfg.Pool.RewardRate,
	})
}

// Instantiate creates the pool and records the ledger build that owns it. The
// tokens must be the configured ones, only those have transfer clients. It
// fails with ledger.ErrPoolExists on a second call. Once the pool exists the
// call succeeds; a failed version record is logged and rewritten by VerifyPool
// on the next start.
func (s *Service) Instantiate(ctx context.Context, params ledger.PoolParams) (*ledger.Pool, error) {
	if params.StakingToken != s.cfg.Pool.StakingToken.ID || params.RewardToken != s.cfg.Pool.RewardToken.ID {
		return nil, fmt.Errorf(
			"%w: tokens %s/%s are not the configured %s/%s",
			ErrTokenMismatch, params.StakingToken, params.RewardToken,
			s.cfg.Pool.StakingToken.ID, s.cfg.Pool.RewardToken.ID,
		)
	}

	pool, err := s.engine.Instantiate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate pool: %w", err)
	}

	if err := s.db.SetContractInfo(ctx, s.cfg.Pool.ContractName, s.cfg.Pool.ContractVersion); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("version", s.cfg.Pool.ContractVersion).
			Msg("pool instantiated but contract info was not recorded")
	}

	log.Ctx(ctx).Info().
		Str("staking_token", pool.StakingToken).
		Str("reward_token", pool.RewardToken).
		Uint64("reward_rate", pool.RewardRate).
		Uint64("period_finish_at", pool.PeriodFinishAt).
		Str("version", s.cfg.Pool.ContractVersion).
		Msg("pool instantiated")
	return pool, nil
}

// VerifyPool checks that the stored pool matches the configured tokens and
// bumps the recorded contract version on upgrade.
func (s *Service) VerifyPool(ctx context.Context) error {
	pool, err := s.engine.Pool(ctx)
	if err != nil {
		if errors.Is(err, ledger.ErrPoolNotFound) {
			return fmt.Errorf("%w: run init-pool first", err)
		}
		return err
	}

	if pool.StakingToken != s.cfg.Pool.StakingToken.ID || pool.RewardToken != s.cfg.Pool.RewardToken.ID {
		return fmt.Errorf(
			"%w: configured tokens %s/%s do not match pool tokens %s/%s",
			ErrTokenMismatch, s.cfg.Pool.StakingToken.ID, s.cfg.Pool.RewardToken.ID, pool.StakingToken, pool.RewardToken,
		)
	}

	info, err := s.db.GetContractInfo(ctx)
	if err != nil && !db.IsNotFoundError(err) {
		return err
	}
	if info == nil || info.Version != s.cfg.Pool.ContractVersion {
		if err := s.db.SetContractInfo(ctx, s.cfg.Pool.ContractName, s.cfg.Pool.ContractVersion); err != nil {
			return fmt.Errorf("failed to record contract info: %w", err)
		}
	}
	return nil
}
