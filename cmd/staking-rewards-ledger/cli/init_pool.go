package cli

import (
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/tracing"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// InitPoolCmd instantiates the pool from the pool section of the config. It
// fails if the pool already exists.
// ./staking-rewards-ledger init-pool --config config.yml
func InitPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-pool",
		Short: "Instantiate the reward pool from the configured parameters",
		Args:  cobra.ExactArgs(0),
		RunE:  initPool,
	}

	return cmd
}

func initPool(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	metrics.InitCollectors()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d, err := newDeps(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer d.close(ctx)

	pool, err := d.service.InitPool(ctx)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Str("staking_token", pool.StakingToken).
		Str("reward_token", pool.RewardToken).
		Msg("pool ready")
	return nil
}
