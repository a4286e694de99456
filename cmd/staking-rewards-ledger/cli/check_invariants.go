package cli

import (
	"fmt"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/tracing"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// CheckInvariantsCmd runs a full invariant check, including every account
// snapshot, and exits non-zero on any violation.
func CheckInvariantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-invariants",
		Short: "Check the pool against every account record",
		Args:  cobra.ExactArgs(0),
		RunE:  checkInvariants,
	}

	return cmd
}

func checkInvariants(cmd *cobra.Command, args []string) error {
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

	report, err := d.service.CheckInvariants(ctx, true)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Uint64("total_staked", report.Pool.TotalStaked).
		Uint64("accounts_staked_sum", report.Stats.AccountsStakedSum).
		Uint64("accounts", report.Stats.Accounts).
		Uint64("reward_owed_sum", report.Stats.RewardOwedSum).
		Str("reward_per_unit_stored", report.Stats.RewardPerUnitStored).
		Msg("invariant check finished")

	if err := report.Err(); err != nil {
		return fmt.Errorf("%d invariant violations: %w", len(report.Violations), err)
	}
	return nil
}
