package cli

import (
	"encoding/json"
	"fmt"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/spf13/cobra"
)

type accountReport struct {
	Account             string             `json:"account"`
	Staked              string             `json:"staked"`
	RewardOwed          string             `json:"reward_owed"`
	ProjectedRewardOwed string             `json:"projected_reward_owed,omitempty"`
	Operations          []operationSummary `json:"operations,omitempty"`
}

type operationSummary struct {
	Operation string `json:"operation"`
	Token     string `json:"token"`
	Amount    string `json:"amount"`
	At        uint64 `json:"at"`
}

// QueryAccountCmd prints the stored balance of an account as JSON.
// ./staking-rewards-ledger query-account bbn1... --projected --operations 10 --config config.yml
func QueryAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query-account [address]",
		Short: "Print the staked balance and owed reward of an account",
		Args:  cobra.ExactArgs(1),
		RunE:  queryAccount,
	}

	cmd.Flags().Bool("projected", false, "Also print the balance as if settled now")
	cmd.Flags().Int64("operations", 0, "Number of most recent operations to print")

	return cmd
}

func queryAccount(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	metrics.InitCollectors()

	projected, err := cmd.Flags().GetBool("projected")
	if err != nil {
		return err
	}
	operations, err := cmd.Flags().GetInt64("operations")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d, err := newDeps(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer d.close(ctx)

	account := args[0]
	balance, err := d.service.GetStaked(ctx, account)
	if err != nil {
		return err
	}

	report := accountReport{
		Account:    account,
		Staked:     fmt.Sprint(balance.Staked),
		RewardOwed: fmt.Sprint(balance.RewardOwed),
	}

	if projected {
		projectedBalance, err := d.service.GetProjected(ctx, account)
		if err != nil {
			return err
		}
		report.ProjectedRewardOwed = fmt.Sprint(projectedBalance.RewardOwed)
	}

	if operations > 0 {
		docs, err := d.service.GetOperations(ctx, account, operations)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			report.Operations = append(report.Operations, operationSummary{
				Operation: doc.Operation,
				Token:     doc.Token,
				Amount:    fmt.Sprint(doc.Amount),
				At:        doc.At,
			})
		}
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
