package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/babylonlabs-io/staking-rewards-ledger/pkg"
	"github.com/spf13/cobra"
)

const (
	defaultConfigFileName = "config.yml"
	// configPathEnv overrides the default config location, e.g. from .env.
	configPathEnv = "LEDGER_CONFIG"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:           "staking-rewards-ledger",
		Short:         "Staking rewards ledger: stake a token, accrue rewards over a fixed period",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := pkg.Getenv(configPathEnv, getDefaultConfigFile(homePath, defaultConfigFileName))

	rootCmd.AddCommand(StartServerCmd())
	rootCmd.AddCommand(InitPoolCmd())
	rootCmd.AddCommand(QueryAccountCmd())
	rootCmd.AddCommand(CheckInvariantsCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}
