package cli

import (
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/api"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/tracing"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/queue"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the staking rewards ledger API and invariant poller",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// initialize metrics with the metrics port from config
	metrics.Init(cfg.Metrics.GetMetricsPort())

	var publisher queue.Publisher
	if cfg.Queue != nil {
		zapLogger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer func() {
			// stderr sync fails with EINVAL on some platforms
			_ = zapLogger.Sync()
		}()

		qm, err := queue.NewQueueManager(cfg.Queue, zapLogger)
		if err != nil {
			return err
		}
		defer qm.Shutdown()
		publisher = qm
	} else {
		log.Warn().Msg("queue is not configured, ledger events will not be published")
	}

	d, err := newDeps(ctx, cfg, publisher)
	if err != nil {
		return err
	}
	defer d.close(ctx)

	if err := d.service.VerifyPool(ctx); err != nil {
		return err
	}

	server := api.NewServer(&cfg.Server, d.service, d.db)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})
	g.Go(func() error {
		return d.service.RunInvariantPoller(gctx)
	})

	log.Info().Str("addr", cfg.Server.Address()).Msg("staking rewards ledger started")
	return g.Wait()
}
