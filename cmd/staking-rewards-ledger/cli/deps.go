package cli

import (
	"context"
	"fmt"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/clients/tokenclient"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db"
	dbmodel "github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/queue"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/services"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// deps holds what every command needs to talk to the ledger.
type deps struct {
	cfg     *config.Config
	dbConn  *db.Database
	db      db.DbInterface
	service *services.Service
}

func loadConfig() (*config.Config, error) {
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}
	return cfg, nil
}

// newDeps connects to the database and builds the service. The publisher may
// be nil, in which case events are dropped.
func newDeps(ctx context.Context, cfg *config.Config, publisher queue.Publisher) (*deps, error) {
	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		return nil, fmt.Errorf("error while setting up ledger db model: %w", err)
	}

	dbConn, err := db.New(ctx, cfg.Db)
	if err != nil {
		return nil, fmt.Errorf("error while creating db client: %w", err)
	}
	dbClient := db.NewDbWithMetrics(dbConn)

	transferer := tokenclient.NewRouterFromConfig(&cfg.Pool, &cfg.Transfer)

	return &deps{
		cfg:     cfg,
		dbConn:  dbConn,
		db:      dbClient,
		service: services.NewService(cfg, dbClient, transferer, publisher, clockwork.NewRealClock()),
	}, nil
}

func (d *deps) close(ctx context.Context) {
	if err := d.dbConn.Disconnect(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("error while disconnecting from db")
	}
}
