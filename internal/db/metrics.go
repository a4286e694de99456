package db

import (
	"context"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetPool(ctx context.Context) (result *ledger.Pool, err error) {
	//nolint:errcheck
	d.run("GetPool", func() error {
		result, err = d.db.GetPool(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) CreatePool(ctx context.Context, pool *ledger.Pool) error {
	return d.run("CreatePool", func() error {
		return d.db.CreatePool(ctx, pool)
	})
}

func (d *DbWithMetrics) GetAccount(ctx context.Context, owner string) (result *ledger.Account, err error) {
	//nolint:errcheck
	d.run("GetAccount", func() error {
		result, err = d.db.GetAccount(ctx, owner)
		return err
	})
	return
}

func (d *DbWithMetrics) Commit(ctx context.Context, pool *ledger.Pool, account *ledger.Account) error {
	return d.run("Commit", func() error {
		return d.db.Commit(ctx, pool, account)
	})
}

func (d *DbWithMetrics) ListAccounts(ctx context.Context) (result []*ledger.Account, err error) {
	//nolint:errcheck
	d.run("ListAccounts", func() error {
		result, err = d.db.ListAccounts(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) GetContractInfo(ctx context.Context) (result *model.ContractInfoDocument, err error) {
	//nolint:errcheck
	d.run("GetContractInfo", func() error {
		result, err = d.db.GetContractInfo(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SetContractInfo(ctx context.Context, name, version string) error {
	return d.run("SetContractInfo", func() error {
		return d.db.SetContractInfo(ctx, name, version)
	})
}

func (d *DbWithMetrics) SaveOperation(ctx context.Context, doc *model.OperationDocument) error {
	return d.run("SaveOperation", func() error {
		return d.db.SaveOperation(ctx, doc)
	})
}

func (d *DbWithMetrics) GetOperationsByOwner(ctx context.Context, owner string, limit int64) (result []*model.OperationDocument, err error) {
	//nolint:errcheck
	d.run("GetOperationsByOwner", func() error {
		result, err = d.db.GetOperationsByOwner(ctx, owner, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) AggregateAccountStats(ctx context.Context) (result *AccountStatsResult, err error) {
	//nolint:errcheck
	d.run("AggregateAccountStats", func() error {
		result, err = d.db.AggregateAccountStats(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertOverallStats(ctx context.Context, stats *model.OverallStatsDocument) error {
	return d.run("UpsertOverallStats", func() error {
		return d.db.UpsertOverallStats(ctx, stats)
	})
}

func (d *DbWithMetrics) GetOverallStats(ctx context.Context) (result *model.OverallStatsDocument, err error) {
	//nolint:errcheck
	d.run("GetOverallStats", func() error {
		result, err = d.db.GetOverallStats(ctx)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
