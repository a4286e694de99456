package db

import (
	"context"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go

type DbInterface interface {
	ledger.Store

	Ping(ctx context.Context) error
	// ListAccounts returns every account record, largest balance first.
	ListAccounts(ctx context.Context) ([]*ledger.Account, error)
	// GetContractInfo returns NotFoundError before the pool is instantiated.
	GetContractInfo(ctx context.Context) (*model.ContractInfoDocument, error)
	// SetContractInfo stores name and semver version, refusing downgrades.
	SetContractInfo(ctx context.Context, name, version string) error
	// SaveOperation appends a committed operation to the audit log.
	SaveOperation(ctx context.Context, doc *model.OperationDocument) error
	GetOperationsByOwner(ctx context.Context, owner string, limit int64) ([]*model.OperationDocument, error)
	AggregateAccountStats(ctx context.Context) (*AccountStatsResult, error)
	UpsertOverallStats(ctx context.Context, stats *model.OverallStatsDocument) error
	GetOverallStats(ctx context.Context) (*model.OverallStatsDocument, error)
}
