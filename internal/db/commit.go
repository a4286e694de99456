package db

import (
	"context"
	"fmt"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"go.mongodb.org/mongo-driver/mongo"
)

// Commit writes the pool and the account in a single transaction, so a
// reader never observes one without the other.
func (db *Database) Commit(ctx context.Context, pool *ledger.Pool, account *ledger.Account) error {
	session, err := db.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		if err := db.replacePool(sessCtx, pool); err != nil {
			return nil, err
		}
		if err := db.upsertAccount(sessCtx, account); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
