package db

import (
	"context"
	"errors"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) GetAccount(ctx context.Context, owner string) (*ledger.Account, error) {
	var doc model.AccountDocument
	err := db.collection(model.AccountCollection).
		FindOne(ctx, bson.M{"_id": owner}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     owner,
				Message: "account not found",
				Err:     ledger.ErrAccountNotFound,
			}
		}
		return nil, err
	}

	return doc.ToAccount()
}

// ListAccounts returns every account record, largest balance first.
func (db *Database) ListAccounts(ctx context.Context) ([]*ledger.Account, error) {
	opts := options.Find().SetSort(bson.D{{Key: "staked", Value: -1}})
	cursor, err := db.collection(model.AccountCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.AccountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	accounts := make([]*ledger.Account, 0, len(docs))
	for i := range docs {
		account, err := docs[i].ToAccount()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (db *Database) upsertAccount(ctx context.Context, account *ledger.Account) error {
	doc := model.FromAccount(account, time.Now().Unix())
	_, err := db.collection(model.AccountCollection).ReplaceOne(
		ctx,
		bson.M{"_id": account.Owner},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}
