package db

import (
	"context"
	"errors"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (db *Database) GetPool(ctx context.Context) (*ledger.Pool, error) {
	var doc model.PoolDocument
	err := db.collection(model.PoolCollection).
		FindOne(ctx, bson.M{"_id": model.SingletonID}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.SingletonID,
				Message: "pool not found",
				Err:     ledger.ErrPoolNotFound,
			}
		}
		return nil, err
	}

	return doc.ToPool()
}

// CreatePool inserts the pool singleton. A second call fails with ErrPoolExists.
func (db *Database) CreatePool(ctx context.Context, pool *ledger.Pool) error {
	doc := model.FromPool(pool, time.Now().Unix())
	_, err := db.collection(model.PoolCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     model.SingletonID,
				Message: "pool already exists",
				Err:     ledger.ErrPoolExists,
			}
		}
		return err
	}
	return nil
}

func (db *Database) replacePool(ctx context.Context, pool *ledger.Pool) error {
	doc := model.FromPool(pool, time.Now().Unix())
	res, err := db.collection(model.PoolCollection).
		ReplaceOne(ctx, bson.M{"_id": model.SingletonID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     model.SingletonID,
			Message: "pool not found",
			Err:     ledger.ErrPoolNotFound,
		}
	}
	return nil
}
