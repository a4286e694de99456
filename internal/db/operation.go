package db

import (
	"context"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) SaveOperation(ctx context.Context, doc *model.OperationDocument) error {
	_, err := db.collection(model.OperationCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     doc.ID,
				Message: "operation already recorded",
			}
		}
		return err
	}
	return nil
}

// GetOperationsByOwner returns up to limit operations of owner, newest first.
func (db *Database) GetOperationsByOwner(ctx context.Context, owner string, limit int64) ([]*model.OperationDocument, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.OperationCollection).Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.OperationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
