package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/mod/semver"
)

func (db *Database) GetContractInfo(ctx context.Context) (*model.ContractInfoDocument, error) {
	var doc model.ContractInfoDocument
	err := db.collection(model.ContractInfoCollection).
		FindOne(ctx, bson.M{"_id": model.SingletonID}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.SingletonID,
				Message: "contract info not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

// SetContractInfo records the build that owns the pool. Versions must be
// valid semver and may only move forward.
func (db *Database) SetContractInfo(ctx context.Context, name, version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid contract version %q", version)
	}

	current, err := db.GetContractInfo(ctx)
	if err != nil && !IsNotFoundError(err) {
		return err
	}
	if current != nil {
		if current.Name != name {
			return fmt.Errorf("contract name mismatch: stored %q, got %q", current.Name, name)
		}
		if semver.Compare(version, current.Version) < 0 {
			return fmt.Errorf("contract version %s is older than stored %s", version, current.Version)
		}
	}

	doc := model.ContractInfoDocument{
		ID:        model.SingletonID,
		Name:      name,
		Version:   version,
		CreatedAt: time.Now().Unix(),
	}
	if current != nil {
		doc.CreatedAt = current.CreatedAt
	}

	_, err = db.collection(model.ContractInfoCollection).ReplaceOne(
		ctx,
		bson.M{"_id": model.SingletonID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}
