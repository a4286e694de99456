package model

import (
	"context"
	"fmt"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PoolCollection         = "pool"
	AccountCollection      = "accounts"
	ContractInfoCollection = "contract_info"
	OperationCollection    = "operations"
	OverallStatsCollection = "overall_stats"
)

// SingletonID is the _id of collections holding exactly one document.
const SingletonID = "singleton"

type index struct {
	Indexes bson.D
	Unique  bool
}

var collections = map[string][]index{
	PoolCollection:         {},
	ContractInfoCollection: {},
	OverallStatsCollection: {},
	AccountCollection: {
		{Indexes: bson.D{{Key: "staked", Value: -1}}},
	},
	OperationCollection: {
		{Indexes: bson.D{{Key: "owner", Value: 1}, {Key: "at", Value: -1}}},
		{Indexes: bson.D{{Key: "operation", Value: 1}, {Key: "at", Value: -1}}},
	},
}

// Setup creates the collections and indexes used by the ledger.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	client, err := mongo.Connect(ctx, cfg.ToClientOptions())
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect setup client")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)
	for name, indexes := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		for _, idx := range indexes {
			if err := createIndex(ctx, database, name, idx); err != nil {
				return err
			}
		}
	}

	log.Info().Msg("Collections and indexes created successfully")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	existing, err := database.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Str("collection", name).Msg("Collection already exists")
		return nil
	}

	if err := database.CreateCollection(ctx, name); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	log.Debug().Str("collection", name).Msg("Collection created")
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collection string, idx index) error {
	indexModel := mongo.IndexModel{
		Keys:    idx.Indexes,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collection).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collection, err)
	}
	log.Debug().Str("collection", collection).Msg("Index created")
	return nil
}
