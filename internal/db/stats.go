package db

import (
	"context"
	"errors"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const overallStatsID = "overall_stats"

// UpsertOverallStats updates or inserts overall stats
func (db *Database) UpsertOverallStats(ctx context.Context, stats *model.OverallStatsDocument) error {
	filter := bson.M{"_id": overallStatsID}
	update := bson.M{
		"$set": bson.M{
			"total_staked":           stats.TotalStaked,
			"accounts_staked_sum":    stats.AccountsStakedSum,
			"accounts":               stats.Accounts,
			"staked_accounts":        stats.StakedAccounts,
			"reward_owed_sum":        stats.RewardOwedSum,
			"reward_per_unit_stored": stats.RewardPerUnitStored,
			"last_updated":           time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.OverallStatsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetOverallStats(ctx context.Context) (*model.OverallStatsDocument, error) {
	var doc model.OverallStatsDocument
	err := db.collection(model.OverallStatsCollection).
		FindOne(ctx, bson.M{"_id": overallStatsID}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     overallStatsID,
				Message: "overall stats not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}
