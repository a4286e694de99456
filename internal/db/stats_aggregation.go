package db

import (
	"context"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
)

// AccountStatsResult holds the totals computed over all account records.
type AccountStatsResult struct {
	StakedSum      uint64
	RewardOwedSum  uint64
	Accounts       uint64
	StakedAccounts uint64
}

// AggregateAccountStats sums balances server side instead of loading every
// account into memory.
func (db *Database) AggregateAccountStats(ctx context.Context) (*AccountStatsResult, error) {
	pipeline := bson.A{
		bson.M{
			"$group": bson.M{
				"_id":             nil,
				"staked_sum":      bson.M{"$sum": "$staked"},
				"reward_owed_sum": bson.M{"$sum": "$reward_owed"},
				"accounts":        bson.M{"$sum": 1},
				"staked_accounts": bson.M{
					"$sum": bson.M{
						"$cond": bson.A{bson.M{"$gt": bson.A{"$staked", 0}}, 1, 0},
					},
				},
			},
		},
	}

	cursor, err := db.collection(model.AccountCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := &AccountStatsResult{}
	if cursor.Next(ctx) {
		var raw struct {
			StakedSum      uint64 `bson:"staked_sum"`
			RewardOwedSum  uint64 `bson:"reward_owed_sum"`
			Accounts       uint64 `bson:"accounts"`
			StakedAccounts uint64 `bson:"staked_accounts"`
		}
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		result.StakedSum = raw.StakedSum
		result.RewardOwedSum = raw.RewardOwedSum
		result.Accounts = raw.Accounts
		result.StakedAccounts = raw.StakedAccounts
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
