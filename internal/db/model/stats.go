package model

// OverallStatsDocument is the latest snapshot taken by the invariant poller.
type OverallStatsDocument struct {
	ID                  string `bson:"_id"`                    // Always "overall_stats"
	TotalStaked         uint64 `bson:"total_staked"`           // Pool total at snapshot time
	AccountsStakedSum   uint64 `bson:"accounts_staked_sum"`    // Sum of account balances
	Accounts            uint64 `bson:"accounts"`               // Number of account records
	StakedAccounts      uint64 `bson:"staked_accounts"`        // Accounts with staked > 0
	RewardOwedSum       uint64 `bson:"reward_owed_sum"`        // Unclaimed rewards, as of each account's last settlement
	RewardPerUnitStored string `bson:"reward_per_unit_stored"` // Accumulator at snapshot time
	LastUpdated         int64  `bson:"last_updated"`           // Unix timestamp of last update
}
