package model

import (
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
)

// OperationDocument is the audit record of a committed ledger operation.
type OperationDocument struct {
	ID               string `bson:"_id"`
	Operation        string `bson:"operation"`
	Owner            string `bson:"owner"`
	Token            string `bson:"token"`
	Amount           uint64 `bson:"amount"`
	At               uint64 `bson:"at"`
	StakedAfter      uint64 `bson:"staked_after"`
	RewardOwedAfter  uint64 `bson:"reward_owed_after"`
	TotalStakedAfter uint64 `bson:"total_staked_after"`
	TraceID          string `bson:"trace_id,omitempty"`
}

func FromReceipt(id, traceID string, receipt *ledger.Receipt) *OperationDocument {
	return &OperationDocument{
		ID:               id,
		Operation:        receipt.Operation.String(),
		Owner:            receipt.Owner,
		Token:            receipt.Token,
		Amount:           receipt.Amount,
		At:               receipt.At,
		StakedAfter:      receipt.Account.Staked,
		RewardOwedAfter:  receipt.Account.RewardOwed,
		TotalStakedAfter: receipt.Pool.TotalStaked,
		TraceID:          traceID,
	}
}
