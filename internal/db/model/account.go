package model

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
)

type AccountDocument struct {
	Owner             string `bson:"_id"`
	Staked            uint64 `bson:"staked"`
	RewardOwed        uint64 `bson:"reward_owed"`
	RewardPerUnitPaid string `bson:"reward_per_unit_paid"`
	UpdatedAt         int64  `bson:"updated_at"`
}

func FromAccount(account *ledger.Account, updatedAt int64) *AccountDocument {
	return &AccountDocument{
		Owner:             account.Owner,
		Staked:            account.Staked,
		RewardOwed:        account.RewardOwed,
		RewardPerUnitPaid: account.RewardPerUnitPaid.String(),
		UpdatedAt:         updatedAt,
	}
}

func (d *AccountDocument) ToAccount() (*ledger.Account, error) {
	rpu, err := sdkmath.ParseUint(d.RewardPerUnitPaid)
	if err != nil {
		return nil, fmt.Errorf("invalid reward per unit paid %q for %s: %w", d.RewardPerUnitPaid, d.Owner, err)
	}

	return &ledger.Account{
		Owner:             d.Owner,
		Staked:            d.Staked,
		RewardOwed:        d.RewardOwed,
		RewardPerUnitPaid: rpu,
	}, nil
}
