package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
)

// Execute and query messages are externally tagged unions: a JSON object
// with exactly one key naming the variant, e.g. {"stake":{"amount":"100"}}.
const (
	executeStake       = "stake"
	executeWithdraw    = "withdraw"
	executeClaimReward = "claim_reward"

	queryGetStaked    = "get_staked"
	queryGetProjected = "get_projected"
	queryGetPool      = "get_pool"
)

// AmountMsg carries an amount as a decimal string, the way token amounts are
// encoded on chain. Plain JSON numbers are accepted too.
type AmountMsg struct {
	Amount Uint64String `json:"amount"`
}

type AccountQuery struct {
	Account string `json:"account"`
}

// decodeVariant splits a tagged union message into its variant name and payload.
func decodeVariant(body []byte) (string, json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", nil, fmt.Errorf("invalid message: %w", err)
	}
	if len(raw) != 1 {
		return "", nil, fmt.Errorf("message must contain exactly one variant, got %d", len(raw))
	}
	for name, payload := range raw {
		return name, payload, nil
	}
	return "", nil, nil
}

// decodePayload decodes a variant payload, treating null as an empty object.
func decodePayload(payload json.RawMessage, v any) error {
	if len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("invalid message payload: %w", err)
	}
	return nil
}

// Uint64String decodes from either a JSON string or a JSON number and encodes
// as a string.
type Uint64String uint64

func (u Uint64String) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

func (u *Uint64String) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}
		*u = Uint64String(v)
		return nil
	}

	var v uint64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	*u = Uint64String(v)
	return nil
}

type StakedResponse struct {
	Balance Uint64String `json:"balance"`
	Reward  Uint64String `json:"reward"`
}

type PoolResponse struct {
	StakingToken        string       `json:"staking_token"`
	RewardToken         string       `json:"reward_token"`
	RewardRate          Uint64String `json:"reward_rate"`
	PeriodFinishAt      Uint64String `json:"period_finish_at"`
	LastUpdateAt        Uint64String `json:"last_update_at"`
	TotalStaked         Uint64String `json:"total_staked"`
	RewardPerUnitStored string       `json:"reward_per_unit_stored"`
}

func newPoolResponse(pool *ledger.Pool) *PoolResponse {
	return &PoolResponse{
		StakingToken:        pool.StakingToken,
		RewardToken:         pool.RewardToken,
		RewardRate:          Uint64String(pool.RewardRate),
		PeriodFinishAt:      Uint64String(pool.PeriodFinishAt),
		LastUpdateAt:        Uint64String(pool.LastUpdateAt),
		TotalStaked:         Uint64String(pool.TotalStaked),
		RewardPerUnitStored: pool.RewardPerUnitStored.String(),
	}
}

type ReceiptResponse struct {
	Operation   string       `json:"operation"`
	Owner       string       `json:"owner"`
	Token       string       `json:"token"`
	Amount      Uint64String `json:"amount"`
	At          uint64       `json:"at"`
	Staked      Uint64String `json:"staked"`
	RewardOwed  Uint64String `json:"reward_owed"`
	TotalStaked Uint64String `json:"total_staked"`
}

func newReceiptResponse(receipt *ledger.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		Operation:   receipt.Operation.String(),
		Owner:       receipt.Owner,
		Token:       receipt.Token,
		Amount:      Uint64String(receipt.Amount),
		At:          receipt.At,
		Staked:      Uint64String(receipt.Account.Staked),
		RewardOwed:  Uint64String(receipt.Account.RewardOwed),
		TotalStaked: Uint64String(receipt.Pool.TotalStaked),
	}
}

type OperationResponse struct {
	ID        string       `json:"id"`
	Operation string       `json:"operation"`
	Token     string       `json:"token"`
	Amount    Uint64String `json:"amount"`
	At        uint64       `json:"at"`
}

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}
