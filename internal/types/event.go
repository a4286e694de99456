package types

type EventType string

const (
	EventStaked        EventType = "staked"
	EventWithdrawn     EventType = "withdrawn"
	EventRewardClaimed EventType = "reward_claimed"
)

func (e EventType) String() string {
	return string(e)
}

// LedgerEvent is the message published after an operation commits.
type LedgerEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Owner       string    `json:"owner"`
	Token       string    `json:"token"`
	Amount      uint64    `json:"amount,string"`
	At          uint64    `json:"at"`
	Staked      uint64    `json:"staked,string"`
	RewardOwed  uint64    `json:"reward_owed,string"`
	TotalStaked uint64    `json:"total_staked,string"`
}
