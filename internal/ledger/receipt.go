package ledger

type Operation string

const (
	OperationStake       Operation = "stake"
	OperationWithdraw    Operation = "withdraw"
	OperationClaimReward Operation = "claim_reward"
)

func (o Operation) String() string {
	return string(o)
}

// Receipt describes a committed operation. Amount is denominated in Token: the
// staking token for stake and withdraw, the reward token for claims.
type Receipt struct {
	Operation Operation
	Owner     string
	Amount    uint64
	Token     string
	At        uint64
	Pool      *Pool
	Account   *Account
}
