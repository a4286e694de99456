package ledger

import "context"

// Store persists the pool singleton and the account records.
type Store interface {
	// GetPool returns ErrPoolNotFound before the pool is created.
	GetPool(ctx context.Context) (*Pool, error)
	// CreatePool returns ErrPoolExists if a pool was already created.
	CreatePool(ctx context.Context, pool *Pool) error
	// GetAccount returns ErrAccountNotFound for an owner without a record.
	GetAccount(ctx context.Context, owner string) (*Account, error)
	// Commit writes pool and account together or not at all.
	Commit(ctx context.Context, pool *Pool, account *Account) error
}

// TransferRequest moves Amount of Token from From to To.
type TransferRequest struct {
	Token  string
	From   string
	To     string
	Amount uint64
}

// Reverse returns the request moving the same amount back.
func (r TransferRequest) Reverse() TransferRequest {
	return TransferRequest{
		Token:  r.Token,
		From:   r.To,
		To:     r.From,
		Amount: r.Amount,
	}
}

//go:generate mockery --name=Transferer --output=../../tests/mocks --outpkg=mocks --filename=mock_transferer.go

// Transferer moves tokens. A nil error means the transfer completed; any error
// means nothing moved.
type Transferer interface {
	Transfer(ctx context.Context, req TransferRequest) error
}
