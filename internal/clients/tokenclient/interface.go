package tokenclient

import (
	"context"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
)

//go:generate mockery --name=TokenInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_token_client.go
type TokenInterface interface {
	// Transfer moves tokens and returns the chain transaction hash.
	Transfer(ctx context.Context, req ledger.TransferRequest) (string, error)
	// Kind is the token kind served, used as metrics label.
	Kind() string
}
