package tokenclient

import (
	"context"
	"fmt"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/rs/zerolog/log"
)

// Router dispatches transfers to the client serving the token's kind. It is
// the ledger.Transferer handed to the engine.
type Router struct {
	clients map[string]TokenInterface
}

func NewRouter(clients map[string]TokenInterface) *Router {
	return &Router{clients: clients}
}

// NewRouterFromConfig builds metered native and cw20 clients for the two pool tokens.
func NewRouterFromConfig(pool *config.PoolConfig, cfg *config.TransferConfig) *Router {
	clients := make(map[string]TokenInterface, 2)
	for _, token := range []config.TokenConfig{pool.StakingToken, pool.RewardToken} {
		var c TokenInterface
		switch token.Kind {
		case config.TokenKindNative:
			c = NewNativeClient(cfg)
		case config.TokenKindCW20:
			c = NewCW20Client(cfg, pool.Custody)
		default:
			// rejected by config validation
			continue
		}
		clients[token.ID] = NewTokenClientWithMetrics(c)
	}
	return NewRouter(clients)
}

func (r *Router) Transfer(ctx context.Context, req ledger.TransferRequest) error {
	c, ok := r.clients[req.Token]
	if !ok {
		return fmt.Errorf("no transfer client for token %s", req.Token)
	}

	txHash, err := c.Transfer(ctx, req)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Str("token", req.Token).
		Str("from", req.From).
		Str("to", req.To).
		Uint64("amount", req.Amount).
		Str("tx_hash", txHash).
		Msg("transfer executed")
	return nil
}
