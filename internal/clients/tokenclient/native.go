package tokenclient

import (
	"context"
	"fmt"
	"net/http"

	sdkmath "cosmossdk.io/math"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/clients/client"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"
)

const bankSendEndpoint = "/bank/send"

type bankSendRequest struct {
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	Amount      sdk.Coins `json:"amount"`
}

// NativeClient moves bank denominations through a bank send endpoint.
type NativeClient struct {
	baseClient
}

func NewNativeClient(cfg *config.TransferConfig) *NativeClient {
	return &NativeClient{baseClient: newBaseClient(cfg.NativeURL, cfg)}
}

func (c *NativeClient) Kind() string {
	return string(config.TokenKindNative)
}

func (c *NativeClient) Transfer(ctx context.Context, req ledger.TransferRequest) (string, error) {
	if err := sdk.ValidateDenom(req.Token); err != nil {
		return "", fmt.Errorf("invalid native denom %q: %w", req.Token, err)
	}

	body := &bankSendRequest{
		FromAddress: req.From,
		ToAddress:   req.To,
		Amount:      sdk.NewCoins(sdk.NewCoin(req.Token, sdkmath.NewIntFromUint64(req.Amount))),
	}
	opts := &client.HttpClientOptions{
		Path:         bankSendEndpoint,
		TemplatePath: bankSendEndpoint,
		Headers:      map[string]string{IdempotencyKeyHeader: uuid.New().String()},
	}

	send := func() (string, error) {
		resp, err := client.SendRequest[bankSendRequest, txResponse](ctx, c, http.MethodPost, opts, body)
		if err != nil {
			return "", err
		}
		return resp.TxHash, nil
	}

	txHash, err := clientCallWithRetry(ctx, send, c.cfg)
	if err != nil {
		return "", fmt.Errorf("failed to send %d%s from %s to %s: %w", req.Amount, req.Token, req.From, req.To, err)
	}
	return txHash, nil
}
