package tokenclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/clients/client"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/google/uuid"
)

const executeEndpoint = "/wasm/execute"

type cw20TransferMsg struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

type cw20TransferFromMsg struct {
	Owner     string `json:"owner"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

type cw20ExecuteMsg struct {
	Transfer     *cw20TransferMsg     `json:"transfer,omitempty"`
	TransferFrom *cw20TransferFromMsg `json:"transfer_from,omitempty"`
}

type executeRequest struct {
	Sender   string         `json:"sender"`
	Contract string         `json:"contract"`
	Msg      cw20ExecuteMsg `json:"msg"`
}

// CW20Client moves cw20 tokens by executing the token contract as the custody
// address: a plain transfer when paying out of custody, transfer_from against
// the owner's allowance when pulling tokens in.
type CW20Client struct {
	baseClient
	custody string
}

func NewCW20Client(cfg *config.TransferConfig, custody string) *CW20Client {
	return &CW20Client{
		baseClient: newBaseClient(cfg.CW20URL, cfg),
		custody:    custody,
	}
}

func (c *CW20Client) Kind() string {
	return string(config.TokenKindCW20)
}

func (c *CW20Client) Transfer(ctx context.Context, req ledger.TransferRequest) (string, error) {
	body := &executeRequest{
		Sender:   c.custody,
		Contract: req.Token,
		Msg:      newCW20Msg(c.custody, req),
	}
	opts := &client.HttpClientOptions{
		Path:         executeEndpoint,
		TemplatePath: executeEndpoint,
		Headers:      map[string]string{IdempotencyKeyHeader: uuid.New().String()},
	}

	execute := func() (string, error) {
		resp, err := client.SendRequest[executeRequest, txResponse](ctx, c, http.MethodPost, opts, body)
		if err != nil {
			return "", err
		}
		return resp.TxHash, nil
	}

	txHash, err := clientCallWithRetry(ctx, execute, c.cfg)
	if err != nil {
		return "", fmt.Errorf("failed to transfer %d of %s from %s to %s: %w", req.Amount, req.Token, req.From, req.To, err)
	}
	return txHash, nil
}

func newCW20Msg(custody string, req ledger.TransferRequest) cw20ExecuteMsg {
	amount := strconv.FormatUint(req.Amount, 10)
	if req.From == custody {
		return cw20ExecuteMsg{
			Transfer: &cw20TransferMsg{Recipient: req.To, Amount: amount},
		}
	}
	return cw20ExecuteMsg{
		TransferFrom: &cw20TransferFromMsg{Owner: req.From, Recipient: req.To, Amount: amount},
	}
}
