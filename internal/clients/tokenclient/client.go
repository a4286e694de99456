package tokenclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/types"
	"github.com/rs/zerolog/log"
)

// IdempotencyKeyHeader lets the endpoint drop a retried transfer it already executed.
const IdempotencyKeyHeader = "Idempotency-Key"

type txResponse struct {
	TxHash string `json:"tx_hash"`
}

// baseClient is shared by the native and cw20 clients.
type baseClient struct {
	baseURL    string
	httpClient *http.Client
	cfg        *config.TransferConfig
}

func newBaseClient(baseURL string, cfg *config.TransferConfig) baseClient {
	return baseClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *baseClient) GetBaseURL() string {
	return c.baseURL
}

func (c *baseClient) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *baseClient) GetHttpClient() *http.Client {
	return c.httpClient
}

// isRetryable reports whether a failed transfer may be sent again: transport
// failures, rate limiting and server side errors. Rejections are final.
func isRetryable(err error) bool {
	var typed *types.Error
	if !errors.As(err, &typed) {
		return false
	}
	return typed.StatusCode == http.StatusTooManyRequests || typed.StatusCode >= http.StatusInternalServerError
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.TransferConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("transfer failed, retrying")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
