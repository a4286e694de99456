package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/types"
	"github.com/rs/zerolog/log"
)

// maxErrorBodyBytes bounds how much of a failed response is kept in the error.
const maxErrorBodyBytes = 1024

type BaseClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Timeout time.Duration
	Path    string
	// TemplatePath is the path reported in metrics, without ids or query values.
	TemplatePath string
	Headers      map[string]string
}

func isAllowedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost:
		return true
	default:
		return false
	}
}

func sendRequest[I any, R any](
	ctx context.Context, client BaseClient, method string, opts *HttpClientOptions, input *I,
) (*R, *types.Error) {
	if !isAllowedMethod(method) {
		return nil, types.NewInternalServiceError(fmt.Errorf("method %s is not allowed", method))
	}

	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := client.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, types.NewInternalServiceError(fmt.Errorf("failed to marshal request body: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	recordDuration := metrics.StartClientRequestDurationTimer(client.GetBaseURL(), method, opts.TemplatePath)

	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		recordDuration(0)
		if ctx.Err() != nil {
			return nil, types.NewError(
				http.StatusGatewayTimeout,
				types.InternalServiceError,
				fmt.Errorf("request to %s timed out: %w", url, err),
			)
		}
		return nil, types.NewError(
			http.StatusBadGateway,
			types.InternalServiceError,
			fmt.Errorf("request to %s failed: %w", url, err),
		)
	}
	defer resp.Body.Close()
	recordDuration(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		log.Ctx(ctx).Warn().
			Int("status", resp.StatusCode).
			Str("url", url).
			Msg("unexpected response status")
		return nil, types.NewError(
			resp.StatusCode,
			types.InternalServiceError,
			fmt.Errorf("request to %s returned %d: %s", url, resp.StatusCode, bytes.TrimSpace(msg)),
		)
	}

	var output R
	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to decode response from %s: %w", url, err))
	}

	return &output, nil
}

// SendRequest sends input as JSON and decodes the JSON response into R.
// Failures are *types.Error carrying the upstream status code.
func SendRequest[I any, R any](
	ctx context.Context, client BaseClient, method string, opts *HttpClientOptions, input *I,
) (*R, error) {
	out, err := sendRequest[I, R](ctx, client, method, opts, input)
	if err != nil {
		return nil, err
	}
	return out, nil
}
