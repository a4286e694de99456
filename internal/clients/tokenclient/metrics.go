package tokenclient

import (
	"context"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/metrics"
)

type tokenClientWithMetrics struct {
	client TokenInterface
}

func NewTokenClientWithMetrics(client TokenInterface) *tokenClientWithMetrics {
	return &tokenClientWithMetrics{client: client}
}

func (t *tokenClientWithMetrics) Kind() string {
	return t.client.Kind()
}

func (t *tokenClientWithMetrics) Transfer(ctx context.Context, req ledger.TransferRequest) (string, error) {
	return runTokenClientMethodWithMetrics(t.client.Kind(), func() (string, error) {
		return t.client.Transfer(ctx, req)
	})
}

func runTokenClientMethodWithMetrics[T any](kind string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordTransferLatency(duration, kind, err != nil)
	return v, err
}
