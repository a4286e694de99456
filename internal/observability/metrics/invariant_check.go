package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
)

// Violation labels a check pass that ran but found the ledger inconsistent.
const Violation Outcome = "violation"

type invariantCheck = func(ctx context.Context) error

// TimeInvariantCheck wraps one pass of an invariant check so its duration is
// observed under the poller histogram, labelled invariants_<scope>.
func TimeInvariantCheck(scope string, check invariantCheck) invariantCheck {
	return func(ctx context.Context) error {
		startTime := time.Now()
		err := check(ctx)

		pollerDurationHistogram.
			WithLabelValues("invariants_"+scope, checkOutcome(err).String()).
			Observe(time.Since(startTime).Seconds())
		return err
	}
}

func checkOutcome(err error) Outcome {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ledger.ErrInvariantViolation):
		return Violation
	default:
		return Error
	}
}
