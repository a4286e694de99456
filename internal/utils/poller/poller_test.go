package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller(t *testing.T) {
	t.Run("polls on every tick, errors do not stop it", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		var calls atomic.Int32
		p := NewPoller("test", time.Minute, clock, func(ctx context.Context) error {
			calls.Add(1)
			return errors.New("boom")
		})

		done := make(chan struct{})
		go func() {
			p.Start(t.Context())
			close(done)
		}()

		for i := int32(1); i <= 3; i++ {
			require.NoError(t, clock.BlockUntilContext(t.Context(), 1))
			clock.Advance(time.Minute)
			require.Eventually(t, func() bool { return calls.Load() == i }, time.Second, time.Millisecond)
		}

		p.Stop()
		<-done
		assert.Equal(t, int32(3), calls.Load())
	})
	t.Run("context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		p := NewPoller("test", time.Minute, clockwork.NewFakeClock(), func(ctx context.Context) error {
			return nil
		})

		done := make(chan struct{})
		go func() {
			p.Start(ctx)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("poller did not stop")
		}
	})
}
