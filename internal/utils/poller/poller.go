package poller

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

type Poller struct {
	name       string
	interval   time.Duration
	clock      clockwork.Clock
	quit       chan struct{}
	pollMethod func(ctx context.Context) error
}

func NewPoller(name string, interval time.Duration, clock clockwork.Clock, pollMethod func(ctx context.Context) error) *Poller {
	return &Poller{
		name:       name,
		interval:   interval,
		clock:      clock,
		quit:       make(chan struct{}),
		pollMethod: pollMethod,
	}
}

// Start blocks until ctx is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().Str("poller", p.name).Msgf("Starting poller with interval %s", p.interval)

	for {
		select {
		case <-ticker.Chan():
			log.Debug().Str("poller", p.name).Msg("Executing poll method")
			if err := p.pollMethod(ctx); err != nil {
				log.Error().Err(err).Str("poller", p.name).Msg("Error polling")
			} else {
				log.Debug().Str("poller", p.name).Msg("Poll method executed successfully")
			}
		case <-ctx.Done():
			log.Info().Str("poller", p.name).Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			log.Info().Str("poller", p.name).Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) Stop() {
	close(p.quit)
}
