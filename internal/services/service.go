package services

import (
	"fmt"
	"sync"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/queue"
	"github.com/jonboulle/clockwork"
)

// Service is the host of the ledger engine: it supplies the current time and
// caller identity, records committed operations and publishes their events.
type Service struct {
	cfg       *config.Config
	db        db.DbInterface
	engine    *ledger.Engine
	publisher queue.Publisher
	clock     clockwork.Clock

	// opMu spans reading the clock and the engine call, so a later reading
	// never reaches the engine first.
	opMu sync.Mutex
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	transferer ledger.Transferer,
	publisher queue.Publisher,
	clock clockwork.Clock,
) *Service {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &Service{
		cfg:       cfg,
		db:        db,
		engine:    ledger.NewEngine(db, transferer, cfg.Pool.Custody),
		publisher: publisher,
		clock:     clock,
	}
}

// now returns the current unix time in seconds.
func (s *Service) now() (uint64, error) {
	ts := s.clock.Now().Unix()
	if ts < 0 {
		return 0, fmt.Errorf("%w: clock is before unix epoch", ledger.ErrArithmeticOverflow)
	}
	return uint64(ts), nil
}
