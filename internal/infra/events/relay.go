package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, evts []shared.OutboxEvent) error
}

// Relay drains the booking_events outbox to a Publisher. Rows are marked published
// in the transaction that claimed them, so a crash between publish and commit
// redelivers; consumers must tolerate duplicates.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	interval  time.Duration
	batch     int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, cfg config.EventsConfig) *Relay {
	interval := cfg.RelayInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	batch := cfg.RelayBatch
	if batch <= 0 {
		batch = 100
	}

	return &Relay{
		uow:       uow,
		publisher: publisher,
		interval:  interval,
		batch:     batch,
	}
}

// DrainOnce relays at most one batch and reports how many events went out.
func (r *Relay) DrainOnce(ctx context.Context) (int, error) {
	var published int

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0

		evts, err := tx.Events().ClaimUnpublished(ctx, tx.DB(), r.batch)
		if err != nil {
			return err
		}
		if len(evts) == 0 {
			return nil
		}

		if err := r.publisher.Publish(ctx, evts); err != nil {
			return err
		}

		ids := make([]int64, len(evts))
		for i, evt := range evts {
			ids[i] = evt.ID
		}
		if err := tx.Events().MarkPublished(ctx, tx.DB(), ids); err != nil {
			return err
		}

		published = len(evts)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return published, nil
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()

	slog.Info("booking event relay started", "interval", r.interval.String(), "batch", r.batch)
}

func (r *Relay) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	r.wg.Wait()
	slog.Info("booking event relay stopped")
}

func (r *Relay) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		// A full batch means more may be waiting.
		for {
			n, err := r.DrainOnce(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("failed to relay booking events", "error", err.Error())
				}
				break
			}
			if n < r.batch {
				break
			}
		}
	}
}
