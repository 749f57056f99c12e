package events

import (
	"context"
	"log/slog"
	"sync"

	"visit-booking/internal/usecase/shared"
)

type Sink interface {
	Name() string
	Send(ctx context.Context, event shared.ReservationEvent) error
}

// Dispatcher hands events to its sinks from a single background worker.
// Publish never blocks: when the queue is full the event is dropped.
type Dispatcher struct {
	sinks  []Sink
	queue  chan shared.ReservationEvent
	logger *slog.Logger

	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
	done      chan struct{}
}

func NewDispatcher(logger *slog.Logger, bufferSize int, sinks ...Sink) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	d := &Dispatcher{
		sinks:  sinks,
		queue:  make(chan shared.ReservationEvent, bufferSize),
		logger: logger,
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Send(context.Background(), ev); err != nil {
				d.logger.Warn("event delivery failed",
					"sink", s.Name(),
					"type", string(ev.Type),
					"uid", ev.UID,
					"error", err.Error())
			}
		}
	}
}

func (d *Dispatcher) Publish(ev shared.ReservationEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("event queue full, dropping event", "type", string(ev.Type), "uid", ev.UID)
	}
}

// Close stops accepting events and waits for queued ones to drain or ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
