//go:build unit

package events_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"visit-booking/internal/infra/events"
	"visit-booking/internal/usecase/shared"
	"visit-booking/tests/common/testutil"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu      sync.Mutex
	events  []shared.ReservationEvent
	block   chan struct{}
	failing bool
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Send(_ context.Context, ev shared.ReservationEvent) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	if s.failing {
		return assert.AnError
	}
	return nil
}

func (s *recordingSink) received() []shared.ReservationEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.ReservationEvent(nil), s.events...)
}

func event(uid string) shared.ReservationEvent {
	return shared.ReservationEvent{Type: shared.EventReservationCreated, UID: uid, OccurredAt: time.Now()}
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	first := &recordingSink{}
	second := &recordingSink{failing: true}
	d := events.NewDispatcher(testutil.DiscardLogger(), 10, first, second)

	d.Publish(event("uid-1"))
	d.Publish(event("uid-2"))
	d.Publish(event("uid-3"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	for _, sink := range []*recordingSink{first, second} {
		got := sink.received()
		require.Len(t, got, 3)
		assert.Equal(t, "uid-1", got[0].UID)
		assert.Equal(t, "uid-3", got[2].UID)
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	d := events.NewDispatcher(testutil.DiscardLogger(), 1, sink)

	// One event may be held by the worker and one by the queue; the rest drop.
	for i := range 10 {
		d.Publish(event(fmt.Sprintf("uid-%d", i)))
	}
	close(sink.block)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	got := sink.received()
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 2)
}

func TestDispatcherPublishAfterClose(t *testing.T) {
	sink := &recordingSink{}
	d := events.NewDispatcher(testutil.DiscardLogger(), 4, sink)

	ctx := context.Background()
	require.NoError(t, d.Close(ctx))
	require.NoError(t, d.Close(ctx))

	assert.NotPanics(t, func() { d.Publish(event("late")) })
	assert.Empty(t, sink.received())
}

func TestDispatcherCloseHonorsContext(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	d := events.NewDispatcher(testutil.DiscardLogger(), 4, sink)
	d.Publish(event("stuck"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)

	close(sink.block)
}

type fakePublisher struct {
	channel string
	payload []byte
	err     error
}

func (p *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	p.channel = channel
	p.payload, _ = message.([]byte)
	return redis.NewIntResult(1, p.err)
}

func TestRedisSink(t *testing.T) {
	t.Run("publishes json", func(t *testing.T) {
		pub := &fakePublisher{}
		sink := events.NewRedisSink(pub, "reservations")
		ev := shared.ReservationEvent{
			Type:       shared.EventReservationCancelled,
			ID:         3,
			UID:        "uid-3",
			OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}

		require.NoError(t, sink.Send(context.Background(), ev))
		assert.Equal(t, "reservations", pub.channel)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(pub.payload, &decoded))
		assert.Equal(t, "reservation.cancelled", decoded["type"])
		assert.Equal(t, "uid-3", decoded["uid"])
		assert.Equal(t, "2024-01-01T00:00:00Z", decoded["occurredAt"])
	})

	t.Run("publish error", func(t *testing.T) {
		sink := events.NewRedisSink(&fakePublisher{err: assert.AnError}, "reservations")
		err := sink.Send(context.Background(), event("uid-x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish to reservations")
	})
}

func TestNewRedisClient(t *testing.T) {
	client, err := events.NewRedisClient("redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, client.Options().DB)
	require.NoError(t, client.Close())

	_, err = events.NewRedisClient("http://not-redis")
	assert.Error(t, err)
}
