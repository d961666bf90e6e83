package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	ch1, cancel1 := bus.Subscribe()
	defer cancel1()
	ch2, cancel2 := bus.Subscribe()
	defer cancel2()

	bus.Publish(Event{Collection: "grades", Op: OpCreated, ID: "g-1"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, "grades", got.Collection)
			assert.Equal(t, OpCreated, got.Op)
			assert.Equal(t, "g-1", got.ID)
			assert.False(t, got.At.IsZero(), "At should be stamped on publish")
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus()

	ch, cancel := bus.Subscribe()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Cancelling twice is harmless.
	cancel()

	// Publishing after cancel must not panic or deliver.
	bus.Publish(Event{Collection: "teachers", Op: OpUpdated, ID: "t-1"})
}

func TestBus_PublishNeverBlocks(t *testing.T) {
	bus := NewBus()

	ch, cancel := bus.Subscribe()
	defer cancel()

	// Overfill the subscriber buffer without draining. Publish must drop
	// instead of stalling.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			bus.Publish(Event{Collection: "meals", Op: OpCreated, ID: "m"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffer still holds the first events it could take.
	require.Len(t, ch, subscriberBuffer)
}
