package session

import (
	"sync"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// DefaultBuffer is used when Subscribe is called with a non-positive size.
const DefaultBuffer = 64

// Subscription receives every state a session publishes.
// Delivery never blocks the publisher: when the buffer is full the oldest
// state is dropped.
type Subscription struct {
	events   chan physics.GameState
	done     chan struct{}
	doneOnce sync.Once
}

func newSubscription(buffer int) *Subscription {
	if buffer < 1 {
		buffer = DefaultBuffer
	}
	return &Subscription{
		events: make(chan physics.GameState, buffer),
		done:   make(chan struct{}),
	}
}

// send delivers s, dropping the oldest buffered state if necessary.
func (sub *Subscription) send(s physics.GameState) {
	select {
	case <-sub.done:
		return
	default:
	}

	select {
	case sub.events <- s:
	default:
		select {
		case <-sub.events:
		default:
		}
		select {
		case sub.events <- s:
		default:
		}
	}
}

// Events returns the channel states arrive on.
func (sub *Subscription) Events() <-chan physics.GameState {
	return sub.events
}

// Done returns a channel that closes when the subscription ends.
func (sub *Subscription) Done() <-chan struct{} {
	return sub.done
}

// Close ends the subscription.
// Safe to call multiple times.
func (sub *Subscription) Close() {
	sub.doneOnce.Do(func() {
		close(sub.done)
	})
}

func (sub *Subscription) closed() bool {
	select {
	case <-sub.done:
		return true
	default:
		return false
	}
}
