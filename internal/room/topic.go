package room

import "sync"

// topicBuffer is how far a subscriber may lag before publishes to it are
// dropped.
const topicBuffer = 128

// Topic is a bounded multicast channel. Publish never blocks and never fails
// the caller: a subscriber whose buffer is full misses the value, and
// publishing with no subscribers is a no-op. Canvas and game subscribers
// tolerate drops because they re-read the full snapshot on wake; chat
// subscribers may lose messages under overload, which is accepted.
type Topic[T any] struct {
	mu     sync.Mutex
	subs   map[chan T]struct{}
	closed bool
}

func NewTopic[T any]() *Topic[T] {
	return &Topic[T]{subs: make(map[chan T]struct{})}
}

// Subscribe registers a subscriber and returns its channel plus a cancel
// function to call once the subscriber goes away. Subscribing to a closed
// topic hands back an already-closed channel.
func (t *Topic[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, topicBuffer)
	t.mu.Lock()
	if t.closed {
		close(ch)
	} else {
		t.subs[ch] = struct{}{}
	}
	t.mu.Unlock()
	return ch, func() {
		t.mu.Lock()
		delete(t.subs, ch)
		t.mu.Unlock()
	}
}

// Publish delivers v to every subscriber with buffer room. Publishing to a
// closed topic is a no-op.
func (t *Topic[T]) Publish(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	for ch := range t.subs {
		select {
		case ch <- v:
		default:
		}
	}
}

// Close wakes every subscriber by closing its channel, so blocked receivers
// see the topic is gone instead of parking forever. Idempotent.
func (t *Topic[T]) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	for ch := range t.subs {
		close(ch)
		delete(t.subs, ch)
	}
}

// Subscribers returns the current subscriber count.
func (t *Topic[T]) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
