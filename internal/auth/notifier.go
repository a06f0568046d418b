package auth

import "sync"

// Event marks a change in authentication state.
type Event int

const (
	EventSignedIn Event = iota
	EventSignedOut
)

// Change couples an event with the principal it concerns.
type Change struct {
	Event     Event
	Principal Principal
}

// Notifier broadcasts auth-state changes to interested components. Listeners
// hold the subscription for their lifetime and release it on teardown.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Change)
}

// NewNotifier returns an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Change))}
}

// Subscribe registers a callback and returns its release function. Releasing
// twice is harmless.
func (n *Notifier) Subscribe(fn func(Change)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Publish delivers the change to every current subscriber.
func (n *Notifier) Publish(change Change) {
	n.mu.Lock()
	callbacks := make([]func(Change), 0, len(n.subs))
	for _, fn := range n.subs {
		callbacks = append(callbacks, fn)
	}
	n.mu.Unlock()

	for _, fn := range callbacks {
		fn(change)
	}
}
