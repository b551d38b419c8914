package storage

import "sync"

// Notifier fans out store-change signals. Broadcasts carry no payload;
// subscribers are expected to re-read the store value they care about.
// Sends never block: a subscriber that has not drained its channel simply
// coalesces consecutive broadcasts into one pending signal.
type Notifier struct {
	mu   sync.Mutex
	subs []chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe returns a channel that receives a signal after each broadcast.
func (n *Notifier) Subscribe() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan struct{}, 1)
	n.subs = append(n.subs, ch)
	return ch
}

// Broadcast signals every subscriber.
func (n *Notifier) Broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
