package conversation

import (
	"sync"

	"github.com/nicorai/nicorai/internal/logger"
)

// SubscriptionBuffer is the per-subscriber channel capacity
const SubscriptionBuffer = 16

// Changed announces that the active conversation switched or was reset.
// An empty Messages slice means the new conversation has no transcript yet.
type Changed struct {
	ChatID   string
	Messages []Message
}

// Bus fans Changed notifications out to explicit subscribers.
type Bus struct {
	mu     sync.Mutex
	subs   map[uint64]chan Changed
	nextID uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subs: make(map[uint64]chan Changed)}
}

// Subscription is one registered listener. C is closed by Close.
type Subscription struct {
	C <-chan Changed

	id   uint64
	bus  *Bus
	once sync.Once
}

// Subscribe registers a new listener
func (b *Bus) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	ch := make(chan Changed, SubscriptionBuffer)
	b.subs[b.nextID] = ch
	logger.WithComponent("bus").Debug("subscriber added", "id", b.nextID, "total", len(b.subs))
	return &Subscription{C: ch, id: b.nextID, bus: b}
}

// Close deregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		if ch, ok := s.bus.subs[s.id]; ok {
			delete(s.bus.subs, s.id)
			close(ch)
		}
		logger.WithComponent("bus").Debug("subscriber removed", "id", s.id, "total", len(s.bus.subs))
	})
}

// Publish delivers ev to every subscriber without blocking. A subscriber whose
// buffer is full misses the notification.
func (b *Bus) Publish(ev Changed) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			logger.WithComponent("bus").Warn("subscriber buffer full, dropping notification", "id", id, "chatID", ev.ChatID)
		}
	}
}

// SubscriberCount returns the number of live subscriptions
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
