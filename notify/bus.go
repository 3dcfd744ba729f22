// Package notify is the in-process replacement for the browser's
// "carrito-actualizado" window event: a publish/subscribe bus carrying
// typed cart-changed payloads from cart mutations to whatever is
// mounted and listening (the navbar badge feed).
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// CartChanged is published after a cart mutation that the rest of the
// UI must reflect. Count is the summed quantity across lines, Total
// the integer CLP total.
type CartChanged struct {
	Email string `json:"email"`
	Count int    `json:"count"`
	Total int    `json:"total"`
}

// Bus fans CartChanged events out to registered subscribers at the
// moment of publication. There is no queue and no replay: a
// subscriber registered after an event never sees it, and a
// subscriber whose channel is full is skipped rather than awaited.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]chan CartChanged
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]chan CartChanged)}
}

// Subscribe registers a listener and returns its token together with
// the delivery channel. The token is handed back to Unsubscribe when
// the listener unmounts.
func (b *Bus) Subscribe() (string, <-chan CartChanged) {
	ch := make(chan CartChanged, 8)
	token := uuid.NewString()

	b.mu.Lock()
	b.subs[token] = ch
	b.mu.Unlock()

	return token, ch
}

// Unsubscribe drops the listener and closes its channel.
func (b *Bus) Unsubscribe(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[token]; ok {
		delete(b.subs, token)
		close(ch)
	}
}

// Publish delivers ev to every current subscriber without blocking.
func (b *Bus) Publish(ev CartChanged) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
