// Package eventbus routes client notifications to plugin handlers.
package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"clickorbs/pluginapi"
)

type subscription struct {
	owner   string
	handler pluginapi.Handler
}

// Bus dispatches events to handlers registered per event kind.
//
// Post delivers synchronously on the caller's goroutine, in registration
// order. It may be called from any goroutine; handlers that touch client
// state must hop onto the client thread themselves.
type Bus struct {
	mu       sync.RWMutex
	handlers map[pluginapi.EventKind][]subscription
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[pluginapi.EventKind][]subscription)}
}

// Subscribe registers handler for kind on behalf of owner.
func (b *Bus) Subscribe(owner string, kind pluginapi.EventKind, handler pluginapi.Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	b.handlers[kind] = append(b.handlers[kind], subscription{owner: owner, handler: handler})
	b.mu.Unlock()
}

// Unsubscribe removes every handler registered by owner.
func (b *Bus) Unsubscribe(owner string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for kind, subs := range b.handlers {
		n := 0
		for _, s := range subs {
			if s.owner != owner {
				subs[n] = s
				n++
			}
		}
		clear(subs[n:])
		if n == 0 {
			delete(b.handlers, kind)
			continue
		}
		b.handlers[kind] = subs[:n]
	}
}

// Post delivers ev to all handlers subscribed to its kind.
func (b *Bus) Post(ev pluginapi.Event) {
	if ev == nil {
		return
	}
	b.mu.RLock()
	subs := append([]subscription(nil), b.handlers[ev.Kind()]...)
	b.mu.RUnlock()
	for _, s := range subs {
		deliver(s, ev)
	}
}

func deliver(s subscription, ev pluginapi.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[eventbus] handler of %s panicked on %T: %v\n%s", s.owner, ev, r, debug.Stack())
		}
	}()
	s.handler(ev)
}

// HandlerCount returns the number of handlers registered for kind.
func (b *Bus) HandlerCount(kind pluginapi.EventKind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[kind])
}
