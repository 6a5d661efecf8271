// Package bus provides the process-wide publish/subscribe broker that
// decouples the runtime's components. Input, actors, audio, and scenes
// interact through named events instead of direct references.
//
// Dispatch is synchronous and single-threaded: all of a runtime instance's
// emits happen on its frame loop, so no locking is needed.
package bus

import (
	"github.com/charmbracelet/log"
)

// Event is a named signal with an optional payload. Events have no identity
// beyond their name and the moment of emission; they are never stored.
type Event struct {
	Name    string
	Payload any
}

// Handler processes a single event during dispatch.
type Handler func(Event)

type subscriber struct {
	id      uint64
	name    string
	fn      Handler
	removed bool
}

// Subscription is the handle returned by Subscribe. The owner uses it to
// revoke the handler; revoking twice is a no-op.
type Subscription struct {
	bus *Bus
	sub *subscriber
}

// Unsubscribe removes the handler from the bus. Idempotent: calling it on an
// already-removed handle does nothing. Safe to call during a dispatch of the
// same event; the handler will not run again in that dispatch.
func (s Subscription) Unsubscribe() {
	if s.bus != nil {
		s.bus.unsubscribe(s.sub)
	}
}

// Bus routes emitted events to subscribed handlers.
type Bus struct {
	logger *log.Logger
	nextID uint64
	subs   map[string][]*subscriber
	live   int
}

// New creates an empty bus. Handler failures are reported through logger;
// a nil logger falls back to the package default.
func New(logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.Default()
	}
	return &Bus{
		logger: logger,
		subs:   make(map[string][]*subscriber),
	}
}

// Subscribe registers a handler for the named event and returns its handle.
// Handlers for the same event run in registration order. A handler registered
// during a dispatch of that event is not invoked for that same dispatch.
func (b *Bus) Subscribe(name string, fn Handler) Subscription {
	b.nextID++
	sub := &subscriber{
		id:   b.nextID,
		name: name,
		fn:   fn,
	}
	b.subs[name] = append(b.subs[name], sub)
	b.live++
	return Subscription{bus: b, sub: sub}
}

// Emit delivers the event synchronously to every handler subscribed at the
// moment of the call, in registration order. Emitting with no subscribers is
// a no-op. A failing handler is logged and skipped; the rest still run.
// Re-entrant emits from inside handlers are safe.
func (b *Bus) Emit(name string, payload any) {
	// Slice header snapshot: handlers added during dispatch land past the
	// snapshot's length and are not visited this round.
	snapshot := b.subs[name]
	if len(snapshot) == 0 {
		return
	}

	ev := Event{Name: name, Payload: payload}
	for _, sub := range snapshot {
		if sub.removed {
			continue
		}
		b.invoke(sub, ev)
	}
}

// invoke runs one handler with panic isolation so a broken subscriber cannot
// take down the dispatch cycle.
func (b *Bus) invoke(sub *subscriber, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("event handler failed",
				"event", ev.Name, "handler", sub.id, "panic", r)
		}
	}()
	sub.fn(ev)
}

func (b *Bus) unsubscribe(sub *subscriber) {
	if sub == nil || sub.removed {
		return
	}
	sub.removed = true
	b.live--

	list := b.subs[sub.name]
	for i, s := range list {
		if s == sub {
			b.subs[sub.name] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(b.subs[sub.name]) == 0 {
		delete(b.subs, sub.name)
	}
}

// Count returns the number of live subscriptions across all event names.
// Scenes use it to verify teardown hygiene.
func (b *Bus) Count() int {
	return b.live
}
