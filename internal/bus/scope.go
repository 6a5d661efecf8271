package bus

// Scope collects subscriptions on behalf of one owner (a scene, an actor) so
// they can all be revoked in one call when the owner is torn down. This is
// the discipline that keeps handlers from firing into destroyed objects.
type Scope struct {
	bus    *Bus
	subs   []Subscription
	closed bool
}

// NewScope creates a subscription scope bound to this bus.
func (b *Bus) NewScope() *Scope {
	return &Scope{bus: b}
}

// Subscribe registers a handler whose lifetime is tied to the scope.
func (s *Scope) Subscribe(name string, fn Handler) Subscription {
	sub := s.bus.Subscribe(name, fn)
	if s.closed {
		// Late subscription on a torn-down owner: revoke immediately so it
		// can never fire.
		sub.Unsubscribe()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close revokes every subscription registered through the scope. Idempotent.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
	s.subs = nil
}

// Closed reports whether the scope has been torn down.
func (s *Scope) Closed() bool {
	return s.closed
}
