package editfield

// FocusGroup coordinates exclusive focus among sibling fields. A parent owns
// the group and at most one key is current at a time. Keys are compared by
// value; a key type with inconsistent equality will silently mis-synchronize,
// which is a caller contract rather than something the group validates.
//
// The group is owned by the UI loop like everything else here; exclusivity of
// real keyboard focus is what keeps two siblings from claiming concurrently.
type FocusGroup[K comparable] struct {
	current  K
	occupied bool
	bindings map[K]*FocusBinding
}

// NewFocusGroup returns an empty group with no current key.
func NewFocusGroup[K comparable]() *FocusGroup[K] {
	return &FocusGroup[K]{bindings: make(map[K]*FocusBinding)}
}

// Bind registers a sibling under key and returns its binding. Binding the same
// key twice replaces the earlier sibling's registration.
func (g *FocusGroup[K]) Bind(key K) *FocusBinding {
	b := &FocusBinding{
		claim:     func() { g.Focus(key) },
		release:   func() { g.Clear() },
		isCurrent: func() bool { return g.occupied && g.current == key },
	}
	g.bindings[key] = b
	return b
}

// Focus makes key the group's current key and notifies the affected siblings:
// the previous holder observes focus false, the new one focus true.
func (g *FocusGroup[K]) Focus(key K) {
	if g.occupied && g.current == key {
		return
	}
	prev, hadPrev := g.current, g.occupied
	g.current, g.occupied = key, true
	if hadPrev {
		if b, ok := g.bindings[prev]; ok {
			b.notify(false)
		}
	}
	if b, ok := g.bindings[key]; ok {
		b.notify(true)
	}
}

// Clear drops the current key, if any, and notifies its sibling.
func (g *FocusGroup[K]) Clear() {
	if !g.occupied {
		return
	}
	prev := g.current
	var zero K
	g.current, g.occupied = zero, false
	if b, ok := g.bindings[prev]; ok {
		b.notify(false)
	}
}

// Current returns the current key and whether one is set.
func (g *FocusGroup[K]) Current() (K, bool) {
	return g.current, g.occupied
}

// FocusBinding is one sibling's view of its group: it can claim or release the
// group's current key and observe group-driven focus changes. The binding is
// deliberately non-generic so a Controller can hold one regardless of the
// group's key type.
type FocusBinding struct {
	claim     func()
	release   func()
	isCurrent func() bool
	observers []func(focused bool)
	syncing   bool
}

// Observe registers a callback for group-driven focus changes. Observers are
// not invoked for changes the same sibling initiated via Claim or Release.
func (b *FocusBinding) Observe(fn func(focused bool)) {
	b.observers = append(b.observers, fn)
}

// IsCurrent reports whether this sibling's key is the group's current key.
func (b *FocusBinding) IsCurrent() bool {
	return b.isCurrent()
}

// Claim makes this sibling's key the group's current key. No-op while a group
// notification is being delivered, so observers can call it without echoing.
func (b *FocusBinding) Claim() {
	if b.syncing {
		return
	}
	b.claim()
}

// Release clears the group's current key to none, not to another sibling's
// key. Host focus exclusivity is what keeps a stale release from racing a
// sibling's claim. Like Claim it is a no-op during group notification
// delivery.
func (b *FocusBinding) Release() {
	if b.syncing {
		return
	}
	b.release()
}

func (b *FocusBinding) notify(focused bool) {
	b.syncing = true
	for _, fn := range b.observers {
		fn(focused)
	}
	b.syncing = false
}
