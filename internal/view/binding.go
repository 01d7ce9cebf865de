// Package view binds presentation surfaces to the entity store: it manages
// topic subscriptions with guaranteed release, forwards user intents as
// store mutations, and hosts the derived display rules (unread badges,
// dialog reconciliation, draft defaults).
package view

import (
	"launchpad/internal/store"
)

// Binding ties one mounted view to the store topics it reads. A view mounts
// once, re-renders on every change notification, and unmounts with every
// disposer released, including on error paths.
type Binding struct {
	store     *store.Store
	disposers []func()
	mounted   bool
}

// NewBinding creates an unmounted binding.
func NewBinding(s *store.Store) *Binding {
	return &Binding{store: s}
}

// Store exposes the bound store for snapshot reads and mutations.
func (b *Binding) Store() *store.Store {
	return b.store
}

// Mount subscribes render to each topic and invokes it once so the view
// starts from the current snapshot. Mounting an already-mounted binding
// unmounts it first, so a render panic in the caller cannot leak disposers.
func (b *Binding) Mount(render store.Handler, topics ...store.Topic) {
	if b.mounted {
		b.Unmount()
	}
	b.mounted = true
	for _, topic := range topics {
		b.disposers = append(b.disposers, b.store.Subscribe(topic, render))
	}
	for _, topic := range topics {
		render(topic)
	}
}

// Unmount releases every subscription. Safe to call multiple times and from
// a deferred cleanup path.
func (b *Binding) Unmount() {
	for _, dispose := range b.disposers {
		dispose()
	}
	b.disposers = nil
	b.mounted = false
}
