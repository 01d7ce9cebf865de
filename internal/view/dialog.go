package view

import (
	"launchpad/internal/models"
	"launchpad/internal/store"
)

// StartupDialog presents one selected startup. Instead of caching a copy
// that has to be patched after every mutation, the dialog re-reads the
// entity by id whenever the startups topic commits, so counter changes made
// anywhere stay in sync with the list views.
type StartupDialog struct {
	binding  *Binding
	id       int
	selected models.Startup
	open     bool
}

// NewStartupDialog creates a closed dialog bound to the store.
func NewStartupDialog(s *store.Store) *StartupDialog {
	return &StartupDialog{binding: NewBinding(s)}
}

// Open selects a startup and mounts the dialog. Returns false when the id
// is unknown.
func (d *StartupDialog) Open(id int) bool {
	st, ok := d.binding.Store().GetStartup(id)
	if !ok {
		return false
	}
	d.id = id
	d.selected = st
	d.open = true
	d.binding.Mount(func(store.Topic) { d.refresh() }, store.TopicStartups)
	return true
}

// Close unmounts the dialog and releases its subscription.
func (d *StartupDialog) Close() {
	d.open = false
	d.binding.Unmount()
}

// IsOpen reports whether the dialog is showing.
func (d *StartupDialog) IsOpen() bool {
	return d.open
}

// Selected returns the current copy of the selected startup.
func (d *StartupDialog) Selected() models.Startup {
	return d.selected
}

// ToggleLike forwards the like intent for the selected startup. The
// refreshed copy reflects the new counters before this returns, because
// mutations publish synchronously.
func (d *StartupDialog) ToggleLike() error {
	return d.binding.Store().ToggleLike(d.id)
}

// ToggleFollow forwards the follow intent for the selected startup.
func (d *StartupDialog) ToggleFollow() error {
	return d.binding.Store().ToggleFollow(d.id)
}

// ToggleBookmark forwards the bookmark intent for the selected startup.
func (d *StartupDialog) ToggleBookmark() error {
	return d.binding.Store().ToggleBookmark(d.id)
}

// RequestJoin forwards the join intent for the selected startup.
func (d *StartupDialog) RequestJoin() error {
	return d.binding.Store().RequestJoin(d.id)
}

func (d *StartupDialog) refresh() {
	if st, ok := d.binding.Store().GetStartup(d.id); ok {
		d.selected = st
	}
}
