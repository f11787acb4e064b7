package viewstate

import (
	"fmt"
	"sync"
)

// View identifies one of the tracker's screens.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewTickets   View = "tickets"
	ViewForm      View = "form"
	ViewConfig    View = "config"
	ViewGuide     View = "guide"
)

// Valid reports whether v names a known view.
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewTickets, ViewForm, ViewConfig, ViewGuide:
		return true
	}
	return false
}

// State is a snapshot of the controller.
type State struct {
	View      View    `json:"view"`
	EditingID *string `json:"editingId,omitempty"`
}

// Controller tracks which screen is active and which ticket, if any, is
// being edited. At most one ticket is being edited at a time.
type Controller struct {
	mu        sync.Mutex
	view      View
	editingID *string
}

// NewController starts on the dashboard with nothing being edited.
func NewController() *Controller {
	return &Controller{view: ViewDashboard}
}

// Select switches the active view. Unless the target is the form view, the
// editing reference is cleared.
func (c *Controller) Select(view View) (State, error) {
	if !view.Valid() {
		return c.Snapshot(), fmt.Errorf("unknown view %q", view)
	}
	c.mu.Lock()
	c.view = view
	if view != ViewForm {
		c.editingID = nil
	}
	c.mu.Unlock()
	return c.Snapshot(), nil
}

// Edit opens the form for the given ticket id.
func (c *Controller) Edit(id string) State {
	c.mu.Lock()
	c.view = ViewForm
	c.editingID = &id
	c.mu.Unlock()
	return c.Snapshot()
}

// Submitted records a form submission: back to the table, nothing edited.
func (c *Controller) Submitted() State {
	c.mu.Lock()
	c.view = ViewTickets
	c.editingID = nil
	c.mu.Unlock()
	return c.Snapshot()
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := State{View: c.view}
	if c.editingID != nil {
		id := *c.editingID
		state.EditingID = &id
	}
	return state
}
