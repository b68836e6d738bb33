package selection

import "sync"

// Change describes one toggle: the id that was clicked and the selection
// before and after.
type Change struct {
	Toggled  string
	Previous State
	Current  State
}

// Expanded reports whether the toggle opened the clicked card.
func (c Change) Expanded() bool {
	return c.Current.Expanded(c.Toggled)
}

// Transition names the change for logs and metrics: "expand" or "collapse".
func (c Change) Transition() string {
	if c.Expanded() {
		return "expand"
	}
	return "collapse"
}

// Observer is notified synchronously after every toggle.
type Observer func(Change)

// Controller holds one visitor's selection. Toggle is the only mutation.
type Controller struct {
	mu        sync.Mutex
	state     State
	observers []Observer
}

// NewController starts with initial selected; an empty initial starts with
// every card collapsed.
func NewController(initial string, observers ...Observer) *Controller {
	c := &Controller{state: Of(initial)}
	for _, observer := range observers {
		if observer != nil {
			c.observers = append(c.observers, observer)
		}
	}
	return c
}

// Toggle collapses id's card if it is the expanded one and otherwise expands
// it, which collapses whichever card was expanded before. Ids that match no
// venture are accepted and leave a selection no card renders as expanded.
func (c *Controller) Toggle(id string) {
	c.toggle(id)
}

func (c *Controller) toggle(id string) Change {
	c.mu.Lock()
	change := Change{Toggled: id, Previous: c.state}
	c.state = c.state.Toggle(id)
	change.Current = c.state
	observers := c.observers
	c.mu.Unlock()

	for _, observer := range observers {
		observer(change)
	}
	return change
}

// State returns the current selection.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selected returns the selected id and whether anything is selected.
func (c *Controller) Selected() (string, bool) {
	return c.State().ID()
}

// IsExpanded reports whether id's card is expanded.
func (c *Controller) IsExpanded(id string) bool {
	return c.State().Expanded(id)
}

// OnChange registers an observer for later toggles.
func (c *Controller) OnChange(observer Observer) {
	if observer == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers[:len(c.observers):len(c.observers)], observer)
}
