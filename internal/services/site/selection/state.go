// Package selection implements the ventures accordion: a single optional
// venture id that decides which card is expanded.
//
// A Controller owns one selection for one visitor. A Store keeps a Controller
// per browser session and forgets idle ones; selections are never persisted.
package selection

// State is the selected venture id, or none.
type State struct {
	id  string
	set bool
}

// None is the state where every card is collapsed.
func None() State {
	return State{}
}

// Of returns the state selecting id. An empty id is None.
func Of(id string) State {
	if id == "" {
		return None()
	}
	return State{id: id, set: true}
}

// ID returns the selected id and whether anything is selected.
func (s State) ID() (string, bool) {
	return s.id, s.set
}

// IsNone reports whether nothing is selected.
func (s State) IsNone() bool {
	return !s.set
}

// Expanded reports whether the card for id is expanded in this state.
func (s State) Expanded(id string) bool {
	return s.set && s.id == id
}

// Toggle returns the state after a click on id's card: clicking the
// expanded card collapses it, clicking any other card selects that card.
func (s State) Toggle(id string) State {
	if s.Expanded(id) {
		return None()
	}
	return Of(id)
}

// String renders the id, or "none".
func (s State) String() string {
	if !s.set {
		return "none"
	}
	return s.id
}

// CardState is the derived per-card view of a State.
type CardState int

const (
	Collapsed CardState = iota
	Expanded
)

// String returns "collapsed" or "expanded".
func (c CardState) String() string {
	if c == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// CardStateOf derives one card's state from the shared selection.
func CardStateOf(s State, id string) CardState {
	if s.Expanded(id) {
		return Expanded
	}
	return Collapsed
}
