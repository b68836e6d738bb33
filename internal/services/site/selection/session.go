package selection

import "context"

// Session is one request's handle on a browser session. Reading its state
// never adds the session to the store; the first Toggle does, so visitors
// who only look at the page hold no store entry.
type Session struct {
	store *Store
	id    string
}

// Session returns the handle for sessionID.
func (s *Store) Session(sessionID string) Session {
	return Session{store: s, id: sessionID}
}

// ID returns the session id.
func (s Session) ID() string {
	return s.id
}

// State returns the session's selection, or the store default when the
// session has not toggled anything yet.
func (s Session) State() State {
	if s.store == nil {
		return None()
	}
	if controller, ok := s.store.Lookup(s.id); ok {
		return controller.State()
	}
	return Of(s.store.defaultID)
}

// Toggle applies a card click to the session, creating its controller on
// first use, and reports the change.
func (s Session) Toggle(id string) Change {
	if s.store == nil {
		return Change{Toggled: id}
	}
	return s.store.Controller(s.id).toggle(id)
}

type sessionKey struct{}

// WithSession returns a context carrying the request's session.
func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the request's session, if one was attached.
func SessionFromContext(ctx context.Context) (Session, bool) {
	if ctx == nil {
		return Session{}, false
	}
	session, ok := ctx.Value(sessionKey{}).(Session)
	return session, ok && session.store != nil
}
