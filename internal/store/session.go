package store

import (
	"errors"
	"sync"

	"github.com/erazemk/freshkeeper/internal/model"
)

// ErrNotLoggedIn is returned when a screen needs a session and there is none.
var ErrNotLoggedIn = errors.New("not logged in")

// State is a snapshot of the session.
type State struct {
	Token string
	User  *model.User
}

// LoggedIn reports whether the snapshot carries a token.
func (s State) LoggedIn() bool {
	return s.Token != ""
}

// Session holds the bearer token and user for the running process.
// Nothing is written to disk.
type Session struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

// NewSession returns an empty, logged-out session.
func NewSession() *Session {
	return &Session{listeners: make(map[int]func(State))}
}

// Login stores the token and user and notifies listeners.
func (s *Session) Login(token string, user *model.User) {
	var u *model.User
	if user != nil {
		copied := *user
		u = &copied
	}
	s.set(State{Token: token, User: u})
}

// Logout clears the token and user and notifies listeners.
func (s *Session) Logout() {
	s.set(State{})
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// User returns a copy of the current user, or nil.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// LoggedIn reports whether a token is held.
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.snapshot()
}

func (st State) snapshot() State {
	if st.User == nil {
		return st
	}
	u := *st.User
	return State{Token: st.Token, User: &u}
}

// Subscribe registers fn to be called with the new state after every change.
// The returned function removes the listener.
func (s *Session) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Session) set(next State) {
	s.mu.Lock()
	s.state = next
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	// Listeners run outside the lock so they may read the session.
	for _, fn := range listeners {
		fn(next.snapshot())
	}
}
