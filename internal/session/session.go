// Package session holds the single authenticated-user record and the
// navigation signal derived from it. The persisted record is trusted until an
// explicit log-out or a manual store wipe; there is no expiry and no token.
package session

import (
	"encoding/json"
	"fmt"

	"dentalflow/internal/model"
	"dentalflow/internal/storage"
)

// Key under which the current session is persisted. Independent from the data
// provider's collection keys.
const Key = "loggedInUser"

// Route is where the view layer should land given the current session.
type Route int

const (
	RouteLogin Route = iota
	RoutePatientDashboard
	RouteAdminDashboard
)

func (r Route) String() string {
	switch r {
	case RoutePatientDashboard:
		return "patient dashboard"
	case RouteAdminDashboard:
		return "admin dashboard"
	default:
		return "login"
	}
}

// Session wraps at most one logged-in user.
type Session struct {
	kv   storage.KV
	user *model.SessionUser
}

// Restore builds a session from whatever the store holds: a persisted record
// routes straight to its dashboard, otherwise to the login view.
func Restore(kv storage.KV) (*Session, Route, error) {
	s := &Session{kv: kv}

	raw, ok, err := kv.Get(Key)
	if err != nil {
		return nil, RouteLogin, fmt.Errorf("read session: %w", err)
	}
	if !ok || raw == "" {
		return s, RouteLogin, nil
	}

	var u model.SessionUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, RouteLogin, fmt.Errorf("parse session: %w", err)
	}
	s.user = &u
	return s, routeFor(u), nil
}

// LogIn stores the record in memory and in the persistent store, and returns
// the dashboard route matching the user's role.
func (s *Session) LogIn(u model.SessionUser) (Route, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return RouteLogin, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.kv.Set(Key, string(raw)); err != nil {
		return RouteLogin, fmt.Errorf("persist session: %w", err)
	}
	s.user = &u
	return routeFor(u), nil
}

// LogOut clears memory and the persisted key and routes back to login.
func (s *Session) LogOut() (Route, error) {
	if err := s.kv.Delete(Key); err != nil {
		return RouteLogin, fmt.Errorf("clear session: %w", err)
	}
	s.user = nil
	return RouteLogin, nil
}

// User returns the current user, if any.
func (s *Session) User() (model.SessionUser, bool) {
	if s.user == nil {
		return model.SessionUser{}, false
	}
	return *s.user, true
}

func routeFor(u model.SessionUser) Route {
	if u.IsAdmin {
		return RouteAdminDashboard
	}
	return RoutePatientDashboard
}
