// Package auth holds the session principal contract and an auth-state
// notifier. The identity provider itself is external; all the application
// sees is a principal with a role attribute carried in the session cookie.
package auth

import (
	"github.com/gin-contrib/sessions"
)

const (
	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "username"
	sessionKeyRole     = "role"

	// RoleAdmin gates all editing surfaces and the management panel.
	RoleAdmin = "admin"
)

// Principal is the authenticated identity attached to a session.
type Principal struct {
	UserID   uint
	Username string
	Role     string
}

// IsAdmin reports whether the principal may reach editing surfaces.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// FromSession extracts the principal stored in the session, if any.
func FromSession(session sessions.Session) (Principal, bool) {
	rawID := session.Get(sessionKeyUserID)
	userID, ok := rawID.(uint)
	if !ok {
		return Principal{}, false
	}

	principal := Principal{UserID: userID}
	if name, ok := session.Get(sessionKeyUsername).(string); ok {
		principal.Username = name
	}
	if role, ok := session.Get(sessionKeyRole).(string); ok {
		principal.Role = role
	}
	return principal, true
}

// Store writes the principal into the session. The caller saves the session.
func Store(session sessions.Session, p Principal) {
	session.Set(sessionKeyUserID, p.UserID)
	session.Set(sessionKeyUsername, p.Username)
	session.Set(sessionKeyRole, p.Role)
}
