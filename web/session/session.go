// Package session provides typed access to the per-client cookie session:
// the logged-in flag, a snapshot of the user record and the role cached at
// login time.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/thot-edu/campus/database/model"
)

const (
	loggedIn  = "loggedin"
	loginUser = "usuario"
	loginRole = "rol"
)

// MaxAge is the session cookie TTL in seconds (24 hours).
const MaxAge = 86400

func init() {
	gob.Register(model.User{})
}

// SetLoginUser establishes a session for the given user. The role is
// snapshotted here and never re-synced with the users table.
func SetLoginUser(c *gin.Context, user *model.User) error {
	snapshot := *user
	// the cookie is signed, not encrypted; the hash stays server-side
	snapshot.Password = ""

	s := sessions.Default(c)
	s.Set(loggedIn, true)
	s.Set(loginUser, snapshot)
	s.Set(loginRole, string(user.Role))
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   MaxAge,
		HttpOnly: true,
	})
	return s.Save()
}

// GetLoginUser returns the user snapshot from the session, or nil for an
// anonymous client.
func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	logged, ok := s.Get(loggedIn).(bool)
	if !ok || !logged {
		return nil
	}
	if user, ok := s.Get(loginUser).(model.User); ok {
		return &user
	}
	return nil
}

// GetRole returns the role recorded at login time. Anonymous clients are
// RolePublic.
func GetRole(c *gin.Context) model.Role {
	if GetLoginUser(c) == nil {
		return model.RolePublic
	}
	s := sessions.Default(c)
	if role, ok := s.Get(loginRole).(string); ok && model.Role(role).Valid() {
		return model.Role(role)
	}
	return model.RolePublic
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

// ClearSession destroys the session unconditionally. Clearing an absent
// session is a no-op, so logout stays idempotent.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
