// Package middleware holds the route guards gating role-scoped routes.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thot-edu/campus/database/model"
	"github.com/thot-edu/campus/web/session"
)

// RequireLogin redirects anonymous clients to the login page. Aborting
// here short-circuits any guard or handler registered after it.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole passes only sessions whose snapshotted role matches. It is
// meant to be chained after RequireLogin.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) || session.GetRole(c) != role {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
