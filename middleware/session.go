package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Franxho892/Gourmet-Express-Frontend/session"
)

// RequireUser gates a page behind a login, bouncing to /login with
// the intended destination preserved in the from parameter.
func RequireUser(s *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.Current()
		if !ok {
			c.Redirect(http.StatusFound, "/login?from="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// RequireUserJSON is the same gate for the JSON endpoints the page
// scripts call.
func RequireUserJSON(s *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Debes iniciar sesión"})
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}
