package homeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Franxho892/Gourmet-Express-Frontend/session"
)

// GET /
func Home(s *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, logged := s.Current()
		data := gin.H{
			"User":   user,
			"Logged": logged,
		}
		if logged {
			if exp, ok := s.TokenExpiry(); ok {
				data["Expira"] = exp.Format("02-01-2006 15:04")
			}
		}
		c.HTML(http.StatusOK, "home.html", data)
	}
}
