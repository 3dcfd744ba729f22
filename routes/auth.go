package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/Franxho892/Gourmet-Express-Frontend/controllers/auth"
)

// SetupAuthRoutes registers login, registration and logout.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	r.GET("/login", authControllers.LoginPage(d.Session))
	r.POST("/login", authControllers.Login(d.Session))
	r.GET("/register", authControllers.RegisterPage(d.Session))
	r.POST("/register", authControllers.Register(d.Session))
	r.GET("/logout", authControllers.Logout(d.Session))
}
