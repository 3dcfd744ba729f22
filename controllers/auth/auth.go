package authControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Franxho892/Gourmet-Express-Frontend/session"
)

// safeFrom keeps post-login redirects inside the app.
func safeFrom(from string) string {
	if from == "" || from[0] != '/' {
		return "/"
	}
	return from
}

// GET /login
func LoginPage(s *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, logged := s.Current(); logged {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"From": c.Query("from"),
		})
	}
}

// POST /login
func Login(s *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")
		from := c.PostForm("from")

		if msg := s.Login(email, password); msg != "" {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Error": msg,
				"Email": email,
				"From":  from,
			})
			return
		}
		c.Redirect(http.StatusFound, safeFrom(from))
	}
}

// GET /register
func RegisterPage(s *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, logged := s.Current(); logged {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "register.html", gin.H{})
	}
}

// POST /register
func Register(s *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		nombre := c.PostForm("nombre")
		email := c.PostForm("email")
		password := c.PostForm("password")

		if msg := s.Register(nombre, email, password); msg != "" {
			c.HTML(http.StatusOK, "register.html", gin.H{
				"Error":  msg,
				"Nombre": nombre,
				"Email":  email,
			})
			return
		}
		// Register logs straight in on success.
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /logout
func Logout(s *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Logout()
		c.Redirect(http.StatusFound, "/")
	}
}
