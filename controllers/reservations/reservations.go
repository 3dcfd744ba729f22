package reservationControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Franxho892/Gourmet-Express-Frontend/models"
	"github.com/Franxho892/Gourmet-Express-Frontend/reservation"
	"github.com/Franxho892/Gourmet-Express-Frontend/session"
)

func currentUser(c *gin.Context) models.Session {
	return c.MustGet("user").(models.Session)
}

func formData(user models.Session, f reservation.Form, errs map[string]string, mensaje string, ok bool) gin.H {
	return gin.H{
		"User":     user,
		"Logged":   true,
		"Form":     f,
		"Errores":  errs,
		"Mensaje":  mensaje,
		"Exito":    ok,
		"Horas":    reservation.TimeSlots,
		"Personas": reservation.PartySizes,
		"MinFecha": time.Now().Format("2006-01-02"),
	}
}

// GET /reservar
func ReservePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "reserve.html",
			formData(currentUser(c), reservation.Form{}, nil, "", false))
	}
}

// POST /reservar
func Reserve(m *reservation.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var f reservation.Form
		if err := c.ShouldBind(&f); err != nil {
			c.HTML(http.StatusBadRequest, "reserve.html",
				formData(user, f, nil, reservation.MsgFixErrors, false))
			return
		}

		errs, err := m.Create(user.Email, f)
		if len(errs) > 0 {
			// Field errors: nothing was submitted, entered values stay.
			c.HTML(http.StatusOK, "reserve.html",
				formData(user, f, errs, reservation.MsgFixErrors, false))
			return
		}
		if err != nil {
			// Backend failure: keep the entered values for retry.
			c.HTML(http.StatusOK, "reserve.html",
				formData(user, f, nil, reservation.MsgCreateFailed, false))
			return
		}
		c.HTML(http.StatusOK, "reserve.html",
			formData(user, reservation.Form{}, nil, reservation.MsgCreated, true))
	}
}

// GET /mis-reservas — open to everyone; a logged-out visitor gets the
// empty state instead of a redirect.
func MyReservations(s *session.Manager, m *reservation.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, logged := s.Current()
		data := gin.H{"User": user, "Logged": logged}
		if !logged {
			data["Aviso"] = "Debes iniciar sesión para ver tus reservas."
		} else {
			data["Reservas"] = m.Mine(user.Email)
		}
		c.HTML(http.StatusOK, "my_reservations.html", data)
	}
}

// POST /mis-reservas/cancelar — the page asks for confirmation first.
// The record leaves the local list even when the backend delete
// failed; in that case a warning is shown.
func CancelReservation(m *reservation.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		id, err := strconv.ParseInt(c.PostForm("id"), 10, 64)
		if err != nil {
			c.Redirect(http.StatusFound, "/mis-reservas")
			return
		}

		aviso := ""
		backendOK, err := m.Cancel(user.Email, id)
		switch {
		case err != nil:
			aviso = reservation.ErrCancelPersist
		case !backendOK:
			aviso = reservation.WarnCancelLocal
		}
		c.HTML(http.StatusOK, "my_reservations.html", gin.H{
			"User":     user,
			"Logged":   true,
			"Reservas": m.Mine(user.Email),
			"Aviso":    aviso,
		})
	}
}
