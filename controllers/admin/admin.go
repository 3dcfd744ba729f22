package adminControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
	"github.com/Franxho892/Gourmet-Express-Frontend/models"
)

type reservationRow struct {
	models.Reservation
	Estado     string
	BadgeClass string
}

// estadoBadge maps a backend status to the bootstrap badge class the
// panel paints it with. Unknown statuses read as pending.
func estadoBadge(status string) (string, string) {
	s := strings.ToUpper(status)
	if s == "" {
		s = models.StatusPending
	}
	switch {
	case strings.HasPrefix(s, "CONFIRM"):
		return s, "bg-success"
	case strings.HasPrefix(s, "CANCEL"):
		return s, "bg-danger"
	default:
		return s, "bg-warning text-dark"
	}
}

// GET /admin — lists every reservation in the system. The gate in
// front of this route is display-only; the reservation backend is the
// trust boundary.
func AdminPanel(reservations *backend.ReservationClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(models.Session)

		all, err := reservations.All()
		if err != nil {
			c.HTML(http.StatusOK, "admin.html", gin.H{
				"User":   user,
				"Logged": true,
				"Error":  "No se pudieron cargar las reservas desde el backend.",
			})
			return
		}

		rows := make([]reservationRow, 0, len(all))
		pendientes, confirmadas := 0, 0
		for _, r := range all {
			estado, badge := estadoBadge(r.Status)
			if strings.HasPrefix(estado, "PEND") {
				pendientes++
			}
			if strings.HasPrefix(estado, "CONFIRM") {
				confirmadas++
			}
			rows = append(rows, reservationRow{Reservation: r, Estado: estado, BadgeClass: badge})
		}

		c.HTML(http.StatusOK, "admin.html", gin.H{
			"User":        user,
			"Logged":      true,
			"Reservas":    rows,
			"Total":       len(all),
			"Pendientes":  pendientes,
			"Confirmadas": confirmadas,
		})
	}
}
