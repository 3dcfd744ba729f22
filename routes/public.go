package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Franxho892/Gourmet-Express-Frontend/controllers/cart"
	homeControllers "github.com/Franxho892/Gourmet-Express-Frontend/controllers/home"
	menuControllers "github.com/Franxho892/Gourmet-Express-Frontend/controllers/menu"
	reservationControllers "github.com/Franxho892/Gourmet-Express-Frontend/controllers/reservations"
)

// SetupPublicRoutes registers the pages anyone can open.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	r.GET("/", homeControllers.Home(d.Session))
	r.GET("/menu", menuControllers.Menu(d.Session, d.Menu))

	// Logged-out visitors get the empty state, not a redirect.
	r.GET("/mis-reservas", reservationControllers.MyReservations(d.Session, d.Reservations))

	// The badge feed is public: a logged-out navbar simply never
	// receives an event for its user.
	r.GET("/ws/cart", cartControllers.CartWebSocketHandler(d.Bus))
}
