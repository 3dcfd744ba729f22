package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
	"github.com/Franxho892/Gourmet-Express-Frontend/cart"
	"github.com/Franxho892/Gourmet-Express-Frontend/notify"
	"github.com/Franxho892/Gourmet-Express-Frontend/reservation"
	"github.com/Franxho892/Gourmet-Express-Frontend/session"
)

// Deps bundles everything the handlers need so each Setup function
// can pick what it wires.
type Deps struct {
	Session      *session.Manager
	Cart         *cart.Manager
	Reservations *reservation.Manager
	Menu         *backend.MenuClient
	Bookings     *backend.ReservationClient
	Bus          *notify.Bus
}

// SetupRoutes is the single entry-point that wires up the public,
// auth, user and admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public pages (add-to-cart is gated at the endpoint, not the page)
	SetupPublicRoutes(r, d)

	// Login / registration / logout
	SetupAuthRoutes(r, d)

	// Pages requiring an active user
	SetupUserRoutes(r, d)

	// Admin panel (display gate only; the backend is the authority)
	SetupAdminRoutes(r, d)
}
