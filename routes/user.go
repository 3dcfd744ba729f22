package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Franxho892/Gourmet-Express-Frontend/controllers/cart"
	reservationControllers "github.com/Franxho892/Gourmet-Express-Frontend/controllers/reservations"
	"github.com/Franxho892/Gourmet-Express-Frontend/middleware"
)

// SetupUserRoutes registers everything behind the login gate.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	pages := r.Group("/")
	pages.Use(middleware.RequireUser(d.Session))
	{
		// ──────────────── Shopping Cart ────────────────
		pages.GET("/carrito", cartControllers.CartPage(d.Cart))
		pages.POST("/carrito/incrementar", cartControllers.Increment(d.Cart))
		pages.POST("/carrito/disminuir", cartControllers.Decrement(d.Cart))
		pages.POST("/carrito/eliminar", cartControllers.Remove(d.Cart))
		pages.POST("/carrito/vaciar", cartControllers.Clear(d.Cart))
		pages.POST("/carrito/pagar", cartControllers.Checkout(d.Cart))

		// ──────────────── Reservations ────────────────
		pages.GET("/reservar", reservationControllers.ReservePage())
		pages.POST("/reservar", reservationControllers.Reserve(d.Reservations))
		pages.POST("/mis-reservas/cancelar", reservationControllers.CancelReservation(d.Reservations))
	}

	// JSON endpoint the menu page script calls; answers 401 so the
	// script can bounce to /login?from=/menu.
	api := r.Group("/api")
	api.Use(middleware.RequireUserJSON(d.Session))
	{
		api.POST("/cart/items", cartControllers.AddItem(d.Cart))
	}
}
