package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/Franxho892/Gourmet-Express-Frontend/controllers/admin"
	"github.com/Franxho892/Gourmet-Express-Frontend/middleware"
)

// SetupAdminRoutes registers the admin panel. The gate only requires
// a login; the role check is a navbar display concern and real
// authorization lives in the reservation backend.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireUser(d.Session))
	{
		adminGroup.GET("/", adminControllers.AdminPanel(d.Bookings))
		adminGroup.GET("/export", adminControllers.ExportReservationsToExcel(d.Bookings))
	}
}
