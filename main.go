package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
	"github.com/Franxho892/Gourmet-Express-Frontend/cart"
	"github.com/Franxho892/Gourmet-Express-Frontend/config"
	"github.com/Franxho892/Gourmet-Express-Frontend/notify"
	"github.com/Franxho892/Gourmet-Express-Frontend/reservation"
	"github.com/Franxho892/Gourmet-Express-Frontend/routes"
	"github.com/Franxho892/Gourmet-Express-Frontend/session"
	"github.com/Franxho892/Gourmet-Express-Frontend/store"
)

func main() {
	log.Println("✅ Starting Gourmet Express web client...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Local state store (the localStorage stand-in)
	st, err := store.Open(cfg.DataPath)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}

	// Session first: every other backend client reads its token.
	sess := session.NewManager(st, backend.NewAuthClient(cfg.AuthServiceURL))

	bus := notify.NewBus()
	deps := routes.Deps{
		Session:      sess,
		Cart:         cart.NewManager(st, backend.NewPaymentClient(cfg.PaymentServiceURL, sess.Token), bus),
		Reservations: reservation.NewManager(st, backend.NewReservationClient(cfg.ReservationServiceURL, sess.Token)),
		Menu:         backend.NewMenuClient(cfg.MenuServiceURL, sess.Token),
		Bookings:     backend.NewReservationClient(cfg.ReservationServiceURL, sess.Token),
		Bus:          bus,
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Templates and bundled art
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// Setup routes
	routes.SetupRoutes(r, deps)

	log.Printf("🚀 Web client running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
