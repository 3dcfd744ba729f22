package config

import "os"

// Config collects every externally tunable setting. All backend
// services are reached over plain HTTP on fixed ports unless
// overridden through the environment.
type Config struct {
	Port string

	ReservationServiceURL string
	MenuServiceURL        string
	AuthServiceURL        string
	PaymentServiceURL     string

	// DataPath is the sqlite file backing the local state store.
	DataPath string
}

// Load reads the environment, falling back to the defaults the
// backend services ship with.
func Load() Config {
	return Config{
		Port:                  getenv("PORT", "3000"),
		ReservationServiceURL: getenv("RESERVATION_SERVICE_URL", "http://localhost:8080"),
		MenuServiceURL:        getenv("MENU_SERVICE_URL", "http://localhost:8081"),
		AuthServiceURL:        getenv("AUTH_SERVICE_URL", "http://localhost:8082"),
		PaymentServiceURL:     getenv("PAYMENT_SERVICE_URL", "http://localhost:8083"),
		DataPath:              getenv("DATA_PATH", "gourmet.db"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
