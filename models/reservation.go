package models

// StatusPending is the hardcoded initial status sent with every new
// reservation. The backend may answer with any status string.
const StatusPending = "PENDIENTE"

// Reservation is the backend's reservation shape, shared by
// POST /reservas, GET /reservas and the admin panel.
type Reservation struct {
	ID       int64  `json:"id"`
	Fecha    string `json:"fecha"`
	Hora     string `json:"hora"`
	Personas int    `json:"personas"`
	Nombre   string `json:"nombre,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Status   string `json:"status,omitempty"`
}

// ReservationMirror is the locally cached copy kept under
// "gourmet_reservations:<email>" for display continuity. It is not
// guaranteed consistent with the backend.
type ReservationMirror struct {
	ID        int64  `json:"id"`
	Fecha     string `json:"fecha"`
	Hora      string `json:"hora"`
	Personas  int    `json:"personas"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"createdAt"`
}
