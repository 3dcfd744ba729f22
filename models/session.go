package models

// Roles the auth backend hands out. The client only ever sends USER on
// registration; ADMIN arrives from the backend and is reflected, never
// enforced, on this side.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Session is the persisted snapshot of the logged-in user. Stored
// under the "gourmet_session" key; the bearer token is stored
// separately under "token".
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
}

// IsAdmin reports whether the navbar should show the admin entry.
func (s Session) IsAdmin() bool {
	return s.Rol == RoleAdmin
}
