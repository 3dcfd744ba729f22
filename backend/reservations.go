package backend

import (
	"fmt"

	"github.com/Franxho892/Gourmet-Express-Frontend/models"
)

// ReservationClient talks to the reservation service, the canonical
// owner of every reservation.
type ReservationClient struct {
	c *Client
}

func NewReservationClient(baseURL string, token TokenFunc) *ReservationClient {
	return &ReservationClient{c: New(baseURL, token)}
}

// Create submits a new reservation and returns the backend's echo,
// which may or may not include an id.
func (r *ReservationClient) Create(res models.Reservation) (models.Reservation, error) {
	var out models.Reservation
	if err := r.c.post("/reservas", res, &out); err != nil {
		return models.Reservation{}, err
	}
	return out, nil
}

// All lists every reservation in the system. Used by the admin panel.
func (r *ReservationClient) All() ([]models.Reservation, error) {
	var out []models.Reservation
	if err := r.c.get("/reservas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a reservation by id.
func (r *ReservationClient) Delete(id int64) error {
	return r.c.delete(fmt.Sprintf("/reservas/%d", id))
}
