// Package reservation creates reservations against the booking
// service and keeps the per-user local mirror the "mis reservas" page
// lists. The mirror is display continuity, not truth: cancellation is
// best-effort against the backend and unconditional locally.
package reservation

import (
	"strconv"
	"strings"
	"time"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
	"github.com/Franxho892/Gourmet-Express-Frontend/models"
	"github.com/Franxho892/Gourmet-Express-Frontend/store"
)

// User-facing literals.
const (
	MsgFixErrors     = "Por favor corrija los errores antes de continuar."
	MsgCreated       = "La reserva fue creada y guardada en tu cuenta."
	MsgCreateFailed  = "Ocurrió un error al crear la reserva. Inténtalo nuevamente más tarde."
	WarnCancelLocal  = "Hubo un problema eliminando la reserva en el sistema, pero se cancelará localmente."
	ErrCancelPersist = "No se pudo actualizar tu lista de reservas. Inténtalo nuevamente."
)

type Manager struct {
	store  store.Store
	client *backend.ReservationClient

	// now is swappable so date validation and id fallbacks are
	// deterministic under test.
	now func() time.Time
}

func NewManager(st store.Store, client *backend.ReservationClient) *Manager {
	return &Manager{store: st, client: client, now: time.Now}
}

// Create validates the whole form and, only when clean, submits it
// with the initial PENDIENTE status and appends the echo to the
// user's mirror. Field errors abort before any network call; a
// backend failure is returned so the view can keep the entered
// values.
func (m *Manager) Create(email string, f Form) (map[string]string, error) {
	if errs := Validate(f, m.now()); len(errs) > 0 {
		return errs, nil
	}

	personas, _ := strconv.Atoi(f.Personas)
	payload := models.Reservation{
		Fecha:    f.Fecha,
		Hora:     f.Hora,
		Personas: personas,
		Nombre:   strings.TrimSpace(f.Nombre + " " + f.Apellido),
		Telefono: f.Telefono,
		Status:   models.StatusPending,
	}

	created, err := m.client.Create(payload)
	if err != nil {
		return nil, err
	}

	// Backend ids are assumed unique; the wall-clock fallback only
	// covers backends that omit the id from the echo.
	id := created.ID
	if id == 0 {
		id = m.now().UnixMilli()
	}

	mirror := m.Mine(email)
	mirror = append(mirror, models.ReservationMirror{
		ID:        id,
		Fecha:     created.Fecha,
		Hora:      created.Hora,
		Personas:  created.Personas,
		Status:    created.Status,
		CreatedAt: m.now().UnixMilli(),
	})
	if err := store.PutJSON(m.store, store.ReservationsKey(email), mirror); err != nil {
		return nil, err
	}
	return nil, nil
}

// Mine lists the local mirror. It never re-fetches from the backend,
// so it may diverge from server truth.
func (m *Manager) Mine(email string) []models.ReservationMirror {
	var mirror []models.ReservationMirror
	store.GetJSON(m.store, store.ReservationsKey(email), &mirror)
	return mirror
}

// Cancel attempts the backend delete and then removes the record
// locally no matter what, so the list always reflects the user's
// intent. backendOK reports whether the backend accepted the delete;
// false means the view should show WarnCancelLocal. err is non-nil
// only when the local mirror could not be persisted.
func (m *Manager) Cancel(email string, id int64) (backendOK bool, err error) {
	backendOK = m.client.Delete(id) == nil

	mirror := m.Mine(email)
	next := mirror[:0]
	for _, r := range mirror {
		if r.ID != id {
			next = append(next, r)
		}
	}
	if err := store.PutJSON(m.store, store.ReservationsKey(email), next); err != nil {
		return backendOK, err
	}
	return backendOK, nil
}
