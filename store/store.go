// Package store is the client-local persistence layer. It plays the
// role browser localStorage plays for the web build: an origin-scoped
// key-value store holding the session snapshot, the bearer token and
// the per-user cart and reservation mirrors. Reads and writes are
// synchronous and last-writer-wins; nothing here coordinates two
// instances sharing the same data file.
package store

import "encoding/json"

// Storage keys. Cart and reservation mirrors are keyed per user email.
const (
	SessionKey      = "gourmet_session"
	TokenKey        = "token"
	cartPrefix      = "gourmet_cart:"
	reservationsKey = "gourmet_reservations:"
)

// CartKey returns the storage key of a user's cart.
func CartKey(email string) string { return cartPrefix + email }

// ReservationsKey returns the storage key of a user's reservation mirror.
func ReservationsKey(email string) string { return reservationsKey + email }

// Store is a flat string key-value store.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Delete(key string) error
}

// GetJSON unmarshals the value stored at key into out. A missing key,
// a read failure or a malformed value all leave out untouched and
// report false: corrupt local data must never block navigation, it is
// treated as absent state.
func GetJSON(s Store, key string, out any) bool {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

// PutJSON marshals v and stores it at key.
func PutJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(key, string(raw))
}
