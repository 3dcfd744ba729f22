// Package session owns the authenticated-user identity: login and
// registration against the auth service, logout, and rehydration of
// the persisted snapshot on startup. It is the single source of truth
// for "who is logged in" in this instance.
package session

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
	"github.com/Franxho892/Gourmet-Express-Frontend/models"
	"github.com/Franxho892/Gourmet-Express-Frontend/store"
)

// User-facing literals, matching the rest of the Spanish UI.
const (
	ErrInvalidCredentials = "Credenciales inválidas"
	ErrLoginFailed        = "Error al iniciar sesión. Intenta nuevamente."
	ErrRegisterTaken      = "El email ya está registrado o los datos no son válidos."
	ErrRegisterFailed     = "Error al registrar. Intenta nuevamente."
)

// Manager holds the active user. Exactly one user (or none) is active
// per running instance; the snapshot survives restarts through the
// store.
type Manager struct {
	store store.Store
	auth  *backend.AuthClient

	mu      sync.RWMutex
	current *models.Session
}

// NewManager builds the manager and rehydrates the persisted session
// if one exists. A malformed snapshot is treated as no session.
func NewManager(st store.Store, auth *backend.AuthClient) *Manager {
	m := &Manager{store: st, auth: auth}
	var s models.Session
	if store.GetJSON(st, store.SessionKey, &s) && s.Email != "" {
		m.current = &s
	}
	return m
}

// Current returns the active user, or ok=false when logged out.
func (m *Manager) Current() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return models.Session{}, false
	}
	return *m.current, true
}

// Token returns the stored bearer token, "" when absent. Wired into
// every backend client so authenticated requests carry it.
func (m *Manager) Token() string {
	raw, ok, err := m.store.Get(store.TokenKey)
	if err != nil || !ok {
		return ""
	}
	return raw
}

// Login sends credentials to the auth service. On success the token
// and a session snapshot are stored and the user becomes active; the
// return is "" on success or a user-facing message, never a panic.
func (m *Manager) Login(email, password string) string {
	resp, err := m.auth.Login(email, password)
	if err != nil {
		if backend.IsStatus(err, http.StatusUnauthorized) {
			return ErrInvalidCredentials
		}
		return ErrLoginFailed
	}

	if err := m.store.Put(store.TokenKey, resp.Token); err != nil {
		return ErrLoginFailed
	}
	s := models.Session{Name: resp.Nombre, Email: resp.Email, Rol: resp.Rol}
	if err := store.PutJSON(m.store, store.SessionKey, s); err != nil {
		return ErrLoginFailed
	}

	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()
	return ""
}

// Register creates the account with the fixed USER role and, on
// success, logs straight in with the same credentials. A 400 or 409
// surfaces the backend's message when it is plain text.
func (m *Manager) Register(nombre, email, password string) string {
	err := m.auth.Register(strings.TrimSpace(nombre), strings.TrimSpace(email), password, models.RoleUser)
	if err != nil {
		if backend.IsStatus(err, http.StatusBadRequest) || backend.IsStatus(err, http.StatusConflict) {
			if msg := backend.PlainBody(err); msg != "" {
				return msg
			}
			return ErrRegisterTaken
		}
		return ErrRegisterFailed
	}
	return m.Login(email, password)
}

// Logout clears the stored token and snapshot. Purely local, no
// network call; the token is simply forgotten.
func (m *Manager) Logout() {
	m.store.Delete(store.SessionKey)
	m.store.Delete(store.TokenKey)

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// TokenExpiry peeks the unverified exp claim of the stored token so
// pages can display it. The token is never validated here: it stays
// trusted until a backend rejects it.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	raw := m.Token()
	if raw == "" {
		return time.Time{}, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
