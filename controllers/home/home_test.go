package homeControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Franxho892/Gourmet-Express-Frontend/session"
	"github.com/Franxho892/Gourmet-Express-Frontend/store"
)

func newRouter(t *testing.T, st store.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	r.GET("/", Home(session.NewManager(st, nil)))
	return r
}

func TestHomeShowsTokenExpiryWhenLoggedIn(t *testing.T) {
	exp := time.Date(2026, 3, 10, 21, 30, 0, 0, time.Local)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	}).SignedString([]byte("clave-que-el-cliente-no-conoce"))
	require.NoError(t, err)

	st := store.NewMemory()
	st.Put(store.SessionKey, `{"name":"Ana","email":"ana@x.com","rol":"USER"}`)
	st.Put(store.TokenKey, raw)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	newRouter(t, st).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tu sesión expira el 10-03-2026 21:30")
}

func TestHomeWithOpaqueTokenOmitsExpiry(t *testing.T) {
	st := store.NewMemory()
	st.Put(store.SessionKey, `{"name":"Ana","email":"ana@x.com","rol":"USER"}`)
	st.Put(store.TokenKey, "not-a-jwt")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	newRouter(t, st).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Tu sesión expira")
}

func TestHomeLoggedOutOmitsExpiry(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	newRouter(t, store.NewMemory()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Tu sesión expira")
}
