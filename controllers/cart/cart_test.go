package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Franxho892/Gourmet-Express-Frontend/cart"
	"github.com/Franxho892/Gourmet-Express-Frontend/models"
	"github.com/Franxho892/Gourmet-Express-Frontend/notify"
	"github.com/Franxho892/Gourmet-Express-Frontend/store"
)

const ana = "ana@x.com"

// A store that accepts reads but refuses writes, standing in for a
// full disk or closed database.
type readOnlyStore struct {
	*store.Memory
}

func (readOnlyStore) Put(key, value string) error {
	return assert.AnError
}

func cartRouter(t *testing.T, st store.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := cart.NewManager(st, nil, notify.NewBus())
	asAna := func(c *gin.Context) {
		c.Set("user", models.Session{Name: "Ana", Email: ana, Rol: models.RoleUser})
	}
	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	r.POST("/carrito/incrementar", asAna, Increment(m))
	r.POST("/carrito/disminuir", asAna, Decrement(m))
	r.POST("/carrito/eliminar", asAna, Remove(m))
	r.POST("/carrito/vaciar", asAna, Clear(m))
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func seededCart(t *testing.T, st store.Store) {
	t.Helper()
	require.NoError(t, store.PutJSON(st, store.CartKey(ana), []models.CartItem{
		{ID: "Pizza", Titulo: "Pizza", Precio: "$8.000", Qty: 1},
	}))
}

func TestMutationRedirectsBackToCart(t *testing.T) {
	st := store.NewMemory()
	seededCart(t, st)

	w := postForm(cartRouter(t, st), "/carrito/incrementar", url.Values{"id": {"Pizza"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/carrito", w.Header().Get("Location"))
}

func TestMutationPersistFailureRendersCartWithError(t *testing.T) {
	mem := store.NewMemory()
	seededCart(t, mem)
	r := cartRouter(t, readOnlyStore{mem})

	for _, path := range []string{
		"/carrito/incrementar",
		"/carrito/disminuir",
		"/carrito/eliminar",
		"/carrito/vaciar",
	} {
		w := postForm(r, path, url.Values{"id": {"Pizza"}})
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), MsgUpdateFailed, path)
		assert.Empty(t, w.Header().Get("Location"), path)
	}
}
