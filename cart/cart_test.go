package cart

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
	"github.com/Franxho892/Gourmet-Express-Frontend/models"
	"github.com/Franxho892/Gourmet-Express-Frontend/notify"
	"github.com/Franxho892/Gourmet-Express-Frontend/store"
)

const ana = "ana@x.com"

func newManager(t *testing.T, payments http.HandlerFunc) (*Manager, *notify.Bus, store.Store) {
	t.Helper()
	if payments == nil {
		payments = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":1}`))
		}
	}
	srv := httptest.NewServer(payments)
	t.Cleanup(srv.Close)

	st := store.NewMemory()
	bus := notify.NewBus()
	return NewManager(st, backend.NewPaymentClient(srv.URL, nil), bus), bus, st
}

func TestAddSameTitleAccumulatesQuantity(t *testing.T) {
	m, _, _ := newManager(t, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, m.Add(ana, "Pizza", "$8.000", "/static/img/pizza.jpg"))
	}

	items := m.Items(ana)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Qty)
	assert.Equal(t, "Pizza", items[0].ID, "line id derives from the title")
}

func TestDecrementFloorsAtOne(t *testing.T) {
	m, _, _ := newManager(t, nil)
	require.NoError(t, m.Add(ana, "Papas", "$2.000", ""))

	require.NoError(t, m.Decrement(ana, "Papas"))
	require.NoError(t, m.Decrement(ana, "Papas"))

	items := m.Items(ana)
	require.Len(t, items, 1, "decrement never removes the line")
	assert.Equal(t, 1, items[0].Qty)
}

func TestIncrementThenDecrementRestoresQuantity(t *testing.T) {
	m, _, _ := newManager(t, nil)
	require.NoError(t, m.Add(ana, "Pizza", "$8.000", ""))
	require.NoError(t, m.Add(ana, "Pizza", "$8.000", ""))

	require.NoError(t, m.Increment(ana, "Pizza"))
	require.NoError(t, m.Decrement(ana, "Pizza"))

	assert.Equal(t, 2, m.Items(ana)[0].Qty)
}

func TestOnlyAddPublishesCartChanged(t *testing.T) {
	m, bus, _ := newManager(t, nil)
	_, events := bus.Subscribe()

	require.NoError(t, m.Add(ana, "Pizza", "$8.000", ""))
	ev := <-events
	assert.Equal(t, ana, ev.Email)
	assert.Equal(t, 1, ev.Count)
	assert.Equal(t, 8000, ev.Total)

	// Adding the same dish again bumps its quantity: the badge counts
	// units, not distinct titles.
	require.NoError(t, m.Add(ana, "Pizza", "$8.000", ""))
	ev = <-events
	assert.Equal(t, 2, ev.Count)
	assert.Equal(t, 16000, ev.Total)

	require.NoError(t, m.Increment(ana, "Pizza"))
	require.NoError(t, m.Decrement(ana, "Pizza"))
	require.NoError(t, m.Remove(ana, "Pizza"))
	select {
	case ev := <-events:
		t.Fatalf("unexpected event %+v: only Add notifies", ev)
	default:
	}
}

func TestTotalExactForIntegerCurrencyText(t *testing.T) {
	items := []models.CartItem{
		{Precio: "$4.500", Qty: 2},
		{Precio: "$1.000", Qty: 1},
	}
	assert.Equal(t, 10000, Total(items))
}

func TestCountSumsQuantities(t *testing.T) {
	assert.Zero(t, Count(nil))
	items := []models.CartItem{
		{Titulo: "Pizza", Qty: 3},
		{Titulo: "Lasaña", Qty: 1},
	}
	assert.Equal(t, 4, Count(items))
}

func TestParsePrecio(t *testing.T) {
	assert.Equal(t, 4500, ParsePrecio("$4.500"))
	assert.Equal(t, 0, ParsePrecio("$"))
	assert.Equal(t, 0, ParsePrecio(""))
	assert.Equal(t, 8000, ParsePrecio("8000"))
}

func TestFormatCLP(t *testing.T) {
	assert.Equal(t, "$0", FormatCLP(0))
	assert.Equal(t, "$500", FormatCLP(500))
	assert.Equal(t, "$8.000", FormatCLP(8000))
	assert.Equal(t, "$18.000", FormatCLP(18000))
	assert.Equal(t, "$1.234.567", FormatCLP(1234567))
}

func TestCartSurvivesLogoutLogin(t *testing.T) {
	m, _, st := newManager(t, nil)
	require.NoError(t, m.Add(ana, "Pizza", "$8.000", ""))
	require.NoError(t, m.Add(ana, "Papas", "$2.000", ""))

	// Logging out clears session keys, never cart keys; a fresh
	// manager over the same store sees the same cart.
	st.Delete(store.SessionKey)
	st.Delete(store.TokenKey)

	again := NewManager(st, nil, notify.NewBus())
	items := again.Items(ana)
	require.Len(t, items, 2)
	assert.Equal(t, "Pizza", items[0].Titulo)
	assert.Equal(t, "Papas", items[1].Titulo)
}

func TestCheckoutScenario(t *testing.T) {
	var gotBody string
	m, _, _ := newManager(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"id":42}`))
	})

	require.NoError(t, m.Add(ana, "Pizza", "$8.000", ""))
	require.NoError(t, m.Add(ana, "Pizza", "$8.000", ""))
	require.NoError(t, m.Add(ana, "Papas", "$2.000", ""))

	items := m.Items(ana)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, 1, items[1].Qty)
	assert.Equal(t, 18000, Total(items))

	receipt, err := m.Checkout(ana, "EFECTIVO")
	require.NoError(t, err)
	assert.EqualValues(t, 42, receipt.ID)
	assert.JSONEq(t, `{"monto":18000,"metodoPago":"EFECTIVO"}`, gotBody)
	assert.Empty(t, m.Items(ana), "successful payment clears the cart")
}

func TestCheckoutFailureLeavesCartUntouched(t *testing.T) {
	m, _, _ := newManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	require.NoError(t, m.Add(ana, "Pizza", "$8.000", ""))

	_, err := m.Checkout(ana, "DEBITO")
	require.Error(t, err)
	require.Len(t, m.Items(ana), 1)
}

func TestCheckoutRequiresPositiveTotal(t *testing.T) {
	m, _, _ := newManager(t, nil)

	_, err := m.Checkout(ana, "EFECTIVO")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutBlocksReentrantSubmission(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	m, _, _ := newManager(t, func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		w.Write([]byte(`{"id":1}`))
	})
	require.NoError(t, m.Add(ana, "Pizza", "$8.000", ""))

	done := make(chan error, 1)
	go func() {
		_, err := m.Checkout(ana, "EFECTIVO")
		done <- err
	}()

	<-arrived
	_, err := m.Checkout(ana, "EFECTIVO")
	assert.ErrorIs(t, err, ErrCheckoutBusy)

	close(release)
	require.NoError(t, <-done)
}

func TestCorruptCartReadsAsEmpty(t *testing.T) {
	m, _, st := newManager(t, nil)
	st.Put(store.CartKey(ana), "[{broken")

	assert.Empty(t, m.Items(ana))
}
