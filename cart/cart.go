// Package cart owns the per-user shopping cart: mutation, totals and
// checkout against the payment service. Cart lines are identified by
// the dish title and prices travel as CLP display strings, exactly as
// they are rendered on the menu.
package cart

import (
	"errors"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
	"github.com/Franxho892/Gourmet-Express-Frontend/models"
	"github.com/Franxho892/Gourmet-Express-Frontend/notify"
	"github.com/Franxho892/Gourmet-Express-Frontend/store"
)

// ToastAdded is shown briefly after a dish lands in the cart.
const ToastAdded = "Agregado al carrito"

var (
	// ErrEmptyCart rejects a checkout whose total is not positive.
	ErrEmptyCart = errors.New("cart total must be positive")
	// ErrCheckoutBusy rejects re-entrant submission while a payment
	// request is still in flight.
	ErrCheckoutBusy = errors.New("checkout already in progress")
)

// Manager reads and writes carts through the store and publishes
// cart-changed events for the navbar badge.
type Manager struct {
	store    store.Store
	payments *backend.PaymentClient
	bus      *notify.Bus

	paying atomic.Bool
}

func NewManager(st store.Store, payments *backend.PaymentClient, bus *notify.Bus) *Manager {
	return &Manager{store: st, payments: payments, bus: bus}
}

// Items returns the user's cart. Missing or corrupt stored data reads
// as an empty cart.
func (m *Manager) Items(email string) []models.CartItem {
	var items []models.CartItem
	store.GetJSON(m.store, store.CartKey(email), &items)
	return items
}

func (m *Manager) persist(email string, items []models.CartItem) error {
	return store.PutJSON(m.store, store.CartKey(email), items)
}

// Add puts one unit of the dish in the cart: same derived id bumps
// the quantity, otherwise a new line with quantity 1 is appended.
// This is the only mutation that publishes a cart-changed event.
func (m *Manager) Add(email, titulo, precio, img string) error {
	items := m.Items(email)

	id := titulo
	found := false
	for i := range items {
		if items[i].ID == id {
			items[i].Qty++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{ID: id, Titulo: titulo, Precio: precio, Img: img, Qty: 1})
	}

	if err := m.persist(email, items); err != nil {
		return err
	}
	m.bus.Publish(notify.CartChanged{Email: email, Count: Count(items), Total: Total(items)})
	return nil
}

// Increment bumps the line's quantity by one.
func (m *Manager) Increment(email, id string) error {
	items := m.Items(email)
	for i := range items {
		if items[i].ID == id {
			items[i].Qty++
		}
	}
	return m.persist(email, items)
}

// Decrement lowers the line's quantity by one, flooring at 1. The
// line is never removed here; that is what Remove is for.
func (m *Manager) Decrement(email, id string) error {
	items := m.Items(email)
	for i := range items {
		if items[i].ID == id && items[i].Qty > 1 {
			items[i].Qty--
		}
	}
	return m.persist(email, items)
}

// Remove deletes the line. Confirmation happens at the view.
func (m *Manager) Remove(email, id string) error {
	items := m.Items(email)
	next := items[:0]
	for _, it := range items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	return m.persist(email, next)
}

// Clear empties the cart. Confirmation happens at the view.
func (m *Manager) Clear(email string) error {
	return m.persist(email, []models.CartItem{})
}

// Checkout charges the current total with the chosen method. On
// success the cart is cleared and the receipt returned; on failure
// the cart is left untouched. Only one attempt may be in flight at a
// time.
func (m *Manager) Checkout(email, metodo string) (models.PaymentReceipt, error) {
	if !m.paying.CompareAndSwap(false, true) {
		return models.PaymentReceipt{}, ErrCheckoutBusy
	}
	defer m.paying.Store(false)

	items := m.Items(email)
	total := Total(items)
	if total <= 0 {
		return models.PaymentReceipt{}, ErrEmptyCart
	}

	receipt, err := m.payments.Pay(total, metodo)
	if err != nil {
		return models.PaymentReceipt{}, err
	}

	if err := m.Clear(email); err != nil {
		return receipt, err
	}
	return receipt, nil
}

// ParsePrecio turns a CLP display string back into its integer value
// by stripping everything that is not a digit: "$4.500" -> 4500.
// Fractional currencies are out of scope.
func ParsePrecio(precio string) int {
	var b strings.Builder
	for _, r := range precio {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, _ := strconv.Atoi(b.String())
	return n
}

// Count sums quantities over all lines; the navbar badge shows this
// number, not the number of distinct titles.
func Count(items []models.CartItem) int {
	sum := 0
	for _, it := range items {
		sum += it.Qty
	}
	return sum
}

// Total sums unit price times quantity over all lines.
func Total(items []models.CartItem) int {
	sum := 0
	for _, it := range items {
		sum += ParsePrecio(it.Precio) * it.Qty
	}
	return sum
}

// FormatCLP renders an integer amount the way the menu does:
// 8000 -> "$8.000".
func FormatCLP(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.Itoa(n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + "$" + strings.Join(groups, ".")
}
