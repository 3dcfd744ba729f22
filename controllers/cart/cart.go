package cartControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Franxho892/Gourmet-Express-Frontend/cart"
	"github.com/Franxho892/Gourmet-Express-Frontend/models"
)

// MsgUpdateFailed is shown on the cart page when a mutation could not
// be persisted.
const MsgUpdateFailed = "No se pudo actualizar el carrito."

// AddItemInput is what the menu page script posts when a dish is
// added to the cart.
type AddItemInput struct {
	Titulo string `json:"titulo" binding:"required"`
	Precio string `json:"precio" binding:"required"`
	Img    string `json:"img"`
}

type lineView struct {
	models.CartItem
	Subtotal string
}

func currentUser(c *gin.Context) models.Session {
	return c.MustGet("user").(models.Session)
}

func renderCart(c *gin.Context, m *cart.Manager, user models.Session, mensaje string) {
	items := m.Items(user.Email)
	lines := make([]lineView, 0, len(items))
	for _, it := range items {
		lines = append(lines, lineView{
			CartItem: it,
			Subtotal: cart.FormatCLP(cart.ParsePrecio(it.Precio) * it.Qty),
		})
	}
	c.HTML(http.StatusOK, "cart.html", gin.H{
		"User":      user,
		"Logged":    true,
		"Items":     lines,
		"Total":     cart.FormatCLP(cart.Total(items)),
		"TotalCero": cart.Total(items) <= 0,
		"Metodos":   models.PaymentMethods,
		"Mensaje":   mensaje,
	})
}

// GET /carrito
func CartPage(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderCart(c, m, currentUser(c), "")
	}
}

// POST /api/cart/items — called from the menu page; answers with the
// toast text plus the new badge numbers.
func AddItem(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := m.Add(user.Email, input.Titulo, input.Precio, input.Img); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo agregar al carrito"})
			return
		}

		items := m.Items(user.Email)
		c.JSON(http.StatusOK, gin.H{
			"message": cart.ToastAdded,
			"count":   cart.Count(items),
			"total":   cart.Total(items),
		})
	}
}

// POST /carrito/incrementar
func Increment(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if err := m.Increment(user.Email, c.PostForm("id")); err != nil {
			renderCart(c, m, user, MsgUpdateFailed)
			return
		}
		c.Redirect(http.StatusFound, "/carrito")
	}
}

// POST /carrito/disminuir
func Decrement(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if err := m.Decrement(user.Email, c.PostForm("id")); err != nil {
			renderCart(c, m, user, MsgUpdateFailed)
			return
		}
		c.Redirect(http.StatusFound, "/carrito")
	}
}

// POST /carrito/eliminar — the page asks for confirmation first.
func Remove(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if err := m.Remove(user.Email, c.PostForm("id")); err != nil {
			renderCart(c, m, user, MsgUpdateFailed)
			return
		}
		c.Redirect(http.StatusFound, "/carrito")
	}
}

// POST /carrito/vaciar — the page asks for confirmation first.
func Clear(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if err := m.Clear(user.Email); err != nil {
			renderCart(c, m, user, MsgUpdateFailed)
			return
		}
		c.Redirect(http.StatusFound, "/carrito")
	}
}

// POST /carrito/pagar
func Checkout(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		metodo := c.DefaultPostForm("metodoPago", "EFECTIVO")

		receipt, err := m.Checkout(user.Email, metodo)
		if err != nil {
			renderCart(c, m, user, "Error al procesar el pago.")
			return
		}
		renderCart(c, m, user, fmt.Sprintf("Pago realizado. ID: %d", receipt.ID))
	}
}
