package menuControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Franxho892/Gourmet-Express-Frontend/backend"
	"github.com/Franxho892/Gourmet-Express-Frontend/cart"
	"github.com/Franxho892/Gourmet-Express-Frontend/models"
	"github.com/Franxho892/Gourmet-Express-Frontend/session"
)

// Bundled art rotated over dishes whose imageUri is missing or not an
// absolute URL.
var defaultImages = []string{
	"/static/img/hamburguesa.jpg",
	"/static/img/papas.jpg",
	"/static/img/completo.jpg",
	"/static/img/sandwich_pollo.jpg",
	"/static/img/pizza.jpg",
	"/static/img/cesar.jpg",
	"/static/img/pollo.jpg",
	"/static/img/empanadas.jpg",
}

const defaultDescription = "Un delicioso plato de nuestro menú Gourmet Express."

// GET /menu
func Menu(s *session.Manager, menu *backend.MenuClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, logged := s.Current()

		dishes, err := menu.Dishes()
		if err != nil {
			c.HTML(http.StatusOK, "menu.html", gin.H{
				"User":   user,
				"Logged": logged,
				"Error":  "No se pudieron cargar los platos. Intenta más tarde.",
			})
			return
		}

		views := make([]models.MenuView, 0, len(dishes))
		for i, d := range dishes {
			img := defaultImages[i%len(defaultImages)]
			if strings.HasPrefix(d.ImageURI, "http") {
				img = d.ImageURI
			}
			titulo := d.Nombre
			if titulo == "" {
				titulo = "Plato " + strconv.Itoa(i+1)
			}
			desc := d.Descripcion
			if desc == "" {
				desc = defaultDescription
			}
			views = append(views, models.MenuView{
				ID:          strconv.FormatInt(d.ID, 10),
				Titulo:      titulo,
				Descripcion: desc,
				PrecioTexto: cart.FormatCLP(int(d.Precio)),
				Img:         img,
				Recomendado: i%4 == 0,
			})
		}

		c.HTML(http.StatusOK, "menu.html", gin.H{
			"User":   user,
			"Logged": logged,
			"Platos": views,
		})
	}
}
