package models

// Dish is a menu entry as served by GET /platos.
type Dish struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio"`
	ImageURI    string  `json:"imageUri,omitempty"`
}

// MenuView is a dish prepared for rendering: price formatted as CLP
// text and image resolved to either the backend URI or bundled art.
type MenuView struct {
	ID          string
	Titulo      string
	Descripcion string
	PrecioTexto string
	Img         string
	Recomendado bool
}
