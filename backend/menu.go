package backend

import "github.com/Franxho892/Gourmet-Express-Frontend/models"

// MenuClient reads the dish catalog from the menu service.
type MenuClient struct {
	c *Client
}

func NewMenuClient(baseURL string, token TokenFunc) *MenuClient {
	return &MenuClient{c: New(baseURL, token)}
}

// Dishes fetches the full menu.
func (m *MenuClient) Dishes() ([]models.Dish, error) {
	var out []models.Dish
	if err := m.c.get("/platos", &out); err != nil {
		return nil, err
	}
	return out, nil
}
