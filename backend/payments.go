package backend

import "github.com/Franxho892/Gourmet-Express-Frontend/models"

// PaymentClient talks to the payment service.
type PaymentClient struct {
	c *Client
}

func NewPaymentClient(baseURL string, token TokenFunc) *PaymentClient {
	return &PaymentClient{c: New(baseURL, token)}
}

type paymentRequest struct {
	Monto      int    `json:"monto"`
	MetodoPago string `json:"metodoPago"`
}

// Pay charges monto (integer CLP) with the chosen method and returns
// the receipt carrying the payment id.
func (p *PaymentClient) Pay(monto int, metodo string) (models.PaymentReceipt, error) {
	var out models.PaymentReceipt
	err := p.c.post("/pagos", paymentRequest{Monto: monto, MetodoPago: metodo}, &out)
	if err != nil {
		return models.PaymentReceipt{}, err
	}
	return out, nil
}
