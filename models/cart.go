package models

// CartItem is one cart line as persisted under "gourmet_cart:<email>".
// ID is derived from the dish title, not a backend identifier, so two
// dishes rendering the same title collapse into one line. Precio is
// the locale-formatted display string ("$4.500"), kept as text and
// parsed back to an integer only when totals are computed.
type CartItem struct {
	ID     string `json:"id"`
	Titulo string `json:"titulo"`
	Precio string `json:"precio"`
	Img    string `json:"img"`
	Qty    int    `json:"qty"`
}

// Payment methods offered at checkout.
var PaymentMethods = []string{"EFECTIVO", "DEBITO", "CREDITO", "TRANSFERENCIA"}

// PaymentReceipt is the payment service's answer to POST /pagos.
type PaymentReceipt struct {
	ID int64 `json:"id"`
}
