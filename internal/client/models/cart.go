package models

// CartLine is one product in the cart. It copies the orchid's display fields
// at the time of adding, plus the chosen quantity. At most one line exists
// per product id; the "id" JSON key matches the product id the line was
// created from, so a serialized cart round-trips unchanged.
type CartLine struct {
	ProductID   int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Price       float64 `json:"price"`
	IsNatural   bool    `json:"isNatural"`
	IsAvailable bool    `json:"isAvailable"`
	Quantity    int     `json:"quantity"`
}

// NewCartLine copies the orchid's display fields into a fresh line.
func NewCartLine(o Orchid, quantity int) CartLine {
	return CartLine{
		ProductID:   o.ID,
		Name:        o.Name,
		Description: o.Description,
		URL:         o.URL,
		Price:       o.Price,
		IsNatural:   o.IsNatural,
		IsAvailable: o.IsAvailable,
		Quantity:    quantity,
	}
}

// Subtotal is the line's price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
