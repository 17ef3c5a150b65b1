package entities

// Medicine is a catalogue entry as listed by GET /medicines
type Medicine struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Price                float64  `json:"price"`
	DiscountedPrice      *float64 `json:"discounted_price,omitempty"`
	Category             string   `json:"category"`
	Brand                string   `json:"brand"`
	PrescriptionRequired bool     `json:"prescription_required"`
	Stock                int      `json:"stock"`
	Image                string   `json:"image"`
}

// InStock reports whether the medicine can be added to a cart
func (m Medicine) InStock() bool {
	return m.Stock > 0
}

// Cart is an ordered, purely local list of medicines. It is never submitted.
type Cart struct {
	Items []Medicine `json:"items"`
}

// Add appends m to the end of the cart
func (c *Cart) Add(m Medicine) {
	c.Items = append(c.Items, m)
}

// Len returns the number of entries
func (c Cart) Len() int {
	return len(c.Items)
}

// Total sums the effective price of every entry
func (c Cart) Total() float64 {
	var total float64
	for _, m := range c.Items {
		if m.DiscountedPrice != nil {
			total += *m.DiscountedPrice
			continue
		}
		total += m.Price
	}
	return total
}
