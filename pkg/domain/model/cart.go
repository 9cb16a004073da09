package model

import "github.com/shopspring/decimal"

// CartLine is a product snapshot plus the quantity in the cart. Quantity is always >= 1.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SumLines returns the sum of price x quantity over lines.
func SumLines(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
