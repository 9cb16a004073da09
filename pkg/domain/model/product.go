package model

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidProduct = errors.New("invalid product")

// AllCategories selects every category in a catalog query.
const AllCategories = "ALL"

var Categories = []string{"Laptopy", "Smartfony", "Akcesoria", "Monitory", "Podzespoły"}

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"isFeatured,omitempty"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidateCatalog checks that ids are unique, categories come from Categories, and that
// neither price nor stock is negative.
func ValidateCatalog(products []Product) error {
	seen := make(map[int]bool, len(products))
	for _, p := range products {
		if seen[p.ID] {
			return errors.Wrapf(ErrInvalidProduct, "duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
		if !IsKnownCategory(p.Category) {
			return errors.Wrapf(ErrInvalidProduct, "product %d has unknown category %q", p.ID, p.Category)
		}
		if p.Price.IsNegative() {
			return errors.Wrapf(ErrInvalidProduct, "product %d has a negative price", p.ID)
		}
		if p.Stock < 0 {
			return errors.Wrapf(ErrInvalidProduct, "product %d has negative stock", p.ID)
		}
	}
	return nil
}
