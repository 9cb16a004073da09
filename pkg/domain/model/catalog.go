package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price_asc"
	SortByPriceDesc SortKey = "price_desc"
)

func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(s); key {
	case SortByName, SortByPriceAsc, SortByPriceDesc:
		return key, nil
	}
	return "", ErrUnknownSortKey
}

// CatalogFilter holds the inputs of a catalog query. Min and Max are inclusive.
type CatalogFilter struct {
	Search   string
	Category string
	Min      decimal.Decimal
	Max      decimal.Decimal
	SortBy   SortKey
}

func DefaultCatalogFilter() CatalogFilter {
	return CatalogFilter{
		Category: AllCategories,
		Min:      decimal.Zero,
		Max:      decimal.NewFromInt(10000),
		SortBy:   SortByName,
	}
}
