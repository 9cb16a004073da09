package service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

// Query filters and sorts products without touching the input slice.
// Names are compared with Polish collation, the language of the reference catalog.
func Query(products []model.Product, filter model.CatalogFilter) []model.Product {
	return query(products, filter, language.Polish)
}

func query(products []model.Product, filter model.CatalogFilter, tag language.Tag) []model.Product {
	search := strings.ToLower(filter.Search)

	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(p, search, filter) {
			result = append(result, p)
		}
	}

	switch filter.SortBy {
	case model.SortByPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price)
		})
	case model.SortByPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.GreaterThan(result[j].Price)
		})
	default:
		coll := collate.New(tag)
		sort.SliceStable(result, func(i, j int) bool {
			return coll.CompareString(result[i].Name, result[j].Name) < 0
		})
	}
	return result
}

func matches(p model.Product, lowerSearch string, filter model.CatalogFilter) bool {
	if lowerSearch != "" &&
		!strings.Contains(strings.ToLower(p.Name), lowerSearch) &&
		!strings.Contains(strings.ToLower(p.Description), lowerSearch) {
		return false
	}
	if filter.Category != model.AllCategories && filter.Category != p.Category {
		return false
	}
	return filter.Min.LessThanOrEqual(p.Price) && p.Price.LessThanOrEqual(filter.Max)
}

func (s *store) Products() []model.Product {
	return append([]model.Product(nil), s.products...)
}

// Product looks a product up by id in the current catalog.
func (s *store) Product(id int) (model.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (s *store) QueryCatalog(filter model.CatalogFilter) []model.Product {
	return query(s.products, filter, s.opts.Collation)
}

func (s *store) Featured() []model.Product {
	var featured []model.Product
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// ReplaceCatalog swaps the whole product list. Cart lines keep their own snapshots.
func (s *store) ReplaceCatalog(products []model.Product) {
	s.products = append([]model.Product(nil), products...)
	s.dispatch(model.CatalogReplaced{ProductCount: len(s.products)})
}

func (s *store) DeleteProduct(id int) {
	if _, ok := s.Product(id); !ok {
		return
	}
	remaining := make([]model.Product, 0, len(s.products)-1)
	for _, p := range s.products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	s.ReplaceCatalog(remaining)
}
