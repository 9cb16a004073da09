package service

import (
	"github.com/shopspring/decimal"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

func (s *store) Cart() []model.CartLine {
	return append([]model.CartLine(nil), s.cart...)
}

// AddItem puts one more unit of product in the cart, merging with an existing line.
func (s *store) AddItem(product model.Product) {
	if s.opts.RejectOutOfStock && !product.InStock() {
		return
	}

	if i := s.lineIndex(product.ID); i >= 0 {
		if s.opts.MaxLineQuantity > 0 && s.cart[i].Quantity >= s.opts.MaxLineQuantity {
			return
		}
		s.cart[i].Quantity++
		s.dispatch(model.CartItemAdded{ProductID: product.ID, NewQuantity: s.cart[i].Quantity})
		return
	}

	if s.opts.MaxCartLines > 0 && len(s.cart) >= s.opts.MaxCartLines {
		return
	}
	s.cart = append(s.cart, model.CartLine{Product: product, Quantity: 1})
	s.dispatch(model.CartItemAdded{ProductID: product.ID, NewQuantity: 1})
}

func (s *store) RemoveItem(productID int) {
	i := s.lineIndex(productID)
	if i < 0 {
		return
	}
	s.cart = append(s.cart[:i], s.cart[i+1:]...)
	s.dispatch(model.CartItemRemoved{ProductID: productID})
}

// SetQuantity sets an absolute quantity. Non-positive quantities remove the line.
func (s *store) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}
	i := s.lineIndex(productID)
	if i < 0 {
		return
	}
	if s.opts.MaxLineQuantity > 0 && quantity > s.opts.MaxLineQuantity {
		quantity = s.opts.MaxLineQuantity
	}

	old := s.cart[i].Quantity
	if old == quantity {
		return
	}
	s.cart[i].Quantity = quantity
	s.dispatch(model.CartQuantityChanged{ProductID: productID, OldQuantity: old, NewQuantity: quantity})
}

func (s *store) ClearCart() {
	count := len(s.cart)
	s.cart = nil
	s.dispatch(model.CartCleared{LineCount: count})
}

func (s *store) Total() decimal.Decimal {
	return model.SumLines(s.cart)
}

// ItemCount is the number of units in the cart, not the number of lines.
func (s *store) ItemCount() int {
	count := 0
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}

func (s *store) lineIndex(productID int) int {
	for i, line := range s.cart {
		if line.ID == productID {
			return i
		}
	}
	return -1
}
