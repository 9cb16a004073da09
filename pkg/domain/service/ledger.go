package service

import (
	"fmt"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

// PlaceOrder turns the cart into a pending order at the head of the ledger, clears the cart and
// switches to the confirmation view. guestEmail is used only when nobody is logged in.
// An empty cart places nothing and returns nil. Repeated calls are not deduplicated.
func (s *store) PlaceOrder(guestEmail string) *model.Order {
	if len(s.cart) == 0 {
		return nil
	}

	now := s.opts.Clock().UTC()
	lines := append([]model.CartLine(nil), s.cart...)
	order := model.Order{
		ID:           s.nextOrderID(now.UnixMilli()),
		Lines:        lines,
		Total:        model.SumLines(lines),
		CreatedAt:    now,
		Status:       model.OrderPending,
		ContactEmail: guestEmail,
	}
	if s.identity != nil {
		ownerID := s.identity.ID
		order.OwnerID = &ownerID
		order.ContactEmail = s.identity.Email
	}

	s.orders = append([]model.Order{order}, s.orders...)
	s.dispatch(model.OrderPlaced{OrderID: order.ID, OwnerID: order.OwnerID, Total: order.Total})

	s.ClearCart()
	s.SetView(model.ViewCheckoutSuccess)

	placed := order.Clone()
	return &placed
}

// Orders returns the ledger, newest first.
func (s *store) Orders() []model.Order {
	orders := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o.Clone())
	}
	return orders
}

func (s *store) OrdersFor(ownerID int) []model.Order {
	var orders []model.Order
	for _, o := range s.orders {
		if o.OwnerID != nil && *o.OwnerID == ownerID {
			orders = append(orders, o.Clone())
		}
	}
	return orders
}

// SetOrderStatus is the administrative status change. Lines and total never change.
func (s *store) SetOrderStatus(orderID string, status model.OrderStatus) error {
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		old := s.orders[i].Status
		if !old.CanTransitionTo(status) {
			return model.ErrInvalidStatusTransition
		}
		s.orders[i].Status = status
		s.dispatch(model.OrderStatusChanged{OrderID: orderID, OldStatus: old, NewStatus: status})
		return nil
	}
	return model.ErrOrderNotFound
}

// nextOrderID derives the id from the clock, bumping it when two orders share a millisecond.
func (s *store) nextOrderID(millis int64) string {
	if millis <= s.lastOrderMillis {
		millis = s.lastOrderMillis + 1
	}
	s.lastOrderMillis = millis
	return fmt.Sprintf("ORD-%d", millis)
}
