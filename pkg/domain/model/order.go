package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("order status cannot be changed in its current state")
	ErrUnknownOrderStatus      = errors.New("unknown order status")
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case OrderPending, OrderCompleted, OrderCancelled:
		return status, nil
	}
	return "", ErrUnknownOrderStatus
}

// CanTransitionTo reports whether an administrator may move an order from s to next.
// Only pending orders move, and only to a final state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderPending && (next == OrderCompleted || next == OrderCancelled)
}

type Order struct {
	ID           string          `json:"id"`
	OwnerID      *int            `json:"userId"`
	Lines        []CartLine      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"date"`
	Status       OrderStatus     `json:"status"`
	ContactEmail string          `json:"customerEmail,omitempty"`
}

func (o Order) PlacedByGuest() bool {
	return o.OwnerID == nil
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	clone := o
	clone.Lines = append([]CartLine(nil), o.Lines...)
	if o.OwnerID != nil {
		owner := *o.OwnerID
		clone.OwnerID = &owner
	}
	return clone
}
