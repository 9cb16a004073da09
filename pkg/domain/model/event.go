package model

import "github.com/shopspring/decimal"

type CatalogReplaced struct {
	ProductCount int
}

func (e CatalogReplaced) Type() string { return "CatalogReplaced" }

type CartItemAdded struct {
	ProductID   int
	NewQuantity int
}

func (e CartItemAdded) Type() string { return "CartItemAdded" }

type CartItemRemoved struct {
	ProductID int
}

func (e CartItemRemoved) Type() string { return "CartItemRemoved" }

type CartQuantityChanged struct {
	ProductID   int
	OldQuantity int
	NewQuantity int
}

func (e CartQuantityChanged) Type() string { return "CartQuantityChanged" }

type CartCleared struct {
	LineCount int
}

func (e CartCleared) Type() string { return "CartCleared" }

type UserLoggedIn struct {
	UserID   int
	Username string
	Role     Role
}

func (e UserLoggedIn) Type() string { return "UserLoggedIn" }

type UserLoggedOut struct {
	UserID int
}

func (e UserLoggedOut) Type() string { return "UserLoggedOut" }

type ViewChanged struct {
	OldView View
	NewView View
}

func (e ViewChanged) Type() string { return "ViewChanged" }

type OrderPlaced struct {
	OrderID string
	OwnerID *int
	Total   decimal.Decimal
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type OrderStatusChanged struct {
	OrderID   string
	OldStatus OrderStatus
	NewStatus OrderStatus
}

func (e OrderStatusChanged) Type() string { return "OrderStatusChanged" }
