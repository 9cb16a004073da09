package model

import "errors"

var ErrUnknownView = errors.New("unknown view")

type View string

const (
	ViewStore           View = "store"
	ViewCart            View = "cart"
	ViewAdmin           View = "admin"
	ViewProfile         View = "profile"
	ViewCheckoutSuccess View = "checkout-success"
)

func ParseView(s string) (View, error) {
	switch view := View(s); view {
	case ViewStore, ViewCart, ViewAdmin, ViewProfile, ViewCheckoutSuccess:
		return view, nil
	}
	return "", ErrUnknownView
}

// CanAccess reports whether identity may open view. A nil identity is an anonymous visitor.
func CanAccess(identity *Identity, view View) bool {
	switch view {
	case ViewAdmin:
		return identity.IsAdmin()
	case ViewProfile:
		return identity.IsClient()
	default:
		return true
	}
}
