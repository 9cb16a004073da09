package model

import "errors"

var ErrUnknownRole = errors.New("unknown role")

type Role string

const (
	RoleGuest  Role = "guest"
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch role := Role(s); role {
	case RoleGuest, RoleClient, RoleAdmin:
		return role, nil
	}
	return "", ErrUnknownRole
}

type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

func (i *Identity) IsClient() bool {
	return i != nil && i.Role == RoleClient
}
