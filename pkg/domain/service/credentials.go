package service

import (
	"crypto/subtle"
	"errors"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialChecker decides whether, and with which role, a login may happen.
type CredentialChecker interface {
	Check(username, password string) (model.Role, error)
}

type Credential struct {
	Password string
	Role     model.Role
}

// StaticCredentials is a fixed username lookup table. It is a demo gate, not a security system.
type StaticCredentials map[string]Credential

func DefaultCredentials() StaticCredentials {
	return StaticCredentials{
		"admin": {Password: "admin", Role: model.RoleAdmin},
		"demo":  {Password: "demo", Role: model.RoleClient},
	}
}

func (c StaticCredentials) Check(username, password string) (model.Role, error) {
	cred, ok := c[username]
	if !ok || subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) != 1 {
		return "", ErrInvalidCredentials
	}
	return cred.Role, nil
}
