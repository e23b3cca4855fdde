package user

import "errors"

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrEmptyName    = errors.New("full name is empty")
)

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
