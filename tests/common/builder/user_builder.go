//go:build unit || e2e

package builder

import (
	"beautypro/internal/domain/user"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Phone        string
	PasswordHash string
	FullName     string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Phone:        "+15550001111",
		PasswordHash: "hashed_password",
		FullName:     "Test Client",
		Role:         "client",
		IsActive:     true,
	}
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(phone, u.PasswordHash, u.FullName, role)
}

func (u *UserBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	fullName := u.FullName
	return &readmodel.AuthorizedUserRM{
		ID:       u.ID,
		Phone:    u.Phone,
		FullName: &fullName,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
