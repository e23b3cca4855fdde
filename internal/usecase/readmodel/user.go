package readmodel

import "github.com/google/uuid"

type AuthorizedUserRM struct {
	ID       uuid.UUID `json:"id"`
	Phone    string    `json:"phone_number"`
	FullName *string   `json:"full_name,omitempty"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
