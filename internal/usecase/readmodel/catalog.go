package readmodel

import "github.com/google/uuid"

type ProfessionRM struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ServiceRM struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"price_cents"`
	DurationMin  int       `json:"duration_min"`
	ProfessionID uuid.UUID `json:"profession_id"`
}

type MasterRM struct {
	ID             uuid.UUID   `json:"id"`
	FullName       string      `json:"full_name"`
	ProfessionID   uuid.UUID   `json:"profession_id"`
	ProfessionName string      `json:"profession_name"`
	ContactInfo    *string     `json:"contact_info,omitempty"`
	IsActive       bool        `json:"is_active"`
	ServiceIDs     []uuid.UUID `json:"service_ids"`
}
