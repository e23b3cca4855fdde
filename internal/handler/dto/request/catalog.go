package request

import (
	"beautypro/internal/usecase"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name         string    `json:"name" binding:"required"`
	PriceCents   int64     `json:"price_cents" binding:"min=0"`
	DurationMin  int       `json:"duration_min" binding:"required,min=1"`
	ProfessionID uuid.UUID `json:"profession_id" binding:"required"`
}

func (r *CreateServiceRequest) ToCommand() usecase.CreateServiceCommand {
	return usecase.CreateServiceCommand{
		Name:         r.Name,
		PriceCents:   r.PriceCents,
		DurationMin:  r.DurationMin,
		ProfessionID: r.ProfessionID,
	}
}

type UpdateServiceRequest struct {
	Name         *string    `json:"name,omitempty"`
	PriceCents   *int64     `json:"price_cents,omitempty"`
	DurationMin  *int       `json:"duration_min,omitempty"`
	ProfessionID *uuid.UUID `json:"profession_id,omitempty"`
}

func (r *UpdateServiceRequest) ToCommand() usecase.UpdateServiceCommand {
	return usecase.UpdateServiceCommand{
		Name:         r.Name,
		PriceCents:   r.PriceCents,
		DurationMin:  r.DurationMin,
		ProfessionID: r.ProfessionID,
	}
}
