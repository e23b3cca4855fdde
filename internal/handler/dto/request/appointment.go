package request

import (
	"time"

	"beautypro/internal/usecase"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	MasterID  uuid.UUID `json:"master_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
}

func (r *CreateAppointmentRequest) ToCommand() usecase.CreateBookingCommand {
	return usecase.CreateBookingCommand{
		MasterID:  r.MasterID,
		ServiceID: r.ServiceID,
		StartsAt:  r.StartsAt,
	}
}
