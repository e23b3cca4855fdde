package request

import (
	"beautypro/internal/usecase"

	"github.com/google/uuid"
)

type CreateMasterRequest struct {
	FullName     string      `json:"full_name" binding:"required"`
	ProfessionID uuid.UUID   `json:"profession_id" binding:"required"`
	ContactInfo  *string     `json:"contact_info,omitempty"`
	ServiceIDs   []uuid.UUID `json:"service_ids,omitempty"`
}

func (r *CreateMasterRequest) ToCommand() usecase.CreateMasterCommand {
	return usecase.CreateMasterCommand{
		FullName:     r.FullName,
		ProfessionID: r.ProfessionID,
		ContactInfo:  r.ContactInfo,
		ServiceIDs:   r.ServiceIDs,
	}
}

type UpdateMasterRequest struct {
	FullName     *string    `json:"full_name,omitempty"`
	ProfessionID *uuid.UUID `json:"profession_id,omitempty"`
	ContactInfo  *string    `json:"contact_info,omitempty"`
}

func (r *UpdateMasterRequest) ToCommand() usecase.UpdateMasterCommand {
	return usecase.UpdateMasterCommand{
		FullName:     r.FullName,
		ProfessionID: r.ProfessionID,
		ContactInfo:  r.ContactInfo,
	}
}

type AssignServicesRequest struct {
	ServiceIDs []uuid.UUID `json:"service_ids" binding:"required"`
}
