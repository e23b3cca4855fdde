package response

import (
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"price_cents"`
	DurationMin  int       `json:"duration_min"`
	ProfessionID uuid.UUID `json:"profession_id"`
}

type MasterResponse struct {
	ID             uuid.UUID   `json:"id"`
	FullName       string      `json:"full_name"`
	ProfessionID   uuid.UUID   `json:"profession_id"`
	ProfessionName string      `json:"profession_name"`
	ContactInfo    *string     `json:"contact_info,omitempty"`
	IsActive       bool        `json:"is_active"`
	ServiceIDs     []uuid.UUID `json:"service_ids"`
}

func FromServiceRM(rm *readmodel.ServiceRM) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromServiceRMs(rms []*readmodel.ServiceRM) []*ServiceResponse {
	resp := make([]*ServiceResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromServiceRM(rm)
	}
	return resp
}

func FromMasterRM(rm *readmodel.MasterRM) *MasterResponse {
	var resp MasterResponse
	_ = copier.Copy(&resp, rm)
	if resp.ServiceIDs == nil {
		resp.ServiceIDs = []uuid.UUID{}
	}
	return &resp
}

func FromMasterRMs(rms []*readmodel.MasterRM) []*MasterResponse {
	resp := make([]*MasterResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromMasterRM(rm)
	}
	return resp
}
