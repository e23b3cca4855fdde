package response

import (
	"time"

	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"client_id"`
	MasterID    uuid.UUID `json:"master_id"`
	MasterName  string    `json:"master_name"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SlotResponse struct {
	Start    string    `json:"start"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

type AvailabilityResponse struct {
	MasterID  uuid.UUID      `json:"master_id"`
	ServiceID uuid.UUID      `json:"service_id"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

func FromAppointmentRM(rm *readmodel.AppointmentRM) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAppointmentRMs(rms []*readmodel.AppointmentRM) []*AppointmentResponse {
	resp := make([]*AppointmentResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromAppointmentRM(rm)
	}
	return resp
}

func FromAvailabilityRM(rm *readmodel.AvailabilityRM) *AvailabilityResponse {
	slots := make([]SlotResponse, len(rm.Slots))
	for i, s := range rm.Slots {
		slots[i] = SlotResponse{
			Start:    s.StartsAt.Format("15:04"),
			StartsAt: s.StartsAt,
			EndsAt:   s.EndsAt,
		}
	}
	return &AvailabilityResponse{
		MasterID:  rm.MasterID,
		ServiceID: rm.ServiceID,
		Date:      rm.Date,
		Slots:     slots,
	}
}
