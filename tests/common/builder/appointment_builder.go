//go:build unit || e2e

package builder

import (
	"time"

	"beautypro/internal/domain/appointment"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	MasterID    uuid.UUID
	MasterName  string
	ServiceID   uuid.UUID
	ServiceName string
	StartsAt    time.Time
	Duration    time.Duration
	Status      appointment.Status
	CreatedAt   time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	starts := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		MasterID:    uuid.New(),
		MasterName:  "Anna Petrova",
		ServiceID:   uuid.New(),
		ServiceName: "Women's Haircut",
		StartsAt:    starts,
		Duration:    time.Hour,
		Status:      appointment.StatusScheduled,
		CreatedAt:   starts.Add(-24 * time.Hour),
	}
}

func (a *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	slot, err := appointment.NewTimeSlot(a.StartsAt, a.Duration)
	if err != nil {
		return nil, err
	}
	return appointment.Reconstruct(a.ID, a.ClientID, a.MasterID, a.ServiceID, slot, a.Status, a.CreatedAt, a.CreatedAt), nil
}

func (a *AppointmentBuilder) BuildReadModel() *readmodel.AppointmentRM {
	return &readmodel.AppointmentRM{
		ID:          a.ID,
		ClientID:    a.ClientID,
		MasterID:    a.MasterID,
		MasterName:  a.MasterName,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		StartsAt:    a.StartsAt,
		EndsAt:      a.StartsAt.Add(a.Duration),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

func (a *AppointmentBuilder) WithClient(clientID uuid.UUID) *AppointmentBuilder {
	a.ClientID = clientID
	return a
}

func (a *AppointmentBuilder) WithMaster(masterID uuid.UUID) *AppointmentBuilder {
	a.MasterID = masterID
	return a
}

func (a *AppointmentBuilder) WithService(serviceID uuid.UUID) *AppointmentBuilder {
	a.ServiceID = serviceID
	return a
}

func (a *AppointmentBuilder) StartingAt(t time.Time) *AppointmentBuilder {
	a.StartsAt = t
	return a
}

func (a *AppointmentBuilder) WithStatus(status appointment.Status) *AppointmentBuilder {
	a.Status = status
	return a
}
