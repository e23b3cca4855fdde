package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment references exactly one client, one master and one service.
// The slot end is snapshotted from the service duration at booking time, so
// later edits to a service never move the footprint of existing bookings.
// An appointment is never rescheduled in place: that is cancel + new booking.
type Appointment struct {
	id        uuid.UUID
	clientID  uuid.UUID
	masterID  uuid.UUID
	serviceID uuid.UUID
	slot      TimeSlot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewAppointment(clientID, masterID, serviceID uuid.UUID, slot TimeSlot, now time.Time) *Appointment {
	return &Appointment{
		id:        uuid.New(),
		clientID:  clientID,
		masterID:  masterID,
		serviceID: serviceID,
		slot:      slot,
		status:    StatusScheduled,
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(
	id, clientID, masterID, serviceID uuid.UUID,
	slot TimeSlot,
	status Status,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:        id,
		clientID:  clientID,
		masterID:  masterID,
		serviceID: serviceID,
		slot:      slot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// CancelBy transitions scheduled -> canceled on behalf of the owning client.
// Canceling an already-canceled (or completed) appointment fails with
// ErrNotScheduled rather than succeeding silently.
func (a *Appointment) CancelBy(clientID uuid.UUID) error {
	if a.clientID != clientID {
		return ErrNotOwner
	}
	if a.status != StatusScheduled {
		return ErrNotScheduled
	}
	a.status = StatusCanceled
	return nil
}

// Complete is the operational scheduled -> completed transition. It is not
// client-facing; an operator (or a sweep) triggers it.
func (a *Appointment) Complete() error {
	if a.status != StatusScheduled {
		return ErrNotScheduled
	}
	a.status = StatusCompleted
	return nil
}

func (a *Appointment) IsScheduled() bool {
	return a.status == StatusScheduled
}

func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) ClientID() uuid.UUID  { return a.clientID }
func (a *Appointment) MasterID() uuid.UUID  { return a.masterID }
func (a *Appointment) ServiceID() uuid.UUID { return a.serviceID }
func (a *Appointment) Slot() TimeSlot       { return a.slot }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time { return a.updatedAt }
