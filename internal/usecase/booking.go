package usecase

import (
	"context"
	"errors"
	"time"

	"beautypro/internal/domain/appointment"
	"beautypro/internal/infra"
	"beautypro/internal/infra/repository"
	"beautypro/internal/pkg/clock"
	"beautypro/internal/pkg/config"
	"beautypro/internal/pkg/errs"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrServiceNotPerformed  = errors.New("master does not perform this service")
	ErrOutsideWorkingHours  = errors.New("slot is outside working hours")
	ErrSlotNotOnGrid        = errors.New("slot start is not aligned to the booking grid")
	ErrSlotInPast           = errors.New("slot start is in the past")
	ErrBookingConflict      = errors.New("time slot already booked")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrNotAppointmentOwner  = errors.New("appointment belongs to another client")
	ErrAppointmentFinalized = errors.New("appointment is already canceled or completed")
)

type AppointmentRepository interface {
	CreateScheduled(ctx context.Context, tx infra.DBTX, a *appointment.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	FindRMByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error)
	ListScheduledSlots(ctx context.Context, masterID uuid.UUID, from, to time.Time) ([]appointment.TimeSlot, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, filter repository.ListAppointmentsFilter) ([]*readmodel.AppointmentRM, error)
	UpdateStatusIfScheduled(ctx context.Context, id uuid.UUID, next appointment.Status, now time.Time) error
}

type CreateBookingCommand struct {
	MasterID  uuid.UUID
	ServiceID uuid.UUID
	StartsAt  time.Time
}

type ListAppointmentsQuery struct {
	Status       *appointment.Status
	UpcomingOnly bool
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, clientID uuid.UUID, cmd CreateBookingCommand) (*readmodel.AppointmentRM, error)
	CancelBooking(ctx context.Context, clientID, appointmentID uuid.UUID) (*readmodel.AppointmentRM, error)
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*readmodel.AppointmentRM, error)
	ListClientAppointments(ctx context.Context, clientID uuid.UUID, query ListAppointmentsQuery) ([]*readmodel.AppointmentRM, error)
}

type bookingUseCaseImpl struct {
	appointmentRepo AppointmentRepository
	masterRepo      MasterRepository
	catalogRepo     CatalogRepository
	userRepo        UserRepository
	hours           appointment.WorkingHours
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewBookingUseCase(
	appointmentRepo AppointmentRepository,
	masterRepo MasterRepository,
	catalogRepo CatalogRepository,
	userRepo UserRepository,
	cfg config.BookingConfig,
	db *pgxpool.Pool,
	clk clock.Clock,
) (BookingUseCase, error) {
	hours, err := appointment.NewWorkingHours(cfg.WorkStart, cfg.WorkEnd, cfg.SlotStepMin)
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking configuration")
	}

	return &bookingUseCaseImpl{
		appointmentRepo: appointmentRepo,
		masterRepo:      masterRepo,
		catalogRepo:     catalogRepo,
		userRepo:        userRepo,
		hours:           hours,
		db:              db,
		clock:           clk,
	}, nil
}

// CreateBooking validates preconditions in a fixed order (client, master,
// service, assignment, slot), then inserts the appointment inside a
// transaction. There is deliberately no availability pre-check: the
// exclusion constraint is the only conflict authority, so two racing
// requests for the same slot cannot both be accepted.
func (b *bookingUseCaseImpl) CreateBooking(ctx context.Context, clientID uuid.UUID, cmd CreateBookingCommand) (*readmodel.AppointmentRM, error) {
	client, err := b.userRepo.FindByID(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find client")
	}
	if !client.IsActive {
		return nil, ErrUserInactive
	}

	master, err := b.masterRepo.FindByID(ctx, cmd.MasterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMasterNotFound
		}
		return nil, errs.Wrap(err, "failed to find master")
	}
	if !master.IsActive {
		return nil, ErrMasterInactive
	}

	service, err := b.catalogRepo.FindServiceByID(ctx, cmd.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}

	if !masterPerforms(master, cmd.ServiceID) {
		return nil, ErrServiceNotPerformed
	}

	now := b.clock.Now()
	slot, err := b.validateSlot(cmd.StartsAt, time.Duration(service.DurationMin)*time.Minute, now)
	if err != nil {
		return nil, err
	}

	newAppointment := appointment.NewAppointment(clientID, cmd.MasterID, cmd.ServiceID, slot, now)

	_, err = infra.RunInTx(ctx, b.db, func(tx infra.DBTX) (struct{}, error) {
		return struct{}{}, b.appointmentRepo.CreateScheduled(ctx, tx, newAppointment)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Wrap(err, "failed to create appointment")
	}

	return b.appointmentRepo.FindRMByID(ctx, newAppointment.ID())
}

// validateSlot snapshots the service duration into a concrete footprint and
// checks it against the grid: inside working hours, aligned to a candidate
// start, and strictly in the future.
func (b *bookingUseCaseImpl) validateSlot(startsAt time.Time, duration time.Duration, now time.Time) (appointment.TimeSlot, error) {
	slot, err := appointment.NewTimeSlot(startsAt, duration)
	if err != nil {
		return appointment.TimeSlot{}, err
	}

	if !b.hours.Contains(slot) {
		return appointment.TimeSlot{}, ErrOutsideWorkingHours
	}
	if !b.hours.OnGrid(startsAt) {
		return appointment.TimeSlot{}, ErrSlotNotOnGrid
	}
	if !startsAt.After(now) {
		return appointment.TimeSlot{}, ErrSlotInPast
	}

	return slot, nil
}

// CancelBooking is client-initiated and ownership-checked. The final status
// write is guarded on the row still being scheduled, so a cancel racing with
// a complete (or a second cancel) fails instead of double-transitioning.
func (b *bookingUseCaseImpl) CancelBooking(ctx context.Context, clientID, appointmentID uuid.UUID) (*readmodel.AppointmentRM, error) {
	appt, err := b.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Wrap(err, "failed to find appointment")
	}

	if err := appt.CancelBy(clientID); err != nil {
		switch {
		case errors.Is(err, appointment.ErrNotOwner):
			return nil, ErrNotAppointmentOwner
		case errors.Is(err, appointment.ErrNotScheduled):
			return nil, ErrAppointmentFinalized
		}
		return nil, err
	}

	if err := b.appointmentRepo.UpdateStatusIfScheduled(ctx, appointmentID, appointment.StatusCanceled, b.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrAppointmentFinalized
		}
		return nil, errs.Wrap(err, "failed to cancel appointment")
	}

	return b.appointmentRepo.FindRMByID(ctx, appointmentID)
}

// CompleteAppointment is the operator-side scheduled -> completed transition.
func (b *bookingUseCaseImpl) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*readmodel.AppointmentRM, error) {
	appt, err := b.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Wrap(err, "failed to find appointment")
	}

	if err := appt.Complete(); err != nil {
		return nil, ErrAppointmentFinalized
	}

	if err := b.appointmentRepo.UpdateStatusIfScheduled(ctx, appointmentID, appointment.StatusCompleted, b.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrAppointmentFinalized
		}
		return nil, errs.Wrap(err, "failed to complete appointment")
	}

	return b.appointmentRepo.FindRMByID(ctx, appointmentID)
}

func (b *bookingUseCaseImpl) ListClientAppointments(ctx context.Context, clientID uuid.UUID, query ListAppointmentsQuery) ([]*readmodel.AppointmentRM, error) {
	appointments, err := b.appointmentRepo.ListByClient(ctx, clientID, repository.ListAppointmentsFilter{
		Status:       query.Status,
		UpcomingOnly: query.UpcomingOnly,
		Now:          b.clock.Now(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to list appointments")
	}
	return appointments, nil
}
