package usecase

import (
	"context"
	"errors"
	"time"

	"beautypro/internal/domain/appointment"
	"beautypro/internal/infra"
	"beautypro/internal/pkg/clock"
	"beautypro/internal/pkg/config"
	"beautypro/internal/pkg/errs"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrMasterInactive = errors.New("master is not active")

// BusySlotLister is the read side the availability computation needs: the
// scheduled footprints of one master inside a window.
type BusySlotLister interface {
	ListScheduledSlots(ctx context.Context, masterID uuid.UUID, from, to time.Time) ([]appointment.TimeSlot, error)
}

type AvailabilityQuery struct {
	MasterID  uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time
}

type AvailabilityUseCase interface {
	GetAvailability(ctx context.Context, query AvailabilityQuery) (*readmodel.AvailabilityRM, error)
}

type availabilityUseCaseImpl struct {
	appointmentRepo BusySlotLister
	masterRepo      MasterRepository
	catalogRepo     CatalogRepository
	hours           appointment.WorkingHours
	clock           clock.Clock
}

func NewAvailabilityUseCase(
	appointmentRepo BusySlotLister,
	masterRepo MasterRepository,
	catalogRepo CatalogRepository,
	cfg config.BookingConfig,
	clk clock.Clock,
) (AvailabilityUseCase, error) {
	hours, err := appointment.NewWorkingHours(cfg.WorkStart, cfg.WorkEnd, cfg.SlotStepMin)
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking configuration")
	}

	return &availabilityUseCaseImpl{
		appointmentRepo: appointmentRepo,
		masterRepo:      masterRepo,
		catalogRepo:     catalogRepo,
		hours:           hours,
		clock:           clk,
	}, nil
}

// GetAvailability computes the bookable slots of one master for one service
// on one date: grid candidates inside working hours, minus slots overlapping
// a scheduled appointment, minus slots that already started. A day entirely
// in the past yields an empty list, not an error.
//
// The result is advisory. Booking re-checks atomically, so a slot returned
// here can still be lost to a concurrent client.
func (a *availabilityUseCaseImpl) GetAvailability(ctx context.Context, query AvailabilityQuery) (*readmodel.AvailabilityRM, error) {
	service, err := a.catalogRepo.FindServiceByID(ctx, query.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}

	master, err := a.masterRepo.FindByID(ctx, query.MasterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMasterNotFound
		}
		return nil, errs.Wrap(err, "failed to find master")
	}
	if !master.IsActive {
		return nil, ErrMasterInactive
	}
	if !masterPerforms(master, query.ServiceID) {
		return nil, ErrServiceNotPerformed
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	candidates := a.hours.Candidates(query.Date, duration)

	workStart, workEnd := a.hours.Window(query.Date)
	busy, err := a.appointmentRepo.ListScheduledSlots(ctx, query.MasterID, workStart, workEnd)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list busy slots")
	}

	// single consistent clock read for the whole computation
	now := a.clock.Now()
	free := appointment.AvailableSlots(candidates, busy, now)

	slots := make([]readmodel.SlotRM, 0, len(free))
	for _, s := range free {
		slots = append(slots, readmodel.SlotRM{
			StartsAt: s.Start(),
			EndsAt:   s.End(),
		})
	}

	return &readmodel.AvailabilityRM{
		MasterID:  query.MasterID,
		ServiceID: query.ServiceID,
		Date:      query.Date.Format("2006-01-02"),
		Slots:     slots,
	}, nil
}

func masterPerforms(master *readmodel.MasterRM, serviceID uuid.UUID) bool {
	for _, id := range master.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
