//go:build unit

package usecase

import (
	"context"
	"testing"
	"time"

	"beautypro/internal/domain/appointment"
	"beautypro/internal/infra"
	"beautypro/internal/pkg/clock"
	"beautypro/internal/pkg/config"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBookingCfg = config.BookingConfig{
	WorkStart:   "09:00",
	WorkEnd:     "20:00",
	SlotStepMin: 30,
}

type availabilityFixture struct {
	masterID  uuid.UUID
	serviceID uuid.UUID
	date      time.Time
	busy      []appointment.TimeSlot

	masterActive   bool
	masterPerforms bool
}

func newAvailabilityFixture() *availabilityFixture {
	return &availabilityFixture{
		masterID:       uuid.New(),
		serviceID:      uuid.New(),
		date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		masterActive:   true,
		masterPerforms: true,
	}
}

func (f *availabilityFixture) build(t *testing.T, now time.Time) AvailabilityUseCase {
	t.Helper()

	masterRepo := &fakeMasterRepo{
		FindByIDFn: func(_ context.Context, id uuid.UUID) (*readmodel.MasterRM, error) {
			require.Equal(t, f.masterID, id)
			serviceIDs := []uuid.UUID{}
			if f.masterPerforms {
				serviceIDs = append(serviceIDs, f.serviceID)
			}
			return &readmodel.MasterRM{
				ID:         f.masterID,
				FullName:   "Olga Ivanova",
				IsActive:   f.masterActive,
				ServiceIDs: serviceIDs,
			}, nil
		},
	}
	catalogRepo := &fakeCatalogRepo{
		FindServiceByIDFn: func(_ context.Context, id uuid.UUID) (*readmodel.ServiceRM, error) {
			require.Equal(t, f.serviceID, id)
			return &readmodel.ServiceRM{ID: f.serviceID, Name: "Haircut", DurationMin: 60}, nil
		},
	}
	appointmentRepo := &fakeAppointmentRepo{
		ListScheduledSlotsFn: func(_ context.Context, masterID uuid.UUID, from, to time.Time) ([]appointment.TimeSlot, error) {
			require.Equal(t, f.masterID, masterID)
			require.True(t, from.Before(to))
			return f.busy, nil
		},
	}

	uc, err := NewAvailabilityUseCase(appointmentRepo, masterRepo, catalogRepo, testBookingCfg, clock.NewMockClock(now))
	require.NoError(t, err)
	return uc
}

func (f *availabilityFixture) query() AvailabilityQuery {
	return AvailabilityQuery{MasterID: f.masterID, ServiceID: f.serviceID, Date: f.date}
}

func TestGetAvailability(t *testing.T) {
	dayBefore := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

	t.Run("free day yields the full 21-slot grid", func(t *testing.T) {
		f := newAvailabilityFixture()
		uc := f.build(t, dayBefore)

		got, err := uc.GetAvailability(context.Background(), f.query())
		require.NoError(t, err)
		require.Len(t, got.Slots, 21)
		assert.Equal(t, "2025-03-10", got.Date)
		assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), got.Slots[0].StartsAt)
		assert.Equal(t, time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC), got.Slots[20].StartsAt)
		assert.Equal(t, time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC), got.Slots[20].EndsAt)
	})

	t.Run("booked hour shadows overlapping starts", func(t *testing.T) {
		f := newAvailabilityFixture()
		f.busy = []appointment.TimeSlot{appointment.SlotBetween(
			time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
		)}
		uc := f.build(t, dayBefore)

		got, err := uc.GetAvailability(context.Background(), f.query())
		require.NoError(t, err)
		require.Len(t, got.Slots, 18)

		startSet := make(map[time.Time]bool)
		for _, s := range got.Slots {
			startSet[s.StartsAt] = true
		}
		assert.True(t, startSet[time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)])
		assert.True(t, startSet[time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)])
		assert.False(t, startSet[time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)])
		assert.False(t, startSet[time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)])
		assert.False(t, startSet[time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)])
	})

	t.Run("past day yields empty list, not error", func(t *testing.T) {
		f := newAvailabilityFixture()
		uc := f.build(t, time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC))

		got, err := uc.GetAvailability(context.Background(), f.query())
		require.NoError(t, err)
		assert.Empty(t, got.Slots)
	})

	t.Run("late in the day only future slots remain", func(t *testing.T) {
		f := newAvailabilityFixture()
		uc := f.build(t, time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC))

		got, err := uc.GetAvailability(context.Background(), f.query())
		require.NoError(t, err)
		require.Len(t, got.Slots, 1)
		assert.Equal(t, time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC), got.Slots[0].StartsAt)
	})

	t.Run("inactive master is rejected", func(t *testing.T) {
		f := newAvailabilityFixture()
		f.masterActive = false
		uc := f.build(t, dayBefore)

		_, err := uc.GetAvailability(context.Background(), f.query())
		assert.ErrorIs(t, err, ErrMasterInactive)
	})

	t.Run("service outside the master's set is rejected", func(t *testing.T) {
		f := newAvailabilityFixture()
		f.masterPerforms = false
		uc := f.build(t, dayBefore)

		_, err := uc.GetAvailability(context.Background(), f.query())
		assert.ErrorIs(t, err, ErrServiceNotPerformed)
	})

	t.Run("unknown service maps to ErrServiceNotFound", func(t *testing.T) {
		f := newAvailabilityFixture()
		catalogRepo := &fakeCatalogRepo{
			FindServiceByIDFn: func(context.Context, uuid.UUID) (*readmodel.ServiceRM, error) {
				return nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
			},
		}
		uc, err := NewAvailabilityUseCase(&fakeAppointmentRepo{}, &fakeMasterRepo{}, catalogRepo, testBookingCfg, clock.NewMockClock(dayBefore))
		require.NoError(t, err)

		_, err = uc.GetAvailability(context.Background(), f.query())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}
