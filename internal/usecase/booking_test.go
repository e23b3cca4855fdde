//go:build unit

package usecase

import (
	"context"
	"testing"
	"time"

	"beautypro/internal/domain/appointment"
	"beautypro/internal/infra"
	"beautypro/internal/infra/repository"
	"beautypro/internal/pkg/clock"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	clientID  uuid.UUID
	masterID  uuid.UUID
	serviceID uuid.UUID

	clientActive   bool
	masterActive   bool
	masterPerforms bool
	userErr        error

	appointmentRepo *fakeAppointmentRepo
}

func newBookingFixture() *bookingFixture {
	return &bookingFixture{
		clientID:        uuid.New(),
		masterID:        uuid.New(),
		serviceID:       uuid.New(),
		clientActive:    true,
		masterActive:    true,
		masterPerforms:  true,
		appointmentRepo: &fakeAppointmentRepo{},
	}
}

// build wires a booking usecase over fakes. The pool is nil: tests exercise
// the precondition and status-transition paths, which never reach it. The
// insert path itself is covered end to end against a real database.
func (f *bookingFixture) build(t *testing.T, now time.Time) BookingUseCase {
	t.Helper()

	userRepo := &fakeUserRepo{
		FindByIDFn: func(_ context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
			require.Equal(t, f.clientID, id)
			if f.userErr != nil {
				return nil, f.userErr
			}
			return &readmodel.AuthorizedUserRM{ID: f.clientID, Role: "client", IsActive: f.clientActive}, nil
		},
	}
	masterRepo := &fakeMasterRepo{
		FindByIDFn: func(_ context.Context, id uuid.UUID) (*readmodel.MasterRM, error) {
			require.Equal(t, f.masterID, id)
			serviceIDs := []uuid.UUID{}
			if f.masterPerforms {
				serviceIDs = append(serviceIDs, f.serviceID)
			}
			return &readmodel.MasterRM{ID: f.masterID, IsActive: f.masterActive, ServiceIDs: serviceIDs}, nil
		},
	}
	catalogRepo := &fakeCatalogRepo{
		FindServiceByIDFn: func(_ context.Context, id uuid.UUID) (*readmodel.ServiceRM, error) {
			require.Equal(t, f.serviceID, id)
			return &readmodel.ServiceRM{ID: f.serviceID, Name: "Haircut", DurationMin: 60}, nil
		},
	}

	uc, err := NewBookingUseCase(f.appointmentRepo, masterRepo, catalogRepo, userRepo, testBookingCfg, nil, clock.NewMockClock(now))
	require.NoError(t, err)
	return uc
}

func TestCreateBookingPreconditions(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	validStart := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		prepare  func(f *bookingFixture)
		startsAt time.Time
		errIs    error
	}{
		{
			name: "unknown client",
			prepare: func(f *bookingFixture) {
				f.userErr = infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
			},
			startsAt: validStart,
			errIs:    ErrUserNotFound,
		},
		{
			name:     "inactive client",
			prepare:  func(f *bookingFixture) { f.clientActive = false },
			startsAt: validStart,
			errIs:    ErrUserInactive,
		},
		{
			name:     "inactive master",
			prepare:  func(f *bookingFixture) { f.masterActive = false },
			startsAt: validStart,
			errIs:    ErrMasterInactive,
		},
		{
			name:     "service not in master's set",
			prepare:  func(f *bookingFixture) { f.masterPerforms = false },
			startsAt: validStart,
			errIs:    ErrServiceNotPerformed,
		},
		{
			name:     "start before opening",
			startsAt: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			errIs:    ErrOutsideWorkingHours,
		},
		{
			name:     "footprint would run past closing",
			startsAt: time.Date(2025, 3, 10, 19, 30, 0, 0, time.UTC),
			errIs:    ErrOutsideWorkingHours,
		},
		{
			name:     "start off the half-hour grid",
			startsAt: time.Date(2025, 3, 10, 10, 15, 0, 0, time.UTC),
			errIs:    ErrSlotNotOnGrid,
		},
		{
			name:     "start in the past",
			startsAt: time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC),
			errIs:    ErrSlotInPast,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture()
			if tc.prepare != nil {
				tc.prepare(f)
			}
			uc := f.build(t, now)

			_, err := uc.CreateBooking(context.Background(), f.clientID, CreateBookingCommand{
				MasterID:  f.masterID,
				ServiceID: f.serviceID,
				StartsAt:  tc.startsAt,
			})
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("client lookup store failure is not a not-found", func(t *testing.T) {
		f := newBookingFixture()
		f.userErr = infra.WrapRepoErr("connection refused", nil, infra.KindDBFailure)
		uc := f.build(t, now)

		_, err := uc.CreateBooking(context.Background(), f.clientID, CreateBookingCommand{
			MasterID:  f.masterID,
			ServiceID: f.serviceID,
			StartsAt:  validStart,
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func scheduledAppointment(t *testing.T, clientID uuid.UUID) *appointment.Appointment {
	t.Helper()
	slot, err := appointment.NewTimeSlot(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), time.Hour)
	require.NoError(t, err)
	return appointment.Reconstruct(
		uuid.New(), clientID, uuid.New(), uuid.New(),
		slot, appointment.StatusScheduled,
		time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
	)
}

func TestCancelBooking(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("owner cancels and the guarded update runs", func(t *testing.T) {
		f := newBookingFixture()
		appt := scheduledAppointment(t, f.clientID)

		var updatedTo appointment.Status
		f.appointmentRepo.FindByIDFn = func(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
			require.Equal(t, appt.ID(), id)
			return appt, nil
		}
		f.appointmentRepo.UpdateStatusIfScheduledFn = func(_ context.Context, id uuid.UUID, next appointment.Status, _ time.Time) error {
			require.Equal(t, appt.ID(), id)
			updatedTo = next
			return nil
		}
		f.appointmentRepo.FindRMByIDFn = func(_ context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error) {
			return &readmodel.AppointmentRM{ID: id, Status: "canceled"}, nil
		}

		uc := f.build(t, now)
		got, err := uc.CancelBooking(context.Background(), f.clientID, appt.ID())
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusCanceled, updatedTo)
		assert.Equal(t, "canceled", got.Status)
	})

	t.Run("other client is rejected", func(t *testing.T) {
		f := newBookingFixture()
		appt := scheduledAppointment(t, uuid.New())

		f.appointmentRepo.FindByIDFn = func(context.Context, uuid.UUID) (*appointment.Appointment, error) {
			return appt, nil
		}

		uc := f.build(t, now)
		_, err := uc.CancelBooking(context.Background(), f.clientID, appt.ID())
		assert.ErrorIs(t, err, ErrNotAppointmentOwner)
	})

	t.Run("second cancel is rejected, not silently accepted", func(t *testing.T) {
		f := newBookingFixture()
		appt := scheduledAppointment(t, f.clientID)
		require.NoError(t, appt.CancelBy(f.clientID))

		f.appointmentRepo.FindByIDFn = func(context.Context, uuid.UUID) (*appointment.Appointment, error) {
			return appt, nil
		}

		uc := f.build(t, now)
		_, err := uc.CancelBooking(context.Background(), f.clientID, appt.ID())
		assert.ErrorIs(t, err, ErrAppointmentFinalized)
	})

	t.Run("losing the status race maps to finalized", func(t *testing.T) {
		f := newBookingFixture()
		appt := scheduledAppointment(t, f.clientID)

		f.appointmentRepo.FindByIDFn = func(context.Context, uuid.UUID) (*appointment.Appointment, error) {
			return appt, nil
		}
		f.appointmentRepo.UpdateStatusIfScheduledFn = func(context.Context, uuid.UUID, appointment.Status, time.Time) error {
			return infra.WrapRepoErr("appointment is not scheduled", nil, infra.KindConflict)
		}

		uc := f.build(t, now)
		_, err := uc.CancelBooking(context.Background(), f.clientID, appt.ID())
		assert.ErrorIs(t, err, ErrAppointmentFinalized)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		f := newBookingFixture()
		f.appointmentRepo.FindByIDFn = func(context.Context, uuid.UUID) (*appointment.Appointment, error) {
			return nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
		}

		uc := f.build(t, now)
		_, err := uc.CancelBooking(context.Background(), f.clientID, uuid.New())
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCompleteAppointment(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("scheduled appointment completes", func(t *testing.T) {
		f := newBookingFixture()
		appt := scheduledAppointment(t, f.clientID)

		var updatedTo appointment.Status
		f.appointmentRepo.FindByIDFn = func(context.Context, uuid.UUID) (*appointment.Appointment, error) {
			return appt, nil
		}
		f.appointmentRepo.UpdateStatusIfScheduledFn = func(_ context.Context, _ uuid.UUID, next appointment.Status, _ time.Time) error {
			updatedTo = next
			return nil
		}
		f.appointmentRepo.FindRMByIDFn = func(_ context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error) {
			return &readmodel.AppointmentRM{ID: id, Status: "completed"}, nil
		}

		uc := f.build(t, now)
		got, err := uc.CompleteAppointment(context.Background(), appt.ID())
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusCompleted, updatedTo)
		assert.Equal(t, "completed", got.Status)
	})

	t.Run("canceled appointment cannot complete", func(t *testing.T) {
		f := newBookingFixture()
		appt := scheduledAppointment(t, f.clientID)
		require.NoError(t, appt.CancelBy(f.clientID))

		f.appointmentRepo.FindByIDFn = func(context.Context, uuid.UUID) (*appointment.Appointment, error) {
			return appt, nil
		}

		uc := f.build(t, now)
		_, err := uc.CompleteAppointment(context.Background(), appt.ID())
		assert.ErrorIs(t, err, ErrAppointmentFinalized)
	})
}

func TestListClientAppointments(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	f := newBookingFixture()
	scheduled := appointment.StatusScheduled
	f.appointmentRepo.ListByClientFn = func(_ context.Context, clientID uuid.UUID, filter repository.ListAppointmentsFilter) ([]*readmodel.AppointmentRM, error) {
		require.Equal(t, f.clientID, clientID)
		require.NotNil(t, filter.Status)
		assert.Equal(t, scheduled, *filter.Status)
		assert.True(t, filter.UpcomingOnly)
		assert.Equal(t, now, filter.Now)
		return []*readmodel.AppointmentRM{{ID: uuid.New(), Status: "scheduled"}}, nil
	}

	uc := f.build(t, now)
	got, err := uc.ListClientAppointments(context.Background(), f.clientID, ListAppointmentsQuery{
		Status:       &scheduled,
		UpcomingOnly: true,
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
