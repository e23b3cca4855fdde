//go:build unit

package usecase

import (
	"context"
	"time"

	"beautypro/internal/domain/appointment"
	"beautypro/internal/domain/catalog"
	"beautypro/internal/domain/user"
	"beautypro/internal/infra"
	"beautypro/internal/infra/repository"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Function-field fakes for the repository ports. Unset fields mean the test
// does not expect that call.

type fakeUserRepo struct {
	CreateFn      func(ctx context.Context, u *user.User) error
	FindByPhoneFn func(ctx context.Context, phone string) (*readmodel.AuthorizedUserRM, string, error)
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	return f.CreateFn(ctx, u)
}

func (f *fakeUserRepo) FindByPhone(ctx context.Context, phone string) (*readmodel.AuthorizedUserRM, string, error) {
	return f.FindByPhoneFn(ctx, phone)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	return f.FindByIDFn(ctx, id)
}

type fakeMasterRepo struct {
	FindByIDFn func(ctx context.Context, id uuid.UUID) (*readmodel.MasterRM, error)
}

func (f *fakeMasterRepo) Create(context.Context, infra.DBTX, *catalog.Master) error {
	panic("unexpected call to Create")
}

func (f *fakeMasterRepo) ReplaceAssignments(context.Context, infra.DBTX, uuid.UUID, []uuid.UUID) error {
	panic("unexpected call to ReplaceAssignments")
}

func (f *fakeMasterRepo) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.MasterRM, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeMasterRepo) List(context.Context, bool) ([]*readmodel.MasterRM, error) {
	panic("unexpected call to List")
}

func (f *fakeMasterRepo) ListByService(context.Context, uuid.UUID) ([]*readmodel.MasterRM, error) {
	panic("unexpected call to ListByService")
}

func (f *fakeMasterRepo) Update(context.Context, uuid.UUID, repository.UpdateMasterParams) error {
	panic("unexpected call to Update")
}

func (f *fakeMasterRepo) Deactivate(context.Context, uuid.UUID) error {
	panic("unexpected call to Deactivate")
}

type fakeCatalogRepo struct {
	FindServiceByIDFn func(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error)
}

func (f *fakeCatalogRepo) ListProfessions(context.Context) ([]*readmodel.ProfessionRM, error) {
	panic("unexpected call to ListProfessions")
}

func (f *fakeCatalogRepo) ListServices(context.Context, *uuid.UUID) ([]*readmodel.ServiceRM, error) {
	panic("unexpected call to ListServices")
}

func (f *fakeCatalogRepo) ListServicesByMaster(context.Context, uuid.UUID) ([]*readmodel.ServiceRM, error) {
	panic("unexpected call to ListServicesByMaster")
}

func (f *fakeCatalogRepo) FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error) {
	return f.FindServiceByIDFn(ctx, id)
}

func (f *fakeCatalogRepo) CreateService(context.Context, *catalog.Service) error {
	panic("unexpected call to CreateService")
}

func (f *fakeCatalogRepo) UpdateService(context.Context, uuid.UUID, repository.UpdateServiceParams) (*readmodel.ServiceRM, error) {
	panic("unexpected call to UpdateService")
}

func (f *fakeCatalogRepo) DeleteService(context.Context, uuid.UUID) error {
	panic("unexpected call to DeleteService")
}

type fakeAppointmentRepo struct {
	CreateScheduledFn         func(ctx context.Context, tx infra.DBTX, a *appointment.Appointment) error
	FindByIDFn                func(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	FindRMByIDFn              func(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error)
	ListScheduledSlotsFn      func(ctx context.Context, masterID uuid.UUID, from, to time.Time) ([]appointment.TimeSlot, error)
	ListByClientFn            func(ctx context.Context, clientID uuid.UUID, filter repository.ListAppointmentsFilter) ([]*readmodel.AppointmentRM, error)
	UpdateStatusIfScheduledFn func(ctx context.Context, id uuid.UUID, next appointment.Status, now time.Time) error
}

func (f *fakeAppointmentRepo) CreateScheduled(ctx context.Context, tx infra.DBTX, a *appointment.Appointment) error {
	return f.CreateScheduledFn(ctx, tx, a)
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeAppointmentRepo) FindRMByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error) {
	return f.FindRMByIDFn(ctx, id)
}

func (f *fakeAppointmentRepo) ListScheduledSlots(ctx context.Context, masterID uuid.UUID, from, to time.Time) ([]appointment.TimeSlot, error) {
	return f.ListScheduledSlotsFn(ctx, masterID, from, to)
}

func (f *fakeAppointmentRepo) ListByClient(ctx context.Context, clientID uuid.UUID, filter repository.ListAppointmentsFilter) ([]*readmodel.AppointmentRM, error) {
	return f.ListByClientFn(ctx, clientID, filter)
}

func (f *fakeAppointmentRepo) UpdateStatusIfScheduled(ctx context.Context, id uuid.UUID, next appointment.Status, now time.Time) error {
	return f.UpdateStatusIfScheduledFn(ctx, id, next, now)
}
