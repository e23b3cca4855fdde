package usecase

import (
	"context"
	"errors"

	"beautypro/internal/domain/catalog"
	"beautypro/internal/infra"
	"beautypro/internal/infra/repository"
	"beautypro/internal/pkg/errs"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrMasterNotFound     = errors.New("master not found")
	ErrUnknownService     = errors.New("unknown service in assignment")
	ErrProfessionMismatch = errors.New("service belongs to another profession")
)

type MasterRepository interface {
	Create(ctx context.Context, tx infra.DBTX, m *catalog.Master) error
	ReplaceAssignments(ctx context.Context, tx infra.DBTX, masterID uuid.UUID, serviceIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.MasterRM, error)
	List(ctx context.Context, activeOnly bool) ([]*readmodel.MasterRM, error)
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]*readmodel.MasterRM, error)
	Update(ctx context.Context, id uuid.UUID, params repository.UpdateMasterParams) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type CreateMasterCommand struct {
	FullName     string
	ProfessionID uuid.UUID
	ContactInfo  *string
	ServiceIDs   []uuid.UUID
}

type UpdateMasterCommand struct {
	FullName     *string
	ProfessionID *uuid.UUID
	ContactInfo  *string
}

type MasterUseCase interface {
	CreateMaster(ctx context.Context, cmd CreateMasterCommand) (*readmodel.MasterRM, error)
	GetMaster(ctx context.Context, id uuid.UUID) (*readmodel.MasterRM, error)
	ListMasters(ctx context.Context, activeOnly bool) ([]*readmodel.MasterRM, error)
	ListMastersByService(ctx context.Context, serviceID uuid.UUID) ([]*readmodel.MasterRM, error)
	UpdateMaster(ctx context.Context, id uuid.UUID, cmd UpdateMasterCommand) (*readmodel.MasterRM, error)
	AssignServices(ctx context.Context, masterID uuid.UUID, serviceIDs []uuid.UUID) (*readmodel.MasterRM, error)
	DeactivateMaster(ctx context.Context, id uuid.UUID) error
}

type masterUseCaseImpl struct {
	masterRepo  MasterRepository
	catalogRepo CatalogRepository
	db          *pgxpool.Pool
}

func NewMasterUseCase(masterRepo MasterRepository, catalogRepo CatalogRepository, db *pgxpool.Pool) MasterUseCase {
	return &masterUseCaseImpl{
		masterRepo:  masterRepo,
		catalogRepo: catalogRepo,
		db:          db,
	}
}

func (m *masterUseCaseImpl) CreateMaster(ctx context.Context, cmd CreateMasterCommand) (*readmodel.MasterRM, error) {
	if err := m.validateAssignment(ctx, cmd.ProfessionID, cmd.ServiceIDs); err != nil {
		return nil, err
	}

	master, err := catalog.NewMaster(cmd.FullName, cmd.ProfessionID, cmd.ContactInfo, cmd.ServiceIDs)
	if err != nil {
		return nil, err
	}

	_, err = infra.RunInTx(ctx, m.db, func(tx infra.DBTX) (struct{}, error) {
		return struct{}{}, m.masterRepo.Create(ctx, tx, master)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrProfessionNotFound
		}
		return nil, errs.Wrap(err, "failed to create master")
	}

	return m.masterRepo.FindByID(ctx, master.ID())
}

// validateAssignment checks every service exists and matches the master's
// profession. A nail technician cannot be assigned a haircut.
func (m *masterUseCaseImpl) validateAssignment(ctx context.Context, professionID uuid.UUID, serviceIDs []uuid.UUID) error {
	for _, serviceID := range serviceIDs {
		service, err := m.catalogRepo.FindServiceByID(ctx, serviceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUnknownService
			}
			return errs.Wrap(err, "failed to find service")
		}
		if service.ProfessionID != professionID {
			return ErrProfessionMismatch
		}
	}
	return nil
}

func (m *masterUseCaseImpl) GetMaster(ctx context.Context, id uuid.UUID) (*readmodel.MasterRM, error) {
	master, err := m.masterRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMasterNotFound
		}
		return nil, errs.Wrap(err, "failed to find master")
	}
	return master, nil
}

func (m *masterUseCaseImpl) ListMasters(ctx context.Context, activeOnly bool) ([]*readmodel.MasterRM, error) {
	masters, err := m.masterRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list masters")
	}
	return masters, nil
}

func (m *masterUseCaseImpl) ListMastersByService(ctx context.Context, serviceID uuid.UUID) ([]*readmodel.MasterRM, error) {
	if _, err := m.catalogRepo.FindServiceByID(ctx, serviceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}

	masters, err := m.masterRepo.ListByService(ctx, serviceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list masters by service")
	}
	return masters, nil
}

func (m *masterUseCaseImpl) UpdateMaster(ctx context.Context, id uuid.UUID, cmd UpdateMasterCommand) (*readmodel.MasterRM, error) {
	err := m.masterRepo.Update(ctx, id, repository.UpdateMasterParams{
		FullName:     cmd.FullName,
		ProfessionID: cmd.ProfessionID,
		ContactInfo:  cmd.ContactInfo,
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrMasterNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrProfessionNotFound
		}
		return nil, errs.Wrap(err, "failed to update master")
	}

	return m.masterRepo.FindByID(ctx, id)
}

func (m *masterUseCaseImpl) AssignServices(ctx context.Context, masterID uuid.UUID, serviceIDs []uuid.UUID) (*readmodel.MasterRM, error) {
	master, err := m.masterRepo.FindByID(ctx, masterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMasterNotFound
		}
		return nil, errs.Wrap(err, "failed to find master")
	}

	if err := m.validateAssignment(ctx, master.ProfessionID, serviceIDs); err != nil {
		return nil, err
	}

	_, err = infra.RunInTx(ctx, m.db, func(tx infra.DBTX) (struct{}, error) {
		return struct{}{}, m.masterRepo.ReplaceAssignments(ctx, tx, masterID, serviceIDs)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to assign services")
	}

	return m.masterRepo.FindByID(ctx, masterID)
}

func (m *masterUseCaseImpl) DeactivateMaster(ctx context.Context, id uuid.UUID) error {
	if err := m.masterRepo.Deactivate(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMasterNotFound
		}
		return errs.Wrap(err, "failed to deactivate master")
	}
	return nil
}
