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
)

var (
	ErrProfessionNotFound = errors.New("profession not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceInUse       = errors.New("service is referenced by appointments")
)

type CatalogRepository interface {
	ListProfessions(ctx context.Context) ([]*readmodel.ProfessionRM, error)
	ListServices(ctx context.Context, professionID *uuid.UUID) ([]*readmodel.ServiceRM, error)
	ListServicesByMaster(ctx context.Context, masterID uuid.UUID) ([]*readmodel.ServiceRM, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error)
	CreateService(ctx context.Context, s *catalog.Service) error
	UpdateService(ctx context.Context, id uuid.UUID, params repository.UpdateServiceParams) (*readmodel.ServiceRM, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type CreateServiceCommand struct {
	Name         string
	PriceCents   int64
	DurationMin  int
	ProfessionID uuid.UUID
}

type UpdateServiceCommand struct {
	Name         *string
	PriceCents   *int64
	DurationMin  *int
	ProfessionID *uuid.UUID
}

type CatalogUseCase interface {
	ListProfessions(ctx context.Context) ([]*readmodel.ProfessionRM, error)
	ListServices(ctx context.Context, professionID *uuid.UUID) ([]*readmodel.ServiceRM, error)
	GetService(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error)
	CreateService(ctx context.Context, cmd CreateServiceCommand) (*readmodel.ServiceRM, error)
	UpdateService(ctx context.Context, id uuid.UUID, cmd UpdateServiceCommand) (*readmodel.ServiceRM, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	catalogRepo CatalogRepository
}

func NewCatalogUseCase(catalogRepo CatalogRepository) CatalogUseCase {
	return &catalogUseCaseImpl{catalogRepo: catalogRepo}
}

func (c *catalogUseCaseImpl) ListProfessions(ctx context.Context) ([]*readmodel.ProfessionRM, error) {
	professions, err := c.catalogRepo.ListProfessions(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list professions")
	}
	return professions, nil
}

func (c *catalogUseCaseImpl) ListServices(ctx context.Context, professionID *uuid.UUID) ([]*readmodel.ServiceRM, error) {
	services, err := c.catalogRepo.ListServices(ctx, professionID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list services")
	}
	return services, nil
}

func (c *catalogUseCaseImpl) GetService(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error) {
	service, err := c.catalogRepo.FindServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}
	return service, nil
}

func (c *catalogUseCaseImpl) CreateService(ctx context.Context, cmd CreateServiceCommand) (*readmodel.ServiceRM, error) {
	service, err := catalog.NewService(cmd.Name, cmd.PriceCents, cmd.DurationMin, cmd.ProfessionID)
	if err != nil {
		return nil, err
	}

	if err := c.catalogRepo.CreateService(ctx, service); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrProfessionNotFound
		}
		return nil, errs.Wrap(err, "failed to create service")
	}

	return c.catalogRepo.FindServiceByID(ctx, service.ID())
}

func (c *catalogUseCaseImpl) UpdateService(ctx context.Context, id uuid.UUID, cmd UpdateServiceCommand) (*readmodel.ServiceRM, error) {
	if cmd.Name != nil || cmd.PriceCents != nil || cmd.DurationMin != nil {
		if err := validateServicePatch(cmd); err != nil {
			return nil, err
		}
	}

	updated, err := c.catalogRepo.UpdateService(ctx, id, repository.UpdateServiceParams{
		Name:         cmd.Name,
		PriceCents:   cmd.PriceCents,
		DurationMin:  cmd.DurationMin,
		ProfessionID: cmd.ProfessionID,
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrServiceNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrProfessionNotFound
		}
		return nil, errs.Wrap(err, "failed to update service")
	}
	return updated, nil
}

// validateServicePatch reuses the entity invariants for partial updates so a
// patch cannot sneak in a value the constructor would reject.
func validateServicePatch(cmd UpdateServiceCommand) error {
	if cmd.Name != nil {
		if _, err := catalog.NewService(*cmd.Name, 0, 1, uuid.Nil); err != nil {
			return err
		}
	}
	if cmd.PriceCents != nil && *cmd.PriceCents < 0 {
		return catalog.ErrNegativePrice
	}
	if cmd.DurationMin != nil && *cmd.DurationMin <= 0 {
		return catalog.ErrInvalidDuration
	}
	return nil
}

func (c *catalogUseCaseImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := c.catalogRepo.DeleteService(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrServiceNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			// appointment history references the service row
			return ErrServiceInUse
		}
		return errs.Wrap(err, "failed to delete service")
	}
	return nil
}
