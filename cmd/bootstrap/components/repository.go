package components

import (
	"beautypro/internal/infra/repository"
	"beautypro/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(usecase.CatalogRepository)),
		),
		fx.Annotate(
			repository.NewMasterRepository,
			fx.As(new(usecase.MasterRepository)),
		),
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(usecase.AppointmentRepository)),
			fx.As(new(usecase.BusySlotLister)),
		),
	),
)
