package components

import (
	"beautypro/internal/pkg/clock"
	"beautypro/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
		usecase.NewCatalogUseCase,
		usecase.NewMasterUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
	),
)
