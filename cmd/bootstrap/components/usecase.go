package components

import (
	"booking-wizard/internal/domain/wizard"
	"booking-wizard/internal/pkg/clock"
	"booking-wizard/internal/pkg/config"
	"booking-wizard/internal/usecase/commands"
	"booking-wizard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		wizard.NewDefaultPriceCalculator,
		fx.As(new(wizard.PriceCalculator)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(gateway queries.AvailabilityGateway, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(gateway, cfg.Upstream.Timeout)
		},
		queries.NewSessionQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWizardCommands,
		commands.NewSubmissionCommands,
	),
)
