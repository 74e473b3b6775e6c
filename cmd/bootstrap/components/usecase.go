package components

import (
	"fleet-console/internal/domain/booking"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/usecase/commands"
	"fleet-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewFineCommands,
		commands.NewInvoiceCommands,
		commands.NewAgencyCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewFineQueries,
		queries.NewInvoiceQueries,
		queries.NewAgencyQueries,
		queries.NewSettingsQueries,
		queries.NewUserQueries,
	),
)
