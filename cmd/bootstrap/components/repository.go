package components

import (
	"fleet-console/internal/infra/readstore"
	repo_impl "fleet-console/internal/infra/repository"
	"fleet-console/internal/usecase/commands"
	"fleet-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewFineRepository,
			fx.As(new(commands.FineRepository)),
		),
		fx.Annotate(
			repo_impl.NewInvoiceRepository,
			fx.As(new(commands.InvoiceRepository)),
		),
		fx.Annotate(
			repo_impl.NewAgencyRepository,
			fx.As(new(commands.AgencyRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(commands.SettingsRepository)),
		),
		fx.Annotate(
			repo_impl.NewOutboxRepository,
			fx.As(new(commands.OutboxRepository)),
		),
		// Concrete fine repository for the scheduler
		repo_impl.NewFineRepository,
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewStore)),
		),
		fx.Annotate(
			readstore.NewFineReadStore,
			fx.As(new(queries.FineViewStore)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceViewStore)),
		),
		fx.Annotate(
			readstore.NewAgencyReadStore,
			fx.As(new(queries.AgencyViewStore)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(queries.SettingsViewStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewStore)),
		),
	),
)
