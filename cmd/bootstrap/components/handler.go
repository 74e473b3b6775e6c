package components

import (
	"fleet-console/internal/handler"
	"fleet-console/internal/handler/api"
	reqdto "fleet-console/internal/handler/dto/request"
	"fleet-console/internal/handler/middleware"
	"fleet-console/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewFineHandler,
		api.NewInvoiceHandler,
		api.NewAgencyHandler,
		api.NewSettingsHandler,
		NewHandlers,
		NewTokenValidator,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		reqdto.RegisterCustomValidators,
		handler.NewRouter,
	),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	fine *api.FineHandler,
	invoice *api.InvoiceHandler,
	agency *api.AgencyHandler,
	settings *api.SettingsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Booking:  booking,
		Fine:     fine,
		Invoice:  invoice,
		Agency:   agency,
		Settings: settings,
	}
}

func NewTokenValidator(authCommands commands.AuthCommands) middleware.TokenValidator {
	return authCommands
}
