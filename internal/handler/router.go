package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fleet-console/internal/domain/user"
	"fleet-console/internal/handler/api"
	"fleet-console/internal/handler/middleware"
	"fleet-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Fine     *api.FineHandler
	Invoice  *api.InvoiceHandler
	Agency   *api.AgencyHandler
	Settings *api.SettingsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operatorOnly := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/password-reset", Handler: h.Auth.RequestPasswordReset},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Booking.ListPayments},
				{Method: http.MethodGet, Path: "/:id/fines", Handler: h.Booking.ListFines},
				{Method: http.MethodGet, Path: "/:id/financial-summary", Handler: h.Booking.GetFinancialSummary},
				{Method: http.MethodPost, Path: "/preview-duration", Handler: h.Booking.PreviewDuration},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.CancelBooking, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodPost, Path: "/:id/deliver", Handler: h.Booking.MarkBookingDelivered, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodPost, Path: "/:id/close", Handler: h.Booking.CloseBooking, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: h.Booking.RecordPayment, Mw: []gin.HandlerFunc{operatorOnly}},
			})
		}

		fines := apiGroup.Group("/fines")
		fines.Use(authMiddleware.RequireAuth())
		{
			addRoutes(fines, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Fine.ListFines},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Fine.GetFine},
				{Method: http.MethodPost, Path: "", Handler: h.Fine.RegisterFine, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodPost, Path: "/:id/recharge", Handler: h.Fine.MarkFineRecharged, Mw: []gin.HandlerFunc{operatorOnly}},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Invoice.ListInvoices},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Invoice.GetInvoice},
				{Method: http.MethodPost, Path: "", Handler: h.Invoice.IssueInvoice, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodPost, Path: "/:id/void", Handler: h.Invoice.VoidInvoice, Mw: []gin.HandlerFunc{operatorOnly}},
			})
		}

		agencies := apiGroup.Group("/agencies")
		agencies.Use(authMiddleware.RequireAuth())
		{
			addRoutes(agencies, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Agency.ListAgencies},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Agency.GetAgency},
				{Method: http.MethodPost, Path: "", Handler: h.Agency.CreateAgency, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Agency.UpdateAgency, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		settings := apiGroup.Group("/settings")
		settings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settings.GetSettings},
				{Method: http.MethodPatch, Path: "", Handler: h.Settings.UpdateSettings, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
