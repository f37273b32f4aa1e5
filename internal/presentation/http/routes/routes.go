package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/config"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	domainRepo "github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/handler"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/middleware"
	"github.com/sertaogourmet/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Cashier  *handler.CashierHandler
	Table    *handler.TableHandler
	Menu     *handler.MenuHandler
	Payable  *handler.PayableHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
}

// NewRateLimiter builds the limiter from the RATE_LIMIT_* settings.
func NewRateLimiter(cfg *config.RateLimitConfig) *middleware.ClientRateLimiter {
	return middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		Requests:        cfg.Requests,
		Window:          time.Duration(cfg.Duration) * time.Second,
		CleanupInterval: 5 * time.Minute,
		EntryTTL:        10 * time.Minute,
	})
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = NewRateLimiter(&deps.Cfg.RateLimit)
	}

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		public.Use(limiter.Middleware())
		registerPublicRoutes(public, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(limiter.Middleware())
		registerProtectedRoutes(protected, h, deps)

		admin := protected.Group("")
		admin.Use(middleware.RequireRole(enum.OperatorRoleAdmin.String()))
		registerAdminRoutes(admin, h)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	v1.GET("/menu", h.Menu.PublicMenu)
	v1.GET("/categories", h.Menu.ListCategories)
	v1.GET("/settings/footer", h.Settings.GetFooter)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(deps.IdempotencyRepo)

	protected.GET("/auth/me", h.Auth.Me)

	cashier := protected.Group("/cashier")
	{
		cashier.GET("/current", h.Cashier.Current)
		cashier.POST("/open", h.Cashier.Open)
		cashier.POST("/close", h.Cashier.Close)
		cashier.GET("/sessions", h.Cashier.History)
		cashier.GET("/sessions/:id", h.Cashier.SessionDetail)
		cashier.POST("/expenses", idempotent, h.Cashier.RecordExpense)
		cashier.POST("/manual-entries", idempotent, h.Cashier.RecordManualEntry)
	}

	sales := protected.Group("/sales")
	{
		sales.POST("/quick", idempotent, h.Table.QuickSale)
		sales.GET("/:id", h.Table.GetSale)
	}

	tables := protected.Group("/tables")
	{
		tables.GET("", h.Table.List)
		tables.GET("/:id", h.Table.Get)
		tables.POST("/:id/items", h.Table.AddItem)
		tables.PATCH("/:id/items/:menuItemId", h.Table.AdjustQuantity)
		tables.PUT("/:id/customer", h.Table.SetCustomer)
		tables.POST("/:id/checkout", idempotent, h.Table.Checkout)
	}

	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.GET("/sales/:id/preview", h.Printer.PreviewSale)
		printer.POST("/sales/:id", h.Printer.PrintSale)
		printer.POST("/sessions/:id", h.Printer.PrintSession)
	}
}

func registerAdminRoutes(admin *gin.RouterGroup, h *Handlers) {
	menu := admin.Group("/menu/items")
	{
		menu.GET("", h.Menu.ListItems)
		menu.POST("", h.Menu.CreateItem)
		menu.POST("/enhance-description", h.Menu.EnhanceDescription)
		menu.PUT("/:id", h.Menu.UpdateItem)
		menu.PATCH("/:id/availability", h.Menu.SetAvailability)
		menu.PATCH("/:id/stock", h.Menu.AdjustStock)
	}

	admin.POST("/categories", h.Menu.CreateCategory)
	admin.DELETE("/categories/:id", h.Menu.DeleteCategory)

	admin.DELETE("/cashier/operations/:kind/:id", h.Cashier.DeleteOperation)

	reports := admin.Group("/reports")
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/feed", h.Report.Feed)
		reports.GET("/monthly", h.Report.Monthly)
		reports.GET("/top-products", h.Report.TopProducts)
		reports.GET("/payables-aging", h.Report.PayablesAging)
		reports.GET("/export.xlsx", h.Report.ExportXLSX)
	}

	payables := admin.Group("/payables")
	{
		payables.GET("", h.Payable.List)
		payables.POST("", h.Payable.Create)
		payables.POST("/:id/pay", h.Payable.MarkPaid)
		payables.DELETE("/:id", h.Payable.Delete)
	}

	admin.PUT("/settings/footer", h.Settings.UpdateFooter)

	admin.GET("/operators", h.Auth.ListOperators)
	admin.POST("/operators", h.Auth.CreateOperator)
}
