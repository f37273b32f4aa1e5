package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/application/service"
	"github.com/sertaogourmet/pos-api/internal/config"
	"github.com/sertaogourmet/pos-api/internal/domain/ledger"
	domainRepo "github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/internal/infrastructure/database"
	"github.com/sertaogourmet/pos-api/internal/infrastructure/repository"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/handler"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/routes"
	"github.com/sertaogourmet/pos-api/pkg/email"
	"github.com/sertaogourmet/pos-api/pkg/enhancer"
	"github.com/sertaogourmet/pos-api/pkg/printer"
	"github.com/sertaogourmet/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Open(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.Seed(db, database.SeedOptions{
		TableCount:    cfg.Store.TableCount,
		AdminUsername: cfg.Seed.AdminUsername,
		AdminPassword: cfg.Seed.AdminPassword,
	}); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	operatorRepo := repository.NewOperatorRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tableRepo := repository.NewTableRepository(db)
	sessionRepo := repository.NewCashierSessionRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	payableRepo := repository.NewPayableRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Description enhancer falls back to a no-op without an API key
	var enh enhancer.Enhancer = enhancer.Noop{}
	if cfg.Enhancer.APIKey != "" {
		gemini, err := enhancer.NewGemini(context.Background(), cfg.Enhancer.APIKey, cfg.Enhancer.Model, cfg.Store.Name, cfg.Enhancer.Timeout)
		if err != nil {
			log.Printf("Warning: Gemini unavailable, descriptions will not be enhanced: %v", err)
		} else {
			defer gemini.Close()
			enh = gemini
		}
	}

	// Close reports are mailed only when SMTP is configured
	var mailer email.Sender
	if m := email.NewMailer(email.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}); m != nil {
		mailer = m
	}

	// Initialize services
	thresholds := ledger.Thresholds{
		WarningPct:  cfg.Cashier.VarianceWarningPct,
		CriticalPct: cfg.Cashier.VarianceCriticalPct,
	}
	cashierService := service.NewCashierService(sessionRepo, saleRepo, expenseRepo, menuRepo, thresholds).
		WithCloseReport(mailer, cfg.Mail.ReportTo, cfg.Store.Name)
	tableService := service.NewTableService(tableRepo, menuRepo, cashierService)
	menuService := service.NewMenuService(menuRepo, categoryRepo, enh)
	payableService := service.NewPayableService(payableRepo, cashierService)
	reportService := service.NewReportService(saleRepo, expenseRepo, payableRepo, cfg.Store.Location())
	settingsService := service.NewSettingsService(settingsRepo)
	authService := service.NewAuthService(operatorRepo, jwtManager)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:      cfg.Printer.Type,
		USBPath:   cfg.Printer.USBPath,
		Address:   cfg.Printer.Address,
		CharWidth: cfg.Printer.CharWidth,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter, _ = printer.New(printer.Config{Type: "none"})
	}
	printerService := service.NewPrinterService(thermalPrinter, cashierService, settingsService,
		cfg.Store.Name, cfg.Store.CurrencySymbol, cfg.Printer.CharWidth)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Cashier:  handler.NewCashierHandler(cashierService),
		Table:    handler.NewTableHandler(tableService, cashierService),
		Menu:     handler.NewMenuHandler(menuService),
		Payable:  handler.NewPayableHandler(payableService),
		Report:   handler.NewReportHandler(reportService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go purgeIdempotencyKeys(ctx, idempotencyRepo, time.Hour)

	// Setup routes
	limiter := routes.NewRateLimiter(&cfg.RateLimit)
	defer limiter.Stop()
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     limiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s | Database: %s | Printer: %s", cfg.App.Env, cfg.Database.Driver, thermalPrinter.Type())

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Server stopped")
}

// purgeIdempotencyKeys drops expired replay entries on a fixed interval.
func purgeIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.Printf("Warning: idempotency cleanup failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Removed %d expired idempotency keys", n)
			}
		}
	}
}
