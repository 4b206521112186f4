package app

import (
	"errors"
	"fmt"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/database"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/auth"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/config"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/email"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/handlers"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/logger"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/middleware"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/remoteauth"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/repositories"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/routes"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin
// engine. Split from Run so handler tests can build a full router
// against a test database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(cfg, serviceContainer)
	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("No SMTP host configured, outgoing email disabled")
		emailProvider = email.NoopProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	sessionRepo := repositories.NewSessionRepository(gormDB)
	quoteRepo := repositories.NewQuoteRepository(gormDB)
	invoiceRepo := repositories.NewInvoiceRepository(gormDB)
	reservationRepo := repositories.NewReservationRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	chatRepo := repositories.NewChatRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, sessionRepo, emailProvider),
		QuoteService:        services.NewQuoteService(quoteRepo),
		InvoiceService:      services.NewInvoiceService(invoiceRepo),
		ReservationService:  services.NewReservationService(reservationRepo),
		NotificationService: services.NewNotificationService(notificationRepo),
		CatalogService:      services.NewCatalogService(),
		ChatService:         services.NewChatService(chatRepo),
		EmailService:        emailProvider,
	}
}

func initializeHandlers(cfg *config.Config, sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	// The chat routes swap their auth source in proxied deployments:
	// session cookies are resolved by the main backend, not locally.
	chatAuthMW := middleware.AuthMiddleware(sc.AuthService)
	if cfg.RemoteAuth.Enabled {
		logger.Info("Remote auth enabled for chat routes", "base_url", cfg.RemoteAuth.BaseURL)
		client := remoteauth.NewClient(cfg.RemoteAuth.BaseURL, cfg.RemoteAuth.Timeout)
		chatAuthMW = middleware.RemoteAuthMiddleware(client)
	}

	secureCookies := cfg.Server.Env == "production"

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, sc.AuthService, secureCookies),
		QuoteHandler:        handlers.NewQuoteHandler(baseHandler, sc.QuoteService, sc.AuthService),
		InvoiceHandler:      handlers.NewInvoiceHandler(baseHandler, sc.InvoiceService, sc.AuthService),
		ReservationHandler:  handlers.NewReservationHandler(baseHandler, sc.ReservationService, sc.AuthService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, sc.NotificationService, sc.AuthService),
		ServiceHandler:      handlers.NewServiceHandler(baseHandler, sc.CatalogService),
		ChatHandler:         handlers.NewChatHandler(baseHandler, sc.ChatService, chatAuthMW),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Name:         cfg.Admin.Name,
		AuthProvider: models.AuthProviderEmail,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
