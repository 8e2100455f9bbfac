package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tarokatalog_backend/database"
	"tarokatalog_backend/internal/auth"
	"tarokatalog_backend/internal/config"
	"tarokatalog_backend/internal/email"
	"tarokatalog_backend/internal/handlers"
	"tarokatalog_backend/internal/logger"
	"tarokatalog_backend/internal/middleware"
	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/internal/repositories"
	"tarokatalog_backend/internal/routes"
	"tarokatalog_backend/internal/services"
	"tarokatalog_backend/internal/storage"
	"tarokatalog_backend/internal/validator"
	"tarokatalog_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	// Фоновая очистка просроченных кодов
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	codeWorker := workers.NewCodeWorker(
		gormDB,
		repositories.NewReviewCodeRepository(),
		time.Duration(cfg.Codes.SweepInterval)*time.Hour,
	)
	codeWorker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	// Файлы локального storage раздает сам сервер; для s3/r2 отдачу
	// берет на себя провайдер по base_url.
	if cfg.Storage.Type == "local" {
		prefix := "/uploads"
		if strings.HasPrefix(cfg.Storage.BaseURL, "/") {
			prefix = cfg.Storage.BaseURL
		}
		basePath := cfg.Storage.BasePath
		if basePath == "" {
			basePath = "./uploads"
		}
		ginRouter.Static(prefix, basePath)
	}

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" && cfg.Server.Env == "production" {
		renderer := email.NewTemplateManager()
		if cfg.Email.TemplatesDir != "" {
			if err := renderer.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
				logger.Warn("Failed to load email templates", "error", err)
			}
		}
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
		}, renderer)
	} else {
		logger.Warn("SMTP is not configured, using mock email provider")
		emailProvider = &MockEmailProvider{}
	}

	adminRepo := repositories.NewAdminUserRepository()
	tarologistRepo := repositories.NewTarologistRepository()
	serviceRepo := repositories.NewServiceRepository()
	codeRepo := repositories.NewReviewCodeRepository()
	reviewRepo := repositories.NewReviewRepository()

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(adminRepo),
		CatalogService:    services.NewCatalogService(tarologistRepo, reviewRepo),
		TarologistService: services.NewTarologistService(tarologistRepo, serviceRepo),
		ReviewCodeService: services.NewReviewCodeService(codeRepo, tarologistRepo),
		ReviewService:     services.NewReviewService(reviewRepo, codeRepo, tarologistRepo, emailProvider),
		StatsService:      services.NewStatsService(tarologistRepo, reviewRepo, codeRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, container.AuthService),
		CatalogHandler:    handlers.NewCatalogHandler(baseHandler, container.CatalogService),
		TarologistHandler: handlers.NewTarologistHandler(baseHandler, container.TarologistService),
		CodeHandler:       handlers.NewCodeHandler(baseHandler, container.ReviewCodeService),
		ReviewHandler:     handlers.NewReviewHandler(baseHandler, container.ReviewService),
		StatsHandler:      handlers.NewStatsHandler(baseHandler, container.StatsService),
		UploadHandler:     handlers.NewUploadHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin создает первого администратора из конфигурации,
// если таблица admin_users пуста или такого email еще нет
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("Admin email or password is not configured. Skipping admin seeding.")
		return nil
	}

	var existing models.AdminUser
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.AdminUser{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.AdminRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
