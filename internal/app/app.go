package app

import (
	"database/sql"
	"fmt"

	"talentboard/internal/config"
	"talentboard/internal/email"
	"talentboard/internal/handlers"
	"talentboard/internal/logger"
	"talentboard/internal/middleware"
	"talentboard/internal/repositories"
	"talentboard/internal/routes"
	"talentboard/internal/services"
	"talentboard/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles services, handlers and middleware into a gin engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	return SetupRouterWithDB(cfg, func() *gorm.DB { return gormDB })
}

// SetupRouterWithDB resolves the DB handle per request. Tests use it to
// route every request through a transaction that is rolled back afterwards.
func SetupRouterWithDB(cfg *config.Config, dbProvider func() *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(dbProvider)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	// Real SMTP only when credentials are configured; mocked otherwise.
	var emailService email.Provider = &MockEmailProvider{}
	if cfg.Email.SMTPUsername != "" {
		smtpProvider, err := email.NewSMTPProvider(cfg)
		if err != nil {
			logger.Warn("SMTP misconfigured, falling back to mock email", "error", err)
		} else {
			emailService = smtpProvider
		}
	}

	companyRepo := repositories.NewCompanyRepository()
	studentRepo := repositories.NewStudentRepository()
	postRepo := repositories.NewPostRepository()
	messageRepo := repositories.NewMessageRepository()

	authService := services.NewAuthService(companyRepo)
	postService := services.NewPostService(postRepo)
	messageService := services.NewMessageService(messageRepo, postRepo, studentRepo, companyRepo, emailService)

	return &services.ServiceContainer{
		AuthService:    authService,
		PostService:    postService,
		MessageService: messageService,
		EmailService:   emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		PostHandler:    handlers.NewPostHandler(baseHandler, services.PostService),
		MessageHandler: handlers.NewMessageHandler(baseHandler, services.MessageService),
	}
}

func initializeGinRouter(dbProvider func() *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(dbProvider))
	return router
}
