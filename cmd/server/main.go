package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/UmerAzizGujjar/portfolio/adapters/event"
	httpAdapter "github.com/UmerAzizGujjar/portfolio/adapters/http"
	"github.com/UmerAzizGujjar/portfolio/adapters/media_storage"
	"github.com/UmerAzizGujjar/portfolio/adapters/persistence"
	authUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/auth"
	bioUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/bio"
	contactUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/contact"
	mediaUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/media"
	projectUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/project"
	"github.com/UmerAzizGujjar/portfolio/internal/config"
	"github.com/UmerAzizGujjar/portfolio/pkg/auth"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
	"github.com/UmerAzizGujjar/portfolio/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	if err := persistence.Migrate(dbPool); err != nil {
		appLogger.Fatal("cannot run migrations", err)
	}

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		// The API works without Redis: caching and rate limiting degrade.
		appLogger.Warn("cannot connect Redis, continuing without cache", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	bioRepo := persistence.NewPostgresBioRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	contactRepo := persistence.NewPostgresContactRepo(dbPool)
	contentCache := persistence.NewRedisCache(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	registerUseCase := authUC.NewRegisterUseCase(userRepo, appLogger)
	changePasswordUseCase := authUC.NewChangePasswordUseCase(userRepo, appLogger)
	getProfileUseCase := authUC.NewGetProfileUseCase(userRepo)

	uploadImageUseCase := mediaUC.NewUploadImageUseCase(uploader, appLogger)

	bioUseCase := bioUC.NewBioUseCase(bioRepo, contentCache, appLogger)
	bioUploadImageUseCase := bioUC.NewUploadImageUseCase(bioUseCase, uploadImageUseCase)

	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, uploadImageUseCase, contentCache, appLogger)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, uploadImageUseCase, contentCache, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, contentCache, appLogger)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, contentCache, appLogger)

	submitContactUseCase := contactUC.NewSubmitContactUseCase(contactRepo, kafkaClient, appLogger)
	listContactsUseCase := contactUC.NewListContactsUseCase(contactRepo)
	markReadUseCase := contactUC.NewMarkReadUseCase(contactRepo)
	deleteContactUseCase := contactUC.NewDeleteContactUseCase(contactRepo)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, registerUseCase, changePasswordUseCase, getProfileUseCase)
	bioHandler := httpAdapter.NewBioHandler(bioUseCase, bioUploadImageUseCase)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		getProjectUseCase,
		listProjectsUseCase,
	)
	contactHandler := httpAdapter.NewContactHandler(
		submitContactUseCase,
		listContactsUseCase,
		markReadUseCase,
		deleteContactUseCase,
	)

	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		AuthHandler:    authHandler,
		BioHandler:     bioHandler,
		ProjectHandler: projectHandler,
		ContactHandler: contactHandler,
		JWTService:     jwtSvc,
		Redis:          redisClient,
		Logger:         appLogger,
	})

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
