package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	httphandlers "github.com/salem59915-web/rex-backend/internal/handlers/http"
	"github.com/salem59915-web/rex-backend/internal/handlers/middleware"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/config"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/i18n"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/logging"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/persistence/postgres"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/storage"
	"github.com/salem59915-web/rex-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting rex backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// A failed connection does not abort startup: the public catalog
	// endpoints keep serving empty lists until the database comes back.
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("database unavailable, continuing in degraded mode", "error", err)
		db = nil
	}

	if db != nil {
		if err := postgres.RunMigrations(db, logger); err != nil {
			logger.Error("failed to run migrations", "error", err)
			log.Fatal(err)
		}
	}

	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	var objectStorage *storage.SupabaseStorage
	if cfg.Storage.URL != "" && cfg.Storage.ServiceKey != "" {
		objectStorage = storage.NewSupabaseStorage(cfg.Storage.URL, cfg.Storage.ServiceKey, cfg.Storage.Bucket)
	} else {
		logger.Warn("object storage not configured, uploads disabled")
	}

	// Repositories
	modelRepo := postgres.NewModelRepository(db)
	creatorRepo := postgres.NewContentCreatorRepository(db)
	videoRepo := postgres.NewVideoProductionRepository(db)
	voiceRepo := postgres.NewVoiceArtistRepository(db)
	writingRepo := postgres.NewContentWritingRepository(db)
	bannerRepo := postgres.NewBannerRepository(db)
	requestRepo := postgres.NewServiceRequestRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Services
	modelsService := services.NewModelsService(modelRepo, logger)
	creatorsService := services.NewContentCreatorsService(creatorRepo, logger)
	videosService := services.NewVideoProductionsService(videoRepo, logger)
	voicesService := services.NewVoiceArtistsService(voiceRepo, logger)
	writingService := services.NewContentWritingService(writingRepo, logger)
	bannersService := services.NewBannersService(bannerRepo, logger)
	requestsService := services.NewServiceRequestsService(requestRepo, logger)
	authService := services.NewAuthService(userRepo, cfg.Session.Secret, logger)

	var uploadService *services.UploadService
	if objectStorage != nil {
		uploadService = services.NewUploadService(objectStorage, logger)
	} else {
		uploadService = services.NewUploadService(nil, logger)
	}

	// Handlers
	modelsHandler := httphandlers.NewModelsHandler(modelsService)
	creatorsHandler := httphandlers.NewContentCreatorsHandler(creatorsService)
	videosHandler := httphandlers.NewVideoProductionsHandler(videosService)
	voicesHandler := httphandlers.NewVoiceArtistsHandler(voicesService)
	writingHandler := httphandlers.NewContentWritingHandler(writingService)
	bannersHandler := httphandlers.NewBannersHandler(bannersService)
	requestsHandler := httphandlers.NewServiceRequestsHandler(requestsService)
	authHandler := httphandlers.NewAuthHandler(cfg.Session.CookieName)
	uploadHandler := httphandlers.NewUploadHandler(uploadService)

	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.Session.CookieName)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.MaxMultipartMemory = services.MaxUploadSize

	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"env":      cfg.Env,
			"database": db != nil,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public catalog
		v1.GET("/models", modelsHandler.List)
		v1.GET("/content-creators", creatorsHandler.List)
		v1.GET("/video-productions", videosHandler.List)
		v1.GET("/voice-artists", voicesHandler.List)
		v1.GET("/content-writing", writingHandler.List)
		v1.GET("/banners", bannersHandler.List)

		// Public contact form
		v1.POST("/service-requests", requestsHandler.Create)

		// Session
		auth := v1.Group("/auth")
		{
			auth.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		// Dashboard
		admin := v1.Group("/admin", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			registerAdminCRUD(admin, "/models", modelsHandler.GetAll, modelsHandler.Create, modelsHandler.Update, modelsHandler.Delete)
			registerAdminCRUD(admin, "/content-creators", creatorsHandler.GetAll, creatorsHandler.Create, creatorsHandler.Update, creatorsHandler.Delete)
			registerAdminCRUD(admin, "/video-productions", videosHandler.GetAll, videosHandler.Create, videosHandler.Update, videosHandler.Delete)
			registerAdminCRUD(admin, "/voice-artists", voicesHandler.GetAll, voicesHandler.Create, voicesHandler.Update, voicesHandler.Delete)
			registerAdminCRUD(admin, "/content-writing", writingHandler.GetAll, writingHandler.Create, writingHandler.Update, writingHandler.Delete)
			registerAdminCRUD(admin, "/banners", bannersHandler.GetAll, bannersHandler.Create, bannersHandler.Update, bannersHandler.Delete)
		}

		requests := v1.Group("/admin/service-requests", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionRequestRead))
		{
			requests.GET("", requestsHandler.GetAll)
			requests.PATCH("/:id/status", authMiddleware.RequirePermission(entities.PermissionRequestWrite), requestsHandler.UpdateStatus)
		}
	}

	router.POST("/api/upload", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionUploadWrite), uploadHandler.Upload)

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// registerAdminCRUD wires the shared dashboard route shape for a catalog.
func registerAdminCRUD(group *gin.RouterGroup, path string, getAll, create, update, del gin.HandlerFunc) {
	group.GET(path, getAll)
	group.POST(path, create)
	group.PATCH(path+"/:id", update)
	group.DELETE(path+"/:id", del)
}
