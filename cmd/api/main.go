package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/Hadjerbacha/cetic-ged/internal/adapter/db"
	httpadapter "github.com/Hadjerbacha/cetic-ged/internal/adapter/http"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/handlers"
	httpmiddleware "github.com/Hadjerbacha/cetic-ged/internal/adapter/http/middleware"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/storage"
	appservice "github.com/Hadjerbacha/cetic-ged/internal/app/service"
	"github.com/Hadjerbacha/cetic-ged/internal/config"
	"github.com/Hadjerbacha/cetic-ged/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	uploadStore, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal("failed to prepare upload directory", zap.Error(err))
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)
	documentRepository := dbadapter.NewDocumentRepository(db)

	taskService := appservice.NewTaskService(taskRepository, userRepository, uploadStore)
	authService := appservice.NewAuthService(userRepository, cfg.JwtSecret, cfg.TokenTTL)
	userService := appservice.NewUserService(userRepository)
	documentService := appservice.NewDocumentService(documentRepository, uploadStore)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete,
		},
		AllowHeaders: []string{"Content-Type", "Authorization", "Accept-Language"},
	}))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, uploadStore.Dir(), cfg.JwtSecret, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Auth:     handlers.NewAuthHandler(authService, userService),
		Task:     handlers.NewTaskHandler(taskService),
		User:     handlers.NewUserHandler(userService),
		Document: handlers.NewDocumentHandler(documentService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
