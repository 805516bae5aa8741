package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sponsorly_backend/internal/auth"
	"sponsorly_backend/internal/config"
	"sponsorly_backend/internal/handlers"
	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/middleware"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/routes"
	"sponsorly_backend/internal/services"
	"sponsorly_backend/internal/validator"
	"sponsorly_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open store", "driver", cfg.Database.Driver, "error", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("Failed to close store", "error", err)
		}
	}()
	logger.Info("Store connected", "driver", store.Driver)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL())
	ginRouter := SetupRouter(cfg, store, tokens)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", cfg.Address()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", "error", err)
		return
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает сервисы, хэндлеры и маршруты поверх готового хранилища
func SetupRouter(cfg *config.Config, store *repositories.Store, tokens *auth.TokenManager, msgOpts ...services.MessageOption) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(cfg, store, tokens, msgOpts...)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer, store)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeHandlers(services *services.ServiceContainer, store *repositories.Store) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService),
		ProfileHandler:   handlers.NewProfileHandler(baseHandler, services.ProfileService),
		DiscoveryHandler: handlers.NewDiscoveryHandler(baseHandler, services.DiscoveryService),
		MessageHandler:   handlers.NewMessageHandler(baseHandler, services.MessageService),
		SupportHandler:   handlers.NewSupportHandler(baseHandler, services.SupportService),
		HealthHandler:    handlers.NewHealthHandler(store),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}
