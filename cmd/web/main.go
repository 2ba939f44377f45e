package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"yemalin/internal/config"
	"yemalin/internal/database"
	"yemalin/internal/handlers"
	"yemalin/internal/logger"
	"yemalin/internal/middleware"
	"yemalin/internal/services"
	"yemalin/internal/universe"
	"yemalin/internal/validator"
	"yemalin/internal/web"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	appConfig, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("Failed to load config: %v", err)
	}
	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()

	if err := run(appConfig); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(appConfig *config.Config) error {
	log := logger.Get()

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	dbManager, err := database.NewManager(appConfig.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	entries, err := universe.Load(appConfig.UniverseFile)
	if err != nil {
		return fmt.Errorf("failed to load universe: %w", err)
	}

	universeService := services.NewUniverseService(dbManager.DB())
	if _, err := universeService.Seed(entries); err != nil {
		return fmt.Errorf("failed to seed universe: %w", err)
	}
	advisorService := services.NewAdvisorService(universeService, appConfig.FrontierPoints)

	router, err := newRouter(advisorService, universeService)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Server starting on port %s", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

func newRouter(advisorService services.AdvisorServicer, universeService services.UniverseServicer) (*gin.Engine, error) {
	validator.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	if err := web.Install(router); err != nil {
		return nil, err
	}

	advisorHandler := handlers.NewAdvisorHandler(advisorService, universeService)
	universeHandler := handlers.NewUniverseHandler(universeService)

	router.GET("/", advisorHandler.Home)
	router.POST("/optimize", advisorHandler.Optimize)
	router.GET("/universe", universeHandler.List)
	router.GET("/api/health", handlers.Health)
	router.NoRoute(middleware.NotFound())

	return router, nil
}
