package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calorie-planner/config"
	deliveryHttp "calorie-planner/internal/delivery/http"
	"calorie-planner/internal/delivery/http/handler"
	"calorie-planner/internal/delivery/http/middleware"
)

// App holds all dependencies for the application
type App struct {
	*Core
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	log := NewLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	core, err := NewCore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &App{
		Core:   core,
		Server: initializeServer(core),
	}, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(core *Core) *http.Server {
	// Initialize handlers
	authHandler := handler.NewAuthHandler(core.AuthUsecase, core.Validator, core.JWTService, core.Config.OAuth.FrontendCallbackURL)
	calorieHandler := handler.NewCalorieHandler(core.EstimationUsecase)
	profileHandler := handler.NewProfileHandler(core.ProfileUsecase, core.Validator)
	settingsHandler := handler.NewSettingsHandler(core.SettingsUsecase, core.Validator)
	mealHandler := handler.NewMealHandler(core.MealUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(core.AuthUsecase)
	corsMiddleware := middleware.NewCORSMiddleware(core.Config.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, calorieHandler, profileHandler, settingsHandler, mealHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", core.Config.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}
