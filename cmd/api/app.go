package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"weather-app/internal/config"
	"weather-app/internal/history"
	"weather-app/internal/weather"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	history        history.Store
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := history.Open(cfg.History.Backend, cfg.HistoryPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	logger.Info("history store opened", "backend", cfg.History.Backend, "path", cfg.HistoryPath())

	weatherSvc := weather.NewWeatherService(cfg, store, logger)

	return NewAppWithServices(cfg, logger, weatherSvc, store)
}

// NewAppWithServices creates an application around the given services.
// This is useful for testing with mock services
func NewAppWithServices(cfg *config.Config, logger *slog.Logger, weatherSvc weather.Service, store history.Store) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weatherSvc,
		history:        store,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized")

	return app, nil
}

// Run starts the HTTP server and blocks until ctx is done, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// Close releases the history store
func (app *App) Close() error {
	if app.history == nil {
		return nil
	}
	return app.history.Close()
}
