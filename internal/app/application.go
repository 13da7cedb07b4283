package app

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chitragupta-dashboard/internal/config"
	"chitragupta-dashboard/internal/handlers"
	"chitragupta-dashboard/internal/middleware"
	"chitragupta-dashboard/pkg/logger"
	"chitragupta-dashboard/pkg/navigation"
	"chitragupta-dashboard/pkg/utils"
	"chitragupta-dashboard/web"
)

type Options struct {
	// Templates overrides the embedded shell templates.
	Templates fs.FS
	// Navigation overrides the model resolved from configuration.
	Navigation *navigation.Model
}

type Application struct {
	cfg     *config.Config
	options Options

	navigation  *navigation.Model
	templates   *template.Template
	rateLimiter *middleware.RateLimitManager

	shellHandler      *handlers.ShellHandler
	navigationHandler *handlers.NavigationHandler
	router            *gin.Engine
	server            *http.Server
}

func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{
		cfg:     cfg,
		options: opts,
	}

	if err := app.initNavigation(); err != nil {
		return nil, err
	}

	if err := app.initTemplates(); err != nil {
		return nil, err
	}

	if err := app.initHandlers(); err != nil {
		return nil, err
	}

	app.initRouter()

	app.server = &http.Server{
		Addr:           cfg.Addr(),
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
		"navigation":  a.navigation.Len(),
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimiter != nil {
		if err := a.rateLimiter.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limiter", nil)
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) Navigation() *navigation.Model {
	return a.navigation
}

// ResolveNavigation returns the navigation model selected by cfg: the file
// named by NavigationFile when set, the built-in entries otherwise.
func ResolveNavigation(cfg *config.Config) (*navigation.Model, error) {
	if cfg == nil || cfg.NavigationFile == "" {
		return navigation.Default(), nil
	}

	model, err := navigation.LoadFile(cfg.NavigationFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load navigation: %w", err)
	}
	return model, nil
}

func (a *Application) initNavigation() error {
	if a.options.Navigation != nil {
		a.navigation = a.options.Navigation
		return nil
	}

	model, err := ResolveNavigation(a.cfg)
	if err != nil {
		return err
	}

	a.navigation = model
	logger.Info("Navigation loaded", map[string]interface{}{
		"entries": model.Len(),
		"source":  navigationSource(a.cfg),
	})
	return nil
}

func navigationSource(cfg *config.Config) string {
	if cfg.NavigationFile == "" {
		return "built-in"
	}
	return cfg.NavigationFile
}

func (a *Application) initTemplates() error {
	fsys := a.options.Templates
	if fsys == nil && a.cfg.TemplatesDir != "" {
		fsys = os.DirFS(a.cfg.TemplatesDir)
	}
	if fsys == nil {
		fsys = web.Templates()
	}

	templates, err := utils.LoadTemplates(fsys)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	a.templates = templates
	logger.Info("Templates loaded successfully", nil)
	return nil
}

func (a *Application) initHandlers() error {
	shellHandler, err := handlers.NewShellHandler(a.cfg, a.navigation, a.templates)
	if err != nil {
		return fmt.Errorf("failed to create shell handler: %w", err)
	}

	a.shellHandler = shellHandler
	a.navigationHandler = handlers.NewNavigationHandler(a.navigation)
	return nil
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.rateLimiter = middleware.NewRateLimitManager(
		context.Background(),
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		a.cfg.RateLimitBurst,
	)

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.rateLimiter))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RouteContext())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.StaticFS("/static", http.FS(web.Static()))

	api := router.Group("/api/v1")
	if len(a.cfg.CORSOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:  a.cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	api.GET("/navigation", a.navigationHandler.GetNavigation)
	api.OPTIONS("/navigation", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range a.shellHandler.PagePaths() {
		router.GET(path, a.shellHandler.RenderPage)
	}
	router.NoRoute(a.shellHandler.RenderNotFound)

	a.router = router
}
