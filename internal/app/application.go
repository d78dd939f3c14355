package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"landing-builder-backend/internal/config"
	"landing-builder-backend/internal/handlers"
	"landing-builder-backend/internal/middleware"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/render"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/service"
	"landing-builder-backend/internal/templates"
	"landing-builder-backend/internal/theme"
	"landing-builder-backend/pkg/cache"
	"landing-builder-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	cache     *cache.Cache
	registry  *sections.Registry
	catalog   *templates.Catalog
	editor    *service.EditorService
	handler   *handlers.EditorHandler
	rateLimit *middleware.RateLimitManager

	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initRegistry(); err != nil {
		return nil, err
	}
	if err := app.initCatalog(); err != nil {
		return nil, err
	}
	app.initCache()
	if err := app.initEditor(); err != nil {
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
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimit != nil {
		_ = a.rateLimit.Shutdown()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) Editor() *service.EditorService {
	return a.editor
}

func (a *Application) initRegistry() error {
	theme.RegisterValidations()

	a.registry = sections.DefaultRegistry()
	if err := a.registry.Validate(models.SectionKinds()); err != nil {
		return fmt.Errorf("failed to initialize section registry: %w", err)
	}
	return nil
}

func (a *Application) initCatalog() error {
	catalog, err := templates.NewCatalog(a.registry)
	if err != nil {
		return fmt.Errorf("failed to initialize template catalog: %w", err)
	}

	if a.cfg.TemplatesDir != "" {
		loaded, err := catalog.LoadDir(a.cfg.TemplatesDir)
		if err != nil {
			return fmt.Errorf("failed to load templates: %w", err)
		}
		logger.Info("Templates loaded successfully", map[string]interface{}{
			"dir":       a.cfg.TemplatesDir,
			"templates": loaded,
		})
	}

	a.catalog = catalog
	return nil
}

// initCache falls back to rendering every export when Redis is unreachable.
func (a *Application) initCache() {
	c, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableCache)
	if err != nil {
		logger.Error(err, "Export cache disabled", map[string]interface{}{"addr": a.cfg.RedisURL})
		c, _ = cache.NewCache("", false)
	}
	// Renderer output can change between releases; entries from older builds are dropped.
	if err := c.InvalidateExports(); err != nil {
		logger.Warn("Failed to clear cached exports", map[string]interface{}{"error": err.Error()})
	}
	a.cache = c
}

func (a *Application) initEditor() error {
	editor, err := service.NewEditorService(service.EditorConfig{
		Registry:          a.registry,
		Catalog:           a.catalog,
		Cache:             a.cache,
		CacheTTL:          a.cfg.ExportCacheTTL,
		RenderContext:     sections.NewRenderContext(a.cfg.SanitizeCustomHTML),
		Endpoint:          render.DefaultEndpoint,
		Lang:              a.cfg.DocumentLang,
		InitialTemplate:   a.cfg.InitialTemplate,
		DefaultBreakpoint: a.cfg.DefaultBreakpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize editor: %w", err)
	}

	a.editor = editor
	a.handler = handlers.NewEditorHandler(editor)
	return nil
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.rateLimit = middleware.NewRateLimitManager(context.Background())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimit))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, render.DefaultEndpoint+"/preview")
	})

	a.handler.RegisterRoutes(router.Group(render.DefaultEndpoint))

	a.router = router
}
