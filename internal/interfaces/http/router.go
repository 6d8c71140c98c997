package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fiberdesk/fiberdesk/docs"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/middleware"
	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/routes"
)

const shutdownTimeout = 10 * time.Second

// Router represents the HTTP router configuration
type Router struct {
	container *Container
	server    *http.Server
}

// NewRouter creates a router over a wired container.
func NewRouter(container *Container) *Router {
	return &Router{container: container}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	engine := r.container.engine
	cfg := r.container.cfg
	log := r.container.log
	h := r.container.hdlrs

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log, "/health", cfg.Metrics.Path))
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics())
	}
	engine.Use(middleware.ErrorHandler(log))

	engine.GET("/health", h.health.Health)
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupCustomerRoutes(engine, &routes.CustomerRouteConfig{Handler: h.customer})
	routes.SetupInfrastructureRoutes(engine, &routes.InfrastructureRouteConfig{Handler: h.network})
	routes.SetupServiceRoutes(engine, &routes.ServiceRouteConfig{
		PackageHandler:      h.pkg,
		SubscriptionHandler: h.subscription,
		PaymentHandler:      h.payment,
	})
	routes.SetupSettingRoutes(engine, &routes.SettingRouteConfig{Handler: h.setting})
	routes.SetupDashboardRoutes(engine, &routes.DashboardRouteConfig{Handler: h.dashboard})
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.container.engine
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// server fails. On cancellation in-flight requests get shutdownTimeout to finish.
func (r *Router) Run(ctx context.Context, addr string) error {
	r.server = &http.Server{
		Addr:              addr,
		Handler:           r.container.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.container.log.Infow("shutting down http server", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return r.server.Shutdown(shutdownCtx)
}
