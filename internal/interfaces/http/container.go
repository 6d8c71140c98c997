package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentApp "github.com/fiberdesk/fiberdesk/internal/application/payment"
	settingApp "github.com/fiberdesk/fiberdesk/internal/application/setting"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/config"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
)

// Container holds repositories, services and handlers, and is responsible
// for wiring them together over a single database handle.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	repos *repositories
	svcs  *services
	hdlrs *allHandlers
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c
}

// Engine returns the gin engine the routes are registered on.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// SettingService exposes the settings service for startup seeding.
func (c *Container) SettingService() *settingApp.Service {
	return c.svcs.setting
}

// PaymentService exposes billing operations for the CLI.
func (c *Container) PaymentService() *paymentApp.Service {
	return c.svcs.payment
}
