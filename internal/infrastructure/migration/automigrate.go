package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
)

// AutoMigrateStrategy syncs the schema from the persistence models. It is
// used for sqlite and postgres, which have no versioned scripts.
type AutoMigrateStrategy struct {
	models []interface{}
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{
		models: models.AllModels(),
		logger: log.Component("migration.automigrate"),
	}
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(s.models))

	if err := db.AutoMigrate(s.models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
