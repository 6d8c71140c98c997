package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fiberdesk/fiberdesk/internal/domain/setting"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/mappers"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
)

// SystemSettingRepository implements setting.Repository
type SystemSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewSystemSettingRepository creates a new SystemSettingRepository
func NewSystemSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SystemSettingRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the settings row with the lowest id.
func (r *SystemSettingRepository) Get(ctx context.Context) (*setting.Settings, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SystemSettingsModel
	if err := tx.Order("id ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return mappers.SettingsToDomain(&model), nil
}

// InsertIfAbsent inserts s unless a row already holds its id.
func (r *SystemSettingRepository) InsertIfAbsent(ctx context.Context, s *setting.Settings) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.SettingsToModel(s)

	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(model)
	if result.Error != nil {
		r.logger.Errorw("failed to insert default settings", "error", result.Error)
		return false, fmt.Errorf("failed to insert settings: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Update applies changes to the settings row.
func (r *SystemSettingRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	affected, err := updateColumns(tx, &models.SystemSettingsModel{}, id, changes)
	if err != nil {
		r.logger.Errorw("failed to update settings", "error", err, "id", id)
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if affected == 0 {
		return setting.ErrSettingsNotFound
	}
	return nil
}
