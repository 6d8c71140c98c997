package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/mappers"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

var oltSearchColumns = []string{"name", "location", "brand", "model"}

type OLTRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewOLTRepository(db *gorm.DB, logger logger.Interface) network.OLTRepository {
	return &OLTRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *OLTRepositoryImpl) Create(ctx context.Context, olt *network.OLT) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.OLTToModel(olt)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create olt", "error", err, "name", olt.Name)
		return fmt.Errorf("failed to create olt: %w", err)
	}

	olt.ID = model.ID
	olt.CreatedAt = model.CreatedAt
	return nil
}

func (r *OLTRepositoryImpl) GetByID(ctx context.Context, id uint) (*network.OLT, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.OLTModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, network.ErrOLTNotFound
		}
		return nil, fmt.Errorf("failed to get olt: %w", err)
	}
	return mappers.OLTToDomain(&model), nil
}

func (r *OLTRepositoryImpl) List(ctx context.Context, filter network.Filter, page query.Page) ([]*network.OLT, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.OLTModel
	err := tx.Model(&models.OLTModel{}).
		Scopes(
			db.Search(filter.Search, oltSearchColumns...),
			db.Eq("status", filter.Status),
			db.Eq("is_active", filter.IsActive),
			db.Paginate(page),
		).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list olts: %w", err)
	}
	return mapper.MapSlice(list, mappers.OLTToDomain), nil
}

func (r *OLTRepositoryImpl) ListActive(ctx context.Context) ([]*network.OLT, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.OLTModel
	if err := tx.Where("is_active = ?", true).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list active olts: %w", err)
	}
	return mapper.MapSlice(list, mappers.OLTToDomain), nil
}

func (r *OLTRepositoryImpl) ListWithCoordinates(ctx context.Context) ([]*network.OLT, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.OLTModel
	err := tx.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list olts with coordinates: %w", err)
	}
	return mapper.MapSlice(list, mappers.OLTToDomain), nil
}

func (r *OLTRepositoryImpl) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	affected, err := updateColumns(tx, &models.OLTModel{}, id, changes)
	if err != nil {
		r.logger.Errorw("failed to update olt", "error", err, "olt_id", id)
		return fmt.Errorf("failed to update olt: %w", err)
	}
	if affected == 0 {
		return network.ErrOLTNotFound
	}
	return nil
}

func (r *OLTRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.OLTModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete olt", "error", result.Error, "olt_id", id)
		return fmt.Errorf("failed to delete olt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return network.ErrOLTNotFound
	}
	return nil
}

func (r *OLTRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.OLTModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check olt existence: %w", err)
	}
	return count > 0, nil
}

func (r *OLTRepositoryImpl) CountByActive(ctx context.Context) (int64, int64, error) {
	active, inactive, err := countActive(db.GetTxFromContext(ctx, r.db), &models.OLTModel{})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count olts: %w", err)
	}
	return active, inactive, nil
}
