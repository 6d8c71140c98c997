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

var distributionSearchColumns = []string{"name", "location", "type"}

type ODCRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewODCRepository(db *gorm.DB, logger logger.Interface) network.ODCRepository {
	return &ODCRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ODCRepositoryImpl) Create(ctx context.Context, odc *network.ODC) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.ODCToModel(odc)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create odc", "error", err, "name", odc.Name, "olt_id", odc.OLTID)
		return fmt.Errorf("failed to create odc: %w", err)
	}

	odc.ID = model.ID
	odc.CreatedAt = model.CreatedAt
	return nil
}

func (r *ODCRepositoryImpl) GetByID(ctx context.Context, id uint) (*network.ODC, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ODCModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, network.ErrODCNotFound
		}
		return nil, fmt.Errorf("failed to get odc: %w", err)
	}
	return mappers.ODCToDomain(&model), nil
}

func (r *ODCRepositoryImpl) List(ctx context.Context, filter network.Filter, page query.Page) ([]*network.ODC, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.ODCModel
	err := tx.Model(&models.ODCModel{}).
		Scopes(
			db.Search(filter.Search, distributionSearchColumns...),
			db.Eq("status", filter.Status),
			db.Eq("olt_id", filter.ParentID),
			db.Eq("is_active", filter.IsActive),
			db.Paginate(page),
		).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list odcs: %w", err)
	}
	return mapper.MapSlice(list, mappers.ODCToDomain), nil
}

func (r *ODCRepositoryImpl) ListActiveByOLTIDs(ctx context.Context, oltIDs []uint) ([]*network.ODC, error) {
	if len(oltIDs) == 0 {
		return []*network.ODC{}, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.ODCModel
	err := tx.Where("olt_id IN ? AND is_active = ?", oltIDs, true).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active odcs: %w", err)
	}
	return mapper.MapSlice(list, mappers.ODCToDomain), nil
}

func (r *ODCRepositoryImpl) ListWithCoordinates(ctx context.Context) ([]*network.ODC, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.ODCModel
	err := tx.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list odcs with coordinates: %w", err)
	}
	return mapper.MapSlice(list, mappers.ODCToDomain), nil
}

func (r *ODCRepositoryImpl) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	affected, err := updateColumns(tx, &models.ODCModel{}, id, changes)
	if err != nil {
		r.logger.Errorw("failed to update odc", "error", err, "odc_id", id)
		return fmt.Errorf("failed to update odc: %w", err)
	}
	if affected == 0 {
		return network.ErrODCNotFound
	}
	return nil
}

func (r *ODCRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ODCModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete odc", "error", result.Error, "odc_id", id)
		return fmt.Errorf("failed to delete odc: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return network.ErrODCNotFound
	}
	return nil
}

func (r *ODCRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ODCModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check odc existence: %w", err)
	}
	return count > 0, nil
}

func (r *ODCRepositoryImpl) CountByOLT(ctx context.Context, oltID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ODCModel{}).Where("olt_id = ?", oltID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count odcs by olt: %w", err)
	}
	return count, nil
}

func (r *ODCRepositoryImpl) CountByActive(ctx context.Context) (int64, int64, error) {
	active, inactive, err := countActive(db.GetTxFromContext(ctx, r.db), &models.ODCModel{})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count odcs: %w", err)
	}
	return active, inactive, nil
}
