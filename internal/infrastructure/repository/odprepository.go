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

type ODPRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewODPRepository(db *gorm.DB, logger logger.Interface) network.ODPRepository {
	return &ODPRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ODPRepositoryImpl) Create(ctx context.Context, odp *network.ODP) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.ODPToModel(odp)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create odp", "error", err, "name", odp.Name, "odc_id", odp.ODCID)
		return fmt.Errorf("failed to create odp: %w", err)
	}

	odp.ID = model.ID
	odp.CreatedAt = model.CreatedAt
	return nil
}

func (r *ODPRepositoryImpl) GetByID(ctx context.Context, id uint) (*network.ODP, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ODPModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, network.ErrODPNotFound
		}
		return nil, fmt.Errorf("failed to get odp: %w", err)
	}
	return mappers.ODPToDomain(&model), nil
}

func (r *ODPRepositoryImpl) List(ctx context.Context, filter network.Filter, page query.Page) ([]*network.ODP, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.ODPModel
	err := tx.Model(&models.ODPModel{}).
		Scopes(
			db.Search(filter.Search, distributionSearchColumns...),
			db.Eq("status", filter.Status),
			db.Eq("odc_id", filter.ParentID),
			db.Eq("is_active", filter.IsActive),
			db.Paginate(page),
		).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list odps: %w", err)
	}
	return mapper.MapSlice(list, mappers.ODPToDomain), nil
}

func (r *ODPRepositoryImpl) ListActiveByODCIDs(ctx context.Context, odcIDs []uint) ([]*network.ODP, error) {
	if len(odcIDs) == 0 {
		return []*network.ODP{}, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.ODPModel
	err := tx.Where("odc_id IN ? AND is_active = ?", odcIDs, true).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active odps: %w", err)
	}
	return mapper.MapSlice(list, mappers.ODPToDomain), nil
}

func (r *ODPRepositoryImpl) ListWithCoordinates(ctx context.Context) ([]*network.ODP, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.ODPModel
	err := tx.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list odps with coordinates: %w", err)
	}
	return mapper.MapSlice(list, mappers.ODPToDomain), nil
}

func (r *ODPRepositoryImpl) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	affected, err := updateColumns(tx, &models.ODPModel{}, id, changes)
	if err != nil {
		r.logger.Errorw("failed to update odp", "error", err, "odp_id", id)
		return fmt.Errorf("failed to update odp: %w", err)
	}
	if affected == 0 {
		return network.ErrODPNotFound
	}
	return nil
}

func (r *ODPRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ODPModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete odp", "error", result.Error, "odp_id", id)
		return fmt.Errorf("failed to delete odp: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return network.ErrODPNotFound
	}
	return nil
}

func (r *ODPRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ODPModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check odp existence: %w", err)
	}
	return count > 0, nil
}

func (r *ODPRepositoryImpl) CountByODC(ctx context.Context, odcID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ODPModel{}).Where("odc_id = ?", odcID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count odps by odp: %w", err)
	}
	return count, nil
}

func (r *ODPRepositoryImpl) CountByActive(ctx context.Context) (int64, int64, error) {
	active, inactive, err := countActive(db.GetTxFromContext(ctx, r.db), &models.ODPModel{})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count odps: %w", err)
	}
	return active, inactive, nil
}
