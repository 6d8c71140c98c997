package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/mappers"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

var packageSearchColumns = []string{"name", "description", "speed"}

type PackageRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPackageRepository(db *gorm.DB, logger logger.Interface) packages.Repository {
	return &PackageRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PackageRepositoryImpl) Create(ctx context.Context, p *packages.Package) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.PackageToModel(p)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create package", "error", err, "name", p.Name)
		return fmt.Errorf("failed to create package: %w", err)
	}

	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	return nil
}

func (r *PackageRepositoryImpl) GetByID(ctx context.Context, id uint) (*packages.Package, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.PackageModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, packages.ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return mappers.PackageToDomain(&model), nil
}

func (r *PackageRepositoryImpl) List(ctx context.Context, filter packages.Filter, page query.Page) ([]*packages.Package, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.PackageModel
	err := tx.Model(&models.PackageModel{}).
		Scopes(
			db.Search(filter.Search, packageSearchColumns...),
			db.Eq("is_active", filter.IsActive),
			db.Paginate(page),
		).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return mapper.MapSlice(list, mappers.PackageToDomain), nil
}

func (r *PackageRepositoryImpl) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	affected, err := updateColumns(tx, &models.PackageModel{}, id, changes)
	if err != nil {
		r.logger.Errorw("failed to update package", "error", err, "package_id", id)
		return fmt.Errorf("failed to update package: %w", err)
	}
	if affected == 0 {
		return packages.ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.PackageModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete package", "error", result.Error, "package_id", id)
		return fmt.Errorf("failed to delete package: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return packages.ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.PackageModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check package existence: %w", err)
	}
	return count > 0, nil
}

func (r *PackageRepositoryImpl) CountByActive(ctx context.Context) (int64, int64, error) {
	active, inactive, err := countActive(db.GetTxFromContext(ctx, r.db), &models.PackageModel{})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return active, active + inactive, nil
}
