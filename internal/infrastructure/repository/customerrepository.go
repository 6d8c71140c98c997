package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/mappers"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

var customerSearchColumns = []string{"name", "email", "phone", "address", "customer_id"}

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCustomerRepository(db *gorm.DB, logger logger.Interface) customer.Repository {
	return &CustomerRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, c *customer.Customer) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.CustomerToModel(c)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create customer", "error", err, "customer_id", c.CustomerID)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	return nil
}

func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CustomerRepositoryImpl) GetByCustomerID(ctx context.Context, customerID string) (*customer.Customer, error) {
	return r.first(ctx, "customer_id = ?", customerID)
}

func (r *CustomerRepositoryImpl) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *CustomerRepositoryImpl) first(ctx context.Context, cond string, arg interface{}) (*customer.Customer, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CustomerModel
	if err := tx.Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return mappers.CustomerToDomain(&model), nil
}

func (r *CustomerRepositoryImpl) List(ctx context.Context, filter customer.Filter, page query.Page) ([]*customer.Customer, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.CustomerModel
	err := tx.Model(&models.CustomerModel{}).
		Scopes(
			db.Search(filter.Search, customerSearchColumns...),
			db.Eq("status", filter.Status),
			db.Eq("odp_id", filter.ODPID),
			db.Eq("package_id", filter.PackageID),
			db.Eq("is_active", filter.IsActive),
			db.Paginate(page),
		).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return mapper.MapSlice(list, mappers.CustomerToDomain), nil
}

func (r *CustomerRepositoryImpl) ListWithCoordinates(ctx context.Context) ([]*customer.Customer, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.CustomerModel
	err := tx.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers with coordinates: %w", err)
	}
	return mapper.MapSlice(list, mappers.CustomerToDomain), nil
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	affected, err := updateColumns(tx, &models.CustomerModel{}, id, changes)
	if err != nil {
		r.logger.Errorw("failed to update customer", "error", err, "id", id)
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if affected == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CustomerModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete customer", "error", result.Error, "id", id)
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	count, err := r.count(ctx, "id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return count > 0, nil
}

func (r *CustomerRepositoryImpl) CountByStatus(ctx context.Context) (map[customer.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []statusCount
	err := tx.Model(&models.CustomerModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count customers by status: %w", err)
	}

	result := make(map[customer.Status]int64, len(rows))
	for _, row := range rows {
		result[customer.Status(row.Status)] = row.Count
	}
	return result, nil
}

func (r *CustomerRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	count, err := r.count(ctx, "is_active = ?", true)
	if err != nil {
		return 0, fmt.Errorf("failed to count active customers: %w", err)
	}
	return count, nil
}

func (r *CustomerRepositoryImpl) CountByODPIDs(ctx context.Context, odpIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64, len(odpIDs))
	if len(odpIDs) == 0 {
		return result, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []idCount
	err := tx.Model(&models.CustomerModel{}).
		Select("odp_id AS id, COUNT(*) AS count").
		Where("odp_id IN ?", odpIDs).
		Group("odp_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count customers by odp: %w", err)
	}

	for _, row := range rows {
		result[row.ID] = row.Count
	}
	return result, nil
}

func (r *CustomerRepositoryImpl) CountByODP(ctx context.Context, odpID uint) (int64, error) {
	count, err := r.count(ctx, "odp_id = ?", odpID)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers by odp: %w", err)
	}
	return count, nil
}

func (r *CustomerRepositoryImpl) CountByPackage(ctx context.Context, packageID uint) (int64, error) {
	count, err := r.count(ctx, "package_id = ?", packageID)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers by package: %w", err)
	}
	return count, nil
}

func (r *CustomerRepositoryImpl) count(ctx context.Context, cond string, arg interface{}) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.CustomerModel{}).Where(cond, arg).Count(&count).Error
	return count, err
}
