package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/mappers"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.SubscriptionToModel(s)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err,
			"customer_id", s.CustomerID, "package_id", s.PackageID)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SubscriptionModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return mappers.SubscriptionToDomain(&model), nil
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context, filter subscription.Filter, page query.Page) ([]*subscription.Subscription, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.SubscriptionModel
	err := tx.Model(&models.SubscriptionModel{}).
		Scopes(
			db.Eq("customer_id", filter.CustomerID),
			db.Eq("status", filter.Status),
			db.Paginate(page),
		).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return mapper.MapSlice(list, mappers.SubscriptionToDomain), nil
}

func (r *SubscriptionRepositoryImpl) ListByStatus(ctx context.Context, status subscription.Status) ([]*subscription.Subscription, error) {
	return r.find(ctx, "status = ?", status.String())
}

func (r *SubscriptionRepositoryImpl) ListEndingBetween(ctx context.Context, status subscription.Status, from, to biztime.Date) ([]*subscription.Subscription, error) {
	return r.find(ctx, "status = ? AND end_date >= ? AND end_date <= ?",
		status.String(), mappers.DateToModel(from), mappers.DateToModel(to))
}

func (r *SubscriptionRepositoryImpl) ListBillable(ctx context.Context) ([]*subscription.Subscription, error) {
	return r.find(ctx, "status = ? AND is_active = ?", subscription.StatusActive.String(), true)
}

func (r *SubscriptionRepositoryImpl) find(ctx context.Context, cond string, args ...interface{}) ([]*subscription.Subscription, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.SubscriptionModel
	if err := tx.Where(cond, args...).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	return mapper.MapSlice(list, mappers.SubscriptionToDomain), nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	affected, err := updateColumns(tx, &models.SubscriptionModel{}, id, changes)
	if err != nil {
		r.logger.Errorw("failed to update subscription", "error", err, "subscription_id", id)
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	if affected == 0 {
		return subscription.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.SubscriptionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "error", result.Error, "subscription_id", id)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.SubscriptionModel{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count subscriptions by customer: %w", err)
	}
	return count, nil
}

func (r *SubscriptionRepositoryImpl) CountByPackage(ctx context.Context, packageID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.SubscriptionModel{}).Where("package_id = ?", packageID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count subscriptions by package: %w", err)
	}
	return count, nil
}
