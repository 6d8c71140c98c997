package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/mappers"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPaymentRepository(db *gorm.DB, logger logger.Interface) payment.Repository {
	return &PaymentRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, p *payment.Payment) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.PaymentToModel(p)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create payment", "error", err,
			"customer_id", p.CustomerID, "subscription_id", p.SubscriptionID)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	return nil
}

func (r *PaymentRepositoryImpl) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.PaymentModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return mappers.PaymentToDomain(&model), nil
}

func (r *PaymentRepositoryImpl) List(ctx context.Context, filter payment.Filter, page query.Page) ([]*payment.Payment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.PaymentModel
	err := tx.Model(&models.PaymentModel{}).
		Scopes(
			db.Eq("customer_id", filter.CustomerID),
			db.Eq("subscription_id", filter.SubscriptionID),
			db.Eq("status", filter.Status),
			db.Paginate(page),
		).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return mapper.MapSlice(list, mappers.PaymentToDomain), nil
}

func (r *PaymentRepositoryImpl) ListDueBefore(ctx context.Context, status payment.Status, before biztime.Date) ([]*payment.Payment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.PaymentModel
	err := tx.Where("status = ? AND due_date < ?", status.String(), mappers.DateToModel(before)).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments due before %s: %w", before, err)
	}
	return mapper.MapSlice(list, mappers.PaymentToDomain), nil
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	affected, err := updateColumns(tx, &models.PaymentModel{}, id, changes)
	if err != nil {
		r.logger.Errorw("failed to update payment", "error", err, "payment_id", id)
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if affected == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.PaymentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete payment", "error", result.Error, "payment_id", id)
		return fmt.Errorf("failed to delete payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}

// inPeriod bounds payment_date inclusively on whichever ends are set.
func inPeriod(period payment.DateRange) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if period.From != nil {
			tx = tx.Where("payment_date >= ?", mappers.DateToModel(*period.From))
		}
		if period.To != nil {
			tx = tx.Where("payment_date <= ?", mappers.DateToModel(*period.To))
		}
		return tx
	}
}

type statusTotalRow struct {
	Status      string
	Count       int64
	TotalAmount float64
}

func (r *PaymentRepositoryImpl) Summarize(ctx context.Context, period payment.DateRange) (*payment.Summary, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	summary := &payment.Summary{StatusBreakdown: []payment.StatusTotal{}}

	if err := tx.Model(&models.PaymentModel{}).Scopes(inPeriod(period)).
		Count(&summary.TotalPayments).Error; err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	var paid float64
	if err := tx.Model(&models.PaymentModel{}).Scopes(inPeriod(period)).
		Where("status = ?", payment.StatusPaid.String()).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error; err != nil {
		return nil, fmt.Errorf("failed to sum paid payments: %w", err)
	}
	summary.TotalAmount = paid

	var rows []statusTotalRow
	if err := tx.Model(&models.PaymentModel{}).Scopes(inPeriod(period)).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("status").
		Order("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to summarize payments by status: %w", err)
	}
	for _, row := range rows {
		summary.StatusBreakdown = append(summary.StatusBreakdown, payment.StatusTotal{
			Status:      payment.Status(row.Status),
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
	}

	return summary, nil
}

func (r *PaymentRepositoryImpl) CountByStatus(ctx context.Context) (map[payment.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []statusCount
	err := tx.Model(&models.PaymentModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count payments by status: %w", err)
	}

	result := make(map[payment.Status]int64, len(rows))
	for _, row := range rows {
		result[payment.Status(row.Status)] = row.Count
	}
	return result, nil
}

func (r *PaymentRepositoryImpl) CountBySubscription(ctx context.Context, subscriptionID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.PaymentModel{}).Where("subscription_id = ?", subscriptionID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count payments by subscription: %w", err)
	}
	return count, nil
}

func (r *PaymentRepositoryImpl) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.PaymentModel{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count payments by customer: %w", err)
	}
	return count, nil
}

func (r *PaymentRepositoryImpl) ExistsForSubscriptionDueBetween(ctx context.Context, subscriptionID uint, from, to biztime.Date) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.PaymentModel{}).
		Where("subscription_id = ? AND due_date >= ? AND due_date <= ?",
			subscriptionID, mappers.DateToModel(from), mappers.DateToModel(to)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing payment: %w", err)
	}
	return count > 0, nil
}

func (r *PaymentRepositoryImpl) TransitionDueBefore(ctx context.Context, from, to payment.Status, before biztime.Date) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.PaymentModel{}).
		Where("status = ? AND due_date < ?", from.String(), mappers.DateToModel(before)).
		Updates(map[string]interface{}{
			"status":     to.String(),
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to transition payments", "error", result.Error,
			"from", from, "to", to, "before", before.String())
		return 0, fmt.Errorf("failed to transition payments: %w", result.Error)
	}
	return result.RowsAffected, nil
}
