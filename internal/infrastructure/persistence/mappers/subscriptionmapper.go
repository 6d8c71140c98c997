package mappers

import (
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
)

func SubscriptionToModel(s *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		PackageID:  s.PackageID,
		StartDate:  DateToModel(s.StartDate),
		EndDate:    datePtrToModel(s.EndDate),
		MonthlyFee: s.MonthlyFee,
		Status:     s.Status.String(),
		Notes:      s.Notes,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func SubscriptionToDomain(m *models.SubscriptionModel) *subscription.Subscription {
	return &subscription.Subscription{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		PackageID:  m.PackageID,
		StartDate:  DateToDomain(m.StartDate),
		EndDate:    datePtrToDomain(m.EndDate),
		MonthlyFee: m.MonthlyFee,
		Status:     subscription.Status(m.Status),
		Notes:      m.Notes,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
