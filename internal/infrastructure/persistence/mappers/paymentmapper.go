package mappers

import (
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:              p.ID,
		CustomerID:      p.CustomerID,
		SubscriptionID:  p.SubscriptionID,
		Amount:          p.Amount,
		PaymentDate:     DateToModel(p.PaymentDate),
		DueDate:         DateToModel(p.DueDate),
		Status:          p.Status.String(),
		PaymentMethod:   p.PaymentMethod,
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func PaymentToDomain(m *models.PaymentModel) *payment.Payment {
	return &payment.Payment{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		SubscriptionID:  m.SubscriptionID,
		Amount:          m.Amount,
		PaymentDate:     DateToDomain(m.PaymentDate),
		DueDate:         DateToDomain(m.DueDate),
		Status:          payment.Status(m.Status),
		PaymentMethod:   m.PaymentMethod,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
