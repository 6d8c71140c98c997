package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
)

// PaymentModel is the persistence model for payments.
type PaymentModel struct {
	ID              uint           `gorm:"primaryKey"`
	CustomerID      uint           `gorm:"not null;index:idx_payments_customer_id"`
	SubscriptionID  uint           `gorm:"not null;index:idx_payments_subscription_id"`
	Amount          float64        `gorm:"type:decimal(10,2);not null"`
	PaymentDate     datatypes.Date `gorm:"not null;index:idx_payments_payment_date"`
	DueDate         datatypes.Date `gorm:"not null;index:idx_payments_due_date"`
	Status          string         `gorm:"size:20;not null;index:idx_payments_status"`
	PaymentMethod   *string        `gorm:"size:50"`
	ReferenceNumber *string        `gorm:"size:100"`
	Notes           *string        `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       *time.Time `gorm:"autoUpdateTime:false"`
}

func (PaymentModel) TableName() string {
	return constants.TablePayments
}
