package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
)

// SubscriptionModel is the persistence model for subscriptions.
type SubscriptionModel struct {
	ID         uint            `gorm:"primaryKey"`
	CustomerID uint            `gorm:"not null;index:idx_subscriptions_customer_id"`
	PackageID  uint            `gorm:"not null;index:idx_subscriptions_package_id"`
	StartDate  datatypes.Date  `gorm:"not null"`
	EndDate    *datatypes.Date `gorm:"index:idx_subscriptions_end_date"`
	MonthlyFee float64         `gorm:"type:decimal(10,2);not null"`
	Status     string          `gorm:"size:20;not null;index:idx_subscriptions_status"`
	Notes      *string         `gorm:"type:text"`
	IsActive   bool            `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  *time.Time `gorm:"autoUpdateTime:false"`
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
