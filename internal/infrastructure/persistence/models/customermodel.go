package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
)

// CustomerModel is the persistence model for subscribers.
// customer_id and email carry unique indexes; duplicate inserts surface as
// gorm.ErrDuplicatedKey when TranslateError is enabled.
type CustomerModel struct {
	ID               uint           `gorm:"primaryKey"`
	CustomerID       string         `gorm:"column:customer_id;size:50;not null;uniqueIndex:uk_customers_customer_id"`
	Name             string         `gorm:"size:100;not null"`
	Email            string         `gorm:"size:100;not null;uniqueIndex:uk_customers_email"`
	Phone            string         `gorm:"size:20;not null"`
	Address          string         `gorm:"type:text;not null"`
	Latitude         *float64       `gorm:"type:decimal(10,8)"`
	Longitude        *float64       `gorm:"type:decimal(11,8)"`
	ODPID            *uint          `gorm:"column:odp_id;index:idx_customers_odp_id"`
	ODCPort          *int           `gorm:"column:odc_port"`
	PackageID        *uint          `gorm:"index:idx_customers_package_id"`
	MonthlyFee       float64        `gorm:"type:decimal(10,2);not null"`
	Status           string         `gorm:"size:20;not null;index:idx_customers_status"`
	RegistrationDate datatypes.Date `gorm:"not null"`
	Notes            *string        `gorm:"type:text"`
	IsActive         bool           `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        *time.Time `gorm:"autoUpdateTime:false"`
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
