package models

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
)

// SystemSettingsModel is the GORM model for the single system_settings row.
type SystemSettingsModel struct {
	ID uint `gorm:"primaryKey;autoIncrement:false"`

	CompanyName    *string `gorm:"size:150"`
	CompanyAddress *string `gorm:"type:text"`
	CompanyPhone   *string `gorm:"size:50"`
	CompanyEmail   *string `gorm:"size:100"`
	Website        *string `gorm:"size:150"`
	Timezone       string  `gorm:"size:50;not null"`

	EmailNotifications bool `gorm:"not null"`
	SMSNotifications   bool `gorm:"column:sms_notifications;not null"`
	PaymentReminders   bool `gorm:"not null"`
	MaintenanceAlerts  bool `gorm:"not null"`
	NewCustomerAlerts  bool `gorm:"not null"`
	LowBalanceAlerts   bool `gorm:"not null"`

	TwoFactorAuth  bool    `gorm:"not null"`
	SessionTimeout int     `gorm:"not null"`
	PasswordExpiry int     `gorm:"not null"`
	LoginAttempts  int     `gorm:"not null"`
	IPWhitelist    *string `gorm:"column:ip_whitelist;type:text"`
	AutoLogout     bool    `gorm:"not null"`

	Theme        string `gorm:"size:20;not null"`
	PrimaryColor string `gorm:"size:20;not null"`
	SidebarColor string `gorm:"size:20;not null"`
	FontSize     string `gorm:"size:20;not null"`
	Language     string `gorm:"size:10;not null"`

	CreatedAt time.Time
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName returns the table name for GORM
func (SystemSettingsModel) TableName() string {
	return constants.TableSettings
}

// AllModels lists every persisted model in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&OLTModel{},
		&ODCModel{},
		&ODPModel{},
		&PackageModel{},
		&CustomerModel{},
		&SubscriptionModel{},
		&PaymentModel{},
		&SystemSettingsModel{},
	}
}
