// Package setting models the single system-wide settings record.
package setting

import (
	"time"
)

// SingletonID is the fixed primary key of the only settings row.
const SingletonID uint = 1

// Theme values accepted for the appearance section.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Settings holds company profile, notification toggles, security policy and
// UI preferences. Exactly one record exists.
type Settings struct {
	ID uint

	// General
	CompanyName    *string
	CompanyAddress *string
	CompanyPhone   *string
	CompanyEmail   *string
	Website        *string
	Timezone       string

	// Notifications
	EmailNotifications bool
	SMSNotifications   bool
	PaymentReminders   bool
	MaintenanceAlerts  bool
	NewCustomerAlerts  bool
	LowBalanceAlerts   bool

	// Security
	TwoFactorAuth  bool
	SessionTimeout int
	PasswordExpiry int
	LoginAttempts  int
	IPWhitelist    *string
	AutoLogout     bool

	// Appearance
	Theme        string
	PrimaryColor string
	SidebarColor string
	FontSize     string
	Language     string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Defaults returns the settings record created on first access.
func Defaults() *Settings {
	return &Settings{
		ID:                 SingletonID,
		Timezone:           "Asia/Jakarta",
		EmailNotifications: true,
		SMSNotifications:   false,
		PaymentReminders:   true,
		MaintenanceAlerts:  true,
		NewCustomerAlerts:  true,
		LowBalanceAlerts:   true,
		TwoFactorAuth:      false,
		SessionTimeout:     30,
		PasswordExpiry:     90,
		LoginAttempts:      5,
		AutoLogout:         true,
		Theme:              ThemeLight,
		PrimaryColor:       "#2563eb",
		SidebarColor:       "#1e40af",
		FontSize:           "medium",
		Language:           "id",
	}
}
