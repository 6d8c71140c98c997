package mappers

import (
	"github.com/fiberdesk/fiberdesk/internal/domain/setting"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
)

func SettingsToModel(s *setting.Settings) *models.SystemSettingsModel {
	return &models.SystemSettingsModel{
		ID:                 s.ID,
		CompanyName:        s.CompanyName,
		CompanyAddress:     s.CompanyAddress,
		CompanyPhone:       s.CompanyPhone,
		CompanyEmail:       s.CompanyEmail,
		Website:            s.Website,
		Timezone:           s.Timezone,
		EmailNotifications: s.EmailNotifications,
		SMSNotifications:   s.SMSNotifications,
		PaymentReminders:   s.PaymentReminders,
		MaintenanceAlerts:  s.MaintenanceAlerts,
		NewCustomerAlerts:  s.NewCustomerAlerts,
		LowBalanceAlerts:   s.LowBalanceAlerts,
		TwoFactorAuth:      s.TwoFactorAuth,
		SessionTimeout:     s.SessionTimeout,
		PasswordExpiry:     s.PasswordExpiry,
		LoginAttempts:      s.LoginAttempts,
		IPWhitelist:        s.IPWhitelist,
		AutoLogout:         s.AutoLogout,
		Theme:              s.Theme,
		PrimaryColor:       s.PrimaryColor,
		SidebarColor:       s.SidebarColor,
		FontSize:           s.FontSize,
		Language:           s.Language,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func SettingsToDomain(m *models.SystemSettingsModel) *setting.Settings {
	return &setting.Settings{
		ID:                 m.ID,
		CompanyName:        m.CompanyName,
		CompanyAddress:     m.CompanyAddress,
		CompanyPhone:       m.CompanyPhone,
		CompanyEmail:       m.CompanyEmail,
		Website:            m.Website,
		Timezone:           m.Timezone,
		EmailNotifications: m.EmailNotifications,
		SMSNotifications:   m.SMSNotifications,
		PaymentReminders:   m.PaymentReminders,
		MaintenanceAlerts:  m.MaintenanceAlerts,
		NewCustomerAlerts:  m.NewCustomerAlerts,
		LowBalanceAlerts:   m.LowBalanceAlerts,
		TwoFactorAuth:      m.TwoFactorAuth,
		SessionTimeout:     m.SessionTimeout,
		PasswordExpiry:     m.PasswordExpiry,
		LoginAttempts:      m.LoginAttempts,
		IPWhitelist:        m.IPWhitelist,
		AutoLogout:         m.AutoLogout,
		Theme:              m.Theme,
		PrimaryColor:       m.PrimaryColor,
		SidebarColor:       m.SidebarColor,
		FontSize:           m.FontSize,
		Language:           m.Language,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
