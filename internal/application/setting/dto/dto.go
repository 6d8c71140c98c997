package dto

import (
	"encoding/json"
	"time"

	"github.com/fiberdesk/fiberdesk/internal/domain/setting"
	"github.com/fiberdesk/fiberdesk/internal/shared/patch"
)

// SettingsResponse is the flat representation of the settings record.
type SettingsResponse struct {
	ID uint `json:"id"`

	CompanyName    *string `json:"company_name"`
	CompanyAddress *string `json:"company_address"`
	CompanyPhone   *string `json:"company_phone"`
	CompanyEmail   *string `json:"company_email"`
	Website        *string `json:"website"`
	Timezone       string  `json:"timezone"`

	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
	PaymentReminders   bool `json:"payment_reminders"`
	MaintenanceAlerts  bool `json:"maintenance_alerts"`
	NewCustomerAlerts  bool `json:"new_customer_alerts"`
	LowBalanceAlerts   bool `json:"low_balance_alerts"`

	TwoFactorAuth  bool    `json:"two_factor_auth"`
	SessionTimeout int     `json:"session_timeout"`
	PasswordExpiry int     `json:"password_expiry"`
	LoginAttempts  int     `json:"login_attempts"`
	IPWhitelist    *string `json:"ip_whitelist"`
	AutoLogout     bool    `json:"auto_logout"`

	Theme        string `json:"theme"`
	PrimaryColor string `json:"primary_color"`
	SidebarColor string `json:"sidebar_color"`
	FontSize     string `json:"font_size"`
	Language     string `json:"language"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// UpdateSettingsRequest is a partial update; absent keys keep their value.
type UpdateSettingsRequest struct {
	CompanyName    patch.Field[*string] `json:"company_name" binding:"omitnil,max=100"`
	CompanyAddress patch.Field[*string] `json:"company_address"`
	CompanyPhone   patch.Field[*string] `json:"company_phone" binding:"omitnil,max=20"`
	CompanyEmail   patch.Field[*string] `json:"company_email" binding:"omitnil,email"`
	Website        patch.Field[*string] `json:"website" binding:"omitnil,max=200"`
	Timezone       patch.Field[string]  `json:"timezone" binding:"omitnil,timezone"`

	EmailNotifications patch.Field[bool] `json:"email_notifications"`
	SMSNotifications   patch.Field[bool] `json:"sms_notifications"`
	PaymentReminders   patch.Field[bool] `json:"payment_reminders"`
	MaintenanceAlerts  patch.Field[bool] `json:"maintenance_alerts"`
	NewCustomerAlerts  patch.Field[bool] `json:"new_customer_alerts"`
	LowBalanceAlerts   patch.Field[bool] `json:"low_balance_alerts"`

	TwoFactorAuth  patch.Field[bool]    `json:"two_factor_auth"`
	SessionTimeout patch.Field[int]     `json:"session_timeout" binding:"omitnil,gte=5,lte=1440"`
	PasswordExpiry patch.Field[int]     `json:"password_expiry" binding:"omitnil,gte=1,lte=365"`
	LoginAttempts  patch.Field[int]     `json:"login_attempts" binding:"omitnil,gte=1,lte=10"`
	IPWhitelist    patch.Field[*string] `json:"ip_whitelist"`
	AutoLogout     patch.Field[bool]    `json:"auto_logout"`

	Theme        patch.Field[string] `json:"theme" binding:"omitnil,oneof=light dark auto"`
	PrimaryColor patch.Field[string] `json:"primary_color" binding:"omitnil,hexcolor"`
	SidebarColor patch.Field[string] `json:"sidebar_color" binding:"omitnil,hexcolor"`
	FontSize     patch.Field[string] `json:"font_size" binding:"omitnil,oneof=small medium large"`
	Language     patch.Field[string] `json:"language" binding:"omitnil,oneof=id en"`
}

// Changes returns the column assignments for the supplied fields.
func (r UpdateSettingsRequest) Changes() patch.Changes {
	c := patch.Changes{}
	patch.Put(c, "company_name", r.CompanyName)
	patch.Put(c, "company_address", r.CompanyAddress)
	patch.Put(c, "company_phone", r.CompanyPhone)
	patch.Put(c, "company_email", r.CompanyEmail)
	patch.Put(c, "website", r.Website)
	patch.Put(c, "timezone", r.Timezone)

	patch.Put(c, "email_notifications", r.EmailNotifications)
	patch.Put(c, "sms_notifications", r.SMSNotifications)
	patch.Put(c, "payment_reminders", r.PaymentReminders)
	patch.Put(c, "maintenance_alerts", r.MaintenanceAlerts)
	patch.Put(c, "new_customer_alerts", r.NewCustomerAlerts)
	patch.Put(c, "low_balance_alerts", r.LowBalanceAlerts)

	patch.Put(c, "two_factor_auth", r.TwoFactorAuth)
	patch.Put(c, "session_timeout", r.SessionTimeout)
	patch.Put(c, "password_expiry", r.PasswordExpiry)
	patch.Put(c, "login_attempts", r.LoginAttempts)
	patch.Put(c, "ip_whitelist", r.IPWhitelist)
	patch.Put(c, "auto_logout", r.AutoLogout)

	patch.Put(c, "theme", r.Theme)
	patch.Put(c, "primary_color", r.PrimaryColor)
	patch.Put(c, "sidebar_color", r.SidebarColor)
	patch.Put(c, "font_size", r.FontSize)
	patch.Put(c, "language", r.Language)
	return c
}

// Sections accepted by import and produced by export.
var Sections = []string{"general", "notifications", "security", "appearance"}

// FlattenImport merges the contents of every known section over the
// top-level keys and decodes the result as an update request. Keys that do
// not name a setting are dropped.
func FlattenImport(payload map[string]json.RawMessage) (UpdateSettingsRequest, error) {
	flat := make(map[string]json.RawMessage, len(payload))
	for key, value := range payload {
		flat[key] = value
	}
	for _, section := range Sections {
		raw, ok := payload[section]
		if !ok {
			continue
		}
		delete(flat, section)

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			// Only object sections are merged.
			continue
		}
		for key, value := range fields {
			flat[key] = value
		}
	}

	var req UpdateSettingsRequest
	data, err := json.Marshal(flat)
	if err != nil {
		return req, err
	}
	err = json.Unmarshal(data, &req)
	return req, err
}

// ImportResponse acknowledges a settings import.
type ImportResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type GeneralSection struct {
	CompanyName    *string `json:"company_name" yaml:"company_name"`
	CompanyAddress *string `json:"company_address" yaml:"company_address"`
	CompanyPhone   *string `json:"company_phone" yaml:"company_phone"`
	CompanyEmail   *string `json:"company_email" yaml:"company_email"`
	Website        *string `json:"website" yaml:"website"`
	Timezone       string  `json:"timezone" yaml:"timezone"`
}

type NotificationsSection struct {
	EmailNotifications bool `json:"email_notifications" yaml:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications" yaml:"sms_notifications"`
	PaymentReminders   bool `json:"payment_reminders" yaml:"payment_reminders"`
	MaintenanceAlerts  bool `json:"maintenance_alerts" yaml:"maintenance_alerts"`
	NewCustomerAlerts  bool `json:"new_customer_alerts" yaml:"new_customer_alerts"`
	LowBalanceAlerts   bool `json:"low_balance_alerts" yaml:"low_balance_alerts"`
}

type SecuritySection struct {
	TwoFactorAuth  bool    `json:"two_factor_auth" yaml:"two_factor_auth"`
	SessionTimeout int     `json:"session_timeout" yaml:"session_timeout"`
	PasswordExpiry int     `json:"password_expiry" yaml:"password_expiry"`
	LoginAttempts  int     `json:"login_attempts" yaml:"login_attempts"`
	IPWhitelist    *string `json:"ip_whitelist" yaml:"ip_whitelist"`
	AutoLogout     bool    `json:"auto_logout" yaml:"auto_logout"`
}

type AppearanceSection struct {
	Theme        string `json:"theme" yaml:"theme"`
	PrimaryColor string `json:"primary_color" yaml:"primary_color"`
	SidebarColor string `json:"sidebar_color" yaml:"sidebar_color"`
	FontSize     string `json:"font_size" yaml:"font_size"`
	Language     string `json:"language" yaml:"language"`
}

// ExportDocument is the sectioned settings snapshot. It can be posted back
// to the import endpoint unchanged.
type ExportDocument struct {
	General       GeneralSection       `json:"general" yaml:"general"`
	Notifications NotificationsSection `json:"notifications" yaml:"notifications"`
	Security      SecuritySection      `json:"security" yaml:"security"`
	Appearance    AppearanceSection    `json:"appearance" yaml:"appearance"`
	ExportDate    time.Time            `json:"exportDate" yaml:"exportDate"`
}

// NotificationConfig echoes the channels a test notification would use.
type NotificationConfig struct {
	EmailEnabled bool   `json:"email_enabled"`
	SMSEnabled   bool   `json:"sms_enabled"`
	Detail       string `json:"detail"`
}

type TestNotificationResponse struct {
	Message string             `json:"message"`
	Config  NotificationConfig `json:"config"`
}

// ToSettingsResponse converts the domain record to its response form.
func ToSettingsResponse(s *setting.Settings) *SettingsResponse {
	if s == nil {
		return nil
	}
	return &SettingsResponse{
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

// ToExportDocument groups the record into its export sections.
func ToExportDocument(s *setting.Settings, exportedAt time.Time) *ExportDocument {
	return &ExportDocument{
		General: GeneralSection{
			CompanyName:    s.CompanyName,
			CompanyAddress: s.CompanyAddress,
			CompanyPhone:   s.CompanyPhone,
			CompanyEmail:   s.CompanyEmail,
			Website:        s.Website,
			Timezone:       s.Timezone,
		},
		Notifications: NotificationsSection{
			EmailNotifications: s.EmailNotifications,
			SMSNotifications:   s.SMSNotifications,
			PaymentReminders:   s.PaymentReminders,
			MaintenanceAlerts:  s.MaintenanceAlerts,
			NewCustomerAlerts:  s.NewCustomerAlerts,
			LowBalanceAlerts:   s.LowBalanceAlerts,
		},
		Security: SecuritySection{
			TwoFactorAuth:  s.TwoFactorAuth,
			SessionTimeout: s.SessionTimeout,
			PasswordExpiry: s.PasswordExpiry,
			LoginAttempts:  s.LoginAttempts,
			IPWhitelist:    s.IPWhitelist,
			AutoLogout:     s.AutoLogout,
		},
		Appearance: AppearanceSection{
			Theme:        s.Theme,
			PrimaryColor: s.PrimaryColor,
			SidebarColor: s.SidebarColor,
			FontSize:     s.FontSize,
			Language:     s.Language,
		},
		ExportDate: exportedAt,
	}
}
