package constants

const (
	// Content Types
	ContentTypeYAML = "application/x-yaml"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Table names
	TableOLTs          = "olts"
	TableODCs          = "odcs"
	TableODPs          = "odps"
	TableCustomers     = "customers"
	TablePackages      = "packages"
	TableSubscriptions = "subscriptions"
	TablePayments      = "payments"
	TableSettings      = "system_settings"
)
