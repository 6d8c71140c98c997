package setting

import "errors"

var (
	// ErrSettingsNotFound is returned when the settings row has not been created yet
	ErrSettingsNotFound = errors.New("settings not found")
)
