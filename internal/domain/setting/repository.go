package setting

import "context"

// Repository defines persistence for the settings singleton.
type Repository interface {
	// Get returns the first settings row or ErrSettingsNotFound.
	Get(ctx context.Context) (*Settings, error)
	// InsertIfAbsent creates s under its fixed id unless a row already
	// exists there. It reports whether a row was inserted.
	InsertIfAbsent(ctx context.Context, s *Settings) (bool, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
}
