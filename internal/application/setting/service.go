// Package setting provides the application service for the system settings
// singleton.
package setting

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/fiberdesk/fiberdesk/internal/application/setting/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/setting"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

const (
	importedMessage         = "Settings imported successfully"
	testNotificationMessage = "Test notification sent"
	testNotificationDetail  = "Test notification executed"
)

// Service manages the settings record. It is safe for concurrent use; the
// record is always read from storage.
type Service struct {
	repo      setting.Repository
	txManager *db.TransactionManager
	logger    logger.Interface
}

// NewService creates the settings service.
func NewService(repo setting.Repository, txManager *db.TransactionManager, logger logger.Interface) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// EnsureExists inserts the default record when none exists. It is run once
// at startup and may be repeated safely.
func (s *Service) EnsureExists(ctx context.Context) error {
	inserted, err := s.repo.InsertIfAbsent(ctx, setting.Defaults())
	if err != nil {
		s.logger.Errorw("failed to ensure settings exist", "error", err)
		return err
	}
	if inserted {
		s.logger.Infow("default settings created", "id", setting.SingletonID)
	}
	return nil
}

// Get returns the settings record, creating it with defaults on first access.
func (s *Service) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	current, err := s.fetchOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToSettingsResponse(current), nil
}

// Update applies the supplied fields and returns the refreshed record.
func (s *Service) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	var updated *setting.Settings
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.fetchOrCreate(ctx)
		if err != nil {
			return err
		}

		changes := req.Changes()
		if len(changes) > 0 {
			if err := s.repo.Update(ctx, current.ID, changes); err != nil {
				return err
			}
		}

		updated, err = s.repo.Get(ctx)
		return err
	})
	if err != nil {
		s.logger.Errorw("failed to update settings", "error", err)
		return nil, err
	}

	metrics.RecordWrite("settings", "update")
	s.logger.Infow("settings updated", "id", updated.ID)
	return dto.ToSettingsResponse(updated), nil
}

// Import flattens a sectioned document and applies it as a partial update.
func (s *Service) Import(ctx context.Context, payload map[string]json.RawMessage) (*dto.ImportResponse, error) {
	req, err := dto.FlattenImport(payload)
	if err != nil {
		return nil, utils.TranslateBindError(err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	updated, err := s.Update(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.ImportResponse{Message: importedMessage, ID: updated.ID}, nil
}

// Export returns the sectioned snapshot of the current record.
func (s *Service) Export(ctx context.Context) (*dto.ExportDocument, error) {
	current, err := s.fetchOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToExportDocument(current, biztime.NowUTC()), nil
}

// TestNotifications acknowledges a test send without delivering anything.
func (s *Service) TestNotifications(ctx context.Context) (*dto.TestNotificationResponse, error) {
	current, err := s.fetchOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("test notification requested",
		"email_enabled", current.EmailNotifications,
		"sms_enabled", current.SMSNotifications,
	)

	return &dto.TestNotificationResponse{
		Message: testNotificationMessage,
		Config: dto.NotificationConfig{
			EmailEnabled: current.EmailNotifications,
			SMSEnabled:   current.SMSNotifications,
			Detail:       testNotificationDetail,
		},
	}, nil
}

func (s *Service) fetchOrCreate(ctx context.Context) (*setting.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err == nil {
		return current, nil
	}
	if !stderrors.Is(err, setting.ErrSettingsNotFound) {
		return nil, err
	}

	if err := s.EnsureExists(ctx); err != nil {
		return nil, err
	}
	current, err = s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings after creation: %w", err)
	}
	return current, nil
}
