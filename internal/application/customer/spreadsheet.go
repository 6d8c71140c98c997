package customer

import (
	"context"
	"io"

	"github.com/fiberdesk/fiberdesk/internal/application/customer/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/spreadsheet"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

// Export writes every customer matching filter to w as an xlsx workbook.
func (s *Service) Export(ctx context.Context, filter customer.Filter, w io.Writer) error {
	rows := make([]spreadsheet.Row, 0)
	page := query.Page{Skip: 0, Limit: query.MaxLimit}
	for {
		batch, err := s.customerRepo.List(ctx, filter, page)
		if err != nil {
			s.logger.Errorw("failed to load customers for export", "error", err)
			return err
		}
		for _, c := range batch {
			rows = append(rows, dto.ToSpreadsheetRow(c))
		}
		if len(batch) < page.Size() {
			break
		}
		page.Skip += page.Size()
	}

	if err := spreadsheet.WriteCustomers(w, rows); err != nil {
		s.logger.Errorw("failed to write customer workbook", "error", err)
		return err
	}
	s.logger.Infow("customers exported", "count", len(rows))
	return nil
}

// Import creates one customer per data row of the workbook. Each row is
// committed on its own; a failing row is reported and does not stop the rest.
func (s *Service) Import(ctx context.Context, r io.Reader) (*dto.ImportResponse, error) {
	rows, err := spreadsheet.ReadCustomers(r)
	if err != nil {
		return nil, errors.NewValidationError("Invalid spreadsheet", err.Error())
	}

	result := &dto.ImportResponse{Failed: []dto.ImportFailure{}}
	today := biztime.Today()
	for _, row := range rows {
		if err := s.importRow(ctx, row.Values, today); err != nil {
			result.Failed = append(result.Failed, dto.ImportFailure{Row: row.Number, Error: importErrorMessage(err)})
			continue
		}
		result.Imported++
	}

	s.logger.Infow("customers imported", "imported", result.Imported, "failed", len(result.Failed))
	return result, nil
}

func (s *Service) importRow(ctx context.Context, values map[string]string, today biztime.Date) error {
	req, err := dto.RequestFromRow(values, today)
	if err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	c := req.ToDomain()
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.create(ctx, c)
	})
	if err != nil {
		return err
	}
	metrics.RecordWrite("customer", "create")
	return nil
}

func importErrorMessage(err error) string {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return "Internal server error occurred"
	}
	if appErr.Details != "" {
		return appErr.Message + ": " + appErr.Details
	}
	return appErr.Message
}
