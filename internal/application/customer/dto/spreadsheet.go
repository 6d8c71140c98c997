package dto

import (
	"fmt"
	"strconv"

	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/spreadsheet"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
)

// ToSpreadsheetRow flattens a customer into export columns. Absent
// coordinates are left as empty cells.
func ToSpreadsheetRow(c *customer.Customer) spreadsheet.Row {
	row := spreadsheet.Row{
		"customer_id":       c.CustomerID,
		"name":              c.Name,
		"email":             c.Email,
		"phone":             c.Phone,
		"address":           c.Address,
		"monthly_fee":       c.MonthlyFee,
		"registration_date": c.RegistrationDate.String(),
		"status":            c.Status.String(),
	}
	if c.Latitude != nil {
		row["latitude"] = *c.Latitude
	}
	if c.Longitude != nil {
		row["longitude"] = *c.Longitude
	}
	return row
}

// RequestFromRow converts an imported row into a create request. Imported
// customers always start pending; a blank registration date means today.
func RequestFromRow(values map[string]string, today biztime.Date) (CreateCustomerRequest, error) {
	phone := values["phone"]
	req := CreateCustomerRequest{
		CustomerID: values["customer_id"],
		Name:       values["name"],
		Email:      values["email"],
		Phone:      &phone,
		Address:    values["address"],
	}

	var err error
	if req.Latitude, err = parseOptionalFloat(values, "latitude"); err != nil {
		return req, err
	}
	if req.Longitude, err = parseOptionalFloat(values, "longitude"); err != nil {
		return req, err
	}
	if req.MonthlyFee, err = parseOptionalFloat(values, "monthly_fee"); err != nil {
		return req, err
	}

	registered := today
	if raw := values["registration_date"]; raw != "" {
		registered, err = biztime.ParseDate(raw)
		if err != nil {
			return req, errors.NewValidationError(fmt.Sprintf("invalid registration_date %q, expected YYYY-MM-DD", raw))
		}
	}
	req.RegistrationDate = &registered

	pending := customer.StatusPending.String()
	req.Status = &pending
	return req, nil
}

func parseOptionalFloat(values map[string]string, column string) (*float64, error) {
	raw := values[column]
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be a number", column))
	}
	return &v, nil
}
