// Package spreadsheet reads and writes customer workbooks.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CustomerSheet is the sheet name used on export.
const CustomerSheet = "Customers"

// CustomerColumns is the column order of exported workbooks. Imports match
// columns by header so order and extra columns do not matter there.
var CustomerColumns = []string{
	"customer_id",
	"name",
	"email",
	"phone",
	"address",
	"latitude",
	"longitude",
	"monthly_fee",
	"registration_date",
	"status",
}

var columnWidths = map[string]float64{
	"customer_id":       16,
	"name":              24,
	"email":             28,
	"phone":             16,
	"address":           40,
	"latitude":          14,
	"longitude":         14,
	"monthly_fee":       14,
	"registration_date": 18,
	"status":            12,
}

// Row is one data row keyed by column name.
type Row map[string]interface{}

// RawRow is one imported row. Number is the 1-based sheet row.
type RawRow struct {
	Number int
	Values map[string]string
}

// HeaderLabel renders a column name as a header, e.g. "monthly_fee" → "Monthly Fee".
func HeaderLabel(column string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(column, "_", " "))
}

// normalizeHeader maps a header cell back to its column name.
func normalizeHeader(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}

// WriteCustomers writes rows as an xlsx workbook with a styled, frozen header.
func WriteCustomers(w io.Writer, rows []Row) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", CustomerSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#1E40AF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, column := range CustomerColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(CustomerSheet, cell, HeaderLabel(column)); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(CustomerSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(CustomerSheet, name, name, columnWidths[column]); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for r, row := range rows {
		for c, column := range CustomerColumns {
			value, ok := row[column]
			if !ok || value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(CustomerSheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(CustomerSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ReadCustomers reads the first sheet of an xlsx workbook. The first row is
// the header; blank rows are skipped.
func ReadCustomers(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return []RawRow{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, label := range rows[0] {
		header[i] = normalizeHeader(label)
	}

	result := make([]RawRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		values := make(map[string]string, len(header))
		blank := true
		for c, value := range cells {
			if c >= len(header) || header[c] == "" {
				continue
			}
			value = strings.TrimSpace(value)
			if value != "" {
				blank = false
			}
			values[header[c]] = value
		}
		if blank {
			continue
		}
		result = append(result, RawRow{Number: i + 2, Values: values})
	}
	return result, nil
}
