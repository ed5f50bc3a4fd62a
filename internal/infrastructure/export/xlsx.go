// Package export renders tabular data to spreadsheet files.
package export

import (
	"bytes"
	"fmt"

	"github.com/precast-erp/backend/internal/application/common"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type of generated workbooks
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	maxSheetName  = 31
	defaultWidth  = 18
	firstDataRow  = 2
	defaultSheet  = "Sheet1"
	fallbackTitle = "Export"
)

// XLSXExporter writes tables as worksheets of one workbook
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSXExporter
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// ExportXLSX writes each table to its own sheet with a bold header row
func (XLSXExporter) ExportXLSX(tables ...common.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if len(tables) == 0 {
		tables = []common.Table{{Title: fallbackTitle}}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, table := range tables {
		sheet := sheetName(table.Title, i)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		if err := writeTable(f, sheet, table, bold); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, table common.Table, headerStyle int) error {
	if len(table.Headers) > 0 {
		headers := make([]any, len(table.Headers))
		for i, h := range table.Headers {
			headers[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
			return fmt.Errorf("write headers: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("style headers: %w", err)
		}
		lastCol, err := excelize.ColumnNumberToName(len(headers))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "A", lastCol, defaultWidth); err != nil {
			return err
		}
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+firstDataRow)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return nil
}

func sheetName(title string, index int) string {
	if title == "" {
		title = fmt.Sprintf("%s %d", fallbackTitle, index+1)
	}
	runes := []rune(title)
	if len(runes) > maxSheetName {
		runes = runes[:maxSheetName]
	}
	return string(runes)
}

var _ common.TableExporter = XLSXExporter{}
