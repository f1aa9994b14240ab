package ingest

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook loads every data sheet of an XLSX workbook into raw rows.
// Sheets listed in skipSheets (case-insensitive) are treated as reference
// data and ignored. Each row is tagged with its sheet name under SheetKey.
func ReadWorkbook(path string, skipSheets []string) ([]RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	skip := make(map[string]bool, len(skipSheets))
	for _, s := range skipSheets {
		skip[strings.ToLower(strings.TrimSpace(s))] = true
	}

	var rows []RawRow
	for _, sheet := range f.GetSheetList() {
		if skip[strings.ToLower(strings.TrimSpace(sheet))] {
			log.Debug().Str("sheet", sheet).Msg("Skipping reference sheet")
			continue
		}

		grid, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		extracted := FromGrid(grid, sheet)
		log.Info().Str("sheet", sheet).Int("rows", len(extracted)).Msg("Sheet extracted")
		rows = append(rows, extracted...)
	}

	return rows, nil
}

// FromGrid converts a header-first grid of cells into raw rows tagged with a
// category. Row 1 is the header row; blank headers become positional
// Column_N names so cell values are never orphaned. Rows with no non-empty
// cell are skipped here, before extraction ever sees them.
func FromGrid(grid [][]string, category string) []RawRow {
	if len(grid) < 2 {
		return nil
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = h
	}

	var rows []RawRow
	for _, line := range grid[1:] {
		row := make(RawRow, len(headers)+1)
		hasData := false
		for i, cell := range line {
			val := strings.TrimSpace(cell)
			if val == "" {
				continue
			}
			header := fmt.Sprintf("Column_%d", i+1)
			if i < len(headers) {
				header = headers[i]
			}
			row[header] = val
			hasData = true
		}
		if !hasData {
			continue
		}
		row[SheetKey] = category
		rows = append(rows, row)
	}

	return rows
}
