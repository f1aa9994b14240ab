package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ReadCSV loads a delimited report file into raw rows. The file base name
// (without extension) becomes the category, mirroring the sheet-name tagging
// of workbook input.
func ReadCSV(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse report %q: %w", path, err)
	}

	base := filepath.Base(path)
	category := strings.TrimSuffix(base, filepath.Ext(base))

	rows := FromGrid(grid, category)
	log.Info().Str("file", base).Int("rows", len(rows)).Msg("Report extracted")
	return rows, nil
}
