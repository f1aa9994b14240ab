package engine

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// GeneratorConfig controls sample workbook generation.
type GeneratorConfig struct {
	Scenario string // "clean", "noisy" or "drift"
	Days     int
	Rows     int
	Seed     int64
	Now      time.Time
}

// SampleRow is one generated inspection row in source-header form.
type SampleRow struct {
	Date      string
	Machine   string
	Inspector string
	Part      string
	Checked   string
	Suspect   string
}

var (
	machines   = []string{"M-01", "M-02", "M-03", "M-04", "M-05", "M-06", "M-07", "M-08"}
	inspectors = []string{"Popescu", "Ionescu", "Georgescu", "Dumitrescu", "Stan"}
	parts      = []string{"R900305231", "R900412877", "F-688038.02-0411.WH.WE36", "0510-1234-02", "R900778210"}
)

// Generate produces synthetic inspection rows. The clean scenario keeps
// everything well-formed; noisy mixes in the malformed cells real workbooks
// carry (bad dates, negative counts, unit suffixes); drift ramps the scrap
// rate up over time.
func Generate(cfg GeneratorConfig) []SampleRow {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if cfg.Days <= 0 {
		cfg.Days = 30
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var rows []SampleRow
	for i := 0; i < cfg.Rows; i++ {
		day := cfg.Now.AddDate(0, 0, -rng.Intn(cfg.Days))
		checked := 50 + rng.Intn(450)

		// 1. Baseline scrap probability per scenario
		p := 0.015
		switch cfg.Scenario {
		case "noisy":
			p = 0.03
		case "drift":
			age := float64(cfg.Now.Sub(day).Hours()) / 24.0
			p = 0.01 + 0.05*(1-age/float64(cfg.Days)) // recent days scrap more
		}
		suspect := 0
		for j := 0; j < checked; j++ {
			if rng.Float64() < p {
				suspect++
			}
		}

		row := SampleRow{
			Date:      day.Format("02.01.2006"),
			Machine:   machines[rng.Intn(len(machines))],
			Inspector: inspectors[rng.Intn(len(inspectors))],
			Part:      parts[rng.Intn(len(parts))],
			Checked:   strconv.Itoa(checked),
			Suspect:   strconv.Itoa(suspect),
		}

		// 2. Noise injection to exercise the extractor's recovery paths
		if cfg.Scenario == "noisy" {
			switch rng.Intn(10) {
			case 0:
				row.Date = "sometime last week"
			case 1:
				row.Suspect = "-3"
			case 2:
				row.Checked = row.Checked + " pcs"
			case 3:
				row.Checked = "0"
				row.Suspect = "0"
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// Save writes the rows as a CONTROL-style CSV with the Romanian headers the
// default alias map recognizes.
func Save(path string, rows []SampleRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sample file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"Data", "Masina", "Controlor", "Reper", "Cantitate verificata dimensional", "SUSPECTE"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Date, r.Machine, r.Inspector, r.Part, r.Checked, r.Suspect}); err != nil {
			return err
		}
	}
	return w.Error()
}
