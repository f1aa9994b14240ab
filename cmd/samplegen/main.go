package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"scrapboard/cmd/samplegen/engine"
)

func main() {
	scenario := flag.String("scenario", "clean", "Scenario to generate: clean, noisy, drift")
	out := flag.String("out", "./CONTROL_sample.csv", "Output CSV file")
	days := flag.Int("days", 30, "Number of production days to cover")
	rows := flag.Int("rows", 200, "Number of inspection rows to generate")
	seed := flag.Int64("seed", 1, "Random seed (fixed for reproducible samples)")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Days:     *days,
		Rows:     *rows,
		Seed:     *seed,
		Now:      time.Now(),
	}

	fmt.Printf("Generating scenario '%s' (%d rows over %d days) to %s...\n", cfg.Scenario, cfg.Rows, cfg.Days, *out)

	records := engine.Generate(cfg)
	if err := engine.Save(*out, records); err != nil {
		fmt.Printf("Failed to save sample data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
