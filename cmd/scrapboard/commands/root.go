package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"scrapboard/internal/config"
	"scrapboard/internal/ingest"
	"scrapboard/internal/logging"
	"scrapboard/internal/report"
	"scrapboard/internal/stats"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose     bool
	optionsPath string
	outDir      string
	bucket      string
	topN        int
	zeroFill    bool
	openAfter   bool

	cfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "scrapboard <input-file>",
	Short: "Scrapboard turns quality-control workbooks into an interactive scrap-rate dashboard",
	Long: `Scrapboard ingests tabular quality-control records (XLSX workbooks or CSV
reports), aggregates scrap and quality rates across time, machines,
inspectors, parts and categories, and writes a single self-contained HTML
dashboard.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load(optionsPath)
		if err != nil {
			return err
		}

		// Flags override the options file.
		if cmd.Flags().Changed("bucket") {
			cfg.Engine.Bucket = bucket
		}
		if cmd.Flags().Changed("top") {
			cfg.Engine.LeaderboardCap = topN
		}
		if zeroFill {
			cfg.Engine.GapPolicy = stats.GapZeroFill
		}
		if cmd.Flags().Changed("out") {
			cfg.OutputDir = outDir
		}

		switch cfg.Engine.Bucket {
		case "day", "week", "month":
		default:
			return fmt.Errorf("invalid bucket %q: want day, week or month", cfg.Engine.Bucket)
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("Scrapboard starting")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func run(input string) error {
	rows, err := readInput(input)
	if err != nil {
		return err
	}

	records, diags := stats.NewExtractor(cfg.Engine).Extract(rows)

	model, err := stats.BuildModel(records, diags, cfg.Engine)
	if err != nil {
		return err
	}

	now := time.Now()
	html, err := report.Render(model, filepath.Base(input), now)
	if err != nil {
		return err
	}

	path, err := report.SaveTimestamped(cfg.OutputDir, html, now)
	if err != nil {
		return err
	}

	log.Info().
		Str("path", path).
		Int("records", model.Summary.Records).
		Float64("scrapRate", model.Summary.ScrapRate).
		Msg("Dashboard written")

	if openAfter {
		if err := report.Open(path); err != nil {
			log.Warn().Err(err).Msg("Could not open dashboard in browser")
		}
	}
	return nil
}

func readInput(input string) ([]ingest.RawRow, error) {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".xlsx", ".xlsm":
		return ingest.ReadWorkbook(input, cfg.SkipSheets)
	case ".csv", ".txt":
		return ingest.ReadCSV(input)
	default:
		return nil, fmt.Errorf("unsupported input file %q: want .xlsx, .xlsm, .csv or .txt", input)
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().StringVar(&optionsPath, "config", "", "path to a JSON options file")
	rootCmd.Flags().StringVar(&outDir, "out", ".", "output directory for the dashboard")
	rootCmd.Flags().StringVar(&bucket, "bucket", "day", "time-series granularity: day, week or month")
	rootCmd.Flags().IntVar(&topN, "top", 20, "leaderboard cap per dimension")
	rootCmd.Flags().BoolVar(&zeroFill, "zero-fill", false, "insert zero-volume points for periods without records")
	rootCmd.Flags().BoolVar(&openAfter, "open", false, "open the dashboard in the default browser")
}
