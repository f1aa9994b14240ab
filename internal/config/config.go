package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"scrapboard/internal/stats"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Engine stats.Config

	// SkipSheets lists workbook sheets treated as reference data, never
	// records.
	SkipSheets []string

	OutputDir string
	LogDir    string
}

// DefaultSkipSheets covers the reference sheet the CONTROL workbooks carry.
var DefaultSkipSheets = []string{"Drop Down List"}

// Load loads the configuration from .env files, environment variables and an
// optional JSON options file.
func Load(optionsPath string) (*AppConfig, error) {
	// 1. Try to load .env from the executable's directory first.
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to the current working directory (go run / development).
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	cfg := &AppConfig{
		Engine:     stats.DefaultConfig(),
		SkipSheets: DefaultSkipSheets,
		OutputDir:  getEnv("OUTPUT_DIR", "."),
		LogDir:     getEnv("LOGS_FOLDER", ""),
	}

	// 3. Merge the options file over the defaults.
	if optionsPath != "" {
		opts, err := LoadOptions(optionsPath)
		if err != nil {
			return nil, err
		}
		opts.Apply(cfg)
		log.Info().Str("path", optionsPath).Msg("Options file applied")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
