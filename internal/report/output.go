package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/browser"
)

// SaveTimestamped writes the rendered dashboard under dir with the
// conventional timestamped file name and returns the full path.
func SaveTimestamped(dir string, html []byte, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	name := fmt.Sprintf("SCRAP_RATE_Dashboard_%s.html", now.Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, html, 0644); err != nil {
		return "", fmt.Errorf("write dashboard: %w", err)
	}
	return path, nil
}

// Open opens a generated dashboard in the default browser.
func Open(path string) error {
	return browser.OpenFile(path)
}
