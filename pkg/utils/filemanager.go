// =============================================================================
// Shipping List Processor - File Manager Utility
// =============================================================================
//
// File management helpers shared by the commands:
//   - directory creation for output locations
//   - output file naming with placeholder expansion
//   - per-run summary log generation
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDirectories creates the given directories when they do not exist.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// GenerateOutputFileName expands a naming format into a concrete file name.
//
// Supported placeholders:
//   {name}      - Logical document name
//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//   {uuid}      - A random UUID
func GenerateOutputFileName(format, name string) string {
	out := format
	out = strings.ReplaceAll(out, "{name}", name)
	out = strings.ReplaceAll(out, "{timestamp}", time.Now().Format("20060102_150405"))
	out = strings.ReplaceAll(out, "{uuid}", uuid.New().String())
	return out
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// ProcessingSummary captures the outcome of one pipeline run.
type ProcessingSummary struct {
	// ManifestFile is the input manifest path.
	ManifestFile string

	// InputRows is the number of manifest rows read.
	InputRows int

	// DedupedRows is the number of rows after deduplication.
	DedupedRows int

	// OutputFiles lists the generated workbooks.
	OutputFiles []string

	// StartTime and EndTime bound the run.
	StartTime time.Time
	EndTime   time.Time
}

// WriteSummaryLog writes the run summary to a timestamped text file in
// outputDir and returns its path.
func WriteSummaryLog(summary ProcessingSummary, outputDir string) (string, error) {
	logPath := filepath.Join(outputDir,
		fmt.Sprintf("summary_%s.log", summary.EndTime.Format("20060102_150405")))

	f, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary log: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "=== Shipping List Processing Summary ===")
	fmt.Fprintf(w, "Manifest:        %s\n", summary.ManifestFile)
	fmt.Fprintf(w, "Input rows:      %d\n", summary.InputRows)
	fmt.Fprintf(w, "Deduplicated:    %d\n", summary.DedupedRows)
	fmt.Fprintf(w, "Started:         %s\n", summary.StartTime.Format(time.RFC3339))
	fmt.Fprintf(w, "Finished:        %s\n", summary.EndTime.Format(time.RFC3339))
	fmt.Fprintf(w, "Elapsed:         %s\n", summary.EndTime.Sub(summary.StartTime))
	fmt.Fprintln(w, "Output files:")
	for _, file := range summary.OutputFiles {
		fmt.Fprintf(w, "  - %s\n", file)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to write summary log: %w", err)
	}

	return logPath, nil
}
