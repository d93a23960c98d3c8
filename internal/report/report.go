// =============================================================================
// Dataset Report Tools - Report Module
// =============================================================================
//
// This module accumulates per-input report sections and writes the final
// UTF-8 text report: parent directories are created if absent and the file is
// overwritten on each run. The rendered report ends with a total-elapsed-time
// footer. Each report carries a run ID for correlating report files with log
// lines.
//
// =============================================================================

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/dataset-report-tools/pkg/utils"
)

// Report accumulates sections for one run.
type Report struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	start    time.Time
	sections []string
}

// New creates an empty Report and starts the total-elapsed clock.
func New() *Report {
	return &Report{
		RunID: uuid.New().String(),
		start: time.Now(),
	}
}

// AddSection appends one per-input section. Sections carry their own leading
// and trailing whitespace so each tool controls its exact layout.
func (r *Report) AddSection(s string) {
	r.sections = append(r.sections, s)
}

// Sections returns the number of sections added so far.
func (r *Report) Sections() int {
	return len(r.sections)
}

// Render joins all sections and appends the total-elapsed footer.
func (r *Report) Render() string {
	total := time.Since(r.start).Seconds()
	return strings.Join(r.sections, "") +
		fmt.Sprintf("\n=== Total elapsed time (seconds): %v ===\n", total)
}

// WriteFile writes already-rendered report text to path, creating parent
// directories as needed and overwriting any previous report. Callers render
// once and reuse the text for the console mirror and the file.
func WriteFile(path, text string) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Rule returns a horizontal rule of n repeated characters.
func Rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}
