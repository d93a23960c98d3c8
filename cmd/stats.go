// =============================================================================
// Dataset Report Tools - Stats Command
// =============================================================================
//
// This file defines the 'stats' command: descriptive statistics (count, mean,
// median, mode, population variance, standard deviation) over numeric tokens
// in one file or every TC*.txt file in a folder.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/dataset-report-tools/internal/loader"
	"github.com/ginjaninja78/dataset-report-tools/internal/report"
	"github.com/ginjaninja78/dataset-report-tools/internal/stats"
	"github.com/ginjaninja78/dataset-report-tools/internal/types"
	"github.com/ginjaninja78/dataset-report-tools/internal/validation"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file|folder>",
	Short: "Compute descriptive statistics from numeric data files",
	Long: `The stats command reads numeric tokens (separated by commas and/or
whitespace) from a file, or from every TC*.txt file in a folder, and computes
count, mean, median, mode, population variance and population standard
deviation over the valid values.

Tokens that fail float parsing are reported with file, line and token, and
excluded from the computation; they never abort the run. The report is
written to the configured statistics results file and mirrored to the
console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return missingArg(cmd)
	}
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.log.Close()

	files, err := resolveDataFiles(args[0])
	if err != nil {
		return err
	}

	rep := report.New()
	rt.log.Info("run %s: computing statistics for %d input(s)", rep.RunID, len(files))

	for _, file := range files {
		section, errs := statsSection(file)
		rep.AddSection(section)
		streamErrors(rt, errs)
	}

	text := rep.Render()
	fmt.Print(text)
	if err := report.WriteFile(rt.cfg.StatisticsPath(), text); err != nil {
		return &exitError{code: 1, err: err}
	}
	rt.log.Info("results saved to %s", rt.cfg.StatisticsPath())
	return nil
}

// statsSection builds the report section for a single input file.
func statsSection(path string) (string, []types.ErrorRecord) {
	start := time.Now()

	tokens, errs := loader.ReadTokens(path)
	values, verrs := validation.ClassifyFloats(filepath.Base(path), tokens)
	errs = append(errs, verrs...)

	elapsed := time.Since(start).Seconds()
	header := fmt.Sprintf(
		"\n=== Results for %s ===\nDescriptive Statistics Results\n-------------------------------\n",
		filepath.Base(path),
	)

	if len(values) == 0 {
		return header +
			"No valid numeric data found. No statistics computed.\n" +
			elapsedLine(elapsed), errs
	}

	s := stats.Describe(values)
	body := fmt.Sprintf(
		"Count: %d\nMean: %v\nMedian: %v\nMode: %s\nVariance (population): %v\nStandard Deviation (population): %v\n",
		s.Count, s.Mean, s.Median, stats.FormatModes(s.Modes), s.Variance, s.StdDev,
	)
	return header + body + elapsedLine(elapsed), errs
}

// elapsedLine renders the per-input elapsed-time line shared by the text
// tools.
func elapsedLine(seconds float64) string {
	return fmt.Sprintf("Elapsed time (seconds): %v\n", seconds)
}

// streamErrors logs per-record errors to the console as they are discovered,
// before the final report is written.
func streamErrors(rt *runtime, errs []types.ErrorRecord) {
	for _, e := range errs {
		rt.log.Warn("%s", e)
	}
}
