// =============================================================================
// Dataset Report Tools - Wordcount Command
// =============================================================================
//
// This file defines the 'wordcount' command: word frequency counts over one
// file or every TC*.txt file in a folder. Words are lower-cased and reported
// in first-seen order; an empty line is an explicit error, not a silent skip.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/dataset-report-tools/internal/loader"
	"github.com/ginjaninja78/dataset-report-tools/internal/report"
	"github.com/ginjaninja78/dataset-report-tools/internal/types"
	"github.com/ginjaninja78/dataset-report-tools/internal/wordcount"
)

var wordcountCmd = &cobra.Command{
	Use:   "wordcount <file|folder>",
	Short: "Count distinct words and their frequency in text files",
	Long: `The wordcount command reads words (separated by single spaces) from a
file, or from every TC*.txt file in a folder, lower-cases them and counts
occurrences per distinct word, reported in the order words first appear.

Empty lines are reported as errors and contribute no words. Per-file results
print to the console as they are computed; the full report is written to the
configured word count results file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWordCount(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(wordcountCmd)
}

func runWordCount(cmd *cobra.Command, args []string) error {
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

	start := time.Now()
	rep := report.New()
	rt.log.Info("run %s: counting words in %d input(s)", rep.RunID, len(files))

	for _, file := range files {
		section, errs := wordCountSection(file)
		streamErrors(rt, errs)
		// Per-file results are visible as soon as they are computed.
		fmt.Print(section)
		rep.AddSection(section)
	}

	fmt.Printf("\n=== Total elapsed time (seconds): %v ===\n", time.Since(start).Seconds())

	text := rep.Render()
	if err := report.WriteFile(rt.cfg.WordCountPath(), text); err != nil {
		return &exitError{code: 1, err: err}
	}
	rt.log.Info("results saved to %s", rt.cfg.WordCountPath())
	return nil
}

// wordCountSection builds the report section for a single input file.
func wordCountSection(path string) (string, []types.ErrorRecord) {
	start := time.Now()

	words, errs := loader.ReadWords(path)
	counter := wordcount.NewCounter()
	for _, w := range words {
		counter.Add(w.Text)
	}
	elapsed := time.Since(start).Seconds()

	var b strings.Builder
	fmt.Fprintf(&b,
		"\n=== Results for %s ===\nWord Count Results\n------------------\n",
		filepath.Base(path),
	)
	for _, e := range counter.Entries() {
		fmt.Fprintf(&b, "%s: %d\n", e.Word, e.Count)
	}
	b.WriteString(elapsedLine(elapsed))
	return b.String(), errs
}
