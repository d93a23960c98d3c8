// =============================================================================
// Dataset Report Tools - Convert Command
// =============================================================================
//
// This file defines the 'convert' command: base conversion of integer tokens
// to binary and hexadecimal, computed by repeated division rather than the
// standard library's radix formatting.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/dataset-report-tools/internal/baseconv"
	"github.com/ginjaninja78/dataset-report-tools/internal/loader"
	"github.com/ginjaninja78/dataset-report-tools/internal/report"
	"github.com/ginjaninja78/dataset-report-tools/internal/types"
	"github.com/ginjaninja78/dataset-report-tools/internal/validation"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|folder>",
	Short: "Convert integer data files to binary and hexadecimal",
	Long: `The convert command reads integer tokens (separated by commas and/or
whitespace) from a file, or from every TC*.txt file in a folder, and renders
each one in binary and hexadecimal using repeated division by the base.

A valid token is an optional sign followed by decimal digits; tokens with
decimal points, exponents or other characters are reported and skipped. The
tabular report is written to the configured conversion results file and
mirrored to the console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
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
	rt.log.Info("run %s: converting %d input(s)", rep.RunID, len(files))

	for _, file := range files {
		section, errs := convertSection(file)
		rep.AddSection(section)
		streamErrors(rt, errs)
	}

	text := rep.Render()
	fmt.Print(text)
	if err := report.WriteFile(rt.cfg.ConversionPath(), text); err != nil {
		return &exitError{code: 1, err: err}
	}
	rt.log.Info("results saved to %s", rt.cfg.ConversionPath())
	return nil
}

// convertSection builds the tabular report section for a single input file.
func convertSection(path string) (string, []types.ErrorRecord) {
	start := time.Now()

	tokens, errs := loader.ReadTokens(path)
	values, verrs := validation.ClassifyIntegers(filepath.Base(path), tokens)
	errs = append(errs, verrs...)

	var rows []string
	for _, n := range values {
		rows = append(rows, fmt.Sprintf("%d\t%s\t%s", n, baseconv.ToBinary(n), baseconv.ToHex(n)))
	}
	elapsed := time.Since(start).Seconds()

	var b strings.Builder
	fmt.Fprintf(&b,
		"\n=== Results for %s ===\nConversion Results\n------------------\nDecimal\tBinary\tHexadecimal\n-------\t------\t-----------\n",
		filepath.Base(path),
	)
	if len(rows) > 0 {
		b.WriteString(strings.Join(rows, "\n"))
		b.WriteString("\n")
	}
	b.WriteString(elapsedLine(elapsed))
	return b.String(), errs
}
