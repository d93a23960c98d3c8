// =============================================================================
// Dataset Report Tools - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI and the shared
// plumbing every tool command uses: configuration and logger setup, input
// resolution, and exit-code handling.
//
// COBRA CLI STRUCTURE:
//   rootCmd (datatools)
//   ├── statsCmd     (datatools stats <file|folder>)
//   ├── convertCmd   (datatools convert <file|folder>)
//   ├── wordcountCmd (datatools wordcount <file|folder>)
//   ├── salesCmd     (datatools sales <base_folder>)
//   └── versionCmd   (datatools version)
//
// EXIT CODES:
//   0 - success, including runs with per-record errors
//   1 - missing required input/files, unwritable output
//   2 - missing required CLI argument
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/dataset-report-tools/internal/config"
	"github.com/ginjaninja78/dataset-report-tools/internal/logging"
	"github.com/ginjaninja78/dataset-report-tools/pkg/utils"
)

// cfgFile holds the path to the configuration file, overridable via --config.
var cfgFile string

// verbose forces debug-level logging when set.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "datatools",
	Short: "Dataset report tools - aggregate small text/JSON datasets into text reports",
	Long: `Dataset report tools is a set of independent command-line utilities that
read small text or JSON datasets, validate and clean their records, compute a
deterministic aggregate, and write a human-readable report.

Each tool shares the same pipeline shape: load the input, classify every
record as valid or invalid (invalid records are reported with file, line and
reason, never silently dropped), aggregate the valid data, and write a
per-input report section plus a total-elapsed footer. Per-record errors never
abort a run.

Example Usage:
  datatools stats data/TC1.txt       # Statistics for one file
  datatools convert data/P2          # Convert every TC*.txt in a folder
  datatools wordcount data/P3
  datatools sales data/P5            # Base folder with TC case subfolders`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps failures to process exit codes.
// Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// exitError carries a specific process exit code out through cobra's Execute.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// inputError wraps a missing-input failure with exit code 1.
func inputError(format string, args ...any) error {
	return &exitError{code: 1, err: fmt.Errorf(format, args...)}
}

// missingArg reports an absent required positional argument with exit code 2.
func missingArg(cmd *cobra.Command) error {
	_ = cmd.Usage()
	return &exitError{code: 2, err: fmt.Errorf("missing required argument, see usage: %s", cmd.UseLine())}
}

// runtime bundles the configuration and logger shared by every tool command.
type runtime struct {
	cfg config.Config
	log *logging.Logger
}

// setup loads the configuration and builds the logger. --verbose overrides
// the configured log level.
func setup() (*runtime, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if verbose {
		level = logging.DebugLevel
	}
	log, err := logging.New(level, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, log: log}, nil
}

// resolveDataFiles expands the positional argument of the text tools: a
// folder becomes its sorted TC*.txt contents (zero matches is a fatal setup
// error), anything else is treated as a single input file. A missing single
// file is not fatal here; the loader records it as a file-level error so a
// batch caller sees consistent partial-failure behavior.
func resolveDataFiles(arg string) ([]string, error) {
	if !utils.IsDir(arg) {
		return []string{arg}, nil
	}
	files, err := utils.ListTCFiles(arg)
	if err != nil {
		return nil, inputError("%v", err)
	}
	if len(files) == 0 {
		return nil, inputError("no TC*.txt files found in folder: %s", arg)
	}
	return files, nil
}
