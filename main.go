// =============================================================================
// Dataset Report Tools - Main Entry Point
// =============================================================================
//
// This is the main entry point for the dataset report tools CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   datatools stats <file|folder>      - Descriptive statistics over numeric data
//   datatools convert <file|folder>    - Binary/hex conversion of integer data
//   datatools wordcount <file|folder>  - Word frequency counts
//   datatools sales <base_folder>      - Sales totals against a product catalogue
//   datatools version                  - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core pipeline logic (not for external import)
//   - pkg/       : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/dataset-report-tools/cmd"
)

func main() {
	cmd.Execute()
}
