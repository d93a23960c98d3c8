// =============================================================================
// Dataset Report Tools - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - loader
//   - validation
//   - report
//
// =============================================================================

package types

import "fmt"

// ErrorRecord describes a single non-fatal problem found while processing an
// input: a malformed token, an empty line, or an unreadable file. Records are
// accumulated per run and reported; they never abort the run.
type ErrorRecord struct {
	// File is the input the problem was found in. Token-level records carry
	// the base name; file-level records carry the path as given.
	File string

	// Line is the 1-based line number, or 0 for file-level problems.
	Line int

	// Reason describes the offending token or failure, including the line
	// position wording for record-level problems ("line 3: 'abc' skipped",
	// "Empty line at line 2").
	Reason string
}

// String renders the record the way it appears on the console and in reports.
func (e ErrorRecord) String() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s - %s", e.File, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Reason)
}
