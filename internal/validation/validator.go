// =============================================================================
// Dataset Report Tools - Validation Module
// =============================================================================
//
// Token-level validation for the statistics and conversion pipelines. Errors
// are collected, not thrown: every invalid token is retained as an
// ErrorRecord with file, line and reason, and is merely excluded from
// aggregation. For every input, valid count + invalid count equals the total
// token count.
//
// =============================================================================

package validation

import (
	"fmt"
	"strconv"

	"github.com/ginjaninja78/dataset-report-tools/internal/loader"
	"github.com/ginjaninja78/dataset-report-tools/internal/types"
)

// IsIntegerToken reports whether tok is a base-10 integer literal: an
// optional leading sign followed by one or more decimal digits. Decimal
// points, exponents and bare signs are rejected.
func IsIntegerToken(tok string) bool {
	if tok == "" || tok == "+" || tok == "-" {
		return false
	}
	start := 0
	if tok[0] == '+' || tok[0] == '-' {
		start = 1
	}
	if start >= len(tok) {
		return false
	}
	for _, ch := range tok[start:] {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// ClassifyFloats splits tokens into parsed floating-point values and
// ErrorRecords for everything that fails float parsing. file is the base
// name used in the records.
func ClassifyFloats(file string, tokens []loader.Token) ([]float64, []types.ErrorRecord) {
	var (
		values []float64
		errs   []types.ErrorRecord
	)
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			errs = append(errs, skipped(file, tok))
			continue
		}
		values = append(values, v)
	}
	return values, errs
}

// ClassifyIntegers splits tokens into parsed integers and ErrorRecords for
// everything outside [+-]?[0-9]+, including values too large for int64.
func ClassifyIntegers(file string, tokens []loader.Token) ([]int64, []types.ErrorRecord) {
	var (
		values []int64
		errs   []types.ErrorRecord
	)
	for _, tok := range tokens {
		if !IsIntegerToken(tok.Text) {
			errs = append(errs, skipped(file, tok))
			continue
		}
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			errs = append(errs, skipped(file, tok))
			continue
		}
		values = append(values, v)
	}
	return values, errs
}

func skipped(file string, tok loader.Token) types.ErrorRecord {
	return types.ErrorRecord{
		File:   file,
		Line:   tok.Line,
		Reason: fmt.Sprintf("line %d: '%s' skipped", tok.Line, tok.Text),
	}
}
