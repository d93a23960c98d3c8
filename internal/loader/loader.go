// =============================================================================
// Dataset Report Tools - Input Loader Module
// =============================================================================
//
// This module reads raw input files into tokens and rows for the pipelines:
//   - Token loading for the statistics and conversion tools (lines split on
//     commas, then on whitespace; empty tokens dropped)
//   - Word loading for the word count tool (lines split on single spaces;
//     an empty line is an explicit error rather than a silent skip)
//   - JSON and XLSX row loading for the sales tool
//
// A missing or unreadable file never aborts a run: token and word loaders
// return zero records plus one file-level ErrorRecord, and the batch goes on.
//
// =============================================================================

package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/dataset-report-tools/internal/types"
)

// Token is a single delimited substring of an input line, tagged with its
// 1-based line number for error reporting.
type Token struct {
	Text string
	Line int
}

// SplitTokens splits a line first on commas, then each part on whitespace.
// Empty tokens (from runs of separators like "1,,2") are dropped.
func SplitTokens(line string) []string {
	var tokens []string
	for _, part := range strings.Split(line, ",") {
		tokens = append(tokens, strings.Fields(part)...)
	}
	return tokens
}

// ReadTokens reads path line by line and tokenizes with SplitTokens. Blank
// lines are skipped silently. A read failure yields zero tokens and one
// file-level ErrorRecord.
func ReadTokens(path string) ([]Token, []types.ErrorRecord) {
	var (
		tokens []Token
		errs   []types.ErrorRecord
	)

	file, err := os.Open(path)
	if err != nil {
		return nil, append(errs, fileError(path, err))
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		for _, tok := range SplitTokens(line) {
			tokens = append(tokens, Token{Text: tok, Line: lineNo})
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fileError(path, err))
	}
	return tokens, errs
}

// ReadWords reads path line by line, splitting each line on single spaces and
// lower-casing every word. An empty line is recorded as an ErrorRecord and
// contributes no words; runs of spaces produce no empty words.
func ReadWords(path string) ([]Token, []types.ErrorRecord) {
	var (
		words []Token
		errs  []types.ErrorRecord
	)

	file, err := os.Open(path)
	if err != nil {
		return nil, append(errs, fileError(path, err))
	}
	defer file.Close()

	base := filepath.Base(path)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			errs = append(errs, types.ErrorRecord{
				File:   base,
				Line:   lineNo,
				Reason: fmt.Sprintf("Empty line at line %d", lineNo),
			})
			continue
		}
		for _, tok := range strings.Split(line, " ") {
			if tok == "" {
				continue
			}
			words = append(words, Token{Text: strings.ToLower(tok), Line: lineNo})
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fileError(path, err))
	}
	return words, errs
}

// ReadJSONRows loads a JSON array of objects as generic rows. The sales tool
// resolves header spellings afterwards, so keys are returned as found.
func ReadJSONRows(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

// ReadXLSXRows loads the first sheet of an XLSX workbook as generic rows.
// The first row supplies the keys; short data rows leave trailing columns
// absent. Cell values arrive as strings and are coerced downstream exactly
// like string-valued JSON fields.
func ReadXLSXRows(path string) ([]map[string]any, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheets found in %s", path)
	}
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s of %s: %w", sheet, path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty sheet %s in %s", sheet, path)
	}

	headers := raw[0]
	var rows []map[string]any
	for _, cells := range raw[1:] {
		row := make(map[string]any, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = cells[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func fileError(path string, err error) types.ErrorRecord {
	if os.IsNotExist(err) {
		return types.ErrorRecord{File: path, Reason: "file not found"}
	}
	return types.ErrorRecord{File: path, Reason: fmt.Sprintf("could not read file: %v", err)}
}
