package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"whitespace only", "1 2  3", []string{"1", "2", "3"}},
		{"commas only", "1,2,3", []string{"1", "2", "3"}},
		{"mixed separators", "1, 2\t3", []string{"1", "2", "3"}},
		{"empty tokens from double comma dropped", "1,,2", []string{"1", "2"}},
		{"trailing comma", "4,", []string{"4"}},
		{"empty line", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTokens(tt.line))
		})
	}
}

func TestReadTokens(t *testing.T) {
	path := writeFile(t, t.TempDir(), "TC1.txt", "1, 2 3\n\nabc,4\n")

	tokens, errs := ReadTokens(path)

	assert.Empty(t, errs)
	require.Len(t, tokens, 5)
	assert.Equal(t, Token{Text: "1", Line: 1}, tokens[0])
	assert.Equal(t, Token{Text: "abc", Line: 3}, tokens[3])
	assert.Equal(t, Token{Text: "4", Line: 3}, tokens[4])
}

func TestReadTokensMissingFile(t *testing.T) {
	tokens, errs := ReadTokens(filepath.Join(t.TempDir(), "nope.txt"))

	assert.Empty(t, tokens)
	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].Line)
	assert.Contains(t, errs[0].Reason, "file not found")
}

func TestReadWords(t *testing.T) {
	path := writeFile(t, t.TempDir(), "TC1.txt", "a A b\n\nHello  world")

	words, errs := ReadWords(path)

	// An empty line is an explicit error, and contributes no words.
	require.Len(t, errs, 1)
	assert.Equal(t, "TC1.txt - Empty line at line 2", errs[0].String())
	assert.Equal(t, 2, errs[0].Line)

	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	assert.Equal(t, []string{"a", "a", "b", "hello", "world"}, texts)
	assert.Equal(t, 3, words[3].Line)
}

func TestReadWordsNoTrailingNewline(t *testing.T) {
	path := writeFile(t, t.TempDir(), "TC1.txt", "a A b")

	words, errs := ReadWords(path)

	assert.Empty(t, errs)
	require.Len(t, words, 3)
}

func TestReadJSONRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Sales.json",
		`[{"Product": "widget", "Quantity": 3}, {"product": "gadget", "quantity": "1"}]`)

	rows, err := ReadJSONRows(path)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "widget", rows[0]["Product"])
	assert.Equal(t, float64(3), rows[0]["Quantity"])
	assert.Equal(t, "1", rows[1]["quantity"])
}

func TestReadJSONRowsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadJSONRows(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	path := writeFile(t, dir, "bad.json", `{"not": "an array"}`)
	_, err = ReadJSONRows(path)
	assert.Error(t, err)
}

func TestReadXLSXRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ProductList.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Title", "Price"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Widget", 2.5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"gadget"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := ReadXLSXRows(path)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget", rows[0]["Title"])
	assert.Equal(t, "2.5", rows[0]["Price"])
	assert.Equal(t, "gadget", rows[1]["Title"])
	_, ok := rows[1]["Price"]
	assert.False(t, ok, "short row should leave trailing columns absent")
}

func TestReadXLSXRowsMissingFile(t *testing.T) {
	_, err := ReadXLSXRows(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
