// =============================================================================
// Dataset Report Tools - Sales Command
// =============================================================================
//
// This file defines the 'sales' command: per-case sales totals against a
// product catalogue. The base folder holds one subfolder per case; the
// catalogue is loaded once from the designated base case (TC1) and reused,
// read-only, across every case. Each case contributes a report section even
// when it fails; one bad case never aborts the batch.
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
	"github.com/ginjaninja78/dataset-report-tools/internal/sales"
	"github.com/ginjaninja78/dataset-report-tools/pkg/utils"
)

// baseCaseFolder is the case whose product list is the run's catalogue.
const baseCaseFolder = "TC1"

var salesCmd = &cobra.Command{
	Use:   "sales <base_folder>",
	Short: "Compute sales totals against a product catalogue",
	Long: `The sales command processes a base folder containing one subfolder per
test case. The product catalogue is loaded once from the TC1 subfolder
(*ProductList*.json, or *ProductList*.xlsx if no JSON file is present) and
reused unmodified for every case.

For each case, valid sale quantities are summed per product and joined
against the catalogue: matched products report quantity x price sorted by
total cost, unmatched products are listed as missing from the catalogue, and
invalid rows are grouped by failure reason (non-numeric or non-positive
prices and quantities) with a capped console preview and the full list in the
written report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSales(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(salesCmd)
}

func runSales(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return missingArg(cmd)
	}
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.log.Close()

	base := args[0]
	if !utils.IsDir(base) {
		return inputError("folder not found: %s", base)
	}

	cases, err := utils.ListCaseFolders(base)
	if err != nil {
		return inputError("%v", err)
	}
	if len(cases) == 0 {
		return inputError("no case folders found inside: %s", base)
	}

	catalogue, err := loadBaseCatalogue(base)
	if err != nil {
		return inputError("failed to load base catalogue from %s: %v", baseCaseFolder, err)
	}

	rep := report.New()
	rt.log.Info("run %s: processing %d case(s) against a %d-row catalogue", rep.RunID, len(cases), len(catalogue))

	for _, caseFolder := range cases {
		rep.AddSection(salesCase(rt, caseFolder, catalogue))
	}

	text := rep.Render()
	fmt.Print(text)
	if err := report.WriteFile(rt.cfg.SalesPath(), text); err != nil {
		return &exitError{code: 1, err: err}
	}
	rt.log.Info("all cases processed, results saved to %s", rt.cfg.SalesPath())
	return nil
}

// loadBaseCatalogue loads the product list from the base case folder,
// preferring JSON and falling back to XLSX, and resolves its headers. The
/// returned rows are raw: cleaning runs per case so every case reports the
// catalogue problems it was computed against.
func loadBaseCatalogue(base string) ([]sales.Row, error) {
	caseDir := filepath.Join(base, baseCaseFolder)
	if !utils.IsDir(caseDir) {
		return nil, fmt.Errorf("base case folder not found")
	}

	var (
		raw []map[string]any
		err error
	)
	jsonFiles, err := utils.FindMatching(caseDir, "productlist", ".json")
	if err != nil {
		return nil, err
	}
	if len(jsonFiles) > 0 {
		raw, err = loader.ReadJSONRows(jsonFiles[0])
	} else {
		xlsxFiles, xerr := utils.FindMatching(caseDir, "productlist", ".xlsx")
		if xerr != nil {
			return nil, xerr
		}
		if len(xlsxFiles) == 0 {
			return nil, fmt.Errorf("no ProductList file found")
		}
		raw, err = loader.ReadXLSXRows(xlsxFiles[0])
	}
	if err != nil {
		return nil, err
	}
	return sales.MapCatalogueRows(raw)
}

// salesCase processes one case folder against the shared catalogue and
// returns its report section. Failures produce an error section; the batch
// continues either way.
func salesCase(rt *runtime, caseFolder string, catalogue []sales.Row) string {
	name := filepath.Base(caseFolder)

	salesFiles, err := utils.FindMatching(caseFolder, "sales", ".json")
	if err != nil || len(salesFiles) == 0 {
		rt.log.Warn("%s: missing sales file", name)
		return caseErrorSection(name, "Missing Sales file.")
	}

	start := time.Now()

	raw, err := loader.ReadJSONRows(salesFiles[0])
	if err != nil {
		rt.log.Warn("%s: %v", name, err)
		return caseErrorSection(name, fmt.Sprintf("ERROR processing %s: %v", name, err))
	}
	salesRows, err := sales.MapSalesRows(raw)
	if err != nil {
		rt.log.Warn("%s: %v", name, err)
		return caseErrorSection(name, fmt.Sprintf("ERROR processing %s: %v", name, err))
	}

	catClean, catGroups := sales.CleanCatalogue(catalogue)
	salClean, salGroups := sales.CleanSales(salesRows)
	groups := append(catGroups, salGroups...)

	previewGroups(name, groups, rt.cfg.ConsolePreviewRows)

	matched, missing := sales.ComputeTotals(catClean, salClean)
	elapsed := time.Since(start).Seconds()

	return salesSection(name, matched, missing, groups, elapsed)
}

// previewGroups streams invalid-record groups to the console as they are
// discovered, capped per group; the written report carries the full lists.
func previewGroups(name string, groups []sales.ErrorGroup, limit int) {
	if len(groups) == 0 {
		return
	}
	fmt.Printf("\nINVALID DATA FOUND in %s (execution continues):\n", name)
	for _, g := range groups {
		fmt.Println(report.Rule("-", 80))
		fmt.Printf("%s (%d rows)\n", g.Name, len(g.Rows))
		for i, row := range g.Rows {
			if i >= limit {
				fmt.Printf("... (%d more rows)\n", len(g.Rows)-limit)
				break
			}
			fmt.Println(row)
		}
	}
}

// salesSection renders the report section for one successfully processed
// case.
func salesSection(name string, matched []sales.MatchedRow, missing []sales.MissingRow, groups []sales.ErrorGroup, elapsed float64) string {
	var b strings.Builder

	b.WriteString(report.Rule("=", 80) + "\n")
	fmt.Fprintf(&b, "TC: %s\n", name)
	b.WriteString(report.Rule("=", 80) + "\n\n")

	if len(matched) == 0 {
		b.WriteString("RESULT:\n")
		b.WriteString("No valid sales could be computed after cleaning and matching.\n\n")
	} else {
		b.WriteString("RESULT (per product):\n")
		b.WriteString("product\tquantity\tprice\ttotal_cost\n")
		for _, m := range matched {
			fmt.Fprintf(&b, "%s\t%v\t%v\t%.2f\n", m.Product, m.Quantity, m.Price, m.TotalCost)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "TOTAL COST: %.2f\n\n", sales.GrandTotal(matched))

	if len(missing) > 0 {
		b.WriteString("WARNING: Sales products missing from catalogue:\n")
		b.WriteString("product\tquantity\n")
		for _, m := range missing {
			fmt.Fprintf(&b, "%s\t%v\n", m.Product, m.Quantity)
		}
		b.WriteString("\n")
	}

	if len(groups) > 0 {
		b.WriteString("INVALID RECORDS:\n")
		for _, g := range groups {
			b.WriteString(report.Rule("-", 80) + "\n")
			fmt.Fprintf(&b, "%s (%d rows)\n", g.Name, len(g.Rows))
			for _, row := range g.Rows {
				b.WriteString(row.String() + "\n")
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("No invalid records were found.\n\n")
	}

	fmt.Fprintf(&b, "TIME ELAPSED (seconds): %.6f\n", elapsed)
	b.WriteString(report.Rule("=", 80) + "\n")
	return b.String()
}

// caseErrorSection renders the section for a case that could not be
// processed at all.
func caseErrorSection(name, msg string) string {
	var b strings.Builder
	b.WriteString(report.Rule("=", 80) + "\n")
	fmt.Fprintf(&b, "TC: %s\n", name)
	b.WriteString(report.Rule("=", 80) + "\n\n")
	fmt.Fprintf(&b, "ERROR: %s\n\n", msg)
	return b.String()
}
