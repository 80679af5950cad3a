// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mainland-quote/core/engine"
	"mainland-quote/core/types"
	"mainland-quote/internal/config"
)

var (
	estimateFormat string
	rulesFile      string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <file>",
	Short: "Calculate totals for an estimate document",
	Long: `Read an estimate JSON document, price every product against the
configured rule tables, and print the resulting totals.

Examples:
  mainland-quote estimate ./estimate.json
  mainland-quote estimate --format json ./estimate.json
  mainland-quote estimate --rules ./pricing.hcl ./estimate.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateFormat, "format", "f", "text", "output format (text, json)")
	estimateCmd.Flags().StringVar(&rulesFile, "rules", "", "HCL rules file overriding the configured formulas")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	est, err := readEstimate(args[0])
	if err != nil {
		return err
	}

	settings, err := effectiveSettings()
	if err != nil {
		return err
	}

	result := engine.New(settings).RecalculateEstimate(est)

	if estimateFormat == "json" {
		return printJSON(result)
	}
	printEstimateText(result)
	return nil
}

func readEstimate(path string) (types.Estimate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Estimate{}, fmt.Errorf("read estimate file: %w", err)
	}
	var est types.Estimate
	if err := json.Unmarshal(data, &est); err != nil {
		return types.Estimate{}, fmt.Errorf("parse estimate file: %w", err)
	}
	return est, nil
}

// effectiveSettings returns the configured settings, with the formula
// tables replaced by the --rules file when one is given.
func effectiveSettings() (*types.Settings, error) {
	settings := config.Get().Settings
	if rulesFile != "" {
		formulas, err := config.LoadRules(rulesFile)
		if err != nil {
			return nil, err
		}
		settings.PricingFormulas = formulas
	}
	return &settings, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printEstimateText(est types.Estimate) {
	fmt.Printf("Estimate for %s\n\n", est.CustomerName)
	for _, p := range est.Products {
		name := p.ProductType
		if p.CustomDescription != "" {
			name = p.CustomDescription
		}
		fmt.Printf("  %-30s x%-3d  $%s\n", name, p.Quantity, p.CalculatedPrice.StringFixed(2))
		for _, e := range p.Errors {
			fmt.Printf("    ! %s\n", e)
		}
	}
	for _, d := range est.Discounts {
		fmt.Printf("  %-30s       -$%s\n", d.Name, d.CalculatedAmount.StringFixed(2))
	}

	t := est.Totals
	fmt.Printf("\n  Products subtotal:  $%s\n", t.SubtotalProducts.StringFixed(2))
	fmt.Printf("  Shipping:           $%s\n", t.SmallOrderShipping.StringFixed(2))
	fmt.Printf("  Tax estimate:       $%s - $%s\n", t.TaxEstimateLow.StringFixed(2), t.TaxEstimateHigh.StringFixed(2))
	fmt.Printf("  Install estimate:   $%s - $%s\n", t.InstallEstimateLow.StringFixed(2), t.InstallEstimateHigh.StringFixed(2))
	fmt.Printf("  Total:              $%s\n", t.TotalPrice.StringFixed(2))
}
