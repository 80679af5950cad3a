// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mainland-quote/core/engine"
	"mainland-quote/core/types"
)

var quoteFormat string

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <file>",
	Short: "Calculate totals for a formal quote document",
	Long: `Read a quote JSON document and compute its definitive totals:
automated and custom discounts, installation, taxable base, tax, and
grand total.

Examples:
  mainland-quote quote ./quote.json
  mainland-quote quote --format json ./quote.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "text", "output format (text, json)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read quote file: %w", err)
	}
	var q types.QuoteState
	if err := json.Unmarshal(data, &q); err != nil {
		return fmt.Errorf("parse quote file: %w", err)
	}

	settings, err := effectiveSettings()
	if err != nil {
		return err
	}
	result := engine.New(settings).RecalculateQuote(q)

	if quoteFormat == "json" {
		return printJSON(result)
	}
	printQuoteText(result)
	return nil
}

func printQuoteText(q types.QuoteState) {
	fmt.Printf("Quote %s for %s\n\n", q.QuoteNumber, q.Client.Name)
	for _, p := range q.Products {
		fmt.Printf("  %-30s x%-3d  $%s\n", p.Description, p.Quantity, p.LineTotal().StringFixed(2))
	}

	t := q.Totals
	printAutomated := func(res types.AutomatedDiscountResult) {
		if res.Line != nil {
			fmt.Printf("  %-30s       -$%s\n", res.Line.Name, res.Line.Amount.StringFixed(2))
		}
	}
	printAutomated(t.ContractorDiscount)
	printAutomated(t.BulkDiscount)
	printAutomated(t.PartnerDiscount)
	for _, d := range q.Discounts {
		fmt.Printf("  %-30s       -$%s\n", d.Name, d.CalculatedAmount.StringFixed(2))
	}

	fmt.Printf("\n  Product total:  $%s\n", t.ProductTotal.StringFixed(2))
	fmt.Printf("  Subtotal:       $%s\n", t.Subtotal.StringFixed(2))
	fmt.Printf("  Tax:            $%s\n", t.Tax.StringFixed(2))
	fmt.Printf("  Grand total:    $%s\n", t.GrandTotal.StringFixed(2))
}
