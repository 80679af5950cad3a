// Package types - Quote-side records
// Formal quotes carry author-set line prices and a single definitive
// tax amount, unlike the estimate's formula prices and ranges.
package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// QuoteProduct is one formal quote line: no formula, the price is
// author-supplied.
type QuoteProduct struct {
	Series      string          `json:"series"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`

	// Taxable marks the line as subject to sales tax. Lines are taxable
	// unless the document opts out: a payload that omits the flag
	// decodes as taxable.
	Taxable bool `json:"taxable"`
}

// UnmarshalJSON defaults an absent taxable flag to true.
func (p *QuoteProduct) UnmarshalJSON(data []byte) error {
	type plain QuoteProduct
	aux := struct {
		Taxable *bool `json:"taxable"`
		*plain
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Taxable = aux.Taxable == nil || *aux.Taxable
	return nil
}

// LineTotal is the raw line amount before discounts.
func (p QuoteProduct) LineTotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// QuoteDiscount is a custom quote discount, always applied against the
// raw product total.
type QuoteDiscount struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	ValueType ValueType       `json:"valueType"`
	Amount    decimal.Decimal `json:"amount"`

	// CalculatedAmount is written by the totals calculator.
	CalculatedAmount decimal.Decimal `json:"calculatedAmount"`
}

// QuotePricing holds the quote's installation and tax switches.
// Installation is taxable unless the document opts out, mirroring the
// per-line default.
type QuotePricing struct {
	InstallationEnabled  bool            `json:"installationEnabled"`
	InstallationPrice    decimal.Decimal `json:"installationPrice"`
	InstallationIncluded string          `json:"installationIncluded,omitempty"`
	InstallationTaxable  bool            `json:"installationTaxable"`

	TaxEnabled bool            `json:"taxEnabled"`
	TaxZipCode string          `json:"taxZipCode,omitempty"`
	TaxRate    decimal.Decimal `json:"taxRate"`
}

// UnmarshalJSON defaults an absent installation taxable flag to true.
func (pr *QuotePricing) UnmarshalJSON(data []byte) error {
	type plain QuotePricing
	aux := struct {
		InstallationTaxable *bool `json:"installationTaxable"`
		*plain
	}{plain: (*plain)(pr)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	pr.InstallationTaxable = aux.InstallationTaxable == nil || *aux.InstallationTaxable
	return nil
}

// AutomatedDiscounts toggles the three independent tier schedules.
type AutomatedDiscounts struct {
	Contractor bool `json:"contractor"`
	Bulk       bool `json:"bulk"`
	Partner    bool `json:"partner"`
}

// AppliedDiscount is one resolved automated discount line.
type AppliedDiscount struct {
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// AutomatedDiscountResult distinguishes "toggle off" (not evaluated),
// "evaluated but 0%" (nil Line), and an applied discount.
type AutomatedDiscountResult struct {
	Evaluated bool             `json:"evaluated"`
	Line      *AppliedDiscount `json:"line,omitempty"`
}

// QuoteTotals is the aggregate output of one quote pass, regenerated
// wholesale each time.
type QuoteTotals struct {
	ProductTotal decimal.Decimal `json:"productTotal"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`

	ContractorDiscount AutomatedDiscountResult `json:"contractorDiscount"`
	BulkDiscount       AutomatedDiscountResult `json:"bulkDiscount"`
	PartnerDiscount    AutomatedDiscountResult `json:"partnerDiscount"`
}

// QuoteClient identifies the customer on a formal quote.
type QuoteClient struct {
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
	SignatureName  string `json:"signatureName,omitempty"`
	SignatureTitle string `json:"signatureTitle,omitempty"`
}

// SalesRep identifies the company representative on the quote.
type SalesRep struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}

// QuoteTerm is an additional contract term attached to the quote.
type QuoteTerm struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// QuoteState is the full formal quote document.
type QuoteState struct {
	ID          string      `json:"id,omitempty"`
	QuoteNumber string      `json:"quoteNumber"`
	Client      QuoteClient `json:"client"`
	SalesRep    SalesRep    `json:"salesRep"`

	Products           []QuoteProduct     `json:"products"`
	Pricing            QuotePricing       `json:"pricing"`
	Discounts          []QuoteDiscount    `json:"discounts"`
	AutomatedDiscounts AutomatedDiscounts `json:"automatedDiscounts"`
	AdditionalTerms    []QuoteTerm        `json:"additionalTerms,omitempty"`

	Totals QuoteTotals `json:"totals"`
}
