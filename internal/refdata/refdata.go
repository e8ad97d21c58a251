// =============================================================================
// Shipping List Processor - Reference Data
// =============================================================================
//
// This module defines the three reference tables the pricing pipeline
// consumes: the markup/insurance policy, the shipping rate, and the
// currency exchange rates. Each is read once at the start of a run and
// passed into the calculation stages as an immutable parameter; nothing in
// the pipeline reaches for ambient state.
//
// The Source interfaces abstract where the values come from. The shipped
// implementations read single-row xlsx workbooks (see xlsx.go); tests
// construct the value structs directly.
//
// =============================================================================

package refdata

import (
	"github.com/shopspring/decimal"
)

// Policy holds the markup and insurance parameters.
type Policy struct {
	// MarkupPercentage is the supplier-cost markup as a fraction
	// (0.15 means 15%).
	MarkupPercentage decimal.Decimal

	// InsuranceRate is the insurance rate as a fraction.
	InsuranceRate decimal.Decimal

	// InsuranceCoefficient scales the insured value base. Distinct from
	// the insurance rate; defaults to 1.0 when the policy table omits it.
	InsuranceCoefficient decimal.Decimal
}

// DefaultInsuranceCoefficient is used when the policy table has no
// insurance_coefficient column.
var DefaultInsuranceCoefficient = decimal.NewFromInt(1)

// ShippingRate holds the freight rate and its accompanying metadata.
type ShippingRate struct {
	// RMBPerKg is the shipping rate in RMB per kilogram.
	RMBPerKg decimal.Decimal

	// Carrier names the carrier the rate was quoted by.
	Carrier string

	// EffectiveDate and ExpiryDate bound the quote validity, verbatim
	// from the rate sheet.
	EffectiveDate string
	ExpiryDate    string

	// Notes is free-form commentary from the rate sheet.
	Notes string
}

// ExchangeRates holds the currency conversion rates for a run.
type ExchangeRates struct {
	// RMBToUSD is the RMB per USD rate. Required: CIF conversion divides
	// by it, so a zero or absent rate aborts the run.
	RMBToUSD decimal.Decimal

	// RMBToRupee is the optional RMB per rupee cross rate. When present
	// the pipeline also derives a rupee unit price.
	RMBToRupee *decimal.Decimal

	// USDToRupee is the optional USD to rupee cross rate, carried for
	// reporting only.
	USDToRupee *decimal.Decimal
}

// PolicySource yields the policy parameters for a run.
type PolicySource interface {
	Policy() (Policy, error)
}

// ShippingRateSource yields the shipping rate for a run.
type ShippingRateSource interface {
	ShippingRate() (ShippingRate, error)
}

// ExchangeRateSource yields the exchange rates for a run.
type ExchangeRateSource interface {
	ExchangeRates() (ExchangeRates, error)
}
