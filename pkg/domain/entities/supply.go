package entities

import (
	"github.com/shopspring/decimal"
)

// Region is the constant grouping label for the statewide aggregate.
const Region = "Texas"

// VaccineType identifies one of the reported vaccine products.
type VaccineType int

const (
	Pfizer VaccineType = iota
	Moderna
	JandJ
)

// String method for VaccineType enum
func (v VaccineType) String() string {
	switch v {
	case Pfizer:
		return "Pfizer"
	case Moderna:
		return "Moderna"
	case JandJ:
		return "JandJ"
	default:
		return "Unknown"
	}
}

// SupplyWide is the single-row statewide aggregate, one column per vaccine type.
// It is an intermediate shape and is never persisted.
type SupplyWide struct {
	Region  string
	Pfizer  decimal.Decimal
	Moderna decimal.Decimal
	JandJ   decimal.Decimal
}

// NewSupplyWide creates the statewide aggregate row from the three column sums.
func NewSupplyWide(pfizer, moderna, jandj decimal.Decimal) SupplyWide {
	return SupplyWide{
		Region:  Region,
		Pfizer:  pfizer,
		Moderna: moderna,
		JandJ:   jandj,
	}
}

// Reshape pivots the wide row into long form, one row per vaccine type,
// preserving the wide column order.
func (w SupplyWide) Reshape() SupplyLong {
	return SupplyLong{
		{VaccineType: Pfizer, Supply: w.Pfizer},
		{VaccineType: Moderna, Supply: w.Moderna},
		{VaccineType: JandJ, Supply: w.JandJ},
	}
}

// SupplyRecord is one (vaccine type, supply) pair of the long form.
type SupplyRecord struct {
	VaccineType VaccineType
	Supply      decimal.Decimal
}

// SupplyLong is the terminal data artifact: exactly one row per vaccine type.
type SupplyLong []SupplyRecord

// Total returns the exact sum over all rows.
func (l SupplyLong) Total() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range l {
		total = total.Add(rec.Supply)
	}
	return total
}
