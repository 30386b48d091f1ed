package entities

import (
	"github.com/shopspring/decimal"
)

// ProviderRecord represents one vaccine-provider site and its reported supply counts.
// Columns the pipeline does not interpret are carried through in Extra keyed by their
// canonical column name.
type ProviderRecord struct {
	ProviderType     string
	PfizerAvailable  decimal.Decimal
	ModernaAvailable decimal.Decimal
	JJAvailable      decimal.Decimal
	TotalShipped     decimal.Decimal
	HasTotalShipped  bool
	Extra            map[string]string
}

// ProviderTable is an ordered collection of provider records together with the
// canonical column names of the source dataset. It is built once per run by the
// loader and is read-only afterward.
type ProviderTable struct {
	Columns []string
	Records []ProviderRecord
}

// NewProviderTable creates a table over the given canonical columns.
func NewProviderTable(columns []string) *ProviderTable {
	return &ProviderTable{
		Columns: columns,
		Records: make([]ProviderRecord, 0),
	}
}

// HasColumn reports whether the table carries the given canonical column.
func (t *ProviderTable) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Len returns the number of data rows in the table.
func (t *ProviderTable) Len() int {
	return len(t.Records)
}
