package services

import (
	"github.com/shopspring/decimal"

	"github.com/txhealth/vaxsupply/pkg/domain/entities"
	"github.com/txhealth/vaxsupply/pkg/domain/services"
)

// SupplyAggregator computes the statewide per-vaccine supply totals and
// reshapes them into long form.
type SupplyAggregator struct{}

// NewSupplyAggregator creates a new supply aggregator
func NewSupplyAggregator() *SupplyAggregator {
	return &SupplyAggregator{}
}

// Aggregate sums the three vaccine columns over the whole table, assembles
// the wide single-row aggregate, and reshapes it into SupplyLong. The output
// always has exactly one row per vaccine type, in reporting order; an empty
// table yields three zero rows. A table missing a required column fails with
// *services.SchemaMismatchError.
func (a *SupplyAggregator) Aggregate(table *entities.ProviderTable) (entities.SupplyLong, error) {
	if err := services.ValidateColumns(table.Columns); err != nil {
		return nil, err
	}

	pfizer := decimal.Zero
	moderna := decimal.Zero
	jandj := decimal.Zero
	for _, rec := range table.Records {
		pfizer = pfizer.Add(rec.PfizerAvailable)
		moderna = moderna.Add(rec.ModernaAvailable)
		jandj = jandj.Add(rec.JJAvailable)
	}

	wide := entities.NewSupplyWide(pfizer, moderna, jandj)
	return wide.Reshape(), nil
}
