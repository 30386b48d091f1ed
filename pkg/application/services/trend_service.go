package services

import (
	"gonum.org/v1/gonum/stat"

	"github.com/txhealth/vaxsupply/pkg/domain/entities"
	"github.com/txhealth/vaxsupply/pkg/domain/services"
)

// TrendSummary is the illustrative least-squares fit of a provider's currently
// available doses against the doses shipped to it. It is reported in the run
// log only and never persisted.
type TrendSummary struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	Points    int
}

// TrendService fits the supply-vs-shipped trend line over a provider table.
type TrendService struct{}

// NewTrendService creates a new trend service
func NewTrendService() *TrendService {
	return &TrendService{}
}

// Fit returns the linear fit, or nil when the table has no total_shipped
// column or fewer than two usable points.
func (s *TrendService) Fit(table *entities.ProviderTable) *TrendSummary {
	if !table.HasColumn(services.ColTotalShipped) {
		return nil
	}

	var xs, ys []float64
	for _, rec := range table.Records {
		if !rec.HasTotalShipped {
			continue
		}
		available := rec.PfizerAvailable.Add(rec.ModernaAvailable).Add(rec.JJAvailable)
		xs = append(xs, rec.TotalShipped.InexactFloat64())
		ys = append(ys, available.InexactFloat64())
	}

	if len(xs) < 2 {
		return nil
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, intercept, slope)

	return &TrendSummary{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  r2,
		Points:    len(xs),
	}
}
