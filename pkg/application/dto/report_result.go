package dto

import (
	"time"

	"github.com/txhealth/vaxsupply/pkg/application/services"
	"github.com/txhealth/vaxsupply/pkg/domain/entities"
)

// ReportResult carries everything one pipeline run produced, from the command
// to the output stage.
type ReportResult struct {
	Supply       entities.SupplyLong
	Trend        *services.TrendSummary
	ProviderRows int
	SourceDesc   string
	LoadTime     time.Duration
}
