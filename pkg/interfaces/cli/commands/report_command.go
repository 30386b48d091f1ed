package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/txhealth/vaxsupply/pkg/application/dto"
	appservices "github.com/txhealth/vaxsupply/pkg/application/services"
	domainservices "github.com/txhealth/vaxsupply/pkg/domain/services"
	csvrepo "github.com/txhealth/vaxsupply/pkg/infrastructure/repositories/csv"
	"github.com/txhealth/vaxsupply/pkg/infrastructure/source"
	"github.com/txhealth/vaxsupply/pkg/interfaces/cli/output"
)

// Compiled-in defaults. The external interface carries no flags or
// environment variables; tests construct a Config directly.
const (
	DefaultSourceLocation = "https://data.texas.gov/resource/vaccine-provider-supply.csv"
	DefaultOutputDir      = "."
	DefaultHTTPTimeout    = 30 * time.Second
)

// Config holds configuration for the report command
type Config struct {
	SourceLocation string
	OutputDir      string
	ValueMode      domainservices.ValueMode
	HTTPTimeout    time.Duration
}

// DefaultConfig returns the configuration of a production run.
func DefaultConfig() Config {
	return Config{
		SourceLocation: DefaultSourceLocation,
		OutputDir:      DefaultOutputDir,
		ValueMode:      domainservices.StrictValues,
		HTTPTimeout:    DefaultHTTPTimeout,
	}
}

// ReportCommand runs the supply report pipeline once:
// fetch -> load -> aggregate -> trend -> render -> export.
type ReportCommand struct {
	config Config
	logger *log.Logger
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config) *ReportCommand {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return &ReportCommand{config: config, logger: logger}
}

// Execute runs the pipeline. Every failure is fatal to the run and the
// returned error names the stage that failed.
func (c *ReportCommand) Execute(ctx context.Context) error {
	c.logger.Info("starting supply report",
		"source", c.config.SourceLocation,
		"output", c.config.OutputDir,
		"values", c.config.ValueMode.String(),
	)

	src := source.ForLocation(c.config.SourceLocation, c.config.HTTPTimeout)
	loader := csvrepo.NewProviderLoader(c.config.ValueMode)

	loadStart := time.Now()
	table, err := loader.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("load stage failed: %w", err)
	}
	loadTime := time.Since(loadStart)
	c.logger.Info("provider data loaded", "rows", table.Len(), "elapsed", loadTime)

	aggregator := appservices.NewSupplyAggregator()
	supply, err := aggregator.Aggregate(table)
	if err != nil {
		return fmt.Errorf("aggregate stage failed: %w", err)
	}

	trend := appservices.NewTrendService().Fit(table)
	if trend == nil {
		c.logger.Warn("trend illustration skipped",
			"reason", "no total_shipped data or fewer than two providers")
	}

	chart, err := output.RenderSupplyChart(supply)
	if err != nil {
		return fmt.Errorf("render stage failed: %w", err)
	}

	exporter := output.NewExporter(c.config.OutputDir)
	if err := exporter.Export(supply, chart); err != nil {
		return fmt.Errorf("export stage failed: %w", err)
	}

	result := &dto.ReportResult{
		Supply:       supply,
		Trend:        trend,
		ProviderRows: table.Len(),
		SourceDesc:   src.Location(),
		LoadTime:     loadTime,
	}
	c.logSummary(result, exporter)

	return nil
}

func (c *ReportCommand) logSummary(result *dto.ReportResult, exporter *output.Exporter) {
	for _, rec := range result.Supply {
		c.logger.Info("statewide supply", "vaccine", rec.VaccineType.String(), "doses", rec.Supply.String())
	}
	if result.Trend != nil {
		c.logger.Info("supply vs shipped trend",
			"slope", result.Trend.Slope,
			"intercept", result.Trend.Intercept,
			"r2", result.Trend.RSquared,
			"providers", result.Trend.Points,
		)
	}
	c.logger.Info("report complete",
		"providers", result.ProviderRows,
		"csv", exporter.SupplyCSVPath(),
		"chart", exporter.ChartPNGPath(),
	)
}
