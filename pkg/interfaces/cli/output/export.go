package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/txhealth/vaxsupply/pkg/domain/entities"
)

// Fixed artifact names. Each run overwrites both.
const (
	SupplyCSVName = "clean_supply_data.csv"
	ChartPNGName  = "vaccine_supply_chart.png"
)

// Raster contract of the chart artifact.
const (
	chartDPI    = 300
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// WriteError reports that one output artifact could not be persisted.
type WriteError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s to %s: %v", e.Artifact, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Exporter persists the run's two artifacts into a directory.
type Exporter struct {
	dir string
}

// NewExporter creates an exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// SupplyCSVPath returns where the delimited artifact is written.
func (e *Exporter) SupplyCSVPath() string {
	return filepath.Join(e.dir, SupplyCSVName)
}

// ChartPNGPath returns where the raster artifact is written.
func (e *Exporter) ChartPNGPath() string {
	return filepath.Join(e.dir, ChartPNGName)
}

// Export writes the supply CSV and the chart PNG. The two writes are
// independent: a failure of one never prevents attempting the other, and
// both failures are reported together.
func (e *Exporter) Export(long entities.SupplyLong, chart *plot.Plot) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return &WriteError{Artifact: "output directory", Path: e.dir, Err: err}
	}

	csvErr := e.writeSupplyCSV(long)
	pngErr := e.writeChartPNG(chart)
	return errors.Join(csvErr, pngErr)
}

// writeSupplyCSV persists the long-form table: header vaccine_type,supply and
// one row per vaccine type in aggregator order.
func (e *Exporter) writeSupplyCSV(long entities.SupplyLong) error {
	path := e.SupplyCSVPath()

	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Artifact: "supply CSV", Path: path, Err: err}
	}

	writer := csv.NewWriter(file)
	rows := [][]string{{"vaccine_type", "supply"}}
	for _, rec := range long {
		rows = append(rows, []string{rec.VaccineType.String(), rec.Supply.String()})
	}

	writeErr := writer.WriteAll(rows)
	closeErr := file.Close()
	if writeErr != nil {
		return &WriteError{Artifact: "supply CSV", Path: path, Err: writeErr}
	}
	if closeErr != nil {
		return &WriteError{Artifact: "supply CSV", Path: path, Err: closeErr}
	}
	return nil
}

// writeChartPNG rasterizes the chart at 300 DPI on a 10x6 inch canvas.
func (e *Exporter) writeChartPNG(chart *plot.Plot) error {
	path := e.ChartPNGPath()

	canvas := vgimg.NewWith(
		vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseDPI(chartDPI),
	)
	chart.Draw(draw.New(canvas))

	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Artifact: "chart PNG", Path: path, Err: err}
	}

	png := vgimg.PngCanvas{Canvas: canvas}
	_, writeErr := png.WriteTo(file)
	closeErr := file.Close()
	if writeErr != nil {
		return &WriteError{Artifact: "chart PNG", Path: path, Err: writeErr}
	}
	if closeErr != nil {
		return &WriteError{Artifact: "chart PNG", Path: path, Err: closeErr}
	}
	return nil
}
