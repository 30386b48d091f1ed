package output

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/txhealth/vaxsupply/pkg/domain/entities"
)

// Fixed textual metadata of the supply chart.
const (
	ChartTitle    = "Texas Vaccine Supply, by Type"
	ChartSubtitle = "Doses currently available at reporting providers"
	ChartCaption  = "Source: Texas Department of State Health Services vaccine provider data"
	XAxisTitle    = "Vaccine Type"
	YAxisTitle    = "Current Supply in Texas"
)

// One fill color per vaccine category. No legend is drawn; the category axis
// labels the bars.
var barPalette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
}

// RenderSupplyChart maps the long-form supply table onto a categorical bar
// chart: vaccine_type on the category axis, supply on the value axis, one bar
// per category. An empty table renders an empty chart rather than failing.
func RenderSupplyChart(long entities.SupplyLong) (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = ChartTitle + "\n" + ChartSubtitle
	// plot has no caption slot; it rides below the category axis title.
	p.X.Label.Text = XAxisTitle + "\n" + ChartCaption
	p.Y.Label.Text = YAxisTitle
	p.Y.Min = 0

	// One BarChart per category at the same offsets gives category-based
	// fill: every chart holds zeros except its own slot, and zero-height
	// bars draw nothing.
	names := make([]string, len(long))
	for i, rec := range long {
		values := make(plotter.Values, len(long))
		values[i] = rec.Supply.InexactFloat64()

		bars, err := plotter.NewBarChart(values, vg.Points(60))
		if err != nil {
			return nil, fmt.Errorf("failed to build bars for %s: %w", rec.VaccineType, err)
		}
		bars.LineStyle.Width = 0
		bars.Color = barPalette[i%len(barPalette)]
		p.Add(bars)

		names[i] = rec.VaccineType.String()
	}
	p.NominalX(names...)

	return p, nil
}
