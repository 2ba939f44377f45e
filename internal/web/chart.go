package web

import (
	"fmt"
	"html/template"
	"strings"

	"gonum.org/v1/gonum/floats"

	"yemalin/internal/scoring"
)

const (
	chartWidth  = 640
	chartHeight = 360
	chartMargin = 50
	chartTicks  = 4
)

// FrontierChart draws the frontier as an inline SVG line chart with the
// proposed portfolio marked. Volatility runs along x, return along y.
// It returns an empty fragment when there is nothing to plot.
func FrontierChart(points []scoring.FrontierPoint, proposed scoring.Stats) template.HTML {
	if len(points) == 0 {
		return ""
	}

	vols := make([]float64, 0, len(points)+1)
	rets := make([]float64, 0, len(points)+1)
	for _, p := range points {
		vols = append(vols, p.Volatility)
		rets = append(rets, p.ExpectedReturn)
	}
	vols = append(vols, proposed.Volatility)
	rets = append(rets, proposed.ExpectedReturn)

	xMax := floats.Max(vols) * 1.1
	if xMax <= 0 {
		xMax = 0.01
	}
	yMin := floats.Min(rets)
	if yMin > 0 {
		yMin = 0
	}
	yMax := floats.Max(rets) * 1.1
	if yMax <= yMin {
		yMax = yMin + 0.01
	}

	plotW := float64(chartWidth - 2*chartMargin)
	plotH := float64(chartHeight - 2*chartMargin)
	x := func(v float64) float64 { return chartMargin + v/xMax*plotW }
	y := func(r float64) float64 { return chartHeight - chartMargin - (r-yMin)/(yMax-yMin)*plotH }

	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="frontier" viewBox="0 0 %d %d" role="img" aria-label="Efficient frontier">`, chartWidth, chartHeight)
	fmt.Fprintf(&b, `<line class="axis" x1="%d" y1="%d" x2="%d" y2="%d"/>`,
		chartMargin, chartHeight-chartMargin, chartWidth-chartMargin, chartHeight-chartMargin)
	fmt.Fprintf(&b, `<line class="axis" x1="%d" y1="%d" x2="%d" y2="%d"/>`,
		chartMargin, chartMargin, chartMargin, chartHeight-chartMargin)

	for i := 0; i <= chartTicks; i++ {
		v := xMax * float64(i) / chartTicks
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" text-anchor="middle">%s</text>`,
			x(v), chartHeight-chartMargin+16, Percent(v))
		r := yMin + (yMax-yMin)*float64(i)/chartTicks
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" text-anchor="end">%s</text>`,
			chartMargin-6, y(r)+4, Percent(r))
	}
	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle">Volatility</text>`,
		chartWidth/2, chartHeight-8)
	fmt.Fprintf(&b, `<text x="12" y="%d" text-anchor="middle" transform="rotate(-90 12 %d)">Expected return</text>`,
		chartHeight/2, chartHeight/2)

	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%.1f,%.1f", x(p.Volatility), y(p.ExpectedReturn))
	}
	fmt.Fprintf(&b, `<polyline class="curve" points="%s"/>`, strings.Join(coords, " "))
	fmt.Fprintf(&b, `<circle class="point" cx="%.1f" cy="%.1f" r="5"><title>Proposed portfolio</title></circle>`,
		x(proposed.Volatility), y(proposed.ExpectedReturn))
	b.WriteString(`</svg>`)

	// Only numbers and fixed labels are interpolated above.
	return template.HTML(b.String()) //nolint:gosec
}
