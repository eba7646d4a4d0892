package weights

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderChart draws the weight history as a PNG: the measurements, a
// linear trend line when there are at least three points, and a horizontal
// goal line when a goal weight is set. A single point cannot support a
// trend, fewer than two points cannot support a chart at all.
func RenderChart(w io.Writer, entries []WeightLog, goalWeight *float64) error {
	if len(entries) < 2 {
		return ErrInsufficientData
	}

	xValues := make([]float64, 0, len(entries))
	yValues := make([]float64, 0, len(entries))
	for _, entry := range entries {
		xValues = append(xValues, chart.TimeToFloat64(entry.LoggedAt))
		yValues = append(yValues, entry.Weight)
	}

	weightSeries := chart.ContinuousSeries{
		Name:    "weight",
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: drawing.ColorBlue,
			DotColor:    drawing.ColorBlue,
			DotWidth:    3,
		},
	}

	series := []chart.Series{weightSeries}
	if len(entries) >= 3 {
		series = append(series, &chart.LinearRegressionSeries{
			Name:        "trend",
			InnerSeries: weightSeries,
			Style: chart.Style{
				StrokeColor:     drawing.ColorRed,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}
	if goalWeight != nil {
		goalValues := make([]float64, len(xValues))
		for i := range goalValues {
			goalValues[i] = *goalWeight
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "goal",
			XValues: xValues,
			YValues: goalValues,
			Style: chart.Style{
				StrokeColor:     drawing.ColorGreen,
				StrokeDashArray: []float64{3.0, 3.0},
			},
		})
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: series,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
