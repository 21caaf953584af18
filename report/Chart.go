// Package report renders training metrics as charts for display
package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is one named metric curve, e.g. one algorithm's success
// probability over evaluation checkpoints
type Series struct {
	Name   string
	Values []float64
}

// WriteChart renders the given series as a single line chart and
// writes it to an HTML file at path. The x axis is the checkpoint
// index scaled by xScale (the number of updates between checkpoints).
func WriteChart(path, title string, xScale int, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("writeChart: no series to plot")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "success probability",
		}),
	)

	var steps []string
	for i := range series[0].Values {
		steps = append(steps, fmt.Sprintf("%d", (i+1)*xScale))
	}
	line = line.SetXAxis(steps)

	for _, s := range series {
		items := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeChart: could not create chart file: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("writeChart: could not render chart: %v", err)
	}
	return nil
}
