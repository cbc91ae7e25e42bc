package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/hassankh203/drive-smart-finance-flow/internal/core"
)

// IncomeTrendPNG renders the income time series as a line chart.
// It returns nil bytes without error when the series is too small or
// entirely zero to chart meaningfully.
func IncomeTrendPNG(series []core.DailyIncome) ([]byte, error) {
	if len(series) < 2 {
		return nil, nil
	}
	hasData := false
	xValues := make([]time.Time, len(series))
	yValues := make([]float64, len(series))
	for i, p := range series {
		xValues[i] = p.Date.Midnight(time.UTC)
		yValues[i] = p.Amount
		if p.Amount != 0 {
			hasData = true
		}
	}
	if !hasData {
		return nil, nil
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("$%.0f", v.(float64))
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render income trend chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// CategoryPiePNG renders the expense category breakdown as a pie
// chart. It returns nil bytes without error when no expense has been
// recorded.
func CategoryPiePNG(breakdown []core.CategoryBreakdown) ([]byte, error) {
	values := make([]chart.Value, 0, len(breakdown))
	for _, b := range breakdown {
		if b.Amount <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: $%.0f", b.Category, b.Amount),
			Value: b.Amount,
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  600,
		Height: 600,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 30, Right: 30, Bottom: 30},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render category pie chart: %w", err)
	}
	return buffer.Bytes(), nil
}
