// Package input defines the JSON chart description read by the CLI and
// builds the chart model from it.
package input

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// Series describes one named value sequence. Category-shaped series set
// Values; XY series set XValues and YValues; bubble series additionally
// set BubbleSizes. A JSON null value marks a missing data point.
type Series struct {
	// Name is the series display name.
	Name string `json:"name"`
	// Values is the value channel for category-shaped series.
	Values []*float64 `json:"values,omitempty"`
	// XValues and YValues are the paired channels for XY and bubble series.
	XValues []*float64 `json:"x_values,omitempty"`
	YValues []*float64 `json:"y_values,omitempty"`
	// BubbleSizes is the bubble-size channel.
	BubbleSizes []*float64 `json:"bubble_sizes,omitempty"`
	// NumberFormat is the format code for the value channels.
	NumberFormat string `json:"number_format,omitempty"`
}

// Plot describes one chart-type-homogeneous series grouping.
type Plot struct {
	// ChartType is the chart type name (e.g. "ColumnClustered").
	ChartType string `json:"chart_type"`
	// SecondaryAxis plots this grouping against the secondary axis pair.
	SecondaryAxis bool `json:"secondary_axis,omitempty"`
	// Categories holds string labels, numbers, or nested label arrays.
	Categories []interface{} `json:"categories,omitempty"`
	// CategoryDates holds ISO dates (YYYY-MM-DD), used instead of
	// Categories for a date axis.
	CategoryDates []string `json:"category_dates,omitempty"`
	// CategoryFormat is the number-format code for numeric or date
	// categories.
	CategoryFormat string `json:"category_format,omitempty"`
	// Series is the ordered series list.
	Series []Series `json:"series"`
}

// Chart is the top-level chart description.
type Chart struct {
	// Date1904 selects the 1904 date epoch.
	Date1904 bool `json:"date_1904,omitempty"`
	// RoundedCorners enables the rounded-corners chart frame.
	RoundedCorners bool `json:"rounded_corners,omitempty"`
	// Plots in render order, back-most first.
	Plots []Plot `json:"plots"`
}

// Parse decodes a JSON chart description.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse chart description: %w", err)
	}
	return &c, nil
}

// Build assembles the chart model described by c.
func (c *Chart) Build() (*models.Chart, error) {
	chart := models.NewChart()
	chart.Date1904 = c.Date1904
	chart.RoundedCorners = c.RoundedCorners
	for i := range c.Plots {
		plot, err := c.Plots[i].build(c.Date1904)
		if err != nil {
			return nil, fmt.Errorf("plot %d: %w", i, err)
		}
		if err := chart.AddPlot(plot); err != nil {
			return nil, fmt.Errorf("plot %d: %w", i, err)
		}
	}
	return chart, nil
}

func (p *Plot) build(date1904 bool) (*models.Plot, error) {
	chartType, err := models.ParseChartType(p.ChartType)
	if err != nil {
		return nil, err
	}
	series, err := p.BuildSeries()
	if err != nil {
		return nil, err
	}
	return models.NewPlot(chartType, series, p.SecondaryAxis)
}

// BuildSeries assembles the model series of this plot, attaching the
// plot's categories to each category-shaped series.
func (p *Plot) BuildSeries() ([]*models.Series, error) {
	categories, err := p.buildCategories()
	if err != nil {
		return nil, err
	}
	series := make([]*models.Series, len(p.Series))
	for i, s := range p.Series {
		series[i] = &models.Series{
			Name:         s.Name,
			Values:       s.Values,
			XValues:      s.XValues,
			YValues:      s.YValues,
			BubbleSizes:  s.BubbleSizes,
			NumberFormat: s.NumberFormat,
		}
		if series[i].Shape() == models.ShapeCategory {
			series[i].Categories = categories
		}
	}
	return series, nil
}

func (p *Plot) buildCategories() (*models.Categories, error) {
	if len(p.CategoryDates) > 0 {
		dates := make([]time.Time, len(p.CategoryDates))
		for i, s := range p.CategoryDates {
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return nil, fmt.Errorf("category date %q: %w", s, err)
			}
			dates[i] = d
		}
		return models.NewDateCategories(dates, p.CategoryFormat), nil
	}
	if len(p.Categories) == 0 {
		return nil, nil
	}
	values := make([]interface{}, len(p.Categories))
	for i, v := range p.Categories {
		// JSON nested arrays decode as []interface{}; multi-level label
		// tuples need []string.
		if tuple, ok := v.([]interface{}); ok {
			labels := make([]string, len(tuple))
			for j, l := range tuple {
				s, ok := l.(string)
				if !ok {
					return nil, fmt.Errorf("%w: level label %v is %T", models.ErrMixedCategories, l, l)
				}
				labels[j] = s
			}
			values[i] = labels
			continue
		}
		values[i] = v
	}
	categories, err := models.NewCategories(values)
	if err != nil {
		return nil, err
	}
	if p.CategoryFormat != "" && categories.Kind() == models.CategoryNumeric {
		return models.NewNumericCategories(categories.Numbers(), p.CategoryFormat), nil
	}
	return categories, nil
}
