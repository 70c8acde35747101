package models

import (
	"fmt"
	"math/rand/v2"
)

// Plot is one chart-type-homogeneous grouping of series sharing one set of
// axes (or none).
type Plot struct {
	chartType     ChartType
	series        []*Series
	secondaryAxis bool
	xAxisID       uint32
	yAxisID       uint32
}

// NewPlot builds a plot of the given chart type. Every series must match
// the type's data shape, and category-shaped series must carry categories;
// series indexes are (re)assigned contiguously in creation order.
func NewPlot(chartType ChartType, series []*Series, secondaryAxis bool) (*Plot, error) {
	info, ok := chartType.Info()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownChartType, chartType)
	}
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	for i, s := range series {
		if s.Shape() != info.Shape {
			return nil, fmt.Errorf("%w: series %q is %s, chart type %v wants %s",
				ErrShapeMismatch, s.Name, s.Shape(), chartType, info.Shape)
		}
		if info.Shape == ShapeCategory && s.Categories == nil {
			return nil, fmt.Errorf("%w: series %q has no categories", ErrShapeMismatch, s.Name)
		}
		s.Index = i
	}
	return &Plot{chartType: chartType, series: series, secondaryAxis: secondaryAxis}, nil
}

// ChartType returns the chart type of this plot.
func (p *Plot) ChartType() ChartType { return p.chartType }

// Series returns the ordered series of this plot.
func (p *Plot) Series() []*Series { return p.series }

// HasAxes reports whether this plot's chart type renders on axes.
func (p *Plot) HasAxes() bool { return p.chartType.HasAxes() }

// SecondaryAxis reports whether this plot renders against the secondary
// axis pair.
func (p *Plot) SecondaryAxis() bool { return p.secondaryAxis }

// AxisIDs returns the category-axis and value-axis ids assigned when the
// plot was added to a chart. Both are zero for an axis-less plot.
func (p *Plot) AxisIDs() (x, y uint32) { return p.xAxisID, p.yAxisID }

// AxisIDPair is one category/value axis id pairing referenced by plots.
type AxisIDPair struct {
	X         uint32
	Y         uint32
	Secondary bool
}

// Chart is an ordered sequence of plots rendering on one coordinate
// space, plus the axis-id pairs they share.
type Chart struct {
	// Date1904 selects the 1904 date epoch for the whole chart.
	Date1904 bool
	// RoundedCorners enables the rounded-corners chart frame.
	RoundedCorners bool

	plots        []*Plot
	hasAxes      bool
	xAxisID      uint32
	yAxisID      uint32
	secXAxisID   uint32
	secYAxisID   uint32
	hasSecondary bool
	usedAxisIDs  map[uint32]struct{}
}

// NewChart builds an empty chart with its primary axis-id pair allocated.
func NewChart() *Chart {
	c := &Chart{hasAxes: true, usedAxisIDs: make(map[uint32]struct{})}
	c.xAxisID = c.newAxisID()
	c.yAxisID = c.newAxisID()
	return c
}

// newAxisID draws a random 24-bit id not yet used within this chart.
func (c *Chart) newAxisID() uint32 {
	for {
		id := rand.Uint32N(1 << 24)
		if _, taken := c.usedAxisIDs[id]; !taken {
			c.usedAxisIDs[id] = struct{}{}
			return id
		}
	}
}

// AddPlot appends p to the chart. All plots must agree on axis presence.
// The secondary axis-id pair is allocated on the first secondary-axis plot
// and shared by every later one.
func (c *Chart) AddPlot(p *Plot) error {
	if len(c.plots) > 0 && c.hasAxes != p.HasAxes() {
		return ErrAxisMismatch
	}
	if p.HasAxes() {
		if p.secondaryAxis && !c.hasSecondary {
			c.secXAxisID = c.newAxisID()
			c.secYAxisID = c.newAxisID()
			c.hasSecondary = true
		}
		if p.secondaryAxis {
			p.xAxisID, p.yAxisID = c.secXAxisID, c.secYAxisID
		} else {
			p.xAxisID, p.yAxisID = c.xAxisID, c.yAxisID
		}
	} else {
		c.hasAxes = false
	}
	c.plots = append(c.plots, p)
	return nil
}

// Plots returns the chart's plots in render order, back-most first.
func (c *Chart) Plots() []*Plot { return c.plots }

// HasAxes reports whether the chart's plots render on axes. An empty
// chart reports true; document rendering rejects empty charts before this
// matters.
func (c *Chart) HasAxes() bool { return c.hasAxes }

// AxisIDPairs returns the distinct axis-id pairs referenced by the
// chart's plots, primary pair first.
func (c *Chart) AxisIDPairs() []AxisIDPair {
	pairs := []AxisIDPair{{X: c.xAxisID, Y: c.yAxisID}}
	if c.hasSecondary {
		pairs = append(pairs, AxisIDPair{X: c.secXAxisID, Y: c.secYAxisID, Secondary: true})
	}
	return pairs
}

// Categories returns the category sequence of the first category-shaped
// series in the chart, or nil when the chart plots XY or bubble data.
func (c *Chart) Categories() *Categories {
	for _, p := range c.plots {
		for _, s := range p.series {
			if s.Categories != nil {
				return s.Categories
			}
		}
	}
	return nil
}
