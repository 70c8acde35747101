// Package models defines the chart data model: chart types, categories,
// series, plots and charts.
package models

import "fmt"

// DataShape identifies how a plot's series data is indexed.
type DataShape string

const (
	// ShapeCategory is series data indexed by a shared category axis.
	ShapeCategory DataShape = "category"
	// ShapeXY is series data given as x/y value pairs.
	ShapeXY DataShape = "xy"
	// ShapeBubble is XY data with an additional bubble-size channel.
	ShapeBubble DataShape = "bubble"
)

// Family identifies which plot-group writer handles a chart type.
type Family string

const (
	FamilyArea     Family = "area"
	FamilyBar      Family = "bar"
	FamilyBubble   Family = "bubble"
	FamilyDoughnut Family = "doughnut"
	FamilyLine     Family = "line"
	FamilyPie      Family = "pie"
	FamilyRadar    Family = "radar"
	FamilyXY       Family = "xy"
)

// Grouping is the series grouping mode for area, bar and line plots.
type Grouping string

const (
	GroupingStandard       Grouping = "standard"
	GroupingClustered      Grouping = "clustered"
	GroupingStacked        Grouping = "stacked"
	GroupingPercentStacked Grouping = "percentStacked"
)

// BarDirection is the bar orientation for bar/column plots.
type BarDirection string

const (
	BarDirectionBar BarDirection = "bar"
	BarDirectionCol BarDirection = "col"
)

// ChartType identifies one supported chart kind.
type ChartType int

const (
	Area ChartType = iota
	AreaStacked
	AreaStacked100
	BarClustered
	BarStacked
	BarStacked100
	Bubble
	BubbleThreeDEffect
	ColumnClustered
	ColumnStacked
	ColumnStacked100
	Doughnut
	DoughnutExploded
	Line
	LineMarkers
	LineMarkersStacked
	LineMarkersStacked100
	LineStacked
	LineStacked100
	Pie
	PieExploded
	Radar
	RadarFilled
	RadarMarkers
	XYScatter
	XYScatterLines
	XYScatterLinesNoMarkers
	XYScatterSmooth
	XYScatterSmoothNoMarkers
)

// TypeInfo holds the static facts attached to a chart type.
type TypeInfo struct {
	// Family selects the plot-group writer for this type.
	Family Family
	// Shape is the series data shape this type plots.
	Shape DataShape
	// HasAxes reports whether this type renders on Cartesian axes.
	HasAxes bool
	// Grouping is the series grouping mode (area, bar and line families).
	Grouping Grouping
	// BarDir is the bar orientation (bar family only).
	BarDir BarDirection
	// Markers reports whether data-point markers are shown (line, radar
	// and xy families).
	Markers bool
	// Smooth reports whether the xy line style is smoothed.
	Smooth bool
	// Filled reports whether the radar style is filled rather than marker.
	Filled bool
	// Exploded reports whether pie/doughnut slices are exploded.
	Exploded bool
	// Bubble3D reports whether bubbles carry a 3-D effect.
	Bubble3D bool
}

// Catalog maps every chart type to its static facts. Every ChartType value
// must have exactly one entry; writers and rewriters key their dispatch
// tables off this map and verify totality at startup.
var Catalog = map[ChartType]TypeInfo{
	Area:           {Family: FamilyArea, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingStandard},
	AreaStacked:    {Family: FamilyArea, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingStacked},
	AreaStacked100: {Family: FamilyArea, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingPercentStacked},

	BarClustered:     {Family: FamilyBar, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingClustered, BarDir: BarDirectionBar},
	BarStacked:       {Family: FamilyBar, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingStacked, BarDir: BarDirectionBar},
	BarStacked100:    {Family: FamilyBar, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingPercentStacked, BarDir: BarDirectionBar},
	ColumnClustered:  {Family: FamilyBar, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingClustered, BarDir: BarDirectionCol},
	ColumnStacked:    {Family: FamilyBar, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingStacked, BarDir: BarDirectionCol},
	ColumnStacked100: {Family: FamilyBar, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingPercentStacked, BarDir: BarDirectionCol},

	Bubble:             {Family: FamilyBubble, Shape: ShapeBubble, HasAxes: true},
	BubbleThreeDEffect: {Family: FamilyBubble, Shape: ShapeBubble, HasAxes: true, Bubble3D: true},

	Doughnut:         {Family: FamilyDoughnut, Shape: ShapeCategory},
	DoughnutExploded: {Family: FamilyDoughnut, Shape: ShapeCategory, Exploded: true},

	Line:                  {Family: FamilyLine, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingStandard},
	LineMarkers:           {Family: FamilyLine, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingStandard, Markers: true},
	LineMarkersStacked:    {Family: FamilyLine, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingStacked, Markers: true},
	LineMarkersStacked100: {Family: FamilyLine, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingPercentStacked, Markers: true},
	LineStacked:           {Family: FamilyLine, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingStacked},
	LineStacked100:        {Family: FamilyLine, Shape: ShapeCategory, HasAxes: true, Grouping: GroupingPercentStacked},

	Pie:         {Family: FamilyPie, Shape: ShapeCategory},
	PieExploded: {Family: FamilyPie, Shape: ShapeCategory, Exploded: true},

	Radar:        {Family: FamilyRadar, Shape: ShapeCategory},
	RadarFilled:  {Family: FamilyRadar, Shape: ShapeCategory, Filled: true, Markers: true},
	RadarMarkers: {Family: FamilyRadar, Shape: ShapeCategory, Markers: true},

	XYScatter:                {Family: FamilyXY, Shape: ShapeXY, HasAxes: true, Markers: true},
	XYScatterLines:           {Family: FamilyXY, Shape: ShapeXY, HasAxes: true, Markers: true},
	XYScatterLinesNoMarkers:  {Family: FamilyXY, Shape: ShapeXY, HasAxes: true},
	XYScatterSmooth:          {Family: FamilyXY, Shape: ShapeXY, HasAxes: true, Markers: true, Smooth: true},
	XYScatterSmoothNoMarkers: {Family: FamilyXY, Shape: ShapeXY, HasAxes: true, Smooth: true},
}

// chartTypeNames gives the stable string form of each chart type, used in
// the CLI description format.
var chartTypeNames = map[ChartType]string{
	Area:                     "Area",
	AreaStacked:              "AreaStacked",
	AreaStacked100:           "AreaStacked100",
	BarClustered:             "BarClustered",
	BarStacked:               "BarStacked",
	BarStacked100:            "BarStacked100",
	Bubble:                   "Bubble",
	BubbleThreeDEffect:       "BubbleThreeDEffect",
	ColumnClustered:          "ColumnClustered",
	ColumnStacked:            "ColumnStacked",
	ColumnStacked100:         "ColumnStacked100",
	Doughnut:                 "Doughnut",
	DoughnutExploded:         "DoughnutExploded",
	Line:                     "Line",
	LineMarkers:              "LineMarkers",
	LineMarkersStacked:       "LineMarkersStacked",
	LineMarkersStacked100:    "LineMarkersStacked100",
	LineStacked:              "LineStacked",
	LineStacked100:           "LineStacked100",
	Pie:                      "Pie",
	PieExploded:              "PieExploded",
	Radar:                    "Radar",
	RadarFilled:              "RadarFilled",
	RadarMarkers:             "RadarMarkers",
	XYScatter:                "XYScatter",
	XYScatterLines:           "XYScatterLines",
	XYScatterLinesNoMarkers:  "XYScatterLinesNoMarkers",
	XYScatterSmooth:          "XYScatterSmooth",
	XYScatterSmoothNoMarkers: "XYScatterSmoothNoMarkers",
}

// AllChartTypes lists every supported chart type, in enumeration order.
var AllChartTypes = func() []ChartType {
	types := make([]ChartType, 0, len(chartTypeNames))
	for t := ChartType(0); int(t) < len(chartTypeNames); t++ {
		types = append(types, t)
	}
	return types
}()

// Info returns the static facts for t. The boolean is false for a value
// outside the enumeration.
func (t ChartType) Info() (TypeInfo, bool) {
	info, ok := Catalog[t]
	return info, ok
}

// HasAxes reports whether t renders on Cartesian axes.
func (t ChartType) HasAxes() bool {
	return Catalog[t].HasAxes
}

// Shape returns the data shape t plots.
func (t ChartType) Shape() DataShape {
	return Catalog[t].Shape
}

// Family returns the plot-group writer family for t.
func (t ChartType) Family() Family {
	return Catalog[t].Family
}

func (t ChartType) String() string {
	if name, ok := chartTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ChartType(%d)", int(t))
}

// ParseChartType resolves a chart type from its string form.
func ParseChartType(name string) (ChartType, error) {
	for t, n := range chartTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChartType, name)
}
