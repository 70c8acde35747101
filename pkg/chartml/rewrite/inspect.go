// Package rewrite patches the series data of an existing chart document
// in place, preserving formatting a user has applied since the chart was
// generated.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// ErrNotAChart indicates a document without a chart-space root or plot
// area.
var ErrNotAChart = errors.New("document is not a chart part")

// ErrNoCategoryAxis indicates a chart without a category (or date) axis,
// such as a pie chart.
var ErrNoCategoryAxis = errors.New("chart has no category axis")

// ErrNoValueAxis indicates a chart without a value axis.
var ErrNoValueAxis = errors.New("chart has no value axis")

// plotGroupShapes maps the plot-group element tags of the supported chart
// families to the data shape their series carry.
var plotGroupShapes = map[string]models.DataShape{
	"areaChart":     models.ShapeCategory,
	"barChart":      models.ShapeCategory,
	"doughnutChart": models.ShapeCategory,
	"lineChart":     models.ShapeCategory,
	"pieChart":      models.ShapeCategory,
	"radarChart":    models.ShapeCategory,
	"scatterChart":  models.ShapeXY,
	"bubbleChart":   models.ShapeBubble,
}

// plotGroupTags lists every plot-group tag that can appear in a plot
// area, including families this package does not rewrite. Used to tell
// plot groups apart from axis and layout siblings.
var plotGroupTags = map[string]bool{
	"area3DChart":    true,
	"areaChart":      true,
	"bar3DChart":     true,
	"barChart":       true,
	"bubbleChart":    true,
	"doughnutChart":  true,
	"line3DChart":    true,
	"lineChart":      true,
	"ofPieChart":     true,
	"pie3DChart":     true,
	"pieChart":       true,
	"radarChart":     true,
	"scatterChart":   true,
	"stockChart":     true,
	"surface3DChart": true,
	"surfaceChart":   true,
}

// chartSpaceOf returns the chart-space root element of doc.
func chartSpaceOf(doc *etree.Document) (*etree.Element, error) {
	root := doc.Root()
	if root == nil || root.Tag != "chartSpace" {
		return nil, fmt.Errorf("%w: missing chartSpace root", ErrNotAChart)
	}
	return root, nil
}

// plotAreaOf returns the plot-area element under chartSpace.
func plotAreaOf(chartSpace *etree.Element) (*etree.Element, error) {
	plotArea := chartSpace.FindElement("chart/plotArea")
	if plotArea == nil {
		return nil, fmt.Errorf("%w: missing plot area", ErrNotAChart)
	}
	return plotArea, nil
}

// date1904Of reads the chart-wide epoch flag from chartSpace.
func date1904Of(chartSpace *etree.Element) bool {
	el := chartSpace.SelectElement("date1904")
	if el == nil {
		return false
	}
	v := el.SelectAttrValue("val", "0")
	return v == "1" || v == "true"
}

// plotGroups returns the plot-group elements of plotArea in document
// order.
func plotGroups(plotArea *etree.Element) []*etree.Element {
	var groups []*etree.Element
	for _, child := range plotArea.ChildElements() {
		if plotGroupTags[child.Tag] {
			groups = append(groups, child)
		}
	}
	return groups
}

// seriesElements returns the series elements of plotArea in plot-group,
// then document order.
func seriesElements(plotArea *etree.Element) []*etree.Element {
	var sers []*etree.Element
	for _, group := range plotGroups(plotArea) {
		sers = append(sers, group.SelectElements("ser")...)
	}
	return sers
}

// isDeleted reports whether an axis element is marked hidden.
func isDeleted(ax *etree.Element) bool {
	del := ax.SelectElement("delete")
	if del == nil {
		return false
	}
	v := del.SelectAttrValue("val", "1")
	return v == "1" || v == "true"
}

// CategoryAxis returns the first visible category or date axis element of
// the chart in doc. For an XY or bubble chart this is the x-axis value
// axis. Fails with ErrNoCategoryAxis for charts without one, such as pie.
func CategoryAxis(doc *etree.Document) (*etree.Element, error) {
	chartSpace, err := chartSpaceOf(doc)
	if err != nil {
		return nil, err
	}
	plotArea, err := plotAreaOf(chartSpace)
	if err != nil {
		return nil, err
	}
	// An XY chart has no catAx or dateAx; its x axis is the first valAx.
	for _, tag := range []string{"catAx", "dateAx", "valAx"} {
		axes := plotArea.SelectElements(tag)
		if len(axes) == 0 {
			continue
		}
		for _, ax := range axes {
			if !isDeleted(ax) {
				return ax, nil
			}
		}
		break
	}
	return nil, ErrNoCategoryAxis
}

// ValueAxis returns the idx-th value axis element of the chart in doc.
func ValueAxis(doc *etree.Document, idx int) (*etree.Element, error) {
	chartSpace, err := chartSpaceOf(doc)
	if err != nil {
		return nil, err
	}
	plotArea, err := plotAreaOf(chartSpace)
	if err != nil {
		return nil, err
	}
	valAxes := plotArea.SelectElements("valAx")
	if idx < 0 || idx >= len(valAxes) {
		return nil, ErrNoValueAxis
	}
	return valAxes[idx], nil
}
