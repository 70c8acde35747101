package writer

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// axesWriter synthesizes the axis elements for every axis-id pair a chart
// references. For category-shaped charts each pair emits the value axis
// before the category-or-date axis; xy and bubble charts pair two value
// axes, x-axis first. The primary pair precedes the secondary one.
type axesWriter struct {
	chart *models.Chart
}

func (w axesWriter) elements() []*etree.Element {
	var els []*etree.Element
	for _, pair := range w.chart.AxisIDPairs() {
		if w.paired() {
			els = append(els, w.xValAx(pair), w.valAx(pair))
		} else {
			els = append(els, w.valAx(pair), w.catAx(pair))
		}
	}
	return els
}

// paired reports whether the chart plots xy or bubble data, which takes a
// value axis on both dimensions.
func (w axesWriter) paired() bool {
	plots := w.chart.Plots()
	if len(plots) == 0 {
		return false
	}
	shape := plots[0].ChartType().Shape()
	return shape == models.ShapeXY || shape == models.ShapeBubble
}

// valAx builds the value axis for pair. The primary value axis sits on
// the left edge, crosses at auto-zero and carries major gridlines; the
// secondary one sits on the right edge and crosses at the far end.
func (w axesWriter) valAx(pair models.AxisIDPair) *etree.Element {
	ax := etree.NewElement("c:valAx")
	addValEl(ax, "c:axId", strconv.FormatUint(uint64(pair.Y), 10))
	scaling := ax.CreateElement("c:scaling")
	addValEl(scaling, "c:orientation", "minMax")
	addValEl(ax, "c:delete", "0")
	if pair.Secondary {
		addValEl(ax, "c:axPos", "r")
	} else {
		addValEl(ax, "c:axPos", "l")
		ax.CreateElement("c:majorGridlines")
	}
	numFmt := ax.CreateElement("c:numFmt")
	numFmt.CreateAttr("formatCode", "General")
	numFmt.CreateAttr("sourceLinked", "1")
	addValEl(ax, "c:majorTickMark", "none")
	addValEl(ax, "c:minorTickMark", "none")
	addValEl(ax, "c:tickLblPos", "nextTo")
	addValEl(ax, "c:crossAx", strconv.FormatUint(uint64(pair.X), 10))
	if pair.Secondary {
		addValEl(ax, "c:crosses", "max")
	} else {
		addValEl(ax, "c:crosses", "autoZero")
	}
	addValEl(ax, "c:crossBetween", "between")
	return ax
}

// xValAx builds the bottom-edge value axis scatter and bubble plots use
// in place of a category axis.
func (w axesWriter) xValAx(pair models.AxisIDPair) *etree.Element {
	ax := etree.NewElement("c:valAx")
	addValEl(ax, "c:axId", strconv.FormatUint(uint64(pair.X), 10))
	scaling := ax.CreateElement("c:scaling")
	addValEl(scaling, "c:orientation", "minMax")
	addValEl(ax, "c:delete", boolVal(pair.Secondary))
	addValEl(ax, "c:axPos", "b")
	numFmt := ax.CreateElement("c:numFmt")
	numFmt.CreateAttr("formatCode", "General")
	numFmt.CreateAttr("sourceLinked", "1")
	addValEl(ax, "c:majorTickMark", "out")
	addValEl(ax, "c:minorTickMark", "none")
	addValEl(ax, "c:tickLblPos", "nextTo")
	addValEl(ax, "c:crossAx", strconv.FormatUint(uint64(pair.Y), 10))
	addValEl(ax, "c:crosses", "autoZero")
	addValEl(ax, "c:crossBetween", "midCat")
	return ax
}

// catAx builds the category axis for pair, as a date axis when the
// chart's categories are date-typed. The secondary category axis is
// hidden since it duplicates the primary one visually.
func (w axesWriter) catAx(pair models.AxisIDPair) *etree.Element {
	categories := w.chart.Categories()
	dates := categories != nil && categories.AreDates()

	tag := "c:catAx"
	if dates {
		tag = "c:dateAx"
	}
	ax := etree.NewElement(tag)
	addValEl(ax, "c:axId", strconv.FormatUint(uint64(pair.X), 10))
	scaling := ax.CreateElement("c:scaling")
	addValEl(scaling, "c:orientation", "minMax")
	addValEl(ax, "c:delete", boolVal(pair.Secondary))
	addValEl(ax, "c:axPos", "b")
	if dates {
		numFmt := ax.CreateElement("c:numFmt")
		numFmt.CreateAttr("formatCode", categories.NumberFormat())
		numFmt.CreateAttr("sourceLinked", "1")
	}
	addValEl(ax, "c:majorTickMark", "out")
	addValEl(ax, "c:minorTickMark", "none")
	addValEl(ax, "c:tickLblPos", "nextTo")
	addValEl(ax, "c:crossAx", strconv.FormatUint(uint64(pair.Y), 10))
	addValEl(ax, "c:auto", "1")
	if dates {
		addValEl(ax, "c:lblOffset", "100")
		addValEl(ax, "c:baseTimeUnit", "days")
	} else {
		addValEl(ax, "c:lblAlgn", "ctr")
		addValEl(ax, "c:lblOffset", "100")
		addValEl(ax, "c:noMultiLvlLbl", "0")
	}
	return ax
}
