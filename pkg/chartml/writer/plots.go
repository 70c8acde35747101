package writer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// ErrUnsupportedChartType indicates a chart type with no registered
// plot-group writer. Unreachable while the catalog and the dispatch table
// stay in sync.
var ErrUnsupportedChartType = errors.New("no plot writer registered for chart type")

// plotWriter emits the plot-group element for one plot.
type plotWriter interface {
	element(plot *models.Plot, date1904 bool) *etree.Element
}

// plotWriters maps every chart type to its family writer. The table must
// stay total over the enumeration; totality is verified at startup.
var plotWriters = map[models.ChartType]plotWriter{
	models.Area:           areaWriter{},
	models.AreaStacked:    areaWriter{},
	models.AreaStacked100: areaWriter{},

	models.BarClustered:     barWriter{},
	models.BarStacked:       barWriter{},
	models.BarStacked100:    barWriter{},
	models.ColumnClustered:  barWriter{},
	models.ColumnStacked:    barWriter{},
	models.ColumnStacked100: barWriter{},

	models.Bubble:             bubbleWriter{},
	models.BubbleThreeDEffect: bubbleWriter{},

	models.Doughnut:         doughnutWriter{},
	models.DoughnutExploded: doughnutWriter{},

	models.Line:                  lineWriter{},
	models.LineMarkers:           lineWriter{},
	models.LineMarkersStacked:    lineWriter{},
	models.LineMarkersStacked100: lineWriter{},
	models.LineStacked:           lineWriter{},
	models.LineStacked100:        lineWriter{},

	models.Pie:         pieWriter{},
	models.PieExploded: pieWriter{},

	models.Radar:        radarWriter{},
	models.RadarFilled:  radarWriter{},
	models.RadarMarkers: radarWriter{},

	models.XYScatter:                xyWriter{},
	models.XYScatterLines:           xyWriter{},
	models.XYScatterLinesNoMarkers:  xyWriter{},
	models.XYScatterSmooth:          xyWriter{},
	models.XYScatterSmoothNoMarkers: xyWriter{},
}

func init() {
	for _, t := range models.AllChartTypes {
		if _, ok := plotWriters[t]; !ok {
			panic(fmt.Sprintf("chartml: chart type %v has no plot writer", t))
		}
	}
}

// plotWriterFor returns the writer able to emit plot-group markup for
// chartType. A miss is an implementation error, never silently skipped.
func plotWriterFor(chartType models.ChartType) (plotWriter, error) {
	w, ok := plotWriters[chartType]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedChartType, chartType)
	}
	return w, nil
}

// serShell starts a <c:ser> with its idx, order and tx children.
func serShell(parent *etree.Element, s *models.Series) *etree.Element {
	ser := parent.CreateElement("c:ser")
	addValEl(ser, "c:idx", strconv.Itoa(s.Index))
	addValEl(ser, "c:order", strconv.Itoa(s.Index))
	ser.AddChild(seriesTx(s))
	return ser
}

// addDLbls appends the default data-label block shared by most plot
// families. Doughnut alone adds leader lines.
func addDLbls(parent *etree.Element, leaderLines bool) {
	dLbls := parent.CreateElement("c:dLbls")
	addValEl(dLbls, "c:showLegendKey", "0")
	addValEl(dLbls, "c:showVal", "0")
	addValEl(dLbls, "c:showCatName", "0")
	addValEl(dLbls, "c:showSerName", "0")
	addValEl(dLbls, "c:showPercent", "0")
	addValEl(dLbls, "c:showBubbleSize", "0")
	if leaderLines {
		addValEl(dLbls, "c:showLeaderLines", "1")
	}
}

// addAxisIDs appends the plot's two axis-id references.
func addAxisIDs(parent *etree.Element, plot *models.Plot) {
	x, y := plot.AxisIDs()
	addValEl(parent, "c:axId", strconv.FormatUint(uint64(x), 10))
	addValEl(parent, "c:axId", strconv.FormatUint(uint64(y), 10))
}

// addNoMarker appends a marker element disabling point symbols.
func addNoMarker(parent *etree.Element) {
	marker := parent.CreateElement("c:marker")
	addValEl(marker, "c:symbol", "none")
}

type areaWriter struct{}

func (areaWriter) element(plot *models.Plot, date1904 bool) *etree.Element {
	info, _ := plot.ChartType().Info()
	el := etree.NewElement("c:areaChart")
	addValEl(el, "c:grouping", string(info.Grouping))
	addValEl(el, "c:varyColors", "0")
	for _, s := range plot.Series() {
		sw := categorySeriesWriter{series: s, date1904: date1904}
		ser := serShell(el, s)
		ser.AddChild(sw.Cat())
		ser.AddChild(sw.Val())
	}
	addDLbls(el, false)
	addAxisIDs(el, plot)
	return el
}

type barWriter struct{}

func (barWriter) element(plot *models.Plot, date1904 bool) *etree.Element {
	info, _ := plot.ChartType().Info()
	el := etree.NewElement("c:barChart")
	addValEl(el, "c:barDir", string(info.BarDir))
	addValEl(el, "c:grouping", string(info.Grouping))
	for _, s := range plot.Series() {
		sw := categorySeriesWriter{series: s, date1904: date1904}
		ser := serShell(el, s)
		ser.AddChild(sw.Cat())
		ser.AddChild(sw.Val())
	}
	addDLbls(el, false)
	// Stacked bars fully overlap; clustered bars get no overlap element.
	if info.Grouping == models.GroupingStacked || info.Grouping == models.GroupingPercentStacked {
		addValEl(el, "c:overlap", "100")
	}
	addAxisIDs(el, plot)
	return el
}

type doughnutWriter struct{}

func (doughnutWriter) element(plot *models.Plot, date1904 bool) *etree.Element {
	info, _ := plot.ChartType().Info()
	el := etree.NewElement("c:doughnutChart")
	addValEl(el, "c:varyColors", "1")
	for _, s := range plot.Series() {
		sw := categorySeriesWriter{series: s, date1904: date1904}
		ser := serShell(el, s)
		if info.Exploded {
			addValEl(ser, "c:explosion", "25")
		}
		ser.AddChild(sw.Cat())
		ser.AddChild(sw.Val())
	}
	addDLbls(el, true)
	addValEl(el, "c:firstSliceAng", "0")
	addValEl(el, "c:holeSize", "50")
	return el
}

type lineWriter struct{}

func (lineWriter) element(plot *models.Plot, date1904 bool) *etree.Element {
	info, _ := plot.ChartType().Info()
	el := etree.NewElement("c:lineChart")
	addValEl(el, "c:grouping", string(info.Grouping))
	addValEl(el, "c:varyColors", "0")
	for _, s := range plot.Series() {
		sw := categorySeriesWriter{series: s, date1904: date1904}
		ser := serShell(el, s)
		if !info.Markers {
			addNoMarker(ser)
		}
		ser.AddChild(sw.Cat())
		ser.AddChild(sw.Val())
		addValEl(ser, "c:smooth", "0")
	}
	addDLbls(el, false)
	addValEl(el, "c:marker", "1")
	addValEl(el, "c:smooth", "0")
	addAxisIDs(el, plot)
	return el
}

type pieWriter struct{}

func (pieWriter) element(plot *models.Plot, date1904 bool) *etree.Element {
	info, _ := plot.ChartType().Info()
	el := etree.NewElement("c:pieChart")
	addValEl(el, "c:varyColors", "1")
	for _, s := range plot.Series() {
		sw := categorySeriesWriter{series: s, date1904: date1904}
		ser := serShell(el, s)
		if info.Exploded {
			addValEl(ser, "c:explosion", "25")
		}
		ser.AddChild(sw.Cat())
		ser.AddChild(sw.Val())
	}
	return el
}

type radarWriter struct{}

func (radarWriter) element(plot *models.Plot, date1904 bool) *etree.Element {
	info, _ := plot.ChartType().Info()
	style := "marker"
	if info.Filled {
		style = "filled"
	}
	el := etree.NewElement("c:radarChart")
	addValEl(el, "c:radarStyle", style)
	addValEl(el, "c:varyColors", "0")
	for _, s := range plot.Series() {
		sw := categorySeriesWriter{series: s, date1904: date1904}
		ser := serShell(el, s)
		if !info.Markers {
			addNoMarker(ser)
		}
		ser.AddChild(sw.Cat())
		ser.AddChild(sw.Val())
		addValEl(ser, "c:smooth", "0")
	}
	return el
}

type xyWriter struct{}

func (xyWriter) element(plot *models.Plot, date1904 bool) *etree.Element {
	info, _ := plot.ChartType().Info()
	style := "lineMarker"
	if info.Smooth {
		style = "smoothMarker"
	}
	el := etree.NewElement("c:scatterChart")
	addValEl(el, "c:scatterStyle", style)
	addValEl(el, "c:varyColors", "0")
	for _, s := range plot.Series() {
		sw := xySeriesWriter{series: s}
		ser := serShell(el, s)
		if plot.ChartType() == models.XYScatter {
			spPr := ser.CreateElement("c:spPr")
			ln := spPr.CreateElement("a:ln")
			ln.CreateAttr("w", "47625")
			ln.CreateElement("a:noFill")
		}
		if !info.Markers {
			addNoMarker(ser)
		}
		ser.AddChild(sw.XVal())
		ser.AddChild(sw.YVal())
		addValEl(ser, "c:smooth", "0")
	}
	addAxisIDs(el, plot)
	return el
}

type bubbleWriter struct{}

func (bubbleWriter) element(plot *models.Plot, date1904 bool) *etree.Element {
	info, _ := plot.ChartType().Info()
	el := etree.NewElement("c:bubbleChart")
	addValEl(el, "c:varyColors", "0")
	for _, s := range plot.Series() {
		sw := newBubbleSeriesWriter(s)
		ser := serShell(el, s)
		addValEl(ser, "c:invertIfNegative", "0")
		ser.AddChild(sw.XVal())
		ser.AddChild(sw.YVal())
		ser.AddChild(sw.BubbleSize())
		addValEl(ser, "c:bubble3D", boolVal(info.Bubble3D))
	}
	addDLbls(el, false)
	addValEl(el, "c:bubbleScale", "100")
	addValEl(el, "c:showNegBubbles", "0")
	addAxisIDs(el, plot)
	return el
}
