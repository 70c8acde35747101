package writer

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// ErrEmptyChart indicates a render request for a chart with no plots.
var ErrEmptyChart = errors.New("chart has no plots")

// Document assembles the complete chart-space document for chart: the
// document-level flags, one plot-group element per plot in render order,
// the axes block when the chart has axes, and the fixed legend and
// formatting boilerplate.
func Document(chart *models.Chart) (*etree.Document, error) {
	plots := chart.Plots()
	if len(plots) == 0 {
		return nil, ErrEmptyChart
	}
	for _, p := range plots {
		if p.HasAxes() != chart.HasAxes() {
			return nil, fmt.Errorf("%w: plot %v", models.ErrAxisMismatch, p.ChartType())
		}
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version='1.0' encoding='UTF-8' standalone='yes'`)

	chartSpace := doc.CreateElement("c:chartSpace")
	chartSpace.CreateAttr("xmlns:c", nsC)
	chartSpace.CreateAttr("xmlns:a", nsA)
	chartSpace.CreateAttr("xmlns:r", nsR)

	addValEl(chartSpace, "c:date1904", boolVal(chart.Date1904))
	addValEl(chartSpace, "c:roundedCorners", boolVal(chart.RoundedCorners))

	chartEl := chartSpace.CreateElement("c:chart")
	addValEl(chartEl, "c:autoTitleDeleted", "1")

	plotArea := chartEl.CreateElement("c:plotArea")
	plotArea.CreateElement("c:layout")
	for _, p := range plots {
		w, err := plotWriterFor(p.ChartType())
		if err != nil {
			return nil, err
		}
		plotArea.AddChild(w.element(p, chart.Date1904))
	}
	if chart.HasAxes() {
		for _, ax := range (axesWriter{chart: chart}).elements() {
			plotArea.AddChild(ax)
		}
	}

	legend := chartEl.CreateElement("c:legend")
	addValEl(legend, "c:legendPos", "r")
	legend.CreateElement("c:layout")
	addValEl(legend, "c:overlay", "0")

	addValEl(chartEl, "c:plotVisOnly", "1")
	addValEl(chartEl, "c:dispBlanksAs", "gap")
	addValEl(chartEl, "c:showDLblsOverMax", "0")

	spPr := chartSpace.CreateElement("c:spPr")
	spPr.CreateElement("a:noFill")
	spPr.CreateElement("a:ln").CreateElement("a:noFill")
	spPr.CreateElement("a:effectLst")

	txPr := chartSpace.CreateElement("c:txPr")
	txPr.CreateElement("a:bodyPr")
	txPr.CreateElement("a:lstStyle")
	p := txPr.CreateElement("a:p")
	p.CreateElement("a:pPr").CreateElement("a:defRPr")
	p.CreateElement("a:endParaRPr").CreateAttr("lang", "en-US")

	return doc, nil
}
