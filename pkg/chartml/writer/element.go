// Package writer composes default chart XML: series fragments, plot-group
// elements, axes and the chart-space document skeleton.
package writer

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// Chart markup namespaces declared on the chart-space root.
const (
	nsC = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

func boolVal(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// addValEl appends <tag val="..."/> to parent.
func addValEl(parent *etree.Element, tag, val string) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("val", val)
	return el
}

// addPt appends <c:pt idx="..."><c:v>...</c:v></c:pt> to parent.
func addPt(parent *etree.Element, idx int, value string) {
	pt := parent.CreateElement("c:pt")
	pt.CreateAttr("idx", strconv.Itoa(idx))
	pt.CreateElement("c:v").SetText(value)
}

// addNumRef appends a <c:numRef> holding the worksheet reference and a
// numeric cache for values. ptCount counts positions; a nil value emits no
// point entry for its index.
func addNumRef(parent *etree.Element, ref, numberFormat string, values []*float64) {
	numRef := parent.CreateElement("c:numRef")
	numRef.CreateElement("c:f").SetText(ref)
	cache := numRef.CreateElement("c:numCache")
	cache.CreateElement("c:formatCode").SetText(numberFormat)
	addValEl(cache, "c:ptCount", strconv.Itoa(len(values)))
	for idx, v := range values {
		if v == nil {
			continue
		}
		addPt(cache, idx, models.FormatFloat(*v))
	}
}
