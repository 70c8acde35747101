package rewrite

import (
	"github.com/beevik/etree"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
	"github.com/Holimetrix/chartml/pkg/chartml/writer"
)

// serChildOrder is the schema child sequence of a series element, as a
// union over every series flavor. Replacement data children are inserted
// at their schema position; everything else in the series element is left
// where it is.
var serChildOrder = []string{
	"idx", "order", "tx", "spPr", "invertIfNegative", "pictureOptions",
	"marker", "explosion", "dPt", "dLbls", "trendline", "errBars",
	"cat", "val", "xVal", "yVal", "shape", "smooth", "bubbleSize",
	"bubble3D", "extLst",
}

var serChildRank = func() map[string]int {
	ranks := make(map[string]int, len(serChildOrder))
	for i, tag := range serChildOrder {
		ranks[tag] = i
	}
	return ranks
}()

// removeSerChildren drops every child of ser with one of the given tags.
func removeSerChildren(ser *etree.Element, tags ...string) {
	for _, tag := range tags {
		for _, el := range ser.SelectElements(tag) {
			ser.RemoveChild(el)
		}
	}
}

// insertSerChild places el among ser's children per the schema sequence:
// before the first sibling that must follow it, else at the end.
func insertSerChild(ser *etree.Element, el *etree.Element) {
	rank, ok := serChildRank[el.Tag]
	if !ok {
		ser.AddChild(el)
		return
	}
	for _, child := range ser.ChildElements() {
		childRank, known := serChildRank[child.Tag]
		if known && childRank > rank {
			ser.InsertChildAt(child.Index(), el)
			return
		}
	}
	ser.AddChild(el)
}

// patchCategorySer replaces the tx, cat and val children of ser from s,
// leaving all other children untouched.
func patchCategorySer(ser *etree.Element, s *models.Series, date1904 bool) {
	removeSerChildren(ser, "tx", "cat", "val")
	tx, cat, val := writer.CategorySeriesFragments(s, date1904)
	insertSerChild(ser, tx)
	insertSerChild(ser, cat)
	insertSerChild(ser, val)
}

// patchXYSer replaces the tx, xVal and yVal children of ser from s.
func patchXYSer(ser *etree.Element, s *models.Series, _ bool) {
	removeSerChildren(ser, "tx", "xVal", "yVal")
	tx, xVal, yVal := writer.XYSeriesFragments(s)
	insertSerChild(ser, tx)
	insertSerChild(ser, xVal)
	insertSerChild(ser, yVal)
}

// patchBubbleSer replaces the tx, xVal, yVal and bubbleSize children of
// ser from s.
func patchBubbleSer(ser *etree.Element, s *models.Series, _ bool) {
	removeSerChildren(ser, "tx", "xVal", "yVal", "bubbleSize")
	tx, xVal, yVal, size := writer.BubbleSeriesFragments(s)
	insertSerChild(ser, tx)
	insertSerChild(ser, xVal)
	insertSerChild(ser, yVal)
	insertSerChild(ser, size)
}
