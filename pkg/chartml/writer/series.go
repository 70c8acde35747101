package writer

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// categorySeriesWriter produces the data fragments of one category-shaped
// series: name text, categories and values.
type categorySeriesWriter struct {
	series   *models.Series
	date1904 bool
}

// Tx returns the <c:tx> element holding the series display name and its
// worksheet reference.
func (w categorySeriesWriter) Tx() *etree.Element {
	return seriesTx(w.series)
}

// Cat returns the <c:cat> element. Its cache shape follows the category
// kind: string cache, numeric cache (numbers and dates), or one nested
// level fragment per depth for multi-level categories.
func (w categorySeriesWriter) Cat() *etree.Element {
	categories := w.series.Categories
	cat := etree.NewElement("c:cat")

	if categories.AreNumeric() {
		numRef := cat.CreateElement("c:numRef")
		numRef.CreateElement("c:f").SetText(w.series.CategoriesRef)
		cache := numRef.CreateElement("c:numCache")
		cache.CreateElement("c:formatCode").SetText(categories.NumberFormat())
		addValEl(cache, "c:ptCount", strconv.Itoa(categories.LeafCount()))
		for idx, val := range categories.NumericStrVals(w.date1904) {
			addPt(cache, idx, val)
		}
		return cat
	}

	if categories.Depth() == 1 {
		strRef := cat.CreateElement("c:strRef")
		strRef.CreateElement("c:f").SetText(w.series.CategoriesRef)
		cache := strRef.CreateElement("c:strCache")
		addValEl(cache, "c:ptCount", strconv.Itoa(categories.LeafCount()))
		for idx, label := range categories.Labels() {
			addPt(cache, idx, label)
		}
		return cat
	}

	mlRef := cat.CreateElement("c:multiLvlStrRef")
	mlRef.CreateElement("c:f").SetText(w.series.CategoriesRef)
	cache := mlRef.CreateElement("c:multiLvlStrCache")
	// ptCount reflects leaf-category count, not level count.
	addValEl(cache, "c:ptCount", strconv.Itoa(categories.LeafCount()))
	for _, level := range categories.Levels() {
		lvl := cache.CreateElement("c:lvl")
		for _, ll := range level {
			addPt(lvl, ll.Idx, ll.Label)
		}
	}
	return cat
}

// Val returns the <c:val> element holding the series values.
func (w categorySeriesWriter) Val() *etree.Element {
	val := etree.NewElement("c:val")
	addNumRef(val, w.series.ValuesRef, w.series.NumberFormatOrDefault(), w.series.Values)
	return val
}

// xySeriesWriter produces the data fragments of one XY series.
type xySeriesWriter struct {
	series *models.Series
}

func (w xySeriesWriter) Tx() *etree.Element {
	return seriesTx(w.series)
}

// XVal returns the <c:xVal> element holding the x-value cache.
func (w xySeriesWriter) XVal() *etree.Element {
	xVal := etree.NewElement("c:xVal")
	addNumRef(xVal, w.series.XValuesRef, w.series.NumberFormatOrDefault(), w.series.XValues)
	return xVal
}

// YVal returns the <c:yVal> element holding the y-value cache.
func (w xySeriesWriter) YVal() *etree.Element {
	yVal := etree.NewElement("c:yVal")
	addNumRef(yVal, w.series.YValuesRef, w.series.NumberFormatOrDefault(), w.series.YValues)
	return yVal
}

// bubbleSeriesWriter extends the XY writer with the bubble-size channel.
type bubbleSeriesWriter struct {
	xySeriesWriter
}

func newBubbleSeriesWriter(s *models.Series) bubbleSeriesWriter {
	return bubbleSeriesWriter{xySeriesWriter{series: s}}
}

// BubbleSize returns the <c:bubbleSize> element holding the size cache.
func (w bubbleSeriesWriter) BubbleSize() *etree.Element {
	size := etree.NewElement("c:bubbleSize")
	addNumRef(size, w.series.BubbleSizesRef, w.series.NumberFormatOrDefault(), w.series.BubbleSizes)
	return size
}

// CategorySeriesFragments returns the tx, cat and val elements for a
// category-shaped series, for insertion into an existing series element.
func CategorySeriesFragments(s *models.Series, date1904 bool) (tx, cat, val *etree.Element) {
	w := categorySeriesWriter{series: s, date1904: date1904}
	return w.Tx(), w.Cat(), w.Val()
}

// XYSeriesFragments returns the tx, xVal and yVal elements for an XY
// series.
func XYSeriesFragments(s *models.Series) (tx, xVal, yVal *etree.Element) {
	w := xySeriesWriter{series: s}
	return w.Tx(), w.XVal(), w.YVal()
}

// BubbleSeriesFragments returns the tx, xVal, yVal and bubbleSize
// elements for a bubble series.
func BubbleSeriesFragments(s *models.Series) (tx, xVal, yVal, bubbleSize *etree.Element) {
	w := newBubbleSeriesWriter(s)
	return w.Tx(), w.XVal(), w.YVal(), w.BubbleSize()
}

// seriesTx builds the shared <c:tx> fragment: a one-point string cache
// holding the series name next to its worksheet reference.
func seriesTx(s *models.Series) *etree.Element {
	tx := etree.NewElement("c:tx")
	strRef := tx.CreateElement("c:strRef")
	strRef.CreateElement("c:f").SetText(s.NameRef)
	cache := strRef.CreateElement("c:strCache")
	addValEl(cache, "c:ptCount", "1")
	addPt(cache, 0, s.Name)
	return tx
}
