package rewrite

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// ErrUnsupportedChartType indicates a chart type with no registered
// rewriter family. Unreachable while the catalog and the dispatch table
// stay in sync.
var ErrUnsupportedChartType = errors.New("no series rewriter registered for chart type")

// ErrStructureMismatch indicates series data whose shape does not match
// the plot groups of the document being rewritten. The document is left
// untouched; the caller may pick a different operation.
var ErrStructureMismatch = errors.New("series data shape does not match existing plot group")

// SeriesRewriter adjusts the series elements of an existing chart
// document so their count and content match new series data, leaving
// every formatting element it does not own untouched.
type SeriesRewriter interface {
	// ReplaceSeriesData rewrites the series under doc's plot area. The
	// tree is either fully rewritten or, on error, left exactly as it
	// was.
	ReplaceSeriesData(doc *etree.Document, series []*models.Series) error
}

// serPatcher replaces the data children of one series element.
type serPatcher func(ser *etree.Element, s *models.Series, date1904 bool)

type shapeRewriter struct {
	shape models.DataShape
	patch serPatcher
}

func (r shapeRewriter) ReplaceSeriesData(doc *etree.Document, series []*models.Series) error {
	return replaceSeriesData(doc, series, r.shape, r.patch)
}

// rewriters maps every chart type to its rewriter family, selected by the
// type's data shape. The table must stay total over the enumeration;
// totality is verified at startup.
var rewriters = func() map[models.ChartType]SeriesRewriter {
	byShape := map[models.DataShape]SeriesRewriter{
		models.ShapeCategory: shapeRewriter{models.ShapeCategory, patchCategorySer},
		models.ShapeXY:       shapeRewriter{models.ShapeXY, patchXYSer},
		models.ShapeBubble:   shapeRewriter{models.ShapeBubble, patchBubbleSer},
	}
	table := make(map[models.ChartType]SeriesRewriter, len(models.AllChartTypes))
	for _, t := range models.AllChartTypes {
		info, ok := t.Info()
		if !ok {
			panic(fmt.Sprintf("chartml: chart type %v missing from catalog", t))
		}
		table[t] = byShape[info.Shape]
	}
	return table
}()

// ForChartType returns the rewriter family for chartType. A miss is an
// implementation error, never silently skipped.
func ForChartType(chartType models.ChartType) (SeriesRewriter, error) {
	r, ok := rewriters[chartType]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedChartType, chartType)
	}
	return r, nil
}

// ForDocument picks the rewriter matching the first plot group of an
// existing chart document.
func ForDocument(doc *etree.Document) (SeriesRewriter, error) {
	chartSpace, err := chartSpaceOf(doc)
	if err != nil {
		return nil, err
	}
	plotArea, err := plotAreaOf(chartSpace)
	if err != nil {
		return nil, err
	}
	groups := plotGroups(plotArea)
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no plot groups", ErrNotAChart)
	}
	shape, ok := plotGroupShapes[groups[0].Tag]
	if !ok {
		return nil, fmt.Errorf("%w: plot group %q", ErrUnsupportedChartType, groups[0].Tag)
	}
	switch shape {
	case models.ShapeXY:
		return shapeRewriter{models.ShapeXY, patchXYSer}, nil
	case models.ShapeBubble:
		return shapeRewriter{models.ShapeBubble, patchBubbleSer}, nil
	default:
		return shapeRewriter{models.ShapeCategory, patchCategorySer}, nil
	}
}

// replaceSeriesData runs the shared reconcile sequence: validate, adjust
// the series-element count by cloning or trimming, then patch each series
// element's data children in order. All checks that can fail run before
// the first mutation, so the tree stays consistent on every exit path.
func replaceSeriesData(doc *etree.Document, series []*models.Series, shape models.DataShape, patch serPatcher) error {
	if len(series) == 0 {
		return models.ErrNoSeries
	}
	for _, s := range series {
		if s.Shape() != shape {
			return fmt.Errorf("%w: series %q is %s, rewriter wants %s",
				models.ErrShapeMismatch, s.Name, s.Shape(), shape)
		}
		if shape == models.ShapeCategory && s.Categories == nil {
			return fmt.Errorf("%w: series %q has no categories", models.ErrShapeMismatch, s.Name)
		}
	}

	chartSpace, err := chartSpaceOf(doc)
	if err != nil {
		return err
	}
	plotArea, err := plotAreaOf(chartSpace)
	if err != nil {
		return err
	}
	groups := plotGroups(plotArea)
	if len(groups) == 0 {
		return fmt.Errorf("%w: no plot groups", ErrNotAChart)
	}
	for _, group := range groups {
		groupShape, ok := plotGroupShapes[group.Tag]
		if !ok || groupShape != shape {
			return fmt.Errorf("%w: plot group %q", ErrStructureMismatch, group.Tag)
		}
	}
	sers := seriesElements(plotArea)
	if len(sers) == 0 {
		return fmt.Errorf("%w: no series elements", ErrStructureMismatch)
	}

	adjustSerCount(plotArea, len(series))

	date1904 := date1904Of(chartSpace)
	for i, ser := range seriesElements(plotArea) {
		patch(ser, series[i], date1904)
	}
	return nil
}

// adjustSerCount brings the number of series elements under plotArea to
// want. New elements are cloned from the last series element, inheriting
// its formatting; excess elements are trimmed from the end along with any
// plot group left empty.
func adjustSerCount(plotArea *etree.Element, want int) {
	sers := seriesElements(plotArea)
	diff := want - len(sers)
	switch {
	case diff > 0:
		addClonedSers(plotArea, sers[len(sers)-1], diff)
	case diff < 0:
		trimSers(plotArea, sers, -diff)
	}
}

// addClonedSers appends count clones of last, each inserted immediately
// after its source with idx and order bumped past the running maxima.
// Cloning copies all formatting from the source, which is the point of
// cloning from the last series.
func addClonedSers(plotArea *etree.Element, last *etree.Element, count int) {
	nextIdx := maxSerVal(plotArea, "idx") + 1
	nextOrder := maxSerVal(plotArea, "order") + 1
	for i := 0; i < count; i++ {
		clone := last.Copy()
		setSerVal(clone, "idx", nextIdx)
		setSerVal(clone, "order", nextOrder)
		nextIdx++
		nextOrder++
		last.Parent().InsertChildAt(last.Index()+1, clone)
		last = clone
	}
}

// trimSers removes the last count series elements, then removes any plot
// group left without series.
func trimSers(plotArea *etree.Element, sers []*etree.Element, count int) {
	for _, ser := range sers[len(sers)-count:] {
		ser.Parent().RemoveChild(ser)
	}
	for _, group := range plotGroups(plotArea) {
		if len(group.SelectElements("ser")) == 0 {
			plotArea.RemoveChild(group)
		}
	}
}

// maxSerVal returns the highest val attribute among the given child of
// every series element under plotArea, or -1 when none parse.
func maxSerVal(plotArea *etree.Element, tag string) int {
	max := -1
	for _, ser := range seriesElements(plotArea) {
		el := ser.SelectElement(tag)
		if el == nil {
			continue
		}
		if v, err := strconv.Atoi(el.SelectAttrValue("val", "")); err == nil && v > max {
			max = v
		}
	}
	return max
}

// setSerVal sets the val attribute of ser's idx or order child, creating
// the child if the source lacked one.
func setSerVal(ser *etree.Element, tag string, val int) {
	el := ser.SelectElement(tag)
	if el == nil {
		el = etree.NewElement("c:" + tag)
		insertSerChild(ser, el)
	}
	el.CreateAttr("val", strconv.Itoa(val))
}
