// Package workbook persists a chart's backing values into an xlsx blob
// and synthesizes the worksheet range references cached in the chart XML.
package workbook

import (
	"github.com/xuri/excelize/v2"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// SheetName is the worksheet holding chart values.
const SheetName = "Sheet1"

// absCell converts 1-based coordinates to an absolute cell name ("$B$2").
// Coordinates here are always at least 1, so conversion cannot fail.
func absCell(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row, true)
	return cell
}

func cellRef(col, row int) string {
	return SheetName + "!" + absCell(col, row)
}

func rangeRef(fromCol, fromRow, toCol, toRow int) string {
	return SheetName + "!" + absCell(fromCol, fromRow) + ":" + absCell(toCol, toRow)
}

// allSeries flattens a chart's series across plots in render order.
func allSeries(chart *models.Chart) []*models.Series {
	var out []*models.Series
	for _, p := range chart.Plots() {
		out = append(out, p.Series()...)
	}
	return out
}

// categoryLayout places categories in the leading columns (one per
// level, most significant first) and one value column per series, with
// series names on row 1 and data from row 2.
type categoryLayout struct {
	depth int
	leaf  int
}

func newCategoryLayout(categories *models.Categories) categoryLayout {
	return categoryLayout{depth: categories.Depth(), leaf: categories.LeafCount()}
}

func (l categoryLayout) categoriesRef() string {
	return rangeRef(1, 2, l.depth, l.leaf+1)
}

func (l categoryLayout) nameRef(pos int) string {
	return cellRef(l.depth+1+pos, 1)
}

func (l categoryLayout) valuesRef(pos, count int) string {
	col := l.depth + 1 + pos
	return rangeRef(col, 2, col, count+1)
}

// pairedLayout stacks XY and bubble series vertically: x values in
// column A, y values in column B, bubble sizes in column C, each series
// block headed by a name row and separated by a blank row.
type pairedLayout struct {
	offsets []int // first data row per series, 1-based
}

func newPairedLayout(series []*models.Series) pairedLayout {
	offsets := make([]int, len(series))
	row := 2
	for i, s := range series {
		offsets[i] = row
		row += s.Len() + 2
	}
	return pairedLayout{offsets: offsets}
}

func (l pairedLayout) nameRef(pos int) string {
	return cellRef(2, l.offsets[pos]-1)
}

func (l pairedLayout) xValuesRef(pos, count int) string {
	return rangeRef(1, l.offsets[pos], 1, l.offsets[pos]+count-1)
}

func (l pairedLayout) yValuesRef(pos, count int) string {
	return rangeRef(2, l.offsets[pos], 2, l.offsets[pos]+count-1)
}

func (l pairedLayout) bubbleSizesRef(pos, count int) string {
	return rangeRef(3, l.offsets[pos], 3, l.offsets[pos]+count-1)
}

// ApplyDefaultRefs fills every unset worksheet reference on the chart's
// series so the cached ranges match the blob layout Blob produces.
// References a caller set explicitly are preserved.
func ApplyDefaultRefs(chart *models.Chart) {
	series := allSeries(chart)
	if len(series) == 0 {
		return
	}
	switch series[0].Shape() {
	case models.ShapeCategory:
		categories := chart.Categories()
		if categories == nil {
			return
		}
		layout := newCategoryLayout(categories)
		for pos, s := range series {
			setIfEmpty(&s.NameRef, layout.nameRef(pos))
			setIfEmpty(&s.CategoriesRef, layout.categoriesRef())
			setIfEmpty(&s.ValuesRef, layout.valuesRef(pos, s.Len()))
		}
	default:
		layout := newPairedLayout(series)
		for pos, s := range series {
			setIfEmpty(&s.NameRef, layout.nameRef(pos))
			setIfEmpty(&s.XValuesRef, layout.xValuesRef(pos, s.Len()))
			setIfEmpty(&s.YValuesRef, layout.yValuesRef(pos, s.Len()))
			if s.Shape() == models.ShapeBubble {
				setIfEmpty(&s.BubbleSizesRef, layout.bubbleSizesRef(pos, s.Len()))
			}
		}
	}
}

func setIfEmpty(ref *string, val string) {
	if *ref == "" {
		*ref = val
	}
}
