package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

// Blob builds the xlsx blob backing the chart's cached values, laid out
// to match the references ApplyDefaultRefs synthesizes.
func Blob(chart *models.Chart) ([]byte, error) {
	series := allSeries(chart)
	if len(series) == 0 {
		return nil, models.ErrNoSeries
	}

	f := excelize.NewFile()
	defer f.Close()

	var err error
	switch series[0].Shape() {
	case models.ShapeCategory:
		err = writeCategorySheet(f, chart, series)
	default:
		err = writePairedSheet(f, series)
	}
	if err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeCategorySheet writes category labels in the leading columns and
// one value column per series.
func writeCategorySheet(f *excelize.File, chart *models.Chart, series []*models.Series) error {
	categories := chart.Categories()
	if categories == nil {
		return fmt.Errorf("category chart without categories: %w", models.ErrShapeMismatch)
	}
	if err := writeCategoryLabels(f, categories); err != nil {
		return err
	}
	layout := newCategoryLayout(categories)
	for pos, s := range series {
		col := layout.depth + 1 + pos
		cell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, s.Name); err != nil {
			return err
		}
		if err := writeValueColumn(f, col, 2, s.Values); err != nil {
			return err
		}
	}
	return nil
}

func writeCategoryLabels(f *excelize.File, categories *models.Categories) error {
	switch categories.Kind() {
	case models.CategoryString:
		for i, label := range categories.Labels() {
			if err := setCell(f, 1, i+2, label); err != nil {
				return err
			}
		}
	case models.CategoryNumeric:
		for i, n := range categories.Numbers() {
			if err := setCell(f, 1, i+2, n); err != nil {
				return err
			}
		}
	case models.CategoryDate:
		for i, d := range categories.Dates() {
			if err := setCell(f, 1, i+2, d); err != nil {
				return err
			}
		}
	case models.CategoryMultiLevel:
		// One column per level, most significant first; a label is written
		// only where its run starts, mirroring the merged-cell look of a
		// hierarchical axis.
		levels := categories.Levels()
		for levelPos, level := range levels {
			col := len(levels) - levelPos
			for _, ll := range level {
				if err := setCell(f, col, ll.Idx+2, ll.Label); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// writePairedSheet stacks XY/bubble series vertically: name row, then x
// in column A, y in column B and bubble sizes in column C.
func writePairedSheet(f *excelize.File, series []*models.Series) error {
	layout := newPairedLayout(series)
	for pos, s := range series {
		top := layout.offsets[pos]
		if err := setCell(f, 2, top-1, s.Name); err != nil {
			return err
		}
		if err := writeValueColumn(f, 1, top, s.XValues); err != nil {
			return err
		}
		if err := writeValueColumn(f, 2, top, s.YValues); err != nil {
			return err
		}
		if s.Shape() == models.ShapeBubble {
			if err := writeValueColumn(f, 3, top, s.BubbleSizes); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeValueColumn writes values down one column starting at topRow,
// leaving cells for missing points empty.
func writeValueColumn(f *excelize.File, col, topRow int, values []*float64) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		if err := setCell(f, col, topRow+i, *v); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, value)
}
