package models

import (
	"fmt"
	"strconv"
	"time"
)

// CategoryKind identifies how category labels are typed.
type CategoryKind int

const (
	// CategoryString is plain text labels.
	CategoryString CategoryKind = iota
	// CategoryNumeric is numeric labels with a number-format code.
	CategoryNumeric
	// CategoryDate is date labels, serialized as Excel day numbers.
	CategoryDate
	// CategoryMultiLevel is nested labels forming a hierarchical axis.
	CategoryMultiLevel
)

// Default number-format codes applied when a caller does not set one.
const (
	defaultNumberFormat     = "General"
	defaultDateNumberFormat = `yyyy\-mm\-dd`
)

// Categories is an ordered, kind-homogeneous sequence of category labels
// for a category-shaped chart.
type Categories struct {
	kind         CategoryKind
	numberFormat string
	labels       []string
	numbers      []float64
	dates        []time.Time
	// tuples holds multi-level labels, most significant level first within
	// each tuple. All tuples share one depth.
	tuples [][]string
	depth  int
}

// NewCategories builds a Categories from a mixed-type value sequence,
// inferring the kind from the first element. Supported element types are
// string, float64, int, time.Time and []string (multi-level). A sequence
// mixing kinds fails with ErrMixedCategories.
func NewCategories(values []interface{}) (*Categories, error) {
	if len(values) == 0 {
		return nil, ErrEmptyCategories
	}
	switch values[0].(type) {
	case string:
		labels := make([]string, len(values))
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, want string", ErrMixedCategories, i, v)
			}
			labels[i] = s
		}
		return NewStringCategories(labels), nil
	case float64, int:
		numbers := make([]float64, len(values))
		for i, v := range values {
			switch n := v.(type) {
			case float64:
				numbers[i] = n
			case int:
				numbers[i] = float64(n)
			default:
				return nil, fmt.Errorf("%w: element %d is %T, want number", ErrMixedCategories, i, v)
			}
		}
		return NewNumericCategories(numbers, ""), nil
	case time.Time:
		dates := make([]time.Time, len(values))
		for i, v := range values {
			d, ok := v.(time.Time)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, want time.Time", ErrMixedCategories, i, v)
			}
			dates[i] = d
		}
		return NewDateCategories(dates, ""), nil
	case []string:
		tuples := make([][]string, len(values))
		for i, v := range values {
			t, ok := v.([]string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, want []string", ErrMixedCategories, i, v)
			}
			tuples[i] = t
		}
		return NewMultiLevelCategories(tuples)
	default:
		return nil, fmt.Errorf("%w: unsupported category type %T", ErrMixedCategories, values[0])
	}
}

// NewStringCategories builds flat string categories.
func NewStringCategories(labels []string) *Categories {
	return &Categories{kind: CategoryString, labels: labels, depth: 1}
}

// NewNumericCategories builds numeric categories. An empty numberFormat
// defaults to "General".
func NewNumericCategories(numbers []float64, numberFormat string) *Categories {
	if numberFormat == "" {
		numberFormat = defaultNumberFormat
	}
	return &Categories{kind: CategoryNumeric, numbers: numbers, numberFormat: numberFormat, depth: 1}
}

// NewDateCategories builds date categories. An empty numberFormat defaults
// to a year-month-day code.
func NewDateCategories(dates []time.Time, numberFormat string) *Categories {
	if numberFormat == "" {
		numberFormat = defaultDateNumberFormat
	}
	return &Categories{kind: CategoryDate, dates: dates, numberFormat: numberFormat, depth: 1}
}

// NewMultiLevelCategories builds nested categories from label tuples. Each
// tuple lists labels from the most significant level down to the leaf; all
// tuples must share one depth.
func NewMultiLevelCategories(tuples [][]string) (*Categories, error) {
	if len(tuples) == 0 {
		return nil, ErrEmptyCategories
	}
	depth := len(tuples[0])
	if depth < 1 {
		return nil, fmt.Errorf("%w: empty tuple at index 0", ErrRaggedCategoryLevels)
	}
	for i, t := range tuples {
		if len(t) != depth {
			return nil, fmt.Errorf("%w: tuple %d has depth %d, want %d", ErrRaggedCategoryLevels, i, len(t), depth)
		}
	}
	return &Categories{kind: CategoryMultiLevel, tuples: tuples, depth: depth}, nil
}

// Kind returns the label kind of this sequence.
func (c *Categories) Kind() CategoryKind { return c.kind }

// Depth returns the number of axis levels; 1 for all flat kinds.
func (c *Categories) Depth() int { return c.depth }

// LeafCount returns the number of leaf categories, which is the ptCount
// reported at the top of a category cache regardless of depth.
func (c *Categories) LeafCount() int {
	switch c.kind {
	case CategoryString:
		return len(c.labels)
	case CategoryNumeric:
		return len(c.numbers)
	case CategoryDate:
		return len(c.dates)
	default:
		return len(c.tuples)
	}
}

// AreNumeric reports whether the labels serialize through a numeric cache
// (numeric or date kind).
func (c *Categories) AreNumeric() bool {
	return c.kind == CategoryNumeric || c.kind == CategoryDate
}

// AreDates reports whether the labels are date-typed.
func (c *Categories) AreDates() bool { return c.kind == CategoryDate }

// NumberFormat returns the number-format code for numeric or date labels,
// "General" otherwise.
func (c *Categories) NumberFormat() string {
	if c.numberFormat == "" {
		return defaultNumberFormat
	}
	return c.numberFormat
}

// Labels returns the flat string labels. It is only meaningful for the
// string kind.
func (c *Categories) Labels() []string { return c.labels }

// Dates returns the date labels. It is only meaningful for the date kind.
func (c *Categories) Dates() []time.Time { return c.dates }

// Numbers returns the numeric labels. It is only meaningful for the
// numeric kind.
func (c *Categories) Numbers() []float64 { return c.numbers }

// NumericStrVals returns each numeric or date label formatted for a
// numeric-cache point. Date labels become Excel day numbers, affected by
// the chart-wide 1904 epoch flag.
func (c *Categories) NumericStrVals(date1904 bool) []string {
	switch c.kind {
	case CategoryNumeric:
		vals := make([]string, len(c.numbers))
		for i, n := range c.numbers {
			vals[i] = FormatFloat(n)
		}
		return vals
	case CategoryDate:
		vals := make([]string, len(c.dates))
		for i, d := range c.dates {
			vals[i] = strconv.Itoa(ExcelDateNumber(d, date1904))
		}
		return vals
	default:
		return nil
	}
}

// LevelLabel is one labeled position within a multi-level axis level.
type LevelLabel struct {
	Idx   int
	Label string
}

// Levels returns the multi-level labels one level at a time, leaf level
// first and most significant level last. Non-leaf levels carry a label
// only at the index where a run of equal ancestry starts.
func (c *Categories) Levels() [][]LevelLabel {
	if c.kind != CategoryMultiLevel {
		return nil
	}
	levels := make([][]LevelLabel, 0, c.depth)
	for pos := c.depth - 1; pos >= 0; pos-- {
		var level []LevelLabel
		for i, tuple := range c.tuples {
			if pos == c.depth-1 || i == 0 || !prefixEqual(c.tuples[i-1], tuple, pos+1) {
				level = append(level, LevelLabel{Idx: i, Label: tuple[pos]})
			}
		}
		levels = append(levels, level)
	}
	return levels
}

func prefixEqual(a, b []string, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ExcelDateNumber converts a date to its Excel serial day number. The 1900
// epoch includes the historical leap-year compatibility offset for dates
// past 1900-02-28.
func ExcelDateNumber(d time.Time, date1904 bool) int {
	epoch := time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
	if date1904 {
		epoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(epoch).Hours() / 24)
	if !date1904 && days > 59 {
		days++
	}
	return days
}

// FormatFloat renders a float the way chart caches expect: no exponent for
// ordinary magnitudes and no trailing zeros.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
