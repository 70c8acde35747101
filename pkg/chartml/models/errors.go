package models

import "errors"

// ErrUnknownChartType indicates a chart-type value outside the supported
// enumeration.
var ErrUnknownChartType = errors.New("unknown chart type")

// ErrMixedCategories indicates a category sequence mixing label kinds
// (e.g. strings and numbers).
var ErrMixedCategories = errors.New("categories must all be of the same kind")

// ErrRaggedCategoryLevels indicates multi-level categories whose tuples do
// not all have the same depth.
var ErrRaggedCategoryLevels = errors.New("multi-level categories must share one depth")

// ErrEmptyCategories indicates an empty category sequence.
var ErrEmptyCategories = errors.New("categories must not be empty")

// ErrShapeMismatch indicates series data whose shape does not match the
// plot's chart type.
var ErrShapeMismatch = errors.New("series data shape does not match chart type")

// ErrAxisMismatch indicates an attempt to mix an axis-bearing plot with a
// non-axis-bearing plot in one chart.
var ErrAxisMismatch = errors.New("cannot mix plots with and without axes")

// ErrNoSeries indicates a plot constructed without any series.
var ErrNoSeries = errors.New("plot must contain at least one series")
