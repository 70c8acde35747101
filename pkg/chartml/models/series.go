package models

// Series is one named, ordered sequence of data values plotted together.
// A category-shaped series carries Values plus Categories; an XY series
// carries XValues and YValues; a bubble series additionally carries
// BubbleSizes. A nil entry in a value slice is a missing data point.
type Series struct {
	// Name is the series display name.
	Name string
	// Index is the stable position of this series within its plot,
	// assigned in creation order starting at 0. It feeds the idx and
	// order attributes of the series element.
	Index int

	// Categories is the shared category sequence (category shape only).
	Categories *Categories
	// Values is the value channel (category shape only).
	Values []*float64
	// XValues and YValues are the paired channels (xy and bubble shapes).
	XValues []*float64
	YValues []*float64
	// BubbleSizes is the bubble-size channel (bubble shape only).
	BubbleSizes []*float64

	// NumberFormat is the format code applied to value channels. Empty
	// means "General".
	NumberFormat string

	// Worksheet range references cached alongside each channel.
	NameRef        string
	CategoriesRef  string
	ValuesRef      string
	XValuesRef     string
	YValuesRef     string
	BubbleSizesRef string
}

// Shape derives the data shape of this series from the channels it
// carries.
func (s *Series) Shape() DataShape {
	if len(s.BubbleSizes) > 0 {
		return ShapeBubble
	}
	if len(s.XValues) > 0 || len(s.YValues) > 0 {
		return ShapeXY
	}
	return ShapeCategory
}

// Len returns the number of data-point positions in the series, counting
// missing points.
func (s *Series) Len() int {
	switch s.Shape() {
	case ShapeCategory:
		return len(s.Values)
	default:
		return len(s.YValues)
	}
}

// NumberFormatOrDefault returns the value-channel format code, defaulting
// to "General".
func (s *Series) NumberFormatOrDefault() string {
	if s.NumberFormat == "" {
		return defaultNumberFormat
	}
	return s.NumberFormat
}

// Float64 returns a pointer to v, for building sparse value sequences.
func Float64(v float64) *float64 { return &v }

// Floats builds a dense value sequence from vs.
func Floats(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		v := vs[i]
		out[i] = &v
	}
	return out
}
