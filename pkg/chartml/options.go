// Package chartml generates default chart XML for an office-document
// chart part and rewrites the series data of an existing part in place.
package chartml

// Options configures chart generation behavior.
type Options struct {
	// Date1904 selects the 1904 date epoch for the whole chart.
	Date1904 bool
	// RoundedCorners enables the rounded-corners chart frame.
	RoundedCorners bool
	// Indent is the indentation width of the serialized XML.
	// If nil, defaults to 2.
	Indent *int
	// FillRefs specifies whether unset worksheet range references on the
	// chart's series are synthesized to match the backing workbook
	// layout. If nil, defaults to true.
	FillRefs *bool
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{}
}

// IndentOrDefault returns the serialization indent width.
func (o Options) IndentOrDefault() int {
	if o.Indent != nil {
		return *o.Indent
	}
	return 2
}

// ShouldFillRefs returns whether unset worksheet references are
// synthesized.
func (o Options) ShouldFillRefs() bool {
	if o.FillRefs != nil {
		return *o.FillRefs
	}
	return true
}
