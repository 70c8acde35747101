package chartml

import (
	"errors"
	"fmt"
)

// ErrInvalidChartXML indicates input that could not be parsed as a chart
// XML part.
var ErrInvalidChartXML = errors.New("invalid chart xml")

// RenderError represents an error during chart generation or rewriting.
type RenderError struct {
	Op  string // "generate", "workbook", "replace-series"
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("chart %s failed: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}
