package chartml

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
	"github.com/Holimetrix/chartml/pkg/chartml/rewrite"
	"github.com/Holimetrix/chartml/pkg/chartml/workbook"
	"github.com/Holimetrix/chartml/pkg/chartml/writer"
)

// Generate renders the complete chart XML part for chart, as bytes
// suitable for writing directly into a document package.
func Generate(chart *models.Chart, opts Options) ([]byte, error) {
	chart.Date1904 = opts.Date1904
	chart.RoundedCorners = opts.RoundedCorners
	if opts.ShouldFillRefs() {
		workbook.ApplyDefaultRefs(chart)
	}

	doc, err := writer.Document(chart)
	if err != nil {
		return nil, NewRenderError("generate", err)
	}
	doc.Indent(opts.IndentOrDefault())
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, NewRenderError("generate", err)
	}
	return out, nil
}

// GenerateWithWorkbook renders the chart XML part together with the xlsx
// blob holding the chart's backing values.
func GenerateWithWorkbook(chart *models.Chart, opts Options) (chartXML, xlsxBlob []byte, err error) {
	chartXML, err = Generate(chart, opts)
	if err != nil {
		return nil, nil, err
	}
	xlsxBlob, err = workbook.Blob(chart)
	if err != nil {
		return nil, nil, NewRenderError("workbook", err)
	}
	return chartXML, xlsxBlob, nil
}

// ReplaceSeriesData rewrites the series data inside an existing chart
// XML part, preserving formatting applied since the chart was generated.
// The rewriter family is selected by chartType's data shape.
func ReplaceSeriesData(chartXML []byte, chartType models.ChartType, series []*models.Series) ([]byte, error) {
	rw, err := rewrite.ForChartType(chartType)
	if err != nil {
		return nil, NewRenderError("replace-series", err)
	}
	return replaceInBytes(chartXML, rw, series)
}

// ReplaceSeriesDataAuto is ReplaceSeriesData with the rewriter family
// detected from the document's first plot group.
func ReplaceSeriesDataAuto(chartXML []byte, series []*models.Series) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(chartXML); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChartXML, err)
	}
	rw, err := rewrite.ForDocument(doc)
	if err != nil {
		return nil, NewRenderError("replace-series", err)
	}
	if err := rw.ReplaceSeriesData(doc, series); err != nil {
		return nil, NewRenderError("replace-series", err)
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, NewRenderError("replace-series", err)
	}
	return out, nil
}

func replaceInBytes(chartXML []byte, rw rewrite.SeriesRewriter, series []*models.Series) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(chartXML); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChartXML, err)
	}
	if err := rw.ReplaceSeriesData(doc, series); err != nil {
		return nil, NewRenderError("replace-series", err)
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, NewRenderError("replace-series", err)
	}
	return out, nil
}
