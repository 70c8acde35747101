package rewrite

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
	"github.com/Holimetrix/chartml/pkg/chartml/writer"
)

func catSeries(name string, values ...float64) *models.Series {
	labels := []string{"Foo", "Bar", "Baz"}[:len(values)]
	return &models.Series{
		Name:       name,
		Categories: models.NewStringCategories(labels),
		Values:     models.Floats(values...),
	}
}

func xySeries(name string) *models.Series {
	return &models.Series{Name: name, XValues: models.Floats(1, 2), YValues: models.Floats(3, 4)}
}

// chartDoc renders a fresh document holding the given plots, simulating a
// previously generated chart part.
func chartDoc(t *testing.T, build func(chart *models.Chart)) *etree.Document {
	t.Helper()
	chart := models.NewChart()
	build(chart)
	doc, err := writer.Document(chart)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	return doc
}

func addPlot(t *testing.T, chart *models.Chart, chartType models.ChartType, secondary bool, series ...*models.Series) {
	t.Helper()
	p, err := models.NewPlot(chartType, series, secondary)
	if err != nil {
		t.Fatalf("NewPlot(%v) failed: %v", chartType, err)
	}
	if err := chart.AddPlot(p); err != nil {
		t.Fatalf("AddPlot(%v) failed: %v", chartType, err)
	}
}

func docPlotArea(t *testing.T, doc *etree.Document) *etree.Element {
	t.Helper()
	plotArea := doc.Root().FindElement("chart/plotArea")
	if plotArea == nil {
		t.Fatal("document has no plot area")
	}
	return plotArea
}

// markSers tags each series element with a distinct formatting child so
// tests can tell which source a cloned series inherited from.
func markSers(t *testing.T, doc *etree.Document, markers ...string) {
	t.Helper()
	sers := seriesElements(docPlotArea(t, doc))
	if len(sers) != len(markers) {
		t.Fatalf("got %d series elements, want %d", len(sers), len(markers))
	}
	for i, ser := range sers {
		spPr := etree.NewElement("c:spPr")
		spPr.CreateElement("a:solidFill").CreateAttr("marker", markers[i])
		insertSerChild(ser, spPr)
	}
}

func serMarker(ser *etree.Element) string {
	fill := ser.FindElement("spPr/solidFill")
	if fill == nil {
		return ""
	}
	return fill.SelectAttrValue("marker", "")
}

func serName(t *testing.T, ser *etree.Element) string {
	t.Helper()
	v := ser.FindElement("tx/strRef/strCache/pt/v")
	if v == nil {
		t.Fatal("series has no name point")
	}
	return v.Text()
}

func serVal(t *testing.T, ser *etree.Element, tag string) string {
	t.Helper()
	el := ser.SelectElement(tag)
	if el == nil {
		t.Fatalf("series has no %s child", tag)
	}
	return el.SelectAttrValue("val", "")
}

func TestReplaceSeriesDataGrow(t *testing.T) {
	doc := chartDoc(t, func(chart *models.Chart) {
		addPlot(t, chart, models.ColumnClustered, false, catSeries("A", 1, 2), catSeries("B", 3, 4))
	})
	markSers(t, doc, "first", "last")

	r, err := ForChartType(models.ColumnClustered)
	if err != nil {
		t.Fatalf("ForChartType failed: %v", err)
	}
	replacement := []*models.Series{
		catSeries("North", 1, 2), catSeries("South", 3, 4),
		catSeries("East", 5, 6), catSeries("West", 7, 8),
	}
	if err := r.ReplaceSeriesData(doc, replacement); err != nil {
		t.Fatalf("ReplaceSeriesData failed: %v", err)
	}

	sers := seriesElements(docPlotArea(t, doc))
	if len(sers) != 4 {
		t.Fatalf("got %d series elements, want 4", len(sers))
	}
	for i, ser := range sers {
		want := []string{"0", "1", "2", "3"}[i]
		if got := serVal(t, ser, "idx"); got != want {
			t.Errorf("series %d idx = %s, want %s", i, got, want)
		}
		if got := serVal(t, ser, "order"); got != want {
			t.Errorf("series %d order = %s, want %s", i, got, want)
		}
		if got, want := serName(t, ser), replacement[i].Name; got != want {
			t.Errorf("series %d name = %q, want %q", i, got, want)
		}
	}

	// New series clone the last existing one, inheriting its formatting.
	wantMarkers := []string{"first", "last", "last", "last"}
	for i, ser := range sers {
		if got := serMarker(ser); got != wantMarkers[i] {
			t.Errorf("series %d formatting marker = %q, want %q", i, got, wantMarkers[i])
		}
	}
}

func TestReplaceSeriesDataShrinkRemovesEmptyGroup(t *testing.T) {
	doc := chartDoc(t, func(chart *models.Chart) {
		addPlot(t, chart, models.ColumnClustered, false, catSeries("A", 1, 2), catSeries("B", 3, 4))
		addPlot(t, chart, models.Line, true, catSeries("C", 5, 6))
	})

	r, err := ForChartType(models.ColumnClustered)
	if err != nil {
		t.Fatalf("ForChartType failed: %v", err)
	}
	replacement := []*models.Series{catSeries("North", 1, 2), catSeries("South", 3, 4)}
	if err := r.ReplaceSeriesData(doc, replacement); err != nil {
		t.Fatalf("ReplaceSeriesData failed: %v", err)
	}

	plotArea := docPlotArea(t, doc)
	groups := plotGroups(plotArea)
	if len(groups) != 1 {
		t.Fatalf("got %d plot groups, want 1 (emptied group removed)", len(groups))
	}
	if groups[0].Tag != "barChart" {
		t.Errorf("remaining group is %s, want barChart", groups[0].Tag)
	}
	if got := len(seriesElements(plotArea)); got != 2 {
		t.Errorf("got %d series elements, want 2", got)
	}
	// The axes referenced by the removed group stay put; only series move.
	if plotArea.SelectElement("valAx") == nil {
		t.Error("value axis removed along with the plot group")
	}
}

func TestReplaceSeriesDataSameCount(t *testing.T) {
	doc := chartDoc(t, func(chart *models.Chart) {
		addPlot(t, chart, models.ColumnClustered, false, catSeries("A", 1, 2))
	})
	markSers(t, doc, "keep")

	r, _ := ForChartType(models.ColumnClustered)
	if err := r.ReplaceSeriesData(doc, []*models.Series{catSeries("North", 9, 8)}); err != nil {
		t.Fatalf("ReplaceSeriesData failed: %v", err)
	}

	sers := seriesElements(docPlotArea(t, doc))
	if len(sers) != 1 {
		t.Fatalf("got %d series elements, want 1", len(sers))
	}
	if got := serMarker(sers[0]); got != "keep" {
		t.Errorf("formatting marker = %q, want keep", got)
	}
	if got := serName(t, sers[0]); got != "North" {
		t.Errorf("name = %q, want North", got)
	}
	v := sers[0].FindElement("val/numRef/numCache/pt/v")
	if v == nil || v.Text() != "9" {
		t.Errorf("first value point not replaced: %v", v)
	}
}

func TestReplaceSeriesDataShapeMismatch(t *testing.T) {
	doc := chartDoc(t, func(chart *models.Chart) {
		addPlot(t, chart, models.ColumnClustered, false, catSeries("A", 1, 2))
	})
	before, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("WriteToString failed: %v", err)
	}

	r, _ := ForChartType(models.ColumnClustered)
	err = r.ReplaceSeriesData(doc, []*models.Series{xySeries("Points")})
	if !errors.Is(err, models.ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}

	after, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("WriteToString failed: %v", err)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("failed rewrite mutated the document (-before +after):\n%s", diff)
	}
}

func TestReplaceSeriesDataStructureMismatch(t *testing.T) {
	doc := chartDoc(t, func(chart *models.Chart) {
		addPlot(t, chart, models.XYScatter, false, xySeries("Points"))
	})
	before, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("WriteToString failed: %v", err)
	}

	r, _ := ForChartType(models.ColumnClustered)
	err = r.ReplaceSeriesData(doc, []*models.Series{catSeries("A", 1, 2)})
	if !errors.Is(err, ErrStructureMismatch) {
		t.Fatalf("error = %v, want ErrStructureMismatch", err)
	}

	after, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("WriteToString failed: %v", err)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("failed rewrite mutated the document (-before +after):\n%s", diff)
	}
}

func TestReplaceSeriesDataNoSeries(t *testing.T) {
	doc := chartDoc(t, func(chart *models.Chart) {
		addPlot(t, chart, models.ColumnClustered, false, catSeries("A", 1, 2))
	})
	r, _ := ForChartType(models.ColumnClustered)
	if err := r.ReplaceSeriesData(doc, nil); !errors.Is(err, models.ErrNoSeries) {
		t.Errorf("error = %v, want ErrNoSeries", err)
	}
}

func TestReplaceSeriesDataNotAChart(t *testing.T) {
	doc := etree.NewDocument()
	doc.CreateElement("document")

	r, _ := ForChartType(models.ColumnClustered)
	err := r.ReplaceSeriesData(doc, []*models.Series{catSeries("A", 1, 2)})
	if !errors.Is(err, ErrNotAChart) {
		t.Errorf("error = %v, want ErrNotAChart", err)
	}
}

func TestPatchPreservesSiblings(t *testing.T) {
	doc := chartDoc(t, func(chart *models.Chart) {
		addPlot(t, chart, models.LineMarkersStacked, false, catSeries("A", 1, 2))
	})
	ser := seriesElements(docPlotArea(t, doc))[0]
	// Simulate user formatting between the data children.
	spPr := etree.NewElement("c:spPr")
	insertSerChild(ser, spPr)
	dLbls := etree.NewElement("c:dLbls")
	insertSerChild(ser, dLbls)

	patchCategorySer(ser, catSeries("B", 7, 8), false)

	var tags []string
	for _, child := range ser.ChildElements() {
		tags = append(tags, child.Tag)
	}
	want := []string{"idx", "order", "tx", "spPr", "dLbls", "cat", "val", "smooth"}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("series children mismatch (-want +got):\n%s", diff)
	}
	if got := serName(t, ser); got != "B" {
		t.Errorf("name = %q, want B", got)
	}
}

func TestForChartTypeTotal(t *testing.T) {
	for _, ct := range models.AllChartTypes {
		if _, err := ForChartType(ct); err != nil {
			t.Errorf("ForChartType(%v) failed: %v", ct, err)
		}
	}
	if _, err := ForChartType(models.ChartType(999)); err == nil {
		t.Error("expected error for unregistered chart type")
	}
}

func TestForDocument(t *testing.T) {
	tests := []struct {
		name  string
		build func(chart *models.Chart)
		shape models.DataShape
	}{
		{
			"bar", func(chart *models.Chart) {
				addPlot(t, chart, models.ColumnClustered, false, catSeries("A", 1, 2))
			},
			models.ShapeCategory,
		},
		{
			"scatter", func(chart *models.Chart) {
				addPlot(t, chart, models.XYScatter, false, xySeries("A"))
			},
			models.ShapeXY,
		},
		{
			"bubble", func(chart *models.Chart) {
				s := xySeries("A")
				s.BubbleSizes = models.Floats(5, 6)
				addPlot(t, chart, models.Bubble, false, s)
			},
			models.ShapeBubble,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := chartDoc(t, tt.build)
			r, err := ForDocument(doc)
			if err != nil {
				t.Fatalf("ForDocument failed: %v", err)
			}
			if got := r.(shapeRewriter).shape; got != tt.shape {
				t.Errorf("shape = %v, want %v", got, tt.shape)
			}
		})
	}
}

func TestForDocumentNotAChart(t *testing.T) {
	doc := etree.NewDocument()
	doc.CreateElement("workbook")
	if _, err := ForDocument(doc); !errors.Is(err, ErrNotAChart) {
		t.Errorf("error = %v, want ErrNotAChart", err)
	}
}
