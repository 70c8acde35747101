package workbook

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

func buildChart(t *testing.T, chartType models.ChartType, series ...*models.Series) *models.Chart {
	t.Helper()
	chart := models.NewChart()
	p, err := models.NewPlot(chartType, series, false)
	if err != nil {
		t.Fatalf("NewPlot failed: %v", err)
	}
	if err := chart.AddPlot(p); err != nil {
		t.Fatalf("AddPlot failed: %v", err)
	}
	return chart
}

func catSeries(name string, values ...float64) *models.Series {
	labels := []string{"Foo", "Bar", "Baz"}[:len(values)]
	return &models.Series{
		Name:       name,
		Categories: models.NewStringCategories(labels),
		Values:     models.Floats(values...),
	}
}

func TestRefBuilders(t *testing.T) {
	cellTests := []struct {
		col, row int
		want     string
	}{
		{1, 1, "Sheet1!$A$1"},
		{2, 5, "Sheet1!$B$5"},
		{27, 1, "Sheet1!$AA$1"},
		{703, 2, "Sheet1!$AAA$2"},
	}
	for _, tt := range cellTests {
		if got := cellRef(tt.col, tt.row); got != tt.want {
			t.Errorf("cellRef(%d, %d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
	}
	if got := rangeRef(1, 2, 2, 4); got != "Sheet1!$A$2:$B$4" {
		t.Errorf("rangeRef(1, 2, 2, 4) = %q", got)
	}
	if got := rangeRef(26, 2, 28, 3); got != "Sheet1!$Z$2:$AB$3" {
		t.Errorf("rangeRef(26, 2, 28, 3) = %q", got)
	}
}

func TestApplyDefaultRefsCategory(t *testing.T) {
	s1 := catSeries("A", 1, 2, 3)
	s2 := catSeries("B", 4, 5, 6)
	chart := buildChart(t, models.ColumnClustered, s1, s2)
	ApplyDefaultRefs(chart)

	tests := []struct {
		name, got, want string
	}{
		{"s1 name", s1.NameRef, "Sheet1!$B$1"},
		{"s1 categories", s1.CategoriesRef, "Sheet1!$A$2:$A$4"},
		{"s1 values", s1.ValuesRef, "Sheet1!$B$2:$B$4"},
		{"s2 name", s2.NameRef, "Sheet1!$C$1"},
		{"s2 values", s2.ValuesRef, "Sheet1!$C$2:$C$4"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s ref = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestApplyDefaultRefsMultiLevel(t *testing.T) {
	cats, err := models.NewMultiLevelCategories([][]string{
		{"Q1", "Jan"}, {"Q1", "Feb"}, {"Q2", "Mar"},
	})
	if err != nil {
		t.Fatalf("NewMultiLevelCategories failed: %v", err)
	}
	s := &models.Series{Name: "A", Categories: cats, Values: models.Floats(1, 2, 3)}
	chart := buildChart(t, models.ColumnClustered, s)
	ApplyDefaultRefs(chart)

	// Two label columns push the first value column to C.
	if s.CategoriesRef != "Sheet1!$A$2:$B$4" {
		t.Errorf("categories ref = %q", s.CategoriesRef)
	}
	if s.NameRef != "Sheet1!$C$1" {
		t.Errorf("name ref = %q", s.NameRef)
	}
	if s.ValuesRef != "Sheet1!$C$2:$C$4" {
		t.Errorf("values ref = %q", s.ValuesRef)
	}
}

func TestApplyDefaultRefsPaired(t *testing.T) {
	s1 := &models.Series{Name: "A", XValues: models.Floats(1, 2), YValues: models.Floats(3, 4)}
	s2 := &models.Series{Name: "B", XValues: models.Floats(5, 6), YValues: models.Floats(7, 8)}
	chart := buildChart(t, models.XYScatter, s1, s2)
	ApplyDefaultRefs(chart)

	tests := []struct {
		name, got, want string
	}{
		{"s1 name", s1.NameRef, "Sheet1!$B$1"},
		{"s1 x", s1.XValuesRef, "Sheet1!$A$2:$A$3"},
		{"s1 y", s1.YValuesRef, "Sheet1!$B$2:$B$3"},
		// The second block starts after the first's two rows plus a name
		// row and a blank row.
		{"s2 name", s2.NameRef, "Sheet1!$B$5"},
		{"s2 x", s2.XValuesRef, "Sheet1!$A$6:$A$7"},
		{"s2 y", s2.YValuesRef, "Sheet1!$B$6:$B$7"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s ref = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestApplyDefaultRefsPreservesExplicit(t *testing.T) {
	s := catSeries("A", 1, 2)
	s.ValuesRef = "Data!$Z$10:$Z$11"
	chart := buildChart(t, models.ColumnClustered, s)
	ApplyDefaultRefs(chart)

	if s.ValuesRef != "Data!$Z$10:$Z$11" {
		t.Errorf("explicit values ref overwritten: %q", s.ValuesRef)
	}
	if s.NameRef == "" || s.CategoriesRef == "" {
		t.Error("unset refs were not filled")
	}
}

func TestBlobCategory(t *testing.T) {
	chart := buildChart(t, models.ColumnClustered,
		catSeries("North", 1, 2, 3), catSeries("South", 4, 5, 6))

	blob, err := Blob(chart)
	if err != nil {
		t.Fatalf("Blob failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell, want string
	}{
		{"A2", "Foo"}, {"A3", "Bar"}, {"A4", "Baz"},
		{"B1", "North"}, {"C1", "South"},
		{"B2", "1"}, {"B4", "3"}, {"C2", "4"}, {"C4", "6"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(SheetName, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestBlobSparseValues(t *testing.T) {
	s := &models.Series{
		Name:       "A",
		Categories: models.NewStringCategories([]string{"Foo", "Bar", "Baz"}),
		Values:     []*float64{models.Float64(1), nil, models.Float64(3)},
	}
	chart := buildChart(t, models.ColumnClustered, s)

	blob, err := Blob(chart)
	if err != nil {
		t.Fatalf("Blob failed: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue(SheetName, "B3")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "" {
		t.Errorf("missing point cell B3 = %q, want empty", got)
	}
}

func TestBlobPaired(t *testing.T) {
	s := &models.Series{
		Name:        "Sizes",
		XValues:     models.Floats(1, 2),
		YValues:     models.Floats(3, 4),
		BubbleSizes: models.Floats(10, 20),
	}
	chart := buildChart(t, models.Bubble, s)

	blob, err := Blob(chart)
	if err != nil {
		t.Fatalf("Blob failed: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell, want string
	}{
		{"B1", "Sizes"},
		{"A2", "1"}, {"A3", "2"},
		{"B2", "3"}, {"B3", "4"},
		{"C2", "10"}, {"C3", "20"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(SheetName, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestBlobEmptyChart(t *testing.T) {
	if _, err := Blob(models.NewChart()); !errors.Is(err, models.ErrNoSeries) {
		t.Errorf("error = %v, want ErrNoSeries", err)
	}
}
