package frame

import (
	"strings"
	"testing"
)

func TestFromCSV(t *testing.T) {
	doc := `distance,group,offset
1,a,0.1
2,a,0.2
3,b,0.3
4,b,0.4
`
	df, err := FromCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	if df.Height() != 4 || df.Width() != 3 {
		t.Fatalf("shape = %dx%d, want 4x3", df.Height(), df.Width())
	}

	dist := df.ColumnByName("distance")
	if dist == nil || !dist.IsNumeric() {
		t.Fatal("distance should be a numeric column")
	}
	assertFloats(t, dist.Float64(), []float64{1, 2, 3, 4}, "distance")

	group := df.ColumnByName("group")
	if group == nil || group.IsNumeric() {
		t.Fatal("group should be a string column")
	}
	if got := group.Strings(); got[0] != "a" || got[3] != "b" {
		t.Errorf("group = %v", got)
	}

	assertFloats(t, df.ColumnByName("offset").Float64(), []float64{0.1, 0.2, 0.3, 0.4}, "offset")
}

func TestFromCSVHeaderOnly(t *testing.T) {
	df, err := FromCSV(strings.NewReader("a,b\n"))
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	if df.Height() != 0 || df.Width() != 2 {
		t.Errorf("shape = %dx%d, want 0x2", df.Height(), df.Width())
	}
}

func TestFromCSVErrors(t *testing.T) {
	if _, err := FromCSV(strings.NewReader("")); err == nil {
		t.Error("empty document: expected error")
	}
	if _, err := FromCSV(strings.NewReader("a,b\n1\n")); err == nil {
		t.Error("ragged row: expected error")
	}
}

func TestFromCSVMixedColumnStaysString(t *testing.T) {
	doc := "v\n1\ntwo\n3\n"
	df, err := FromCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	v := df.ColumnByName("v")
	if v.IsNumeric() {
		t.Error("column with a non-numeric value should stay string")
	}
}
