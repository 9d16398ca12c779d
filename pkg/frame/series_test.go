package frame

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
)

func TestSeriesFloat64(t *testing.T) {
	s := NewSeriesFloat64("a", []float64{1.0, 2.0, 3.0})

	if s.Name() != "a" {
		t.Errorf("Name() = %q, want %q", s.Name(), "a")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if !arrow.TypeEqual(s.DataType(), arrow.PrimitiveTypes.Float64) {
		t.Errorf("DataType() = %v, want float64", s.DataType())
	}
	if !s.IsNumeric() {
		t.Error("IsNumeric() = false, want true")
	}

	vals := s.Float64()
	want := []float64{1.0, 2.0, 3.0}
	for i, v := range vals {
		if v != want[i] {
			t.Errorf("Float64()[%d] = %v, want %v", i, v, want[i])
		}
	}

	// Float64 returns a copy; mutating it must not affect the series.
	vals[0] = 99
	if s.Float64()[0] != 1.0 {
		t.Error("Float64() should return a copy")
	}

	if got := s.GetAsString(1); got != "2" {
		t.Errorf("GetAsString(1) = %q, want %q", got, "2")
	}
}

func TestSeriesString(t *testing.T) {
	s := NewSeriesString("group", []string{"a", "a", "b"})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.IsNumeric() {
		t.Error("IsNumeric() = true, want false")
	}
	got := s.Strings()
	want := []string{"a", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := s.GetAsString(2); got != "b" {
		t.Errorf("GetAsString(2) = %q, want %q", got, "b")
	}
}
