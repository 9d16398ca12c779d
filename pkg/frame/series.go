package frame

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Series is an immutable named column backed by an Arrow array. Numeric
// columns are float64, key columns are strings.
type Series struct {
	name string
	arr  arrow.Array
}

// NewSeriesFloat64 builds a float64 series from a slice of values.
func NewSeriesFloat64(name string, values []float64) Series {
	b := array.NewFloat64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(values, nil)
	return Series{name: name, arr: b.NewFloat64Array()}
}

// NewSeriesString builds a string series from a slice of values.
func NewSeriesString(name string, values []string) Series {
	b := array.NewStringBuilder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(values, nil)
	return Series{name: name, arr: b.NewStringArray()}
}

// Name returns the column name.
func (s Series) Name() string {
	return s.name
}

// Len returns the number of rows.
func (s Series) Len() int {
	return s.arr.Len()
}

// DataType returns the Arrow data type of the backing array.
func (s Series) DataType() arrow.DataType {
	return s.arr.DataType()
}

// IsNull reports whether the value at index is null.
func (s Series) IsNull(i int) bool {
	return s.arr.IsNull(i)
}

// Array returns the backing Arrow array.
func (s Series) Array() arrow.Array {
	return s.arr
}

// Release releases the backing Arrow array.
func (s Series) Release() {
	s.arr.Release()
}

// IsNumeric reports whether the series holds float64 values.
func (s Series) IsNumeric() bool {
	_, ok := s.arr.(*array.Float64)
	return ok
}

// Float64 returns a copy of the values of a numeric series.
// It panics when the series is not numeric; check IsNumeric first.
func (s Series) Float64() []float64 {
	fa, ok := s.arr.(*array.Float64)
	if !ok {
		panic(fmt.Sprintf("frame: series %q is not float64", s.name))
	}
	return append([]float64(nil), fa.Float64Values()...)
}

// Strings returns a copy of the values of a string series.
// It panics when the series is not a string series.
func (s Series) Strings() []string {
	sa, ok := s.arr.(*array.String)
	if !ok {
		panic(fmt.Sprintf("frame: series %q is not string", s.name))
	}
	out := make([]string, sa.Len())
	for i := range out {
		out[i] = sa.Value(i)
	}
	return out
}

// GetAsString renders the value at index as a string.
func (s Series) GetAsString(i int) string {
	switch a := s.arr.(type) {
	case *array.Float64:
		return strconv.FormatFloat(a.Value(i), 'g', -1, 64)
	case *array.String:
		return a.Value(i)
	default:
		return s.arr.ValueStr(i)
	}
}

// String renders a short description, e.g. "height <float64; 4>".
func (s Series) String() string {
	return fmt.Sprintf("%s <%s; %d>", s.name, s.arr.DataType(), s.arr.Len())
}

// rename returns a series with the same backing array and a new name.
func (s Series) rename(name string) Series {
	return Series{name: name, arr: s.arr}
}

// take returns a new series holding the rows at idx, in order.
func (s Series) take(idx []int) Series {
	switch a := s.arr.(type) {
	case *array.Float64:
		vals := make([]float64, len(idx))
		for i, j := range idx {
			vals[i] = a.Value(j)
		}
		return NewSeriesFloat64(s.name, vals)
	case *array.String:
		vals := make([]string, len(idx))
		for i, j := range idx {
			vals[i] = a.Value(j)
		}
		return NewSeriesString(s.name, vals)
	default:
		panic(fmt.Sprintf("frame: unsupported series type %s", s.arr.DataType()))
	}
}
