package frame

import (
	"fmt"
	"strings"
)

// DataFrame is an ordered collection of equal-length series. Frames are
// immutable; every operation returns a new frame.
type DataFrame struct {
	cols  []Series
	index map[string]int
}

// NewDataFrame builds a frame from series. All series must have the same
// length and distinct names.
func NewDataFrame(cols ...Series) (*DataFrame, error) {
	df := &DataFrame{index: make(map[string]int, len(cols))}
	for _, s := range cols {
		if len(df.cols) > 0 && s.Len() != df.cols[0].Len() {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
				ErrLengthMismatch, s.Name(), s.Len(), df.cols[0].Len())
		}
		if _, exists := df.index[s.Name()]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, s.Name())
		}
		df.index[s.Name()] = len(df.cols)
		df.cols = append(df.cols, s)
	}
	return df, nil
}

// Height returns the number of rows.
func (df *DataFrame) Height() int {
	if len(df.cols) == 0 {
		return 0
	}
	return df.cols[0].Len()
}

// Width returns the number of columns.
func (df *DataFrame) Width() int {
	return len(df.cols)
}

// Names returns the column names in order.
func (df *DataFrame) Names() []string {
	names := make([]string, len(df.cols))
	for i, s := range df.cols {
		names[i] = s.Name()
	}
	return names
}

// Columns returns the series in order.
func (df *DataFrame) Columns() []Series {
	return append([]Series(nil), df.cols...)
}

// ColumnByName returns the named series, or nil when absent.
func (df *DataFrame) ColumnByName(name string) *Series {
	i, ok := df.index[name]
	if !ok {
		return nil
	}
	s := df.cols[i]
	return &s
}

// Column returns the named series or an error wrapping ErrColumnNotFound.
func (df *DataFrame) Column(name string) (Series, error) {
	i, ok := df.index[name]
	if !ok {
		return Series{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return df.cols[i], nil
}

// columnValues returns the float64 values of a column at the given rows
// (nil means all rows).
func (df *DataFrame) columnValues(name string, rows []int) ([]float64, error) {
	s, err := df.Column(name)
	if err != nil {
		return nil, err
	}
	if !s.IsNumeric() {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, name)
	}
	vals := s.Float64()
	if rows == nil {
		return vals, nil
	}
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = vals[r]
	}
	return out, nil
}

// materializeRows expands a nil row selection to all row indexes.
func (df *DataFrame) materializeRows(rows []int) []int {
	if rows != nil {
		return rows
	}
	all := make([]int, df.Height())
	for i := range all {
		all[i] = i
	}
	return all
}

// Select evaluates the expressions into a new frame containing only their
// results. Length-1 results (aggregations, literals) broadcast to the
// height of the widest result.
func (df *DataFrame) Select(exprs ...*Expr) (*DataFrame, error) {
	cols, err := df.evalColumns(exprs)
	if err != nil {
		return nil, err
	}
	return NewDataFrame(cols...)
}

// WithColumns evaluates the expressions and appends them to the frame,
// replacing columns whose output name already exists. Length-1 results
// broadcast to the frame height.
func (df *DataFrame) WithColumns(exprs ...*Expr) (*DataFrame, error) {
	out := append([]Series(nil), df.cols...)
	idx := make(map[string]int, len(out))
	for i, s := range out {
		idx[s.Name()] = i
	}
	for _, e := range exprs {
		if e.isBool() {
			return nil, fmt.Errorf("%w: boolean expressions are only valid in Filter", ErrNotBoolean)
		}
		vals, err := e.evalNumeric(df, nil)
		if err != nil {
			return nil, err
		}
		if len(vals) == 1 && df.Height() != 1 {
			vals = repeat(vals[0], df.Height())
		}
		s := NewSeriesFloat64(e.outputName(), vals)
		if i, exists := idx[s.Name()]; exists {
			out[i] = s
		} else {
			idx[s.Name()] = len(out)
			out = append(out, s)
		}
	}
	return NewDataFrame(out...)
}

// Filter keeps the rows where the boolean predicate holds.
func (df *DataFrame) Filter(pred *Expr) (*DataFrame, error) {
	mask, err := pred.evalBool(df, nil)
	if err != nil {
		return nil, err
	}
	if len(mask) == 1 && df.Height() != 1 {
		mask = repeatBool(mask[0], df.Height())
	}
	if len(mask) != df.Height() {
		return nil, fmt.Errorf("%w: mask has %d rows, frame has %d", ErrLengthMismatch, len(mask), df.Height())
	}
	var keep []int
	for i, ok := range mask {
		if ok {
			keep = append(keep, i)
		}
	}
	out := make([]Series, len(df.cols))
	for i, s := range df.cols {
		out[i] = s.take(keep)
	}
	return NewDataFrame(out...)
}

func (df *DataFrame) evalColumns(exprs []*Expr) ([]Series, error) {
	type result struct {
		name string
		vals []float64
	}
	results := make([]result, 0, len(exprs))
	height := 1
	for _, e := range exprs {
		if e.isBool() {
			return nil, fmt.Errorf("%w: boolean expressions are only valid in Filter", ErrNotBoolean)
		}
		vals, err := e.evalNumeric(df, nil)
		if err != nil {
			return nil, err
		}
		if len(vals) > height {
			height = len(vals)
		}
		results = append(results, result{name: e.outputName(), vals: vals})
	}
	cols := make([]Series, 0, len(results))
	for _, r := range results {
		vals := r.vals
		if len(vals) == 1 && height != 1 {
			vals = repeat(vals[0], height)
		}
		cols = append(cols, NewSeriesFloat64(r.name, vals))
	}
	return cols, nil
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func repeatBool(v bool, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// group is one partition of rows sharing a key tuple.
type group struct {
	key  []string
	rows []int
}

// groupRows partitions rows by the rendered values of the key columns,
// preserving first-seen group order.
func (df *DataFrame) groupRows(rows []int, keys []string) ([]group, error) {
	keyCols := make([]Series, len(keys))
	for i, k := range keys {
		s, err := df.Column(k)
		if err != nil {
			return nil, err
		}
		keyCols[i] = s
	}
	var groups []group
	seen := make(map[string]int)
	for _, r := range rows {
		parts := make([]string, len(keyCols))
		for i, s := range keyCols {
			parts[i] = s.GetAsString(r)
		}
		k := strings.Join(parts, "\x1f")
		gi, ok := seen[k]
		if !ok {
			gi = len(groups)
			seen[k] = gi
			groups = append(groups, group{key: parts})
		}
		groups[gi].rows = append(groups[gi].rows, r)
	}
	return groups, nil
}
