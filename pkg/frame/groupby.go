package frame

import "fmt"

// GroupBy is a deferred grouping of a frame by one or more key columns.
// Call Agg to materialize one row per group.
type GroupBy struct {
	df   *DataFrame
	keys []string
}

// GroupBy groups the frame by the given key columns.
func (df *DataFrame) GroupBy(keys ...string) GroupBy {
	return GroupBy{df: df, keys: keys}
}

// Agg evaluates aggregation expressions per group. Each expression must
// reduce its group to a single value. Groups appear in first-seen order.
func (g GroupBy) Agg(exprs ...*Expr) (*DataFrame, error) {
	if len(g.keys) == 0 {
		return nil, fmt.Errorf("%w: group by requires at least one key", ErrColumnNotFound)
	}
	rows := g.df.materializeRows(nil)
	groups, err := g.df.groupRows(rows, g.keys)
	if err != nil {
		return nil, err
	}

	cols := make([]Series, 0, len(g.keys)+len(exprs))
	for i, key := range g.keys {
		src, err := g.df.Column(key)
		if err != nil {
			return nil, err
		}
		if src.IsNumeric() {
			vals := src.Float64()
			out := make([]float64, len(groups))
			for gi, grp := range groups {
				out[gi] = vals[grp.rows[0]]
			}
			cols = append(cols, NewSeriesFloat64(key, out))
		} else {
			out := make([]string, len(groups))
			for gi, grp := range groups {
				out[gi] = grp.key[i]
			}
			cols = append(cols, NewSeriesString(key, out))
		}
	}

	for _, e := range exprs {
		if e.isBool() {
			return nil, fmt.Errorf("%w: boolean expressions are only valid in Filter", ErrNotBoolean)
		}
		out := make([]float64, len(groups))
		for gi, grp := range groups {
			vals, err := e.evalNumeric(g.df, grp.rows)
			if err != nil {
				return nil, err
			}
			if len(vals) != 1 {
				return nil, fmt.Errorf("%w: expression %q must aggregate each group to one value, got %d",
					ErrLengthMismatch, e.outputName(), len(vals))
			}
			out[gi] = vals[0]
		}
		cols = append(cols, NewSeriesFloat64(e.outputName(), out))
	}
	return NewDataFrame(cols...)
}
