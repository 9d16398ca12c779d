// Package frame provides Arrow-backed columns and a small polars-style
// expression engine over them.
//
// A [Series] is an immutable named column stored as an Arrow array. A
// [DataFrame] is an ordered set of equal-length series. An [Expr] is a
// deferred expression over frame columns, built from [Col] and [Lit] and
// combined with arithmetic, aggregation, window and comparison methods:
//
//	df, _ := frame.NewDataFrame(
//	    frame.NewSeriesFloat64("a", []float64{1, 2, 3}),
//	    frame.NewSeriesFloat64("b", []float64{4, 5, 6}),
//	)
//	out, _ := df.WithColumns(frame.Col("a").Add(frame.Col("b")).Alias("c"))
//
// Evaluation is eager: Select, WithColumns, Filter and GroupBy.Agg return
// new materialized frames and never mutate their input. Aggregations
// produce length-1 results that broadcast against the frame height, and
// `Over` evaluates an expression per partition of a key column, scattering
// results back to row positions.
package frame
