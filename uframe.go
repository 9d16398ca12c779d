// Package uframe attaches physical-unit metadata to dataframe column
// expressions so arithmetic carries and converts units automatically.
//
// Example usage:
//
//	df, _ := uframe.NewDataFrame(
//	    uframe.NewSeriesFloat64("height", []float64{1.0, 2.0}),
//	    uframe.NewSeriesFloat64("offset", []float64{0.5, 0.5}),
//	)
//	height, _ := uframe.Col("height", "meter")
//	offset, _ := uframe.Col("offset", "meter")
//	sum, _ := height.Add(offset)
//	cm, _ := sum.To("cm")
//	out, _ := df.Select(cm.Alias("total_cm")) // [150, 250] centimeters
package uframe

import (
	"github.com/uframe-io/uframe/pkg/frame"
	"github.com/uframe-io/uframe/pkg/uexpr"
	"github.com/uframe-io/uframe/pkg/units"
)

// Re-export the common types so the root import covers the usual path.
// Import the sub-packages directly for the full API.
type (
	// UExpr is a frame expression tagged with a unit.
	UExpr = uexpr.UExpr

	// DataFrame is an ordered collection of equal-length series.
	DataFrame = frame.DataFrame

	// Series is an immutable named column backed by an Arrow array.
	Series = frame.Series

	// Expr is an untagged frame expression.
	Expr = frame.Expr

	// Unit is an immutable product of named unit terms.
	Unit = units.Unit

	// Registry resolves unit names and expressions to Unit values.
	Registry = units.Registry
)

// Col tags a column reference with a unit resolved against the default
// registry.
func Col(name, unit string) (UExpr, error) {
	return uexpr.Col(name, unit)
}

// MustCol is Col that panics on error, for statically known unit strings.
func MustCol(name, unit string) UExpr {
	return uexpr.MustCol(name, unit)
}

// NewDataFrame builds a frame from series.
func NewDataFrame(cols ...Series) (*DataFrame, error) {
	return frame.NewDataFrame(cols...)
}

// NewSeriesFloat64 builds a float64 series from a slice of values.
func NewSeriesFloat64(name string, values []float64) Series {
	return frame.NewSeriesFloat64(name, values)
}

// NewSeriesString builds a string series from a slice of values.
func NewSeriesString(name string, values []string) Series {
	return frame.NewSeriesString(name, values)
}

// DefaultRegistry returns the shared registry preloaded with the embedded
// default definitions.
func DefaultRegistry() *Registry {
	return units.DefaultRegistry()
}
