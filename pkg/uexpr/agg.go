package uexpr

import (
	"github.com/uframe-io/uframe/pkg/units"
)

// Aggregations reduce a column to one value. Sum, Mean, Min and Max keep
// the unit; Count is a pure number; Dot composes the operand units the way
// multiplication does.

// Sum aggregates to the sum, keeping the unit.
func (u UExpr) Sum() UExpr {
	return UExpr{expr: u.expr.Sum(), unit: u.unit}
}

// Mean aggregates to the arithmetic mean, keeping the unit.
func (u UExpr) Mean() UExpr {
	return UExpr{expr: u.expr.Mean(), unit: u.unit}
}

// Min aggregates to the minimum, keeping the unit.
func (u UExpr) Min() UExpr {
	return UExpr{expr: u.expr.Min(), unit: u.unit}
}

// Max aggregates to the maximum, keeping the unit.
func (u UExpr) Max() UExpr {
	return UExpr{expr: u.expr.Max(), unit: u.unit}
}

// Count aggregates to the row count, tagged dimensionless.
func (u UExpr) Count() UExpr {
	return UExpr{expr: u.expr.Count(), unit: dimensionless(u.Registry())}
}

// Dot aggregates two expressions to their dot product; the units compose.
func (u UExpr) Dot(o UExpr) UExpr {
	return UExpr{expr: u.expr.Dot(o.expr), unit: u.unit.Mul(o.unit)}
}

func dimensionless(reg *units.Registry) units.Unit {
	return reg.MustParse("dimensionless")
}
