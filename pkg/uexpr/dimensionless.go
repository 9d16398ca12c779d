package uexpr

import (
	"github.com/uframe-io/uframe/pkg/frame"
	"github.com/uframe-io/uframe/pkg/units"
)

// Transcendental functions only make sense on pure numbers: exp(3 meter)
// has no physical meaning. Each of these fails with a *DimensionalityError
// unless the expression is dimensionless, and tags its result
// dimensionless.

func (u UExpr) requireDimensionless(op string) error {
	if u.Dimensionless() {
		return nil
	}
	return &units.DimensionalityError{
		From: u.unit,
		To:   dimensionless(u.Registry()),
		Op:   op,
	}
}

func (u UExpr) dimensionlessFn(op string, f func(*frame.Expr) *frame.Expr) (UExpr, error) {
	if err := u.requireDimensionless(op); err != nil {
		return UExpr{}, err
	}
	return UExpr{expr: f(u.expr), unit: dimensionless(u.Registry())}, nil
}

// Log returns the elementwise natural logarithm.
func (u UExpr) Log() (UExpr, error) {
	return u.dimensionlessFn("log", (*frame.Expr).Log)
}

// Log10 returns the elementwise base-10 logarithm.
func (u UExpr) Log10() (UExpr, error) {
	return u.dimensionlessFn("log10", (*frame.Expr).Log10)
}

// Log1p returns the elementwise log(1+x).
func (u UExpr) Log1p() (UExpr, error) {
	return u.dimensionlessFn("log1p", (*frame.Expr).Log1p)
}

// Exp returns the elementwise exponential.
func (u UExpr) Exp() (UExpr, error) {
	return u.dimensionlessFn("exp", (*frame.Expr).Exp)
}

// Sin returns the elementwise sine.
func (u UExpr) Sin() (UExpr, error) {
	return u.dimensionlessFn("sin", (*frame.Expr).Sin)
}

// Cos returns the elementwise cosine.
func (u UExpr) Cos() (UExpr, error) {
	return u.dimensionlessFn("cos", (*frame.Expr).Cos)
}

// Tan returns the elementwise tangent.
func (u UExpr) Tan() (UExpr, error) {
	return u.dimensionlessFn("tan", (*frame.Expr).Tan)
}
