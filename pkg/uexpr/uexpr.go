package uexpr

import (
	"fmt"

	"github.com/uframe-io/uframe/pkg/frame"
	"github.com/uframe-io/uframe/pkg/units"
)

// UExpr pairs a frame expression with the unit its values are measured in.
// Arithmetic keeps the tag consistent with the operation: additive
// operators rescale the right operand into the left operand's unit,
// multiplicative operators compose units, and To inserts a scalar
// conversion factor. UExpr values are immutable; every operation returns a
// new value.
type UExpr struct {
	expr *frame.Expr
	unit units.Unit
}

// New tags an existing frame expression with a unit.
func New(expr *frame.Expr, unit units.Unit) UExpr {
	return UExpr{expr: expr, unit: unit}
}

// Col tags a column reference with a unit resolved against the default
// registry. It fails when the unit string is not recognized.
func Col(name, unit string) (UExpr, error) {
	return ColIn(name, unit, units.DefaultRegistry())
}

// ColIn is Col against a specific registry.
func ColIn(name, unit string, reg *units.Registry) (UExpr, error) {
	u, err := reg.Parse(unit)
	if err != nil {
		return UExpr{}, fmt.Errorf("col %q: %w", name, err)
	}
	return UExpr{expr: frame.Col(name), unit: u}, nil
}

// MustCol is Col that panics on error, for statically known unit strings.
func MustCol(name, unit string) UExpr {
	e, err := Col(name, unit)
	if err != nil {
		panic(err)
	}
	return e
}

// Unwrap returns the underlying frame expression for DataFrame operations.
func (u UExpr) Unwrap() *frame.Expr {
	return u.expr
}

// Unit returns the unit tag.
func (u UExpr) Unit() units.Unit {
	return u.unit
}

// Registry returns the registry the unit tag was resolved against.
func (u UExpr) Registry() *units.Registry {
	return u.unit.Registry()
}

// Dimensionless reports whether the tag is a pure number.
func (u UExpr) Dimensionless() bool {
	return u.unit.Dimensionless()
}

// Alias names the output column and returns the untagged expression.
func (u UExpr) Alias(name string) *frame.Expr {
	return u.expr.Alias(name)
}

// String renders the expression tag, e.g. "UExpr(meter / second)".
func (u UExpr) String() string {
	return fmt.Sprintf("UExpr(%s)", u.unit)
}

// To rescales the expression's values by the conversion factor between the
// current unit and the target, and retags. It fails when the units are
// dimensionally incompatible.
func (u UExpr) To(target string) (UExpr, error) {
	t, err := u.Registry().Parse(target)
	if err != nil {
		return UExpr{}, err
	}
	return u.ToUnit(t)
}

// ToUnit is To with an already resolved unit.
func (u UExpr) ToUnit(target units.Unit) (UExpr, error) {
	factor, err := units.ConversionFactor(u.unit, target)
	if err != nil {
		return UExpr{}, err
	}
	expr := u.expr
	if factor != 1 {
		expr = expr.Mul(frame.Lit(factor))
	}
	return UExpr{expr: expr, unit: target}, nil
}

// alignTo rescales o into u's unit for additive and comparison operators.
// The left operand's unit is authoritative.
func (u UExpr) alignTo(o UExpr) (UExpr, error) {
	if u.unit.Equal(o.unit) {
		return o, nil
	}
	return o.ToUnit(u.unit)
}

// Add returns u + o tagged with u's unit; o is rescaled to match. It fails
// when the operands are dimensionally incompatible.
func (u UExpr) Add(o UExpr) (UExpr, error) {
	conv, err := u.alignTo(o)
	if err != nil {
		return UExpr{}, err
	}
	return UExpr{expr: u.expr.Add(conv.expr), unit: u.unit}, nil
}

// Sub returns u - o tagged with u's unit; o is rescaled to match.
func (u UExpr) Sub(o UExpr) (UExpr, error) {
	conv, err := u.alignTo(o)
	if err != nil {
		return UExpr{}, err
	}
	return UExpr{expr: u.expr.Sub(conv.expr), unit: u.unit}, nil
}

// AddScalar adds a bare number, keeping the unit.
func (u UExpr) AddScalar(v float64) UExpr {
	return UExpr{expr: u.expr.Add(frame.Lit(v)), unit: u.unit}
}

// SubScalar subtracts a bare number, keeping the unit.
func (u UExpr) SubScalar(v float64) UExpr {
	return UExpr{expr: u.expr.Sub(frame.Lit(v)), unit: u.unit}
}

// Mul returns u * o; the units compose and simplify.
func (u UExpr) Mul(o UExpr) UExpr {
	return UExpr{expr: u.expr.Mul(o.expr), unit: u.unit.Mul(o.unit)}
}

// Div returns u / o; the units compose and simplify.
func (u UExpr) Div(o UExpr) UExpr {
	return UExpr{expr: u.expr.Div(o.expr), unit: u.unit.Div(o.unit)}
}

// MulScalar scales the values, keeping the unit.
func (u UExpr) MulScalar(v float64) UExpr {
	return UExpr{expr: u.expr.Mul(frame.Lit(v)), unit: u.unit}
}

// DivScalar divides the values by a number, keeping the unit.
func (u UExpr) DivScalar(v float64) UExpr {
	return UExpr{expr: u.expr.Div(frame.Lit(v)), unit: u.unit}
}

// ScalarDiv returns v / u; the unit is reciprocated.
func (u UExpr) ScalarDiv(v float64) UExpr {
	return UExpr{expr: frame.Lit(v).Div(u.expr), unit: u.unit.Reciprocal()}
}

// Pow raises values and unit to an integer power.
func (u UExpr) Pow(n int) UExpr {
	return UExpr{expr: u.expr.Pow(float64(n)), unit: u.unit.Pow(units.NewRatio(n, 1))}
}

// Sqrt takes the square root of values and unit.
func (u UExpr) Sqrt() UExpr {
	return UExpr{expr: u.expr.Sqrt(), unit: u.unit.Sqrt()}
}

// Neg negates the values, keeping the unit.
func (u UExpr) Neg() UExpr {
	return UExpr{expr: u.expr.Neg(), unit: u.unit}
}

// Abs takes the absolute value, keeping the unit.
func (u UExpr) Abs() UExpr {
	return UExpr{expr: u.expr.Abs(), unit: u.unit}
}

// Over evaluates the expression per partition of a key column, keeping the
// unit.
func (u UExpr) Over(partition string) UExpr {
	return UExpr{expr: u.expr.Over(partition), unit: u.unit}
}
