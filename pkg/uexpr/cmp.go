package uexpr

import "github.com/uframe-io/uframe/pkg/frame"

// Comparisons rescale the right operand into the left operand's unit and
// return an UNTAGGED boolean expression for use with DataFrame.Filter; a
// truth value has no unit. They fail when the operands are dimensionally
// incompatible.

func (u UExpr) cmp(o UExpr, op func(*frame.Expr, *frame.Expr) *frame.Expr) (*frame.Expr, error) {
	conv, err := u.alignTo(o)
	if err != nil {
		return nil, err
	}
	return op(u.expr, conv.expr), nil
}

// Lt returns the boolean expression u < o.
func (u UExpr) Lt(o UExpr) (*frame.Expr, error) {
	return u.cmp(o, (*frame.Expr).Lt)
}

// Le returns the boolean expression u <= o.
func (u UExpr) Le(o UExpr) (*frame.Expr, error) {
	return u.cmp(o, (*frame.Expr).Le)
}

// Gt returns the boolean expression u > o.
func (u UExpr) Gt(o UExpr) (*frame.Expr, error) {
	return u.cmp(o, (*frame.Expr).Gt)
}

// Ge returns the boolean expression u >= o.
func (u UExpr) Ge(o UExpr) (*frame.Expr, error) {
	return u.cmp(o, (*frame.Expr).Ge)
}

// Eq returns the boolean expression u == o.
func (u UExpr) Eq(o UExpr) (*frame.Expr, error) {
	return u.cmp(o, (*frame.Expr).Eq)
}

// Ne returns the boolean expression u != o.
func (u UExpr) Ne(o UExpr) (*frame.Expr, error) {
	return u.cmp(o, (*frame.Expr).Ne)
}
