package frame

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// evalNumeric evaluates e over the rows of df given by rows (nil means all
// rows). The result has either len(rows) elements, or exactly one element
// when the expression is an aggregation or a literal; callers broadcast
// scalars as needed.
func (e *Expr) evalNumeric(df *DataFrame, rows []int) ([]float64, error) {
	switch e.kind {
	case exprCol:
		return df.columnValues(e.name, rows)

	case exprLit:
		return []float64{e.val}, nil

	case exprAlias:
		return e.left.evalNumeric(df, rows)

	case exprBinary:
		return e.evalBinary(df, rows)

	case exprUnary:
		return e.evalUnary(df, rows)

	case exprAgg:
		return e.evalAgg(df, rows)

	case exprOver:
		return e.evalOver(df, rows)

	case exprCmp:
		return nil, fmt.Errorf("%w: comparison used as numeric expression", ErrNotBoolean)

	default:
		return nil, fmt.Errorf("frame: unknown expression kind %d", e.kind)
	}
}

func (e *Expr) evalBinary(df *DataFrame, rows []int) ([]float64, error) {
	a, err := e.left.evalNumeric(df, rows)
	if err != nil {
		return nil, err
	}
	b, err := e.right.evalNumeric(df, rows)
	if err != nil {
		return nil, err
	}
	a, b, err = broadcastPair(a, b)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	copy(out, a)
	switch e.op {
	case "+":
		floats.Add(out, b)
	case "-":
		floats.Sub(out, b)
	case "*":
		floats.Mul(out, b)
	case "/":
		floats.Div(out, b)
	case "pow":
		for i := range out {
			out[i] = math.Pow(out[i], b[i])
		}
	default:
		return nil, fmt.Errorf("frame: unknown binary operator %q", e.op)
	}
	return out, nil
}

func (e *Expr) evalUnary(df *DataFrame, rows []int) ([]float64, error) {
	vals, err := e.left.evalNumeric(df, rows)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	switch e.op {
	case "neg":
		floats.Scale(-1, out)
	case "abs":
		applyElem(out, math.Abs)
	case "sqrt":
		applyElem(out, math.Sqrt)
	case "log":
		applyElem(out, math.Log)
	case "log10":
		applyElem(out, math.Log10)
	case "log1p":
		applyElem(out, math.Log1p)
	case "exp":
		applyElem(out, math.Exp)
	case "sin":
		applyElem(out, math.Sin)
	case "cos":
		applyElem(out, math.Cos)
	case "tan":
		applyElem(out, math.Tan)
	default:
		return nil, fmt.Errorf("frame: unknown unary operator %q", e.op)
	}
	return out, nil
}

func applyElem(vals []float64, f func(float64) float64) {
	for i := range vals {
		vals[i] = f(vals[i])
	}
}

func (e *Expr) evalAgg(df *DataFrame, rows []int) ([]float64, error) {
	vals, err := e.left.evalNumeric(df, rows)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyColumn, e.op)
	}
	switch e.op {
	case "sum":
		return []float64{floats.Sum(vals)}, nil
	case "mean":
		return []float64{stat.Mean(vals, nil)}, nil
	case "min":
		return []float64{floats.Min(vals)}, nil
	case "max":
		return []float64{floats.Max(vals)}, nil
	case "count":
		return []float64{float64(len(vals))}, nil
	case "dot":
		b, err := e.right.evalNumeric(df, rows)
		if err != nil {
			return nil, err
		}
		a := vals
		a, b, err = broadcastPair(a, b)
		if err != nil {
			return nil, err
		}
		return []float64{floats.Dot(a, b)}, nil
	default:
		return nil, fmt.Errorf("frame: unknown aggregation %q", e.op)
	}
}

// evalOver partitions the rows by the window column, evaluates the child
// per partition and scatters the results back to row positions.
func (e *Expr) evalOver(df *DataFrame, rows []int) ([]float64, error) {
	rows = df.materializeRows(rows)
	groups, err := df.groupRows(rows, []string{e.partition})
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	pos := make(map[int]int, len(rows))
	for i, r := range rows {
		pos[r] = i
	}
	for _, g := range groups {
		vals, err := e.left.evalNumeric(df, g.rows)
		if err != nil {
			return nil, err
		}
		switch len(vals) {
		case 1:
			for _, r := range g.rows {
				out[pos[r]] = vals[0]
			}
		case len(g.rows):
			for i, r := range g.rows {
				out[pos[r]] = vals[i]
			}
		default:
			return nil, fmt.Errorf("%w: window expression produced %d values for %d rows",
				ErrLengthMismatch, len(vals), len(g.rows))
		}
	}
	return out, nil
}

// evalBool evaluates a boolean expression to a row mask.
func (e *Expr) evalBool(df *DataFrame, rows []int) ([]bool, error) {
	switch e.kind {
	case exprAlias:
		return e.left.evalBool(df, rows)
	case exprCmp:
	default:
		return nil, fmt.Errorf("%w: expected a comparison", ErrNotBoolean)
	}
	a, err := e.left.evalNumeric(df, rows)
	if err != nil {
		return nil, err
	}
	b, err := e.right.evalNumeric(df, rows)
	if err != nil {
		return nil, err
	}
	a, b, err = broadcastPair(a, b)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(a))
	for i := range a {
		switch e.op {
		case "<":
			out[i] = a[i] < b[i]
		case "<=":
			out[i] = a[i] <= b[i]
		case ">":
			out[i] = a[i] > b[i]
		case ">=":
			out[i] = a[i] >= b[i]
		case "==":
			out[i] = a[i] == b[i]
		case "!=":
			out[i] = a[i] != b[i]
		default:
			return nil, fmt.Errorf("frame: unknown comparison %q", e.op)
		}
	}
	return out, nil
}

// broadcastPair aligns two evaluation results: a length-1 result broadcasts
// against the other side; equal lengths pass through.
func broadcastPair(a, b []float64) ([]float64, []float64, error) {
	switch {
	case len(a) == len(b):
		return a, b, nil
	case len(a) == 1:
		out := make([]float64, len(b))
		for i := range out {
			out[i] = a[0]
		}
		return out, b, nil
	case len(b) == 1:
		out := make([]float64, len(a))
		for i := range out {
			out[i] = b[0]
		}
		return a, out, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
}
