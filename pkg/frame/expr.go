package frame

// exprKind discriminates expression nodes.
type exprKind int

const (
	exprCol exprKind = iota
	exprLit
	exprBinary
	exprUnary
	exprAgg
	exprCmp
	exprOver
	exprAlias
)

// Expr is an immutable expression over the columns of a DataFrame.
// Expressions are built with Col and Lit and combined with the arithmetic,
// aggregation and comparison methods; nothing is evaluated until the
// expression is handed to Select, WithColumns, Filter or GroupBy.Agg.
type Expr struct {
	kind      exprKind
	name      string // column name (exprCol) or alias (exprAlias)
	val       float64
	op        string
	left      *Expr
	right     *Expr
	partition string // exprOver
}

// Col references a numeric column by name.
func Col(name string) *Expr {
	return &Expr{kind: exprCol, name: name}
}

// Lit is a scalar literal. It broadcasts against column expressions.
func Lit(v float64) *Expr {
	return &Expr{kind: exprLit, val: v}
}

func binary(op string, l, r *Expr) *Expr {
	return &Expr{kind: exprBinary, op: op, left: l, right: r}
}

func unary(op string, e *Expr) *Expr {
	return &Expr{kind: exprUnary, op: op, left: e}
}

func agg(op string, e *Expr) *Expr {
	return &Expr{kind: exprAgg, op: op, left: e}
}

// Add returns the elementwise sum e + o.
func (e *Expr) Add(o *Expr) *Expr { return binary("+", e, o) }

// Sub returns the elementwise difference e - o.
func (e *Expr) Sub(o *Expr) *Expr { return binary("-", e, o) }

// Mul returns the elementwise product e * o.
func (e *Expr) Mul(o *Expr) *Expr { return binary("*", e, o) }

// Div returns the elementwise quotient e / o.
func (e *Expr) Div(o *Expr) *Expr { return binary("/", e, o) }

// Pow raises the expression to a scalar power.
func (e *Expr) Pow(p float64) *Expr { return binary("pow", e, Lit(p)) }

// Neg returns the elementwise negation.
func (e *Expr) Neg() *Expr { return unary("neg", e) }

// Abs returns the elementwise absolute value.
func (e *Expr) Abs() *Expr { return unary("abs", e) }

// Sqrt returns the elementwise square root.
func (e *Expr) Sqrt() *Expr { return unary("sqrt", e) }

// Log returns the elementwise natural logarithm.
func (e *Expr) Log() *Expr { return unary("log", e) }

// Log10 returns the elementwise base-10 logarithm.
func (e *Expr) Log10() *Expr { return unary("log10", e) }

// Log1p returns the elementwise log(1+x).
func (e *Expr) Log1p() *Expr { return unary("log1p", e) }

// Exp returns the elementwise exponential.
func (e *Expr) Exp() *Expr { return unary("exp", e) }

// Sin returns the elementwise sine.
func (e *Expr) Sin() *Expr { return unary("sin", e) }

// Cos returns the elementwise cosine.
func (e *Expr) Cos() *Expr { return unary("cos", e) }

// Tan returns the elementwise tangent.
func (e *Expr) Tan() *Expr { return unary("tan", e) }

// Sum aggregates the expression to its sum.
func (e *Expr) Sum() *Expr { return agg("sum", e) }

// Mean aggregates the expression to its arithmetic mean.
func (e *Expr) Mean() *Expr { return agg("mean", e) }

// Min aggregates the expression to its minimum.
func (e *Expr) Min() *Expr { return agg("min", e) }

// Max aggregates the expression to its maximum.
func (e *Expr) Max() *Expr { return agg("max", e) }

// Count aggregates the expression to its row count.
func (e *Expr) Count() *Expr { return agg("count", e) }

// Dot aggregates two expressions to their dot product.
func (e *Expr) Dot(o *Expr) *Expr {
	return &Expr{kind: exprAgg, op: "dot", left: e, right: o}
}

func cmp(op string, l, r *Expr) *Expr {
	return &Expr{kind: exprCmp, op: op, left: l, right: r}
}

// Lt returns the elementwise comparison e < o. The result is boolean and
// only valid as a Filter predicate.
func (e *Expr) Lt(o *Expr) *Expr { return cmp("<", e, o) }

// Le returns the elementwise comparison e <= o.
func (e *Expr) Le(o *Expr) *Expr { return cmp("<=", e, o) }

// Gt returns the elementwise comparison e > o.
func (e *Expr) Gt(o *Expr) *Expr { return cmp(">", e, o) }

// Ge returns the elementwise comparison e >= o.
func (e *Expr) Ge(o *Expr) *Expr { return cmp(">=", e, o) }

// Eq returns the elementwise comparison e == o.
func (e *Expr) Eq(o *Expr) *Expr { return cmp("==", e, o) }

// Ne returns the elementwise comparison e != o.
func (e *Expr) Ne(o *Expr) *Expr { return cmp("!=", e, o) }

// Over evaluates the expression per group of the partition column and
// scatters the results back to row positions, polars window style. An
// aggregation broadcasts its scalar over the group; an elementwise
// expression passes through per row.
func (e *Expr) Over(partition string) *Expr {
	return &Expr{kind: exprOver, left: e, partition: partition}
}

// Alias names the output column of the expression.
func (e *Expr) Alias(name string) *Expr {
	return &Expr{kind: exprAlias, name: name, left: e}
}

// isBool reports whether the expression evaluates to a boolean mask.
func (e *Expr) isBool() bool {
	switch e.kind {
	case exprCmp:
		return true
	case exprAlias, exprOver:
		return e.left.isBool()
	default:
		return false
	}
}

// outputName is the column name the expression materializes under: an
// explicit alias, otherwise the name of the leftmost column reference
// (polars convention), otherwise "literal".
func (e *Expr) outputName() string {
	switch e.kind {
	case exprAlias:
		return e.name
	case exprCol:
		return e.name
	case exprLit:
		return "literal"
	default:
		if e.left != nil {
			return e.left.outputName()
		}
		return "literal"
	}
}
