package units

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// term is one named factor of a compound unit, e.g. meter ** 2.
type term struct {
	name string
	exp  Ratio
}

// Unit is an immutable product of named unit terms bound to a Registry.
// The zero Unit is the dimensionless unity of the default registry.
// All algebra returns new values; a Unit is never mutated in place.
type Unit struct {
	reg   *Registry
	terms []term
}

// Registry returns the registry the unit was resolved against.
func (u Unit) Registry() *Registry {
	if u.reg == nil {
		return DefaultRegistry()
	}
	return u.reg
}

// normalize sorts terms by name, merges duplicates and drops zero exponents.
func normalizeTerms(terms []term) []term {
	merged := make(map[string]Ratio, len(terms))
	for _, t := range terms {
		merged[t.name] = merged[t.name].Add(t.exp)
	}
	out := make([]term, 0, len(merged))
	for name, exp := range merged {
		if !exp.IsZero() {
			out = append(out, term{name: name, exp: exp})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func newUnit(reg *Registry, terms []term) Unit {
	return Unit{reg: reg, terms: normalizeTerms(terms)}
}

// Mul returns the product unit u * o.
func (u Unit) Mul(o Unit) Unit {
	return newUnit(u.Registry(), append(append([]term(nil), u.terms...), o.terms...))
}

// Div returns the quotient unit u / o.
func (u Unit) Div(o Unit) Unit {
	terms := append([]term(nil), u.terms...)
	for _, t := range o.terms {
		terms = append(terms, term{name: t.name, exp: t.exp.Neg()})
	}
	return newUnit(u.Registry(), terms)
}

// Pow returns the unit raised to the exponent r.
func (u Unit) Pow(r Ratio) Unit {
	if r.IsZero() {
		return Unit{reg: u.Registry()}
	}
	terms := make([]term, 0, len(u.terms))
	for _, t := range u.terms {
		terms = append(terms, term{name: t.name, exp: t.exp.Mul(r)})
	}
	return newUnit(u.Registry(), terms)
}

// Sqrt returns the unit raised to the exponent 1/2.
func (u Unit) Sqrt() Unit {
	return u.Pow(NewRatio(1, 2))
}

// Reciprocal returns 1 / u.
func (u Unit) Reciprocal() Unit {
	return u.Pow(NewRatio(-1, 1))
}

// Dimension returns the unit's base-quantity exponent vector.
func (u Unit) Dimension() Dimension {
	var dim Dimension
	reg := u.Registry()
	for _, t := range u.terms {
		def, ok := reg.lookup(t.name)
		if !ok {
			// Every term resolved at parse time and definitions are never
			// removed. A miss means the unit and registry are out of sync.
			panic(fmt.Sprintf("units: no definition for %q", t.name))
		}
		dim = dim.Mul(def.dim.Pow(t.exp))
	}
	return dim
}

// Dimensionless reports whether the unit measures a pure number.
func (u Unit) Dimensionless() bool {
	return u.Dimension().Dimensionless()
}

// CompatibleWith reports whether u and o measure the same quantity and can
// be converted via a scale factor.
func (u Unit) CompatibleWith(o Unit) bool {
	return u.Dimension().Equal(o.Dimension())
}

// Equal reports whether u and o are the same unit expression, not merely
// compatible (meter and centimeter are compatible but not equal).
func (u Unit) Equal(o Unit) bool {
	if len(u.terms) != len(o.terms) {
		return false
	}
	for i := range u.terms {
		if u.terms[i] != o.terms[i] {
			return false
		}
	}
	return true
}

// scale returns the factor from one of this unit to the canonical unit of
// its dimension (SI base units for the default registry).
func (u Unit) scale() float64 {
	s := 1.0
	reg := u.Registry()
	for _, t := range u.terms {
		def, ok := reg.lookup(t.name)
		if !ok {
			panic(fmt.Sprintf("units: no definition for %q", t.name))
		}
		s *= pow(def.scale, t.exp)
	}
	return s
}

// pow raises a scale factor to a rational exponent.
func pow(base float64, exp Ratio) float64 {
	if exp == One {
		return base
	}
	return math.Pow(base, exp.Float())
}

// String renders the unit pint-style: "meter", "meter * second",
// "meter ** 2", "meter / second", "1 / meter" or "dimensionless".
func (u Unit) String() string {
	var num, den []string
	for _, t := range u.terms {
		switch {
		case t.exp.Num > 0:
			num = append(num, formatTerm(t.name, t.exp))
		default:
			den = append(den, formatTerm(t.name, t.exp.Neg()))
		}
	}
	if len(num) == 0 && len(den) == 0 {
		return "dimensionless"
	}
	var b strings.Builder
	if len(num) == 0 {
		b.WriteString("1")
	} else {
		b.WriteString(strings.Join(num, " * "))
	}
	for _, t := range den {
		b.WriteString(" / ")
		b.WriteString(t)
	}
	return b.String()
}

func formatTerm(name string, exp Ratio) string {
	if exp == One {
		return name
	}
	return name + " ** " + exp.String()
}

// CanonicalFactor returns the factor from one of this unit to the
// canonical unit of its dimension (SI for the default registry), e.g. 1000
// for kilometer.
func CanonicalFactor(u Unit) float64 {
	return u.scale()
}

// ConversionFactor returns the factor that rescales values measured in from
// into values measured in to. It fails with a *DimensionalityError when the
// two units do not share a dimension.
func ConversionFactor(from, to Unit) (float64, error) {
	if !from.CompatibleWith(to) {
		return 0, &DimensionalityError{From: from, To: to, Op: "convert between"}
	}
	return from.scale() / to.scale(), nil
}
