package units

import "strings"

// Base quantity indexes into a Dimension vector. The seven SI base
// quantities cover every unit the registry can define.
const (
	dimLength = iota
	dimMass
	dimTime
	dimCurrent
	dimTemperature
	dimSubstance
	dimLuminosity
	numBaseDims
)

var baseDimNames = [numBaseDims]string{
	"length", "mass", "time", "current", "temperature", "substance", "luminosity",
}

// baseDimIndex resolves a base quantity name used in definition files.
func baseDimIndex(name string) (int, bool) {
	for i, n := range baseDimNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Dimension is a vector of base-quantity exponents. Two units are
// dimensionally compatible exactly when their Dimensions are equal.
type Dimension [numBaseDims]Ratio

// Mul returns the dimension of a product of quantities.
func (d Dimension) Mul(o Dimension) Dimension {
	var out Dimension
	for i := range d {
		out[i] = d[i].Add(o[i])
	}
	return out
}

// Div returns the dimension of a quotient of quantities.
func (d Dimension) Div(o Dimension) Dimension {
	var out Dimension
	for i := range d {
		out[i] = d[i].Sub(o[i])
	}
	return out
}

// Pow returns the dimension raised to the exponent r.
func (d Dimension) Pow(r Ratio) Dimension {
	var out Dimension
	for i := range d {
		out[i] = d[i].Mul(r)
	}
	return out
}

// Dimensionless reports whether every exponent is zero.
func (d Dimension) Dimensionless() bool {
	for i := range d {
		if !d[i].IsZero() {
			return false
		}
	}
	return true
}

// Equal reports whether d and o describe the same physical quantity. Unset
// entries compare equal to explicit zero exponents.
func (d Dimension) Equal(o Dimension) bool {
	for i := range d {
		if d[i].norm() != o[i].norm() {
			return false
		}
	}
	return true
}

// String renders the dimension as "[length]", "[length] / [time]" or
// "dimensionless".
func (d Dimension) String() string {
	var num, den []string
	for i := range d {
		e := d[i]
		switch {
		case e.IsZero():
		case e.Num > 0:
			num = append(num, formatDimTerm(baseDimNames[i], e))
		default:
			den = append(den, formatDimTerm(baseDimNames[i], e.Neg()))
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

func formatDimTerm(name string, exp Ratio) string {
	if exp == One {
		return "[" + name + "]"
	}
	return "[" + name + "] ** " + exp.String()
}
