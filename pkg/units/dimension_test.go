package units

import "testing"

func TestDimensionZeroValue(t *testing.T) {
	// A fresh Dimension has all entries unset; the algebra must treat them
	// as zero exponents, not panic on them.
	var empty Dimension
	if !empty.Dimensionless() {
		t.Error("fresh dimension should be dimensionless")
	}
	if !empty.Pow(NewRatio(2, 1)).Dimensionless() {
		t.Error("fresh dimension squared should stay dimensionless")
	}

	var length Dimension
	length[dimLength] = One

	if got := length.Mul(empty); !got.Equal(length) {
		t.Errorf("[length] * 1 = %v, want [length]", got)
	}
	if got := length.Pow(NewRatio(2, 1)); got[dimLength] != (Ratio{2, 1}) {
		t.Errorf("[length] ** 2 exponent = %v, want 2", got[dimLength])
	}
	if got := length.Div(length); !got.Dimensionless() {
		t.Errorf("[length] / [length] = %v, want dimensionless", got)
	}
}

func TestDimensionEqualNormalizes(t *testing.T) {
	// An explicit 0/1 exponent and an unset entry describe the same
	// quantity.
	var a, b Dimension
	a[dimLength] = One
	a[dimMass] = NewRatio(0, 1)
	b[dimLength] = One
	if !a.Equal(b) {
		t.Error("explicit zero exponent should compare equal to unset entry")
	}
}

func TestDimensionString(t *testing.T) {
	var speed Dimension
	speed[dimLength] = One
	speed[dimTime] = NewRatio(-1, 1)
	if got := speed.String(); got != "[length] / [time]" {
		t.Errorf("String() = %q", got)
	}

	var empty Dimension
	if got := empty.String(); got != "dimensionless" {
		t.Errorf("String() = %q, want dimensionless", got)
	}
}
