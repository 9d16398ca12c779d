package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Ratio is an exact rational number used for unit exponents.
// Exponents must stay exact so that sqrt(meter ** 2) cancels back to meter.
type Ratio struct {
	Num int
	Den int
}

// NewRatio returns the normalized ratio num/den. The denominator is always
// positive after normalization; a zero numerator normalizes to 0/1.
func NewRatio(num, den int) Ratio {
	if den == 0 {
		panic("units: ratio with zero denominator")
	}
	if num == 0 {
		return Ratio{0, 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Ratio{num / g, den / g}
}

// One is the exponent of a plain unit term.
var One = Ratio{1, 1}

// norm maps the zero value of Ratio to the canonical 0/1. Unset entries of
// a Dimension vector are zero values and must behave as zero exponents.
func (r Ratio) norm() Ratio {
	if r.Den == 0 {
		r.Den = 1
	}
	return r
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Add returns r + o.
func (r Ratio) Add(o Ratio) Ratio {
	r, o = r.norm(), o.norm()
	return NewRatio(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den)
}

// Sub returns r - o.
func (r Ratio) Sub(o Ratio) Ratio {
	r, o = r.norm(), o.norm()
	return NewRatio(r.Num*o.Den-o.Num*r.Den, r.Den*o.Den)
}

// Mul returns r * o.
func (r Ratio) Mul(o Ratio) Ratio {
	r, o = r.norm(), o.norm()
	return NewRatio(r.Num*o.Num, r.Den*o.Den)
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	r = r.norm()
	return NewRatio(-r.Num, r.Den)
}

// IsZero reports whether the ratio is zero.
func (r Ratio) IsZero() bool {
	return r.Num == 0
}

// Float returns the ratio as a float64.
func (r Ratio) Float() float64 {
	r = r.norm()
	return float64(r.Num) / float64(r.Den)
}

// String renders the ratio as "2", "-1" or "1/2".
func (r Ratio) String() string {
	r = r.norm()
	if r.Den == 1 {
		return strconv.Itoa(r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// parseRatio parses an exponent literal: an integer ("2", "-1"), a fraction
// ("1/2") or a decimal ("0.5", "-2.5"). Decimals are converted to an exact
// fraction over a power of ten.
func parseRatio(s string) (Ratio, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ratio{}, fmt.Errorf("empty exponent")
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			return Ratio{}, fmt.Errorf("exponent %q: %w", s, err)
		}
		d, err := strconv.Atoi(strings.TrimSpace(den))
		if err != nil {
			return Ratio{}, fmt.Errorf("exponent %q: %w", s, err)
		}
		if d == 0 {
			return Ratio{}, fmt.Errorf("exponent %q: zero denominator", s)
		}
		return NewRatio(n, d), nil
	}
	if whole, frac, ok := strings.Cut(s, "."); ok {
		neg := strings.HasPrefix(whole, "-")
		w := 0
		if trimmed := strings.TrimPrefix(strings.TrimPrefix(whole, "-"), "+"); trimmed != "" {
			var err error
			w, err = strconv.Atoi(trimmed)
			if err != nil {
				return Ratio{}, fmt.Errorf("exponent %q: %w", s, err)
			}
		}
		den := 1
		num := w
		for _, c := range frac {
			if c < '0' || c > '9' {
				return Ratio{}, fmt.Errorf("exponent %q: not a number", s)
			}
			num = num*10 + int(c-'0')
			den *= 10
		}
		if neg {
			num = -num
		}
		return NewRatio(num, den), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Ratio{}, fmt.Errorf("exponent %q: %w", s, err)
	}
	return NewRatio(n, 1), nil
}
