package units

import (
	"fmt"
	"strings"
	"unicode"
)

// Token kinds for unit expressions. The grammar is
//
//	expr   := factor (('*' | '/') factor)*
//	factor := NAME ['**' NUMBER] | '1' | 'dimensionless'
//
// Operators associate left to right, so "a / b * c" puts c in the
// numerator. Exponents are integers or decimals ("meter ** 0.5").
type tokenKind int

const (
	tokName tokenKind = iota
	tokNumber
	tokMul
	tokDiv
	tokPow
)

type token struct {
	kind tokenKind
	text string
}

func lexUnitExpr(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := rune(s[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '*':
			if i+1 < len(s) && s[i+1] == '*' {
				toks = append(toks, token{kind: tokPow})
				i += 2
			} else {
				toks = append(toks, token{kind: tokMul})
				i++
			}
		case c == '/':
			toks = append(toks, token{kind: tokDiv})
			i++
		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(s) && (unicode.IsLetter(rune(s[j])) || unicode.IsDigit(rune(s[j])) || s[j] == '_') {
				j++
			}
			toks = append(toks, token{kind: tokName, text: s[i:j]})
			i = j
		case unicode.IsDigit(c) || c == '.' || ((c == '-' || c == '+') && i+1 < len(s) && isDigitOrDot(s[i+1])):
			j := i + 1
			for j < len(s) && isDigitOrDot(s[j]) {
				j++
			}
			toks = append(toks, token{kind: tokNumber, text: s[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q in unit expression %q", c, s)
		}
	}
	return toks, nil
}

func isDigitOrDot(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}

// parseExprLocked parses a unit expression into terms. The registry read
// lock (or write lock) must be held by the caller.
func (r *Registry) parseExprLocked(s string) ([]term, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty unit expression", ErrUnknownUnit)
	}
	toks, err := lexUnitExpr(s)
	if err != nil {
		return nil, err
	}
	var terms []term
	sign := One
	i := 0
	for {
		if i >= len(toks) {
			return nil, fmt.Errorf("unit expression %q: trailing operator", s)
		}
		t := toks[i]
		i++
		switch t.kind {
		case tokName:
			if t.text == "dimensionless" {
				// contributes no terms
			} else {
				canon, ok := r.canonicalLocked(t.text)
				if !ok {
					return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, t.text)
				}
				exp := One
				if i < len(toks) && toks[i].kind == tokPow {
					i++
					if i >= len(toks) || toks[i].kind != tokNumber {
						return nil, fmt.Errorf("unit expression %q: expected exponent after **", s)
					}
					exp, err = parseRatio(toks[i].text)
					if err != nil {
						return nil, fmt.Errorf("unit expression %q: %v", s, err)
					}
					i++
				}
				terms = append(terms, term{name: canon, exp: exp.Mul(sign)})
			}
		case tokNumber:
			if t.text != "1" {
				return nil, fmt.Errorf("unit expression %q: unexpected number %q", s, t.text)
			}
			// unity, contributes no terms
		default:
			return nil, fmt.Errorf("unit expression %q: unexpected operator", s)
		}
		if i == len(toks) {
			return terms, nil
		}
		switch toks[i].kind {
		case tokMul:
			sign = One
		case tokDiv:
			sign = NewRatio(-1, 1)
		default:
			return nil, fmt.Errorf("unit expression %q: expected * or /", s)
		}
		i++
	}
}
