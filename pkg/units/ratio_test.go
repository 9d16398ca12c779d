package units

import "testing"

func TestNewRatioNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		num, den int
		want     Ratio
	}{
		{"already normal", 1, 2, Ratio{1, 2}},
		{"reduces", 2, 4, Ratio{1, 2}},
		{"negative denominator", 1, -2, Ratio{-1, 2}},
		{"double negative", -3, -6, Ratio{1, 2}},
		{"zero numerator", 0, 7, Ratio{0, 1}},
		{"integer", 4, 2, Ratio{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRatio(tt.num, tt.den); got != tt.want {
				t.Fatalf("NewRatio(%d, %d) = %v, want %v", tt.num, tt.den, got, tt.want)
			}
		})
	}
}

func TestRatioArithmetic(t *testing.T) {
	half := NewRatio(1, 2)
	two := NewRatio(2, 1)

	if got := half.Add(half); got != (Ratio{1, 1}) {
		t.Errorf("1/2 + 1/2 = %v, want 1", got)
	}
	if got := two.Sub(half); got != (Ratio{3, 2}) {
		t.Errorf("2 - 1/2 = %v, want 3/2", got)
	}
	if got := two.Mul(half); got != (Ratio{1, 1}) {
		t.Errorf("2 * 1/2 = %v, want 1", got)
	}
	if got := half.Neg(); got != (Ratio{-1, 2}) {
		t.Errorf("-(1/2) = %v, want -1/2", got)
	}
	if !NewRatio(0, 5).IsZero() {
		t.Error("0/5 should be zero")
	}
	if got := half.Float(); got != 0.5 {
		t.Errorf("(1/2).Float() = %v, want 0.5", got)
	}
}

func TestRatioZeroValue(t *testing.T) {
	// The zero value must behave as 0/1: Dimension vectors hold unset
	// entries and feed them straight into the arithmetic.
	var z Ratio

	if got := z.Add(One); got != One {
		t.Errorf("0 + 1 = %v, want 1", got)
	}
	if got := One.Sub(z); got != One {
		t.Errorf("1 - 0 = %v, want 1", got)
	}
	if got := z.Mul(NewRatio(1, 2)); !got.IsZero() {
		t.Errorf("0 * 1/2 = %v, want 0", got)
	}
	if got := z.Neg(); !got.IsZero() {
		t.Errorf("-0 = %v, want 0", got)
	}
	if got := z.Float(); got != 0 {
		t.Errorf("Float() = %v, want 0", got)
	}
	if got := z.String(); got != "0" {
		t.Errorf("String() = %q, want %q", got, "0")
	}
}

func TestRatioString(t *testing.T) {
	tests := []struct {
		r    Ratio
		want string
	}{
		{NewRatio(2, 1), "2"},
		{NewRatio(-1, 1), "-1"},
		{NewRatio(1, 2), "1/2"},
		{NewRatio(-3, 2), "-3/2"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestParseRatio(t *testing.T) {
	tests := []struct {
		in      string
		want    Ratio
		wantErr bool
	}{
		{in: "2", want: Ratio{2, 1}},
		{in: "-1", want: Ratio{-1, 1}},
		{in: "0.5", want: Ratio{1, 2}},
		{in: "-2.5", want: Ratio{-5, 2}},
		{in: "1/2", want: Ratio{1, 2}},
		{in: "-3/4", want: Ratio{-3, 4}},
		{in: "0.25", want: Ratio{1, 4}},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1/0", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseRatio(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRatio(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRatio(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRatio(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
