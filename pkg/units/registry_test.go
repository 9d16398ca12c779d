package units

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseBasics(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		in   string
		want string
	}{
		{"meter", "meter"},
		{"m", "meter"},
		{"metre", "meter"},
		{"meter * second", "meter * second"},
		{"second * meter", "meter * second"},
		{"meter / second", "meter / second"},
		{"meter ** 2", "meter ** 2"},
		{"meter ** 0.5", "meter ** 1/2"},
		{"1 / meter", "1 / meter"},
		{"1", "dimensionless"},
		{"dimensionless", "dimensionless"},
		{"kilogram * meter / second ** 2", "kilogram * meter / second ** 2"},
		{"meter * meter", "meter ** 2"},
		{"meter / meter", "dimensionless"},
	}
	for _, tt := range tests {
		u, err := reg.Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got := u.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	reg := DefaultRegistry()

	tests := []string{
		"",
		"   ",
		"bogus",
		"meter * bogus",
		"meter **",
		"meter *",
		"* meter",
		"meter ** two",
		"5 meter",
	}
	for _, in := range tests {
		if _, err := reg.Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}

	_, err := reg.Parse("furlongs_per_fortnight")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	reg := DefaultRegistry()
	exprs := []string{
		"meter",
		"meter * second",
		"meter / second",
		"meter ** 2",
		"1 / meter",
		"kilogram * meter / second ** 2",
	}
	for _, in := range exprs {
		u, err := reg.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		again, err := reg.Parse(u.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", u.String(), err)
		}
		if !u.Equal(again) {
			t.Errorf("%q did not round-trip: %q vs %q", in, u, again)
		}
	}
}

func TestUnitAlgebra(t *testing.T) {
	reg := DefaultRegistry()
	meter := reg.MustParse("meter")
	second := reg.MustParse("second")

	if got := meter.Mul(second).String(); got != "meter * second" {
		t.Errorf("meter * second = %q", got)
	}
	if got := meter.Div(second).String(); got != "meter / second" {
		t.Errorf("meter / second = %q", got)
	}
	if got := meter.Pow(NewRatio(2, 1)).String(); got != "meter ** 2" {
		t.Errorf("meter ** 2 = %q", got)
	}
	if got := meter.Pow(NewRatio(2, 1)).Sqrt().String(); got != "meter" {
		t.Errorf("sqrt(meter ** 2) = %q, want meter", got)
	}
	if got := meter.Reciprocal().String(); got != "1 / meter" {
		t.Errorf("1/meter = %q", got)
	}
	if got := meter.Div(meter).String(); got != "dimensionless" {
		t.Errorf("meter / meter = %q, want dimensionless", got)
	}
	if got := meter.Pow(NewRatio(0, 1)).String(); got != "dimensionless" {
		t.Errorf("meter ** 0 = %q, want dimensionless", got)
	}
	if !meter.Div(meter).Dimensionless() {
		t.Error("meter / meter should be dimensionless")
	}
}

func TestDimensions(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		unit string
		want string
	}{
		{"meter", "[length]"},
		{"meter / second", "[length] / [time]"},
		{"newton", "[length] * [mass] / [time] ** 2"},
		{"hertz", "1 / [time]"},
		{"dimensionless", "dimensionless"},
		{"radian", "dimensionless"},
		{"percent", "dimensionless"},
	}
	for _, tt := range tests {
		u := reg.MustParse(tt.unit)
		if got := u.Dimension().String(); got != tt.want {
			t.Errorf("%s dimension = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestConversionFactor(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		from, to string
		want     float64
	}{
		{"meter", "centimeter", 100},
		{"meter", "cm", 100},
		{"kilometer", "meter", 1000},
		{"foot", "meter", 0.3048},
		{"inch", "centimeter", 2.54},
		{"hour", "second", 3600},
		{"mile", "kilometer", 1.609344},
		{"meter / second", "kilometer / hour", 3.6},
		{"liter", "milliliter", 1000},
		{"joule", "calorie", 1 / 4.184},
		{"survey_foot", "meter", 1200.0 / 3937.0},
	}
	for _, tt := range tests {
		from := reg.MustParse(tt.from)
		to := reg.MustParse(tt.to)
		got, err := ConversionFactor(from, to)
		if err != nil {
			t.Errorf("ConversionFactor(%s, %s): %v", tt.from, tt.to, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9*math.Abs(tt.want) {
			t.Errorf("ConversionFactor(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestConversionFactorIncompatible(t *testing.T) {
	reg := DefaultRegistry()
	meter := reg.MustParse("meter")
	second := reg.MustParse("second")

	_, err := ConversionFactor(meter, second)
	if err == nil {
		t.Fatal("expected error converting meter to second")
	}
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	var de *DimensionalityError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DimensionalityError, got %T", err)
	}
	if de.From.String() != "meter" || de.To.String() != "second" {
		t.Errorf("unexpected error units: %v", de)
	}
}

func TestDefine(t *testing.T) {
	reg := NewRegistry()
	if err := reg.DefineBase("meter", "length", "m"); err != nil {
		t.Fatalf("DefineBase: %v", err)
	}
	if err := reg.Define("furlong", "201.168 meter"); err != nil {
		t.Fatalf("Define: %v", err)
	}

	furlong := reg.MustParse("furlong")
	meter := reg.MustParse("meter")
	factor, err := ConversionFactor(furlong, meter)
	if err != nil {
		t.Fatalf("ConversionFactor: %v", err)
	}
	if math.Abs(factor-201.168) > 1e-6 {
		t.Errorf("furlong factor = %v, want 201.168", factor)
	}

	if err := reg.Define("furlong", "200 meter"); !errors.Is(err, ErrDuplicateUnit) {
		t.Errorf("redefining furlong: expected ErrDuplicateUnit, got %v", err)
	}
	if err := reg.DefineBase("meter", "length"); !errors.Is(err, ErrDuplicateUnit) {
		t.Errorf("redefining meter: expected ErrDuplicateUnit, got %v", err)
	}
	if err := reg.DefineBase("blob", "goo"); !errors.Is(err, ErrBadDefinition) {
		t.Errorf("unknown base quantity: expected ErrBadDefinition, got %v", err)
	}
	if err := reg.Define("parsec", "3.26 lightyear"); !errors.Is(err, ErrBadDefinition) {
		t.Errorf("definition with unknown reference: expected ErrBadDefinition, got %v", err)
	}
}

func TestDefineScalarOnly(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Define("percent", "0.01"); err != nil {
		t.Fatalf("Define: %v", err)
	}
	pct := reg.MustParse("percent")
	if !pct.Dimensionless() {
		t.Error("percent should be dimensionless")
	}
	one, err := reg.Parse("1")
	if err != nil {
		t.Fatalf("Parse(1): %v", err)
	}
	factor, err := ConversionFactor(pct, one)
	if err != nil {
		t.Fatalf("ConversionFactor: %v", err)
	}
	if math.Abs(factor-0.01) > 1e-12 {
		t.Errorf("percent factor = %v, want 0.01", factor)
	}
}

func TestDefineRationalFactor(t *testing.T) {
	reg := NewRegistry()
	if err := reg.DefineBase("meter", "length"); err != nil {
		t.Fatal(err)
	}
	if err := reg.Define("survey_foot", "1200/3937 meter"); err != nil {
		t.Fatalf("Define: %v", err)
	}
	factor, err := ConversionFactor(reg.MustParse("survey_foot"), reg.MustParse("meter"))
	if err != nil {
		t.Fatalf("ConversionFactor: %v", err)
	}
	want := 1200.0 / 3937.0
	if math.Abs(factor-want) > 1e-15 {
		t.Errorf("survey_foot factor = %v, want %v", factor, want)
	}
}

func TestMissingDefinitionPanics(t *testing.T) {
	// A Unit term without a definition means the unit and registry are out
	// of sync; degrading it silently to dimensionless would let
	// incompatible conversions through.
	reg := NewRegistry()
	u := Unit{reg: reg, terms: []term{{name: "ghost", exp: One}}}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a unit term with no definition")
		}
	}()
	u.Dimension()
}

func TestLoadDefinitions(t *testing.T) {
	doc := `
[[unit]]
name = "meter"
dimension = "length"
aliases = ["m"]

[[unit]]
name = "furlong"
equals = "201.168 meter"

[[unit]]
name = "furlong_per_hour"
equals = "furlong / hour"
`
	reg := NewRegistry()
	if err := reg.DefineBase("second", "time"); err != nil {
		t.Fatal(err)
	}
	if err := reg.Define("hour", "3600 second"); err != nil {
		t.Fatal(err)
	}
	if err := reg.LoadDefinitions(strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}

	u := reg.MustParse("furlong_per_hour")
	ms := reg.MustParse("m / second")
	factor, err := ConversionFactor(u, ms)
	if err != nil {
		t.Fatalf("ConversionFactor: %v", err)
	}
	want := 201.168 / 3600
	if math.Abs(factor-want) > 1e-9 {
		t.Errorf("furlong/hour factor = %v, want %v", factor, want)
	}
}

func TestLoadDefinitionsOverwrites(t *testing.T) {
	reg := NewRegistry()
	if err := reg.DefineBase("meter", "length"); err != nil {
		t.Fatal(err)
	}
	if err := reg.Define("pace", "0.75 meter"); err != nil {
		t.Fatal(err)
	}
	// Loading a file redefining pace must win, so a watched file can be
	// reloaded in place.
	doc := `
[[unit]]
name = "pace"
equals = "0.8 meter"
`
	if err := reg.LoadDefinitions(strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}
	factor, err := ConversionFactor(reg.MustParse("pace"), reg.MustParse("meter"))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(factor-0.8) > 1e-12 {
		t.Errorf("pace factor = %v, want 0.8 after reload", factor)
	}
}

func TestLoadDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no name", "[[unit]]\nequals = \"2 meter\"\n"},
		{"both forms", "[[unit]]\nname = \"x\"\ndimension = \"length\"\nequals = \"2 meter\"\n"},
		{"neither form", "[[unit]]\nname = \"x\"\n"},
		{"bad toml", "[[unit]\nname = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			if err := reg.LoadDefinitions(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaultRegistryShared(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Fatal("DefaultRegistry should return the same instance")
	}
}

func TestCanonicalFactor(t *testing.T) {
	reg := DefaultRegistry()
	if got := CanonicalFactor(reg.MustParse("kilometer")); math.Abs(got-1000) > 1e-9 {
		t.Errorf("kilometer canonical factor = %v, want 1000", got)
	}
	if got := CanonicalFactor(reg.MustParse("meter")); got != 1 {
		t.Errorf("meter canonical factor = %v, want 1", got)
	}
}
