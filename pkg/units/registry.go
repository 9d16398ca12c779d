package units

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// definition resolves a unit name to its dimension and the scale factor to
// the canonical unit of that dimension.
type definition struct {
	scale float64
	dim   Dimension
}

// Registry resolves unit names and expressions to Unit values. A Registry
// is safe for concurrent use; definitions can be added or reloaded while
// readers parse and convert.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]definition
	alias map[string]string
}

// NewRegistry returns an empty registry with no definitions.
func NewRegistry() *Registry {
	return &Registry{
		defs:  make(map[string]definition),
		alias: make(map[string]string),
	}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// DefaultRegistry returns the shared registry preloaded with the embedded
// default definitions (SI base units and common derived units).
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		if err := r.LoadDefaults(); err != nil {
			panic(fmt.Sprintf("units: embedded defaults: %v", err))
		}
		defaultReg = r
	})
	return defaultReg
}

// LoadDefaults installs the embedded default definitions into the registry.
func (r *Registry) LoadDefaults() error {
	return r.LoadDefinitions(strings.NewReader(defaultDefinitions))
}

// lookup resolves a name or alias to its definition.
func (r *Registry) lookup(name string) (definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.lookupLocked(name)
	return def, ok
}

func (r *Registry) lookupLocked(name string) (definition, bool) {
	if canon, ok := r.alias[name]; ok {
		name = canon
	}
	def, ok := r.defs[name]
	return def, ok
}

func (r *Registry) canonicalLocked(name string) (string, bool) {
	if canon, ok := r.alias[name]; ok {
		name = canon
	}
	_, ok := r.defs[name]
	return name, ok
}

// Parse resolves a unit expression like "meter", "kilogram * meter /
// second ** 2" or "1 / meter" against the registry. Unknown names fail with
// an error wrapping ErrUnknownUnit.
func (r *Registry) Parse(s string) (Unit, error) {
	r.mu.RLock()
	terms, err := r.parseExprLocked(s)
	r.mu.RUnlock()
	if err != nil {
		return Unit{}, err
	}
	return newUnit(r, terms), nil
}

// MustParse is Parse that panics on error, for static unit expressions.
func (r *Registry) MustParse(s string) Unit {
	u, err := r.Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// DefineBase registers a new base unit: the canonical unit of one base
// quantity, e.g. DefineBase("meter", "length", "m", "metre").
func (r *Registry) DefineBase(name, dimension string, aliases ...string) error {
	idx, ok := baseDimIndex(dimension)
	if !ok {
		return fmt.Errorf("%w: %q: unknown base quantity %q", ErrBadDefinition, name, dimension)
	}
	var dim Dimension
	dim[idx] = One
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setLocked(name, definition{scale: 1, dim: dim}, aliases, false)
}

// Define registers a derived unit in terms of existing ones. The equals
// string is an optional scale factor followed by a unit expression, e.g.
// Define("furlong", "201.168 meter") or Define("percent", "0.01").
// Defining an existing name fails with ErrDuplicateUnit.
func (r *Registry) Define(name, equals string, aliases ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	def, err := r.deriveLocked(name, equals)
	if err != nil {
		return err
	}
	return r.setLocked(name, def, aliases, false)
}

// deriveLocked parses an equals string into a definition.
func (r *Registry) deriveLocked(name, equals string) (definition, error) {
	fields := strings.Fields(equals)
	if len(fields) == 0 {
		return definition{}, fmt.Errorf("%w: %q: empty definition", ErrBadDefinition, name)
	}
	// The leading factor may be a decimal ("201.168 meter") or an exact
	// rational ("1200/3937 meter").
	scale := 1.0
	rest := equals
	factor, haveFactor := 0.0, false
	if strings.Contains(fields[0], "/") {
		if rat, err := parseRatio(fields[0]); err == nil {
			factor, haveFactor = rat.Float(), true
		}
	} else if f, err := strconv.ParseFloat(fields[0], 64); err == nil {
		factor, haveFactor = f, true
	}
	if haveFactor {
		scale = factor
		rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(equals), fields[0]))
		// "1 / second": the stripped number was the numerator, keep it in
		// the expression as unity.
		if strings.HasPrefix(rest, "/") || strings.HasPrefix(rest, "*") {
			rest = "1 " + rest
		}
	}
	def := definition{scale: scale}
	if rest != "" {
		terms, err := r.parseExprLocked(rest)
		if err != nil {
			return definition{}, fmt.Errorf("%w: %q: %v", ErrBadDefinition, name, err)
		}
		terms = normalizeTerms(terms)
		def.scale = scale * r.scaleOfTermsLocked(terms)
		def.dim = r.dimOfTermsLocked(terms)
	}
	return def, nil
}

// scaleOfTermsLocked and dimOfTermsLocked fold terms that parseExprLocked
// just resolved; a lookup miss here means the registry changed under the
// lock, which cannot happen.
func (r *Registry) scaleOfTermsLocked(terms []term) float64 {
	s := 1.0
	for _, t := range terms {
		def, ok := r.lookupLocked(t.name)
		if !ok {
			panic(fmt.Sprintf("units: no definition for %q", t.name))
		}
		s *= pow(def.scale, t.exp)
	}
	return s
}

func (r *Registry) dimOfTermsLocked(terms []term) Dimension {
	var dim Dimension
	for _, t := range terms {
		def, ok := r.lookupLocked(t.name)
		if !ok {
			panic(fmt.Sprintf("units: no definition for %q", t.name))
		}
		dim = dim.Mul(def.dim.Pow(t.exp))
	}
	return dim
}

// setLocked installs a definition and its aliases. With overwrite false an
// existing name fails with ErrDuplicateUnit; definition files overwrite so
// a watched file can be reloaded in place.
func (r *Registry) setLocked(name string, def definition, aliases []string, overwrite bool) error {
	if !overwrite {
		if _, exists := r.lookupLocked(name); exists {
			return fmt.Errorf("%w: %q", ErrDuplicateUnit, name)
		}
	}
	r.defs[name] = def
	for _, a := range aliases {
		r.alias[a] = name
	}
	return nil
}
