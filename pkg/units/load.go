package units

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed defaults.toml
var defaultDefinitions string

// definitionFile is the TOML schema for unit definition files. Each
// [[unit]] table declares either a base unit (dimension) or a derived unit
// (equals).
type definitionFile struct {
	Unit []definitionEntry `toml:"unit"`
}

type definitionEntry struct {
	Name      string   `toml:"name"`
	Dimension string   `toml:"dimension"`
	Equals    string   `toml:"equals"`
	Aliases   []string `toml:"aliases"`
}

// LoadDefinitions reads TOML unit definitions and installs them in order.
// Unlike Define, names already present are overwritten, so a definitions
// file can be reloaded in place after edits.
func (r *Registry) LoadDefinitions(src io.Reader) error {
	b, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read definitions: %w", err)
	}
	var file definitionFile
	if err := toml.Unmarshal(b, &file); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDefinition, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range file.Unit {
		if e.Name == "" {
			return fmt.Errorf("%w: unit entry without a name", ErrBadDefinition)
		}
		var def definition
		switch {
		case e.Dimension != "" && e.Equals != "":
			return fmt.Errorf("%w: %q: dimension and equals are mutually exclusive", ErrBadDefinition, e.Name)
		case e.Dimension != "":
			idx, ok := baseDimIndex(e.Dimension)
			if !ok {
				return fmt.Errorf("%w: %q: unknown base quantity %q", ErrBadDefinition, e.Name, e.Dimension)
			}
			def.scale = 1
			def.dim[idx] = One
		case e.Equals != "":
			def, err = r.deriveLocked(e.Name, e.Equals)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q: needs dimension or equals", ErrBadDefinition, e.Name)
		}
		if err := r.setLocked(e.Name, def, e.Aliases, true); err != nil {
			return err
		}
	}
	return nil
}

// LoadDefinitionsFile loads TOML unit definitions from a file path.
func (r *Registry) LoadDefinitionsFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open definitions: %w", err)
	}
	defer f.Close()
	return r.LoadDefinitions(f)
}
