// Package catalog loads user-defined semantic types from YAML or TOML files
// and registers them next to the built-in types.
//
// A catalog lists types; each type declares its fields (the first one is the
// primary field), optional pre-parse transforms and its match cascade:
//
//	types:
//	  - name: sku
//	    scale: nominal
//	    continuity: discrete
//	    description: Stock keeping unit
//	    pre_parse: [trim, upper]
//	    fields:
//	      - {name: sku, type: text}
//	      - {name: number, type: int}
//	    matches:
//	      - name: sku
//	        pattern: '^(?P<sku>SKU-(?P<number>${count}))$'
//	        template: '{sku}'
//
// Patterns may reference built-in fragments as ${name}; see Fragments.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/idataframe/internal/core"
)

var (
	ErrInvalidCatalog    = errors.New("invalid catalog")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Catalog is a set of user-defined types.
type Catalog struct {
	Types []TypeSpec `yaml:"types" toml:"types"`
}

// TypeSpec declares one semantic type.
type TypeSpec struct {
	Name        string      `yaml:"name" toml:"name"`
	Description string      `yaml:"description" toml:"description"`
	Scale       string      `yaml:"scale" toml:"scale"`
	Continuity  string      `yaml:"continuity" toml:"continuity"`
	PreParse    []string    `yaml:"pre_parse" toml:"pre_parse"`
	Fields      []FieldSpec `yaml:"fields" toml:"fields"`
	Matches     []MatchSpec `yaml:"matches" toml:"matches"`
}

// FieldSpec declares one field of a type.
type FieldSpec struct {
	Name      string `yaml:"name" toml:"name"`
	Type      string `yaml:"type" toml:"type"`           // text, int, int-floor, float, numeric
	Normalize string `yaml:"normalize" toml:"normalize"` // Optional, see Normalizers
}

// MatchSpec declares one cascade entry.
type MatchSpec struct {
	Name     string `yaml:"name" toml:"name"`
	Pattern  string `yaml:"pattern" toml:"pattern"`
	Template string `yaml:"template" toml:"template"`
}

// Load reads and validates a catalog file. The format is chosen by extension.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes and validates a catalog. ext is the file extension
// (".yaml", ".yml" or ".toml").
func Parse(data []byte, ext string) (*Catalog, error) {
	var c Catalog

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidCatalog, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("%w: parse toml: %v", ErrInvalidCatalog, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (use .yaml, .yml or .toml)", ErrUnsupportedFormat, ext)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every type by building a probe classifier from it, so
// malformed schemas, patterns and templates surface at load time.
func (c *Catalog) Validate() error {
	if len(c.Types) == 0 {
		return fmt.Errorf("%w: no types defined", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(c.Types))
	for i, spec := range c.Types {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return fmt.Errorf("%w: type %d has no name", ErrInvalidCatalog, i+1)
		}
		if seen[name] {
			return fmt.Errorf("%w: type %q defined twice", ErrInvalidCatalog, name)
		}
		seen[name] = true

		def, err := spec.Definition()
		if err != nil {
			return fmt.Errorf("%w: type %q: %v", ErrInvalidCatalog, name, err)
		}
		if _, err := def.New([]any{""}); err != nil {
			return fmt.Errorf("%w: type %q: %v", ErrInvalidCatalog, name, err)
		}
	}
	return nil
}

// Names returns the type names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Types))
	for i, spec := range c.Types {
		names[i] = spec.Name
	}
	return names
}

// Install registers every type of the catalog. Nothing is registered when a
// name collides with an existing type.
func (c *Catalog) Install() error {
	defs := make([]core.TypeDefinition, 0, len(c.Types))
	for _, spec := range c.Types {
		if _, exists := core.Get(spec.Name); exists {
			return fmt.Errorf("%w: type %q is already registered", ErrInvalidCatalog, spec.Name)
		}
		def, err := spec.Definition()
		if err != nil {
			return fmt.Errorf("%w: type %q: %v", ErrInvalidCatalog, spec.Name, err)
		}
		defs = append(defs, def)
	}

	for _, def := range defs {
		core.Register(def)
	}
	return nil
}

// Definition converts the type declaration into a registry entry.
func (s TypeSpec) Definition() (core.TypeDefinition, error) {
	desc := core.TypeDescriptor{
		Name:        strings.TrimSpace(s.Name),
		Description: s.Description,
		Scale:       core.Nominal,
		Continuity:  core.Discrete,
	}

	var err error
	if s.Scale != "" {
		if desc.Scale, err = core.ParseScaleKind(strings.ToLower(s.Scale)); err != nil {
			return core.TypeDefinition{}, err
		}
	}
	if s.Continuity != "" {
		if desc.Continuity, err = core.ParseContinuity(strings.ToLower(s.Continuity)); err != nil {
			return core.TypeDefinition{}, err
		}
	}

	if len(s.Fields) == 0 {
		return core.TypeDefinition{}, fmt.Errorf("%w: at least one field is required", core.ErrInvalidSchema)
	}
	if len(s.Matches) == 0 {
		return core.TypeDefinition{}, fmt.Errorf("%w: at least one match is required", core.ErrInvalidMatch)
	}

	schema := make(core.Schema, 0, len(s.Fields))
	for _, f := range s.Fields {
		field, err := buildField(f)
		if err != nil {
			return core.TypeDefinition{}, err
		}
		schema = append(schema, field)
	}

	preParse := make([]func(string) string, 0, len(s.PreParse))
	for _, name := range s.PreParse {
		fn, ok := Transforms[strings.ToLower(name)]
		if !ok {
			return core.TypeDefinition{}, fmt.Errorf("%w: unknown transform %q (use %s)",
				core.ErrInvalidTransform, name, strings.Join(sortedKeys(Transforms), ", "))
		}
		preParse = append(preParse, fn)
	}

	matches := make([]MatchSpec, len(s.Matches))
	for i, m := range s.Matches {
		pattern, err := expandFragments(m.Pattern)
		if err != nil {
			return core.TypeDefinition{}, fmt.Errorf("match %q: %w", m.Name, err)
		}
		matches[i] = MatchSpec{Name: m.Name, Pattern: pattern, Template: m.Template}
	}

	newFn := func(cells []any, opts ...core.Option) (*core.Classifier, error) {
		all := append([]core.Option{core.WithDescriptor(desc)}, opts...)
		c, err := core.New(cells, schema, all...)
		if err != nil {
			return nil, err
		}
		for _, fn := range preParse {
			if err := c.AddPreParseFn(fn); err != nil {
				return nil, err
			}
		}
		for _, m := range matches {
			if err := c.AddMatch(m.Name, m.Pattern, m.Template); err != nil {
				return nil, err
			}
		}
		return c, nil
	}

	return core.TypeDefinition{Descriptor: desc, New: newFn}, nil
}

func buildField(f FieldSpec) (core.FieldSpec, error) {
	var normalizer func(string) string
	if f.Normalize != "" {
		fn, ok := Normalizers[strings.ToLower(f.Normalize)]
		if !ok {
			return core.FieldSpec{}, fmt.Errorf("%w: field %q: unknown normalizer %q (use %s)",
				core.ErrInvalidSchema, f.Name, f.Normalize, strings.Join(sortedKeys(Normalizers), ", "))
		}
		normalizer = fn
	}

	switch strings.ToLower(f.Type) {
	case "", "text":
		return core.TextField(f.Name, normalizer), nil
	case "int", "integer":
		return core.IntField(f.Name, normalizer), nil
	case "int-floor":
		return core.IntFloorField(f.Name, normalizer), nil
	case "float":
		return core.FloatField(f.Name, normalizer), nil
	case "numeric":
		return core.NumericField(f.Name, normalizer), nil
	default:
		return core.FieldSpec{}, fmt.Errorf("%w: field %q: unknown type %q (use text, int, int-floor, float or numeric)",
			core.ErrInvalidSchema, f.Name, f.Type)
	}
}

func sortedKeys(m map[string]func(string) string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
