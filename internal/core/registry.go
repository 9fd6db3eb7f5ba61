package core

import (
	"fmt"
	"sort"
	"sync"
)

// ScaleKind is the measurement scale of a semantic type.
type ScaleKind int

const (
	Nominal ScaleKind = iota
	Ordinal
	Interval
	Ratio
)

// String implements fmt.Stringer.
func (s ScaleKind) String() string {
	switch s {
	case Nominal:
		return "nominal"
	case Ordinal:
		return "ordinal"
	case Interval:
		return "interval"
	case Ratio:
		return "ratio"
	default:
		return "unknown"
	}
}

// ParseScaleKind converts a scale name to a ScaleKind.
func ParseScaleKind(s string) (ScaleKind, error) {
	for _, k := range []ScaleKind{Nominal, Ordinal, Interval, Ratio} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown scale %q (use nominal, ordinal, interval or ratio)", s)
}

// Continuity tells whether a semantic type takes discrete or continuous values.
type Continuity int

const (
	Discrete Continuity = iota
	Continuous
)

// String implements fmt.Stringer.
func (c Continuity) String() string {
	if c == Continuous {
		return "continuous"
	}
	return "discrete"
}

// ParseContinuity converts a continuity name to a Continuity.
func ParseContinuity(s string) (Continuity, error) {
	switch s {
	case "discrete":
		return Discrete, nil
	case "continuous":
		return Continuous, nil
	}
	return 0, fmt.Errorf("unknown continuity %q (use discrete or continuous)", s)
}

// TypeDescriptor names a semantic type and tags it with its scale and continuity.
type TypeDescriptor struct {
	Name        string // Unique identifier: "email"
	Scale       ScaleKind
	Continuity  Continuity
	Description string // Display text: "Email address"
}

// Constructor builds a configured Classifier for a column.
type Constructor func(cells []any, opts ...Option) (*Classifier, error)

// TypeDefinition contains everything needed to classify a column as one type.
type TypeDefinition struct {
	Descriptor TypeDescriptor
	New        Constructor
}

var (
	registry   = make(map[string]TypeDefinition)
	registryMu sync.RWMutex
)

// Register adds a type definition to the registry.
// Panics if a type with the same name is already registered.
func Register(def TypeDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Descriptor.Name]; exists {
		panic(fmt.Sprintf("type already registered: %s", def.Descriptor.Name))
	}
	if def.New == nil {
		panic(fmt.Sprintf("type %s has no constructor", def.Descriptor.Name))
	}

	registry[def.Descriptor.Name] = def
}

// Get returns a type definition by name.
// Returns false if not found.
func Get(name string) (TypeDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[name]
	return def, ok
}

// All returns all registered type definitions.
// Sorted by scale then by name for consistent ordering.
func All() []TypeDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]TypeDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Descriptor.Scale != result[j].Descriptor.Scale {
			return result[i].Descriptor.Scale < result[j].Descriptor.Scale
		}
		return result[i].Descriptor.Name < result[j].Descriptor.Name
	})

	return result
}

// ByScale returns all type definitions on a scale, sorted by name.
func ByScale(scale ScaleKind) []TypeDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var result []TypeDefinition
	for _, def := range registry {
		if def.Descriptor.Scale == scale {
			result = append(result, def)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Descriptor.Name < result[j].Descriptor.Name
	})

	return result
}

// Scales returns every scale with at least one registered type, in scale order.
func Scales() []ScaleKind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[ScaleKind]bool)
	for _, def := range registry {
		seen[def.Descriptor.Scale] = true
	}

	scales := make([]ScaleKind, 0, len(seen))
	for s := range seen {
		scales = append(scales, s)
	}

	sort.Slice(scales, func(i, j int) bool { return scales[i] < scales[j] })
	return scales
}

// TypeCount returns the number of registered types.
func TypeCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered types.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]TypeDefinition)
}

// Unregister removes a type. It reports whether the type was registered.
func Unregister(name string) bool {
	registryMu.Lock()
	defer registryMu.Unlock()

	_, ok := registry[name]
	delete(registry, name)
	return ok
}

// NewByName builds a Classifier for cells using a registered type.
func NewByName(name string, cells []any, opts ...Option) (*Classifier, error) {
	def, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return def.New(cells, opts...)
}
