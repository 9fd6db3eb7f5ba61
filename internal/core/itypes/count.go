package itypes

import "github.com/JonMunkholm/idataframe/internal/core"

// ReCount is an unsigned integer.
const ReCount = `\+?[0-9]+`

var (
	countDescriptor = core.TypeDescriptor{
		Name:        "count",
		Scale:       core.Interval,
		Continuity:  core.Discrete,
		Description: "Positive integer, fractions rounded half to even",
	}
	countFloorDescriptor = core.TypeDescriptor{
		Name:        "count-floor",
		Scale:       core.Interval,
		Continuity:  core.Discrete,
		Description: "Positive integer, fractions rounded down",
	}
)

func init() {
	core.Register(core.TypeDefinition{
		Descriptor: countDescriptor,
		New: func(cells []any, opts ...core.Option) (*core.Classifier, error) {
			return NewCount(cells, false, opts...)
		},
	})
	core.Register(core.TypeDefinition{
		Descriptor: countFloorDescriptor,
		New: func(cells []any, opts ...core.Option) (*core.Classifier, error) {
			return NewCount(cells, true, opts...)
		},
	})
}

// NewCount classifies positive integers. Positive fractional amounts are
// accepted by a second entry and rounded, down when roundToFloor is set.
func NewCount(cells []any, roundToFloor bool, opts ...core.Option) (*core.Classifier, error) {
	desc := countDescriptor
	field := core.IntField("count", nil)
	if roundToFloor {
		desc = countFloorDescriptor
		field = core.IntFloorField("count", nil)
	}

	matches := []matchDef{
		{name: "count", pattern: anchored("count", ReCount), template: "{count}"},
		{name: "amount -> count", pattern: anchored("count", ReAmount), template: "{count}"},
	}
	return build(cells, desc, core.Schema{field}, matches, nil, opts)
}
