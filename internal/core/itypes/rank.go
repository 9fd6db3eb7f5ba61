package itypes

import "github.com/JonMunkholm/idataframe/internal/core"

// ReRank is a signed integer.
const ReRank = `[\+\-]?[0-9]+`

var rankDescriptor = core.TypeDescriptor{
	Name:        "rank",
	Scale:       core.Ordinal,
	Continuity:  core.Discrete,
	Description: "Ordered integers without a constant interval",
}

func init() {
	core.Register(core.TypeDefinition{Descriptor: rankDescriptor, New: NewRank})
}

// NewRank classifies signed integer ranks.
func NewRank(cells []any, opts ...core.Option) (*core.Classifier, error) {
	schema := core.Schema{core.IntField("rank", nil)}
	matches := []matchDef{
		{name: "rank", pattern: anchored("rank", ReRank), template: "{rank}"},
	}
	return build(cells, rankDescriptor, schema, matches, nil, opts)
}
