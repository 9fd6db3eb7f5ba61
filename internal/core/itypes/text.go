package itypes

import "github.com/JonMunkholm/idataframe/internal/core"

// ReText accepts any cell.
const ReText = `.*`

var (
	labelDescriptor = core.TypeDescriptor{
		Name:        "label",
		Scale:       core.Nominal,
		Continuity:  core.Discrete,
		Description: "Unordered categorical text",
	}
	textDescriptor = core.TypeDescriptor{
		Name:        "text",
		Scale:       core.Nominal,
		Continuity:  core.Discrete,
		Description: "Unordered text, mostly unique values",
	}
	gradeDescriptor = core.TypeDescriptor{
		Name:        "grade",
		Scale:       core.Ordinal,
		Continuity:  core.Discrete,
		Description: "Ordered text",
	}
)

func init() {
	core.Register(core.TypeDefinition{Descriptor: labelDescriptor, New: NewLabel})
	core.Register(core.TypeDefinition{Descriptor: textDescriptor, New: NewText})
	core.Register(core.TypeDefinition{Descriptor: gradeDescriptor, New: NewGrade})
}

// NewLabel classifies categorical text with few distinct values.
func NewLabel(cells []any, opts ...core.Option) (*core.Classifier, error) {
	return newFreeText(cells, labelDescriptor, opts)
}

// NewText classifies free text.
func NewText(cells []any, opts ...core.Option) (*core.Classifier, error) {
	return newFreeText(cells, textDescriptor, opts)
}

// NewGrade classifies ordered text such as "i", "ii", "iii".
func NewGrade(cells []any, opts ...core.Option) (*core.Classifier, error) {
	return newFreeText(cells, gradeDescriptor, opts)
}

func newFreeText(cells []any, desc core.TypeDescriptor, opts []core.Option) (*core.Classifier, error) {
	schema := core.Schema{core.TextField(desc.Name, nil)}
	matches := []matchDef{
		{name: desc.Name, pattern: anchored(desc.Name, ReText), template: "{" + desc.Name + "}"},
	}
	return build(cells, desc, schema, matches, nil, opts)
}
