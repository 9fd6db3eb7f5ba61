package itypes

import "github.com/JonMunkholm/idataframe/internal/core"

// US street address parts.
const (
	ReAddressNumber = `[0-9\-/]+[a-zA-Z]?`
	ReStreet        = `[a-zA-Z0-9.' ]+`
	ReSecondary     = `.*`

	reSpace     = `[ ]+`
	reSeparator = `[ ]*[,#][ ]*`
)

var addressDescriptor = core.TypeDescriptor{
	Name:        "address",
	Scale:       core.Nominal,
	Continuity:  core.Discrete,
	Description: "US street address",
}

func init() {
	core.Register(core.TypeDefinition{Descriptor: addressDescriptor, New: NewAddress})
}

// NewAddress classifies US street addresses into number, direction, street
// and secondary unit. The canonical form puts the direction before the
// street: "320 Central Park West, 4a" becomes "320 W Central Park, 4A".
func NewAddress(cells []any, opts ...core.Option) (*core.Classifier, error) {
	schema := core.Schema{
		core.TextField("address", nil),
		core.TextField("number", nil),
		core.TextField("direction", NormalizeDirection),
		core.TextField("street", NormalizeStreet),
		core.TextField("secondary", NormalizeSecondary),
	}
	return build(cells, addressDescriptor, schema, addressMatches(), []func(string) string{StripNotAvailable}, opts)
}

func addressMatches() []matchDef {
	number := `(?P<number>` + ReAddressNumber + `)`
	direction := `(?P<direction>` + ReDirection + `)`
	street := `(?P<street>` + ReStreet + `)`
	secondary := `(?P<secondary>` + ReSecondary + `)`

	full := func(parts ...string) string {
		p := "^"
		for _, part := range parts {
			p += part
		}
		return p + "$"
	}

	return []matchDef{
		{
			name:     "number direction street, secondary",
			pattern:  full(number, reSpace, direction, reSpace, street, reSeparator, secondary),
			template: "{number} {direction} {street}, {secondary}",
		},
		{
			name:     "number street direction, secondary",
			pattern:  full(number, reSpace, street, reSpace, direction, reSeparator, secondary),
			template: "{number} {direction} {street}, {secondary}",
		},
		{
			name:     "number street, secondary",
			pattern:  full(number, reSpace, street, reSeparator, secondary),
			template: "{number} {street}, {secondary}",
		},
		{
			name:     "number direction street",
			pattern:  full(number, reSpace, direction, reSpace, street),
			template: "{number} {direction} {street}",
		},
		{
			name:     "number street direction",
			pattern:  full(number, reSpace, street, reSpace, direction),
			template: "{number} {direction} {street}",
		},
		{
			name:     "number street",
			pattern:  full(number, reSpace, street),
			template: "{number} {street}",
		},
		{
			name:     "direction street",
			pattern:  full(direction, reSpace, street),
			template: "{direction} {street}",
		},
		{
			name:     "street direction",
			pattern:  full(street, reSpace, direction),
			template: "{direction} {street}",
		},
		{
			name:     "street",
			pattern:  full(street),
			template: "{street}",
		},
	}
}

// AddressMatchNames returns the address cascade entry names in trial order.
func AddressMatchNames() []string {
	defs := addressMatches()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.name
	}
	return names
}
