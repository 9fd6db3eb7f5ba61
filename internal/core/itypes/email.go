package itypes

import (
	"fmt"
	"strings"

	"github.com/JonMunkholm/idataframe/internal/core"
)

// Email address parts.
const (
	ReUsername = `[a-zA-Z][a-zA-Z0-9._%+\-]*`
	ReDomain   = `[a-zA-Z][a-zA-Z.\-]+\.[a-zA-Z]{2,}`
)

var emailDescriptor = core.TypeDescriptor{
	Name:        "email",
	Scale:       core.Nominal,
	Continuity:  core.Discrete,
	Description: "Email address",
}

func init() {
	core.Register(core.TypeDefinition{Descriptor: emailDescriptor, New: NewEmail})
}

// NewEmail classifies email addresses. The username and domain are
// lowercased and kept as auxiliary columns.
func NewEmail(cells []any, opts ...core.Option) (*core.Classifier, error) {
	schema := core.Schema{
		core.TextField("email", nil),
		core.TextField("username", strings.ToLower),
		core.TextField("domain", strings.ToLower),
	}
	matches := []matchDef{
		{
			name:     "username@domain",
			pattern:  fmt.Sprintf(`^(?P<username>%s)@(?P<domain>%s)$`, ReUsername, ReDomain),
			template: "{username}@{domain}",
		},
	}
	return build(cells, emailDescriptor, schema, matches, nil, opts)
}
