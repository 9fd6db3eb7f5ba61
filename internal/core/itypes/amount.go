package itypes

import "github.com/JonMunkholm/idataframe/internal/core"

// Number patterns. The grouped forms accept currency symbols and thousands
// separators, which the numeric fields strip before conversion.
const (
	ReAmount  = `\+?(?:[0-9]+|[0-9]+\.[0-9]+|\.[0-9]+)(?:[eE][\-+]?[0-9]+)?`
	ReBalance = `[\-+]?(?:[0-9]+|[0-9]+\.[0-9]+|\.[0-9]+)(?:[eE][\-+]?[0-9]+)?`

	reCurrency = `[$€£][ ]*`
	reGrouped  = `[0-9]{1,3}(?:,[0-9]{3})+(?:\.[0-9]+)?`
	rePlain    = `(?:[0-9]+|[0-9]+\.[0-9]+|\.[0-9]+)`

	ReCurrencyAmount    = `(?:` + reCurrency + `)?\+?` + reGrouped + `|` + reCurrency + `\+?` + rePlain
	ReAccountingBalance = `\((?:` + reCurrency + `)?(?:` + reGrouped + `|` + rePlain + `)\)`
)

var (
	amountDescriptor = core.TypeDescriptor{
		Name:        "amount",
		Scale:       core.Ratio,
		Continuity:  core.Continuous,
		Description: "Positive number",
	}
	balanceDescriptor = core.TypeDescriptor{
		Name:        "balance",
		Scale:       core.Ratio,
		Continuity:  core.Continuous,
		Description: "Positive or negative number",
	}
)

func init() {
	core.Register(core.TypeDefinition{Descriptor: amountDescriptor, New: NewAmount})
	core.Register(core.TypeDefinition{Descriptor: balanceDescriptor, New: NewBalance})
}

// NewAmount classifies positive numbers, plain or written as currency.
func NewAmount(cells []any, opts ...core.Option) (*core.Classifier, error) {
	schema := core.Schema{core.NumericField("amount", nil)}
	matches := []matchDef{
		{name: "amount", pattern: anchored("amount", ReAmount), template: "{amount}"},
		{name: "currency amount", pattern: anchored("amount", ReCurrencyAmount), template: "{amount}"},
	}
	return build(cells, amountDescriptor, schema, matches, nil, opts)
}

// NewBalance classifies signed numbers. Accounting negatives such as
// "(1,200.00)" are accepted by a second entry.
func NewBalance(cells []any, opts ...core.Option) (*core.Classifier, error) {
	schema := core.Schema{core.NumericField("balance", nil)}
	matches := []matchDef{
		{name: "balance", pattern: anchored("balance", ReBalance), template: "{balance}"},
		{name: "accounting balance", pattern: anchored("balance", ReAccountingBalance), template: "{balance}"},
	}
	return build(cells, balanceDescriptor, schema, matches, nil, opts)
}
