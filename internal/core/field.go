package core

// TextField returns a text field. The normalizer may be nil.
func TextField(name string, normalizer func(string) string) FieldSpec {
	return FieldSpec{Name: name, Type: FieldText, Coerce: coerceText, Normalizer: normalizer}
}

// IntField returns an integer field that rounds fractional input half to even.
func IntField(name string, normalizer func(string) string) FieldSpec {
	return FieldSpec{Name: name, Type: FieldInteger, Coerce: coerceInt, Normalizer: normalizer}
}

// IntFloorField returns an integer field that rounds fractional input down.
func IntFloorField(name string, normalizer func(string) string) FieldSpec {
	return FieldSpec{Name: name, Type: FieldInteger, Coerce: coerceIntFloor, Normalizer: normalizer}
}

// FloatField returns a float field accepting plain decimal and scientific notation.
func FloatField(name string, normalizer func(string) string) FieldSpec {
	return FieldSpec{Name: name, Type: FieldFloat, Coerce: coerceFloat, Normalizer: normalizer}
}

// NumericField returns a float field that additionally understands currency
// symbols, thousands separators and accounting negatives.
func NumericField(name string, normalizer func(string) string) FieldSpec {
	return FieldSpec{Name: name, Type: FieldFloat, Coerce: coerceNumeric, Normalizer: normalizer}
}
