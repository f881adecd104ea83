package query

// Placeholder modifiers. A byte after '?' that is none of these is template
// text.
const (
	ModInt        byte = 'd'
	ModFloat      byte = 'f'
	ModArray      byte = 'a'
	ModIdentifier byte = '#'
)

func isModifier(c byte) bool {
	switch c {
	case ModInt, ModFloat, ModArray, ModIdentifier:
		return true
	}
	return false
}

// format renders v for a placeholder. mod overrides inference from the value's
// type; zero means a bare '?', which accepts only scalars.
func (f formatter) format(mod byte, v any) (string, error) {
	switch mod {
	case ModInt:
		return f.formatInt(v)
	case ModFloat:
		return f.formatFloatArg(v)
	case ModArray:
		return f.formatArray(v)
	case ModIdentifier:
		return f.formatIdentifier(v)
	}
	return f.formatValue(v)
}
