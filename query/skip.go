package query

// skip is unexported so the only way to obtain one is Skip. No value a caller
// builds for a placeholder can be mistaken for it.
type skip struct{}

// Skip returns the argument that omits its conditional block:
//
//	b.Build("SELECT name FROM users WHERE id = ?d{ AND block = ?d}", 7, query.Skip())
//	// SELECT name FROM users WHERE id = 7
func Skip() any {
	return skip{}
}

func IsSkip(v any) bool {
	_, ok := v.(skip)
	return ok
}
