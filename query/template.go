package query

import "strings"

type segmentKind uint8

const (
	segmentLiteral segmentKind = iota
	segmentPlaceholder
	segmentBlock
)

// segment is a piece of a compiled template. Literal and block segments carry
// text (a block's text is its body without the braces); placeholders carry
// their modifier, zero when bare.
type segment struct {
	kind segmentKind
	text string
	mod  byte
}

// template is a query split into literal runs and markers, in source order.
type template struct {
	segments []segment
}

// compile scans tpl once. A '{' is closed by the nearest following '}';
// blocks cannot nest. With blocks disabled a '{...}' section is dropped and
// consumes no argument.
func compile(tpl string, blocks bool) (*template, error) {
	t := &template{}
	last := 0
	for i := 0; i < len(tpl); i++ {
		switch tpl[i] {
		case '?':
			t.literal(tpl[last:i])
			var mod byte
			if i+1 < len(tpl) && isModifier(tpl[i+1]) {
				mod = tpl[i+1]
				i++
			}
			t.segments = append(t.segments, segment{kind: segmentPlaceholder, mod: mod})
			last = i + 1

		case '{':
			t.literal(tpl[last:i])
			end := strings.IndexByte(tpl[i+1:], '}')
			if end < 0 {
				return nil, ErrUnclosedBlock
			}
			end += i + 1
			if blocks {
				t.segments = append(t.segments, segment{kind: segmentBlock, text: tpl[i+1 : end]})
				}
			i = end
			last = end + 1
		}
	}
	t.literal(tpl[last:])
	return t, nil
}

func (t *template) literal(s string) {
	if s == "" {
		return
	}
	t.segments = append(t.segments, segment{kind: segmentLiteral, text: s})
}
