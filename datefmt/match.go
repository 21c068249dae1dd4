package datefmt

import "strings"

// Assignment is one field value recovered from an input string.
type Assignment struct {
	Field Field
	Value int
}

// matcher holds the state of one Match call. The assignment slice is the
// choice-point stack: an attempt pushes, and a failed continuation pops.
type matcher struct {
	segments []Segment
	input    string
	stack    []Assignment
}

// Match walks the template and input together. Placeholders offering more
// than one width try the widest first and fall back to narrower widths only
// when the rest of the template cannot match, so "%Y%m%d" against "2018115"
// reads month 11 and day 5. Malformed input reports false, never an error.
func (t *Template) Match(input string) ([]Assignment, bool) {
	m := &matcher{segments: t.segments, input: input}
	if !m.search(0, 0) {
		return nil, false
	}
	return m.stack, true
}

func (m *matcher) search(seg, pos int) bool {
	for seg < len(m.segments) && m.segments[seg].IsLiteral() {
		lit := m.segments[seg].Literal
		if !strings.HasPrefix(m.input[pos:], lit) {
			return false
		}
		seg++
		pos += len(lit)
	}

	if seg == len(m.segments) {
		return pos == len(m.input)
	}

	kind := m.segments[seg].Kind
	for _, w := range kind.Widths {
		v, ok := readDigits(m.input, pos, w)
		if !ok || !kind.accept(v) {
			continue
		}

		m.stack = append(m.stack, Assignment{Field: kind.Field, Value: v + kind.Offset})
		if m.search(seg+1, pos+w) {
			return true
		}
		m.stack = m.stack[:len(m.stack)-1]
	}
	return false
}

// readDigits parses exactly n ASCII digits at pos. Signs are rejected.
func readDigits(s string, pos, n int) (int, bool) {
	if pos+n > len(s) {
		return 0, false
	}

	v := 0
	for i := pos; i < pos+n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
