package datefmt

import "strings"

// Segment is either a literal run or a placeholder.
type Segment struct {
	Literal string
	Kind    *Kind
}

// IsLiteral reports whether the segment is literal text.
func (s Segment) IsLiteral() bool {
	return s.Kind == nil
}

// Template is the compiled form of a raw template string. It is immutable
// once compiled and may be shared by any number of goroutines.
type Template struct {
	raw      string
	segments []Segment
}

// Compile scans raw left to right. A '%' followed by a placeholder letter
// becomes a placeholder, "%%" becomes a literal '%', and any other '%x' pair
// or a trailing lone '%' is kept as literal text. Compile never fails.
func Compile(raw string) *Template {
	t := &Template{raw: raw}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, Segment{Literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}

		i++
		if i == len(raw) {
			lit.WriteByte('%')
			break
		}

		next := raw[i]
		if next == '%' {
			lit.WriteByte('%')
			continue
		}
		if k, ok := kinds[next]; ok {
			flush()
			t.segments = append(t.segments, Segment{Kind: k})
			continue
		}
		lit.WriteByte('%')
		lit.WriteByte(next)
	}
	flush()
	return t
}

// Raw returns the string the template was compiled from.
func (t *Template) Raw() string {
	return t.raw
}

// Segments returns a copy of the compiled segments.
func (t *Template) Segments() []Segment {
	return append([]Segment(nil), t.segments...)
}

// Fields returns the distinct fields the template encodes, in first
// occurrence order.
func (t *Template) Fields() []Field {
	var seen [len(fieldNames)]bool
	var fields []Field
	for _, s := range t.segments {
		if s.IsLiteral() || seen[s.Kind.Field] {
			continue
		}
		seen[s.Kind.Field] = true
		fields = append(fields, s.Kind.Field)
	}
	return fields
}

// String returns a canonical raw form with the same matching semantics:
// literal '%' is written as "%%".
func (t *Template) String() string {
	var b strings.Builder
	for _, s := range t.segments {
		if s.IsLiteral() {
			b.WriteString(strings.ReplaceAll(s.Literal, "%", "%%"))
			continue
		}
		b.WriteString(s.Kind.String())
	}
	return b.String()
}
