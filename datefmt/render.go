package datefmt

import (
	"strconv"
	"time"
)

func fieldValue(t time.Time, f Field) int {
	switch f {
	case Year:
		return t.Year()
	case Month:
		return int(t.Month())
	case Day:
		return t.Day()
	case Hour:
		return t.Hour()
	case Minute:
		return t.Minute()
	case Second:
		return t.Second()
	case Millisecond:
		return t.Nanosecond() / int(time.Millisecond)
	}
	return 0
}

// Render writes when through the template using its own location. Values wider
// than a placeholder's canonical width are written in full.
func (t *Template) Render(when time.Time) string {
	buf := make([]byte, 0, len(t.raw)+8)
	for _, s := range t.segments {
		if s.IsLiteral() {
			buf = append(buf, s.Literal...)
			continue
		}

		v := fieldValue(when, s.Kind.Field)
		if s.Kind.Letter == 'y' {
			v = (v%100 + 100) % 100
		}
		buf = appendPadded(buf, v, s.Kind.Pad)
	}
	return string(buf)
}

func appendPadded(buf []byte, v, width int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
		width--
	}
	digits := strconv.Itoa(v)
	for i := len(digits); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, digits...)
}
