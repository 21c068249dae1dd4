package datefmt

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrNoStrftime is returned for templates that have no strftime equivalent.
var ErrNoStrftime = errors.New("datefmt: no strftime equivalent")

var strftimeVerbs = map[byte]string{
	'Y': "%Y",
	'y': "%y",
	'M': "%m",
	'D': "%d",
	'H': "%H",
	'I': "%M",
	'S': "%S",
}

// Strftime converts the template to a strftime pattern rendering the same
// text. Only fixed-width placeholders other than %Z can be converted.
func (t *Template) Strftime() (string, error) {
	var b strings.Builder
	for _, s := range t.segments {
		if s.IsLiteral() {
			b.WriteString(strings.ReplaceAll(s.Literal, "%", "%%"))
			continue
		}

		verb, ok := strftimeVerbs[s.Kind.Letter]
		if !ok {
			return "", errors.Wrapf(ErrNoStrftime, "placeholder %s in %q", s.Kind, t.raw)
		}
		b.WriteString(verb)
	}
	return b.String(), nil
}
