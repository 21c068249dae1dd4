// Package datefmt formats and parses time-partitioned names such as
// "data/%Y/%m/%d" or "hadoop/t2/%Y%M%D%H%I/ad".
//
// Placeholders:
//
//	%Y  4-digit year (1970~9999)      %y  2-digit year, read as 20xx
//	%M  2-digit month (01~12)         %m  1 or 2 digit month (1~12)
//	%D  2-digit day (01~31)           %d  1 or 2 digit day (1~31)
//	%H  2-digit hour (00~23)          %h  1 or 2 digit hour (0~23)
//	%I  2-digit minute (00~59)        %i  1 or 2 digit minute (0~59)
//	%S  2-digit second (00~59)        %s  1 or 2 digit second (0~59)
//	%Z  3-digit millisecond (000~999) %%  the character '%'
//
// Any other '%x' pair, and a trailing lone '%', is plain text on both sides.
//
// When parsing, a 1-or-2 digit placeholder tries two digits first and falls
// back to one digit only if the remainder of the input cannot match: given
// "%Y%m%d" and "2018115" the result is 2018-11-05, not 2018-01-15.
package datefmt

import (
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/bytom/timepart/locale"
)

// ErrNoMatch is the cause of every error returned for input the template
// cannot produce.
var ErrNoMatch = errors.New("datefmt: input does not match template")

var templates = NewCache(256)

type state struct {
	tmpl   *Template
	policy *locale.Policy
}

// DateFormat pairs a compiled template with a calendar policy. Both are
// replaced as a unit, so SetTemplate and SetLocale may run concurrently with
// formatting and parsing.
type DateFormat struct {
	state atomic.Value
}

// New compiles template for use under policy. A nil policy is locale.UTC.
func New(template string, policy *locale.Policy) *DateFormat {
	if policy == nil {
		policy = locale.UTC
	}

	f := &DateFormat{}
	f.state.Store(&state{tmpl: templates.Compile(template), policy: policy})
	return f
}

func (f *DateFormat) load() *state {
	return f.state.Load().(*state)
}

// SetTemplate replaces the template.
func (f *DateFormat) SetTemplate(template string) {
	s := f.load()
	f.state.Store(&state{tmpl: templates.Compile(template), policy: s.policy})
}

// SetLocale replaces the calendar policy.
func (f *DateFormat) SetLocale(policy *locale.Policy) {
	if policy == nil {
		policy = locale.UTC
	}
	s := f.load()
	f.state.Store(&state{tmpl: s.tmpl, policy: policy})
}

// Template returns the active compiled template.
func (f *DateFormat) Template() *Template {
	return f.load().tmpl
}

// Locale returns the active calendar policy.
func (f *DateFormat) Locale() *locale.Policy {
	return f.load().policy
}

// Format renders t in the policy's location.
func (f *DateFormat) Format(t time.Time) string {
	s := f.load()
	return s.tmpl.Render(t.In(s.policy.Location()))
}

// ParseAssignments returns the raw field assignments for str.
func (f *DateFormat) ParseAssignments(str string) ([]Assignment, error) {
	as, ok := f.load().tmpl.Match(str)
	if !ok {
		return nil, errors.Wrapf(ErrNoMatch, "%q", str)
	}
	return as, nil
}

// Parse recovers the time str was rendered from. Fields the template does not
// encode keep their epoch value.
func (f *DateFormat) Parse(str string) (time.Time, error) {
	s := f.load()
	as, ok := s.tmpl.Match(str)
	if !ok {
		return time.Time{}, errors.Wrapf(ErrNoMatch, "%q", str)
	}
	return Assemble(as, s.policy), nil
}

// Matches reports whether str can be parsed.
func (f *DateFormat) Matches(str string) bool {
	_, ok := f.load().tmpl.Match(str)
	return ok
}

// NextPartition parses label, moves it by deltaSeconds and renders it again.
// The step is applied in whole seconds and is not bounded by time.Duration.
func (f *DateFormat) NextPartition(label string, deltaSeconds int64) (string, error) {
	s := f.load()
	as, ok := s.tmpl.Match(label)
	if !ok {
		return "", errors.Wrapf(ErrNoMatch, "%q", label)
	}

	t := Assemble(as, s.policy)
	t = time.Unix(t.Unix()+deltaSeconds, int64(t.Nanosecond())).In(s.policy.Location())
	return s.tmpl.Render(t), nil
}
