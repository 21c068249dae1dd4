// Package locale holds the calendar policy a date format interprets fields
// under. A policy is an explicit value handed to its users; nothing in this
// package reads process-wide defaults.
package locale

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/johngb/langreg"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidTag is returned for tags that are not ISO 639-1 language
	// codes, optionally followed by an ISO 3166-1 region.
	ErrInvalidTag = errors.New("locale: invalid tag")
	// ErrInvalidTimeZone is returned when the time zone cannot be loaded.
	ErrInvalidTimeZone = errors.New("locale: invalid time zone")
)

// UTC is the neutral policy: no language tag, UTC calendar.
var UTC = &Policy{loc: time.UTC}

// Policy is an immutable calendar policy.
type Policy struct {
	tag string
	loc *time.Location
}

// New validates tag and loads timeZone. Tags look like "en" or "en_US"; a
// hyphen separator is accepted and normalized. An empty timeZone means UTC.
func New(tag, timeZone string) (*Policy, error) {
	tag = strings.Replace(tag, "-", "_", 1)
	if !validTag(tag) {
		return nil, errors.Wrapf(ErrInvalidTag, "%q", tag)
	}

	loc := time.UTC
	if timeZone != "" {
		var err error
		if loc, err = time.LoadLocation(timeZone); err != nil {
			return nil, errors.Wrapf(ErrInvalidTimeZone, "%q: %v", timeZone, err)
		}
	}
	return &Policy{tag: tag, loc: loc}, nil
}

// WithLocation returns a policy carrying tag and an already loaded location.
func WithLocation(tag string, loc *time.Location) (*Policy, error) {
	p, err := New(tag, "")
	if err != nil {
		return nil, err
	}

	if loc != nil {
		p.loc = loc
	}
	return p, nil
}

func validTag(tag string) bool {
	switch len(tag) {
	case 0:
		return true
	case 2:
		return langreg.IsValidLanguageCode(tag)
	case 5:
		return langreg.IsValidLangRegCode(tag)
	}
	return false
}

// Tag returns the language tag, empty for the neutral policy.
func (p *Policy) Tag() string {
	return p.tag
}

// Location returns the calendar's time zone.
func (p *Policy) Location() *time.Location {
	return p.loc
}

func (p *Policy) String() string {
	if p.tag == "" {
		return p.loc.String()
	}
	return p.tag + "@" + p.loc.String()
}
