package datefmt

import "fmt"

// Field identifies the calendar field a placeholder reads or writes.
type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
	Millisecond
)

var fieldNames = [...]string{
	Year:        "year",
	Month:       "month",
	Day:         "day",
	Hour:        "hour",
	Minute:      "minute",
	Second:      "second",
	Millisecond: "millisecond",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Kind describes one placeholder letter.
type Kind struct {
	Letter byte
	Field  Field
	// Widths are tried in order when matching, widest first.
	Widths []int
	Lower  int
	Upper  int
	Offset int
	// Pad is the zero-padded render width, 0 renders the bare number.
	Pad int
}

func (k *Kind) String() string {
	return "%" + string(k.Letter)
}

var kinds = map[byte]*Kind{
	'Y': {Letter: 'Y', Field: Year, Widths: []int{4}, Lower: 1970, Upper: 9999, Pad: 4},
	'y': {Letter: 'y', Field: Year, Widths: []int{2}, Lower: 0, Upper: 99, Offset: 2000, Pad: 2},
	'M': {Letter: 'M', Field: Month, Widths: []int{2}, Lower: 1, Upper: 12, Pad: 2},
	'm': {Letter: 'm', Field: Month, Widths: []int{2, 1}, Lower: 1, Upper: 12},
	'D': {Letter: 'D', Field: Day, Widths: []int{2}, Lower: 1, Upper: 31, Pad: 2},
	'd': {Letter: 'd', Field: Day, Widths: []int{2, 1}, Lower: 1, Upper: 31},
	'H': {Letter: 'H', Field: Hour, Widths: []int{2}, Lower: 0, Upper: 23, Pad: 2},
	'h': {Letter: 'h', Field: Hour, Widths: []int{2, 1}, Lower: 0, Upper: 23},
	'I': {Letter: 'I', Field: Minute, Widths: []int{2}, Lower: 0, Upper: 59, Pad: 2},
	'i': {Letter: 'i', Field: Minute, Widths: []int{2, 1}, Lower: 0, Upper: 59},
	'S': {Letter: 'S', Field: Second, Widths: []int{2}, Lower: 0, Upper: 59, Pad: 2},
	's': {Letter: 's', Field: Second, Widths: []int{2, 1}, Lower: 0, Upper: 59},
	'Z': {Letter: 'Z', Field: Millisecond, Widths: []int{3}, Lower: 0, Upper: 999, Pad: 3},
}

// LookupKind returns the placeholder kind for letter, if any.
func LookupKind(letter byte) (*Kind, bool) {
	k, ok := kinds[letter]
	return k, ok
}

// accept reports whether v, read from the input, is inside the declared range.
func (k *Kind) accept(v int) bool {
	return v >= k.Lower && v <= k.Upper
}
