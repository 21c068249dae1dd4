package datefmt

import (
	"time"

	"github.com/bytom/timepart/locale"
)

// Assemble applies assignments in order onto 1970-01-01T00:00:00.000 in the
// policy's location. A field assigned twice keeps its last value. Fields
// outside the calendar (e.g. February 31) roll over into the next unit.
func Assemble(assignments []Assignment, policy *locale.Policy) time.Time {
	if policy == nil {
		policy = locale.UTC
	}

	fields := [len(fieldNames)]int{
		Year:  1970,
		Month: 1,
		Day:   1,
	}
	for _, a := range assignments {
		if a.Field < 0 || int(a.Field) >= len(fields) {
			continue
		}
		fields[a.Field] = a.Value
	}

	return time.Date(
		fields[Year],
		time.Month(fields[Month]),
		fields[Day],
		fields[Hour],
		fields[Minute],
		fields[Second],
		fields[Millisecond]*int(time.Millisecond),
		policy.Location(),
	)
}
