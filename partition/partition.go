// Package partition works with time-partitioned names: enumerating them,
// finding them on a filesystem and watching for new ones.
package partition

import (
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/bytom/timepart/datefmt"
)

const logModule = "partition"

var (
	// ErrInvalidDelta is returned for a non-positive step.
	ErrInvalidDelta = errors.New("partition: delta must be positive")
	// ErrStalled is returned when a step does not advance the label, which
	// happens when the delta is finer than the template's resolution.
	ErrStalled = errors.New("partition: step does not advance the label")
	// ErrLimit is returned when a range holds more labels than allowed.
	ErrLimit = errors.New("partition: too many labels")
)

// Partition is a label together with the time it encodes.
type Partition struct {
	Label string
	Time  time.Time
}

func sortPartitions(parts []Partition) {
	sort.SliceStable(parts, func(i, j int) bool {
		if !parts[i].Time.Equal(parts[j].Time) {
			return parts[i].Time.Before(parts[j].Time)
		}
		return parts[i].Label < parts[j].Label
	})
}

// Current returns the label of the partition containing clock.Now().
func Current(f *datefmt.DateFormat, clock clockwork.Clock) string {
	return f.Format(clock.Now())
}

// Floor returns the start of the partition containing t.
func Floor(f *datefmt.DateFormat, t time.Time) (time.Time, error) {
	return f.Parse(f.Format(t))
}

// Range returns the labels from `from` through `to`, stepping delta seconds.
// A limit of zero means no limit.
func Range(f *datefmt.DateFormat, from, to string, delta int64, limit int) ([]string, error) {
	if delta <= 0 {
		return nil, errors.Wrapf(ErrInvalidDelta, "delta %d", delta)
	}

	end, err := f.Parse(to)
	if err != nil {
		return nil, err
	}

	cur := from
	t, err := f.Parse(cur)
	if err != nil {
		return nil, err
	}

	var labels []string
	for !t.After(end) {
		if limit > 0 && len(labels) >= limit {
			return nil, errors.Wrapf(ErrLimit, "more than %d labels between %q and %q", limit, from, to)
		}
		labels = append(labels, cur)

		next, err := f.NextPartition(cur, delta)
		if err != nil {
			return nil, err
		}

		nt, err := f.Parse(next)
		if err != nil {
			return nil, errors.Wrapf(err, "next label of %q", cur)
		}

		if !nt.After(t) {
			return nil, errors.Wrapf(ErrStalled, "%q + %ds", cur, delta)
		}
		cur, t = next, nt
	}
	return labels, nil
}
