// Package interval implements set operations over half-open time intervals [Start, End).
//
// Every function in this package is pure. Results never contain empty intervals.
package interval

import (
	"sort"
	"time"

	"tempo/internal/errors"
)

// ErrEmptyInterval is returned when an interval would not satisfy Start < End.
var ErrEmptyInterval = errors.New("interval start must be before end")

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// New builds an Interval, rejecting empty or inverted ranges.
func New(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, errors.Wrapf(ErrEmptyInterval, "start=%s end=%s", start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
	}

	return Interval{Start: start, End: end}, nil
}

// MustNew is New for literals known to be valid. It panics otherwise.
func MustNew(start, end time.Time) Interval {
	iv, err := New(start, end)
	if err != nil {
		panic(err)
	}

	return iv
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsEmpty reports whether the interval covers no time.
func (i Interval) IsEmpty() bool {
	return !i.Start.Before(i.End)
}

// Contains reports whether t falls inside [Start, End).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Overlaps reports whether a and b share any instant.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Overlap returns the intersection of a and b.
func Overlap(a, b Interval) (Interval, bool) {
	if !Overlaps(a, b) {
		return Interval{}, false
	}

	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}

	return Interval{Start: start, End: end}, true
}

// Subtract removes blocker from every segment. Overlapping segments yield their
// left and right remnants; the rest pass through unchanged.
func Subtract(segments []Interval, blocker Interval) []Interval {
	out := make([]Interval, 0, len(segments)+1)
	for _, seg := range segments {
		if seg.IsEmpty() {
			continue
		}
		if !Overlaps(seg, blocker) {
			out = append(out, seg)

			continue
		}
		if seg.Start.Before(blocker.Start) {
			out = append(out, Interval{Start: seg.Start, End: blocker.Start})
		}
		if blocker.End.Before(seg.End) {
			out = append(out, Interval{Start: blocker.End, End: seg.End})
		}
	}

	return out
}

// SubtractAll feeds segments through Subtract once per blocker.
func SubtractAll(segments []Interval, blockers []Interval) []Interval {
	out := segments
	for _, blocker := range blockers {
		if len(out) == 0 {
			break
		}
		out = Subtract(out, blocker)
	}

	return out
}

// TimelineSet is an ordered collection of non-empty intervals.
type TimelineSet []Interval

// NewTimelineSet copies the given intervals, drops empty ones and orders the rest by start.
func NewTimelineSet(intervals ...Interval) TimelineSet {
	set := make(TimelineSet, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			set = append(set, iv)
		}
	}
	sort.SliceStable(set, func(i, j int) bool {
		if set[i].Start.Equal(set[j].Start) {
			return set[i].End.Before(set[j].End)
		}

		return set[i].Start.Before(set[j].Start)
	})

	return set
}

// Total sums the duration of every interval in the set.
func (s TimelineSet) Total() time.Duration {
	var total time.Duration
	for _, iv := range s {
		total += iv.Duration()
	}

	return total
}

// TotalMillis is Total expressed in whole milliseconds.
func (s TimelineSet) TotalMillis() int64 {
	return s.Total().Milliseconds()
}
