package interval

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

func span(from, to int) Interval {
	return MustNew(at(from), at(to))
}

func TestNew_RejectsEmptyAndInverted(t *testing.T) {
	_, err := New(at(10), at(10))
	require.ErrorIs(t, err, ErrEmptyInterval)

	_, err = New(at(10), at(5))
	require.ErrorIs(t, err, ErrEmptyInterval)

	iv, err := New(at(0), at(1))
	require.NoError(t, err)
	assert.Equal(t, time.Minute, iv.Duration())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", span(0, 10), span(20, 30), false},
		{"touching is not overlapping", span(0, 10), span(10, 20), false},
		{"partial", span(0, 10), span(5, 15), true},
		{"contained", span(0, 30), span(10, 20), true},
		{"identical", span(0, 10), span(0, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestSubtract_Cases(t *testing.T) {
	tests := []struct {
		name    string
		segment Interval
		blocker Interval
		want    []Interval
	}{
		{"no overlap passes through", span(0, 10), span(20, 30), []Interval{span(0, 10)}},
		{"fully covered", span(10, 20), span(0, 30), []Interval{}},
		{"exactly covered", span(10, 20), span(10, 20), []Interval{}},
		{"middle third", span(0, 30), span(10, 20), []Interval{span(0, 10), span(20, 30)}},
		{"left overlap", span(0, 30), span(-10, 10), []Interval{span(10, 30)}},
		{"right overlap", span(0, 30), span(20, 40), []Interval{span(0, 20)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtract([]Interval{tt.segment}, tt.blocker)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubtractAll_RemovesEveryBlocker(t *testing.T) {
	got := SubtractAll([]Interval{span(0, 60)}, []Interval{span(10, 20), span(30, 40), span(55, 90)})

	assert.Equal(t, []Interval{span(0, 10), span(20, 30), span(40, 55)}, got)
	assert.Equal(t, 35*time.Minute, TimelineSet(got).Total())
}

func TestSubtractAll_NothingLeft(t *testing.T) {
	got := SubtractAll([]Interval{span(0, 60)}, []Interval{span(0, 30), span(25, 60)})
	assert.Empty(t, got)
}

// Removed duration must equal the overlap, and no remnant may be empty.
func TestSubtract_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randomInterval := func() Interval {
		start := rng.Intn(10_000)
		length := 1 + rng.Intn(5_000)

		return MustNew(base.Add(time.Duration(start)*time.Millisecond), base.Add(time.Duration(start+length)*time.Millisecond))
	}

	for i := 0; i < 20_000; i++ {
		segment := randomInterval()
		blocker := randomInterval()

		remnants := Subtract([]Interval{segment}, blocker)
		require.LessOrEqual(t, len(remnants), 2)

		for _, r := range remnants {
			require.True(t, r.Start.Before(r.End), "empty remnant %v from %v - %v", r, segment, blocker)
			require.False(t, Overlaps(r, blocker))
			require.False(t, r.Start.Before(segment.Start))
			require.False(t, r.End.After(segment.End))
		}

		var overlapDuration time.Duration
		if ov, ok := Overlap(segment, blocker); ok {
			overlapDuration = ov.Duration()
		}
		removed := segment.Duration() - TimelineSet(remnants).Total()
		require.Equal(t, overlapDuration, removed, "segment %v blocker %v", segment, blocker)
	}
}

func TestOverlap(t *testing.T) {
	ov, ok := Overlap(span(0, 30), span(20, 50))
	require.True(t, ok)
	assert.Equal(t, span(20, 30), ov)

	_, ok = Overlap(span(0, 10), span(10, 20))
	assert.False(t, ok)
}

func TestNewTimelineSet_OrdersAndDropsEmpty(t *testing.T) {
	set := NewTimelineSet(span(30, 40), Interval{Start: at(5), End: at(5)}, span(0, 10))

	require.Len(t, set, 2)
	assert.Equal(t, span(0, 10), set[0])
	assert.Equal(t, int64(20*60*1000), set.TotalMillis())
}
