package hrir

import "fmt"

// Entry is one direction's responses, as passed to [NewTable].
type Entry struct {
	Direction Direction
	Left      []float32
	Right     []float32
}

type pairStorage struct {
	left  Buffer
	right Buffer
}

// Table is an immutable set of filter pairs, one per canonical direction.
type Table struct {
	sampleRate int
	pairs      [NumDirections]pairStorage
}

// NewTable builds a table from entries. Every canonical direction must appear
// exactly once and every response must hold exactly [Length] samples.
func NewTable(sampleRate int, entries []Entry) (*Table, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSampleRate, sampleRate)
	}

	t := &Table{sampleRate: sampleRate}
	var seen [NumDirections]bool
	for _, e := range entries {
		if !e.Direction.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrDirection, uint8(e.Direction))
		}
		if seen[e.Direction] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, e.Direction)
		}
		if len(e.Left) != Length || len(e.Right) != Length {
			return nil, fmt.Errorf("%w: %s has %d/%d samples, want %d",
				ErrBufferLength, e.Direction, len(e.Left), len(e.Right), Length)
		}
		seen[e.Direction] = true
		copy(t.pairs[e.Direction].left[:], e.Left)
		copy(t.pairs[e.Direction].right[:], e.Right)
	}
	for d, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingDirection, Direction(d))
		}
	}
	return t, nil
}

// SampleRate returns the sample rate the responses were measured at.
func (t *Table) SampleRate() int {
	return t.sampleRate
}

// Pair returns the filter pair stored for d. Invalid directions resolve to
// [Fallback].
func (t *Table) Pair(d Direction) FilterPair {
	if !d.Valid() {
		d = Fallback
	}
	p := &t.pairs[d]
	return FilterPair{Left: &p.left, Right: &p.right}
}

// ForAzimuth returns the filter pair for the sector containing az. It never
// fails: non-finite azimuths return the [Fallback] pair.
func (t *Table) ForAzimuth(az float64) FilterPair {
	d, _ := Classify(az)
	return t.Pair(d)
}

// PairFor is like ForAzimuth but also reports the selected direction and
// returns [ErrNonFiniteAzimuth] when the fallback was used.
func (t *Table) PairFor(az float64) (FilterPair, Direction, error) {
	d, err := Classify(az)
	return t.Pair(d), d, err
}
