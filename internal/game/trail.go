package game

// Trail is the bounded history of a player's past bodies, newest first.
// Once full, each push evicts the oldest segment.
type Trail struct {
	segs ring[Rect]
}

// NewTrail creates a trail holding at most maxLen segments. maxLen must be
// positive; Config.Validate enforces this before any trail is built.
func NewTrail(maxLen int) *Trail {
	return &Trail{segs: newRing[Rect](maxLen)}
}

// Push records r as the newest segment.
func (t *Trail) Push(r Rect) {
	t.segs.push(r)
}

// Segments returns a copy of the trail ordered newest to oldest.
func (t *Trail) Segments() []Rect {
	return t.segs.newestFirst()
}

// Each calls fn on every segment, newest first, without copying the trail.
func (t *Trail) Each(fn func(Rect)) {
	for i := 0; i < t.segs.count; i++ {
		fn(t.segs.at(i))
	}
}

// Overlaps is AnyOverlap over the stored segments, newest first, without
// copying them.
func (t *Trail) Overlaps(box Rect, skipFirst bool) bool {
	start := 0
	if skipFirst {
		start = 1
	}
	for i := start; i < t.segs.count; i++ {
		if Overlaps(box, t.segs.at(i)) {
			return true
		}
	}
	return false
}

// At returns the i-th newest segment. i must be in [0, Len()).
func (t *Trail) At(i int) Rect {
	return t.segs.at(i)
}

// Len returns the number of stored segments.
func (t *Trail) Len() int {
	return t.segs.count
}

// Cap returns the maximum number of segments.
func (t *Trail) Cap() int {
	return len(t.segs.items)
}

// Reset empties the trail without reallocating. Round.Reset uses it on restart.
func (t *Trail) Reset() {
	t.segs.reset()
}
