package game

import "testing"

func seg(i int) Rect {
	return Rect{X: i * 5, Y: 300, W: 10, H: 10}
}

func TestTrail_BoundedAfterOverflow(t *testing.T) {
	const bound = 4
	tr := NewTrail(bound)
	for i := 1; i <= 10; i++ {
		tr.Push(seg(i))
	}
	segs := tr.Segments()
	if len(segs) != bound || tr.Len() != bound {
		t.Fatalf("expected %d segments, got len(Segments)=%d Len=%d", bound, len(segs), tr.Len())
	}
	if segs[0] != seg(10) {
		t.Fatalf("expected newest segment %v first, got %v", seg(10), segs[0])
	}
	if segs[bound-1] != seg(7) {
		t.Fatalf("expected oldest kept segment %v last, got %v", seg(7), segs[bound-1])
	}
}

func TestTrail_OrderNewestFirst(t *testing.T) {
	tr := NewTrail(10)
	for i := 1; i <= 3; i++ {
		tr.Push(seg(i))
	}
	segs := tr.Segments()
	for i, want := range []Rect{seg(3), seg(2), seg(1)} {
		if segs[i] != want {
			t.Fatalf("segment %d = %v, want %v", i, segs[i], want)
		}
		if tr.At(i) != want {
			t.Fatalf("At(%d) = %v, want %v", i, tr.At(i), want)
		}
	}
}

func TestTrail_SegmentsIsCopy(t *testing.T) {
	tr := NewTrail(3)
	tr.Push(seg(1))
	segs := tr.Segments()
	segs[0] = seg(99)
	if tr.At(0) != seg(1) {
		t.Fatal("mutating Segments() result should not change the trail")
	}
}

func TestTrail_Reset(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(seg(i))
	}
	tr.Reset()
	if tr.Len() != 0 || len(tr.Segments()) != 0 {
		t.Fatalf("expected empty trail after Reset, got %d", tr.Len())
	}
	if tr.Cap() != 3 {
		t.Fatalf("expected capacity 3 after Reset, got %d", tr.Cap())
	}
	tr.Push(seg(7))
	if tr.At(0) != seg(7) || tr.Len() != 1 {
		t.Fatal("expected trail to accept pushes after Reset")
	}
}

func TestEventFeed_KeepsRecentTail(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+3; i++ {
		f.Add(LogEntry{Tick: i})
	}
	recent := f.Recent()
	if len(recent) != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, len(recent))
	}
	if recent[0].Tick != 3 || recent[len(recent)-1].Tick != feedMaxEntries+2 {
		t.Fatalf("expected ticks 3..%d oldest first, got %d..%d",
			feedMaxEntries+2, recent[0].Tick, recent[len(recent)-1].Tick)
	}
}

func TestTrail_OverlapsMatchesAnyOverlap(t *testing.T) {
	tr := NewTrail(4)
	for i := 1; i <= 6; i++ {
		tr.Push(seg(i))
	}
	boxes := []Rect{
		seg(6),
		seg(2), // evicted, still overlaps seg(3)
		{X: 0, Y: 0, W: 5, H: 5},
		{X: 31, Y: 305, W: 3, H: 3},
	}
	for _, b := range boxes {
		for _, skip := range []bool{false, true} {
			want := AnyOverlap(b, tr.Segments(), skip)
			if got := tr.Overlaps(b, skip); got != want {
				t.Fatalf("Overlaps(%v, skip=%v) = %v, AnyOverlap says %v", b, skip, got, want)
			}
		}
	}
	if !tr.Overlaps(seg(6), false) {
		t.Fatal("expected the newest segment to overlap itself")
	}
	if NewTrail(2).Overlaps(seg(1), false) {
		t.Fatal("expected an empty trail to overlap nothing")
	}
}

func TestTrail_EachVisitsNewestFirst(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.Push(seg(i))
	}
	var got []Rect
	tr.Each(func(r Rect) { got = append(got, r) })
	want := tr.Segments()
	if len(got) != len(want) {
		t.Fatalf("Each visited %d segments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each segment %d = %v, want %v", i, got[i], want[i])
		}
	}
}
