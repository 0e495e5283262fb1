package game

// ring is a fixed-capacity buffer that overwrites its oldest element once full.
type ring[T any] struct {
	items []T
	head  int // next write index
	count int
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{items: make([]T, capacity)}
}

func (r *ring[T]) push(v T) {
	r.items[r.head] = v
	r.head = (r.head + 1) % len(r.items)
	if r.count < len(r.items) {
		r.count++
	}
}

// at returns the i-th most recent element (0 = newest).
func (r *ring[T]) at(i int) T {
	n := len(r.items)
	return r.items[(r.head-1-i+n)%n]
}

func (r *ring[T]) newestFirst() []T {
	out := make([]T, r.count)
	for i := range out {
		out[i] = r.at(i)
	}
	return out
}

func (r *ring[T]) oldestFirst() []T {
	out := make([]T, r.count)
	for i := range out {
		out[i] = r.at(r.count - 1 - i)
	}
	return out
}

func (r *ring[T]) reset() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.head = 0
	r.count = 0
}
