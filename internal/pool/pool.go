package pool

// Pool is a freelist of reusable *T values.
// Reduces GC pressure for short-lived records (search nodes, column scans)
// and counts outstanding values so leaks are observable.
//
// Not thread-safe: a pool is owned by the goroutine that runs the simulation tick.
type Pool[T any] struct {
	free        []*T
	reset       func(*T)
	outstanding int
	allocated   int
}

// New creates a pool. reset (optional) is applied to every value on Put,
// before it becomes available again.
func New[T any](prealloc int, reset func(*T)) *Pool[T] {
	p := &Pool[T]{
		free:  make([]*T, 0, prealloc),
		reset: reset,
	}
	for range prealloc {
		p.free = append(p.free, new(T))
		p.allocated++
	}
	return p
}

// Get returns a value from the freelist, allocating when it is empty.
func (p *Pool[T]) Get() *T {
	p.outstanding++
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return v
	}
	p.allocated++
	return new(T)
}

// Put returns v to the freelist. nil is ignored.
func (p *Pool[T]) Put(v *T) {
	if v == nil {
		return
	}
	if p.reset != nil {
		p.reset(v)
	}
	p.outstanding--
	p.free = append(p.free, v)
}

// Outstanding returns the number of values handed out by Get and not yet Put back.
func (p *Pool[T]) Outstanding() int {
	return p.outstanding
}

// Allocated returns the total number of values ever allocated by the pool.
func (p *Pool[T]) Allocated() int {
	return p.allocated
}

// Idle returns the number of values sitting in the freelist.
func (p *Pool[T]) Idle() int {
	return len(p.free)
}
