// Package pool implements a generic fixed-capacity object pool.
//
// The pool owns every instance for its whole lifetime; callers receive a
// borrowed pointer plus a stable handle, never ownership. "Available" and
// "in-use" are disjoint sets whose union is the whole pool, and an object
// is in exactly one of them at any instant.
//
// The pool is not goroutine-safe: the game loop is single-threaded and every
// pool is touched only by the update tick.
package pool

import "errors"

var (
	// ErrExhausted is returned by Acquire when no object is available and
	// growth is disallowed. Recoverable: the caller skips the requested
	// action (drops a spawn) instead of failing the frame.
	ErrExhausted = errors.New("pool: exhausted")

	// ErrInvalidRelease is returned by Release for a handle that is not
	// currently in use. It indicates a caller bug; log and ignore.
	ErrInvalidRelease = errors.New("pool: invalid release")
)

// Handle is a stable index into the pool's arena. Handles stay valid across
// release/acquire cycles; holding a handle never implies ownership.
type Handle int

// Pool is a fixed or growable arena of reusable T instances.
type Pool[T any] struct {
	items   []*T
	factory func() T
	reset   func(*T)
	grow    bool

	free  []Handle // stack: last released is acquired first
	inUse []Handle // acquire order, oldest first
	used  []bool   // indexed by handle
}

// New creates a pool with size pre-constructed objects.
// factory builds one object; reset (optional) is applied on release.
// With allowGrowth the pool appends new objects instead of exhausting.
func New[T any](size int, factory func() T, reset func(*T), allowGrowth bool) *Pool[T] {
	p := &Pool[T]{
		items:   make([]*T, 0, size),
		factory: factory,
		reset:   reset,
		grow:    allowGrowth,
		free:    make([]Handle, 0, size),
		inUse:   make([]Handle, 0, size),
		used:    make([]bool, 0, size),
	}
	for i := 0; i < size; i++ {
		obj := factory()
		p.items = append(p.items, &obj)
		p.used = append(p.used, false)
		p.free = append(p.free, Handle(i))
	}
	return p
}

// Acquire moves an available object to in-use and returns it.
// The returned pointer is borrowed: valid until Release, never to be freed.
// Acquire order among available objects is unspecified.
func (p *Pool[T]) Acquire() (Handle, *T, error) {
	if len(p.free) == 0 {
		if !p.grow {
			return 0, nil, ErrExhausted
		}
		obj := p.factory()
		h := Handle(len(p.items))
		p.items = append(p.items, &obj)
		p.used = append(p.used, true)
		p.inUse = append(p.inUse, h)
		return h, p.items[h], nil
	}

	h := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.used[h] = true
	p.inUse = append(p.inUse, h)
	return h, p.items[h], nil
}

// Release returns an in-use object to the available set, applying reset.
// Releasing a handle that is not in use returns ErrInvalidRelease and
// leaves the pool untouched.
func (p *Pool[T]) Release(h Handle) error {
	if int(h) < 0 || int(h) >= len(p.items) || !p.used[h] {
		return ErrInvalidRelease
	}

	if p.reset != nil {
		p.reset(p.items[h])
	}
	p.used[h] = false
	for i, u := range p.inUse {
		if u == h {
			p.inUse = append(p.inUse[:i], p.inUse[i+1:]...)
			break
		}
	}
	p.free = append(p.free, h)
	return nil
}

// ReleaseAll returns every in-use object to available, applying reset to
// each. Used on state transitions so no stale objects leak into the next
// session.
func (p *Pool[T]) ReleaseAll() {
	for _, h := range p.inUse {
		if p.reset != nil {
			p.reset(p.items[h])
		}
		p.used[h] = false
		p.free = append(p.free, h)
	}
	p.inUse = p.inUse[:0]
}

// Get returns the borrowed pointer for a handle, or nil if the handle is out
// of range.
func (p *Pool[T]) Get(h Handle) *T {
	if int(h) < 0 || int(h) >= len(p.items) {
		return nil
	}
	return p.items[h]
}

// InUse returns the in-use handles in acquire order. The slice is owned by
// the pool; callers that release while iterating must copy it first.
func (p *Pool[T]) InUse() []Handle {
	return p.inUse
}

// AvailableCount returns the number of available objects.
func (p *Pool[T]) AvailableCount() int {
	return len(p.free)
}

// InUseCount returns the number of in-use objects.
func (p *Pool[T]) InUseCount() int {
	return len(p.inUse)
}

// Size returns the total number of objects owned by the pool.
func (p *Pool[T]) Size() int {
	return len(p.items)
}
