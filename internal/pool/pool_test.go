package pool

import (
	"errors"
	"testing"
)

type thing struct {
	n     int
	dirty bool
}

func newTestPool(size int, grow bool) *Pool[thing] {
	n := 0
	return New(size, func() thing {
		n++
		return thing{n: n}
	}, func(t *thing) {
		t.dirty = false
	}, grow)
}

func TestAcquireReleaseRestoresPartition(t *testing.T) {
	p := newTestPool(4, false)

	if p.AvailableCount() != 4 || p.InUseCount() != 0 {
		t.Fatalf("fresh pool partition = %d/%d", p.AvailableCount(), p.InUseCount())
	}

	h, obj, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if obj == nil {
		t.Fatal("Acquire returned nil object")
	}
	if p.AvailableCount() != 3 || p.InUseCount() != 1 {
		t.Errorf("after acquire partition = %d/%d", p.AvailableCount(), p.InUseCount())
	}

	obj.dirty = true
	if err := p.Release(h); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if p.AvailableCount() != 4 || p.InUseCount() != 0 {
		t.Errorf("after release partition = %d/%d", p.AvailableCount(), p.InUseCount())
	}
	if p.Get(h).dirty {
		t.Error("reset was not applied on release")
	}
}

func TestExhaustionWithoutGrowth(t *testing.T) {
	p := newTestPool(2, false)

	for i := 0; i < 2; i++ {
		if _, _, err := p.Acquire(); err != nil {
			t.Fatalf("Acquire %d: %v", i, err)
		}
	}

	_, obj, err := p.Acquire()
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
	if obj != nil {
		t.Error("exhausted Acquire must not hand out an object")
	}
	if p.Size() != 2 {
		t.Errorf("pool grew to %d with growth disallowed", p.Size())
	}
}

func TestGrowth(t *testing.T) {
	p := newTestPool(1, true)

	h1, _, _ := p.Acquire()
	h2, obj, err := p.Acquire()
	if err != nil {
		t.Fatalf("growth Acquire: %v", err)
	}
	if obj == nil || h1 == h2 {
		t.Error("growth must produce a distinct live object")
	}
	if p.Size() != 2 {
		t.Errorf("Size = %d after growth, expected 2", p.Size())
	}
}

func TestInvalidRelease(t *testing.T) {
	p := newTestPool(2, false)

	h, _, _ := p.Acquire()
	if err := p.Release(h); err != nil {
		t.Fatalf("Release: %v", err)
	}

	// Double release
	if err := p.Release(h); !errors.Is(err, ErrInvalidRelease) {
		t.Errorf("double release: expected ErrInvalidRelease, got %v", err)
	}
	// Out of range
	if err := p.Release(Handle(99)); !errors.Is(err, ErrInvalidRelease) {
		t.Errorf("out-of-range release: expected ErrInvalidRelease, got %v", err)
	}
	// Pool untouched either way
	if p.AvailableCount() != 2 || p.InUseCount() != 0 {
		t.Errorf("invalid release changed partition to %d/%d", p.AvailableCount(), p.InUseCount())
	}
}

func TestDoubleAcquireNeverAliases(t *testing.T) {
	p := newTestPool(3, false)

	seen := map[Handle]bool{}
	for i := 0; i < 3; i++ {
		h, _, err := p.Acquire()
		if err != nil {
			t.Fatalf("Acquire %d: %v", i, err)
		}
		if seen[h] {
			t.Fatalf("handle %d handed out twice", h)
		}
		seen[h] = true
	}
}

func TestReleaseAll(t *testing.T) {
	p := newTestPool(3, false)

	for i := 0; i < 3; i++ {
		_, obj, _ := p.Acquire()
		obj.dirty = true
	}

	p.ReleaseAll()
	if p.AvailableCount() != 3 || p.InUseCount() != 0 {
		t.Errorf("ReleaseAll partition = %d/%d", p.AvailableCount(), p.InUseCount())
	}
	for i := 0; i < 3; i++ {
		if p.Get(Handle(i)).dirty {
			t.Errorf("ReleaseAll skipped reset on handle %d", i)
		}
	}
}

func TestInUsePreservesAcquireOrder(t *testing.T) {
	p := newTestPool(4, false)

	var order []Handle
	for i := 0; i < 4; i++ {
		h, _, _ := p.Acquire()
		order = append(order, h)
	}

	// Drop the second acquired object; remaining order must be stable.
	if err := p.Release(order[1]); err != nil {
		t.Fatalf("Release: %v", err)
	}
	want := []Handle{order[0], order[2], order[3]}
	got := p.InUse()
	if len(got) != len(want) {
		t.Fatalf("InUse len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("InUse[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
}
