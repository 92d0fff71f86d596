// Package handle maps opaque, generation-checked handles to resource
// records and destroys records when their last reference is released.
package handle

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrStale is returned for handles whose record has been destroyed or
// that were never issued.
var ErrStale = errors.New("handle: stale or unknown handle")

// ID addresses an arena slot. The generation changes every time a slot is
// reused, so IDs of destroyed records never resolve again. The zero ID is
// invalid.
type ID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether id is the invalid zero ID.
func (id ID) IsZero() bool { return id.gen == 0 }

func (id ID) String() string {
	return fmt.Sprintf("%d#%d", id.index, id.gen)
}

type slot[T any] struct {
	value T
	gen   uint32
	refs  int32
}

// Arena stores values in reusable slots with reference counts.
// Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// Insert stores v with a reference count of one.
func (a *Arena[T]) Insert(v T) ID {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[index]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.value = v
	s.refs = 1
	a.live++
	return ID{index: index, gen: s.gen}
}

func (a *Arena[T]) slot(id ID) (*slot[T], bool) {
	if id.IsZero() || int(id.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[id.index]
	if s.gen != id.gen || s.refs == 0 {
		return nil, false
	}
	return s, true
}

// Get returns the value addressed by id.
func (a *Arena[T]) Get(id ID) (T, error) {
	s, ok := a.slot(id)
	if !ok {
		var zero T
		return zero, ErrStale
	}
	return s.value, nil
}

// Retain adds a reference.
func (a *Arena[T]) Retain(id ID) error {
	s, ok := a.slot(id)
	if !ok {
		return ErrStale
	}
	s.refs++
	return nil
}

// Release drops a reference. When the last reference goes, the slot is
// freed and its value returned with freed set.
func (a *Arena[T]) Release(id ID) (v T, freed bool, err error) {
	s, ok := a.slot(id)
	if !ok {
		return v, false, ErrStale
	}
	s.refs--
	if s.refs > 0 {
		return v, false, nil
	}
	v = s.value
	var zero T
	s.value = zero
	a.free = append(a.free, id.index)
	a.live--
	return v, true, nil
}

// RefCount returns the number of references to id, or zero for stale IDs.
func (a *Arena[T]) RefCount(id ID) int {
	s, ok := a.slot(id)
	if !ok {
		return 0
	}
	return int(s.refs)
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return a.live }

// IDs returns the IDs of all live values.
func (a *Arena[T]) IDs() []ID {
	ids := make([]ID, 0, a.live)
	for i := range a.slots {
		s := &a.slots[i]
		if s.refs > 0 {
			ids = append(ids, ID{index: uint32(i), gen: s.gen})
		}
	}
	return ids
}

// forget frees the slot of id regardless of its reference count.
func (a *Arena[T]) forget(id ID) {
	s, ok := a.slot(id)
	if !ok {
		return
	}
	var zero T
	s.value = zero
	s.refs = 0
	a.free = append(a.free, id.index)
	a.live--
}
