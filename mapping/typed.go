package mapping

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/gfxvk/gfx"
)

// ErrElementSize is returned when a typed view cannot be laid over a gate.
var ErrElementSize = errors.New("mapping: element size does not fit mapping")

// view is the element arithmetic shared by the typed accessors. Indexing
// past Len panics; the memory beyond it belongs to the driver.
type view[T any] struct {
	gate *Gate
	n    int
}

func newView[T any](g *Gate, need gfx.Access) (view[T], error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return view[T]{}, errors.Wrap(ErrElementSize, "zero-sized element")
	}
	// Byte views are always allowed; wider elements must match the stride.
	if size > 1 && g.stride > 0 && g.stride != size {
		return view[T]{}, errors.Wrapf(ErrElementSize, "element is %d bytes, buffer stride is %d", size, g.stride)
	}
	if err := g.check(0, 0, need); err != nil {
		return view[T]{}, err
	}
	return view[T]{gate: g, n: g.size / size}, nil
}

func (v view[T]) ptr(i int) *T {
	if v.gate.Closed() {
		panic(ErrClosed)
	}
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("mapping: index %d out of range [0, %d)", i, v.n))
	}
	var zero T
	return (*T)(unsafe.Add(v.gate.ptr, uintptr(i)*unsafe.Sizeof(zero)))
}

func (v view[T]) slice() []T {
	if v.gate.Closed() {
		panic(ErrClosed)
	}
	if v.n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.gate.ptr), v.n)
}

// Reader reads elements of type T from a mapping.
type Reader[T any] struct{ v view[T] }

// NewReader lays a read view of T over g.
func NewReader[T any](g *Gate) (*Reader[T], error) {
	v, err := newView[T](g, gfx.AccessRead)
	if err != nil {
		return nil, err
	}
	return &Reader[T]{v}, nil
}

// Len returns the number of elements.
func (r *Reader[T]) Len() int { return r.v.n }

// At returns element i.
func (r *Reader[T]) At(i int) T { return *r.v.ptr(i) }

// CopyTo copies elements into dst and returns the number copied.
func (r *Reader[T]) CopyTo(dst []T) int { return copy(dst, r.v.slice()) }

// Gate returns the underlying gate.
func (r *Reader[T]) Gate() *Gate { return r.v.gate }

// Writer writes elements of type T into a mapping.
type Writer[T any] struct{ v view[T] }

// NewWriter lays a write view of T over g.
func NewWriter[T any](g *Gate) (*Writer[T], error) {
	v, err := newView[T](g, gfx.AccessWrite)
	if err != nil {
		return nil, err
	}
	return &Writer[T]{v}, nil
}

// Len returns the number of elements.
func (w *Writer[T]) Len() int { return w.v.n }

// Set stores x as element i.
func (w *Writer[T]) Set(i int, x T) { *w.v.ptr(i) = x }

// CopyFrom copies elements from src and returns the number copied.
func (w *Writer[T]) CopyFrom(src []T) int { return copy(w.v.slice(), src) }

// Gate returns the underlying gate.
func (w *Writer[T]) Gate() *Gate { return w.v.gate }

// ReadWriter reads and writes elements of type T in a mapping.
type ReadWriter[T any] struct{ v view[T] }

// NewReadWriter lays a read-write view of T over g.
func NewReadWriter[T any](g *Gate) (*ReadWriter[T], error) {
	v, err := newView[T](g, gfx.AccessReadWrite)
	if err != nil {
		return nil, err
	}
	return &ReadWriter[T]{v}, nil
}

// Len returns the number of elements.
func (rw *ReadWriter[T]) Len() int { return rw.v.n }

// At returns element i.
func (rw *ReadWriter[T]) At(i int) T { return *rw.v.ptr(i) }

// Set stores x as element i.
func (rw *ReadWriter[T]) Set(i int, x T) { *rw.v.ptr(i) = x }

// CopyTo copies elements into dst and returns the number copied.
func (rw *ReadWriter[T]) CopyTo(dst []T) int { return copy(dst, rw.v.slice()) }

// CopyFrom copies elements from src and returns the number copied.
func (rw *ReadWriter[T]) CopyFrom(src []T) int { return copy(rw.v.slice(), src) }

// Gate returns the underlying gate.
func (rw *ReadWriter[T]) Gate() *Gate { return rw.v.gate }
