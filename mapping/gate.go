// Package mapping provides access to host-mapped device memory.
//
// A Gate covers the bytes of one live buffer mapping. Typed views read
// and write elements through the gate and check every index against the
// element count the view was created with. The mapped address is never
// handed out; once the gate is closed every access panics.
package mapping

import (
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/gfxvk/gfx"
)

// Gate errors.
var (
	// ErrClosed is returned when using a gate after its mapping ended.
	ErrClosed = errors.New("mapping: gate is closed")

	// ErrAccess is returned for reads through a write-only gate and writes
	// through a read-only gate.
	ErrAccess = errors.New("mapping: access not granted")

	// ErrRange is returned for byte ranges outside the mapping.
	ErrRange = errors.New("mapping: range out of bounds")
)

// Gate is a live mapping of size bytes at ptr.
type Gate struct {
	ptr    unsafe.Pointer
	size   int
	stride int
	access gfx.Access
	closed atomic.Bool
	unmap  func() error
}

// NewGate wraps size bytes of mapped memory at ptr. stride is the element
// size of the mapped buffer, zero for raw bytes. unmap, if not nil, is
// called once by Close.
func NewGate(ptr unsafe.Pointer, size, stride int, access gfx.Access, unmap func() error) *Gate {
	return &Gate{ptr: ptr, size: size, stride: stride, access: access, unmap: unmap}
}

// Len returns the mapped size in bytes.
func (g *Gate) Len() int { return g.size }

// Stride returns the element size of the mapped buffer, or zero.
func (g *Gate) Stride() int { return g.stride }

// Elements returns the number of whole elements of the mapped buffer.
func (g *Gate) Elements() int {
	if g.stride <= 0 {
		return g.size
	}
	return g.size / g.stride
}

// Access returns the granted access.
func (g *Gate) Access() gfx.Access { return g.access }

// Closed reports whether the mapping has ended.
func (g *Gate) Closed() bool { return g.closed.Load() }

func (g *Gate) check(off, n int, need gfx.Access) error {
	if g.closed.Load() {
		return ErrClosed
	}
	if !g.access.Contains(need) {
		return errors.Wrapf(ErrAccess, "%v through %v gate", need, g.access)
	}
	if off < 0 || n < 0 || off > g.size-n {
		return errors.Wrapf(ErrRange, "[%d, %d) of %d bytes", off, off+n, g.size)
	}
	return nil
}

func (g *Gate) bytes(off, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Add(g.ptr, off)), n)
}

// ReadAt copies mapped bytes starting at off into p.
func (g *Gate) ReadAt(p []byte, off int64) (int, error) {
	if err := g.check(int(off), len(p), gfx.AccessRead); err != nil {
		return 0, err
	}
	return copy(p, g.bytes(int(off), len(p))), nil
}

// WriteAt copies p into mapped memory starting at off.
func (g *Gate) WriteAt(p []byte, off int64) (int, error) {
	if err := g.check(int(off), len(p), gfx.AccessWrite); err != nil {
		return 0, err
	}
	return copy(g.bytes(int(off), len(p)), p), nil
}

// Close ends the mapping. A second Close returns ErrClosed.
func (g *Gate) Close() error {
	if !g.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	if g.unmap != nil {
		return g.unmap()
	}
	return nil
}
