package mapping

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/gfxvk/gfx"
)

func newTestGate(t *testing.T, size, stride int, access gfx.Access) (*Gate, []byte) {
	t.Helper()
	// uint64 backing keeps the memory aligned for wider element types.
	backing := make([]uint64, (size+7)/8)
	mem := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), size)
	return NewGate(unsafe.Pointer(&mem[0]), size, stride, access, nil), mem
}

func TestGateReadWrite(t *testing.T) {
	g, mem := newTestGate(t, 16, 0, gfx.AccessReadWrite)
	if n, err := g.WriteAt([]byte{1, 2, 3}, 4); n != 3 || err != nil {
		t.Fatalf("WriteAt() = (%d, %v)", n, err)
	}
	if mem[4] != 1 || mem[6] != 3 {
		t.Errorf("memory = %v", mem[:8])
	}
	buf := make([]byte, 2)
	if n, err := g.ReadAt(buf, 5); n != 2 || err != nil || buf[0] != 2 || buf[1] != 3 {
		t.Errorf("ReadAt() = (%d, %v) %v", n, err, buf)
	}
}

func TestGateErrors(t *testing.T) {
	tests := []struct {
		name   string
		access gfx.Access
		call   func(g *Gate) error
		want   error
	}{
		{"read through write-only", gfx.AccessWrite, func(g *Gate) error {
			_, err := g.ReadAt(make([]byte, 1), 0)
			return err
		}, ErrAccess},
		{"write through read-only", gfx.AccessRead, func(g *Gate) error {
			_, err := g.WriteAt([]byte{1}, 0)
			return err
		}, ErrAccess},
		{"past end", gfx.AccessReadWrite, func(g *Gate) error {
			_, err := g.WriteAt(make([]byte, 4), 14)
			return err
		}, ErrRange},
		{"negative offset", gfx.AccessReadWrite, func(g *Gate) error {
			_, err := g.ReadAt(make([]byte, 1), -1)
			return err
		}, ErrRange},
		{"closed", gfx.AccessReadWrite, func(g *Gate) error {
			_ = g.Close()
			_, err := g.ReadAt(make([]byte, 1), 0)
			return err
		}, ErrClosed},
		{"typed view of wrong stride", gfx.AccessRead, func(g *Gate) error {
			_, err := NewReader[uint64](g)
			return err
		}, ErrElementSize},
		{"zero-sized element", gfx.AccessRead, func(g *Gate) error {
			_, err := NewReader[struct{}](g)
			return err
		}, ErrElementSize},
		{"writer over read-only", gfx.AccessRead, func(g *Gate) error {
			_, err := NewWriter[uint32](g)
			return err
		}, ErrAccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGate(t, 16, 4, tt.access)
			if err := tt.call(g); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCloseOnce(t *testing.T) {
	calls := 0
	g := NewGate(nil, 0, 0, gfx.AccessRead, func() error {
		calls++
		return nil
	})
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}
	if err := g.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() = %v, want ErrClosed", err)
	}
	if calls != 1 || !g.Closed() {
		t.Errorf("unmap called %d times, Closed() = %v", calls, g.Closed())
	}
}

func TestTypedViews(t *testing.T) {
	g, mem := newTestGate(t, 16, 4, gfx.AccessReadWrite)

	w, err := NewWriter[uint32](g)
	if err != nil {
		t.Fatal(err)
	}
	if w.Len() != 4 || g.Elements() != 4 {
		t.Fatalf("Len() = %d, Elements() = %d", w.Len(), g.Elements())
	}
	w.Set(1, 0x04030201)
	if mem[4] != 0x01 && mem[7] != 0x01 {
		t.Errorf("element 1 not written: %v", mem[4:8])
	}
	if n := w.CopyFrom([]uint32{9, 8, 7, 6, 5}); n != 4 {
		t.Errorf("CopyFrom() = %d, want 4", n)
	}

	r, err := NewReader[uint32](g)
	if err != nil {
		t.Fatal(err)
	}
	if r.At(3) != 6 {
		t.Errorf("At(3) = %d, want 6", r.At(3))
	}
	dst := make([]uint32, 2)
	if n := r.CopyTo(dst); n != 2 || dst[0] != 9 || dst[1] != 8 {
		t.Errorf("CopyTo() = %d %v", n, dst)
	}

	bytes, err := NewReadWriter[byte](g)
	if err != nil {
		t.Fatalf("byte view rejected: %v", err)
	}
	if bytes.Len() != 16 {
		t.Errorf("byte Len() = %d", bytes.Len())
	}
	bytes.Set(0, 0xFF)
	if bytes.At(0) != 0xFF || r.Gate() != g {
		t.Error("byte view does not share the gate")
	}
}

func TestTypedViewPanics(t *testing.T) {
	g, _ := newTestGate(t, 8, 0, gfx.AccessReadWrite)
	rw, err := NewReadWriter[uint16](g)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		call func()
	}{
		{"index past end", func() { rw.Set(4, 1) }},
		{"negative index", func() { _ = rw.At(-1) }},
		{"after close", func() {
			_ = g.Close()
			_ = rw.At(0)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.call()
		})
	}
}
