package gfxvk

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/mapping"
	"github.com/gogpu/gfxvk/resource"
	"github.com/gogpu/gfxvk/vk"
	"github.com/gogpu/gfxvk/vk/soft"
)

func bufferRecord(t *testing.T, f *Factory, h handle.Buffer) *resource.Buffer {
	t.Helper()
	buf, err := f.Handles().Buffer(h)
	if err != nil {
		t.Fatalf("Buffer() error = %v", err)
	}
	return buf
}

func TestCreateBuffer(t *testing.T) {
	tests := []struct {
		name     string
		info     gfx.BufferInfo
		wantType uint32
		wantBits vk.BufferUsageFlags
	}{
		{
			name:     "vertex",
			info:     gfx.BufferInfo{Role: gfx.RoleVertex, Size: 96, Stride: 12},
			wantType: soft.TypeVideo,
			wantBits: vk.BufferUsageVertexBufferBit,
		},
		{
			name:     "constant dynamic",
			info:     gfx.BufferInfo{Role: gfx.RoleConstant, Usage: gfx.UsageDynamic, Size: 256},
			wantType: soft.TypeVideo,
			wantBits: vk.BufferUsageUniformBufferBit,
		},
		{
			name:     "staging readback",
			info:     gfx.BufferInfo{Role: gfx.RoleStaging, Usage: gfx.UsageCPUOnly(gfx.AccessRead), Size: 64},
			wantType: soft.TypeSystem,
			wantBits: vk.BufferUsageTransferSrcBit | vk.BufferUsageTransferDstBit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := soft.New()
			f := newTestFactory(t, dev)

			h, err := f.CreateBuffer(tt.info)
			if err != nil {
				t.Fatalf("CreateBuffer() error = %v", err)
			}
			buf := bufferRecord(t, f, h)
			info, mem, ok := dev.BufferInfo(buf.Native)
			if !ok {
				t.Fatal("native buffer not found")
			}
			if info.Size != vk.DeviceSize(tt.info.Size) {
				t.Errorf("Size = %d, want %d", info.Size, tt.info.Size)
			}
			if info.Usage&tt.wantBits != tt.wantBits {
				t.Errorf("Usage = %#x, want bits %#x", info.Usage, tt.wantBits)
			}
			if info.SharingMode != vk.SharingModeExclusive {
				t.Errorf("SharingMode = %v, want exclusive", info.SharingMode)
			}
			if mem != buf.Memory.Memory {
				t.Errorf("bound memory = %v, want %v", mem, buf.Memory.Memory)
			}
			if _, typeIndex, _ := dev.MemoryContents(mem); typeIndex != tt.wantType {
				t.Errorf("memory type = %d, want %d", typeIndex, tt.wantType)
			}
		})
	}
}

func TestCreateBufferRejectsDescriptor(t *testing.T) {
	tests := []struct {
		name string
		info gfx.BufferInfo
		want error
	}{
		{"zero size", gfx.BufferInfo{Role: gfx.RoleVertex}, ErrBufferSize},
		{"negative stride", gfx.BufferInfo{Role: gfx.RoleVertex, Size: 4, Stride: -1}, ErrBufferSize},
		{"unknown role", gfx.BufferInfo{Role: gfx.BufferRole(9), Size: 4}, ErrBufferRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := soft.New()
			f := newTestFactory(t, dev)
			before := dev.LiveTotal()

			_, err := f.CreateBuffer(tt.info)
			if !errors.Is(err, tt.want) {
				t.Fatalf("CreateBuffer() error = %v, want %v", err, tt.want)
			}
			var be *BufferError
			if !errors.As(err, &be) || be.Info != tt.info {
				t.Errorf("error = %#v, want *BufferError carrying the descriptor", err)
			}
			if dev.LiveTotal() != before {
				t.Errorf("LiveTotal() = %d, want %d", dev.LiveTotal(), before)
			}
		})
	}
}

func TestCreateBufferImmutable(t *testing.T) {
	dev := soft.New()
	f := newTestFactory(t, dev)

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	h, err := f.CreateBufferImmutable(data, 4, gfx.RoleVertex, 0)
	if err != nil {
		t.Fatalf("CreateBufferImmutable() error = %v", err)
	}
	buf := bufferRecord(t, f, h)
	if buf.Info.Usage != gfx.UsageImmutable {
		t.Errorf("Usage = %v, want Immutable", buf.Info.Usage)
	}
	if dev.Mapped(buf.Memory.Memory) {
		t.Error("memory left mapped")
	}
	if buf.MapState() != resource.MapStateUnmapped {
		t.Errorf("MapState() = %v", buf.MapState())
	}

	r, err := MapReadable[byte](f, h)
	if err != nil {
		t.Fatalf("MapReadable() error = %v", err)
	}
	got := make([]byte, r.Len())
	r.CopyTo(got)
	if !bytes.Equal(got, data) {
		t.Errorf("contents = %v, want %v", got, data)
	}
	if err := r.Gate().Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	calls := dev.MapCalls()
	if _, err := f.MapBuffer(h, gfx.AccessWrite); !errors.Is(err, ErrMapAccess) {
		t.Errorf("MapBuffer(immutable, write) error = %v, want ErrMapAccess", err)
	}
	if dev.MapCalls() != calls {
		t.Error("rejected mapping reached the driver")
	}
}

func TestMapWriteThenRead(t *testing.T) {
	dev := soft.New()
	f := newTestFactory(t, dev)

	h, err := f.CreateBuffer(gfx.BufferInfo{Role: gfx.RoleConstant, Usage: gfx.UsageDynamic, Size: 256})
	if err != nil {
		t.Fatal(err)
	}

	w, err := MapWritable[byte](f, h)
	if err != nil {
		t.Fatalf("MapWritable() error = %v", err)
	}
	if w.Len() != 256 {
		t.Fatalf("Len() = %d, want 256", w.Len())
	}
	for i := 0; i < w.Len(); i++ {
		w.Set(i, 0xAA)
	}
	if err := f.Unmap(h); err != nil {
		t.Fatalf("Unmap() error = %v", err)
	}
	if !w.Gate().Closed() {
		t.Error("gate still open after Unmap")
	}

	r, err := MapReadable[byte](f, h)
	if err != nil {
		t.Fatalf("MapReadable() error = %v", err)
	}
	got := make([]byte, r.Len())
	r.CopyTo(got)
	if !bytes.Equal(got, bytes.Repeat([]byte{0xAA}, 256)) {
		t.Errorf("read back %x", got)
	}
	if err := r.Gate().Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	buf := bufferRecord(t, f, h)
	if dev.Mapped(buf.Memory.Memory) {
		t.Error("memory still mapped")
	}
}

func TestMapReadWriteTyped(t *testing.T) {
	f := newTestFactory(t, soft.New())

	h, err := f.CreateBuffer(gfx.BufferInfo{Role: gfx.RoleVertex, Usage: gfx.UsageDynamic, Size: 32, Stride: 4})
	if err != nil {
		t.Fatal(err)
	}
	rw, err := MapReadWrite[float32](f, h)
	if err != nil {
		t.Fatalf("MapReadWrite() error = %v", err)
	}
	defer rw.Gate().Close()

	if rw.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", rw.Len())
	}
	rw.CopyFrom([]float32{0.5, 1, 1.5, 2})
	rw.Set(7, -1)
	if rw.At(2) != 1.5 || rw.At(7) != -1 {
		t.Errorf("At() = %v, %v", rw.At(2), rw.At(7))
	}
}

func TestMapBufferRejectsAccess(t *testing.T) {
	tests := []struct {
		name   string
		usage  gfx.Usage
		access gfx.Access
	}{
		{"gpu only read", gfx.UsageGPUOnly, gfx.AccessRead},
		{"immutable write", gfx.UsageImmutable, gfx.AccessWrite},
		{"dynamic none", gfx.UsageDynamic, gfx.AccessNone},
		{"read only write", gfx.UsageCPUOnly(gfx.AccessRead), gfx.AccessWrite},
		{"write only read write", gfx.UsageCPUOnly(gfx.AccessWrite), gfx.AccessReadWrite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := soft.New()
			f := newTestFactory(t, dev)
			h, err := f.CreateBuffer(gfx.BufferInfo{Role: gfx.RoleStaging, Usage: tt.usage, Size: 16})
			if err != nil {
				t.Fatal(err)
			}
			calls := dev.MapCalls()

			_, err = f.MapBuffer(h, tt.access)
			if !errors.Is(err, ErrMapAccess) {
				t.Fatalf("MapBuffer() error = %v, want ErrMapAccess", err)
			}
			var me *MappingError
			if !errors.As(err, &me) || me.Access != tt.access || me.Usage != tt.usage {
				t.Errorf("error = %#v", err)
			}
			if dev.MapCalls() != calls {
				t.Error("rejected mapping reached the driver")
			}
			if bufferRecord(t, f, h).MapState() != resource.MapStateUnmapped {
				t.Error("rejected mapping changed the map state")
			}
		})
	}
}

func TestMapBufferTwice(t *testing.T) {
	dev := soft.New()
	f := newTestFactory(t, dev)
	h, err := f.CreateBuffer(gfx.BufferInfo{Role: gfx.RoleStaging, Usage: gfx.UsageCPUOnly(gfx.AccessReadWrite), Size: 16})
	if err != nil {
		t.Fatal(err)
	}

	gate, err := f.MapBuffer(h, gfx.AccessRead)
	if err != nil {
		t.Fatal(err)
	}
	calls := dev.MapCalls()
	if _, err := f.MapBuffer(h, gfx.AccessWrite); !errors.Is(err, ErrAlreadyMapped) {
		t.Errorf("second MapBuffer() error = %v, want ErrAlreadyMapped", err)
	}
	if dev.MapCalls() != calls {
		t.Error("busy mapping reached the driver")
	}
	if got := bufferRecord(t, f, h).MappedAccess(); got != gfx.AccessRead {
		t.Errorf("MappedAccess() = %v, want Read", got)
	}

	if err := gate.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gate.Close(); !errors.Is(err, mapping.ErrClosed) {
		t.Errorf("second Close() = %v, want mapping.ErrClosed", err)
	}
	if err := f.Unmap(h); !errors.Is(err, ErrNotMapped) {
		t.Errorf("Unmap() = %v, want ErrNotMapped", err)
	}
	if _, err := gate.ReadAt(make([]byte, 1), 0); !errors.Is(err, mapping.ErrClosed) {
		t.Errorf("ReadAt() after Close = %v, want mapping.ErrClosed", err)
	}
}

func TestMappingKeepsBufferAlive(t *testing.T) {
	dev := soft.New()
	f := newTestFactory(t, dev)
	h, err := f.CreateBuffer(gfx.BufferInfo{Role: gfx.RoleConstant, Usage: gfx.UsageDynamic, Size: 16})
	if err != nil {
		t.Fatal(err)
	}
	gate, err := f.MapBuffer(h, gfx.AccessWrite)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Handles().ReleaseBuffer(h); err != nil {
		t.Fatal(err)
	}
	if dev.Live(soft.KindBuffer) != 1 {
		t.Fatal("buffer destroyed while mapped")
	}
	if _, err := gate.WriteAt([]byte{1, 2, 3, 4}, 12); err != nil {
		t.Errorf("WriteAt() error = %v", err)
	}
	if err := gate.Close(); err != nil {
		t.Fatal(err)
	}
	if dev.Live(soft.KindBuffer) != 0 || dev.Live(soft.KindMemory) != 0 {
		t.Error("buffer not destroyed after its mapping ended")
	}
	if err := f.Unmap(h); !errors.Is(err, handle.ErrStale) {
		t.Errorf("Unmap(released) = %v, want handle.ErrStale", err)
	}
}

func TestTypedMapEndsMappingOnError(t *testing.T) {
	dev := soft.New()
	f := newTestFactory(t, dev)
	h, err := f.CreateBuffer(gfx.BufferInfo{Role: gfx.RoleVertex, Usage: gfx.UsageDynamic, Size: 16, Stride: 4})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := MapReadable[uint16](f, h); !errors.Is(err, mapping.ErrElementSize) {
		t.Fatalf("MapReadable[uint16]() error = %v, want mapping.ErrElementSize", err)
	}
	buf := bufferRecord(t, f, h)
	if buf.MapState() != resource.MapStateUnmapped || dev.Mapped(buf.Memory.Memory) {
		t.Fatal("failed typed mapping left the buffer mapped")
	}
	if _, err := MapWritable[uint32](f, h); err != nil {
		t.Errorf("MapWritable[uint32]() error = %v", err)
	}
}
