package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/vk"
	"github.com/gogpu/gfxvk/vk/soft"
)

func memoryProps(flags ...vk.MemoryPropertyFlags) vk.PhysicalDeviceMemoryProperties {
	var props vk.PhysicalDeviceMemoryProperties
	props.MemoryTypeCount = uint32(len(flags))
	for i, f := range flags {
		props.MemoryTypes[i].PropertyFlags = f
	}
	return props
}

func TestTypeFor(t *testing.T) {
	a := NewAllocator(soft.New(), 3, 5)
	tests := []struct {
		usage gfx.Usage
		want  uint32
	}{
		{gfx.UsageGPUOnly, 3},
		{gfx.UsageImmutable, 3},
		{gfx.UsageDynamic, 3},
		{gfx.UsageCPUOnly(gfx.AccessRead), 5},
		{gfx.UsageCPUOnly(gfx.AccessWrite), 5},
		{gfx.UsageCPUOnly(gfx.AccessReadWrite), 5},
	}
	for _, tt := range tests {
		t.Run(tt.usage.String(), func(t *testing.T) {
			if got := a.TypeFor(tt.usage); got != tt.want {
				t.Errorf("TypeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelectTypes(t *testing.T) {
	const (
		local   = vk.MemoryPropertyDeviceLocalBit
		visible = vk.MemoryPropertyHostVisibleBit
		cached  = vk.MemoryPropertyHostCachedBit
	)
	tests := []struct {
		name       string
		props      vk.PhysicalDeviceMemoryProperties
		video, sys uint32
		wantErr    error
	}{
		{"discrete", memoryProps(local, visible, visible|cached), 0, 2, nil},
		{"unified", memoryProps(visible, local|visible), 1, 0, nil},
		{"no device local", memoryProps(visible), 0, 0, ErrNoVideoMemory},
		{"no host visible", memoryProps(local), 0, 0, ErrNoSystemMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, sys, err := SelectTypes(&tt.props)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SelectTypes() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && (video != tt.video || sys != tt.sys) {
				t.Errorf("SelectTypes() = (%d, %d), want (%d, %d)", video, sys, tt.video, tt.sys)
			}
		})
	}
}

func TestAllocate(t *testing.T) {
	dev := soft.New()
	a, err := NewAllocatorFromDevice(dev)
	if err != nil {
		t.Fatal(err)
	}
	if a.Video() != soft.TypeVideo || a.System() != soft.TypeSystem {
		t.Fatalf("selected (%d, %d)", a.Video(), a.System())
	}

	req := vk.MemoryRequirements{Size: 512, Alignment: 256, MemoryTypeBits: 0b11}
	video, err := a.Allocate(gfx.UsageDynamic, req)
	if err != nil {
		t.Fatal(err)
	}
	sys, err := a.Allocate(gfx.UsageCPUOnly(gfx.AccessRead), req)
	if err != nil {
		t.Fatal(err)
	}
	if video.TypeIndex != soft.TypeVideo || sys.TypeIndex != soft.TypeSystem {
		t.Errorf("type indices = (%d, %d)", video.TypeIndex, sys.TypeIndex)
	}
	if _, typ, ok := dev.MemoryContents(sys.Memory); !ok || typ != soft.TypeSystem {
		t.Errorf("device memory type = %d, %v", typ, ok)
	}

	s := a.Stats()
	if s.Allocations != 2 || s.AllocatedBytes != 1024 || s.VideoAllocations != 1 || s.SystemAllocations != 1 {
		t.Errorf("Stats() = %v", s)
	}
	if !strings.Contains(s.String(), "2 allocations") {
		t.Errorf("String() = %q", s.String())
	}

	a.Free(video)
	a.Free(sys)
	if dev.Live(soft.KindMemory) != 0 {
		t.Errorf("Live(Memory) = %d after Free", dev.Live(soft.KindMemory))
	}
}

func TestAllocateFallback(t *testing.T) {
	props := memoryProps(
		vk.MemoryPropertyDeviceLocalBit,
		vk.MemoryPropertyHostVisibleBit|vk.MemoryPropertyHostCoherentBit,
		vk.MemoryPropertyDeviceLocalBit,
	)
	dev := soft.New(soft.WithMemoryProperties(props), soft.WithMemoryTypeBits(0b110))
	a, err := NewAllocatorFromDevice(dev)
	if err != nil {
		t.Fatal(err)
	}

	alloc, err := a.Allocate(gfx.UsageGPUOnly, vk.MemoryRequirements{Size: 256, MemoryTypeBits: 0b110})
	if err != nil {
		t.Fatal(err)
	}
	if alloc.TypeIndex != 2 {
		t.Errorf("TypeIndex = %d, want fallback to 2", alloc.TypeIndex)
	}
	if a.Stats().Fallbacks != 1 {
		t.Errorf("Fallbacks = %d, want 1", a.Stats().Fallbacks)
	}

	_, err = a.Allocate(gfx.UsageCPUOnly(gfx.AccessWrite), vk.MemoryRequirements{Size: 256, MemoryTypeBits: 0b100})
	if !errors.Is(err, ErrNoCompatibleType) {
		t.Errorf("Allocate() = %v, want ErrNoCompatibleType", err)
	}
}

func TestAllocateDriverFailure(t *testing.T) {
	dev := soft.New()
	a := NewAllocator(dev, soft.TypeVideo, soft.TypeSystem)
	dev.FailNext(vk.ErrorOutOfDeviceMemory)

	_, err := a.Allocate(gfx.UsageGPUOnly, vk.MemoryRequirements{Size: 256})
	var res vk.Result
	if !errors.As(err, &res) || res != vk.ErrorOutOfDeviceMemory {
		t.Errorf("Allocate() = %v, want wrapped %v", err, vk.ErrorOutOfDeviceMemory)
	}
	if a.Stats().Allocations != 0 {
		t.Errorf("failed allocation was counted")
	}
}

func TestHostVisible(t *testing.T) {
	a := NewAllocator(soft.New(), 0, 1)
	if a.HostVisible(0) || !a.HostVisible(1) {
		t.Error("without properties only the system type is host visible")
	}
	b, err := NewAllocatorFromDevice(soft.New())
	if err != nil {
		t.Fatal(err)
	}
	if !b.HostVisible(soft.TypeVideo) || b.HostVisible(7) {
		t.Error("HostVisible() disagrees with the device properties")
	}
}
