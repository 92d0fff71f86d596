// Package memory hands out device memory for buffers and images.
//
// Every resource gets its own allocation from one of two memory types:
// the video type for GPU-side resources and the system type for resources
// the CPU owns.
package memory

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/vk"
)

// Memory selection errors.
var (
	// ErrNoVideoMemory is returned when a device exposes no device-local type.
	ErrNoVideoMemory = errors.New("memory: no device-local memory type")

	// ErrNoSystemMemory is returned when a device exposes no host-visible type.
	ErrNoSystemMemory = errors.New("memory: no host-visible memory type")

	// ErrNoCompatibleType is returned when a resource accepts none of the
	// memory types with the required visibility.
	ErrNoCompatibleType = errors.New("memory: no compatible memory type")
)

// SelectTypes picks the video and system memory types of a device. Video
// memory is device-local, preferring types the host can also see; system
// memory is host-visible, preferring cached types.
func SelectTypes(props *vk.PhysicalDeviceMemoryProperties) (video, system uint32, err error) {
	const all = ^uint32(0)

	video, ok := vk.FindMemoryType(props, all, vk.MemoryPropertyDeviceLocalBit|vk.MemoryPropertyHostVisibleBit)
	if !ok {
		video, ok = vk.FindMemoryType(props, all, vk.MemoryPropertyDeviceLocalBit)
	}
	if !ok {
		return 0, 0, ErrNoVideoMemory
	}

	system, ok = vk.FindMemoryType(props, all, vk.MemoryPropertyHostVisibleBit|vk.MemoryPropertyHostCachedBit)
	if !ok {
		system, ok = vk.FindMemoryType(props, all, vk.MemoryPropertyHostVisibleBit)
	}
	if !ok {
		return 0, 0, ErrNoSystemMemory
	}
	return video, system, nil
}

// Allocation is one block of device memory backing a single resource.
type Allocation struct {
	Memory    vk.DeviceMemory
	Size      vk.DeviceSize
	TypeIndex uint32
}

// Stats contains cumulative allocation counters.
type Stats struct {
	// Allocations is the number of successful allocations.
	Allocations uint64

	// AllocatedBytes is the total size of all allocations.
	AllocatedBytes uint64

	VideoAllocations  uint64
	SystemAllocations uint64

	// Fallbacks counts allocations that could not use the preferred type.
	Fallbacks uint64
}

// String returns a human-readable string of allocation stats.
func (s Stats) String() string {
	return fmt.Sprintf("Memory[%d allocations, %d KB, %d video, %d system, %d fallbacks]",
		s.Allocations,
		s.AllocatedBytes/1024,
		s.VideoAllocations,
		s.SystemAllocations,
		s.Fallbacks)
}

// Allocator allocates device memory of the two selected types.
//
// Allocator is safe for concurrent use.
type Allocator struct {
	dev    vk.Device
	video  uint32
	system uint32

	// props is set when the allocator was built from the device's memory
	// properties, enabling fallback to compatible types.
	props *vk.PhysicalDeviceMemoryProperties

	mu    sync.Mutex
	stats Stats
}

// NewAllocator creates an allocator using the given memory type indices
// as-is.
func NewAllocator(dev vk.Device, video, system uint32) *Allocator {
	return &Allocator{dev: dev, video: video, system: system}
}

// NewAllocatorFromDevice selects the memory types from the device's
// reported properties.
func NewAllocatorFromDevice(dev vk.Device) (*Allocator, error) {
	props := dev.MemoryProperties()
	video, system, err := SelectTypes(&props)
	if err != nil {
		return nil, err
	}
	slogger().Debug("memory: selected types", "video", video, "system", system)
	return &Allocator{dev: dev, video: video, system: system, props: &props}, nil
}

// Video returns the video memory type index.
func (a *Allocator) Video() uint32 { return a.video }

// System returns the system memory type index.
func (a *Allocator) System() uint32 { return a.system }

// TypeFor returns the memory type a resource with usage u is placed in.
func (a *Allocator) TypeFor(u gfx.Usage) uint32 {
	if u.IsCPUOnly() {
		return a.system
	}
	return a.video
}

// Allocate allocates memory sized and typed for req.
func (a *Allocator) Allocate(u gfx.Usage, req vk.MemoryRequirements) (Allocation, error) {
	typeIndex, fallback, err := a.resolveType(a.TypeFor(u), req.MemoryTypeBits)
	if err != nil {
		return Allocation{}, err
	}

	info := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  req.Size,
		MemoryTypeIndex: typeIndex,
	}
	mem, res := a.dev.AllocateMemory(&info)
	if res != vk.Success {
		return Allocation{}, errors.Wrapf(res, "memory: allocate %d bytes of type %d", req.Size, typeIndex)
	}

	a.mu.Lock()
	a.stats.Allocations++
	a.stats.AllocatedBytes += uint64(req.Size)
	if u.IsCPUOnly() {
		a.stats.SystemAllocations++
	} else {
		a.stats.VideoAllocations++
	}
	if fallback {
		a.stats.Fallbacks++
	}
	a.mu.Unlock()

	return Allocation{Memory: mem, Size: req.Size, TypeIndex: typeIndex}, nil
}

// resolveType returns want when typeBits allows it. Otherwise, when the
// device properties are known, it looks for an allowed type with the same
// host visibility.
func (a *Allocator) resolveType(want, typeBits uint32) (uint32, bool, error) {
	if typeBits == 0 || typeBits&(1<<want) != 0 || a.props == nil {
		return want, false, nil
	}
	flags := a.props.MemoryTypes[want].PropertyFlags & (vk.MemoryPropertyDeviceLocalBit | vk.MemoryPropertyHostVisibleBit)
	idx, ok := vk.FindMemoryType(a.props, typeBits, flags)
	if !ok {
		return 0, false, errors.Wrapf(ErrNoCompatibleType, "type bits %#x", typeBits)
	}
	slogger().Warn("memory: preferred type not allowed, falling back",
		"preferred", want, "fallback", idx, "typeBits", typeBits)
	return idx, true, nil
}

// HostVisible reports whether memory of the given type can be mapped.
// Without device properties only the system type is known to be mappable.
func (a *Allocator) HostVisible(typeIndex uint32) bool {
	if a.props == nil {
		return typeIndex == a.system
	}
	if typeIndex >= a.props.MemoryTypeCount {
		return false
	}
	return a.props.MemoryTypes[typeIndex].PropertyFlags&vk.MemoryPropertyHostVisibleBit != 0
}

// Free releases an allocation.
func (a *Allocator) Free(alloc Allocation) {
	a.dev.FreeMemory(alloc.Memory)
}

// Stats returns a snapshot of the allocation counters.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}
