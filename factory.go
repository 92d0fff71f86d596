package gfxvk

import (
	"fmt"

	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/internal/memory"
	"github.com/gogpu/gfxvk/mapping"
	"github.com/gogpu/gfxvk/vk"
)

// Factory creates GPU resources from gfx descriptors.
//
// A Factory is owned by one goroutine at a time; it performs no locking
// of its own. Driver failures are fatal: the factory logs them and
// panics with a *FatalError. Descriptor errors are returned.
type Factory struct {
	share       *Share
	dev         vk.Device
	handles     *handle.Manager
	queueFamily uint32
	alloc       *memory.Allocator
	pool        vk.CommandPool
	opts        options

	// gates holds the live mapping of each mapped buffer.
	gates  map[handle.Buffer]*mapping.Gate
	closed bool
}

// NewFactory creates a factory on share using the given memory type
// indices for video and system memory. The factory keeps its own
// reference to share until Close.
func NewFactory(share *Share, queueFamily, memVideo, memSystem uint32, opts ...Option) *Factory {
	return newFactory(share, queueFamily, memory.NewAllocator(share.Device(), memVideo, memSystem), opts)
}

// NewFactoryFromDevice is like NewFactory but selects the memory types
// from the properties the device reports.
func NewFactoryFromDevice(share *Share, queueFamily uint32, opts ...Option) (*Factory, error) {
	alloc, err := memory.NewAllocatorFromDevice(share.Device())
	if err != nil {
		return nil, err
	}
	return newFactory(share, queueFamily, alloc, opts), nil
}

func newFactory(share *Share, queueFamily uint32, alloc *memory.Allocator, opts []Option) *Factory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	share = share.Clone()
	dev := share.Device()
	info := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            o.commandFlags,
		QueueFamilyIndex: queueFamily,
	}
	pool, res := dev.CreateCommandPool(&info)
	if res != vk.Success {
		share.Release()
		check("CreateCommandPool", res)
	}

	Logger().Info("gfxvk: factory created",
		"queueFamily", queueFamily,
		"video", alloc.Video(),
		"system", alloc.System())

	return &Factory{
		share:       share,
		dev:         dev,
		handles:     share.Handles(),
		queueFamily: queueFamily,
		alloc:       alloc,
		pool:        pool,
		opts:        o,
		gates:       make(map[handle.Buffer]*mapping.Gate),
	}
}

// Close ends live mappings, destroys the command pool and drops the
// factory's device reference. Close is idempotent.
func (f *Factory) Close() {
	if f.closed {
		return
	}
	for h, g := range f.gates {
		if err := g.Close(); err != nil {
			Logger().Warn("gfxvk: ending mapping on close", "buffer", h, "err", err)
		}
	}
	f.dev.DestroyCommandPool(f.pool)
	f.pool = vk.NullCommandPool
	f.closed = true
	f.share.Release()
	Logger().Info("gfxvk: factory closed")
}

// ensureOpen panics when the factory is closed.
func (f *Factory) ensureOpen() {
	if f.closed {
		panic(ErrFactoryClosed)
	}
}

// Share returns the factory's device reference. Clone it to keep the
// device beyond the factory's lifetime.
func (f *Factory) Share() *Share { return f.share }

// Handles returns the handle manager resources are registered with.
func (f *Factory) Handles() *handle.Manager { return f.handles }

// NewFrame returns a reference set for one unit of GPU work.
func (f *Factory) NewFrame() *handle.Frame { return f.handles.NewFrame() }

// NewCommandBuffer allocates a primary command buffer from the factory's
// command pool. It is freed with the pool.
func (f *Factory) NewCommandBuffer() vk.CommandBuffer {
	f.ensureOpen()
	info := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        f.pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	bufs, res := f.dev.AllocateCommandBuffers(&info)
	check("AllocateCommandBuffers", res)
	return bufs[0]
}

// CreateFence creates a fence, optionally in the signalled state.
func (f *Factory) CreateFence(signalled bool) vk.Fence {
	f.ensureOpen()
	info := vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo}
	if signalled {
		info.Flags = vk.FenceCreateSignaledBit
	}
	fence, res := f.dev.CreateFence(&info)
	check("CreateFence", res)
	return fence
}

// DestroyFence destroys a fence created by CreateFence.
func (f *Factory) DestroyFence(fence vk.Fence) {
	f.dev.DestroyFence(fence)
}

// Stats is a snapshot of a factory's allocations and live handles.
type Stats struct {
	Memory  memory.Stats
	Handles handle.Counts
}

// String returns a human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("%v %v", s.Memory, s.Handles)
}

// Stats returns the current allocation counters and handle counts.
func (f *Factory) Stats() Stats {
	return Stats{Memory: f.alloc.Stats(), Handles: f.handles.Counts()}
}
