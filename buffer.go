package gfxvk

import (
	"unsafe"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/internal/translate"
	"github.com/gogpu/gfxvk/resource"
	"github.com/gogpu/gfxvk/vk"
)

func validateBuffer(info gfx.BufferInfo) error {
	if info.Size <= 0 || info.Stride < 0 {
		return &BufferError{Kind: BufferSize, Info: info}
	}
	if !info.Role.Valid() {
		return &BufferError{Kind: BufferRole, Info: info}
	}
	return nil
}

// CreateBuffer creates a buffer with its own memory, placed according to
// info.Usage.
func (f *Factory) CreateBuffer(info gfx.BufferInfo) (handle.Buffer, error) {
	f.ensureOpen()
	if err := validateBuffer(info); err != nil {
		return handle.Buffer{}, err
	}
	return f.handles.AddBuffer(f.createBuffer(info)), nil
}

// CreateBufferImmutable creates an immutable buffer holding a copy of data.
func (f *Factory) CreateBufferImmutable(data []byte, stride int, role gfx.BufferRole, bind gfx.Bind) (handle.Buffer, error) {
	f.ensureOpen()
	info := gfx.BufferInfo{
		Role:   role,
		Usage:  gfx.UsageImmutable,
		Bind:   bind,
		Size:   len(data),
		Stride: stride,
	}
	if err := validateBuffer(info); err != nil {
		return handle.Buffer{}, err
	}
	buf := f.createBuffer(info)

	ptr, res := f.dev.MapMemory(buf.Memory.Memory, 0, vk.WholeSize, 0)
	check("MapMemory", res)
	copy(unsafe.Slice((*byte)(ptr), len(data)), data)
	f.dev.UnmapMemory(buf.Memory.Memory)

	return f.handles.AddBuffer(buf), nil
}

func (f *Factory) createBuffer(info gfx.BufferInfo) *resource.Buffer {
	ci := vk.BufferCreateInfo{
		SType:                 vk.StructureTypeBufferCreateInfo,
		Size:                  vk.DeviceSize(info.Size),
		Usage:                 translate.BufferUsage(info.Role, info.Bind),
		SharingMode:           vk.SharingModeExclusive,
		QueueFamilyIndexCount: 1,
		PQueueFamilyIndices:   []uint32{f.queueFamily},
	}
	native, res := f.dev.CreateBuffer(&ci)
	check("CreateBuffer", res)

	req := f.dev.GetBufferMemoryRequirements(native)
	alloc, err := f.alloc.Allocate(info.Usage, req)
	checkErr("AllocateMemory", err)
	check("BindBufferMemory", f.dev.BindBufferMemory(native, alloc.Memory, 0))

	Logger().Debug("gfxvk: buffer created",
		"buffer", native,
		"role", info.Role,
		"usage", info.Usage,
		"size", info.Size,
		"memoryType", alloc.TypeIndex)
	return &resource.Buffer{Native: native, Memory: alloc, Info: info}
}
