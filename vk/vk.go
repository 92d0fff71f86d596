// Package vk is the native object-creation protocol gfxvk speaks.
//
// It mirrors the Vulkan C API closely: handles are opaque 64-bit values,
// every creation-info record starts with a StructureType tag and a PNext
// extension pointer that must be nil, and every enumeration carries the
// exact Vulkan numeric value. A Device implementation forwards the records
// to a driver: vk/soft for host-memory emulation, vk/vkgo for a real GPU.
package vk

// Non-dispatchable handles. Zero is the null handle.
type (
	Buffer              uint64
	Image               uint64
	ImageView           uint64
	DeviceMemory        uint64
	ShaderModule        uint64
	DescriptorSetLayout uint64
	PipelineLayout      uint64
	DescriptorPool      uint64
	RenderPass          uint64
	Pipeline            uint64
	Sampler             uint64
	Fence               uint64
	CommandPool         uint64
	CommandBuffer       uint64
)

// NullHandle is the null value of every handle type.
const NullHandle = 0

// Typed null handles.
const (
	NullBuffer              Buffer              = NullHandle
	NullImage               Image               = NullHandle
	NullImageView           ImageView           = NullHandle
	NullDeviceMemory        DeviceMemory        = NullHandle
	NullShaderModule        ShaderModule        = NullHandle
	NullDescriptorSetLayout DescriptorSetLayout = NullHandle
	NullPipelineLayout      PipelineLayout      = NullHandle
	NullDescriptorPool      DescriptorPool      = NullHandle
	NullRenderPass          RenderPass          = NullHandle
	NullPipeline            Pipeline            = NullHandle
	NullSampler             Sampler             = NullHandle
	NullFence               Fence               = NullHandle
	NullCommandPool         CommandPool         = NullHandle
	NullCommandBuffer       CommandBuffer       = NullHandle
)

// DeviceSize is a size or offset in device memory.
type DeviceSize uint64

// WholeSize selects the remainder of an allocation.
const WholeSize DeviceSize = ^DeviceSize(0)

// Bool32 is a 32-bit boolean.
type Bool32 uint32

// Boolean values.
const (
	False Bool32 = 0
	True  Bool32 = 1
)

// B converts a Go boolean.
func B(v bool) Bool32 {
	if v {
		return True
	}
	return False
}

// MaxMemoryTypes and MaxMemoryHeaps bound PhysicalDeviceMemoryProperties.
const (
	MaxMemoryTypes = 32
	MaxMemoryHeaps = 16
)

// Extent2D is a two-dimensional size.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// Extent3D is a three-dimensional size.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// Offset2D is a two-dimensional offset.
type Offset2D struct {
	X int32
	Y int32
}

// Rect2D is a rectangle.
type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

// Viewport is a viewport transform.
type Viewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// MemoryRequirements is reported for buffers and images.
type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
}

// MemoryType is one entry of the physical device memory type table.
type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

// MemoryHeap is one memory heap.
type MemoryHeap struct {
	Size  DeviceSize
	Flags uint32
}

// PhysicalDeviceMemoryProperties is the memory layout of a device.
type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [MaxMemoryTypes]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [MaxMemoryHeaps]MemoryHeap
}

// ImageSubresource selects one mip level of one array layer.
type ImageSubresource struct {
	AspectMask ImageAspectFlags
	MipLevel   uint32
	ArrayLayer uint32
}

// SubresourceLayout is the host-visible placement of a linear image
// subresource within its memory.
type SubresourceLayout struct {
	Offset     DeviceSize
	Size       DeviceSize
	RowPitch   DeviceSize
	ArrayPitch DeviceSize
	DepthPitch DeviceSize
}
