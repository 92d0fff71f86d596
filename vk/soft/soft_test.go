package soft

import (
	"testing"
	"unsafe"

	"github.com/google/uuid"

	"github.com/gogpu/gfxvk/vk"
)

func newBuffer(t *testing.T, d *Device, size vk.DeviceSize, memType uint32) (vk.Buffer, vk.DeviceMemory) {
	t.Helper()
	buf, res := d.CreateBuffer(&vk.BufferCreateInfo{
		SType: vk.StructureTypeBufferCreateInfo,
		Size:  size,
		Usage: vk.BufferUsageVertexBufferBit,
	})
	if res != vk.Success {
		t.Fatalf("CreateBuffer() = %v", res)
	}
	req := d.GetBufferMemoryRequirements(buf)
	mem, res := d.AllocateMemory(&vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  req.Size,
		MemoryTypeIndex: memType,
	})
	if res != vk.Success {
		t.Fatalf("AllocateMemory() = %v", res)
	}
	if res := d.BindBufferMemory(buf, mem, 0); res != vk.Success {
		t.Fatalf("BindBufferMemory() = %v", res)
	}
	return buf, mem
}

func TestBufferLifecycle(t *testing.T) {
	d := New()
	buf, mem := newBuffer(t, d, 100, TypeVideo)

	req := d.GetBufferMemoryRequirements(buf)
	if req.Size != 256 || req.MemoryTypeBits != 0b11 {
		t.Errorf("requirements = %+v", req)
	}
	if d.Live(KindBuffer) != 1 || d.Live(KindMemory) != 1 {
		t.Errorf("live = %d buffers, %d allocations", d.Live(KindBuffer), d.Live(KindMemory))
	}

	d.DestroyBuffer(buf)
	d.FreeMemory(mem)
	if d.LiveTotal() != 0 {
		t.Errorf("LiveTotal() = %d after teardown", d.LiveTotal())
	}
}

func TestMapExclusive(t *testing.T) {
	d := New()
	_, mem := newBuffer(t, d, 16, TypeSystem)

	p, res := d.MapMemory(mem, 0, vk.WholeSize, 0)
	if res != vk.Success {
		t.Fatalf("MapMemory() = %v", res)
	}
	unsafe.Slice((*byte)(p), 16)[3] = 0x7F

	if _, res := d.MapMemory(mem, 0, vk.WholeSize, 0); res != vk.ErrorValidationFailed {
		t.Errorf("second MapMemory() = %v, want validation failure", res)
	}
	if !d.Mapped(mem) {
		t.Error("memory should still be mapped")
	}
	d.UnmapMemory(mem)
	if d.Mapped(mem) {
		t.Error("memory should be unmapped")
	}

	data, typ, ok := d.MemoryContents(mem)
	if !ok || typ != TypeSystem || data[3] != 0x7F {
		t.Errorf("MemoryContents() = (%v..., %d, %v)", data[:4], typ, ok)
	}
	if d.MapCalls() != 2 {
		t.Errorf("MapCalls() = %d, want 2", d.MapCalls())
	}
}

func TestMapNotHostVisible(t *testing.T) {
	var props vk.PhysicalDeviceMemoryProperties
	props.MemoryTypeCount = 1
	props.MemoryTypes[0].PropertyFlags = vk.MemoryPropertyDeviceLocalBit
	d := New(WithMemoryProperties(props))

	_, mem := newBuffer(t, d, 16, 0)
	if _, res := d.MapMemory(mem, 0, vk.WholeSize, 0); res != vk.ErrorMemoryMapFailed {
		t.Errorf("MapMemory() = %v, want %v", res, vk.ErrorMemoryMapFailed)
	}
}

func TestValidation(t *testing.T) {
	d := New()
	tests := []struct {
		name string
		call func() vk.Result
	}{
		{"wrong structure type", func() vk.Result {
			_, res := d.CreateBuffer(&vk.BufferCreateInfo{SType: vk.StructureTypeImageCreateInfo, Size: 4, Usage: 1})
			return res
		}},
		{"extension pointer", func() vk.Result {
			var x int
			_, res := d.CreateFence(&vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo, PNext: unsafe.Pointer(&x)})
			return res
		}},
		{"odd code size", func() vk.Result {
			_, res := d.CreateShaderModule(&vk.ShaderModuleCreateInfo{
				SType:    vk.StructureTypeShaderModuleCreateInfo,
				CodeSize: 6,
				PCode:    []uint32{1, 2},
			})
			return res
		}},
		{"duplicate binding", func() vk.Result {
			b := vk.DescriptorSetLayoutBinding{Binding: 2, DescriptorType: vk.DescriptorTypeSampler, DescriptorCount: 1, StageFlags: vk.ShaderStageVertexBit}
			_, res := d.CreateDescriptorSetLayout(&vk.DescriptorSetLayoutCreateInfo{
				SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
				BindingCount: 2,
				PBindings:    []vk.DescriptorSetLayoutBinding{b, b},
			})
			return res
		}},
		{"count mismatch", func() vk.Result {
			_, res := d.CreateRenderPass(&vk.RenderPassCreateInfo{
				SType:           vk.StructureTypeRenderPassCreateInfo,
				AttachmentCount: 1,
			})
			return res
		}},
		{"empty pool", func() vk.Result {
			_, res := d.CreateDescriptorPool(&vk.DescriptorPoolCreateInfo{SType: vk.StructureTypeDescriptorPoolCreateInfo, MaxSets: 1})
			return res
		}},
		{"unknown image format", func() vk.Result {
			_, res := d.CreateImage(&vk.ImageCreateInfo{
				SType:       vk.StructureTypeImageCreateInfo,
				Extent:      vk.Extent3D{Width: 1, Height: 1, Depth: 1},
				MipLevels:   1,
				ArrayLayers: 1,
				Samples:     vk.SampleCount1Bit,
			})
			return res
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := tt.call(); res != vk.ErrorValidationFailed {
				t.Errorf("result = %v, want validation failure", res)
			}
		})
	}
	if d.LiveTotal() != 0 {
		t.Errorf("rejected calls created %d objects", d.LiveTotal())
	}
}

func TestFailNext(t *testing.T) {
	d := New()
	d.FailNext(vk.ErrorOutOfDeviceMemory)
	if _, res := d.CreateSampler(&vk.SamplerCreateInfo{SType: vk.StructureTypeSamplerCreateInfo, MaxLod: 1}); res != vk.ErrorOutOfDeviceMemory {
		t.Fatalf("CreateSampler() = %v, want injected failure", res)
	}
	if _, res := d.CreateSampler(&vk.SamplerCreateInfo{SType: vk.StructureTypeSamplerCreateInfo, MaxLod: 1}); res != vk.Success {
		t.Fatalf("CreateSampler() = %v after failure was consumed", res)
	}
	if d.Live(KindSampler) != 1 {
		t.Errorf("Live(Sampler) = %d, want 1", d.Live(KindSampler))
	}
}

func TestImageLayout(t *testing.T) {
	d := New()
	img, res := d.CreateImage(&vk.ImageCreateInfo{
		SType:       vk.StructureTypeImageCreateInfo,
		ImageType:   vk.ImageType2d,
		Format:      vk.FormatR8g8b8a8Unorm,
		Extent:      vk.Extent3D{Width: 8, Height: 4, Depth: 1},
		MipLevels:   2,
		ArrayLayers: 3,
		Samples:     vk.SampleCount1Bit,
		Tiling:      vk.ImageTilingLinear,
	})
	if res != vk.Success {
		t.Fatalf("CreateImage() = %v", res)
	}

	// Level 0 is 8x4x4 bytes, level 1 is 4x2x4 bytes.
	req := d.GetImageMemoryRequirements(img)
	if want := vk.DeviceSize((128 + 32) * 3); req.Size < want {
		t.Errorf("requirements size = %d, want at least %d", req.Size, want)
	}

	l := d.GetImageSubresourceLayout(img, vk.ImageSubresource{AspectMask: vk.ImageAspectColorBit, MipLevel: 1, ArrayLayer: 2})
	want := vk.SubresourceLayout{Offset: 160*2 + 128, Size: 32, RowPitch: 16, ArrayPitch: 160, DepthPitch: 32}
	if l != want {
		t.Errorf("GetImageSubresourceLayout() = %+v, want %+v", l, want)
	}
}

func TestCommandPool(t *testing.T) {
	d := New()
	pool, res := d.CreateCommandPool(&vk.CommandPoolCreateInfo{SType: vk.StructureTypeCommandPoolCreateInfo})
	if res != vk.Success {
		t.Fatalf("CreateCommandPool() = %v", res)
	}
	bufs, res := d.AllocateCommandBuffers(&vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		CommandBufferCount: 2,
	})
	if res != vk.Success || len(bufs) != 2 {
		t.Fatalf("AllocateCommandBuffers() = (%v, %v)", bufs, res)
	}
	d.DestroyCommandPool(pool)
	if d.LiveTotal() != 0 {
		t.Errorf("LiveTotal() = %d after pool destruction", d.LiveTotal())
	}
}

func TestID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	if got := New(WithID(id)).ID(); got != id {
		t.Errorf("ID() = %v, want %v", got, id)
	}
	if New().ID() == New().ID() {
		t.Error("fresh devices should have distinct identities")
	}
}

func TestTexelSize(t *testing.T) {
	tests := []struct {
		format vk.Format
		want   vk.DeviceSize
	}{
		{vk.FormatUndefined, 0},
		{vk.FormatR8Unorm, 1},
		{vk.FormatR8g8b8a8Srgb, 4},
		{vk.FormatR16g16b16a16Sfloat, 8},
		{vk.FormatR32g32b32a32Sfloat, 16},
		{vk.FormatD16Unorm, 2},
		{vk.FormatD24UnormS8Uint, 4},
		{vk.FormatD32SfloatS8Uint, 8},
		{131, 0},
	}
	for _, tt := range tests {
		if got := texelSize(tt.format); got != tt.want {
			t.Errorf("texelSize(%d) = %d, want %d", tt.format, got, tt.want)
		}
	}
}
