package vkgo

import (
	"testing"
	"unsafe"

	vulkan "github.com/vulkan-go/vulkan"

	"github.com/gogpu/gfxvk/vk"
)

func TestHandleRoundTrip(t *testing.T) {
	for _, h := range []uint64{0, 1, 0xDEADBEEF, 1 << 40} {
		if got := fromPtr(unsafe.Pointer(vulkan.Buffer(toPtr(h)))); got != h {
			t.Errorf("round trip of %#x = %#x", h, got)
		}
	}
}

func TestCString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"main", "main\x00"},
		{"main\x00", "main\x00"},
		{"", "\x00"},
	}
	for _, tt := range tests {
		if got := cString(tt.in); got != tt.want {
			t.Errorf("cString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMemoryProperties(t *testing.T) {
	var p vulkan.PhysicalDeviceMemoryProperties
	p.MemoryTypeCount = 2
	p.MemoryTypes[0] = vulkan.MemoryType{
		PropertyFlags: vulkan.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit),
		HeapIndex:     0,
	}
	p.MemoryTypes[1] = vulkan.MemoryType{
		PropertyFlags: vulkan.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit),
		HeapIndex:     1,
	}
	p.MemoryHeapCount = 2
	p.MemoryHeaps[1] = vulkan.MemoryHeap{Size: 1 << 30}

	got := memoryProperties(&p)
	if got.MemoryTypeCount != 2 || got.MemoryHeapCount != 2 {
		t.Fatalf("counts = (%d, %d)", got.MemoryTypeCount, got.MemoryHeapCount)
	}
	if got.MemoryTypes[1].PropertyFlags&vk.MemoryPropertyHostVisibleBit == 0 || got.MemoryTypes[1].HeapIndex != 1 {
		t.Errorf("type 1 = %+v", got.MemoryTypes[1])
	}
	if got.MemoryHeaps[1].Size != 1<<30 {
		t.Errorf("heap 1 size = %d", got.MemoryHeaps[1].Size)
	}
}

func TestBufferInfo(t *testing.T) {
	info := vk.BufferCreateInfo{
		SType:                 vk.StructureTypeBufferCreateInfo,
		Size:                  256,
		Usage:                 vk.BufferUsageVertexBufferBit | vk.BufferUsageTransferDstBit,
		SharingMode:           vk.SharingModeExclusive,
		QueueFamilyIndexCount: 1,
		PQueueFamilyIndices:   []uint32{3},
	}
	got := bufferInfo(&info)
	if got.SType != vulkan.StructureTypeBufferCreateInfo {
		t.Errorf("SType = %v", got.SType)
	}
	if got.Size != 256 || got.Usage != vulkan.BufferUsageFlags(info.Usage) {
		t.Errorf("size/usage = %d/%#x", got.Size, got.Usage)
	}
	if len(got.PQueueFamilyIndices) != 1 || got.PQueueFamilyIndices[0] != 3 {
		t.Errorf("queue families = %v", got.PQueueFamilyIndices)
	}
}

func TestRenderPassInfo(t *testing.T) {
	colors := []vk.AttachmentReference{{Attachment: 0, Layout: vk.ImageLayoutGeneral}}
	tests := []struct {
		name  string
		depth *vk.AttachmentReference
	}{
		{"color only", nil},
		{"color and depth", &vk.AttachmentReference{Attachment: 1, Layout: vk.ImageLayoutGeneral}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := vk.RenderPassCreateInfo{
				SType:           vk.StructureTypeRenderPassCreateInfo,
				AttachmentCount: 1,
				PAttachments: []vk.AttachmentDescription{{
					Format:  vk.FormatR8g8b8a8Unorm,
					Samples: vk.SampleCount1Bit,
					LoadOp:  vk.AttachmentLoadOpLoad,
					StoreOp: vk.AttachmentStoreOpStore,
				}},
				SubpassCount: 1,
				PSubpasses: []vk.SubpassDescription{{
					PipelineBindPoint:       vk.PipelineBindPointGraphics,
					ColorAttachmentCount:    1,
					PColorAttachments:       colors,
					PDepthStencilAttachment: tt.depth,
				}},
			}
			got := renderPassInfo(&info)
			sp := got.PSubpasses[0]
			if len(sp.PColorAttachments) != 1 || sp.PColorAttachments[0].Layout != vulkan.ImageLayoutGeneral {
				t.Errorf("color refs = %+v", sp.PColorAttachments)
			}
			if sp.PInputAttachments != nil || sp.PResolveAttachments != nil {
				t.Error("absent reference lists became non-nil")
			}
			if (sp.PDepthStencilAttachment == nil) != (tt.depth == nil) {
				t.Fatalf("depth ref = %+v", sp.PDepthStencilAttachment)
			}
			if tt.depth != nil && sp.PDepthStencilAttachment.Attachment != 1 {
				t.Errorf("depth attachment = %d", sp.PDepthStencilAttachment.Attachment)
			}
			if got.PAttachments[0].LoadOp != vulkan.AttachmentLoadOpLoad {
				t.Errorf("LoadOp = %v", got.PAttachments[0].LoadOp)
			}
		})
	}
}

func TestPipelineInfo(t *testing.T) {
	raster := vk.PipelineRasterizationStateCreateInfo{
		SType:           vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthBiasEnable: vk.True,
		LineWidth:       1,
	}
	dynamic := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: 2,
		PDynamicStates:    []vk.DynamicState{vk.DynamicStateViewport, vk.DynamicStateScissor},
	}
	info := vk.GraphicsPipelineCreateInfo{
		SType:      vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount: 1,
		PStages: []vk.PipelineShaderStageCreateInfo{{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageVertexBit,
			Module: vk.ShaderModule(42),
			PName:  "main",
		}},
		PRasterizationState: &raster,
		PDynamicState:       &dynamic,
		Layout:              vk.PipelineLayout(7),
		BasePipelineIndex:   -1,
	}

	got := pipelineInfo(&info)
	if got.PStages[0].PName != "main\x00" {
		t.Errorf("PName = %q", got.PStages[0].PName)
	}
	if fromPtr(unsafe.Pointer(got.PStages[0].Module)) != 42 || fromPtr(unsafe.Pointer(got.Layout)) != 7 {
		t.Error("handles not carried over")
	}
	if got.PRasterizationState == nil || got.PRasterizationState.DepthBiasEnable != vulkan.True {
		t.Errorf("rasterization state = %+v", got.PRasterizationState)
	}
	if got.PDepthStencilState != nil || got.PVertexInputState != nil || got.PMultisampleState != nil {
		t.Error("absent states became non-nil")
	}
	if len(got.PDynamicState.PDynamicStates) != 2 || got.PDynamicState.PDynamicStates[1] != vulkan.DynamicStateScissor {
		t.Errorf("dynamic states = %v", got.PDynamicState.PDynamicStates)
	}
	if got.BasePipelineIndex != -1 {
		t.Errorf("BasePipelineIndex = %d", got.BasePipelineIndex)
	}
}

func TestSamplerInfo(t *testing.T) {
	info := vk.SamplerCreateInfo{
		SType:            vk.StructureTypeSamplerCreateInfo,
		MagFilter:        vk.FilterLinear,
		AddressModeU:     vk.SamplerAddressModeClampToBorder,
		AnisotropyEnable: vk.True,
		MaxAnisotropy:    16,
		BorderColor:      vk.BorderColorFloatOpaqueWhite,
		MaxLod:           1000,
	}
	got := samplerInfo(&info)
	if got.MagFilter != vulkan.FilterLinear || got.AddressModeU != vulkan.SamplerAddressModeClampToBorder {
		t.Errorf("filter/address = %v/%v", got.MagFilter, got.AddressModeU)
	}
	if got.MaxAnisotropy != 16 || got.BorderColor != vulkan.BorderColorFloatOpaqueWhite || got.MaxLod != 1000 {
		t.Errorf("sampler = %+v", got)
	}
}
