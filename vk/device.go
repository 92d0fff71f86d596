package vk

import "unsafe"

// Device is the set of driver entry points gfxvk needs from a logical
// device. Create calls take a tagged creation-info record and return the
// new handle together with a status code. Destroy calls accept the null
// handle and ignore it.
//
// A Device is driven by one owning goroutine at a time.
type Device interface {
	MemoryProperties() PhysicalDeviceMemoryProperties

	AllocateMemory(info *MemoryAllocateInfo) (DeviceMemory, Result)
	FreeMemory(mem DeviceMemory)
	MapMemory(mem DeviceMemory, offset, size DeviceSize, flags MemoryMapFlags) (unsafe.Pointer, Result)
	UnmapMemory(mem DeviceMemory)

	CreateBuffer(info *BufferCreateInfo) (Buffer, Result)
	DestroyBuffer(buf Buffer)
	GetBufferMemoryRequirements(buf Buffer) MemoryRequirements
	BindBufferMemory(buf Buffer, mem DeviceMemory, offset DeviceSize) Result

	CreateImage(info *ImageCreateInfo) (Image, Result)
	DestroyImage(img Image)
	GetImageMemoryRequirements(img Image) MemoryRequirements
	BindImageMemory(img Image, mem DeviceMemory, offset DeviceSize) Result
	GetImageSubresourceLayout(img Image, sub ImageSubresource) SubresourceLayout

	CreateImageView(info *ImageViewCreateInfo) (ImageView, Result)
	DestroyImageView(view ImageView)

	CreateShaderModule(info *ShaderModuleCreateInfo) (ShaderModule, Result)
	DestroyShaderModule(module ShaderModule)

	CreateDescriptorSetLayout(info *DescriptorSetLayoutCreateInfo) (DescriptorSetLayout, Result)
	DestroyDescriptorSetLayout(layout DescriptorSetLayout)
	CreatePipelineLayout(info *PipelineLayoutCreateInfo) (PipelineLayout, Result)
	DestroyPipelineLayout(layout PipelineLayout)
	CreateDescriptorPool(info *DescriptorPoolCreateInfo) (DescriptorPool, Result)
	DestroyDescriptorPool(pool DescriptorPool)
	CreateRenderPass(info *RenderPassCreateInfo) (RenderPass, Result)
	DestroyRenderPass(pass RenderPass)
	CreateGraphicsPipeline(info *GraphicsPipelineCreateInfo) (Pipeline, Result)
	DestroyPipeline(p Pipeline)

	CreateSampler(info *SamplerCreateInfo) (Sampler, Result)
	DestroySampler(s Sampler)

	CreateFence(info *FenceCreateInfo) (Fence, Result)
	DestroyFence(f Fence)

	CreateCommandPool(info *CommandPoolCreateInfo) (CommandPool, Result)
	DestroyCommandPool(pool CommandPool)
	AllocateCommandBuffers(info *CommandBufferAllocateInfo) ([]CommandBuffer, Result)
}

// FindMemoryType returns the first memory type allowed by typeBits whose
// flags include want.
func FindMemoryType(props *PhysicalDeviceMemoryProperties, typeBits uint32, want MemoryPropertyFlags) (uint32, bool) {
	for i := uint32(0); i < props.MemoryTypeCount && i < MaxMemoryTypes; i++ {
		if typeBits&(1<<i) == 0 {
			continue
		}
		if props.MemoryTypes[i].PropertyFlags&want != want {
			continue
		}
		return i, true
	}
	return 0, false
}
