package soft

import "github.com/gogpu/gfxvk/vk"

// Live returns the number of live objects of the given kind.
func (d *Device) Live(kind Kind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, obj := range d.objects {
		if obj.kind == kind {
			n++
		}
	}
	return n
}

// LiveTotal returns the number of live objects of every kind.
func (d *Device) LiveTotal() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.objects)
}

// MapCalls returns how many times MapMemory was entered.
func (d *Device) MapCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mapCalls
}

// Mapped reports whether mem is currently mapped.
func (d *Device) Mapped(mem vk.DeviceMemory) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := lookup[*memory](d, KindMemory, uint64(mem))
	return ok && m.mapped
}

// MemoryContents returns a copy of an allocation and its memory type.
func (d *Device) MemoryContents(mem vk.DeviceMemory) ([]byte, uint32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := lookup[*memory](d, KindMemory, uint64(mem))
	if !ok {
		return nil, 0, false
	}
	return append([]byte(nil), m.data...), m.typeIndex, true
}

// BufferInfo returns the creation record of a live buffer and the memory
// bound to it.
func (d *Device) BufferInfo(buf vk.Buffer) (vk.BufferCreateInfo, vk.DeviceMemory, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := lookup[*buffer](d, KindBuffer, uint64(buf))
	if !ok {
		return vk.BufferCreateInfo{}, vk.NullDeviceMemory, false
	}
	return b.info, b.memory, true
}

// ImageInfo returns the creation record of a live image and the memory
// bound to it.
func (d *Device) ImageInfo(img vk.Image) (vk.ImageCreateInfo, vk.DeviceMemory, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	im, ok := lookup[*image](d, KindImage, uint64(img))
	if !ok {
		return vk.ImageCreateInfo{}, vk.NullDeviceMemory, false
	}
	return im.info, im.memory, true
}

func record[T any](d *Device, kind Kind, h uint64) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := lookup[*T](d, kind, h)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// ImageViewInfo returns the creation record of a live image view.
func (d *Device) ImageViewInfo(v vk.ImageView) (vk.ImageViewCreateInfo, bool) {
	return record[vk.ImageViewCreateInfo](d, KindImageView, uint64(v))
}

// ShaderModuleInfo returns the creation record of a live shader module.
func (d *Device) ShaderModuleInfo(m vk.ShaderModule) (vk.ShaderModuleCreateInfo, bool) {
	return record[vk.ShaderModuleCreateInfo](d, KindShaderModule, uint64(m))
}

// DescriptorSetLayoutInfo returns the creation record of a live set layout.
func (d *Device) DescriptorSetLayoutInfo(l vk.DescriptorSetLayout) (vk.DescriptorSetLayoutCreateInfo, bool) {
	return record[vk.DescriptorSetLayoutCreateInfo](d, KindDescriptorSetLayout, uint64(l))
}

// PipelineLayoutInfo returns the creation record of a live pipeline layout.
func (d *Device) PipelineLayoutInfo(l vk.PipelineLayout) (vk.PipelineLayoutCreateInfo, bool) {
	return record[vk.PipelineLayoutCreateInfo](d, KindPipelineLayout, uint64(l))
}

// DescriptorPoolInfo returns the creation record of a live descriptor pool.
func (d *Device) DescriptorPoolInfo(p vk.DescriptorPool) (vk.DescriptorPoolCreateInfo, bool) {
	return record[vk.DescriptorPoolCreateInfo](d, KindDescriptorPool, uint64(p))
}

// RenderPassInfo returns the creation record of a live render pass.
func (d *Device) RenderPassInfo(p vk.RenderPass) (vk.RenderPassCreateInfo, bool) {
	return record[vk.RenderPassCreateInfo](d, KindRenderPass, uint64(p))
}

// PipelineInfo returns the creation record of a live pipeline.
func (d *Device) PipelineInfo(p vk.Pipeline) (vk.GraphicsPipelineCreateInfo, bool) {
	return record[vk.GraphicsPipelineCreateInfo](d, KindPipeline, uint64(p))
}

// SamplerInfo returns the creation record of a live sampler.
func (d *Device) SamplerInfo(s vk.Sampler) (vk.SamplerCreateInfo, bool) {
	return record[vk.SamplerCreateInfo](d, KindSampler, uint64(s))
}

// FenceInfo returns the creation record of a live fence.
func (d *Device) FenceInfo(f vk.Fence) (vk.FenceCreateInfo, bool) {
	return record[vk.FenceCreateInfo](d, KindFence, uint64(f))
}

// CommandPoolInfo returns the creation record of a live command pool.
func (d *Device) CommandPoolInfo(p vk.CommandPool) (vk.CommandPoolCreateInfo, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp, ok := lookup[*commandPool](d, KindCommandPool, uint64(p))
	if !ok {
		return vk.CommandPoolCreateInfo{}, false
	}
	return cp.info, true
}
