package soft

import (
	"github.com/gogpu/gfxvk/vk"
)

// CreateImageView creates a view of a live image. The subresource range
// must lie within the image.
func (d *Device) CreateImageView(info *vk.ImageViewCreateInfo) (vk.ImageView, vk.Result) {
	if res := checkTag("CreateImageView", info, vk.StructureTypeImageViewCreateInfo); res != vk.Success {
		return vk.NullImageView, res
	}
	if texelSize(info.Format) == 0 {
		return vk.NullImageView, invalid("CreateImageView", "unknown format", "format", info.Format)
	}
	r := info.SubresourceRange
	if r.AspectMask == 0 || r.LevelCount == 0 || r.LayerCount == 0 {
		return vk.NullImageView, invalid("CreateImageView", "empty subresource range")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullImageView, res
	}
	// Externally owned images, such as swapchain images, are not tracked
	// and are accepted as they are.
	if im, ok := lookup[*image](d, KindImage, uint64(info.Image)); ok {
		if r.BaseMipLevel+r.LevelCount > im.info.MipLevels {
			return vk.NullImageView, invalid("CreateImageView", "mip range out of bounds")
		}
		if r.BaseArrayLayer+r.LayerCount > im.info.ArrayLayers {
			return vk.NullImageView, invalid("CreateImageView", "layer range out of bounds")
		}
	} else if info.Image == vk.NullImage {
		return vk.NullImageView, invalid("CreateImageView", "null image")
	}
	v := *info
	return vk.ImageView(d.insert(KindImageView, &v)), vk.Success
}

// DestroyImageView destroys an image view.
func (d *Device) DestroyImageView(view vk.ImageView) {
	d.remove(KindImageView, uint64(view))
}

// CreateShaderModule accepts SPIR-V code whose size is a non-zero
// multiple of four bytes.
func (d *Device) CreateShaderModule(info *vk.ShaderModuleCreateInfo) (vk.ShaderModule, vk.Result) {
	if res := checkTag("CreateShaderModule", info, vk.StructureTypeShaderModuleCreateInfo); res != vk.Success {
		return vk.NullShaderModule, res
	}
	if info.CodeSize == 0 || info.CodeSize%4 != 0 || int(info.CodeSize/4) != len(info.PCode) {
		return vk.NullShaderModule, invalid("CreateShaderModule", "bad code size", "size", info.CodeSize)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullShaderModule, res
	}
	v := *info
	return vk.ShaderModule(d.insert(KindShaderModule, &v)), vk.Success
}

// DestroyShaderModule destroys a shader module.
func (d *Device) DestroyShaderModule(module vk.ShaderModule) {
	d.remove(KindShaderModule, uint64(module))
}

// CreateDescriptorSetLayout rejects duplicate binding numbers.
func (d *Device) CreateDescriptorSetLayout(info *vk.DescriptorSetLayoutCreateInfo) (vk.DescriptorSetLayout, vk.Result) {
	if res := checkTag("CreateDescriptorSetLayout", info, vk.StructureTypeDescriptorSetLayoutCreateInfo); res != vk.Success {
		return vk.NullDescriptorSetLayout, res
	}
	if int(info.BindingCount) != len(info.PBindings) {
		return vk.NullDescriptorSetLayout, invalid("CreateDescriptorSetLayout", "binding count mismatch")
	}
	seen := make(map[uint32]bool, len(info.PBindings))
	for _, b := range info.PBindings {
		if seen[b.Binding] {
			return vk.NullDescriptorSetLayout, invalid("CreateDescriptorSetLayout", "duplicate binding", "binding", b.Binding)
		}
		seen[b.Binding] = true
		if b.DescriptorCount == 0 || b.StageFlags == 0 {
			return vk.NullDescriptorSetLayout, invalid("CreateDescriptorSetLayout", "empty binding", "binding", b.Binding)
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullDescriptorSetLayout, res
	}
	v := *info
	return vk.DescriptorSetLayout(d.insert(KindDescriptorSetLayout, &v)), vk.Success
}

// DestroyDescriptorSetLayout destroys a descriptor set layout.
func (d *Device) DestroyDescriptorSetLayout(layout vk.DescriptorSetLayout) {
	d.remove(KindDescriptorSetLayout, uint64(layout))
}

// CreatePipelineLayout requires every set layout to be live.
func (d *Device) CreatePipelineLayout(info *vk.PipelineLayoutCreateInfo) (vk.PipelineLayout, vk.Result) {
	if res := checkTag("CreatePipelineLayout", info, vk.StructureTypePipelineLayoutCreateInfo); res != vk.Success {
		return vk.NullPipelineLayout, res
	}
	if int(info.SetLayoutCount) != len(info.PSetLayouts) || int(info.PushConstantRangeCount) != len(info.PPushConstantRanges) {
		return vk.NullPipelineLayout, invalid("CreatePipelineLayout", "count mismatch")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, l := range info.PSetLayouts {
		if _, ok := lookup[*vk.DescriptorSetLayoutCreateInfo](d, KindDescriptorSetLayout, uint64(l)); !ok {
			return vk.NullPipelineLayout, invalid("CreatePipelineLayout", "unknown set layout", "layout", l)
		}
	}
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullPipelineLayout, res
	}
	v := *info
	return vk.PipelineLayout(d.insert(KindPipelineLayout, &v)), vk.Success
}

// DestroyPipelineLayout destroys a pipeline layout.
func (d *Device) DestroyPipelineLayout(layout vk.PipelineLayout) {
	d.remove(KindPipelineLayout, uint64(layout))
}

// CreateDescriptorPool requires a positive set capacity and at least one
// pool size.
func (d *Device) CreateDescriptorPool(info *vk.DescriptorPoolCreateInfo) (vk.DescriptorPool, vk.Result) {
	if res := checkTag("CreateDescriptorPool", info, vk.StructureTypeDescriptorPoolCreateInfo); res != vk.Success {
		return vk.NullDescriptorPool, res
	}
	if info.MaxSets == 0 || info.PoolSizeCount == 0 || int(info.PoolSizeCount) != len(info.PPoolSizes) {
		return vk.NullDescriptorPool, invalid("CreateDescriptorPool", "bad capacity")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullDescriptorPool, res
	}
	v := *info
	return vk.DescriptorPool(d.insert(KindDescriptorPool, &v)), vk.Success
}

// DestroyDescriptorPool destroys a descriptor pool.
func (d *Device) DestroyDescriptorPool(pool vk.DescriptorPool) {
	d.remove(KindDescriptorPool, uint64(pool))
}

// CreateRenderPass checks that every subpass reference names an attachment.
func (d *Device) CreateRenderPass(info *vk.RenderPassCreateInfo) (vk.RenderPass, vk.Result) {
	if res := checkTag("CreateRenderPass", info, vk.StructureTypeRenderPassCreateInfo); res != vk.Success {
		return vk.NullRenderPass, res
	}
	if int(info.AttachmentCount) != len(info.PAttachments) ||
		int(info.SubpassCount) != len(info.PSubpasses) ||
		int(info.DependencyCount) != len(info.PDependencies) {
		return vk.NullRenderPass, invalid("CreateRenderPass", "count mismatch")
	}
	if info.SubpassCount == 0 {
		return vk.NullRenderPass, invalid("CreateRenderPass", "no subpass")
	}
	for _, sp := range info.PSubpasses {
		if int(sp.ColorAttachmentCount) != len(sp.PColorAttachments) {
			return vk.NullRenderPass, invalid("CreateRenderPass", "color attachment count mismatch")
		}
		refs := sp.PColorAttachments
		if sp.PDepthStencilAttachment != nil {
			refs = append(refs[:len(refs):len(refs)], *sp.PDepthStencilAttachment)
		}
		for _, ref := range refs {
			if ref.Attachment >= info.AttachmentCount {
				return vk.NullRenderPass, invalid("CreateRenderPass", "attachment reference out of range", "attachment", ref.Attachment)
			}
		}
	}
	for _, a := range info.PAttachments {
		if texelSize(a.Format) == 0 {
			return vk.NullRenderPass, invalid("CreateRenderPass", "unknown attachment format", "format", a.Format)
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullRenderPass, res
	}
	v := *info
	return vk.RenderPass(d.insert(KindRenderPass, &v)), vk.Success
}

// DestroyRenderPass destroys a render pass.
func (d *Device) DestroyRenderPass(pass vk.RenderPass) {
	d.remove(KindRenderPass, uint64(pass))
}

// checkPipeline validates the nested state records of a pipeline.
func checkPipeline(info *vk.GraphicsPipelineCreateInfo) vk.Result {
	const call = "CreateGraphicsPipeline"
	if int(info.StageCount) != len(info.PStages) || info.StageCount == 0 {
		return invalid(call, "stage count mismatch")
	}
	for i := range info.PStages {
		if res := checkTag(call, &info.PStages[i], vk.StructureTypePipelineShaderStageCreateInfo); res != vk.Success {
			return res
		}
		if info.PStages[i].PName == "" {
			return invalid(call, "empty entry point")
		}
	}
	states := []struct {
		info vk.Info
		want vk.StructureType
		ok   bool
	}{
		{info.PVertexInputState, vk.StructureTypePipelineVertexInputStateCreateInfo, info.PVertexInputState != nil},
		{info.PInputAssemblyState, vk.StructureTypePipelineInputAssemblyStateCreateInfo, info.PInputAssemblyState != nil},
		{info.PViewportState, vk.StructureTypePipelineViewportStateCreateInfo, info.PViewportState != nil},
		{info.PRasterizationState, vk.StructureTypePipelineRasterizationStateCreateInfo, info.PRasterizationState != nil},
		{info.PMultisampleState, vk.StructureTypePipelineMultisampleStateCreateInfo, info.PMultisampleState != nil},
		{info.PDepthStencilState, vk.StructureTypePipelineDepthStencilStateCreateInfo, info.PDepthStencilState != nil},
		{info.PColorBlendState, vk.StructureTypePipelineColorBlendStateCreateInfo, info.PColorBlendState != nil},
		{info.PDynamicState, vk.StructureTypePipelineDynamicStateCreateInfo, info.PDynamicState != nil},
	}
	for _, s := range states {
		if !s.ok {
			continue
		}
		if res := checkTag(call, s.info, s.want); res != vk.Success {
			return res
		}
	}
	if info.PVertexInputState == nil || info.PInputAssemblyState == nil || info.PRasterizationState == nil {
		return invalid(call, "missing required state")
	}
	vi := info.PVertexInputState
	if int(vi.VertexBindingDescriptionCount) != len(vi.PVertexBindingDescriptions) ||
		int(vi.VertexAttributeDescriptionCount) != len(vi.PVertexAttributeDescriptions) {
		return invalid(call, "vertex input count mismatch")
	}
	if vp := info.PViewportState; vp != nil {
		if int(vp.ViewportCount) != len(vp.PViewports) || int(vp.ScissorCount) != len(vp.PScissors) {
			return invalid(call, "viewport count mismatch")
		}
	}
	if cb := info.PColorBlendState; cb != nil && int(cb.AttachmentCount) != len(cb.PAttachments) {
		return invalid(call, "blend attachment count mismatch")
	}
	if ds := info.PDynamicState; ds != nil && int(ds.DynamicStateCount) != len(ds.PDynamicStates) {
		return invalid(call, "dynamic state count mismatch")
	}
	return vk.Success
}

// CreateGraphicsPipeline validates the pipeline against its live shader
// modules, layout and render pass.
func (d *Device) CreateGraphicsPipeline(info *vk.GraphicsPipelineCreateInfo) (vk.Pipeline, vk.Result) {
	if res := checkTag("CreateGraphicsPipeline", info, vk.StructureTypeGraphicsPipelineCreateInfo); res != vk.Success {
		return vk.NullPipeline, res
	}
	if res := checkPipeline(info); res != vk.Success {
		return vk.NullPipeline, res
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, st := range info.PStages {
		if _, ok := lookup[*vk.ShaderModuleCreateInfo](d, KindShaderModule, uint64(st.Module)); !ok {
			return vk.NullPipeline, invalid("CreateGraphicsPipeline", "unknown shader module", "module", st.Module)
		}
	}
	if _, ok := lookup[*vk.PipelineLayoutCreateInfo](d, KindPipelineLayout, uint64(info.Layout)); !ok {
		return vk.NullPipeline, invalid("CreateGraphicsPipeline", "unknown layout", "layout", info.Layout)
	}
	rp, ok := lookup[*vk.RenderPassCreateInfo](d, KindRenderPass, uint64(info.RenderPass))
	if !ok {
		return vk.NullPipeline, invalid("CreateGraphicsPipeline", "unknown render pass", "pass", info.RenderPass)
	}
	if info.Subpass >= rp.SubpassCount {
		return vk.NullPipeline, invalid("CreateGraphicsPipeline", "subpass out of range")
	}
	if cb := info.PColorBlendState; cb != nil && cb.AttachmentCount != rp.PSubpasses[info.Subpass].ColorAttachmentCount {
		return vk.NullPipeline, invalid("CreateGraphicsPipeline", "blend attachments do not match the subpass")
	}
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullPipeline, res
	}
	v := *info
	return vk.Pipeline(d.insert(KindPipeline, &v)), vk.Success
}

// DestroyPipeline destroys a pipeline.
func (d *Device) DestroyPipeline(p vk.Pipeline) {
	d.remove(KindPipeline, uint64(p))
}

// CreateSampler validates the anisotropy and lod settings.
func (d *Device) CreateSampler(info *vk.SamplerCreateInfo) (vk.Sampler, vk.Result) {
	if res := checkTag("CreateSampler", info, vk.StructureTypeSamplerCreateInfo); res != vk.Success {
		return vk.NullSampler, res
	}
	if info.AnisotropyEnable == vk.True && info.MaxAnisotropy < 1 {
		return vk.NullSampler, invalid("CreateSampler", "anisotropy below one")
	}
	if info.MinLod > info.MaxLod {
		return vk.NullSampler, invalid("CreateSampler", "inverted lod range")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullSampler, res
	}
	v := *info
	return vk.Sampler(d.insert(KindSampler, &v)), vk.Success
}

// DestroySampler destroys a sampler.
func (d *Device) DestroySampler(s vk.Sampler) {
	d.remove(KindSampler, uint64(s))
}

// CreateFence creates a fence.
func (d *Device) CreateFence(info *vk.FenceCreateInfo) (vk.Fence, vk.Result) {
	if res := checkTag("CreateFence", info, vk.StructureTypeFenceCreateInfo); res != vk.Success {
		return vk.NullFence, res
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullFence, res
	}
	v := *info
	return vk.Fence(d.insert(KindFence, &v)), vk.Success
}

// DestroyFence destroys a fence.
func (d *Device) DestroyFence(f vk.Fence) {
	d.remove(KindFence, uint64(f))
}

type commandPool struct {
	info    vk.CommandPoolCreateInfo
	buffers []vk.CommandBuffer
}

// CreateCommandPool creates a command pool.
func (d *Device) CreateCommandPool(info *vk.CommandPoolCreateInfo) (vk.CommandPool, vk.Result) {
	if res := checkTag("CreateCommandPool", info, vk.StructureTypeCommandPoolCreateInfo); res != vk.Success {
		return vk.NullCommandPool, res
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullCommandPool, res
	}
	return vk.CommandPool(d.insert(KindCommandPool, &commandPool{info: *info})), vk.Success
}

// DestroyCommandPool destroys a command pool and the command buffers
// allocated from it.
func (d *Device) DestroyCommandPool(pool vk.CommandPool) {
	if pool == vk.NullCommandPool {
		return
	}
	d.mu.Lock()
	p, ok := lookup[*commandPool](d, KindCommandPool, uint64(pool))
	if ok {
		for _, cb := range p.buffers {
			delete(d.objects, uint64(cb))
		}
	}
	d.mu.Unlock()
	d.remove(KindCommandPool, uint64(pool))
}

// AllocateCommandBuffers allocates command buffers from a live pool.
func (d *Device) AllocateCommandBuffers(info *vk.CommandBufferAllocateInfo) ([]vk.CommandBuffer, vk.Result) {
	if res := checkTag("AllocateCommandBuffers", info, vk.StructureTypeCommandBufferAllocateInfo); res != vk.Success {
		return nil, res
	}
	if info.CommandBufferCount == 0 {
		return nil, invalid("AllocateCommandBuffers", "zero count")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := lookup[*commandPool](d, KindCommandPool, uint64(info.CommandPool))
	if !ok {
		return nil, invalid("AllocateCommandBuffers", "unknown pool", "pool", info.CommandPool)
	}
	if res := d.takeFailure(); res != vk.Success {
		return nil, res
	}
	out := make([]vk.CommandBuffer, info.CommandBufferCount)
	for i := range out {
		out[i] = vk.CommandBuffer(d.insert(KindCommandBuffer, info.Level))
	}
	p.buffers = append(p.buffers, out...)
	return out, vk.Success
}
