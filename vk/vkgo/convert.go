package vkgo

import (
	"strings"
	"unsafe"

	vulkan "github.com/vulkan-go/vulkan"

	"github.com/gogpu/gfxvk/vk"
)

// Non-dispatchable handles are opaque driver values, never Go pointers.
func toPtr(h uint64) unsafe.Pointer { return unsafe.Pointer(uintptr(h)) }

func fromPtr(p unsafe.Pointer) uint64 { return uint64(uintptr(p)) }

// cString terminates s for the driver.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func memoryProperties(p *vulkan.PhysicalDeviceMemoryProperties) vk.PhysicalDeviceMemoryProperties {
	out := vk.PhysicalDeviceMemoryProperties{
		MemoryTypeCount: min(p.MemoryTypeCount, vk.MaxMemoryTypes),
		MemoryHeapCount: min(p.MemoryHeapCount, vk.MaxMemoryHeaps),
	}
	for i := range out.MemoryTypeCount {
		t := p.MemoryTypes[i]
		t.Deref()
		out.MemoryTypes[i] = vk.MemoryType{
			PropertyFlags: vk.MemoryPropertyFlags(t.PropertyFlags),
			HeapIndex:     t.HeapIndex,
		}
	}
	for i := range out.MemoryHeapCount {
		h := p.MemoryHeaps[i]
		h.Deref()
		out.MemoryHeaps[i] = vk.MemoryHeap{Size: vk.DeviceSize(h.Size), Flags: uint32(h.Flags)}
	}
	return out
}

func memoryRequirements(r *vulkan.MemoryRequirements) vk.MemoryRequirements {
	return vk.MemoryRequirements{
		Size:           vk.DeviceSize(r.Size),
		Alignment:      vk.DeviceSize(r.Alignment),
		MemoryTypeBits: r.MemoryTypeBits,
	}
}

func bufferInfo(info *vk.BufferCreateInfo) vulkan.BufferCreateInfo {
	return vulkan.BufferCreateInfo{
		SType:                 vulkan.StructureType(info.SType),
		Flags:                 vulkan.BufferCreateFlags(info.Flags),
		Size:                  vulkan.DeviceSize(info.Size),
		Usage:                 vulkan.BufferUsageFlags(info.Usage),
		SharingMode:           vulkan.SharingMode(info.SharingMode),
		QueueFamilyIndexCount: info.QueueFamilyIndexCount,
		PQueueFamilyIndices:   info.PQueueFamilyIndices,
	}
}

func imageInfo(info *vk.ImageCreateInfo) vulkan.ImageCreateInfo {
	return vulkan.ImageCreateInfo{
		SType:     vulkan.StructureType(info.SType),
		Flags:     vulkan.ImageCreateFlags(info.Flags),
		ImageType: vulkan.ImageType(info.ImageType),
		Format:    vulkan.Format(info.Format),
		Extent: vulkan.Extent3D{
			Width:  info.Extent.Width,
			Height: info.Extent.Height,
			Depth:  info.Extent.Depth,
		},
		MipLevels:             info.MipLevels,
		ArrayLayers:           info.ArrayLayers,
		Samples:               vulkan.SampleCountFlagBits(info.Samples),
		Tiling:                vulkan.ImageTiling(info.Tiling),
		Usage:                 vulkan.ImageUsageFlags(info.Usage),
		SharingMode:           vulkan.SharingMode(info.SharingMode),
		QueueFamilyIndexCount: info.QueueFamilyIndexCount,
		PQueueFamilyIndices:   info.PQueueFamilyIndices,
		InitialLayout:         vulkan.ImageLayout(info.InitialLayout),
	}
}

func imageViewInfo(info *vk.ImageViewCreateInfo) vulkan.ImageViewCreateInfo {
	r := info.SubresourceRange
	return vulkan.ImageViewCreateInfo{
		SType:    vulkan.StructureType(info.SType),
		Flags:    vulkan.ImageViewCreateFlags(info.Flags),
		Image:    vulkan.Image(toPtr(uint64(info.Image))),
		ViewType: vulkan.ImageViewType(info.ViewType),
		Format:   vulkan.Format(info.Format),
		Components: vulkan.ComponentMapping{
			R: vulkan.ComponentSwizzle(info.Components.R),
			G: vulkan.ComponentSwizzle(info.Components.G),
			B: vulkan.ComponentSwizzle(info.Components.B),
			A: vulkan.ComponentSwizzle(info.Components.A),
		},
		SubresourceRange: vulkan.ImageSubresourceRange{
			AspectMask:     vulkan.ImageAspectFlags(r.AspectMask),
			BaseMipLevel:   r.BaseMipLevel,
			LevelCount:     r.LevelCount,
			BaseArrayLayer: r.BaseArrayLayer,
			LayerCount:     r.LayerCount,
		},
	}
}

func setLayoutInfo(info *vk.DescriptorSetLayoutCreateInfo) vulkan.DescriptorSetLayoutCreateInfo {
	bindings := make([]vulkan.DescriptorSetLayoutBinding, len(info.PBindings))
	for i, b := range info.PBindings {
		bindings[i] = vulkan.DescriptorSetLayoutBinding{
			Binding:         b.Binding,
			DescriptorType:  vulkan.DescriptorType(b.DescriptorType),
			DescriptorCount: b.DescriptorCount,
			StageFlags:      vulkan.ShaderStageFlags(b.StageFlags),
		}
	}
	return vulkan.DescriptorSetLayoutCreateInfo{
		SType:        vulkan.StructureType(info.SType),
		Flags:        vulkan.DescriptorSetLayoutCreateFlags(info.Flags),
		BindingCount: info.BindingCount,
		PBindings:    bindings,
	}
}

func pipelineLayoutInfo(info *vk.PipelineLayoutCreateInfo) vulkan.PipelineLayoutCreateInfo {
	layouts := make([]vulkan.DescriptorSetLayout, len(info.PSetLayouts))
	for i, l := range info.PSetLayouts {
		layouts[i] = vulkan.DescriptorSetLayout(toPtr(uint64(l)))
	}
	ranges := make([]vulkan.PushConstantRange, len(info.PPushConstantRanges))
	for i, r := range info.PPushConstantRanges {
		ranges[i] = vulkan.PushConstantRange{
			StageFlags: vulkan.ShaderStageFlags(r.StageFlags),
			Offset:     r.Offset,
			Size:       r.Size,
		}
	}
	return vulkan.PipelineLayoutCreateInfo{
		SType:                  vulkan.StructureType(info.SType),
		Flags:                  vulkan.PipelineLayoutCreateFlags(info.Flags),
		SetLayoutCount:         info.SetLayoutCount,
		PSetLayouts:            layouts,
		PushConstantRangeCount: info.PushConstantRangeCount,
		PPushConstantRanges:    ranges,
	}
}

func descriptorPoolInfo(info *vk.DescriptorPoolCreateInfo) vulkan.DescriptorPoolCreateInfo {
	sizes := make([]vulkan.DescriptorPoolSize, len(info.PPoolSizes))
	for i, s := range info.PPoolSizes {
		sizes[i] = vulkan.DescriptorPoolSize{
			Type:            vulkan.DescriptorType(s.Type),
			DescriptorCount: s.DescriptorCount,
		}
	}
	return vulkan.DescriptorPoolCreateInfo{
		SType:         vulkan.StructureType(info.SType),
		Flags:         vulkan.DescriptorPoolCreateFlags(info.Flags),
		MaxSets:       info.MaxSets,
		PoolSizeCount: info.PoolSizeCount,
		PPoolSizes:    sizes,
	}
}

func attachmentRefs(refs []vk.AttachmentReference) []vulkan.AttachmentReference {
	if refs == nil {
		return nil
	}
	out := make([]vulkan.AttachmentReference, len(refs))
	for i, r := range refs {
		out[i] = vulkan.AttachmentReference{Attachment: r.Attachment, Layout: vulkan.ImageLayout(r.Layout)}
	}
	return out
}

func renderPassInfo(info *vk.RenderPassCreateInfo) vulkan.RenderPassCreateInfo {
	attachments := make([]vulkan.AttachmentDescription, len(info.PAttachments))
	for i, a := range info.PAttachments {
		attachments[i] = vulkan.AttachmentDescription{
			Flags:          vulkan.AttachmentDescriptionFlags(a.Flags),
			Format:         vulkan.Format(a.Format),
			Samples:        vulkan.SampleCountFlagBits(a.Samples),
			LoadOp:         vulkan.AttachmentLoadOp(a.LoadOp),
			StoreOp:        vulkan.AttachmentStoreOp(a.StoreOp),
			StencilLoadOp:  vulkan.AttachmentLoadOp(a.StencilLoadOp),
			StencilStoreOp: vulkan.AttachmentStoreOp(a.StencilStoreOp),
			InitialLayout:  vulkan.ImageLayout(a.InitialLayout),
			FinalLayout:    vulkan.ImageLayout(a.FinalLayout),
		}
	}
	subpasses := make([]vulkan.SubpassDescription, len(info.PSubpasses))
	for i, s := range info.PSubpasses {
		sp := vulkan.SubpassDescription{
			Flags:                   vulkan.SubpassDescriptionFlags(s.Flags),
			PipelineBindPoint:       vulkan.PipelineBindPoint(s.PipelineBindPoint),
			InputAttachmentCount:    s.InputAttachmentCount,
			PInputAttachments:       attachmentRefs(s.PInputAttachments),
			ColorAttachmentCount:    s.ColorAttachmentCount,
			PColorAttachments:       attachmentRefs(s.PColorAttachments),
			PResolveAttachments:     attachmentRefs(s.PResolveAttachments),
			PreserveAttachmentCount: s.PreserveAttachmentCount,
			PPreserveAttachments:    s.PPreserveAttachments,
		}
		if ref := s.PDepthStencilAttachment; ref != nil {
			sp.PDepthStencilAttachment = &vulkan.AttachmentReference{
				Attachment: ref.Attachment,
				Layout:     vulkan.ImageLayout(ref.Layout),
			}
		}
		subpasses[i] = sp
	}
	deps := make([]vulkan.SubpassDependency, len(info.PDependencies))
	for i, d := range info.PDependencies {
		deps[i] = vulkan.SubpassDependency{
			SrcSubpass:      d.SrcSubpass,
			DstSubpass:      d.DstSubpass,
			SrcStageMask:    vulkan.PipelineStageFlags(d.SrcStageMask),
			DstStageMask:    vulkan.PipelineStageFlags(d.DstStageMask),
			SrcAccessMask:   vulkan.AccessFlags(d.SrcAccessMask),
			DstAccessMask:   vulkan.AccessFlags(d.DstAccessMask),
			DependencyFlags: vulkan.DependencyFlags(d.DependencyFlags),
		}
	}
	return vulkan.RenderPassCreateInfo{
		SType:           vulkan.StructureType(info.SType),
		Flags:           vulkan.RenderPassCreateFlags(info.Flags),
		AttachmentCount: info.AttachmentCount,
		PAttachments:    attachments,
		SubpassCount:    info.SubpassCount,
		PSubpasses:      subpasses,
		DependencyCount: info.DependencyCount,
		PDependencies:   deps,
	}
}

func stencilState(s vk.StencilOpState) vulkan.StencilOpState {
	return vulkan.StencilOpState{
		FailOp:      vulkan.StencilOp(s.FailOp),
		PassOp:      vulkan.StencilOp(s.PassOp),
		DepthFailOp: vulkan.StencilOp(s.DepthFailOp),
		CompareOp:   vulkan.CompareOp(s.CompareOp),
		CompareMask: s.CompareMask,
		WriteMask:   s.WriteMask,
		Reference:   s.Reference,
	}
}

func shaderStages(stages []vk.PipelineShaderStageCreateInfo) []vulkan.PipelineShaderStageCreateInfo {
	out := make([]vulkan.PipelineShaderStageCreateInfo, len(stages))
	for i, s := range stages {
		out[i] = vulkan.PipelineShaderStageCreateInfo{
			SType:  vulkan.StructureType(s.SType),
			Flags:  vulkan.PipelineShaderStageCreateFlags(s.Flags),
			Stage:  vulkan.ShaderStageFlagBits(s.Stage),
			Module: vulkan.ShaderModule(toPtr(uint64(s.Module))),
			PName:  cString(s.PName),
		}
	}
	return out
}

func vertexInputState(s *vk.PipelineVertexInputStateCreateInfo) *vulkan.PipelineVertexInputStateCreateInfo {
	if s == nil {
		return nil
	}
	bindings := make([]vulkan.VertexInputBindingDescription, len(s.PVertexBindingDescriptions))
	for i, b := range s.PVertexBindingDescriptions {
		bindings[i] = vulkan.VertexInputBindingDescription{
			Binding:   b.Binding,
			Stride:    b.Stride,
			InputRate: vulkan.VertexInputRate(b.InputRate),
		}
	}
	attributes := make([]vulkan.VertexInputAttributeDescription, len(s.PVertexAttributeDescriptions))
	for i, a := range s.PVertexAttributeDescriptions {
		attributes[i] = vulkan.VertexInputAttributeDescription{
			Location: a.Location,
			Binding:  a.Binding,
			Format:   vulkan.Format(a.Format),
			Offset:   a.Offset,
		}
	}
	return &vulkan.PipelineVertexInputStateCreateInfo{
		SType:                           vulkan.StructureType(s.SType),
		Flags:                           vulkan.PipelineVertexInputStateCreateFlags(s.Flags),
		VertexBindingDescriptionCount:   s.VertexBindingDescriptionCount,
		PVertexBindingDescriptions:      bindings,
		VertexAttributeDescriptionCount: s.VertexAttributeDescriptionCount,
		PVertexAttributeDescriptions:    attributes,
	}
}

func viewportState(s *vk.PipelineViewportStateCreateInfo) *vulkan.PipelineViewportStateCreateInfo {
	if s == nil {
		return nil
	}
	viewports := make([]vulkan.Viewport, len(s.PViewports))
	for i, v := range s.PViewports {
		viewports[i] = vulkan.Viewport{
			X:        v.X,
			Y:        v.Y,
			Width:    v.Width,
			Height:   v.Height,
			MinDepth: v.MinDepth,
			MaxDepth: v.MaxDepth,
		}
	}
	scissors := make([]vulkan.Rect2D, len(s.PScissors))
	for i, r := range s.PScissors {
		scissors[i] = vulkan.Rect2D{
			Offset: vulkan.Offset2D{X: r.Offset.X, Y: r.Offset.Y},
			Extent: vulkan.Extent2D{Width: r.Extent.Width, Height: r.Extent.Height},
		}
	}
	return &vulkan.PipelineViewportStateCreateInfo{
		SType:         vulkan.StructureType(s.SType),
		Flags:         vulkan.PipelineViewportStateCreateFlags(s.Flags),
		ViewportCount: s.ViewportCount,
		PViewports:    viewports,
		ScissorCount:  s.ScissorCount,
		PScissors:     scissors,
	}
}

func colorBlendState(s *vk.PipelineColorBlendStateCreateInfo) *vulkan.PipelineColorBlendStateCreateInfo {
	if s == nil {
		return nil
	}
	attachments := make([]vulkan.PipelineColorBlendAttachmentState, len(s.PAttachments))
	for i, a := range s.PAttachments {
		attachments[i] = vulkan.PipelineColorBlendAttachmentState{
			BlendEnable:         vulkan.Bool32(a.BlendEnable),
			SrcColorBlendFactor: vulkan.BlendFactor(a.SrcColorBlendFactor),
			DstColorBlendFactor: vulkan.BlendFactor(a.DstColorBlendFactor),
			ColorBlendOp:        vulkan.BlendOp(a.ColorBlendOp),
			SrcAlphaBlendFactor: vulkan.BlendFactor(a.SrcAlphaBlendFactor),
			DstAlphaBlendFactor: vulkan.BlendFactor(a.DstAlphaBlendFactor),
			AlphaBlendOp:        vulkan.BlendOp(a.AlphaBlendOp),
			ColorWriteMask:      vulkan.ColorComponentFlags(a.ColorWriteMask),
		}
	}
	return &vulkan.PipelineColorBlendStateCreateInfo{
		SType:           vulkan.StructureType(s.SType),
		Flags:           vulkan.PipelineColorBlendStateCreateFlags(s.Flags),
		LogicOpEnable:   vulkan.Bool32(s.LogicOpEnable),
		LogicOp:         vulkan.LogicOp(s.LogicOp),
		AttachmentCount: s.AttachmentCount,
		PAttachments:    attachments,
		BlendConstants:  s.BlendConstants,
	}
}

func pipelineInfo(info *vk.GraphicsPipelineCreateInfo) vulkan.GraphicsPipelineCreateInfo {
	out := vulkan.GraphicsPipelineCreateInfo{
		SType:              vulkan.StructureType(info.SType),
		Flags:              vulkan.PipelineCreateFlags(info.Flags),
		StageCount:         info.StageCount,
		PStages:            shaderStages(info.PStages),
		PVertexInputState:  vertexInputState(info.PVertexInputState),
		PViewportState:     viewportState(info.PViewportState),
		PColorBlendState:   colorBlendState(info.PColorBlendState),
		Layout:             vulkan.PipelineLayout(toPtr(uint64(info.Layout))),
		RenderPass:         vulkan.RenderPass(toPtr(uint64(info.RenderPass))),
		Subpass:            info.Subpass,
		BasePipelineHandle: vulkan.Pipeline(toPtr(uint64(info.BasePipelineHandle))),
		BasePipelineIndex:  info.BasePipelineIndex,
	}
	if s := info.PInputAssemblyState; s != nil {
		out.PInputAssemblyState = &vulkan.PipelineInputAssemblyStateCreateInfo{
			SType:                  vulkan.StructureType(s.SType),
			Flags:                  vulkan.PipelineInputAssemblyStateCreateFlags(s.Flags),
			Topology:               vulkan.PrimitiveTopology(s.Topology),
			PrimitiveRestartEnable: vulkan.Bool32(s.PrimitiveRestartEnable),
		}
	}
	if s := info.PRasterizationState; s != nil {
		out.PRasterizationState = &vulkan.PipelineRasterizationStateCreateInfo{
			SType:                   vulkan.StructureType(s.SType),
			Flags:                   vulkan.PipelineRasterizationStateCreateFlags(s.Flags),
			DepthClampEnable:        vulkan.Bool32(s.DepthClampEnable),
			RasterizerDiscardEnable: vulkan.Bool32(s.RasterizerDiscardEnable),
			PolygonMode:             vulkan.PolygonMode(s.PolygonMode),
			CullMode:                vulkan.CullModeFlags(s.CullMode),
			FrontFace:               vulkan.FrontFace(s.FrontFace),
			DepthBiasEnable:         vulkan.Bool32(s.DepthBiasEnable),
			DepthBiasConstantFactor: s.DepthBiasConstantFactor,
			DepthBiasClamp:          s.DepthBiasClamp,
			DepthBiasSlopeFactor:    s.DepthBiasSlopeFactor,
			LineWidth:               s.LineWidth,
		}
	}
	if s := info.PMultisampleState; s != nil {
		var mask []vulkan.SampleMask
		for _, m := range s.PSampleMask {
			mask = append(mask, vulkan.SampleMask(m))
		}
		out.PMultisampleState = &vulkan.PipelineMultisampleStateCreateInfo{
			SType:                 vulkan.StructureType(s.SType),
			Flags:                 vulkan.PipelineMultisampleStateCreateFlags(s.Flags),
			RasterizationSamples:  vulkan.SampleCountFlagBits(s.RasterizationSamples),
			SampleShadingEnable:   vulkan.Bool32(s.SampleShadingEnable),
			MinSampleShading:      s.MinSampleShading,
			PSampleMask:           mask,
			AlphaToCoverageEnable: vulkan.Bool32(s.AlphaToCoverageEnable),
			AlphaToOneEnable:      vulkan.Bool32(s.AlphaToOneEnable),
		}
	}
	if s := info.PDepthStencilState; s != nil {
		out.PDepthStencilState = &vulkan.PipelineDepthStencilStateCreateInfo{
			SType:                 vulkan.StructureType(s.SType),
			Flags:                 vulkan.PipelineDepthStencilStateCreateFlags(s.Flags),
			DepthTestEnable:       vulkan.Bool32(s.DepthTestEnable),
			DepthWriteEnable:      vulkan.Bool32(s.DepthWriteEnable),
			DepthCompareOp:        vulkan.CompareOp(s.DepthCompareOp),
			DepthBoundsTestEnable: vulkan.Bool32(s.DepthBoundsTestEnable),
			StencilTestEnable:     vulkan.Bool32(s.StencilTestEnable),
			Front:                 stencilState(s.Front),
			Back:                  stencilState(s.Back),
			MinDepthBounds:        s.MinDepthBounds,
			MaxDepthBounds:        s.MaxDepthBounds,
		}
	}
	if s := info.PDynamicState; s != nil {
		states := make([]vulkan.DynamicState, len(s.PDynamicStates))
		for i, st := range s.PDynamicStates {
			states[i] = vulkan.DynamicState(st)
		}
		out.PDynamicState = &vulkan.PipelineDynamicStateCreateInfo{
			SType:             vulkan.StructureType(s.SType),
			Flags:             vulkan.PipelineDynamicStateCreateFlags(s.Flags),
			DynamicStateCount: s.DynamicStateCount,
			PDynamicStates:    states,
		}
	}
	return out
}

func samplerInfo(info *vk.SamplerCreateInfo) vulkan.SamplerCreateInfo {
	return vulkan.SamplerCreateInfo{
		SType:                   vulkan.StructureType(info.SType),
		Flags:                   vulkan.SamplerCreateFlags(info.Flags),
		MagFilter:               vulkan.Filter(info.MagFilter),
		MinFilter:               vulkan.Filter(info.MinFilter),
		MipmapMode:              vulkan.SamplerMipmapMode(info.MipmapMode),
		AddressModeU:            vulkan.SamplerAddressMode(info.AddressModeU),
		AddressModeV:            vulkan.SamplerAddressMode(info.AddressModeV),
		AddressModeW:            vulkan.SamplerAddressMode(info.AddressModeW),
		MipLodBias:              info.MipLodBias,
		AnisotropyEnable:        vulkan.Bool32(info.AnisotropyEnable),
		MaxAnisotropy:           info.MaxAnisotropy,
		CompareEnable:           vulkan.Bool32(info.CompareEnable),
		CompareOp:               vulkan.CompareOp(info.CompareOp),
		MinLod:                  info.MinLod,
		MaxLod:                  info.MaxLod,
		BorderColor:             vulkan.BorderColor(info.BorderColor),
		UnnormalizedCoordinates: vulkan.Bool32(info.UnnormalizedCoordinates),
	}
}
