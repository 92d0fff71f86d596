package gfxvk

import (
	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/internal/translate"
	"github.com/gogpu/gfxvk/resource"
	"github.com/gogpu/gfxvk/vk"
)

// dynamicStates are set per draw and never baked into a pipeline.
var dynamicStates = []vk.DynamicState{
	vk.DynamicStateViewport,
	vk.DynamicStateScissor,
	vk.DynamicStateBlendConstants,
	vk.DynamicStateStencilReference,
}

// pipelineLayout is everything of a pipeline descriptor that can fail,
// resolved before any native object exists.
type pipelineLayout struct {
	bindings    []vk.DescriptorSetLayoutBinding
	attachments []vk.AttachmentDescription
	colorRefs   []vk.AttachmentReference
	depthRef    *vk.AttachmentReference
	blends      []vk.PipelineColorBlendAttachmentState
	vbufs       []vk.VertexInputBindingDescription
	attributes  []vk.VertexInputAttributeDescription
}

type bindingCategory struct {
	name  string
	kind  vk.DescriptorType
	slots []gfx.StageMask
}

// resolvePipeline checks desc and builds its native records. Binding
// numbers are slot indices; two categories may not share one.
func resolvePipeline(desc *gfx.PipelineDesc) (*pipelineLayout, error) {
	var pl pipelineLayout

	used := make(map[uint32]string)
	categories := []bindingCategory{
		{"constant buffer", vk.DescriptorTypeUniformBuffer, desc.ConstantBuffers[:]},
		{"resource view", vk.DescriptorTypeSampledImage, desc.ResourceViews[:]},
		{"unordered view", vk.DescriptorTypeStorageImage, desc.UnorderedViews[:]},
		{"sampler", vk.DescriptorTypeSampler, desc.Samplers[:]},
	}
	for _, c := range categories {
		for i, mask := range c.slots {
			if mask == gfx.VisibleNone {
				continue
			}
			binding := uint32(i)
			if other, ok := used[binding]; ok {
				return nil, creationErrorf("binding %d used by both %s and %s", binding, other, c.name)
			}
			flags := translate.StageFlags(mask)
			if flags == 0 {
				return nil, creationErrorf("%s %d has no known stage in mask %#x", c.name, i, uint8(mask))
			}
			used[binding] = c.name
			pl.bindings = append(pl.bindings, vk.DescriptorSetLayoutBinding{
				Binding:         binding,
				DescriptorType:  c.kind,
				DescriptorCount: 1,
				StageFlags:      flags,
			})
		}
	}

	for i, vb := range desc.VertexBuffers {
		if vb == nil {
			continue
		}
		pl.vbufs = append(pl.vbufs, vk.VertexInputBindingDescription{
			Binding:   uint32(i),
			Stride:    vb.Stride,
			InputRate: translate.VertexInputRate(vb.Rate),
		})
	}
	for i, at := range desc.Attributes {
		if at == nil {
			continue
		}
		if int(at.Buffer) >= len(desc.VertexBuffers) || desc.VertexBuffers[at.Buffer] == nil {
			return nil, creationErrorf("attribute %d reads unbound vertex buffer %d", i, at.Buffer)
		}
		format, ok := translate.Format(at.Format.Surface, at.Format.Channel)
		if !ok {
			return nil, creationErrorf("attribute %d has unsupported format %v", i, at.Format)
		}
		pl.attributes = append(pl.attributes, vk.VertexInputAttributeDescription{
			Location: uint32(i),
			Binding:  uint32(at.Buffer),
			Format:   format,
			Offset:   at.Offset,
		})
	}

	layout := translate.ImageLayout(gfx.BindRenderTarget)
	for i, ct := range desc.ColorTargets {
		if ct == nil {
			continue
		}
		format, ok := translate.Format(ct.Format.Surface, ct.Format.Channel)
		if !ok {
			return nil, creationErrorf("color target %d has unsupported format %v", i, ct.Format)
		}
		pl.colorRefs = append(pl.colorRefs, vk.AttachmentReference{
			Attachment: uint32(len(pl.attachments)),
			Layout:     layout,
		})
		pl.attachments = append(pl.attachments, attachment(format, layout))
		pl.blends = append(pl.blends, translate.Blend(ct.Info))
	}
	if ds := desc.DepthStencil; ds != nil {
		format, ok := translate.Format(ds.Format.Surface, ds.Format.Channel)
		if !ok {
			return nil, creationErrorf("depth-stencil target has unsupported format %v", ds.Format)
		}
		pl.depthRef = &vk.AttachmentReference{
			Attachment: uint32(len(pl.attachments)),
			Layout:     layout,
		}
		pl.attachments = append(pl.attachments, attachment(format, layout))
	}
	return &pl, nil
}

// attachment keeps the previous contents of a target and stores the
// result, for both the color or depth plane and the stencil plane.
func attachment(format vk.Format, layout vk.ImageLayout) vk.AttachmentDescription {
	return vk.AttachmentDescription{
		Format:         format,
		Samples:        vk.SampleCount1Bit,
		LoadOp:         vk.AttachmentLoadOpLoad,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpLoad,
		StencilStoreOp: vk.AttachmentStoreOpStore,
		InitialLayout:  layout,
		FinalLayout:    layout,
	}
}

// poolSizes sizes a descriptor pool for capacity sets of the given layout.
func poolSizes(bindings []vk.DescriptorSetLayoutBinding, capacity uint32) []vk.DescriptorPoolSize {
	counts := make(map[vk.DescriptorType]uint32)
	var order []vk.DescriptorType
	for _, b := range bindings {
		if _, ok := counts[b.DescriptorType]; !ok {
			order = append(order, b.DescriptorType)
		}
		counts[b.DescriptorType] += b.DescriptorCount
	}
	if len(order) == 0 {
		return []vk.DescriptorPoolSize{{Type: vk.DescriptorTypeSampler, DescriptorCount: 1}}
	}
	sizes := make([]vk.DescriptorPoolSize, len(order))
	for i, t := range order {
		sizes[i] = vk.DescriptorPoolSize{Type: t, DescriptorCount: counts[t] * capacity}
	}
	return sizes
}

func rasterizationState(r gfx.Rasterizer) vk.PipelineRasterizationStateCreateInfo {
	mode, width := translate.PolygonMode(r.Method)
	s := vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        vk.True,
		RasterizerDiscardEnable: vk.False,
		PolygonMode:             mode,
		CullMode:                translate.CullMode(r.CullFace),
		FrontFace:               translate.FrontFace(r.FrontFace),
		DepthBiasEnable:         vk.B(r.Offset != nil),
		DepthBiasClamp:          1,
		LineWidth:               width,
	}
	if o := r.Offset; o != nil {
		s.DepthBiasConstantFactor = float32(o.Units)
		s.DepthBiasSlopeFactor = float32(o.Slope)
	}
	return s
}

func depthStencilState(target *gfx.DepthStencilTarget) vk.PipelineDepthStencilStateCreateInfo {
	s := vk.PipelineDepthStencilStateCreateInfo{
		SType:          vk.StructureTypePipelineDepthStencilStateCreateInfo,
		DepthCompareOp: vk.CompareOpNever,
		Front:          translate.StencilSide(nil),
		Back:           translate.StencilSide(nil),
		MinDepthBounds: 0,
		MaxDepthBounds: 1,
	}
	if target == nil {
		return s
	}
	info := target.Info
	if d := info.Depth; d != nil {
		s.DepthTestEnable = vk.True
		s.DepthWriteEnable = vk.B(d.Write)
		s.DepthCompareOp = translate.Comparison(d.Fun)
	}
	if info.Front != nil || info.Back != nil {
		s.StencilTestEnable = vk.True
		s.Front = translate.StencilSide(info.Front)
		s.Back = translate.StencilSide(info.Back)
	}
	return s
}

// CreatePipelineState compiles prog and desc into a graphics pipeline
// with its own render pass, descriptor set layout, pipeline layout and
// descriptor pool. Constant buffer, resource view, unordered view and
// sampler slots share one binding namespace, so slot i may be used by at
// most one of them. An unusable descriptor returns a *CreationError and
// creates no native object. The pipeline keeps prog alive.
func (f *Factory) CreatePipelineState(prog handle.Program, desc *gfx.PipelineDesc) (handle.PipelineState, error) {
	f.ensureOpen()
	if desc == nil {
		return handle.PipelineState{}, creationErrorf("nil pipeline descriptor")
	}
	program, err := f.handles.Program(prog)
	if err != nil {
		return handle.PipelineState{}, err
	}
	pl, err := resolvePipeline(desc)
	if err != nil {
		return handle.PipelineState{}, err
	}

	setInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(pl.bindings)),
		PBindings:    pl.bindings,
	}
	setLayout, res := f.dev.CreateDescriptorSetLayout(&setInfo)
	check("CreateDescriptorSetLayout", res)

	layoutInfo := vk.PipelineLayoutCreateInfo{
		SType:          vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount: 1,
		PSetLayouts:    []vk.DescriptorSetLayout{setLayout},
	}
	layout, res := f.dev.CreatePipelineLayout(&layoutInfo)
	check("CreatePipelineLayout", res)

	sizes := poolSizes(pl.bindings, f.opts.poolCapacity)
	poolInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       f.opts.poolCapacity,
		PoolSizeCount: uint32(len(sizes)),
		PPoolSizes:    sizes,
	}
	pool, res := f.dev.CreateDescriptorPool(&poolInfo)
	check("CreateDescriptorPool", res)

	passInfo := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(pl.attachments)),
		PAttachments:    pl.attachments,
		SubpassCount:    1,
		PSubpasses: []vk.SubpassDescription{{
			PipelineBindPoint:       vk.PipelineBindPointGraphics,
			ColorAttachmentCount:    uint32(len(pl.colorRefs)),
			PColorAttachments:       pl.colorRefs,
			PDepthStencilAttachment: pl.depthRef,
		}},
	}
	pass, res := f.dev.CreateRenderPass(&passInfo)
	check("CreateRenderPass", res)

	stages := f.shaderStages(program)
	vertexInput := vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(pl.vbufs)),
		PVertexBindingDescriptions:      pl.vbufs,
		VertexAttributeDescriptionCount: uint32(len(pl.attributes)),
		PVertexAttributeDescriptions:    pl.attributes,
	}
	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               translate.Topology(desc.Primitive),
		PrimitiveRestartEnable: vk.False,
	}
	viewport := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		PViewports:    []vk.Viewport{f.opts.viewport},
		ScissorCount:  1,
		PScissors:     []vk.Rect2D{f.opts.scissor},
	}
	raster := rasterizationState(desc.Rasterizer)
	multisample := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCount1Bit,
	}
	depthStencil := depthStencilState(desc.DepthStencil)
	blend := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   vk.False,
		LogicOp:         vk.LogicOpClear,
		AttachmentCount: uint32(len(pl.blends)),
		PAttachments:    pl.blends,
	}
	dynamic := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: uint32(len(dynamicStates)),
		PDynamicStates:    dynamicStates,
	}

	info := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             stages,
		PVertexInputState:   &vertexInput,
		PInputAssemblyState: &inputAssembly,
		PViewportState:      &viewport,
		PRasterizationState: &raster,
		PMultisampleState:   &multisample,
		PDepthStencilState:  &depthStencil,
		PColorBlendState:    &blend,
		PDynamicState:       &dynamic,
		Layout:              layout,
		RenderPass:          pass,
		Subpass:             0,
		BasePipelineHandle:  vk.NullPipeline,
		BasePipelineIndex:   -1,
	}
	pipeline, res := f.dev.CreateGraphicsPipeline(&info)
	check("CreateGraphicsPipeline", res)

	rec := &resource.Pipeline{
		Pipeline:   pipeline,
		Layout:     layout,
		SetLayout:  setLayout,
		Pool:       pool,
		RenderPass: pass,
		Program:    program,
	}
	h, err := f.handles.AddPipeline(rec, prog)
	if err != nil {
		// The program went stale while the pipeline was built.
		destroyer{dev: f.dev}.RetirePipeline(rec)
		return handle.PipelineState{}, err
	}
	Logger().Debug("gfxvk: pipeline created",
		"pipeline", pipeline,
		"bindings", len(pl.bindings),
		"colorTargets", len(pl.colorRefs),
		"depthStencil", pl.depthRef != nil)
	return h, nil
}
