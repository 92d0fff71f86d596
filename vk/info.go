package vk

import "unsafe"

// Info is implemented by every tagged creation-info record. Drivers use
// it to check the structure type and the reserved extension pointer.
type Info interface {
	Tag() (StructureType, unsafe.Pointer)
}

// BufferCreateInfo describes a buffer.
type BufferCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 BufferCreateFlags
	Size                  DeviceSize
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   []uint32
}

// MemoryAllocateInfo requests a device memory allocation.
type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

// ImageCreateInfo describes an image.
type ImageCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 ImageCreateFlags
	ImageType             ImageType
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               SampleCountFlagBits
	Tiling                ImageTiling
	Usage                 ImageUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   []uint32
	InitialLayout         ImageLayout
}

// ComponentMapping is a per-component swizzle.
type ComponentMapping struct {
	R ComponentSwizzle
	G ComponentSwizzle
	B ComponentSwizzle
	A ComponentSwizzle
}

// ImageSubresourceRange selects mips, layers and planes of an image.
type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ImageViewCreateInfo describes an image view.
type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

// ShaderModuleCreateInfo wraps SPIR-V code.
type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    unsafe.Pointer
	Flags    uint32
	CodeSize uint
	PCode    []uint32
}

// DescriptorSetLayoutBinding is one binding of a set layout.
type DescriptorSetLayoutBinding struct {
	Binding         uint32
	DescriptorType  DescriptorType
	DescriptorCount uint32
	StageFlags      ShaderStageFlags
}

// DescriptorSetLayoutCreateInfo describes a descriptor set layout.
type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        unsafe.Pointer
	Flags        uint32
	BindingCount uint32
	PBindings    []DescriptorSetLayoutBinding
}

// PushConstantRange is a push constant block.
type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

// PipelineLayoutCreateInfo describes a pipeline layout.
type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  uint32
	SetLayoutCount         uint32
	PSetLayouts            []DescriptorSetLayout
	PushConstantRangeCount uint32
	PPushConstantRanges    []PushConstantRange
}

// DescriptorPoolSize is the capacity for one descriptor type.
type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

// DescriptorPoolCreateInfo describes a descriptor pool.
type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         uint32
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    []DescriptorPoolSize
}

// AttachmentDescription is one render pass attachment.
type AttachmentDescription struct {
	Flags          uint32
	Format         Format
	Samples        SampleCountFlagBits
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

// AttachmentReference points a subpass at an attachment.
type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

// SubpassDescription is one subpass of a render pass.
type SubpassDescription struct {
	Flags                   uint32
	PipelineBindPoint       PipelineBindPoint
	InputAttachmentCount    uint32
	PInputAttachments       []AttachmentReference
	ColorAttachmentCount    uint32
	PColorAttachments       []AttachmentReference
	PResolveAttachments     []AttachmentReference
	PDepthStencilAttachment *AttachmentReference
	PreserveAttachmentCount uint32
	PPreserveAttachments    []uint32
}

// SubpassDependency orders two subpasses.
type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    uint32
	DstStageMask    uint32
	SrcAccessMask   uint32
	DstAccessMask   uint32
	DependencyFlags uint32
}

// RenderPassCreateInfo describes a render pass.
type RenderPassCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	AttachmentCount uint32
	PAttachments    []AttachmentDescription
	SubpassCount    uint32
	PSubpasses      []SubpassDescription
	DependencyCount uint32
	PDependencies   []SubpassDependency
}

// PipelineShaderStageCreateInfo is one programmable stage.
type PipelineShaderStageCreateInfo struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Flags  uint32
	Stage  ShaderStageFlags
	Module ShaderModule
	PName  string
}

// VertexInputBindingDescription is one vertex buffer binding.
type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

// VertexInputAttributeDescription is one vertex attribute.
type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

// PipelineVertexInputStateCreateInfo is the vertex input state.
type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	PNext                           unsafe.Pointer
	Flags                           uint32
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      []VertexInputBindingDescription
	VertexAttributeDescriptionCount uint32
	PVertexAttributeDescriptions    []VertexInputAttributeDescription
}

// PipelineInputAssemblyStateCreateInfo is the input assembly state.
type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  uint32
	Topology               PrimitiveTopology
	PrimitiveRestartEnable Bool32
}

// PipelineViewportStateCreateInfo is the viewport state.
type PipelineViewportStateCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         uint32
	ViewportCount uint32
	PViewports    []Viewport
	ScissorCount  uint32
	PScissors     []Rect2D
}

// PipelineRasterizationStateCreateInfo is the rasterizer state.
type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

// PipelineMultisampleStateCreateInfo is the multisample state.
type PipelineMultisampleStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	RasterizationSamples  SampleCountFlagBits
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	PSampleMask           []uint32
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

// StencilOpState is the stencil test of one face.
type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// PipelineDepthStencilStateCreateInfo is the depth-stencil state.
type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

// PipelineColorBlendAttachmentState is the blend state of one target.
type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

// PipelineColorBlendStateCreateInfo is the color blend state.
type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	LogicOpEnable   Bool32
	LogicOp         LogicOp
	AttachmentCount uint32
	PAttachments    []PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

// PipelineDynamicStateCreateInfo lists state set per draw.
type PipelineDynamicStateCreateInfo struct {
	SType             StructureType
	PNext             unsafe.Pointer
	Flags             uint32
	DynamicStateCount uint32
	PDynamicStates    []DynamicState
}

// GraphicsPipelineCreateInfo describes a graphics pipeline.
type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               uint32
	StageCount          uint32
	PStages             []PipelineShaderStageCreateInfo
	PVertexInputState   *PipelineVertexInputStateCreateInfo
	PInputAssemblyState *PipelineInputAssemblyStateCreateInfo
	PViewportState      *PipelineViewportStateCreateInfo
	PRasterizationState *PipelineRasterizationStateCreateInfo
	PMultisampleState   *PipelineMultisampleStateCreateInfo
	PDepthStencilState  *PipelineDepthStencilStateCreateInfo
	PColorBlendState    *PipelineColorBlendStateCreateInfo
	PDynamicState       *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}

// SamplerCreateInfo describes a sampler.
type SamplerCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             BorderColor
	UnnormalizedCoordinates Bool32
}

// FenceCreateInfo describes a fence.
type FenceCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags FenceCreateFlags
}

// CommandPoolCreateInfo describes a command pool.
type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

// CommandBufferAllocateInfo requests command buffers from a pool.
type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

func (i *BufferCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *MemoryAllocateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *ImageCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *ImageViewCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *ShaderModuleCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *DescriptorSetLayoutCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineLayoutCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *DescriptorPoolCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *RenderPassCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineShaderStageCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineVertexInputStateCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineInputAssemblyStateCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineViewportStateCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineRasterizationStateCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineMultisampleStateCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineDepthStencilStateCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineColorBlendStateCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *PipelineDynamicStateCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *GraphicsPipelineCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *SamplerCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *FenceCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *CommandPoolCreateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}

func (i *CommandBufferAllocateInfo) Tag() (StructureType, unsafe.Pointer) {
	return i.SType, i.PNext
}
