package vk

// StructureType tags every creation-info record.
type StructureType int32

// Structure types.
const (
	StructureTypeMemoryAllocateInfo                   StructureType = 5
	StructureTypeFenceCreateInfo                      StructureType = 8
	StructureTypeBufferCreateInfo                     StructureType = 12
	StructureTypeImageCreateInfo                      StructureType = 14
	StructureTypeImageViewCreateInfo                  StructureType = 15
	StructureTypeShaderModuleCreateInfo               StructureType = 16
	StructureTypePipelineShaderStageCreateInfo        StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo   StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo StructureType = 20
	StructureTypePipelineViewportStateCreateInfo      StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo   StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo  StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo    StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo       StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo           StructureType = 28
	StructureTypePipelineLayoutCreateInfo             StructureType = 30
	StructureTypeSamplerCreateInfo                    StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo        StructureType = 32
	StructureTypeDescriptorPoolCreateInfo             StructureType = 33
	StructureTypeRenderPassCreateInfo                 StructureType = 38
	StructureTypeCommandPoolCreateInfo                StructureType = 39
	StructureTypeCommandBufferAllocateInfo            StructureType = 40
)

// SharingMode controls queue family ownership.
type SharingMode int32

// Sharing modes.
const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

// BufferCreateFlags are buffer creation flags.
type BufferCreateFlags uint32

// BufferUsageFlags is a set of buffer usages.
type BufferUsageFlags uint32

// Buffer usage bits.
const (
	BufferUsageTransferSrcBit        BufferUsageFlags = 0x00000001
	BufferUsageTransferDstBit        BufferUsageFlags = 0x00000002
	BufferUsageUniformTexelBufferBit BufferUsageFlags = 0x00000004
	BufferUsageStorageTexelBufferBit BufferUsageFlags = 0x00000008
	BufferUsageUniformBufferBit      BufferUsageFlags = 0x00000010
	BufferUsageStorageBufferBit      BufferUsageFlags = 0x00000020
	BufferUsageIndexBufferBit        BufferUsageFlags = 0x00000040
	BufferUsageVertexBufferBit       BufferUsageFlags = 0x00000080
	BufferUsageIndirectBufferBit     BufferUsageFlags = 0x00000100
)

// MemoryPropertyFlags describe a memory type.
type MemoryPropertyFlags uint32

// Memory property bits.
const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 0x00000001
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 0x00000002
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 0x00000004
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 0x00000008
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x00000010
)

// MemoryMapFlags are reserved.
type MemoryMapFlags uint32

// ImageCreateFlags are image creation flags.
type ImageCreateFlags uint32

// Image creation bits.
const (
	ImageCreateMutableFormatBit  ImageCreateFlags = 0x00000008
	ImageCreateCubeCompatibleBit ImageCreateFlags = 0x00000010
)

// ImageType is the dimensionality of an image.
type ImageType int32

// Image types.
const (
	ImageType1d ImageType = 0
	ImageType2d ImageType = 1
	ImageType3d ImageType = 2
)

// ImageViewType is the dimensionality of a view.
type ImageViewType int32

// Image view types.
const (
	ImageViewType1d        ImageViewType = 0
	ImageViewType2d        ImageViewType = 1
	ImageViewType3d        ImageViewType = 2
	ImageViewTypeCube      ImageViewType = 3
	ImageViewType1dArray   ImageViewType = 4
	ImageViewType2dArray   ImageViewType = 5
	ImageViewTypeCubeArray ImageViewType = 6
)

// ImageTiling is the texel arrangement of an image.
type ImageTiling int32

// Tilings.
const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

// ImageUsageFlags is a set of image usages.
type ImageUsageFlags uint32

// Image usage bits.
const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 0x00000001
	ImageUsageTransferDstBit            ImageUsageFlags = 0x00000002
	ImageUsageSampledBit                ImageUsageFlags = 0x00000004
	ImageUsageStorageBit                ImageUsageFlags = 0x00000008
	ImageUsageColorAttachmentBit        ImageUsageFlags = 0x00000010
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 0x00000020
)

// ImageLayout is the memory layout of an image subresource.
type ImageLayout int32

// Image layouts.
const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPreinitialized                ImageLayout = 8
	ImageLayoutPresentSrc                    ImageLayout = 1000001002
)

// ImageAspectFlags select image planes.
type ImageAspectFlags uint32

// Aspect bits.
const (
	ImageAspectColorBit   ImageAspectFlags = 0x00000001
	ImageAspectDepthBit   ImageAspectFlags = 0x00000002
	ImageAspectStencilBit ImageAspectFlags = 0x00000004
)

// SampleCountFlagBits is a sample count.
type SampleCountFlagBits uint32

// Sample counts.
const (
	SampleCount1Bit  SampleCountFlagBits = 0x00000001
	SampleCount2Bit  SampleCountFlagBits = 0x00000002
	SampleCount4Bit  SampleCountFlagBits = 0x00000004
	SampleCount8Bit  SampleCountFlagBits = 0x00000008
	SampleCount16Bit SampleCountFlagBits = 0x00000010
	SampleCount32Bit SampleCountFlagBits = 0x00000020
	SampleCount64Bit SampleCountFlagBits = 0x00000040
)

// ComponentSwizzle selects the source of a view component.
type ComponentSwizzle int32

// Component swizzles.
const (
	ComponentSwizzleIdentity ComponentSwizzle = 0
	ComponentSwizzleZero     ComponentSwizzle = 1
	ComponentSwizzleOne      ComponentSwizzle = 2
	ComponentSwizzleR        ComponentSwizzle = 3
	ComponentSwizzleG        ComponentSwizzle = 4
	ComponentSwizzleB        ComponentSwizzle = 5
	ComponentSwizzleA        ComponentSwizzle = 6
)

// ShaderStageFlags is a set of shader stages.
type ShaderStageFlags uint32

// Shader stage bits.
const (
	ShaderStageVertexBit   ShaderStageFlags = 0x00000001
	ShaderStageGeometryBit ShaderStageFlags = 0x00000008
	ShaderStageFragmentBit ShaderStageFlags = 0x00000010
	ShaderStageComputeBit  ShaderStageFlags = 0x00000020
)

// DescriptorType is the kind of resource a binding holds.
type DescriptorType int32

// Descriptor types.
const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
)

// AttachmentLoadOp is how an attachment is read at the start of a pass.
type AttachmentLoadOp int32

// Load ops.
const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

// AttachmentStoreOp is how an attachment is written at the end of a pass.
type AttachmentStoreOp int32

// Store ops.
const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

// PipelineBindPoint selects the pipeline kind of a subpass.
type PipelineBindPoint int32

// Bind points.
const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

// VertexInputRate is the stepping rate of a vertex binding.
type VertexInputRate int32

// Input rates.
const (
	VertexInputRateVertex   VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1
)

// PrimitiveTopology is the input assembly topology.
type PrimitiveTopology int32

// Topologies.
const (
	PrimitiveTopologyPointList                  PrimitiveTopology = 0
	PrimitiveTopologyLineList                   PrimitiveTopology = 1
	PrimitiveTopologyLineStrip                  PrimitiveTopology = 2
	PrimitiveTopologyTriangleList               PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip              PrimitiveTopology = 4
	PrimitiveTopologyTriangleFan                PrimitiveTopology = 5
	PrimitiveTopologyLineListWithAdjacency      PrimitiveTopology = 6
	PrimitiveTopologyLineStripWithAdjacency     PrimitiveTopology = 7
	PrimitiveTopologyTriangleListWithAdjacency  PrimitiveTopology = 8
	PrimitiveTopologyTriangleStripWithAdjacency PrimitiveTopology = 9
	PrimitiveTopologyPatchList                  PrimitiveTopology = 10
)

// PolygonMode is the polygon rasterization mode.
type PolygonMode int32

// Polygon modes.
const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

// CullModeFlags select culled faces.
type CullModeFlags uint32

// Cull modes.
const (
	CullModeNone  CullModeFlags = 0
	CullModeFront CullModeFlags = 0x00000001
	CullModeBack  CullModeFlags = 0x00000002
)

// FrontFace is the front-facing winding.
type FrontFace int32

// Windings.
const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

// CompareOp is a comparison function.
type CompareOp int32

// Compare ops.
const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

// StencilOp is a stencil update action.
type StencilOp int32

// Stencil ops.
const (
	StencilOpKeep              StencilOp = 0
	StencilOpZero              StencilOp = 1
	StencilOpReplace           StencilOp = 2
	StencilOpIncrementAndClamp StencilOp = 3
	StencilOpDecrementAndClamp StencilOp = 4
	StencilOpInvert            StencilOp = 5
	StencilOpIncrementAndWrap  StencilOp = 6
	StencilOpDecrementAndWrap  StencilOp = 7
)

// BlendFactor is a blend multiplier.
type BlendFactor int32

// Blend factors.
const (
	BlendFactorZero                  BlendFactor = 0
	BlendFactorOne                   BlendFactor = 1
	BlendFactorSrcColor              BlendFactor = 2
	BlendFactorOneMinusSrcColor      BlendFactor = 3
	BlendFactorDstColor              BlendFactor = 4
	BlendFactorOneMinusDstColor      BlendFactor = 5
	BlendFactorSrcAlpha              BlendFactor = 6
	BlendFactorOneMinusSrcAlpha      BlendFactor = 7
	BlendFactorDstAlpha              BlendFactor = 8
	BlendFactorOneMinusDstAlpha      BlendFactor = 9
	BlendFactorConstantColor         BlendFactor = 10
	BlendFactorOneMinusConstantColor BlendFactor = 11
	BlendFactorConstantAlpha         BlendFactor = 12
	BlendFactorOneMinusConstantAlpha BlendFactor = 13
	BlendFactorSrcAlphaSaturate      BlendFactor = 14
)

// BlendOp combines blend terms.
type BlendOp int32

// Blend ops.
const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

// ColorComponentFlags select written color components.
type ColorComponentFlags uint32

// Color component bits.
const (
	ColorComponentRBit ColorComponentFlags = 0x00000001
	ColorComponentGBit ColorComponentFlags = 0x00000002
	ColorComponentBBit ColorComponentFlags = 0x00000004
	ColorComponentABit ColorComponentFlags = 0x00000008
)

// LogicOp is a framebuffer logic operation.
type LogicOp int32

// Logic ops used by gfxvk.
const (
	LogicOpClear LogicOp = 0
	LogicOpCopy  LogicOp = 3
)

// DynamicState is a piece of state set per draw.
type DynamicState int32

// Dynamic states.
const (
	DynamicStateViewport           DynamicState = 0
	DynamicStateScissor            DynamicState = 1
	DynamicStateLineWidth          DynamicState = 2
	DynamicStateDepthBias          DynamicState = 3
	DynamicStateBlendConstants     DynamicState = 4
	DynamicStateDepthBounds        DynamicState = 5
	DynamicStateStencilCompareMask DynamicState = 6
	DynamicStateStencilWriteMask   DynamicState = 7
	DynamicStateStencilReference   DynamicState = 8
)

// Filter is a texel filter.
type Filter int32

// Filters.
const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

// SamplerMipmapMode is the mip filter.
type SamplerMipmapMode int32

// Mipmap modes.
const (
	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1
)

// SamplerAddressMode is a wrap mode.
type SamplerAddressMode int32

// Address modes.
const (
	SamplerAddressModeRepeat         SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat SamplerAddressMode = 1
	SamplerAddressModeClampToEdge    SamplerAddressMode = 2
	SamplerAddressModeClampToBorder  SamplerAddressMode = 3
)

// BorderColor is a predefined border color.
type BorderColor int32

// Border colors.
const (
	BorderColorFloatTransparentBlack BorderColor = 0
	BorderColorIntTransparentBlack   BorderColor = 1
	BorderColorFloatOpaqueBlack      BorderColor = 2
	BorderColorIntOpaqueBlack        BorderColor = 3
	BorderColorFloatOpaqueWhite      BorderColor = 4
	BorderColorIntOpaqueWhite        BorderColor = 5
)

// FenceCreateFlags are fence creation flags.
type FenceCreateFlags uint32

// Fence creation bits.
const FenceCreateSignaledBit FenceCreateFlags = 0x00000001

// CommandPoolCreateFlags are command pool creation flags.
type CommandPoolCreateFlags uint32

// Command pool creation bits.
const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 0x00000001
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 0x00000002
)

// CommandBufferLevel is primary or secondary.
type CommandBufferLevel int32

// Command buffer levels.
const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)
