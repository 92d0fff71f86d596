package gfx

import "fmt"

// Slot limits of a pipeline descriptor.
const (
	MaxVertexBuffers    = 16
	MaxVertexAttributes = 16
	MaxConstantBuffers  = 14
	MaxResourceViews    = 32
	MaxUnorderedViews   = 4
	MaxSamplers         = 16
	MaxColorTargets     = 4
)

// Primitive is the input assembly topology.
type Primitive uint8

// Topologies.
const (
	PointList Primitive = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
	LineListAdjacency
	LineStripAdjacency
	TriangleListAdjacency
	TriangleStripAdjacency
)

// String returns the string representation of Primitive.
func (p Primitive) String() string {
	switch p {
	case PointList:
		return "PointList"
	case LineList:
		return "LineList"
	case LineStrip:
		return "LineStrip"
	case TriangleList:
		return "TriangleList"
	case TriangleStrip:
		return "TriangleStrip"
	case LineListAdjacency:
		return "LineListAdjacency"
	case LineStripAdjacency:
		return "LineStripAdjacency"
	case TriangleListAdjacency:
		return "TriangleListAdjacency"
	case TriangleStripAdjacency:
		return "TriangleStripAdjacency"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// VertexBufferDesc is one vertex buffer binding.
type VertexBufferDesc struct {
	// Stride is the byte distance between consecutive elements.
	Stride uint32
	// Rate is zero for per-vertex data and the instance divisor otherwise.
	Rate uint8
}

// AttributeDesc is one vertex attribute.
type AttributeDesc struct {
	// Buffer is the vertex buffer slot the attribute reads from.
	Buffer uint8
	Format Format
	Offset uint32
}

// ColorTargetDesc is one color output.
type ColorTargetDesc struct {
	Format Format
	Info   ColorInfo
}

// DepthStencilTarget is the optional depth-stencil output.
type DepthStencilTarget struct {
	Format Format
	Info   DepthStencilInfo
}

// PipelineDesc is the full description of a graphics pipeline.
//
// Binding slots are fixed-size arrays. A zero StageMask or a nil pointer
// marks the slot as unused; used slots keep their array index as their
// binding number.
type PipelineDesc struct {
	Primitive  Primitive
	Rasterizer Rasterizer

	VertexBuffers [MaxVertexBuffers]*VertexBufferDesc
	Attributes    [MaxVertexAttributes]*AttributeDesc

	ConstantBuffers [MaxConstantBuffers]StageMask
	ResourceViews   [MaxResourceViews]StageMask
	UnorderedViews  [MaxUnorderedViews]StageMask
	Samplers        [MaxSamplers]StageMask

	ColorTargets [MaxColorTargets]*ColorTargetDesc
	DepthStencil *DepthStencilTarget
}

// NewPipelineDesc returns a descriptor with the given topology and
// rasterizer and no bindings.
func NewPipelineDesc(p Primitive, r Rasterizer) *PipelineDesc {
	return &PipelineDesc{Primitive: p, Rasterizer: r}
}
