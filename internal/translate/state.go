package translate

import (
	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/vk"
)

// ShaderStage returns the native stage bit of s.
func ShaderStage(s gfx.Stage) vk.ShaderStageFlags {
	switch s {
	case gfx.StageGeometry:
		return vk.ShaderStageGeometryBit
	case gfx.StagePixel:
		return vk.ShaderStageFragmentBit
	default:
		return vk.ShaderStageVertexBit
	}
}

// StageFlags converts a visibility mask.
func StageFlags(m gfx.StageMask) vk.ShaderStageFlags {
	var flags vk.ShaderStageFlags
	if m.Contains(gfx.VisibleVertex) {
		flags |= vk.ShaderStageVertexBit
	}
	if m.Contains(gfx.VisibleGeometry) {
		flags |= vk.ShaderStageGeometryBit
	}
	if m.Contains(gfx.VisiblePixel) {
		flags |= vk.ShaderStageFragmentBit
	}
	return flags
}

var topologies = [...]vk.PrimitiveTopology{
	gfx.PointList:              vk.PrimitiveTopologyPointList,
	gfx.LineList:               vk.PrimitiveTopologyLineList,
	gfx.LineStrip:              vk.PrimitiveTopologyLineStrip,
	gfx.TriangleList:           vk.PrimitiveTopologyTriangleList,
	gfx.TriangleStrip:          vk.PrimitiveTopologyTriangleStrip,
	gfx.LineListAdjacency:      vk.PrimitiveTopologyLineListWithAdjacency,
	gfx.LineStripAdjacency:     vk.PrimitiveTopologyLineStripWithAdjacency,
	gfx.TriangleListAdjacency:  vk.PrimitiveTopologyTriangleListWithAdjacency,
	gfx.TriangleStripAdjacency: vk.PrimitiveTopologyTriangleStripWithAdjacency,
}

// Topology converts an input assembly topology.
func Topology(p gfx.Primitive) vk.PrimitiveTopology {
	if int(p) < len(topologies) {
		return topologies[p]
	}
	return vk.PrimitiveTopologyTriangleList
}

// PolygonMode returns the polygon mode and line width of m.
func PolygonMode(m gfx.RasterMethod) (vk.PolygonMode, float32) {
	switch m.Kind {
	case gfx.RasterPoint:
		return vk.PolygonModePoint, 1
	case gfx.RasterLine:
		if m.Width == 0 {
			return vk.PolygonModeLine, 1
		}
		return vk.PolygonModeLine, float32(m.Width)
	default:
		return vk.PolygonModeFill, 1
	}
}

// CullMode converts a cull face.
func CullMode(c gfx.CullFace) vk.CullModeFlags {
	switch c {
	case gfx.CullFront:
		return vk.CullModeFront
	case gfx.CullBack:
		return vk.CullModeBack
	default:
		return vk.CullModeNone
	}
}

// FrontFace converts a winding.
func FrontFace(f gfx.FrontFace) vk.FrontFace {
	if f == gfx.Clockwise {
		return vk.FrontFaceClockwise
	}
	return vk.FrontFaceCounterClockwise
}

var comparisons = [...]vk.CompareOp{
	gfx.Never:        vk.CompareOpNever,
	gfx.Less:         vk.CompareOpLess,
	gfx.LessEqual:    vk.CompareOpLessOrEqual,
	gfx.Equal:        vk.CompareOpEqual,
	gfx.GreaterEqual: vk.CompareOpGreaterOrEqual,
	gfx.Greater:      vk.CompareOpGreater,
	gfx.NotEqual:     vk.CompareOpNotEqual,
	gfx.Always:       vk.CompareOpAlways,
}

// Comparison converts a test function.
func Comparison(c gfx.Comparison) vk.CompareOp {
	if int(c) < len(comparisons) {
		return comparisons[c]
	}
	return vk.CompareOpAlways
}

var stencilOps = [...]vk.StencilOp{
	gfx.StencilKeep:           vk.StencilOpKeep,
	gfx.StencilZero:           vk.StencilOpZero,
	gfx.StencilReplace:        vk.StencilOpReplace,
	gfx.StencilIncrementClamp: vk.StencilOpIncrementAndClamp,
	gfx.StencilIncrementWrap:  vk.StencilOpIncrementAndWrap,
	gfx.StencilDecrementClamp: vk.StencilOpDecrementAndClamp,
	gfx.StencilDecrementWrap:  vk.StencilOpDecrementAndWrap,
	gfx.StencilInvert:         vk.StencilOpInvert,
}

// StencilOp converts a stencil action.
func StencilOp(op gfx.StencilOp) vk.StencilOp {
	if int(op) < len(stencilOps) {
		return stencilOps[op]
	}
	return vk.StencilOpKeep
}

// StencilSide converts the stencil test of one face. A nil side yields a
// test that always passes and keeps the stored value.
func StencilSide(s *gfx.StencilSide) vk.StencilOpState {
	if s == nil {
		return vk.StencilOpState{
			FailOp:      vk.StencilOpKeep,
			PassOp:      vk.StencilOpKeep,
			DepthFailOp: vk.StencilOpKeep,
			CompareOp:   vk.CompareOpAlways,
		}
	}
	return vk.StencilOpState{
		FailOp:      StencilOp(s.OpFail),
		PassOp:      StencilOp(s.OpPass),
		DepthFailOp: StencilOp(s.OpDepthFail),
		CompareOp:   Comparison(s.Fun),
		CompareMask: uint32(s.MaskRead),
		WriteMask:   uint32(s.MaskWrite),
	}
}

var blendValues = [...]vk.BlendFactor{
	gfx.SourceColor: vk.BlendFactorSrcColor,
	gfx.SourceAlpha: vk.BlendFactorSrcAlpha,
	gfx.DestColor:   vk.BlendFactorDstColor,
	gfx.DestAlpha:   vk.BlendFactorDstAlpha,
	gfx.ConstColor:  vk.BlendFactorConstantColor,
	gfx.ConstAlpha:  vk.BlendFactorConstantAlpha,
}

// BlendFactor converts a blend factor. The "one minus" form of every
// value directly follows it in the native enumeration.
func BlendFactor(f gfx.Factor) vk.BlendFactor {
	switch f.Kind {
	case gfx.FactorZero:
		return vk.BlendFactorZero
	case gfx.FactorOne:
		return vk.BlendFactorOne
	case gfx.FactorSourceAlphaSaturated:
		return vk.BlendFactorSrcAlphaSaturate
	}
	if int(f.Value) >= len(blendValues) {
		return vk.BlendFactorZero
	}
	v := blendValues[f.Value]
	if f.Kind == gfx.FactorOneMinus {
		return v + 1
	}
	return v
}

// Equation converts a blend equation.
func Equation(e gfx.Equation) vk.BlendOp {
	switch e {
	case gfx.EquationSub:
		return vk.BlendOpSubtract
	case gfx.EquationRevSub:
		return vk.BlendOpReverseSubtract
	case gfx.EquationMin:
		return vk.BlendOpMin
	case gfx.EquationMax:
		return vk.BlendOpMax
	default:
		return vk.BlendOpAdd
	}
}

// ColorMask converts a component write mask.
func ColorMask(m gfx.ColorMask) vk.ColorComponentFlags {
	var flags vk.ColorComponentFlags
	if m&gfx.MaskRed != 0 {
		flags |= vk.ColorComponentRBit
	}
	if m&gfx.MaskGreen != 0 {
		flags |= vk.ColorComponentGBit
	}
	if m&gfx.MaskBlue != 0 {
		flags |= vk.ColorComponentBBit
	}
	if m&gfx.MaskAlpha != 0 {
		flags |= vk.ColorComponentABit
	}
	return flags
}

// Blend converts the output state of one color target. Blending is
// enabled when either channel is set; an unset channel passes the source
// through.
func Blend(info gfx.ColorInfo) vk.PipelineColorBlendAttachmentState {
	s := vk.PipelineColorBlendAttachmentState{
		BlendEnable:         vk.B(info.Color != nil || info.Alpha != nil),
		SrcColorBlendFactor: vk.BlendFactorOne,
		DstColorBlendFactor: vk.BlendFactorZero,
		ColorBlendOp:        vk.BlendOpAdd,
		SrcAlphaBlendFactor: vk.BlendFactorOne,
		DstAlphaBlendFactor: vk.BlendFactorZero,
		AlphaBlendOp:        vk.BlendOpAdd,
		ColorWriteMask:      ColorMask(info.Mask),
	}
	if c := info.Color; c != nil {
		s.SrcColorBlendFactor = BlendFactor(c.Source)
		s.DstColorBlendFactor = BlendFactor(c.Destination)
		s.ColorBlendOp = Equation(c.Equation)
	}
	if a := info.Alpha; a != nil {
		s.SrcAlphaBlendFactor = BlendFactor(a.Source)
		s.DstAlphaBlendFactor = BlendFactor(a.Destination)
		s.AlphaBlendOp = Equation(a.Equation)
	}
	return s
}

// VertexInputRate returns per-vertex stepping for rate zero and
// per-instance stepping otherwise.
func VertexInputRate(rate uint8) vk.VertexInputRate {
	if rate == 0 {
		return vk.VertexInputRateVertex
	}
	return vk.VertexInputRateInstance
}
