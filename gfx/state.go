package gfx

import "fmt"

// Comparison is a depth or stencil test function.
type Comparison uint8

// Comparison functions.
const (
	Never Comparison = iota
	Less
	LessEqual
	Equal
	GreaterEqual
	Greater
	NotEqual
	Always
)

// String returns the string representation of Comparison.
func (c Comparison) String() string {
	switch c {
	case Never:
		return "Never"
	case Less:
		return "Less"
	case LessEqual:
		return "LessEqual"
	case Equal:
		return "Equal"
	case GreaterEqual:
		return "GreaterEqual"
	case Greater:
		return "Greater"
	case NotEqual:
		return "NotEqual"
	case Always:
		return "Always"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Ptr returns a pointer to a copy of c, for optional fields.
func (c Comparison) Ptr() *Comparison { return &c }

// StencilOp is the action taken on a stencil value.
type StencilOp uint8

// Stencil operations.
const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilIncrementClamp
	StencilIncrementWrap
	StencilDecrementClamp
	StencilDecrementWrap
	StencilInvert
)

// StencilSide is the stencil test for one face orientation.
// The reference value is set per draw.
type StencilSide struct {
	Fun         Comparison
	MaskRead    uint8
	MaskWrite   uint8
	OpFail      StencilOp
	OpDepthFail StencilOp
	OpPass      StencilOp
}

// Depth is the depth test configuration.
type Depth struct {
	Fun   Comparison
	Write bool
}

// DepthStencilInfo combines the optional depth and stencil tests. A nil
// member disables the corresponding test.
type DepthStencilInfo struct {
	Depth *Depth
	Front *StencilSide
	Back  *StencilSide
}

// CullFace selects which faces are discarded.
type CullFace uint8

// Cull modes.
const (
	CullNothing CullFace = iota
	CullFront
	CullBack
)

// FrontFace selects the winding of front-facing polygons.
type FrontFace uint8

// Windings.
const (
	CounterClockwise FrontFace = iota
	Clockwise
)

// RasterKind enumerates polygon rasterization modes.
type RasterKind uint8

// Raster kinds.
const (
	RasterFill RasterKind = iota
	RasterLine
	RasterPoint
)

// RasterMethod selects how polygons are rasterized.
type RasterMethod struct {
	Kind RasterKind
	// Width is the line width for RasterLine.
	Width uint8
}

// Raster methods.
var (
	Fill  = RasterMethod{Kind: RasterFill}
	Point = RasterMethod{Kind: RasterPoint}
)

// Line returns a wireframe method with the given line width.
func Line(width uint8) RasterMethod { return RasterMethod{Kind: RasterLine, Width: width} }

// Offset is a polygon depth offset: slope factor and constant units.
type Offset struct {
	Slope int32
	Units int32
}

// Rasterizer is the fixed-function rasterizer state.
type Rasterizer struct {
	FrontFace FrontFace
	CullFace  CullFace
	Method    RasterMethod
	// Offset enables depth bias when non-nil.
	Offset *Offset
}

// NewRasterizerFill returns a filling rasterizer without culling.
func NewRasterizerFill() Rasterizer {
	return Rasterizer{FrontFace: CounterClockwise, CullFace: CullNothing, Method: Fill}
}

// Equation combines source and destination in a blend.
type Equation uint8

// Blend equations.
const (
	EquationAdd Equation = iota
	EquationSub
	EquationRevSub
	EquationMin
	EquationMax
)

// BlendValue is a quantity a blend factor can be built from.
type BlendValue uint8

// Blend values.
const (
	SourceColor BlendValue = iota
	SourceAlpha
	DestColor
	DestAlpha
	ConstColor
	ConstAlpha
)

// FactorKind enumerates blend factor forms.
type FactorKind uint8

// Blend factor forms.
const (
	FactorZero FactorKind = iota
	FactorOne
	FactorSourceAlphaSaturated
	FactorZeroPlus
	FactorOneMinus
)

// Factor is a blend factor.
type Factor struct {
	Kind  FactorKind
	Value BlendValue
}

// Constant blend factors.
var (
	ZeroFactor                 = Factor{Kind: FactorZero}
	OneFactor                  = Factor{Kind: FactorOne}
	SourceAlphaSaturatedFactor = Factor{Kind: FactorSourceAlphaSaturated}
)

// ZeroPlus returns the factor v.
func ZeroPlus(v BlendValue) Factor { return Factor{Kind: FactorZeroPlus, Value: v} }

// OneMinus returns the factor 1 - v.
func OneMinus(v BlendValue) Factor { return Factor{Kind: FactorOneMinus, Value: v} }

// BlendChannel is the blend setup of either the color or alpha channel.
type BlendChannel struct {
	Equation    Equation
	Source      Factor
	Destination Factor
}

// ColorMask selects which color components are written.
type ColorMask uint8

// Color mask bits.
const (
	MaskRed ColorMask = 1 << iota
	MaskGreen
	MaskBlue
	MaskAlpha

	MaskNone ColorMask = 0
	MaskAll            = MaskRed | MaskGreen | MaskBlue | MaskAlpha
)

// ColorInfo is the output state of one color target.
type ColorInfo struct {
	Mask ColorMask
	// Color and Alpha enable blending of that channel when non-nil.
	Color *BlendChannel
	Alpha *BlendChannel
}

// NewColorInfo returns a non-blending target writing all components.
func NewColorInfo() ColorInfo { return ColorInfo{Mask: MaskAll} }

// AlphaBlend returns straight-alpha "source over" blending.
func AlphaBlend() ColorInfo {
	over := &BlendChannel{
		Equation:    EquationAdd,
		Source:      ZeroPlus(SourceAlpha),
		Destination: OneMinus(SourceAlpha),
	}
	return ColorInfo{Mask: MaskAll, Color: over, Alpha: over}
}
