package translate

import (
	"errors"
	"testing"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/vk"
)

func TestFormatRoundTrip(t *testing.T) {
	for _, s := range gfx.SurfaceTypes() {
		for _, c := range gfx.ChannelTypes() {
			native, ok := Format(s, c)
			if !ok {
				continue
			}
			back, ok := InverseFormat(native)
			if !ok {
				t.Errorf("InverseFormat(%d) not found for %v/%v", native, s, c)
				continue
			}
			if back.Surface != s || back.Channel != c {
				t.Errorf("round trip %v/%v = %v", s, c, back)
			}
		}
	}
}

func TestFormatUnsupported(t *testing.T) {
	tests := []struct {
		surface gfx.SurfaceType
		channel gfx.ChannelType
	}{
		{gfx.R4G4, gfx.Float},
		{gfx.R8G8B8A8, gfx.Float},
		{gfx.R32, gfx.Unorm},
		{gfx.R11G11B10, gfx.Unorm},
		{gfx.D24, gfx.Float},
		{gfx.D24S8, gfx.Uint},
	}
	for _, tt := range tests {
		t.Run(tt.surface.String()+"/"+tt.channel.String(), func(t *testing.T) {
			if f, ok := Format(tt.surface, tt.channel); ok {
				t.Errorf("Format() = %d, want unsupported", f)
			}
		})
	}
}

func TestFormatKnownValues(t *testing.T) {
	tests := []struct {
		format gfx.Format
		want   vk.Format
	}{
		{gfx.Rgba8, 37},
		{gfx.Srgba8, 43},
		{gfx.Bgra8, 44},
		{gfx.Depth24, 125},
		{gfx.Depth32F, 126},
		{gfx.Depth24Stencil8, 129},
		{gfx.Vec4, 109},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, ok := Format(tt.format.Surface, tt.format.Channel)
			if !ok || got != tt.want {
				t.Errorf("Format() = (%d, %v), want %d", got, ok, tt.want)
			}
		})
	}
}

func TestViewFormatStencil(t *testing.T) {
	f, ok := ViewFormat(gfx.D24S8, gfx.Uint)
	if !ok || f != vk.FormatD24UnormS8Uint {
		t.Errorf("ViewFormat(D24S8, Uint) = (%d, %v)", f, ok)
	}
	if _, ok := ViewFormat(gfx.D16, gfx.Uint); ok {
		t.Error("ViewFormat(D16, Uint) should be unsupported")
	}
}

func TestImageAspect(t *testing.T) {
	tests := []struct {
		name    string
		surface gfx.SurfaceType
		channel gfx.ChannelType
		target  bool
		want    vk.ImageAspectFlags
	}{
		{"color", gfx.R8G8B8A8, gfx.Unorm, false, vk.ImageAspectColorBit},
		{"color target", gfx.R8G8B8A8, gfx.Unorm, true, vk.ImageAspectColorBit},
		{"depth", gfx.D32, gfx.Float, false, vk.ImageAspectDepthBit},
		{"depth stencil target", gfx.D24S8, gfx.Unorm, true, vk.ImageAspectDepthBit | vk.ImageAspectStencilBit},
		{"depth plane", gfx.D24S8, gfx.Unorm, false, vk.ImageAspectDepthBit},
		{"stencil plane", gfx.D24S8, gfx.Uint, false, vk.ImageAspectStencilBit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImageAspect(tt.surface, tt.channel, tt.target); got != tt.want {
				t.Errorf("ImageAspect() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestImageViewType(t *testing.T) {
	tests := []struct {
		name    string
		kind    gfx.Kind
		layer   gfx.OptionalLayer
		want    vk.ImageViewType
		errKind gfx.LayerErrorKind
		wantErr bool
		base    uint32
		count   uint32
	}{
		{"2d", gfx.D2(4, 4, 0), gfx.OptionalLayer{}, vk.ImageViewType2d, 0, false, 0, 1},
		{"2d layer", gfx.D2(4, 4, 0), gfx.AtLayer(0), 0, gfx.LayerNotExpected, true, 0, 0},
		{"3d", gfx.D3(4, 4, 4), gfx.OptionalLayer{}, vk.ImageViewType3d, 0, false, 0, 1},
		{"array", gfx.D2Array(4, 4, 3, 0), gfx.OptionalLayer{}, vk.ImageViewType2dArray, 0, false, 0, 3},
		{"array slice", gfx.D2Array(4, 4, 3, 0), gfx.AtLayer(2), vk.ImageViewType2d, 0, false, 2, 1},
		{"array overflow", gfx.D2Array(4, 4, 3, 0), gfx.AtLayer(3), 0, gfx.LayerOutOfBounds, true, 0, 0},
		{"1d array slice", gfx.D1Array(8, 2), gfx.AtLayer(1), vk.ImageViewType1d, 0, false, 1, 1},
		{"cube", gfx.Cube(8), gfx.OptionalLayer{}, vk.ImageViewTypeCube, 0, false, 0, 6},
		{"cube face", gfx.Cube(8), gfx.AtLayer(5), vk.ImageViewType2d, 0, false, 5, 1},
		{"cube array", gfx.CubeArray(8, 2), gfx.OptionalLayer{}, vk.ImageViewTypeCubeArray, 0, false, 0, 12},
		{"cube array slice", gfx.CubeArray(8, 2), gfx.AtLayer(1), vk.ImageViewTypeCube, 0, false, 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImageViewType(tt.kind, tt.layer)
			if tt.wantErr {
				var le *gfx.LayerError
				if !errors.As(err, &le) || le.Kind != tt.errKind {
					t.Fatalf("ImageViewType() err = %v, want layer error kind %d", err, tt.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ImageViewType() err = %v", err)
			}
			if got != tt.want {
				t.Errorf("ImageViewType() = %d, want %d", got, tt.want)
			}
			base, count := LayerRange(tt.kind, tt.layer)
			if base != tt.base || count != tt.count {
				t.Errorf("LayerRange() = (%d, %d), want (%d, %d)", base, count, tt.base, tt.count)
			}
		})
	}
}

func TestSubresourceRange(t *testing.T) {
	r := SubresourceRange(vk.ImageAspectColorBit, gfx.D2(16, 16, 0), gfx.OptionalLayer{}, 0, 0)
	want := vk.ImageSubresourceRange{AspectMask: vk.ImageAspectColorBit, LevelCount: 1, LayerCount: 1}
	if r != want {
		t.Errorf("SubresourceRange() = %+v, want %+v", r, want)
	}

	r = SubresourceRange(vk.ImageAspectColorBit, gfx.D2(16, 16, 0), gfx.OptionalLayer{}, 1, 3)
	if r.BaseMipLevel != 1 || r.LevelCount != 3 {
		t.Errorf("mip range = (%d, %d), want (1, 3)", r.BaseMipLevel, r.LevelCount)
	}
}

func TestImageUsage(t *testing.T) {
	tests := []struct {
		name   string
		bind   gfx.Bind
		usage  gfx.Usage
		flags  vk.ImageUsageFlags
		tiling vk.ImageTiling
	}{
		{"sampled", gfx.BindShaderResource, gfx.UsageGPUOnly, vk.ImageUsageSampledBit, vk.ImageTilingOptimal},
		{"target", gfx.BindRenderTarget, gfx.UsageGPUOnly, vk.ImageUsageColorAttachmentBit, vk.ImageTilingOptimal},
		{"depth", gfx.BindDepthStencil, gfx.UsageGPUOnly, vk.ImageUsageDepthStencilAttachmentBit, vk.ImageTilingOptimal},
		{"immutable", gfx.BindShaderResource, gfx.UsageImmutable, vk.ImageUsageSampledBit | vk.ImageUsageTransferDstBit, vk.ImageTilingOptimal},
		{"dynamic", gfx.BindShaderResource, gfx.UsageDynamic, vk.ImageUsageSampledBit | vk.ImageUsageTransferDstBit, vk.ImageTilingLinear},
		{"upload", 0, gfx.UsageCPUOnly(gfx.AccessWrite), vk.ImageUsageTransferSrcBit, vk.ImageTilingLinear},
		{"readback", 0, gfx.UsageCPUOnly(gfx.AccessRead), vk.ImageUsageTransferDstBit, vk.ImageTilingLinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, tiling := ImageUsage(tt.bind, tt.usage)
			if flags != tt.flags || tiling != tt.tiling {
				t.Errorf("ImageUsage() = (%#x, %d), want (%#x, %d)", flags, tiling, tt.flags, tt.tiling)
			}
		})
	}
}

func TestBufferUsage(t *testing.T) {
	tests := []struct {
		name string
		role gfx.BufferRole
		bind gfx.Bind
		want vk.BufferUsageFlags
	}{
		{"vertex", gfx.RoleVertex, 0, vk.BufferUsageVertexBufferBit},
		{"index", gfx.RoleIndex, 0, vk.BufferUsageIndexBufferBit},
		{"constant", gfx.RoleConstant, 0, vk.BufferUsageUniformBufferBit},
		{"staging", gfx.RoleStaging, 0, vk.BufferUsageTransferSrcBit | vk.BufferUsageTransferDstBit},
		{"storage", gfx.RoleVertex, gfx.BindUnorderedAccess, vk.BufferUsageVertexBufferBit | vk.BufferUsageStorageBufferBit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BufferUsage(tt.role, tt.bind); got != tt.want {
				t.Errorf("BufferUsage() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		aa   gfx.AaMode
		want vk.SampleCountFlagBits
	}{
		{0, vk.SampleCount1Bit},
		{1, vk.SampleCount1Bit},
		{4, vk.SampleCount4Bit},
		{6, vk.SampleCount4Bit},
		{255, vk.SampleCount64Bit},
	}
	for _, tt := range tests {
		if got := SampleCount(tt.aa); got != tt.want {
			t.Errorf("SampleCount(%d) = %d, want %d", tt.aa, got, tt.want)
		}
	}
}

func TestStageFlags(t *testing.T) {
	if got := StageFlags(gfx.VisibleAll); got != vk.ShaderStageVertexBit|vk.ShaderStageGeometryBit|vk.ShaderStageFragmentBit {
		t.Errorf("StageFlags(all) = %#x", got)
	}
	if got := StageFlags(gfx.VisiblePixel); got != vk.ShaderStageFragmentBit {
		t.Errorf("StageFlags(pixel) = %#x", got)
	}
	if got := ShaderStage(gfx.StageGeometry); got != vk.ShaderStageGeometryBit {
		t.Errorf("ShaderStage(geometry) = %#x", got)
	}
}

func TestPolygonMode(t *testing.T) {
	tests := []struct {
		name   string
		method gfx.RasterMethod
		mode   vk.PolygonMode
		width  float32
	}{
		{"fill", gfx.Fill, vk.PolygonModeFill, 1},
		{"point", gfx.Point, vk.PolygonModePoint, 1},
		{"line", gfx.Line(3), vk.PolygonModeLine, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, width := PolygonMode(tt.method)
			if mode != tt.mode || width != tt.width {
				t.Errorf("PolygonMode() = (%d, %v), want (%d, %v)", mode, width, tt.mode, tt.width)
			}
		})
	}
}

func TestBlendFactor(t *testing.T) {
	tests := []struct {
		factor gfx.Factor
		want   vk.BlendFactor
	}{
		{gfx.ZeroFactor, vk.BlendFactorZero},
		{gfx.OneFactor, vk.BlendFactorOne},
		{gfx.SourceAlphaSaturatedFactor, vk.BlendFactorSrcAlphaSaturate},
		{gfx.ZeroPlus(gfx.SourceAlpha), vk.BlendFactorSrcAlpha},
		{gfx.OneMinus(gfx.SourceAlpha), vk.BlendFactorOneMinusSrcAlpha},
		{gfx.OneMinus(gfx.ConstColor), vk.BlendFactorOneMinusConstantColor},
		{gfx.ZeroPlus(gfx.DestColor), vk.BlendFactorDstColor},
	}
	for _, tt := range tests {
		if got := BlendFactor(tt.factor); got != tt.want {
			t.Errorf("BlendFactor(%+v) = %d, want %d", tt.factor, got, tt.want)
		}
	}
}

func TestBlend(t *testing.T) {
	off := Blend(gfx.NewColorInfo())
	if off.BlendEnable != vk.False {
		t.Error("blending should be disabled without channels")
	}
	if off.ColorWriteMask != vk.ColorComponentRBit|vk.ColorComponentGBit|vk.ColorComponentBBit|vk.ColorComponentABit {
		t.Errorf("ColorWriteMask = %#x", off.ColorWriteMask)
	}

	over := Blend(gfx.AlphaBlend())
	if over.BlendEnable != vk.True {
		t.Error("blending should be enabled")
	}
	if over.SrcColorBlendFactor != vk.BlendFactorSrcAlpha || over.DstColorBlendFactor != vk.BlendFactorOneMinusSrcAlpha {
		t.Errorf("color factors = (%d, %d)", over.SrcColorBlendFactor, over.DstColorBlendFactor)
	}

	colorOnly := Blend(gfx.ColorInfo{Mask: gfx.MaskRed, Color: &gfx.BlendChannel{Equation: gfx.EquationMax}})
	if colorOnly.SrcAlphaBlendFactor != vk.BlendFactorOne || colorOnly.DstAlphaBlendFactor != vk.BlendFactorZero || colorOnly.AlphaBlendOp != vk.BlendOpAdd {
		t.Error("unset alpha channel should pass the source through")
	}
	if colorOnly.ColorBlendOp != vk.BlendOpMax {
		t.Errorf("ColorBlendOp = %d, want max", colorOnly.ColorBlendOp)
	}
}

func TestStencilSide(t *testing.T) {
	s := StencilSide(&gfx.StencilSide{
		Fun:         gfx.Equal,
		MaskRead:    0x0F,
		MaskWrite:   0xF0,
		OpFail:      gfx.StencilZero,
		OpDepthFail: gfx.StencilInvert,
		OpPass:      gfx.StencilIncrementWrap,
	})
	want := vk.StencilOpState{
		FailOp:      vk.StencilOpZero,
		PassOp:      vk.StencilOpIncrementAndWrap,
		DepthFailOp: vk.StencilOpInvert,
		CompareOp:   vk.CompareOpEqual,
		CompareMask: 0x0F,
		WriteMask:   0xF0,
	}
	if s != want {
		t.Errorf("StencilSide() = %+v, want %+v", s, want)
	}
	if StencilSide(nil).CompareOp != vk.CompareOpAlways {
		t.Error("nil side should always pass")
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		method gfx.FilterMethod
		min    vk.Filter
		mip    vk.SamplerMipmapMode
		aniso  float32
	}{
		{gfx.Scale, vk.FilterNearest, vk.SamplerMipmapModeNearest, 0},
		{gfx.Mipmap, vk.FilterNearest, vk.SamplerMipmapModeLinear, 0},
		{gfx.Bilinear, vk.FilterLinear, vk.SamplerMipmapModeNearest, 0},
		{gfx.Trilinear, vk.FilterLinear, vk.SamplerMipmapModeLinear, 0},
		{gfx.Anisotropic(8), vk.FilterLinear, vk.SamplerMipmapModeLinear, 8},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			minF, magF, mip, aniso := Filter(tt.method)
			if minF != tt.min || magF != tt.min || mip != tt.mip || aniso != tt.aniso {
				t.Errorf("Filter() = (%d, %d, %d, %v)", minF, magF, mip, aniso)
			}
		})
	}
}

func TestBorderColor(t *testing.T) {
	if c, ok := BorderColor(gfx.OpaqueWhite); !ok || c != vk.BorderColorFloatOpaqueWhite {
		t.Errorf("BorderColor(white) = (%d, %v)", c, ok)
	}
	if _, ok := BorderColor(0xFF0000FF); ok {
		t.Error("BorderColor(red) should have no native equivalent")
	}
}

func TestMiscEnums(t *testing.T) {
	if Topology(gfx.TriangleStripAdjacency) != vk.PrimitiveTopologyTriangleStripWithAdjacency {
		t.Error("Topology(TriangleStripAdjacency)")
	}
	if CullMode(gfx.CullBack) != vk.CullModeBack {
		t.Error("CullMode(Back)")
	}
	if FrontFace(gfx.Clockwise) != vk.FrontFaceClockwise {
		t.Error("FrontFace(Clockwise)")
	}
	if Comparison(gfx.LessEqual) != vk.CompareOpLessOrEqual {
		t.Error("Comparison(LessEqual)")
	}
	if Wrap(gfx.WrapBorder) != vk.SamplerAddressModeClampToBorder {
		t.Error("Wrap(Border)")
	}
	if VertexInputRate(0) != vk.VertexInputRateVertex || VertexInputRate(1) != vk.VertexInputRateInstance {
		t.Error("VertexInputRate")
	}
	m := Swizzle(gfx.NewSwizzle())
	if m != (vk.ComponentMapping{R: vk.ComponentSwizzleR, G: vk.ComponentSwizzleG, B: vk.ComponentSwizzleB, A: vk.ComponentSwizzleA}) {
		t.Errorf("Swizzle(XYZW) = %+v", m)
	}
	if Swizzle(gfx.Swizzle{}) != (vk.ComponentMapping{}) {
		t.Error("zero swizzle should be identity")
	}
}
