package gfx

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestSurfaceTypeString(t *testing.T) {
	tests := []struct {
		s    SurfaceType
		want string
	}{
		{R8G8B8A8, "R8G8B8A8"},
		{D24S8, "D24S8"},
		{B8G8R8A8, "B8G8R8A8"},
		{SurfaceType(200), "Unknown(200)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("SurfaceType(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestSurfaceTypesCoversAll(t *testing.T) {
	all := SurfaceTypes()
	if len(all) != int(D32)+1 {
		t.Fatalf("SurfaceTypes() len = %d, want %d", len(all), int(D32)+1)
	}
	for i, s := range all {
		if int(s) != i {
			t.Errorf("SurfaceTypes()[%d] = %v", i, s)
		}
	}
}

func TestSurfaceDepthStencil(t *testing.T) {
	for _, s := range SurfaceTypes() {
		wantDepth := s == D16 || s == D24 || s == D24S8 || s == D32
		if s.IsDepth() != wantDepth {
			t.Errorf("%v.IsDepth() = %v, want %v", s, s.IsDepth(), wantDepth)
		}
		if s.HasStencil() != (s == D24S8) {
			t.Errorf("%v.HasStencil() = %v", s, s.HasStencil())
		}
	}
}

func TestKindLayers(t *testing.T) {
	tests := []struct {
		name       string
		kind       Kind
		wantSlices Layer
		wantArray  bool
		wantLayers uint32
		wantDepth  Size
	}{
		{"D1", D1(64), 0, false, 1, 1},
		{"D1Array", D1Array(64, 3), 3, true, 3, 1},
		{"D2", D2(64, 32, 1), 0, false, 1, 1},
		{"D2Array", D2Array(64, 32, 5, 1), 5, true, 5, 1},
		{"D3", D3(8, 8, 4), 0, false, 1, 4},
		{"Cube", Cube(16), 0, false, 6, 1},
		{"CubeArray", CubeArray(16, 2), 2, true, 12, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slices, ok := tt.kind.NumSlices()
			if slices != tt.wantSlices || ok != tt.wantArray {
				t.Errorf("NumSlices() = (%d, %v), want (%d, %v)", slices, ok, tt.wantSlices, tt.wantArray)
			}
			if got := tt.kind.NumLayers(); got != tt.wantLayers {
				t.Errorf("NumLayers() = %d, want %d", got, tt.wantLayers)
			}
			if _, _, d, _ := tt.kind.Dimensions(); d != tt.wantDepth {
				t.Errorf("Dimensions() depth = %d, want %d", d, tt.wantDepth)
			}
		})
	}
}

func TestAaModeFragments(t *testing.T) {
	if got := AaMode(0).Fragments(); got != 1 {
		t.Errorf("AaMode(0).Fragments() = %d, want 1", got)
	}
	if got := AaMode(4).Fragments(); got != 4 {
		t.Errorf("AaMode(4).Fragments() = %d, want 4", got)
	}
}

func TestOptionalLayer(t *testing.T) {
	var none OptionalLayer
	if _, ok := none.Get(); ok {
		t.Error("zero OptionalLayer reports a layer")
	}
	l, ok := AtLayer(3).Get()
	if !ok || l != 3 {
		t.Errorf("AtLayer(3).Get() = (%d, %v), want (3, true)", l, ok)
	}
}

func TestUsageMapAccess(t *testing.T) {
	tests := []struct {
		usage Usage
		want  Access
	}{
		{UsageGPUOnly, AccessNone},
		{UsageImmutable, AccessRead},
		{UsageDynamic, AccessReadWrite},
		{UsageCPUOnly(AccessRead), AccessRead},
		{UsageCPUOnly(AccessWrite), AccessWrite},
		{UsageCPUOnly(AccessReadWrite), AccessReadWrite},
	}
	for _, tt := range tests {
		t.Run(tt.usage.String(), func(t *testing.T) {
			if got := tt.usage.MapAccess(); got != tt.want {
				t.Errorf("MapAccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccessContains(t *testing.T) {
	if !AccessReadWrite.Contains(AccessRead) {
		t.Error("ReadWrite should contain Read")
	}
	if AccessRead.Contains(AccessWrite) {
		t.Error("Read should not contain Write")
	}
	if !AccessRead.Contains(AccessNone) {
		t.Error("every access contains None")
	}
}

func TestBufferInfoElements(t *testing.T) {
	if got := (BufferInfo{Size: 256}).Elements(); got != 256 {
		t.Errorf("raw Elements() = %d, want 256", got)
	}
	if got := (BufferInfo{Size: 256, Stride: 16}).Elements(); got != 16 {
		t.Errorf("strided Elements() = %d, want 16", got)
	}
}

func TestSwizzleZeroIsIdentity(t *testing.T) {
	var s Swizzle
	for i, c := range s {
		if c != Identity {
			t.Errorf("Swizzle{}[%d] = %d, want Identity", i, c)
		}
	}
	if NewSwizzle() != (Swizzle{X, Y, Z, W}) {
		t.Error("NewSwizzle() is not XYZW")
	}
}

func TestStageMask(t *testing.T) {
	if StageVertex.Mask() != VisibleVertex || StageGeometry.Mask() != VisibleGeometry || StagePixel.Mask() != VisiblePixel {
		t.Error("Stage.Mask() does not match the visibility bits")
	}
	if !VisibleAll.Contains(VisiblePixel | VisibleVertex) {
		t.Error("VisibleAll should contain every stage")
	}
}

func TestTextureFormatRoundTrip(t *testing.T) {
	formats := []gputypes.TextureFormat{
		gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureFormatBGRA8Unorm,
		gputypes.TextureFormatR8Unorm,
		gputypes.TextureFormatDepth24PlusStencil8,
	}
	for _, f := range formats {
		got, ok := FromTextureFormat(f)
		if !ok {
			t.Errorf("FromTextureFormat(%v) not supported", f)
			continue
		}
		if back := ToTextureFormat(got); back != f {
			t.Errorf("round trip %v -> %v -> %v", f, got, back)
		}
	}
	if _, ok := FromTextureFormat(gputypes.TextureFormatUndefined); ok {
		t.Error("Undefined should not convert")
	}
}

func TestFromBufferUsage(t *testing.T) {
	info := FromBufferUsage(gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst, 64)
	if info.Role != RoleVertex || info.Usage != UsageGPUOnly || !info.Bind.Contains(BindTransferDst) {
		t.Errorf("vertex usage = %+v", info)
	}

	info = FromBufferUsage(gputypes.BufferUsageMapRead|gputypes.BufferUsageCopyDst, 64)
	if info.Role != RoleStaging || info.Usage != UsageCPUOnly(AccessRead) {
		t.Errorf("readback usage = %+v", info)
	}

	info = FromBufferUsage(gputypes.BufferUsageUniform|gputypes.BufferUsageStorage, 16)
	if info.Role != RoleConstant || !info.Bind.Contains(BindUnorderedAccess) {
		t.Errorf("uniform usage = %+v", info)
	}
}

func TestFromTextureUsage(t *testing.T) {
	b := FromTextureUsage(gputypes.TextureUsageTextureBinding | gputypes.TextureUsageRenderAttachment)
	if b != BindShaderResource|BindRenderTarget {
		t.Errorf("FromTextureUsage() = %b", b)
	}
	if FromMapMode(gputypes.MapModeWrite) != AccessWrite {
		t.Error("MapModeWrite should map to AccessWrite")
	}
}
