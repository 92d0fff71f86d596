package gfx

import "github.com/gogpu/gputypes"

// FromTextureFormat converts a WebGPU texture format into a gfx format.
// It reports false for formats without a counterpart.
func FromTextureFormat(f gputypes.TextureFormat) (Format, bool) {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return Rgba8, true
	case gputypes.TextureFormatBGRA8Unorm:
		return Bgra8, true
	case gputypes.TextureFormatR8Unorm:
		return Format{R8, Unorm}, true
	case gputypes.TextureFormatDepth24PlusStencil8:
		return Depth24Stencil8, true
	default:
		return Format{}, false
	}
}

// ToTextureFormat is the inverse of FromTextureFormat. Unknown formats map
// to gputypes.TextureFormatUndefined.
func ToTextureFormat(f Format) gputypes.TextureFormat {
	switch f {
	case Rgba8:
		return gputypes.TextureFormatRGBA8Unorm
	case Bgra8:
		return gputypes.TextureFormatBGRA8Unorm
	case Format{R8, Unorm}:
		return gputypes.TextureFormatR8Unorm
	case Depth24Stencil8:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FromBufferUsage derives a buffer description from WebGPU usage flags.
// Vertex wins over uniform for the role; mappable buffers become CPUOnly
// with matching access, copy-only buffers become staging buffers.
func FromBufferUsage(u gputypes.BufferUsage, size int) BufferInfo {
	info := BufferInfo{Size: size, Usage: UsageGPUOnly}

	switch {
	case u.Contains(gputypes.BufferUsageVertex):
		info.Role = RoleVertex
	case u.Contains(gputypes.BufferUsageUniform):
		info.Role = RoleConstant
	default:
		info.Role = RoleStaging
	}

	var access Access
	if u.Contains(gputypes.BufferUsageMapRead) {
		access |= AccessRead
	}
	if u.Contains(gputypes.BufferUsageMapWrite) {
		access |= AccessWrite
	}
	if access != AccessNone {
		info.Usage = UsageCPUOnly(access)
	}

	if u.Contains(gputypes.BufferUsageStorage) {
		info.Bind |= BindUnorderedAccess
	}
	if u.Contains(gputypes.BufferUsageCopySrc) {
		info.Bind |= BindTransferSrc
	}
	if u.Contains(gputypes.BufferUsageCopyDst) {
		info.Bind |= BindTransferDst
	}
	return info
}

// FromTextureUsage converts WebGPU texture usage flags into bind flags.
func FromTextureUsage(u gputypes.TextureUsage) Bind {
	var b Bind
	if u&gputypes.TextureUsageTextureBinding != 0 {
		b |= BindShaderResource
	}
	if u&gputypes.TextureUsageRenderAttachment != 0 {
		b |= BindRenderTarget
	}
	if u&gputypes.TextureUsageCopySrc != 0 {
		b |= BindTransferSrc
	}
	if u&gputypes.TextureUsageCopyDst != 0 {
		b |= BindTransferDst
	}
	return b
}

// FromMapMode converts a WebGPU map mode into an access right.
func FromMapMode(m gputypes.MapMode) Access {
	switch m {
	case gputypes.MapModeRead:
		return AccessRead
	case gputypes.MapModeWrite:
		return AccessWrite
	default:
		return AccessNone
	}
}

// FromTextureDimension returns a kind of the given dimensionality.
// Unknown dimensions produce a 2D kind.
func FromTextureDimension(d gputypes.TextureDimension, w, h, depth Size) Kind {
	switch d {
	case gputypes.TextureDimension1D:
		return D1(w)
	case gputypes.TextureDimension3D:
		return D3(w, h, depth)
	default:
		return D2(w, h, 1)
	}
}
