// Package translate maps gfx descriptors onto native vk enumerations and
// bitflags. Every function is pure.
package translate

import (
	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/vk"
)

var formats = map[gfx.Format]vk.Format{
	{Surface: gfx.R4G4, Channel: gfx.Unorm}:     vk.FormatR4g4UnormPack8,
	{Surface: gfx.R4G4B4A4, Channel: gfx.Unorm}: vk.FormatR4g4b4a4UnormPack16,
	{Surface: gfx.R5G5B5A1, Channel: gfx.Unorm}: vk.FormatR5g5b5a1UnormPack16,
	{Surface: gfx.R5G6B5, Channel: gfx.Unorm}:   vk.FormatR5g6b5UnormPack16,

	{Surface: gfx.R8, Channel: gfx.Int}:   vk.FormatR8Sint,
	{Surface: gfx.R8, Channel: gfx.Uint}:  vk.FormatR8Uint,
	{Surface: gfx.R8, Channel: gfx.Inorm}: vk.FormatR8Snorm,
	{Surface: gfx.R8, Channel: gfx.Unorm}: vk.FormatR8Unorm,
	{Surface: gfx.R8, Channel: gfx.Srgb}:  vk.FormatR8Srgb,

	{Surface: gfx.R8G8, Channel: gfx.Int}:   vk.FormatR8g8Sint,
	{Surface: gfx.R8G8, Channel: gfx.Uint}:  vk.FormatR8g8Uint,
	{Surface: gfx.R8G8, Channel: gfx.Inorm}: vk.FormatR8g8Snorm,
	{Surface: gfx.R8G8, Channel: gfx.Unorm}: vk.FormatR8g8Unorm,
	{Surface: gfx.R8G8, Channel: gfx.Srgb}:  vk.FormatR8g8Srgb,

	{Surface: gfx.R8G8B8A8, Channel: gfx.Int}:   vk.FormatR8g8b8a8Sint,
	{Surface: gfx.R8G8B8A8, Channel: gfx.Uint}:  vk.FormatR8g8b8a8Uint,
	{Surface: gfx.R8G8B8A8, Channel: gfx.Inorm}: vk.FormatR8g8b8a8Snorm,
	{Surface: gfx.R8G8B8A8, Channel: gfx.Unorm}: vk.FormatR8g8b8a8Unorm,
	{Surface: gfx.R8G8B8A8, Channel: gfx.Srgb}:  vk.FormatR8g8b8a8Srgb,

	{Surface: gfx.B8G8R8A8, Channel: gfx.Int}:   vk.FormatB8g8r8a8Sint,
	{Surface: gfx.B8G8R8A8, Channel: gfx.Uint}:  vk.FormatB8g8r8a8Uint,
	{Surface: gfx.B8G8R8A8, Channel: gfx.Inorm}: vk.FormatB8g8r8a8Snorm,
	{Surface: gfx.B8G8R8A8, Channel: gfx.Unorm}: vk.FormatB8g8r8a8Unorm,
	{Surface: gfx.B8G8R8A8, Channel: gfx.Srgb}:  vk.FormatB8g8r8a8Srgb,

	{Surface: gfx.R10G10B10A2, Channel: gfx.Int}:   vk.FormatA2b10g10r10SintPack32,
	{Surface: gfx.R10G10B10A2, Channel: gfx.Uint}:  vk.FormatA2b10g10r10UintPack32,
	{Surface: gfx.R10G10B10A2, Channel: gfx.Inorm}: vk.FormatA2b10g10r10SnormPack32,
	{Surface: gfx.R10G10B10A2, Channel: gfx.Unorm}: vk.FormatA2b10g10r10UnormPack32,

	{Surface: gfx.R11G11B10, Channel: gfx.Float}: vk.FormatB10g11r11UfloatPack32,

	{Surface: gfx.R16, Channel: gfx.Int}:   vk.FormatR16Sint,
	{Surface: gfx.R16, Channel: gfx.Uint}:  vk.FormatR16Uint,
	{Surface: gfx.R16, Channel: gfx.Inorm}: vk.FormatR16Snorm,
	{Surface: gfx.R16, Channel: gfx.Unorm}: vk.FormatR16Unorm,
	{Surface: gfx.R16, Channel: gfx.Float}: vk.FormatR16Sfloat,

	{Surface: gfx.R16G16, Channel: gfx.Int}:   vk.FormatR16g16Sint,
	{Surface: gfx.R16G16, Channel: gfx.Uint}:  vk.FormatR16g16Uint,
	{Surface: gfx.R16G16, Channel: gfx.Inorm}: vk.FormatR16g16Snorm,
	{Surface: gfx.R16G16, Channel: gfx.Unorm}: vk.FormatR16g16Unorm,
	{Surface: gfx.R16G16, Channel: gfx.Float}: vk.FormatR16g16Sfloat,

	{Surface: gfx.R16G16B16, Channel: gfx.Int}:   vk.FormatR16g16b16Sint,
	{Surface: gfx.R16G16B16, Channel: gfx.Uint}:  vk.FormatR16g16b16Uint,
	{Surface: gfx.R16G16B16, Channel: gfx.Inorm}: vk.FormatR16g16b16Snorm,
	{Surface: gfx.R16G16B16, Channel: gfx.Unorm}: vk.FormatR16g16b16Unorm,
	{Surface: gfx.R16G16B16, Channel: gfx.Float}: vk.FormatR16g16b16Sfloat,

	{Surface: gfx.R16G16B16A16, Channel: gfx.Int}:   vk.FormatR16g16b16a16Sint,
	{Surface: gfx.R16G16B16A16, Channel: gfx.Uint}:  vk.FormatR16g16b16a16Uint,
	{Surface: gfx.R16G16B16A16, Channel: gfx.Inorm}: vk.FormatR16g16b16a16Snorm,
	{Surface: gfx.R16G16B16A16, Channel: gfx.Unorm}: vk.FormatR16g16b16a16Unorm,
	{Surface: gfx.R16G16B16A16, Channel: gfx.Float}: vk.FormatR16g16b16a16Sfloat,

	{Surface: gfx.R32, Channel: gfx.Int}:   vk.FormatR32Sint,
	{Surface: gfx.R32, Channel: gfx.Uint}:  vk.FormatR32Uint,
	{Surface: gfx.R32, Channel: gfx.Float}: vk.FormatR32Sfloat,

	{Surface: gfx.R32G32, Channel: gfx.Int}:   vk.FormatR32g32Sint,
	{Surface: gfx.R32G32, Channel: gfx.Uint}:  vk.FormatR32g32Uint,
	{Surface: gfx.R32G32, Channel: gfx.Float}: vk.FormatR32g32Sfloat,

	{Surface: gfx.R32G32B32, Channel: gfx.Int}:   vk.FormatR32g32b32Sint,
	{Surface: gfx.R32G32B32, Channel: gfx.Uint}:  vk.FormatR32g32b32Uint,
	{Surface: gfx.R32G32B32, Channel: gfx.Float}: vk.FormatR32g32b32Sfloat,

	{Surface: gfx.R32G32B32A32, Channel: gfx.Int}:   vk.FormatR32g32b32a32Sint,
	{Surface: gfx.R32G32B32A32, Channel: gfx.Uint}:  vk.FormatR32g32b32a32Uint,
	{Surface: gfx.R32G32B32A32, Channel: gfx.Float}: vk.FormatR32g32b32a32Sfloat,

	{Surface: gfx.D16, Channel: gfx.Unorm}:   vk.FormatD16Unorm,
	{Surface: gfx.D24, Channel: gfx.Unorm}:   vk.FormatX8D24UnormPack32,
	{Surface: gfx.D24S8, Channel: gfx.Unorm}: vk.FormatD24UnormS8Uint,
	{Surface: gfx.D32, Channel: gfx.Float}:   vk.FormatD32Sfloat,
}

var inverse = func() map[vk.Format]gfx.Format {
	m := make(map[vk.Format]gfx.Format, len(formats))
	for f, native := range formats {
		m[native] = f
	}
	return m
}()

// Format resolves a surface and channel pair to a native format.
// It reports false for pairs with no native equivalent.
func Format(s gfx.SurfaceType, c gfx.ChannelType) (vk.Format, bool) {
	f, ok := formats[gfx.Format{Surface: s, Channel: c}]
	return f, ok
}

// InverseFormat maps a native format back to the pair it was resolved from.
func InverseFormat(f vk.Format) (gfx.Format, bool) {
	g, ok := inverse[f]
	return g, ok
}

// ViewFormat resolves the format of a view. It accepts everything Format
// does, plus the Uint channel on a combined depth-stencil surface, which
// selects the stencil plane of the same native format.
func ViewFormat(s gfx.SurfaceType, c gfx.ChannelType) (vk.Format, bool) {
	if f, ok := Format(s, c); ok {
		return f, true
	}
	if s == gfx.D24S8 && c == gfx.Uint {
		return vk.FormatD24UnormS8Uint, true
	}
	return vk.FormatUndefined, false
}

// DepthChannel returns the channel type a depth surface is stored with.
func DepthChannel(s gfx.SurfaceType) gfx.ChannelType {
	if s == gfx.D32 {
		return gfx.Float
	}
	return gfx.Unorm
}

// ImageAspect returns the planes a view of surface s addresses. Render
// targets of a combined depth-stencil surface see both planes; shader
// resource views see the stencil plane through Uint and depth otherwise.
func ImageAspect(s gfx.SurfaceType, c gfx.ChannelType, isTarget bool) vk.ImageAspectFlags {
	switch s {
	case gfx.D16, gfx.D24, gfx.D32:
		return vk.ImageAspectDepthBit
	case gfx.D24S8:
		if isTarget {
			return vk.ImageAspectDepthBit | vk.ImageAspectStencilBit
		}
		if c == gfx.Uint {
			return vk.ImageAspectStencilBit
		}
		return vk.ImageAspectDepthBit
	default:
		return vk.ImageAspectColorBit
	}
}

var swizzles = [...]vk.ComponentSwizzle{
	gfx.Identity: vk.ComponentSwizzleIdentity,
	gfx.Zero:     vk.ComponentSwizzleZero,
	gfx.One:      vk.ComponentSwizzleOne,
	gfx.X:        vk.ComponentSwizzleR,
	gfx.Y:        vk.ComponentSwizzleG,
	gfx.Z:        vk.ComponentSwizzleB,
	gfx.W:        vk.ComponentSwizzleA,
}

func channelSource(c gfx.ChannelSource) vk.ComponentSwizzle {
	if int(c) < len(swizzles) {
		return swizzles[c]
	}
	return vk.ComponentSwizzleIdentity
}

// Swizzle converts a component remapping.
func Swizzle(s gfx.Swizzle) vk.ComponentMapping {
	return vk.ComponentMapping{
		R: channelSource(s[0]),
		G: channelSource(s[1]),
		B: channelSource(s[2]),
		A: channelSource(s[3]),
	}
}
