package translate

import (
	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/vk"
)

// Filter returns the minification, magnification and mip filters of f,
// plus the maximum anisotropy, which is zero unless f is anisotropic.
func Filter(f gfx.FilterMethod) (minFilter, magFilter vk.Filter, mip vk.SamplerMipmapMode, anisotropy float32) {
	switch f.Kind {
	case gfx.FilterScale:
		return vk.FilterNearest, vk.FilterNearest, vk.SamplerMipmapModeNearest, 0
	case gfx.FilterMipmap:
		return vk.FilterNearest, vk.FilterNearest, vk.SamplerMipmapModeLinear, 0
	case gfx.FilterBilinear:
		return vk.FilterLinear, vk.FilterLinear, vk.SamplerMipmapModeNearest, 0
	case gfx.FilterAnisotropic:
		return vk.FilterLinear, vk.FilterLinear, vk.SamplerMipmapModeLinear, float32(f.Anisotropy)
	default:
		return vk.FilterLinear, vk.FilterLinear, vk.SamplerMipmapModeLinear, 0
	}
}

// Wrap converts an addressing mode.
func Wrap(w gfx.WrapMode) vk.SamplerAddressMode {
	switch w {
	case gfx.WrapMirror:
		return vk.SamplerAddressModeMirroredRepeat
	case gfx.WrapClamp:
		return vk.SamplerAddressModeClampToEdge
	case gfx.WrapBorder:
		return vk.SamplerAddressModeClampToBorder
	default:
		return vk.SamplerAddressModeRepeat
	}
}

// BorderColor returns the predefined border matching c. Only transparent
// black, opaque black and opaque white have one.
func BorderColor(c gfx.PackedColor) (vk.BorderColor, bool) {
	switch c {
	case gfx.TransparentBlack:
		return vk.BorderColorFloatTransparentBlack, true
	case gfx.OpaqueBlack:
		return vk.BorderColorFloatOpaqueBlack, true
	case gfx.OpaqueWhite:
		return vk.BorderColorFloatOpaqueWhite, true
	default:
		return vk.BorderColorFloatTransparentBlack, false
	}
}
