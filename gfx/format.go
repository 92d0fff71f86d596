// Package gfx defines the device-agnostic resource descriptors consumed by
// the gfxvk factory: surface and channel formats, usages and bind flags,
// texture kinds, sampler and pipeline state.
//
// The types here carry no native API values. Translation into native
// enumerations lives in gfxvk/internal/translate.
package gfx

import "fmt"

// SurfaceType describes the bit layout of a single texel.
type SurfaceType uint8

// Surface types.
const (
	R4G4 SurfaceType = iota
	R4G4B4A4
	R5G5B5A1
	R5G6B5
	R8
	R8G8
	R8G8B8A8
	R10G10B10A2
	R11G11B10
	R16
	R16G16
	R16G16B16
	R16G16B16A16
	R32
	R32G32
	R32G32B32
	R32G32B32A32
	B8G8R8A8
	D16
	D24
	D24S8
	D32
)

var surfaceNames = [...]string{
	R4G4:         "R4G4",
	R4G4B4A4:     "R4G4B4A4",
	R5G5B5A1:     "R5G5B5A1",
	R5G6B5:       "R5G6B5",
	R8:           "R8",
	R8G8:         "R8G8",
	R8G8B8A8:     "R8G8B8A8",
	R10G10B10A2:  "R10G10B10A2",
	R11G11B10:    "R11G11B10",
	R16:          "R16",
	R16G16:       "R16G16",
	R16G16B16:    "R16G16B16",
	R16G16B16A16: "R16G16B16A16",
	R32:          "R32",
	R32G32:       "R32G32",
	R32G32B32:    "R32G32B32",
	R32G32B32A32: "R32G32B32A32",
	B8G8R8A8:     "B8G8R8A8",
	D16:          "D16",
	D24:          "D24",
	D24S8:        "D24S8",
	D32:          "D32",
}

// SurfaceTypes lists every surface type in declaration order.
func SurfaceTypes() []SurfaceType {
	out := make([]SurfaceType, len(surfaceNames))
	for i := range out {
		out[i] = SurfaceType(i)
	}
	return out
}

// String returns the string representation of SurfaceType.
func (s SurfaceType) String() string {
	if int(s) < len(surfaceNames) {
		return surfaceNames[s]
	}
	return fmt.Sprintf("Unknown(%d)", int(s))
}

// IsDepth reports whether the surface holds a depth plane.
func (s SurfaceType) IsDepth() bool {
	switch s {
	case D16, D24, D24S8, D32:
		return true
	default:
		return false
	}
}

// HasStencil reports whether the surface holds a stencil plane.
func (s SurfaceType) HasStencil() bool { return s == D24S8 }

// TexelBytes returns the size of a single texel in bytes.
func (s SurfaceType) TexelBytes() int {
	switch s {
	case R4G4, R8:
		return 1
	case R4G4B4A4, R5G5B5A1, R5G6B5, R8G8, R16, D16:
		return 2
	case R16G16B16:
		return 6
	case R16G16B16A16, R32G32:
		return 8
	case R32G32B32:
		return 12
	case R32G32B32A32:
		return 16
	default:
		return 4
	}
}

// ChannelType interprets the bits of a surface.
type ChannelType uint8

// Channel types.
const (
	Int ChannelType = iota
	Uint
	Inorm
	Unorm
	Float
	Srgb
)

// ChannelTypes lists every channel type in declaration order.
func ChannelTypes() []ChannelType {
	return []ChannelType{Int, Uint, Inorm, Unorm, Float, Srgb}
}

// String returns the string representation of ChannelType.
func (c ChannelType) String() string {
	switch c {
	case Int:
		return "Int"
	case Uint:
		return "Uint"
	case Inorm:
		return "Inorm"
	case Unorm:
		return "Unorm"
	case Float:
		return "Float"
	case Srgb:
		return "Srgb"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Format is a full texel format: surface layout plus channel interpretation.
type Format struct {
	Surface SurfaceType
	Channel ChannelType
}

func (f Format) String() string {
	return f.Surface.String() + "_" + f.Channel.String()
}

// Common formats.
var (
	Rgba8           = Format{R8G8B8A8, Unorm}
	Srgba8          = Format{R8G8B8A8, Srgb}
	Bgra8           = Format{B8G8R8A8, Unorm}
	Depth24         = Format{D24, Unorm}
	Depth32F        = Format{D32, Float}
	Depth24Stencil8 = Format{D24S8, Unorm}
	Vec2            = Format{R32G32, Float}
	Vec3            = Format{R32G32B32, Float}
	Vec4            = Format{R32G32B32A32, Float}
)

// ChannelSource selects what a view component reads.
// The zero value keeps the component unchanged.
type ChannelSource uint8

// Channel sources.
const (
	Identity ChannelSource = iota
	Zero
	One
	X
	Y
	Z
	W
)

// Swizzle remaps the four components of a view. The zero value is the
// identity mapping.
type Swizzle [4]ChannelSource

// NewSwizzle returns the identity swizzle.
func NewSwizzle() Swizzle { return Swizzle{X, Y, Z, W} }
