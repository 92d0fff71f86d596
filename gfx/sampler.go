package gfx

import "fmt"

// FilterKind enumerates texture filtering methods.
type FilterKind uint8

// Filter kinds.
const (
	FilterScale FilterKind = iota
	FilterMipmap
	FilterBilinear
	FilterTrilinear
	FilterAnisotropic
)

// FilterMethod selects minification, magnification and mip filtering.
type FilterMethod struct {
	Kind FilterKind
	// Anisotropy is the maximum anisotropy for FilterAnisotropic.
	Anisotropy uint8
}

// Filter methods.
var (
	Scale     = FilterMethod{Kind: FilterScale}
	Mipmap    = FilterMethod{Kind: FilterMipmap}
	Bilinear  = FilterMethod{Kind: FilterBilinear}
	Trilinear = FilterMethod{Kind: FilterTrilinear}
)

// Anisotropic returns an anisotropic filter with the given maximum level.
func Anisotropic(n uint8) FilterMethod {
	return FilterMethod{Kind: FilterAnisotropic, Anisotropy: n}
}

func (f FilterMethod) String() string {
	switch f.Kind {
	case FilterScale:
		return "Scale"
	case FilterMipmap:
		return "Mipmap"
	case FilterBilinear:
		return "Bilinear"
	case FilterTrilinear:
		return "Trilinear"
	case FilterAnisotropic:
		return fmt.Sprintf("Anisotropic(%d)", f.Anisotropy)
	default:
		return fmt.Sprintf("Unknown(%d)", int(f.Kind))
	}
}

// WrapMode controls addressing outside [0, 1].
type WrapMode uint8

// Wrap modes.
const (
	WrapTile WrapMode = iota
	WrapMirror
	WrapClamp
	WrapBorder
)

// PackedColor is an RGBA color packed as 0xAABBGGRR.
type PackedColor uint32

// Border colors with a native equivalent.
const (
	TransparentBlack PackedColor = 0x00000000
	OpaqueBlack      PackedColor = 0xFF000000
	OpaqueWhite      PackedColor = 0xFFFFFFFF
)

// SamplerInfo describes a sampler to create.
type SamplerInfo struct {
	Filter FilterMethod
	// Wrap holds the U, V and W addressing modes.
	Wrap     [3]WrapMode
	LodBias  float32
	LodRange [2]float32
	// Comparison enables depth comparison when non-nil.
	Comparison *Comparison
	Border     PackedColor
}

// MaxLod is the largest level of detail a sampler can reach.
const MaxLod float32 = 1000

// NewSamplerInfo returns a sampler description with the full lod range
// and the same wrap mode on all axes.
func NewSamplerInfo(filter FilterMethod, wrap WrapMode) SamplerInfo {
	return SamplerInfo{
		Filter:   filter,
		Wrap:     [3]WrapMode{wrap, wrap, wrap},
		LodRange: [2]float32{0, MaxLod},
	}
}
