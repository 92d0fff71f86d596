package gfx

import "fmt"

// Size is a texture dimension in texels.
type Size = uint16

// Layer is an array layer index.
type Layer = uint16

// Level is a mipmap level index.
type Level = uint8

// AaMode is the number of samples per texel. Zero and one both mean a
// single sample.
type AaMode uint8

// Fragments returns the number of samples per texel.
func (a AaMode) Fragments() uint8 {
	if a == 0 {
		return 1
	}
	return uint8(a)
}

// KindType enumerates texture shapes.
type KindType uint8

// Texture shapes.
const (
	Kind1D KindType = iota
	Kind1DArray
	Kind2D
	Kind2DArray
	Kind3D
	KindCube
	KindCubeArray
)

// String returns the string representation of KindType.
func (k KindType) String() string {
	switch k {
	case Kind1D:
		return "D1"
	case Kind1DArray:
		return "D1Array"
	case Kind2D:
		return "D2"
	case Kind2DArray:
		return "D2Array"
	case Kind3D:
		return "D3"
	case KindCube:
		return "Cube"
	case KindCubeArray:
		return "CubeArray"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Kind is the shape and extent of a texture.
type Kind struct {
	Type  KindType
	Width Size
	// Height is 1 for one-dimensional kinds and equals Width for cubes.
	Height Size
	// Depth is only meaningful for Kind3D.
	Depth Size
	// Slices is the array length for array kinds.
	Slices Layer
	AA     AaMode
}

// D1 returns a one-dimensional kind.
func D1(w Size) Kind { return Kind{Type: Kind1D, Width: w, Height: 1, Depth: 1} }

// D1Array returns an array of one-dimensional textures.
func D1Array(w Size, slices Layer) Kind {
	return Kind{Type: Kind1DArray, Width: w, Height: 1, Depth: 1, Slices: slices}
}

// D2 returns a two-dimensional kind.
func D2(w, h Size, aa AaMode) Kind {
	return Kind{Type: Kind2D, Width: w, Height: h, Depth: 1, AA: aa}
}

// D2Array returns an array of two-dimensional textures.
func D2Array(w, h Size, slices Layer, aa AaMode) Kind {
	return Kind{Type: Kind2DArray, Width: w, Height: h, Depth: 1, Slices: slices, AA: aa}
}

// D3 returns a volume kind.
func D3(w, h, d Size) Kind { return Kind{Type: Kind3D, Width: w, Height: h, Depth: d} }

// Cube returns a cube map with square faces of the given size.
func Cube(size Size) Kind { return Kind{Type: KindCube, Width: size, Height: size, Depth: 1} }

// CubeArray returns an array of cube maps.
func CubeArray(size Size, slices Layer) Kind {
	return Kind{Type: KindCubeArray, Width: size, Height: size, Depth: 1, Slices: slices}
}

// Dimensions returns width, height, depth and the sample mode.
// Depth is 1 for everything but volumes.
func (k Kind) Dimensions() (w, h, d Size, aa AaMode) {
	d = 1
	if k.Type == Kind3D {
		d = k.Depth
	}
	return k.Width, k.Height, d, k.AA
}

// NumSlices returns the array length, or false for non-array kinds.
func (k Kind) NumSlices() (Layer, bool) {
	switch k.Type {
	case Kind1DArray, Kind2DArray, KindCubeArray:
		return k.Slices, true
	default:
		return 0, false
	}
}

// IsCube reports whether the kind is a cube map or cube map array.
func (k Kind) IsCube() bool { return k.Type == KindCube || k.Type == KindCubeArray }

// NumLayers returns the number of native array layers, counting six faces
// per cube.
func (k Kind) NumLayers() uint32 {
	n := uint32(1)
	if s, ok := k.NumSlices(); ok {
		n = uint32(s)
	}
	if k.IsCube() {
		n *= 6
	}
	return n
}

func (k Kind) String() string {
	switch k.Type {
	case Kind1D:
		return fmt.Sprintf("D1(%d)", k.Width)
	case Kind1DArray:
		return fmt.Sprintf("D1Array(%d, %d)", k.Width, k.Slices)
	case Kind2D:
		return fmt.Sprintf("D2(%d, %d)", k.Width, k.Height)
	case Kind2DArray:
		return fmt.Sprintf("D2Array(%d, %d, %d)", k.Width, k.Height, k.Slices)
	case Kind3D:
		return fmt.Sprintf("D3(%d, %d, %d)", k.Width, k.Height, k.Depth)
	case KindCube:
		return fmt.Sprintf("Cube(%d)", k.Width)
	case KindCubeArray:
		return fmt.Sprintf("CubeArray(%d, %d)", k.Width, k.Slices)
	default:
		return k.Type.String()
	}
}

// TextureDesc describes a texture to create.
type TextureDesc struct {
	Kind   Kind
	Levels Level
	Format SurfaceType
	Bind   Bind
	Usage  Usage
}

// OptionalLayer selects a single array layer. The zero value selects none.
type OptionalLayer struct {
	layer Layer
	set   bool
}

// AtLayer selects layer l.
func AtLayer(l Layer) OptionalLayer { return OptionalLayer{layer: l, set: true} }

// Get returns the selected layer and whether one is selected.
func (o OptionalLayer) Get() (Layer, bool) { return o.layer, o.set }

func (o OptionalLayer) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("Layer(%d)", o.layer)
}

// ResourceDesc describes a shader resource view of a texture.
type ResourceDesc struct {
	Channel ChannelType
	Layer   OptionalLayer
	// Min and Max are the inclusive mip range.
	Min, Max Level
	Swizzle  Swizzle
}

// RenderDesc describes a render target view of a texture.
type RenderDesc struct {
	Channel ChannelType
	Level   Level
	Layer   OptionalLayer
}

// DepthStencilDesc describes a depth-stencil view of a texture.
type DepthStencilDesc struct {
	Level Level
	Layer OptionalLayer
}

// LayerErrorKind distinguishes layer selection failures.
type LayerErrorKind uint8

// Layer error kinds.
const (
	// LayerNotExpected means a layer was given for a non-layered kind.
	LayerNotExpected LayerErrorKind = iota
	// LayerOutOfBounds means the layer exceeds the kind's layer count.
	LayerOutOfBounds
)

// LayerError reports an unusable array layer selection.
type LayerError struct {
	Kind  LayerErrorKind
	Shape Kind
	Layer Layer
	Count Layer
}

func (e *LayerError) Error() string {
	if e.Kind == LayerNotExpected {
		return fmt.Sprintf("gfx: layer %d given for non-layered kind %v", e.Layer, e.Shape)
	}
	return fmt.Sprintf("gfx: layer %d out of bounds (%d layers)", e.Layer, e.Count)
}
