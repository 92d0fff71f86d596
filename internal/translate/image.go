package translate

import (
	"math/bits"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/vk"
)

// ImageType returns the native dimensionality of kind.
func ImageType(kind gfx.Kind) vk.ImageType {
	switch kind.Type {
	case gfx.Kind1D, gfx.Kind1DArray:
		return vk.ImageType1d
	case gfx.Kind3D:
		return vk.ImageType3d
	default:
		return vk.ImageType2d
	}
}

// ImageCreateFlags returns the creation flags kind needs.
func ImageCreateFlags(kind gfx.Kind) vk.ImageCreateFlags {
	if kind.IsCube() {
		return vk.ImageCreateCubeCompatibleBit
	}
	return 0
}

// ImageViewType returns the view dimensionality of kind, narrowed to a
// single slice when layer is set. Cube faces are viewed as 2D images and
// cube array slices as whole cubes.
func ImageViewType(kind gfx.Kind, layer gfx.OptionalLayer) (vk.ImageViewType, error) {
	l, set := layer.Get()
	switch kind.Type {
	case gfx.Kind1D, gfx.Kind2D, gfx.Kind3D:
		if set {
			return 0, &gfx.LayerError{Kind: gfx.LayerNotExpected, Shape: kind, Layer: l}
		}
		switch kind.Type {
		case gfx.Kind1D:
			return vk.ImageViewType1d, nil
		case gfx.Kind3D:
			return vk.ImageViewType3d, nil
		}
		return vk.ImageViewType2d, nil
	case gfx.Kind1DArray, gfx.Kind2DArray:
		if !set {
			if kind.Type == gfx.Kind1DArray {
				return vk.ImageViewType1dArray, nil
			}
			return vk.ImageViewType2dArray, nil
		}
		if l >= kind.Slices {
			return 0, &gfx.LayerError{Kind: gfx.LayerOutOfBounds, Shape: kind, Layer: l, Count: kind.Slices}
		}
		if kind.Type == gfx.Kind1DArray {
			return vk.ImageViewType1d, nil
		}
		return vk.ImageViewType2d, nil
	case gfx.KindCube:
		if !set {
			return vk.ImageViewTypeCube, nil
		}
		if l >= 6 {
			return 0, &gfx.LayerError{Kind: gfx.LayerOutOfBounds, Shape: kind, Layer: l, Count: 6}
		}
		return vk.ImageViewType2d, nil
	case gfx.KindCubeArray:
		if !set {
			return vk.ImageViewTypeCubeArray, nil
		}
		if l >= kind.Slices {
			return 0, &gfx.LayerError{Kind: gfx.LayerOutOfBounds, Shape: kind, Layer: l, Count: kind.Slices}
		}
		return vk.ImageViewTypeCube, nil
	default:
		return 0, &gfx.LayerError{Kind: gfx.LayerNotExpected, Shape: kind, Layer: l}
	}
}

// LayerRange returns the first native array layer and the layer count a
// view of kind covers. Without a layer the view spans every layer.
// Callers validate layer with ImageViewType first.
func LayerRange(kind gfx.Kind, layer gfx.OptionalLayer) (base, count uint32) {
	if l, ok := layer.Get(); ok {
		if kind.Type == gfx.KindCubeArray {
			return uint32(l) * 6, 6
		}
		return uint32(l), 1
	}
	count = kind.NumLayers()
	if count == 0 {
		count = 1
	}
	return 0, count
}

// SubresourceRange builds the range of a view over mips [minLevel, maxLevel].
// Callers reject minLevel > maxLevel; such a range covers minLevel only.
func SubresourceRange(aspect vk.ImageAspectFlags, kind gfx.Kind, layer gfx.OptionalLayer, minLevel, maxLevel gfx.Level) vk.ImageSubresourceRange {
	base, count := LayerRange(kind, layer)
	levels := uint32(1)
	if maxLevel > minLevel {
		levels = uint32(maxLevel-minLevel) + 1
	}
	return vk.ImageSubresourceRange{
		AspectMask:     aspect,
		BaseMipLevel:   uint32(minLevel),
		LevelCount:     levels,
		BaseArrayLayer: base,
		LayerCount:     count,
	}
}

// ImageUsage returns the usage bits and tiling of an image bound to bind
// and updated according to usage.
func ImageUsage(bind gfx.Bind, usage gfx.Usage) (vk.ImageUsageFlags, vk.ImageTiling) {
	var flags vk.ImageUsageFlags
	if bind.Contains(gfx.BindTransferSrc) {
		flags |= vk.ImageUsageTransferSrcBit
	}
	if bind.Contains(gfx.BindTransferDst) {
		flags |= vk.ImageUsageTransferDstBit
	}
	if bind.Contains(gfx.BindRenderTarget) {
		flags |= vk.ImageUsageColorAttachmentBit
	}
	if bind.Contains(gfx.BindDepthStencil) {
		flags |= vk.ImageUsageDepthStencilAttachmentBit
	}
	if bind.Contains(gfx.BindShaderResource) {
		flags |= vk.ImageUsageSampledBit
	}
	if bind.Contains(gfx.BindUnorderedAccess) {
		flags |= vk.ImageUsageStorageBit
	}

	switch usage.Kind {
	case gfx.Immutable:
		return flags | vk.ImageUsageTransferDstBit, vk.ImageTilingOptimal
	case gfx.Dynamic:
		return flags | vk.ImageUsageTransferDstBit, vk.ImageTilingLinear
	case gfx.CPUOnly:
		if usage.Access.Contains(gfx.AccessWrite) {
			flags |= vk.ImageUsageTransferSrcBit
		}
		if usage.Access.Contains(gfx.AccessRead) {
			flags |= vk.ImageUsageTransferDstBit
		}
		return flags, vk.ImageTilingLinear
	default:
		return flags, vk.ImageTilingOptimal
	}
}

// ImageLayout returns the steady-state layout of an image bound to bind.
func ImageLayout(gfx.Bind) vk.ImageLayout {
	return vk.ImageLayoutGeneral
}

// InitialLayout returns the layout an image is created in. Linear images
// keep their contents from creation so they can be filled from the host.
func InitialLayout(tiling vk.ImageTiling) vk.ImageLayout {
	if tiling == vk.ImageTilingLinear {
		return vk.ImageLayoutPreinitialized
	}
	return vk.ImageLayoutUndefined
}

// SampleCount returns the sample count of aa, rounded down to a power of two.
func SampleCount(aa gfx.AaMode) vk.SampleCountFlagBits {
	n := aa.Fragments()
	if n == 0 {
		return vk.SampleCount1Bit
	}
	c := vk.SampleCountFlagBits(1) << (bits.Len8(n) - 1)
	if c > vk.SampleCount64Bit {
		return vk.SampleCount64Bit
	}
	return c
}

// BufferUsage returns the usage bits of a buffer.
func BufferUsage(role gfx.BufferRole, bind gfx.Bind) vk.BufferUsageFlags {
	var flags vk.BufferUsageFlags
	switch role {
	case gfx.RoleVertex:
		flags = vk.BufferUsageVertexBufferBit
	case gfx.RoleIndex:
		flags = vk.BufferUsageIndexBufferBit
	case gfx.RoleConstant:
		flags = vk.BufferUsageUniformBufferBit
	case gfx.RoleStaging:
		flags = vk.BufferUsageTransferSrcBit | vk.BufferUsageTransferDstBit
	}
	if bind.Contains(gfx.BindShaderResource) {
		flags |= vk.BufferUsageUniformTexelBufferBit
	}
	if bind.Contains(gfx.BindUnorderedAccess) {
		flags |= vk.BufferUsageStorageBufferBit
	}
	if bind.Contains(gfx.BindTransferSrc) {
		flags |= vk.BufferUsageTransferSrcBit
	}
	if bind.Contains(gfx.BindTransferDst) {
		flags |= vk.BufferUsageTransferDstBit
	}
	return flags
}
