package gfxvk

import (
	"image"
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/draw"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/internal/translate"
	"github.com/gogpu/gfxvk/resource"
	"github.com/gogpu/gfxvk/vk"
)

// defaultChannel is the channel type of textures created without a hint.
const defaultChannel = gfx.Uint

// resolveTexture validates desc and returns its native format and channel.
func resolveTexture(desc gfx.TextureDesc, hint *gfx.ChannelType) (vk.Format, gfx.ChannelType, error) {
	w, h, d, _ := desc.Kind.Dimensions()
	slices, layered := desc.Kind.NumSlices()
	if w == 0 || h == 0 || d == 0 || desc.Levels == 0 || (layered && slices == 0) {
		return vk.FormatUndefined, 0, &TextureError{Kind: TextureSize, Format: desc.Format, Hint: hint, Desc: desc}
	}
	channel := defaultChannel
	if hint != nil {
		channel = *hint
	}
	format, ok := translate.Format(desc.Format, channel)
	if !ok {
		return vk.FormatUndefined, 0, &TextureError{Kind: TextureFormat, Format: desc.Format, Hint: hint, Desc: desc}
	}
	return format, channel, nil
}

// CreateTexture creates a texture with its own memory. The channel hint
// selects the native format; without one the Uint channel is used.
func (f *Factory) CreateTexture(desc gfx.TextureDesc, hint *gfx.ChannelType) (handle.Texture, error) {
	f.ensureOpen()
	format, channel, err := resolveTexture(desc, hint)
	if err != nil {
		return handle.Texture{}, err
	}
	return f.handles.AddTexture(f.createTexture(desc, format, channel)), nil
}

// CreateTextureWithData creates a texture and fills mip level 0 of every
// layer from data, layer after layer with tightly packed rows. The
// texture must use linear tiling in host-visible memory, that is a
// Dynamic or CPUOnly usage.
func (f *Factory) CreateTextureWithData(desc gfx.TextureDesc, hint *gfx.ChannelType, data []byte) (handle.Texture, error) {
	f.ensureOpen()
	format, channel, err := resolveTexture(desc, hint)
	if err != nil {
		return handle.Texture{}, err
	}
	if _, tiling := translate.ImageUsage(desc.Bind, desc.Usage); tiling != vk.ImageTilingLinear ||
		!f.alloc.HostVisible(f.alloc.TypeFor(desc.Usage)) {
		return handle.Texture{}, errors.Wrapf(ErrInitialDataNeedsLinearTiling, "usage %v", desc.Usage)
	}
	w, h, d, _ := desc.Kind.Dimensions()
	layers := desc.Kind.NumLayers()
	rowBytes := int(w) * desc.Format.TexelBytes()
	want := rowBytes * int(h) * int(d) * int(layers)
	if len(data) != want {
		return handle.Texture{}, errors.Wrapf(ErrTextureSize, "initial data is %d bytes, want %d", len(data), want)
	}

	tex := f.createTexture(desc, format, channel)
	f.upload(tex, data, rowBytes)
	return f.handles.AddTexture(tex), nil
}

// CreateTextureFromImage converts img to 8-bit RGBA and uploads it into a
// new single-level 2D texture with the Unorm channel.
func (f *Factory) CreateTextureFromImage(img image.Image, usage gfx.Usage, bind gfx.Bind) (handle.Texture, error) {
	f.ensureOpen()
	b := img.Bounds()
	if b.Dx() > math.MaxUint16 || b.Dy() > math.MaxUint16 {
		return handle.Texture{}, errors.Newf("gfxvk: image of %dx%d exceeds the texture size limit", b.Dx(), b.Dy())
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	desc := gfx.TextureDesc{
		Kind:   gfx.D2(gfx.Size(b.Dx()), gfx.Size(b.Dy()), 1),
		Levels: 1,
		Format: gfx.R8G8B8A8,
		Bind:   bind,
		Usage:  usage,
	}
	unorm := gfx.Unorm
	return f.CreateTextureWithData(desc, &unorm, rgba.Pix[:4*b.Dx()*b.Dy()])
}

func (f *Factory) createTexture(desc gfx.TextureDesc, format vk.Format, channel gfx.ChannelType) *resource.Texture {
	usage, tiling := translate.ImageUsage(desc.Bind, desc.Usage)
	w, h, d, aa := desc.Kind.Dimensions()
	info := vk.ImageCreateInfo{
		SType:                 vk.StructureTypeImageCreateInfo,
		Flags:                 translate.ImageCreateFlags(desc.Kind) | vk.ImageCreateMutableFormatBit,
		ImageType:             translate.ImageType(desc.Kind),
		Format:                format,
		Extent:                vk.Extent3D{Width: uint32(w), Height: uint32(h), Depth: uint32(d)},
		MipLevels:             uint32(desc.Levels),
		ArrayLayers:           desc.Kind.NumLayers(),
		Samples:               translate.SampleCount(aa),
		Tiling:                tiling,
		Usage:                 usage,
		SharingMode:           vk.SharingModeExclusive,
		QueueFamilyIndexCount: 1,
		PQueueFamilyIndices:   []uint32{f.queueFamily},
		InitialLayout:         translate.InitialLayout(tiling),
	}
	img, res := f.dev.CreateImage(&info)
	check("CreateImage", res)

	req := f.dev.GetImageMemoryRequirements(img)
	alloc, err := f.alloc.Allocate(desc.Usage, req)
	checkErr("AllocateMemory", err)
	check("BindImageMemory", f.dev.BindImageMemory(img, alloc.Memory, 0))

	Logger().Debug("gfxvk: texture created",
		"image", img,
		"kind", desc.Kind,
		"format", format,
		"levels", desc.Levels,
		"tiling", tiling,
		"memoryType", alloc.TypeIndex)
	return &resource.Texture{
		Native: img,
		Memory: alloc,
		Layout: resource.NewLayoutCell(info.InitialLayout),
		Desc:   desc,
		Format: format,
		Hint:   channel,
		Tiling: tiling,
	}
}

// upload copies level 0 of every layer of a linear texture from data.
func (f *Factory) upload(tex *resource.Texture, data []byte, rowBytes int) {
	_, h, d, _ := tex.Desc.Kind.Dimensions()
	aspect := translate.ImageAspect(tex.Desc.Format, tex.Hint, false)

	ptr, res := f.dev.MapMemory(tex.Memory.Memory, 0, vk.WholeSize, 0)
	check("MapMemory", res)
	defer f.dev.UnmapMemory(tex.Memory.Memory)
	mem := unsafe.Slice((*byte)(ptr), int(tex.Memory.Size))

	src := 0
	for layer := uint32(0); layer < tex.Desc.Kind.NumLayers(); layer++ {
		sub := f.dev.GetImageSubresourceLayout(tex.Native, vk.ImageSubresource{
			AspectMask: aspect,
			ArrayLayer: layer,
		})
		for z := 0; z < int(d); z++ {
			for y := 0; y < int(h); y++ {
				dst := int(sub.Offset) + z*int(sub.DepthPitch) + y*int(sub.RowPitch)
				copy(mem[dst:dst+rowBytes], data[src:src+rowBytes])
				src += rowBytes
			}
		}
	}
}
