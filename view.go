package gfxvk

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/internal/translate"
	"github.com/gogpu/gfxvk/resource"
	"github.com/gogpu/gfxvk/vk"
)

// viewRequest is the part of a view descriptor shared by every view kind.
type viewRequest struct {
	channel  gfx.ChannelType
	layer    gfx.OptionalLayer
	min, max gfx.Level
	swizzle  gfx.Swizzle
	target   bool
}

// viewTexture creates a view object over tex. Errors are returned as
// *ResourceViewError.
func (f *Factory) viewTexture(tex *resource.Texture, req viewRequest) (*resource.TextureView, error) {
	desc := tex.Desc
	format, ok := translate.ViewFormat(desc.Format, req.channel)
	if !ok {
		return nil, &ResourceViewError{Kind: ViewChannel, Channel: req.channel}
	}
	viewType, err := translate.ImageViewType(desc.Kind, req.layer)
	if err != nil {
		var le *gfx.LayerError
		if errors.As(err, &le) {
			return nil, &ResourceViewError{Kind: ViewLayer, Layer: le}
		}
		return nil, err
	}
	// The mip range must be ordered and lie within the texture.
	if req.min > req.max || req.max >= desc.Levels {
		return nil, &ResourceViewError{Kind: ViewUnsupported}
	}

	aspect := translate.ImageAspect(desc.Format, req.channel, req.target)
	rng := translate.SubresourceRange(aspect, desc.Kind, req.layer, req.min, req.max)
	info := vk.ImageViewCreateInfo{
		SType:            vk.StructureTypeImageViewCreateInfo,
		Image:            tex.Native,
		ViewType:         viewType,
		Format:           format,
		Components:       translate.Swizzle(req.swizzle),
		SubresourceRange: rng,
	}
	view, res := f.dev.CreateImageView(&info)
	check("CreateImageView", res)

	w, h, d, _ := desc.Kind.Dimensions()
	extent := vk.Extent3D{
		Width:  mipExtent(w, req.min),
		Height: mipExtent(h, req.min),
		Depth:  mipExtent(d, req.min),
	}
	if _, set := req.layer.Get(); set {
		extent.Depth = 1
	}

	Logger().Debug("gfxvk: view created",
		"view", view,
		"image", tex.Native,
		"type", viewType,
		"format", format,
		"layers", rng.LayerCount)
	return &resource.TextureView{
		Image:  tex.Native,
		View:   view,
		Layout: tex.Layout.Get(),
		Range:  rng,
		Format: format,
		Type:   viewType,
		Extent: extent,
	}, nil
}

func mipExtent(v gfx.Size, level gfx.Level) uint32 {
	e := uint32(v) >> level
	if e == 0 {
		return 1
	}
	return e
}

// ViewTextureAsShaderResource creates a shader resource view of h over
// the mip range [desc.Min, desc.Max]. The view keeps the texture alive.
func (f *Factory) ViewTextureAsShaderResource(h handle.Texture, desc gfx.ResourceDesc) (handle.ShaderResourceView, error) {
	f.ensureOpen()
	tex, err := f.handles.Texture(h)
	if err != nil {
		return handle.ShaderResourceView{}, err
	}
	if !tex.Desc.Bind.Contains(gfx.BindShaderResource) {
		return handle.ShaderResourceView{}, &ResourceViewError{Kind: ViewNoBindFlag}
	}
	view, err := f.viewTexture(tex, viewRequest{
		channel: desc.Channel,
		layer:   desc.Layer,
		min:     desc.Min,
		max:     desc.Max,
		swizzle: desc.Swizzle,
	})
	if err != nil {
		return handle.ShaderResourceView{}, err
	}
	return f.handles.AddShaderResourceView(view, h)
}

// ViewTextureAsRenderTarget creates a render target view of one mip
// level of h.
func (f *Factory) ViewTextureAsRenderTarget(h handle.Texture, desc gfx.RenderDesc) (handle.RenderTargetView, error) {
	f.ensureOpen()
	tex, err := f.handles.Texture(h)
	if err != nil {
		return handle.RenderTargetView{}, err
	}
	view, err := f.renderTarget(tex, desc)
	if err != nil {
		return handle.RenderTargetView{}, err
	}
	return f.handles.AddRenderTargetView(view, h)
}

func (f *Factory) renderTarget(tex *resource.Texture, desc gfx.RenderDesc) (*resource.TextureView, error) {
	if !tex.Desc.Bind.Contains(gfx.BindRenderTarget) {
		return nil, &TargetViewError{Kind: ViewNoBindFlag}
	}
	view, err := f.viewTexture(tex, viewRequest{
		channel: desc.Channel,
		layer:   desc.Layer,
		min:     desc.Level,
		max:     desc.Level,
		target:  true,
	})
	return view, targetError(err)
}

// ViewTextureAsDepthStencil creates a depth-stencil view of one mip level
// of h, reading the depth channel of its surface.
func (f *Factory) ViewTextureAsDepthStencil(h handle.Texture, desc gfx.DepthStencilDesc) (handle.DepthStencilView, error) {
	f.ensureOpen()
	tex, err := f.handles.Texture(h)
	if err != nil {
		return handle.DepthStencilView{}, err
	}
	if !tex.Desc.Bind.Contains(gfx.BindDepthStencil) {
		return handle.DepthStencilView{}, &TargetViewError{Kind: ViewNoBindFlag}
	}
	view, err := f.viewTexture(tex, viewRequest{
		channel: translate.DepthChannel(tex.Desc.Format),
		layer:   desc.Layer,
		min:     desc.Level,
		max:     desc.Level,
		target:  true,
	})
	if err != nil {
		return handle.DepthStencilView{}, targetError(err)
	}
	return f.handles.AddDepthStencilView(view, h)
}

// ViewTextureAsUnorderedAccess is not supported and always fails with
// ViewUnsupported.
func (f *Factory) ViewTextureAsUnorderedAccess(h handle.Texture) (handle.UnorderedAccessView, error) {
	f.ensureOpen()
	if _, err := f.handles.Texture(h); err != nil {
		return handle.UnorderedAccessView{}, err
	}
	return handle.UnorderedAccessView{}, &ResourceViewError{Kind: ViewUnsupported}
}

// ViewBufferAsShaderResource is not supported and always fails with
// ViewUnsupported.
func (f *Factory) ViewBufferAsShaderResource(h handle.Buffer) (handle.ShaderResourceView, error) {
	f.ensureOpen()
	if _, err := f.handles.Buffer(h); err != nil {
		return handle.ShaderResourceView{}, err
	}
	return handle.ShaderResourceView{}, &ResourceViewError{Kind: ViewUnsupported}
}

// ViewBufferAsUnorderedAccess is not supported and always fails with
// ViewUnsupported.
func (f *Factory) ViewBufferAsUnorderedAccess(h handle.Buffer) (handle.UnorderedAccessView, error) {
	f.ensureOpen()
	if _, err := f.handles.Buffer(h); err != nil {
		return handle.UnorderedAccessView{}, err
	}
	return handle.UnorderedAccessView{}, &ResourceViewError{Kind: ViewUnsupported}
}

// ViewSwapchainImage wraps an image owned by a swapchain as a single-level
// 2D render target and returns a view of it. The image is never destroyed
// by gfxvk; releasing the view releases the wrapper.
func (f *Factory) ViewSwapchainImage(img vk.Image, format gfx.Format, w, h gfx.Size) (handle.RenderTargetView, error) {
	f.ensureOpen()
	desc := gfx.TextureDesc{
		Kind:   gfx.D2(w, h, 1),
		Levels: 1,
		Format: format.Surface,
		Bind:   gfx.BindRenderTarget,
		Usage:  gfx.UsageGPUOnly,
	}
	native, _, err := resolveTexture(desc, &format.Channel)
	if err != nil {
		return handle.RenderTargetView{}, err
	}
	tex := &resource.Texture{
		Native:   img,
		Layout:   resource.NewLayoutCell(vk.ImageLayoutGeneral),
		Desc:     desc,
		Format:   native,
		Hint:     format.Channel,
		Tiling:   vk.ImageTilingOptimal,
		External: true,
	}
	view, err := f.renderTarget(tex, gfx.RenderDesc{Channel: format.Channel})
	if err != nil {
		return handle.RenderTargetView{}, err
	}

	th := f.handles.AddTexture(tex)
	rtv, err := f.handles.AddRenderTargetView(view, th)
	// The view holds the only lasting reference to the wrapper.
	if rerr := f.handles.ReleaseTexture(th); err == nil {
		err = rerr
	}
	if err != nil {
		f.dev.DestroyImageView(view.View)
		return handle.RenderTargetView{}, err
	}
	return rtv, nil
}
