package gfxvk

import (
	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/internal/translate"
	"github.com/gogpu/gfxvk/resource"
	"github.com/gogpu/gfxvk/vk"
)

// CreateSampler creates a sampler. Border colors other than transparent
// black, opaque black and opaque white have no native equivalent and fall
// back to transparent black.
func (f *Factory) CreateSampler(info gfx.SamplerInfo) handle.Sampler {
	f.ensureOpen()
	minFilter, magFilter, mip, aniso := translate.Filter(info.Filter)
	border, ok := translate.BorderColor(info.Border)
	if !ok {
		Logger().Warn("gfxvk: unsupported sampler border color",
			"border", info.Border,
			"fallback", border)
	}
	compare := vk.CompareOpNever
	if info.Comparison != nil {
		compare = translate.Comparison(*info.Comparison)
	}

	ci := vk.SamplerCreateInfo{
		SType:            vk.StructureTypeSamplerCreateInfo,
		MagFilter:        magFilter,
		MinFilter:        minFilter,
		MipmapMode:       mip,
		AddressModeU:     translate.Wrap(info.Wrap[0]),
		AddressModeV:     translate.Wrap(info.Wrap[1]),
		AddressModeW:     translate.Wrap(info.Wrap[2]),
		MipLodBias:       info.LodBias,
		AnisotropyEnable: vk.B(aniso > 0),
		MaxAnisotropy:    aniso,
		CompareEnable:    vk.B(info.Comparison != nil),
		CompareOp:        compare,
		MinLod:           info.LodRange[0],
		MaxLod:           info.LodRange[1],
		BorderColor:      border,
	}
	native, res := f.dev.CreateSampler(&ci)
	check("CreateSampler", res)

	Logger().Debug("gfxvk: sampler created", "sampler", native, "filter", info.Filter)
	return f.handles.AddSampler(&resource.Sampler{Native: native, Info: info})
}
