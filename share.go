package gfxvk

import (
	"sync/atomic"

	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/resource"
	"github.com/gogpu/gfxvk/vk"
)

// Share is a counted reference to a device connection and the handle
// manager of the resources created on it.
//
// Every holder owns one Share value: Clone hands out another, Release
// drops it. When the last Share is released every live resource is
// destroyed. A Share must not be used after its Release.
type Share struct {
	core     *shareCore
	released atomic.Bool
}

type shareCore struct {
	dev     vk.Device
	handles *handle.Manager
	refs    atomic.Int32
}

// NewShare wraps dev. The returned Share holds the only reference.
func NewShare(dev vk.Device) *Share {
	core := &shareCore{dev: dev}
	core.handles = handle.NewManager(destroyer{dev: dev})
	core.refs.Store(1)
	return &Share{core: core}
}

// Clone returns a new reference to the same device.
func (s *Share) Clone() *Share {
	s.core.refs.Add(1)
	return &Share{core: s.core}
}

// Release drops this reference. Releasing a Share twice has no effect.
func (s *Share) Release() {
	if !s.released.CompareAndSwap(false, true) {
		return
	}
	if s.core.refs.Add(-1) > 0 {
		return
	}
	n := s.core.handles.Drain()
	Logger().Info("gfxvk: device released", "retired", n)
}

// Device returns the device connection.
func (s *Share) Device() vk.Device { return s.core.dev }

// Handles returns the handle manager shared by every holder.
func (s *Share) Handles() *handle.Manager { return s.core.handles }

// Refs returns the number of live references.
func (s *Share) Refs() int { return int(s.core.refs.Load()) }

// destroyer destroys native objects once their handle is retired.
type destroyer struct {
	dev vk.Device
}

var _ handle.Retirer = destroyer{}

func (d destroyer) RetireBuffer(b *resource.Buffer) {
	if b.MapState() == resource.MapStateMapped {
		d.dev.UnmapMemory(b.Memory.Memory)
		_ = b.EndMap()
	}
	d.dev.DestroyBuffer(b.Native)
	d.dev.FreeMemory(b.Memory.Memory)
	Logger().Debug("gfxvk: buffer destroyed", "buffer", b.Native)
}

func (d destroyer) RetireTexture(t *resource.Texture) {
	// External images belong to their swapchain.
	if t.External {
		return
	}
	d.dev.DestroyImage(t.Native)
	d.dev.FreeMemory(t.Memory.Memory)
	Logger().Debug("gfxvk: texture destroyed", "image", t.Native)
}

func (d destroyer) RetireView(v *resource.TextureView) {
	d.dev.DestroyImageView(v.View)
}

func (d destroyer) RetireShader(s *resource.Shader) {
	d.dev.DestroyShaderModule(s.Module)
}

func (d destroyer) RetireProgram(*resource.Program) {}

func (d destroyer) RetirePipeline(p *resource.Pipeline) {
	d.dev.DestroyPipeline(p.Pipeline)
	d.dev.DestroyPipelineLayout(p.Layout)
	d.dev.DestroyDescriptorPool(p.Pool)
	d.dev.DestroyDescriptorSetLayout(p.SetLayout)
	d.dev.DestroyRenderPass(p.RenderPass)
	Logger().Debug("gfxvk: pipeline destroyed", "pipeline", p.Pipeline)
}

func (d destroyer) RetireSampler(s *resource.Sampler) {
	d.dev.DestroySampler(s.Native)
}
