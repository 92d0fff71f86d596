package gfxvk

import "github.com/gogpu/gfxvk/vk"

// Option configures a Factory during creation.
//
// Example:
//
//	f := gfxvk.NewFactory(share, queueFamily, video, system,
//	    gfxvk.WithDescriptorPoolCapacity(256))
type Option func(*options)

// options holds optional configuration for Factory creation.
type options struct {
	poolCapacity uint32
	viewport     vk.Viewport
	scissor      vk.Rect2D
	commandFlags vk.CommandPoolCreateFlags
	entryPoint   string
}

// DefaultDescriptorPoolCapacity is the number of descriptor sets each
// pipeline's pool can hold unless configured otherwise.
const DefaultDescriptorPoolCapacity = 100

// defaultOptions returns the default factory options.
func defaultOptions() options {
	return options{
		poolCapacity: DefaultDescriptorPoolCapacity,
		viewport:     vk.Viewport{Width: 1, Height: 1, MinDepth: 0, MaxDepth: 1},
		scissor:      vk.Rect2D{Extent: vk.Extent2D{Width: 1, Height: 1}},
		commandFlags: vk.CommandPoolCreateResetCommandBufferBit,
		entryPoint:   "main",
	}
}

// WithDescriptorPoolCapacity sets how many descriptor sets the pool of
// every pipeline can allocate. Zero keeps the default.
func WithDescriptorPoolCapacity(n uint32) Option {
	return func(o *options) {
		if n > 0 {
			o.poolCapacity = n
		}
	}
}

// WithPlaceholderViewport sets the viewport and scissor baked into
// pipelines. Both are dynamic state and replaced per draw.
func WithPlaceholderViewport(viewport vk.Viewport, scissor vk.Rect2D) Option {
	return func(o *options) {
		o.viewport = viewport
		o.scissor = scissor
	}
}

// WithCommandPoolFlags sets the creation flags of the factory command pool.
func WithCommandPoolFlags(flags vk.CommandPoolCreateFlags) Option {
	return func(o *options) {
		o.commandFlags = flags
	}
}

// WithEntryPoint sets the shader entry point name used by every stage.
// An empty name keeps the default "main".
func WithEntryPoint(name string) Option {
	return func(o *options) {
		if name != "" {
			o.entryPoint = name
		}
	}
}
