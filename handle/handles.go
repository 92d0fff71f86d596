package handle

// Typed handles. The zero value of each is invalid.
type (
	// Buffer refers to a resource.Buffer.
	Buffer struct{ id ID }
	// Texture refers to a resource.Texture.
	Texture struct{ id ID }
	// Shader refers to a resource.Shader.
	Shader struct{ id ID }
	// Program refers to a resource.Program.
	Program struct{ id ID }
	// PipelineState refers to a resource.Pipeline.
	PipelineState struct{ id ID }
	// Sampler refers to a resource.Sampler.
	Sampler struct{ id ID }

	// ShaderResourceView refers to a resource.TextureView used for sampling.
	ShaderResourceView struct{ id ID }
	// RenderTargetView refers to a resource.TextureView used as a color target.
	RenderTargetView struct{ id ID }
	// DepthStencilView refers to a resource.TextureView used as a depth target.
	DepthStencilView struct{ id ID }
	// UnorderedAccessView refers to a resource.TextureView used for storage.
	UnorderedAccessView struct{ id ID }
)

// ID returns the arena ID of the handle.
func (h Buffer) ID() ID { return h.id }

// ID returns the arena ID of the handle.
func (h Texture) ID() ID { return h.id }

// ID returns the arena ID of the handle.
func (h Shader) ID() ID { return h.id }

// ID returns the arena ID of the handle.
func (h Program) ID() ID { return h.id }

// ID returns the arena ID of the handle.
func (h PipelineState) ID() ID { return h.id }

// ID returns the arena ID of the handle.
func (h Sampler) ID() ID { return h.id }

// View is implemented by the four texture view handles, which share one
// arena.
type View interface {
	viewID() ID
}

func (h ShaderResourceView) viewID() ID  { return h.id }
func (h RenderTargetView) viewID() ID    { return h.id }
func (h DepthStencilView) viewID() ID    { return h.id }
func (h UnorderedAccessView) viewID() ID { return h.id }
