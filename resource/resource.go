// Package resource holds the native records behind gfxvk handles.
//
// Records are created by the factory and owned by the handle manager. A
// record is destroyed exactly once, when the last handle reference to it
// is released.
package resource

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/internal/memory"
	"github.com/gogpu/gfxvk/vk"
)

// Buffer mapping errors.
var (
	// ErrAlreadyMapped is returned when mapping a buffer that has a live mapping.
	ErrAlreadyMapped = errors.New("resource: buffer is already mapped")

	// ErrNotMapped is returned when unmapping a buffer that is not mapped.
	ErrNotMapped = errors.New("resource: buffer is not mapped")
)

// MapState is the host mapping state of a buffer.
type MapState int

const (
	// MapStateUnmapped means the buffer has no live mapping.
	MapStateUnmapped MapState = iota
	// MapStateMapped means the buffer memory is mapped into host memory.
	MapStateMapped
)

// String returns the string representation of MapState.
func (s MapState) String() string {
	switch s {
	case MapStateUnmapped:
		return "Unmapped"
	case MapStateMapped:
		return "Mapped"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Buffer is a native buffer and the memory it exclusively owns.
type Buffer struct {
	Native vk.Buffer
	Memory memory.Allocation
	Info   gfx.BufferInfo

	mu     sync.Mutex
	state  MapState
	access gfx.Access
}

// MapState returns the current mapping state.
func (b *Buffer) MapState() MapState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// MappedAccess returns the access of the live mapping, or AccessNone.
func (b *Buffer) MappedAccess() gfx.Access {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != MapStateMapped {
		return gfx.AccessNone
	}
	return b.access
}

// BeginMap marks the buffer as mapped with the given access.
func (b *Buffer) BeginMap(access gfx.Access) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == MapStateMapped {
		return ErrAlreadyMapped
	}
	b.state = MapStateMapped
	b.access = access
	return nil
}

// EndMap marks the buffer as unmapped.
func (b *Buffer) EndMap() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != MapStateMapped {
		return ErrNotMapped
	}
	b.state = MapStateUnmapped
	b.access = gfx.AccessNone
	return nil
}

// LayoutCell is the current layout of an image. One cell is shared by a
// texture and read by every view built from it; command recording writes
// it when it transitions the image.
type LayoutCell struct {
	v atomic.Int32
}

// NewLayoutCell returns a cell holding l.
func NewLayoutCell(l vk.ImageLayout) *LayoutCell {
	c := &LayoutCell{}
	c.v.Store(int32(l))
	return c
}

// Get returns the current layout.
func (c *LayoutCell) Get() vk.ImageLayout { return vk.ImageLayout(c.v.Load()) }

// Set records a layout transition.
func (c *LayoutCell) Set(l vk.ImageLayout) { c.v.Store(int32(l)) }

// Texture is a native image, its backing memory and its layout cell.
// External textures wrap images owned elsewhere and have no memory.
type Texture struct {
	Native   vk.Image
	Memory   memory.Allocation
	Layout   *LayoutCell
	Desc     gfx.TextureDesc
	Format   vk.Format
	Hint     gfx.ChannelType
	Tiling   vk.ImageTiling
	External bool
}

// TextureView is a view object over a texture's image. The image is not
// owned by the view; Layout is the texture layout when the view was made.
type TextureView struct {
	Image  vk.Image
	View   vk.ImageView
	Layout vk.ImageLayout
	Range  vk.ImageSubresourceRange
	Format vk.Format
	Type   vk.ImageViewType
	Extent vk.Extent3D
}

// Shader is a shader module compiled for one stage.
type Shader struct {
	Module vk.ShaderModule
	Stage  gfx.Stage
	Size   int
}

// Program is a set of shaders linked for drawing. Geometry is optional.
type Program struct {
	Vertex   *Shader
	Geometry *Shader
	Pixel    *Shader
	Info     gfx.ProgramInfo
}

// Stages returns the present shaders in pipeline order.
func (p *Program) Stages() []*Shader {
	stages := []*Shader{p.Vertex}
	if p.Geometry != nil {
		stages = append(stages, p.Geometry)
	}
	return append(stages, p.Pixel)
}

// Pipeline is a compiled graphics pipeline with the objects it owns.
// Program is not owned.
type Pipeline struct {
	Pipeline   vk.Pipeline
	Layout     vk.PipelineLayout
	SetLayout  vk.DescriptorSetLayout
	Pool       vk.DescriptorPool
	RenderPass vk.RenderPass
	Program    *Program
}

// Sampler is a native sampler and the description it was created from.
type Sampler struct {
	Native vk.Sampler
	Info   gfx.SamplerInfo
}
