package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/loov/hrtime"

	"github.com/gogpu/gfxvk"
	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/handle"
)

const vertexShader = `
@vertex
fn main(@location(0) pos: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(pos, 1.0);
}
`

const pixelShader = `
@fragment
fn main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.5, 0.0, 1.0);
}
`

type vertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec3
}

const vertexStride = 24

type config struct {
	width, height int
}

type step struct {
	name string
	took time.Duration
}

type report struct {
	steps []step
	stats gfxvk.Stats
}

func (r *report) time(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := hrtime.Now()
	err := fn()
	r.steps = append(r.steps, step{name: name, took: hrtime.Now() - start})
	return errors.Wrap(err, name)
}

func (r *report) print(w io.Writer) {
	if r == nil {
		return
	}
	for _, s := range r.steps {
		fmt.Fprintf(w, "  %-16s %v\n", s.name, s.took)
	}
	fmt.Fprintf(w, "  %v\n", r.stats)
}

// scene is what one run creates.
type scene struct {
	vertices  handle.Buffer
	constants handle.Buffer
	texture   handle.Texture
	srv       handle.ShaderResourceView
	sampler   handle.Sampler
	target    handle.Texture
	rtv       handle.RenderTargetView
	program   handle.Program
	pipeline  handle.PipelineState
}

// run drives one factory through every creation path. Driver failures
// panic inside the factory and are returned as errors here.
func run(ctx context.Context, share *gfxvk.Share, cfg config) (r *report, err error) {
	defer func() {
		if p := recover(); p != nil {
			perr, ok := p.(error)
			if !ok {
				panic(p)
			}
			err = errors.Wrap(perr, "driver failure")
		}
	}()

	f, err := gfxvk.NewFactoryFromDevice(share, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r = &report{}
	var s scene
	steps := []struct {
		name string
		fn   func() error
	}{
		{"vertex buffer", func() error { return s.createVertices(f) }},
		{"constant buffer", func() error { return s.createConstants(f, cfg) }},
		{"texture", func() error { return s.createTexture(f) }},
		{"render target", func() error { return s.createTarget(f, cfg) }},
		{"shaders", func() error { return s.createProgram(f) }},
		{"pipeline", func() error { return s.createPipeline(f) }},
		{"frame", func() error { return s.submitFrame(f) }},
	}
	for _, st := range steps {
		if err := r.time(ctx, st.name, st.fn); err != nil {
			return r, err
		}
	}
	r.stats = f.Stats()
	return r, nil
}

func (s *scene) createVertices(f *gfxvk.Factory) error {
	triangle := []vertex{
		{Pos: mgl32.Vec3{0, -0.5, 0}, Color: mgl32.Vec3{1, 0, 0}},
		{Pos: mgl32.Vec3{0.5, 0.5, 0}, Color: mgl32.Vec3{0, 1, 0}},
		{Pos: mgl32.Vec3{-0.5, 0.5, 0}, Color: mgl32.Vec3{0, 0, 1}},
	}
	data, err := binary.Append(nil, binary.LittleEndian, triangle)
	if err != nil {
		return err
	}
	s.vertices, err = f.CreateBufferImmutable(data, vertexStride, gfx.RoleVertex, 0)
	return err
}

func (s *scene) createConstants(f *gfxvk.Factory, cfg config) error {
	usage := gputypes.BufferUsageUniform | gputypes.BufferUsageMapRead | gputypes.BufferUsageMapWrite
	info := gfx.FromBufferUsage(usage, 64)
	info.Stride = 64
	h, err := f.CreateBuffer(info)
	if err != nil {
		return err
	}
	s.constants = h

	aspect := float32(cfg.width) / float32(cfg.height)
	mvp := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 10).
		Mul4(mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))

	rw, err := gfxvk.MapReadWrite[mgl32.Mat4](f, h)
	if err != nil {
		return err
	}
	rw.Set(0, mvp)
	got := rw.At(0)
	if err := rw.Gate().Close(); err != nil {
		return err
	}
	if !got.ApproxEqual(mvp) {
		return errors.New("constant buffer read back a different matrix")
	}
	return nil
}

func (s *scene) createTexture(f *gfxvk.Factory) error {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
			}
		}
	}
	tex, err := f.CreateTextureFromImage(img, gfx.UsageCPUOnly(gfx.AccessWrite), gfx.BindShaderResource)
	if err != nil {
		return err
	}
	s.texture = tex
	s.srv, err = f.ViewTextureAsShaderResource(tex, gfx.ResourceDesc{
		Channel: gfx.Unorm,
		Swizzle: gfx.NewSwizzle(),
	})
	if err != nil {
		return err
	}
	s.sampler = f.CreateSampler(gfx.NewSamplerInfo(gfx.Bilinear, gfx.WrapClamp))
	return nil
}

func (s *scene) createTarget(f *gfxvk.Factory, cfg config) error {
	format, ok := gfx.FromTextureFormat(gputypes.TextureFormatBGRA8Unorm)
	if !ok {
		return errors.New("no render target format")
	}
	tex, err := f.CreateTexture(gfx.TextureDesc{
		Kind:   gfx.D2(gfx.Size(cfg.width), gfx.Size(cfg.height), 1),
		Levels: 1,
		Format: format.Surface,
		Bind:   gfx.BindRenderTarget | gfx.BindShaderResource,
		Usage:  gfx.UsageGPUOnly,
	}, &format.Channel)
	if err != nil {
		return err
	}
	s.target = tex
	s.rtv, err = f.ViewTextureAsRenderTarget(tex, gfx.RenderDesc{Channel: format.Channel})
	return err
}

func (s *scene) createProgram(f *gfxvk.Factory) error {
	vs, err := f.CreateShaderWGSL(gfx.StageVertex, vertexShader)
	if err != nil {
		return err
	}
	ps, err := f.CreateShaderWGSL(gfx.StagePixel, pixelShader)
	if err != nil {
		return err
	}
	s.program, err = f.CreateProgram(gfxvk.SimpleSet(vs, ps))
	return errors.CombineErrors(err, errors.CombineErrors(
		f.Handles().ReleaseShader(vs),
		f.Handles().ReleaseShader(ps)))
}

func (s *scene) createPipeline(f *gfxvk.Factory) error {
	desc := gfx.NewPipelineDesc(gfx.TriangleList, gfx.NewRasterizerFill())
	desc.VertexBuffers[0] = &gfx.VertexBufferDesc{Stride: vertexStride}
	desc.Attributes[0] = &gfx.AttributeDesc{Buffer: 0, Format: gfx.Vec3}
	desc.Attributes[1] = &gfx.AttributeDesc{Buffer: 0, Format: gfx.Vec3, Offset: 12}
	desc.ConstantBuffers[0] = gfx.VisibleVertex
	desc.ResourceViews[1] = gfx.VisiblePixel
	desc.Samplers[2] = gfx.VisiblePixel
	desc.ColorTargets[0] = &gfx.ColorTargetDesc{Format: gfx.Bgra8, Info: gfx.AlphaBlend()}

	var err error
	s.pipeline, err = f.CreatePipelineState(s.program, desc)
	return err
}

// submitFrame holds everything a draw would use for one unit of work.
func (s *scene) submitFrame(f *gfxvk.Factory) error {
	fence := f.CreateFence(true)
	defer f.DestroyFence(fence)
	_ = f.NewCommandBuffer()

	frame := f.NewFrame()
	err := errors.CombineErrors(frame.Buffer(s.vertices), frame.Buffer(s.constants))
	err = errors.CombineErrors(err, frame.Texture(s.texture))
	err = errors.CombineErrors(err, frame.View(s.srv))
	err = errors.CombineErrors(err, frame.View(s.rtv))
	err = errors.CombineErrors(err, frame.Sampler(s.sampler))
	err = errors.CombineErrors(err, frame.Pipeline(s.pipeline))
	return errors.CombineErrors(err, frame.Release())
}
