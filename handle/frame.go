package handle

// Frame holds references taken for one unit of work, typically the
// resources used by a recorded command buffer, and drops them together.
// A Frame is not safe for concurrent use.
type Frame struct {
	m       *Manager
	release []func() error
}

// NewFrame returns an empty frame on m.
func (m *Manager) NewFrame() *Frame {
	return &Frame{m: m}
}

func (f *Frame) hold(retain error, release func() error) error {
	if retain != nil {
		return retain
	}
	f.release = append(f.release, release)
	return nil
}

// Buffer keeps h alive until Release.
func (f *Frame) Buffer(h Buffer) error {
	return f.hold(f.m.RetainBuffer(h), func() error { return f.m.ReleaseBuffer(h) })
}

// Texture keeps h alive until Release.
func (f *Frame) Texture(h Texture) error {
	return f.hold(f.m.RetainTexture(h), func() error { return f.m.ReleaseTexture(h) })
}

// View keeps h alive until Release.
func (f *Frame) View(h View) error {
	return f.hold(f.m.RetainView(h), func() error { return f.m.ReleaseView(h) })
}

// Pipeline keeps h alive until Release.
func (f *Frame) Pipeline(h PipelineState) error {
	return f.hold(f.m.RetainPipeline(h), func() error { return f.m.ReleasePipeline(h) })
}

// Sampler keeps h alive until Release.
func (f *Frame) Sampler(h Sampler) error {
	return f.hold(f.m.RetainSampler(h), func() error { return f.m.ReleaseSampler(h) })
}

// Len returns the number of held references.
func (f *Frame) Len() int { return len(f.release) }

// Release drops every held reference in reverse order and empties the
// frame. It returns the first error encountered.
func (f *Frame) Release() error {
	var first error
	for i := len(f.release) - 1; i >= 0; i-- {
		if err := f.release[i](); err != nil && first == nil {
			first = err
		}
	}
	f.release = f.release[:0]
	return first
}
