package handle

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/gfxvk/resource"
)

// Retirer destroys the native objects of records whose last reference
// was released. Each record is passed to it exactly once.
type Retirer interface {
	RetireBuffer(*resource.Buffer)
	RetireTexture(*resource.Texture)
	RetireView(*resource.TextureView)
	RetireShader(*resource.Shader)
	RetireProgram(*resource.Program)
	RetirePipeline(*resource.Pipeline)
	RetireSampler(*resource.Sampler)
}

type viewEntry struct {
	view    *resource.TextureView
	texture ID
}

type programEntry struct {
	program *resource.Program
	shaders []ID
}

type pipelineEntry struct {
	pipeline *resource.Pipeline
	program  ID
}

// Counts is the number of live records per kind.
type Counts struct {
	Buffers   int
	Textures  int
	Views     int
	Shaders   int
	Programs  int
	Pipelines int
	Samplers  int
}

// Total returns the number of live records.
func (c Counts) Total() int {
	return c.Buffers + c.Textures + c.Views + c.Shaders + c.Programs + c.Pipelines + c.Samplers
}

// String returns a human-readable summary.
func (c Counts) String() string {
	return fmt.Sprintf("Counts{Buffers: %d, Textures: %d, Views: %d, Shaders: %d, Programs: %d, Pipelines: %d, Samplers: %d}",
		c.Buffers, c.Textures, c.Views, c.Shaders, c.Programs, c.Pipelines, c.Samplers)
}

// Manager issues handles for resource records and tracks the references
// between them. A view keeps its texture alive, a program its shaders and
// a pipeline its program. Manager is safe for concurrent use; the Retirer
// is called without the lock held.
type Manager struct {
	mu      sync.Mutex
	retirer Retirer

	buffers   Arena[*resource.Buffer]
	textures  Arena[*resource.Texture]
	views     Arena[viewEntry]
	shaders   Arena[*resource.Shader]
	programs  Arena[programEntry]
	pipelines Arena[pipelineEntry]
	samplers  Arena[*resource.Sampler]
}

// NewManager returns an empty manager that retires records through r.
func NewManager(r Retirer) *Manager {
	return &Manager{retirer: r}
}

// retireList collects retire calls made while the lock is held.
type retireList []func()

func (l retireList) run() {
	for _, f := range l {
		f()
	}
}

func stale(kind string, id ID) error {
	return errors.Wrapf(ErrStale, "%s %v", kind, id)
}

// Counts returns the number of live records per kind.
func (m *Manager) Counts() Counts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Counts{
		Buffers:   m.buffers.Len(),
		Textures:  m.textures.Len(),
		Views:     m.views.Len(),
		Shaders:   m.shaders.Len(),
		Programs:  m.programs.Len(),
		Pipelines: m.pipelines.Len(),
		Samplers:  m.samplers.Len(),
	}
}

// Buffers

// AddBuffer registers b and returns a handle holding one reference.
func (m *Manager) AddBuffer(b *resource.Buffer) Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Buffer{m.buffers.Insert(b)}
}

// Buffer resolves h.
func (m *Manager) Buffer(h Buffer) (*resource.Buffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.buffers.Get(h.id)
	if err != nil {
		return nil, stale("buffer", h.id)
	}
	return b, nil
}

// RetainBuffer adds a reference to h.
func (m *Manager) RetainBuffer(h Buffer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.buffers.Retain(h.id) != nil {
		return stale("buffer", h.id)
	}
	return nil
}

// ReleaseBuffer drops a reference to h.
func (m *Manager) ReleaseBuffer(h Buffer) error {
	var retire retireList
	m.mu.Lock()
	err := m.releaseBuffer(h.id, &retire)
	m.mu.Unlock()
	retire.run()
	return err
}

func (m *Manager) releaseBuffer(id ID, retire *retireList) error {
	b, freed, err := m.buffers.Release(id)
	if err != nil {
		return stale("buffer", id)
	}
	if freed {
		*retire = append(*retire, func() { m.retirer.RetireBuffer(b) })
	}
	return nil
}

// Textures

// AddTexture registers t and returns a handle holding one reference.
func (m *Manager) AddTexture(t *resource.Texture) Texture {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Texture{m.textures.Insert(t)}
}

// Texture resolves h.
func (m *Manager) Texture(h Texture) (*resource.Texture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, err := m.textures.Get(h.id)
	if err != nil {
		return nil, stale("texture", h.id)
	}
	return t, nil
}

// RetainTexture adds a reference to h.
func (m *Manager) RetainTexture(h Texture) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.textures.Retain(h.id) != nil {
		return stale("texture", h.id)
	}
	return nil
}

// ReleaseTexture drops a reference to h.
func (m *Manager) ReleaseTexture(h Texture) error {
	var retire retireList
	m.mu.Lock()
	err := m.releaseTexture(h.id, &retire)
	m.mu.Unlock()
	retire.run()
	return err
}

func (m *Manager) releaseTexture(id ID, retire *retireList) error {
	t, freed, err := m.textures.Release(id)
	if err != nil {
		return stale("texture", id)
	}
	if freed {
		*retire = append(*retire, func() { m.retirer.RetireTexture(t) })
	}
	return nil
}

// Views

func (m *Manager) addView(v *resource.TextureView, tex Texture) (ID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.textures.Retain(tex.id) != nil {
		return ID{}, stale("texture", tex.id)
	}
	return m.views.Insert(viewEntry{view: v, texture: tex.id}), nil
}

// AddShaderResourceView registers v as a sampling view of tex. The view
// holds a reference to tex until it is destroyed.
func (m *Manager) AddShaderResourceView(v *resource.TextureView, tex Texture) (ShaderResourceView, error) {
	id, err := m.addView(v, tex)
	return ShaderResourceView{id}, err
}

// AddRenderTargetView registers v as a color target view of tex.
func (m *Manager) AddRenderTargetView(v *resource.TextureView, tex Texture) (RenderTargetView, error) {
	id, err := m.addView(v, tex)
	return RenderTargetView{id}, err
}

// AddDepthStencilView registers v as a depth-stencil view of tex.
func (m *Manager) AddDepthStencilView(v *resource.TextureView, tex Texture) (DepthStencilView, error) {
	id, err := m.addView(v, tex)
	return DepthStencilView{id}, err
}

// AddUnorderedAccessView registers v as a storage view of tex.
func (m *Manager) AddUnorderedAccessView(v *resource.TextureView, tex Texture) (UnorderedAccessView, error) {
	id, err := m.addView(v, tex)
	return UnorderedAccessView{id}, err
}

// View resolves any view handle.
func (m *Manager) View(h View) (*resource.TextureView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.views.Get(h.viewID())
	if err != nil {
		return nil, stale("view", h.viewID())
	}
	return e.view, nil
}

// ViewTexture returns the texture a view was created from.
func (m *Manager) ViewTexture(h View) (Texture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.views.Get(h.viewID())
	if err != nil {
		return Texture{}, stale("view", h.viewID())
	}
	return Texture{e.texture}, nil
}

// RetainView adds a reference to h.
func (m *Manager) RetainView(h View) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.views.Retain(h.viewID()) != nil {
		return stale("view", h.viewID())
	}
	return nil
}

// ReleaseView drops a reference to h. Destroying the view releases its
// texture reference.
func (m *Manager) ReleaseView(h View) error {
	var retire retireList
	m.mu.Lock()
	err := m.releaseView(h.viewID(), &retire)
	m.mu.Unlock()
	retire.run()
	return err
}

func (m *Manager) releaseView(id ID, retire *retireList) error {
	e, freed, err := m.views.Release(id)
	if err != nil {
		return stale("view", id)
	}
	if !freed {
		return nil
	}
	*retire = append(*retire, func() { m.retirer.RetireView(e.view) })
	return m.releaseTexture(e.texture, retire)
}

// Shaders

// AddShader registers s and returns a handle holding one reference.
func (m *Manager) AddShader(s *resource.Shader) Shader {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Shader{m.shaders.Insert(s)}
}

// Shader resolves h.
func (m *Manager) Shader(h Shader) (*resource.Shader, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.shaders.Get(h.id)
	if err != nil {
		return nil, stale("shader", h.id)
	}
	return s, nil
}

// RetainShader adds a reference to h.
func (m *Manager) RetainShader(h Shader) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shaders.Retain(h.id) != nil {
		return stale("shader", h.id)
	}
	return nil
}

// ReleaseShader drops a reference to h.
func (m *Manager) ReleaseShader(h Shader) error {
	var retire retireList
	m.mu.Lock()
	err := m.releaseShader(h.id, &retire)
	m.mu.Unlock()
	retire.run()
	return err
}

func (m *Manager) releaseShader(id ID, retire *retireList) error {
	s, freed, err := m.shaders.Release(id)
	if err != nil {
		return stale("shader", id)
	}
	if freed {
		*retire = append(*retire, func() { m.retirer.RetireShader(s) })
	}
	return nil
}

// Programs

// AddProgram registers p, which links the given shaders. The program
// holds a reference to each shader until it is destroyed. If any shader
// handle is stale no reference is taken.
func (m *Manager) AddProgram(p *resource.Program, shaders ...Shader) (Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]ID, 0, len(shaders))
	for _, s := range shaders {
		if _, err := m.shaders.Get(s.id); err != nil {
			return Program{}, stale("shader", s.id)
		}
		ids = append(ids, s.id)
	}
	for _, id := range ids {
		_ = m.shaders.Retain(id)
	}
	return Program{m.programs.Insert(programEntry{program: p, shaders: ids})}, nil
}

// Program resolves h.
func (m *Manager) Program(h Program) (*resource.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.programs.Get(h.id)
	if err != nil {
		return nil, stale("program", h.id)
	}
	return e.program, nil
}

// RetainProgram adds a reference to h.
func (m *Manager) RetainProgram(h Program) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.programs.Retain(h.id) != nil {
		return stale("program", h.id)
	}
	return nil
}

// ReleaseProgram drops a reference to h. Destroying the program releases
// its shader references.
func (m *Manager) ReleaseProgram(h Program) error {
	var retire retireList
	m.mu.Lock()
	err := m.releaseProgram(h.id, &retire)
	m.mu.Unlock()
	retire.run()
	return err
}

func (m *Manager) releaseProgram(id ID, retire *retireList) error {
	e, freed, err := m.programs.Release(id)
	if err != nil {
		return stale("program", id)
	}
	if !freed {
		return nil
	}
	*retire = append(*retire, func() { m.retirer.RetireProgram(e.program) })
	for _, s := range e.shaders {
		if err := m.releaseShader(s, retire); err != nil {
			return err
		}
	}
	return nil
}

// Pipelines

// AddPipeline registers p, built from prog. The pipeline holds a
// reference to prog until it is destroyed.
func (m *Manager) AddPipeline(p *resource.Pipeline, prog Program) (PipelineState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.programs.Retain(prog.id) != nil {
		return PipelineState{}, stale("program", prog.id)
	}
	return PipelineState{m.pipelines.Insert(pipelineEntry{pipeline: p, program: prog.id})}, nil
}

// Pipeline resolves h.
func (m *Manager) Pipeline(h PipelineState) (*resource.Pipeline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.pipelines.Get(h.id)
	if err != nil {
		return nil, stale("pipeline", h.id)
	}
	return e.pipeline, nil
}

// RetainPipeline adds a reference to h.
func (m *Manager) RetainPipeline(h PipelineState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pipelines.Retain(h.id) != nil {
		return stale("pipeline", h.id)
	}
	return nil
}

// ReleasePipeline drops a reference to h. Destroying the pipeline
// releases its program reference.
func (m *Manager) ReleasePipeline(h PipelineState) error {
	var retire retireList
	m.mu.Lock()
	err := m.releasePipeline(h.id, &retire)
	m.mu.Unlock()
	retire.run()
	return err
}

func (m *Manager) releasePipeline(id ID, retire *retireList) error {
	e, freed, err := m.pipelines.Release(id)
	if err != nil {
		return stale("pipeline", id)
	}
	if !freed {
		return nil
	}
	*retire = append(*retire, func() { m.retirer.RetirePipeline(e.pipeline) })
	return m.releaseProgram(e.program, retire)
}

// Samplers

// AddSampler registers s and returns a handle holding one reference.
func (m *Manager) AddSampler(s *resource.Sampler) Sampler {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Sampler{m.samplers.Insert(s)}
}

// Sampler resolves h.
func (m *Manager) Sampler(h Sampler) (*resource.Sampler, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.samplers.Get(h.id)
	if err != nil {
		return nil, stale("sampler", h.id)
	}
	return s, nil
}

// RetainSampler adds a reference to h.
func (m *Manager) RetainSampler(h Sampler) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.samplers.Retain(h.id) != nil {
		return stale("sampler", h.id)
	}
	return nil
}

// ReleaseSampler drops a reference to h.
func (m *Manager) ReleaseSampler(h Sampler) error {
	var retire retireList
	m.mu.Lock()
	err := m.releaseSampler(h.id, &retire)
	m.mu.Unlock()
	retire.run()
	return err
}

func (m *Manager) releaseSampler(id ID, retire *retireList) error {
	s, freed, err := m.samplers.Release(id)
	if err != nil {
		return stale("sampler", id)
	}
	if freed {
		*retire = append(*retire, func() { m.retirer.RetireSampler(s) })
	}
	return nil
}

// Drain retires every live record regardless of its reference count, in
// dependency order: pipelines, programs, views, shaders, textures,
// buffers, samplers. Handles issued before Drain become stale. It
// returns the number of records retired.
func (m *Manager) Drain() int {
	var retire retireList
	m.mu.Lock()
	for _, id := range m.pipelines.IDs() {
		e, _ := m.pipelines.Get(id)
		m.pipelines.forget(id)
		retire = append(retire, func() { m.retirer.RetirePipeline(e.pipeline) })
	}
	for _, id := range m.programs.IDs() {
		e, _ := m.programs.Get(id)
		m.programs.forget(id)
		retire = append(retire, func() { m.retirer.RetireProgram(e.program) })
	}
	for _, id := range m.views.IDs() {
		e, _ := m.views.Get(id)
		m.views.forget(id)
		retire = append(retire, func() { m.retirer.RetireView(e.view) })
	}
	for _, id := range m.shaders.IDs() {
		s, _ := m.shaders.Get(id)
		m.shaders.forget(id)
		retire = append(retire, func() { m.retirer.RetireShader(s) })
	}
	for _, id := range m.textures.IDs() {
		t, _ := m.textures.Get(id)
		m.textures.forget(id)
		retire = append(retire, func() { m.retirer.RetireTexture(t) })
	}
	for _, id := range m.buffers.IDs() {
		b, _ := m.buffers.Get(id)
		m.buffers.forget(id)
		retire = append(retire, func() { m.retirer.RetireBuffer(b) })
	}
	for _, id := range m.samplers.IDs() {
		s, _ := m.samplers.Get(id)
		m.samplers.forget(id)
		retire = append(retire, func() { m.retirer.RetireSampler(s) })
	}
	m.mu.Unlock()
	retire.run()
	return len(retire)
}
