package gfxvk

import (
	"encoding/binary"

	"github.com/gogpu/naga"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/internal/translate"
	"github.com/gogpu/gfxvk/resource"
	"github.com/gogpu/gfxvk/vk"
)

// CreateShader wraps compiled SPIR-V code for one stage. The code must
// be a non-empty whole number of 32-bit words.
func (f *Factory) CreateShader(stage gfx.Stage, code []byte) (handle.Shader, error) {
	f.ensureOpen()
	if len(code) == 0 || len(code)%4 != 0 {
		return handle.Shader{}, &ShaderError{Stage: stage, Size: len(code)}
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	info := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(code)),
		PCode:    words,
	}
	module, res := f.dev.CreateShaderModule(&info)
	check("CreateShaderModule", res)

	Logger().Debug("gfxvk: shader created", "module", module, "stage", stage, "size", len(code))
	return f.handles.AddShader(&resource.Shader{Module: module, Stage: stage, Size: len(code)}), nil
}

// CreateShaderWGSL compiles WGSL source to SPIR-V and wraps it for one
// stage.
func (f *Factory) CreateShaderWGSL(stage gfx.Stage, source string) (handle.Shader, error) {
	f.ensureOpen()
	code, err := naga.Compile(source)
	if err != nil {
		return handle.Shader{}, &ShaderError{Stage: stage, Size: len(source), Cause: err}
	}
	return f.CreateShader(stage, code)
}

// ShaderSet is the shaders of a program. Build one with SimpleSet or
// GeometrySet.
type ShaderSet struct {
	Vertex   handle.Shader
	Geometry *handle.Shader
	Pixel    handle.Shader
}

// SimpleSet returns a vertex and pixel shader pair.
func SimpleSet(vs, ps handle.Shader) ShaderSet {
	return ShaderSet{Vertex: vs, Pixel: ps}
}

// GeometrySet returns a vertex, geometry and pixel shader triple.
func GeometrySet(vs, gs, ps handle.Shader) ShaderSet {
	return ShaderSet{Vertex: vs, Geometry: &gs, Pixel: ps}
}

// CreateProgram links the shaders of set into a program. Each shader
// must have been created for the stage it is used in. The program keeps
// its shaders alive; its reflection record starts out empty.
func (f *Factory) CreateProgram(set ShaderSet) (handle.Program, error) {
	f.ensureOpen()
	type slot struct {
		h     handle.Shader
		stage gfx.Stage
		dst   **resource.Shader
	}
	prog := &resource.Program{}
	slots := []slot{{set.Vertex, gfx.StageVertex, &prog.Vertex}}
	if set.Geometry != nil {
		slots = append(slots, slot{*set.Geometry, gfx.StageGeometry, &prog.Geometry})
	}
	slots = append(slots, slot{set.Pixel, gfx.StagePixel, &prog.Pixel})

	shaders := make([]handle.Shader, 0, len(slots))
	for _, s := range slots {
		sh, err := f.handles.Shader(s.h)
		if err != nil {
			return handle.Program{}, err
		}
		if sh.Stage != s.stage {
			return handle.Program{}, &ProgramError{Want: s.stage, Got: sh.Stage}
		}
		*s.dst = sh
		shaders = append(shaders, s.h)
	}

	h, err := f.handles.AddProgram(prog, shaders...)
	if err != nil {
		return handle.Program{}, err
	}
	Logger().Debug("gfxvk: program created", "stages", len(shaders))
	return h, nil
}

// shaderStages returns the stage records of prog in pipeline order.
func (f *Factory) shaderStages(prog *resource.Program) []vk.PipelineShaderStageCreateInfo {
	stages := prog.Stages()
	out := make([]vk.PipelineShaderStageCreateInfo, len(stages))
	for i, s := range stages {
		out[i] = vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  translate.ShaderStage(s.Stage),
			Module: s.Module,
			PName:  f.opts.entryPoint,
		}
	}
	return out
}
