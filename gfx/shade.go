package gfx

import "fmt"

// Stage is a programmable pipeline stage.
type Stage uint8

// Shader stages.
const (
	StageVertex Stage = iota
	StageGeometry
	StagePixel
)

// String returns the string representation of Stage.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "Vertex"
	case StageGeometry:
		return "Geometry"
	case StagePixel:
		return "Pixel"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Mask returns the visibility bit of the stage.
func (s Stage) Mask() StageMask { return 1 << s }

// StageMask is a set of stages a binding is visible to.
type StageMask uint8

// Stage visibility bits.
const (
	VisibleVertex StageMask = 1 << iota
	VisibleGeometry
	VisiblePixel

	VisibleNone StageMask = 0
	VisibleAll            = VisibleVertex | VisibleGeometry | VisiblePixel
)

// Contains reports whether every stage in other is also in m.
func (m StageMask) Contains(other StageMask) bool { return m&other == other }

// Var is one reflected shader variable.
type Var struct {
	Name  string
	Slot  uint8
	Usage StageMask
}

// ProgramInfo is the reflection record of a linked program. It is filled
// by a reflection pass and starts out empty.
type ProgramInfo struct {
	VertexAttributes []Var
	ConstantBuffers  []Var
	Textures         []Var
	Unordereds       []Var
	Samplers         []Var
	Outputs          []Var
	OutputDepth      bool
	KnowsOutputs     bool
}
