package gfxvk

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/resource"
	"github.com/gogpu/gfxvk/vk"
)

// Sentinel errors. The typed errors below match the sentinel of their kind
// under errors.Is.
var (
	// ErrFactoryClosed is the panic value of creation calls on a closed factory.
	ErrFactoryClosed = errors.New("gfxvk: factory is closed")

	// ErrBufferSize is returned for buffers of zero or negative size, or
	// with a negative stride.
	ErrBufferSize = errors.New("gfxvk: invalid buffer size")

	// ErrBufferRole is returned for unknown buffer roles.
	ErrBufferRole = errors.New("gfxvk: unsupported buffer role")

	// ErrShaderCode is returned for shader binaries that are empty or not a
	// whole number of 32-bit words.
	ErrShaderCode = errors.New("gfxvk: invalid shader code")

	// ErrShaderCompile is returned when shader source fails to compile.
	ErrShaderCompile = errors.New("gfxvk: shader compilation failed")

	// ErrProgramStage is returned when a shader is linked into the wrong stage.
	ErrProgramStage = errors.New("gfxvk: shader stage mismatch")

	// ErrCreation is returned when a pipeline descriptor cannot be built.
	ErrCreation = errors.New("gfxvk: pipeline creation failed")

	// ErrTextureFormat is returned when a texture format has no native
	// equivalent for the requested channel type.
	ErrTextureFormat = errors.New("gfxvk: unsupported texture format")

	// ErrTextureSize is returned for textures with a zero extent or zero
	// mip levels.
	ErrTextureSize = errors.New("gfxvk: invalid texture size")

	// ErrInitialDataNeedsLinearTiling is returned when uploading initial data
	// into a texture the host cannot write directly.
	ErrInitialDataNeedsLinearTiling = errors.New("gfxvk: initial texture data needs a linear, host-visible texture")

	// ErrNoBindFlag is returned when viewing a texture that was not created
	// with the bind flag the view requires.
	ErrNoBindFlag = errors.New("gfxvk: texture lacks the required bind flag")

	// ErrChannel is returned when a view channel type does not combine with
	// the texture's surface type.
	ErrChannel = errors.New("gfxvk: unsupported view channel")

	// ErrLayer is returned for unusable array layer selections.
	ErrLayer = errors.New("gfxvk: unusable array layer")

	// ErrUnsupportedView is returned for view kinds this backend lacks.
	ErrUnsupportedView = errors.New("gfxvk: unsupported view")

	// ErrMapAccess is returned when mapping a buffer with an access its
	// usage does not grant.
	ErrMapAccess = errors.New("gfxvk: mapping access not permitted")

	// ErrAlreadyMapped is returned when mapping a buffer with a live mapping.
	ErrAlreadyMapped = resource.ErrAlreadyMapped

	// ErrNotMapped is returned when unmapping a buffer that is not mapped.
	ErrNotMapped = resource.ErrNotMapped
)

// BufferErrorKind distinguishes buffer descriptor errors.
type BufferErrorKind uint8

// Buffer error kinds.
const (
	BufferSize BufferErrorKind = iota
	BufferRole
)

// BufferError reports an unusable buffer description.
type BufferError struct {
	Kind BufferErrorKind
	Info gfx.BufferInfo
}

func (e *BufferError) Error() string {
	if e.Kind == BufferRole {
		return fmt.Sprintf("gfxvk: unsupported buffer role %v", e.Info.Role)
	}
	return fmt.Sprintf("gfxvk: invalid buffer size %d (stride %d)", e.Info.Size, e.Info.Stride)
}

// Is matches the sentinel of the error kind.
func (e *BufferError) Is(target error) bool {
	if e.Kind == BufferRole {
		return target == ErrBufferRole
	}
	return target == ErrBufferSize
}

// ShaderError reports shader code that cannot become a shader module.
type ShaderError struct {
	Stage gfx.Stage
	Size  int
	// Cause is the compiler error for source shaders.
	Cause error
}

func (e *ShaderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gfxvk: %v shader: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("gfxvk: %v shader code of %d bytes is not a whole number of words", e.Stage, e.Size)
}

// Is matches ErrShaderCompile for compile failures and ErrShaderCode otherwise.
func (e *ShaderError) Is(target error) bool {
	if e.Cause != nil {
		return target == ErrShaderCompile
	}
	return target == ErrShaderCode
}

// Unwrap returns the compiler error.
func (e *ShaderError) Unwrap() error { return e.Cause }

// ProgramError reports a shader used in a stage it was not created for.
type ProgramError struct {
	Want gfx.Stage
	Got  gfx.Stage
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("gfxvk: %v shader given for the %v stage", e.Got, e.Want)
}

// Is matches ErrProgramStage.
func (e *ProgramError) Is(target error) bool { return target == ErrProgramStage }

// CreationError reports a pipeline descriptor that cannot be built. No
// native object is left behind.
type CreationError struct {
	Reason string
}

func (e *CreationError) Error() string {
	return "gfxvk: pipeline creation failed: " + e.Reason
}

// Is matches ErrCreation.
func (e *CreationError) Is(target error) bool { return target == ErrCreation }

func creationErrorf(format string, args ...any) error {
	return &CreationError{Reason: fmt.Sprintf(format, args...)}
}

// TextureErrorKind distinguishes texture descriptor errors.
type TextureErrorKind uint8

// Texture error kinds.
const (
	TextureFormat TextureErrorKind = iota
	TextureSize
)

// TextureError reports an unusable texture description. Format and Hint
// are the requested surface and channel hint.
type TextureError struct {
	Kind   TextureErrorKind
	Format gfx.SurfaceType
	Hint   *gfx.ChannelType
	Desc   gfx.TextureDesc
}

func (e *TextureError) Error() string {
	if e.Kind == TextureSize {
		return fmt.Sprintf("gfxvk: invalid texture %v with %d levels", e.Desc.Kind, e.Desc.Levels)
	}
	hint := "none"
	if e.Hint != nil {
		hint = e.Hint.String()
	}
	return fmt.Sprintf("gfxvk: unsupported texture format %v with channel hint %s", e.Format, hint)
}

// Is matches the sentinel of the error kind.
func (e *TextureError) Is(target error) bool {
	if e.Kind == TextureSize {
		return target == ErrTextureSize
	}
	return target == ErrTextureFormat
}

// ViewErrorKind distinguishes view creation errors.
type ViewErrorKind uint8

// View error kinds.
const (
	ViewNoBindFlag ViewErrorKind = iota
	ViewChannel
	ViewLayer
	ViewUnsupported
)

func (k ViewErrorKind) sentinel() error {
	switch k {
	case ViewNoBindFlag:
		return ErrNoBindFlag
	case ViewChannel:
		return ErrChannel
	case ViewLayer:
		return ErrLayer
	default:
		return ErrUnsupportedView
	}
}

func viewErrorString(kind ViewErrorKind, channel gfx.ChannelType, layer *gfx.LayerError) string {
	switch kind {
	case ViewChannel:
		return fmt.Sprintf("%v: %v", ErrChannel, channel)
	case ViewLayer:
		return fmt.Sprintf("%v: %v", ErrLayer, layer)
	default:
		return kind.sentinel().Error()
	}
}

// ResourceViewError reports a shader resource view that cannot be made.
// Channel is set for ViewChannel and Layer for ViewLayer.
type ResourceViewError struct {
	Kind    ViewErrorKind
	Channel gfx.ChannelType
	Layer   *gfx.LayerError
}

func (e *ResourceViewError) Error() string { return viewErrorString(e.Kind, e.Channel, e.Layer) }

// Is matches the sentinel of the error kind.
func (e *ResourceViewError) Is(target error) bool { return target == e.Kind.sentinel() }

// Unwrap returns the layer error, if any.
func (e *ResourceViewError) Unwrap() error {
	if e.Layer == nil {
		return nil
	}
	return e.Layer
}

// TargetViewError reports a render target or depth-stencil view that
// cannot be made. It has the shape of ResourceViewError.
type TargetViewError struct {
	Kind    ViewErrorKind
	Channel gfx.ChannelType
	Layer   *gfx.LayerError
}

func (e *TargetViewError) Error() string { return viewErrorString(e.Kind, e.Channel, e.Layer) }

// Is matches the sentinel of the error kind.
func (e *TargetViewError) Is(target error) bool { return target == e.Kind.sentinel() }

// Unwrap returns the layer error, if any.
func (e *TargetViewError) Unwrap() error {
	if e.Layer == nil {
		return nil
	}
	return e.Layer
}

// targetError converts view errors for the target view entry points and
// passes other errors through.
func targetError(err error) error {
	var rv *ResourceViewError
	if !errors.As(err, &rv) {
		return err
	}
	return &TargetViewError{Kind: rv.Kind, Channel: rv.Channel, Layer: rv.Layer}
}

// MappingErrorKind distinguishes mapping errors.
type MappingErrorKind uint8

// Mapping error kinds.
const (
	// MappingAccess means the buffer usage does not grant the access.
	MappingAccess MappingErrorKind = iota
	// MappingBusy means the buffer already has a live mapping.
	MappingBusy
	// MappingNotMapped means there is no mapping to end.
	MappingNotMapped
)

// MappingError reports a rejected map or unmap request.
type MappingError struct {
	Kind   MappingErrorKind
	Access gfx.Access
	Usage  gfx.Usage
}

func (e *MappingError) Error() string {
	switch e.Kind {
	case MappingBusy:
		return ErrAlreadyMapped.Error()
	case MappingNotMapped:
		return ErrNotMapped.Error()
	default:
		return fmt.Sprintf("%v: %v access on a %v buffer", ErrMapAccess, e.Access, e.Usage)
	}
}

// Is matches the sentinel of the error kind.
func (e *MappingError) Is(target error) bool {
	switch e.Kind {
	case MappingBusy:
		return target == ErrAlreadyMapped
	case MappingNotMapped:
		return target == ErrNotMapped
	default:
		return target == ErrMapAccess
	}
}

// FatalError is the panic value for driver failures. It is wrapped with a
// stack trace; use errors.As to recover it.
type FatalError struct {
	Op     string
	Result vk.Result
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("gfxvk: fatal driver failure in %s: %v", e.Op, e.Result)
}

// Unwrap returns the driver result.
func (e *FatalError) Unwrap() error { return e.Result }

// check panics with a FatalError when res is not success.
func check(op string, res vk.Result) {
	if res == vk.Success {
		return
	}
	Logger().Error("gfxvk: driver failure", "op", op, "result", res.String())
	panic(errors.WithStack(&FatalError{Op: op, Result: res}))
}

// checkErr panics for allocation failures. Driver results become a
// FatalError; other errors are wrapped with op.
func checkErr(op string, err error) {
	if err == nil {
		return
	}
	var res vk.Result
	if errors.As(err, &res) {
		check(op, res)
	}
	Logger().Error("gfxvk: driver failure", "op", op, "err", err)
	panic(errors.Wrapf(err, "gfxvk: %s", op))
}
