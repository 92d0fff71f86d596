package gfx

import "fmt"

// Access is a set of CPU access rights.
type Access uint8

// Access flags.
const (
	AccessRead Access = 1 << iota
	AccessWrite

	AccessNone      Access = 0
	AccessReadWrite        = AccessRead | AccessWrite
)

// Contains reports whether every flag in other is also set in a.
func (a Access) Contains(other Access) bool { return a&other == other }

// String returns the string representation of Access.
func (a Access) String() string {
	switch a {
	case AccessNone:
		return "None"
	case AccessRead:
		return "Read"
	case AccessWrite:
		return "Write"
	case AccessReadWrite:
		return "ReadWrite"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// UsageKind is the update frequency class of a resource.
type UsageKind uint8

// Usage kinds.
const (
	// GPUOnly resources are never touched by the CPU.
	GPUOnly UsageKind = iota
	// Immutable resources are written once at creation.
	Immutable
	// Dynamic resources are rewritten by the CPU between uses.
	Dynamic
	// CPUOnly resources live in host memory with explicit access rights.
	CPUOnly
)

// Usage describes how a resource is updated.
type Usage struct {
	Kind UsageKind
	// Access is only meaningful for CPUOnly.
	Access Access
}

// Predefined usages.
var (
	UsageGPUOnly   = Usage{Kind: GPUOnly}
	UsageImmutable = Usage{Kind: Immutable}
	UsageDynamic   = Usage{Kind: Dynamic}
)

// UsageCPUOnly returns a host-memory usage with the given access rights.
func UsageCPUOnly(a Access) Usage { return Usage{Kind: CPUOnly, Access: a} }

// IsCPUOnly reports whether the usage keeps the resource in host memory.
func (u Usage) IsCPUOnly() bool { return u.Kind == CPUOnly }

// MapAccess returns the mapping rights a resource created with u grants.
func (u Usage) MapAccess() Access {
	switch u.Kind {
	case Dynamic:
		return AccessReadWrite
	case Immutable:
		return AccessRead
	case CPUOnly:
		return u.Access
	default:
		return AccessNone
	}
}

// String returns the string representation of Usage.
func (u Usage) String() string {
	switch u.Kind {
	case GPUOnly:
		return "GPUOnly"
	case Immutable:
		return "Immutable"
	case Dynamic:
		return "Dynamic"
	case CPUOnly:
		return "CPUOnly(" + u.Access.String() + ")"
	default:
		return fmt.Sprintf("Unknown(%d)", int(u.Kind))
	}
}

// Bind is a set of pipeline binding points a resource may be attached to.
type Bind uint8

// Bind flags.
const (
	BindRenderTarget Bind = 1 << iota
	BindDepthStencil
	BindShaderResource
	BindUnorderedAccess
	BindTransferSrc
	BindTransferDst
)

// Contains reports whether every flag in other is also set in b.
func (b Bind) Contains(other Bind) bool { return b&other == other }

// BufferRole is the primary purpose of a buffer.
type BufferRole uint8

// Buffer roles.
const (
	RoleVertex BufferRole = iota
	RoleIndex
	RoleConstant
	RoleStaging
)

// String returns the string representation of BufferRole.
func (r BufferRole) String() string {
	switch r {
	case RoleVertex:
		return "Vertex"
	case RoleIndex:
		return "Index"
	case RoleConstant:
		return "Constant"
	case RoleStaging:
		return "Staging"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// Valid reports whether r names a known role.
func (r BufferRole) Valid() bool { return r <= RoleStaging }

// BufferInfo describes a buffer to create.
type BufferInfo struct {
	Role  BufferRole
	Usage Usage
	Bind  Bind
	// Size is the byte size of the buffer.
	Size int
	// Stride is the byte size of one element. Zero means the buffer is
	// treated as raw bytes.
	Stride int
}

// Elements returns the number of whole elements the buffer holds.
func (i BufferInfo) Elements() int {
	if i.Stride <= 0 {
		return i.Size
	}
	return i.Size / i.Stride
}
