package gfxvk

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/gfxvk/gfx"
	"github.com/gogpu/gfxvk/handle"
	"github.com/gogpu/gfxvk/mapping"
	"github.com/gogpu/gfxvk/vk"
)

// MapBuffer maps the memory of h for host access. The buffer usage must
// grant access: Dynamic buffers grant read and write, Immutable buffers
// read, CPUOnly buffers the access they were created with, GPUOnly
// buffers none. A buffer has at most one live mapping; it ends with Unmap
// or by closing the gate, and the buffer stays alive until then.
func (f *Factory) MapBuffer(h handle.Buffer, access gfx.Access) (*mapping.Gate, error) {
	f.ensureOpen()
	buf, err := f.handles.Buffer(h)
	if err != nil {
		return nil, err
	}
	usage := buf.Info.Usage
	if access == gfx.AccessNone || !usage.MapAccess().Contains(access) {
		return nil, &MappingError{Kind: MappingAccess, Access: access, Usage: usage}
	}
	if err := buf.BeginMap(access); err != nil {
		return nil, &MappingError{Kind: MappingBusy, Access: access, Usage: usage}
	}
	if err := f.handles.RetainBuffer(h); err != nil {
		_ = buf.EndMap()
		return nil, err
	}

	ptr, res := f.dev.MapMemory(buf.Memory.Memory, 0, vk.WholeSize, 0)
	check("MapMemory", res)

	mem := buf.Memory.Memory
	gate := mapping.NewGate(ptr, buf.Info.Size, buf.Info.Stride, access, func() error {
		f.dev.UnmapMemory(mem)
		delete(f.gates, h)
		err := buf.EndMap()
		if rerr := f.handles.ReleaseBuffer(h); err == nil {
			err = rerr
		}
		return err
	})
	f.gates[h] = gate

	Logger().Debug("gfxvk: buffer mapped", "buffer", buf.Native, "access", access, "size", buf.Info.Size)
	return gate, nil
}

// Unmap ends the live mapping of h.
func (f *Factory) Unmap(h handle.Buffer) error {
	if g, ok := f.gates[h]; ok {
		return g.Close()
	}
	if _, err := f.handles.Buffer(h); err != nil {
		return err
	}
	return &MappingError{Kind: MappingNotMapped}
}

// mapTyped maps h with access and lays a typed view over the gate. The
// mapping is ended again when the view cannot be made.
func mapTyped[V any](f *Factory, h handle.Buffer, access gfx.Access, newView func(*mapping.Gate) (V, error)) (V, error) {
	var zero V
	gate, err := f.MapBuffer(h, access)
	if err != nil {
		return zero, err
	}
	v, err := newView(gate)
	if err != nil {
		if cerr := gate.Close(); cerr != nil {
			err = errors.CombineErrors(err, cerr)
		}
		return zero, err
	}
	return v, nil
}

// MapReadable maps h for reading as a sequence of T.
func MapReadable[T any](f *Factory, h handle.Buffer) (*mapping.Reader[T], error) {
	return mapTyped(f, h, gfx.AccessRead, mapping.NewReader[T])
}

// MapWritable maps h for writing as a sequence of T.
func MapWritable[T any](f *Factory, h handle.Buffer) (*mapping.Writer[T], error) {
	return mapTyped(f, h, gfx.AccessWrite, mapping.NewWriter[T])
}

// MapReadWrite maps h for reading and writing as a sequence of T.
func MapReadWrite[T any](f *Factory, h handle.Buffer) (*mapping.ReadWriter[T], error) {
	return mapTyped(f, h, gfx.AccessReadWrite, mapping.NewReadWriter[T])
}
