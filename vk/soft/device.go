// Package soft is a vk.Device that runs entirely in host memory.
//
// It validates creation-info records the way a driver validation layer
// would, keeps every accepted record for inspection, and backs device
// memory with Go byte slices so buffers and linear images can be mapped.
// It is what the gfxvk tests and the gfxvk command run against when no GPU
// is available.
package soft

import (
	"sync"
	"unsafe"

	"github.com/google/uuid"

	"github.com/gogpu/gfxvk/vk"
)

// Kind identifies the type of a live object.
type Kind uint8

// Object kinds.
const (
	KindMemory Kind = iota
	KindBuffer
	KindImage
	KindImageView
	KindShaderModule
	KindDescriptorSetLayout
	KindPipelineLayout
	KindDescriptorPool
	KindRenderPass
	KindPipeline
	KindSampler
	KindFence
	KindCommandPool
	KindCommandBuffer
	kindCount
)

var kindNames = [...]string{
	KindMemory:              "Memory",
	KindBuffer:              "Buffer",
	KindImage:               "Image",
	KindImageView:           "ImageView",
	KindShaderModule:        "ShaderModule",
	KindDescriptorSetLayout: "DescriptorSetLayout",
	KindPipelineLayout:      "PipelineLayout",
	KindDescriptorPool:      "DescriptorPool",
	KindRenderPass:          "RenderPass",
	KindPipeline:            "Pipeline",
	KindSampler:             "Sampler",
	KindFence:               "Fence",
	KindCommandPool:         "CommandPool",
	KindCommandBuffer:       "CommandBuffer",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// Memory type indices of the default memory layout.
const (
	// TypeVideo is device-local, host-visible and coherent.
	TypeVideo uint32 = 0
	// TypeSystem is host-visible, coherent and cached.
	TypeSystem uint32 = 1
)

const alignment vk.DeviceSize = 256

// DefaultMemoryProperties returns the memory layout of a fresh Device:
// one heap with a video type and a system type.
func DefaultMemoryProperties() vk.PhysicalDeviceMemoryProperties {
	var props vk.PhysicalDeviceMemoryProperties
	props.MemoryTypeCount = 2
	props.MemoryTypes[TypeVideo].PropertyFlags = vk.MemoryPropertyDeviceLocalBit |
		vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit
	props.MemoryTypes[TypeSystem].PropertyFlags = vk.MemoryPropertyHostVisibleBit |
		vk.MemoryPropertyHostCoherentBit | vk.MemoryPropertyHostCachedBit
	props.MemoryHeapCount = 1
	props.MemoryHeaps[0].Size = 1 << 30
	return props
}

type object struct {
	kind  Kind
	value any
}

type memory struct {
	data      []byte
	typeIndex uint32
	mapped    bool
}

type buffer struct {
	info   vk.BufferCreateInfo
	memory vk.DeviceMemory
}

type image struct {
	info   vk.ImageCreateInfo
	memory vk.DeviceMemory
	offset vk.DeviceSize
}

// Device is a host-memory vk.Device.
//
// Device is safe for concurrent use.
type Device struct {
	mu       sync.Mutex
	id       uuid.UUID
	props    vk.PhysicalDeviceMemoryProperties
	typeBits uint32
	next     uint64
	objects  map[uint64]object
	fail     vk.Result
	mapCalls int
}

var _ vk.Device = (*Device)(nil)

// Option configures a Device.
type Option func(*Device)

// WithMemoryProperties replaces the default memory layout.
func WithMemoryProperties(props vk.PhysicalDeviceMemoryProperties) Option {
	return func(d *Device) {
		d.props = props
	}
}

// WithMemoryTypeBits restricts the memory types every buffer and image
// reports as acceptable.
func WithMemoryTypeBits(bits uint32) Option {
	return func(d *Device) {
		d.typeBits = bits
	}
}

// WithID sets the device identity.
func WithID(id uuid.UUID) Option {
	return func(d *Device) {
		d.id = id
	}
}

// New creates a Device.
func New(opts ...Option) *Device {
	d := &Device{
		id:      uuid.New(),
		props:   DefaultMemoryProperties(),
		objects: make(map[uint64]object),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.typeBits == 0 {
		d.typeBits = 1<<d.props.MemoryTypeCount - 1
	}
	return d
}

// ID returns the device identity.
func (d *Device) ID() uuid.UUID { return d.id }

// FailNext makes the next fallible entry point return res without
// creating anything.
func (d *Device) FailNext(res vk.Result) {
	d.mu.Lock()
	d.fail = res
	d.mu.Unlock()
}

// takeFailure returns and clears a pending injected failure.
// Callers hold d.mu.
func (d *Device) takeFailure() vk.Result {
	res := d.fail
	d.fail = vk.Success
	return res
}

// insert registers a new object and returns its handle. Callers hold d.mu.
func (d *Device) insert(kind Kind, value any) uint64 {
	d.next++
	d.objects[d.next] = object{kind: kind, value: value}
	slogger().Debug("soft: create", "kind", kind, "handle", d.next)
	return d.next
}

// remove destroys an object of the given kind. The null handle is ignored.
func (d *Device) remove(kind Kind, h uint64) {
	if h == vk.NullHandle {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	obj, ok := d.objects[h]
	if !ok || obj.kind != kind {
		slogger().Warn("soft: destroy of unknown handle", "kind", kind, "handle", h)
		return
	}
	delete(d.objects, h)
	slogger().Debug("soft: destroy", "kind", kind, "handle", h)
}

// lookup returns the value of a live object. Callers hold d.mu.
func lookup[T any](d *Device, kind Kind, h uint64) (T, bool) {
	var zero T
	obj, ok := d.objects[h]
	if !ok || obj.kind != kind {
		return zero, false
	}
	v, ok := obj.value.(T)
	return v, ok
}

// invalid logs a validation failure and returns the matching result.
func invalid(call, reason string, args ...any) vk.Result {
	slogger().Warn("soft: "+call+": "+reason, args...)
	return vk.ErrorValidationFailed
}

// checkTag validates the structure type and extension pointer of info.
func checkTag(call string, info vk.Info, want vk.StructureType) vk.Result {
	st, next := info.Tag()
	if st != want {
		return invalid(call, "wrong structure type", "got", st, "want", want)
	}
	if next != nil {
		return invalid(call, "non-nil extension pointer")
	}
	return vk.Success
}

func alignUp(v, a vk.DeviceSize) vk.DeviceSize {
	return (v + a - 1) &^ (a - 1)
}

// MemoryProperties returns the device memory layout.
func (d *Device) MemoryProperties() vk.PhysicalDeviceMemoryProperties {
	return d.props
}

// AllocateMemory allocates zeroed host memory.
func (d *Device) AllocateMemory(info *vk.MemoryAllocateInfo) (vk.DeviceMemory, vk.Result) {
	if res := checkTag("AllocateMemory", info, vk.StructureTypeMemoryAllocateInfo); res != vk.Success {
		return vk.NullDeviceMemory, res
	}
	if info.AllocationSize == 0 {
		return vk.NullDeviceMemory, invalid("AllocateMemory", "zero size")
	}
	if info.MemoryTypeIndex >= d.props.MemoryTypeCount {
		return vk.NullDeviceMemory, invalid("AllocateMemory", "memory type out of range", "type", info.MemoryTypeIndex)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullDeviceMemory, res
	}
	m := &memory{data: make([]byte, info.AllocationSize), typeIndex: info.MemoryTypeIndex}
	return vk.DeviceMemory(d.insert(KindMemory, m)), vk.Success
}

// FreeMemory releases an allocation.
func (d *Device) FreeMemory(mem vk.DeviceMemory) {
	d.remove(KindMemory, uint64(mem))
}

// MapMemory returns a pointer into an allocation. An allocation can be
// mapped once at a time, and only when its type is host-visible.
func (d *Device) MapMemory(mem vk.DeviceMemory, offset, size vk.DeviceSize, _ vk.MemoryMapFlags) (unsafe.Pointer, vk.Result) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mapCalls++
	if res := d.takeFailure(); res != vk.Success {
		return nil, res
	}
	m, ok := lookup[*memory](d, KindMemory, uint64(mem))
	if !ok {
		return nil, invalid("MapMemory", "unknown memory", "memory", mem)
	}
	if d.props.MemoryTypes[m.typeIndex].PropertyFlags&vk.MemoryPropertyHostVisibleBit == 0 {
		return nil, vk.ErrorMemoryMapFailed
	}
	if m.mapped {
		return nil, invalid("MapMemory", "memory already mapped", "memory", mem)
	}
	end := vk.DeviceSize(len(m.data))
	if size != vk.WholeSize {
		end = offset + size
	}
	if offset >= vk.DeviceSize(len(m.data)) || end > vk.DeviceSize(len(m.data)) {
		return nil, invalid("MapMemory", "range out of bounds", "offset", offset, "size", size)
	}
	m.mapped = true
	return unsafe.Pointer(&m.data[offset]), vk.Success
}

// UnmapMemory ends the mapping of an allocation.
func (d *Device) UnmapMemory(mem vk.DeviceMemory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m, ok := lookup[*memory](d, KindMemory, uint64(mem)); ok {
		m.mapped = false
	}
}

// CreateBuffer creates a buffer without memory.
func (d *Device) CreateBuffer(info *vk.BufferCreateInfo) (vk.Buffer, vk.Result) {
	if res := checkTag("CreateBuffer", info, vk.StructureTypeBufferCreateInfo); res != vk.Success {
		return vk.NullBuffer, res
	}
	if info.Size == 0 {
		return vk.NullBuffer, invalid("CreateBuffer", "zero size")
	}
	if info.Usage == 0 {
		return vk.NullBuffer, invalid("CreateBuffer", "no usage")
	}
	if int(info.QueueFamilyIndexCount) != len(info.PQueueFamilyIndices) {
		return vk.NullBuffer, invalid("CreateBuffer", "queue family count mismatch")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullBuffer, res
	}
	return vk.Buffer(d.insert(KindBuffer, &buffer{info: *info})), vk.Success
}

// DestroyBuffer destroys a buffer.
func (d *Device) DestroyBuffer(buf vk.Buffer) {
	d.remove(KindBuffer, uint64(buf))
}

// GetBufferMemoryRequirements reports the buffer size rounded up to the
// device alignment.
func (d *Device) GetBufferMemoryRequirements(buf vk.Buffer) vk.MemoryRequirements {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := lookup[*buffer](d, KindBuffer, uint64(buf))
	if !ok {
		return vk.MemoryRequirements{}
	}
	return vk.MemoryRequirements{
		Size:           alignUp(b.info.Size, alignment),
		Alignment:      alignment,
		MemoryTypeBits: d.typeBits,
	}
}

// BindBufferMemory attaches memory to a buffer.
func (d *Device) BindBufferMemory(buf vk.Buffer, mem vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return res
	}
	b, ok := lookup[*buffer](d, KindBuffer, uint64(buf))
	if !ok {
		return invalid("BindBufferMemory", "unknown buffer", "buffer", buf)
	}
	m, ok := lookup[*memory](d, KindMemory, uint64(mem))
	if !ok {
		return invalid("BindBufferMemory", "unknown memory", "memory", mem)
	}
	if b.memory != vk.NullDeviceMemory {
		return invalid("BindBufferMemory", "buffer already bound", "buffer", buf)
	}
	if offset+b.info.Size > vk.DeviceSize(len(m.data)) {
		return invalid("BindBufferMemory", "memory too small", "buffer", buf)
	}
	b.memory = mem
	return vk.Success
}

// CreateImage creates an image without memory.
func (d *Device) CreateImage(info *vk.ImageCreateInfo) (vk.Image, vk.Result) {
	if res := checkTag("CreateImage", info, vk.StructureTypeImageCreateInfo); res != vk.Success {
		return vk.NullImage, res
	}
	switch {
	case texelSize(info.Format) == 0:
		return vk.NullImage, invalid("CreateImage", "unknown format", "format", info.Format)
	case info.Extent.Width == 0 || info.Extent.Height == 0 || info.Extent.Depth == 0:
		return vk.NullImage, invalid("CreateImage", "zero extent")
	case info.MipLevels == 0 || info.ArrayLayers == 0:
		return vk.NullImage, invalid("CreateImage", "zero mip levels or layers")
	case info.Samples == 0:
		return vk.NullImage, invalid("CreateImage", "zero samples")
	case info.ImageType == vk.ImageType3d && info.ArrayLayers != 1:
		return vk.NullImage, invalid("CreateImage", "layered volume")
	case info.Flags&vk.ImageCreateCubeCompatibleBit != 0 && info.ArrayLayers%6 != 0:
		return vk.NullImage, invalid("CreateImage", "cube layers not a multiple of six")
	case int(info.QueueFamilyIndexCount) != len(info.PQueueFamilyIndices):
		return vk.NullImage, invalid("CreateImage", "queue family count mismatch")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return vk.NullImage, res
	}
	return vk.Image(d.insert(KindImage, &image{info: *info})), vk.Success
}

// DestroyImage destroys an image.
func (d *Device) DestroyImage(img vk.Image) {
	d.remove(KindImage, uint64(img))
}

func levelExtent(v uint32, level uint32) vk.DeviceSize {
	v >>= level
	if v == 0 {
		v = 1
	}
	return vk.DeviceSize(v)
}

// layerSize returns the byte size of all mip levels of one array layer.
func (img *image) layerSize() vk.DeviceSize {
	var size vk.DeviceSize
	for l := uint32(0); l < img.info.MipLevels; l++ {
		size += img.levelSize(l)
	}
	return size
}

func (img *image) levelSize(level uint32) vk.DeviceSize {
	e := img.info.Extent
	return levelExtent(e.Width, level) * levelExtent(e.Height, level) * levelExtent(e.Depth, level) *
		texelSize(img.info.Format) * vk.DeviceSize(img.info.Samples)
}

// GetImageMemoryRequirements reports the packed size of every layer and
// level.
func (d *Device) GetImageMemoryRequirements(img vk.Image) vk.MemoryRequirements {
	d.mu.Lock()
	defer d.mu.Unlock()
	im, ok := lookup[*image](d, KindImage, uint64(img))
	if !ok {
		return vk.MemoryRequirements{}
	}
	size := im.layerSize() * vk.DeviceSize(im.info.ArrayLayers)
	return vk.MemoryRequirements{
		Size:           alignUp(size, alignment),
		Alignment:      alignment,
		MemoryTypeBits: d.typeBits,
	}
}

// BindImageMemory attaches memory to an image.
func (d *Device) BindImageMemory(img vk.Image, mem vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.takeFailure(); res != vk.Success {
		return res
	}
	im, ok := lookup[*image](d, KindImage, uint64(img))
	if !ok {
		return invalid("BindImageMemory", "unknown image", "image", img)
	}
	m, ok := lookup[*memory](d, KindMemory, uint64(mem))
	if !ok {
		return invalid("BindImageMemory", "unknown memory", "memory", mem)
	}
	if im.memory != vk.NullDeviceMemory {
		return invalid("BindImageMemory", "image already bound", "image", img)
	}
	if offset+im.layerSize()*vk.DeviceSize(im.info.ArrayLayers) > vk.DeviceSize(len(m.data)) {
		return invalid("BindImageMemory", "memory too small", "image", img)
	}
	im.memory = mem
	im.offset = offset
	return vk.Success
}

// GetImageSubresourceLayout reports where a subresource of a linear image
// lives. Rows are tightly packed and layers are stored one after another,
// each holding its full mip chain.
func (d *Device) GetImageSubresourceLayout(img vk.Image, sub vk.ImageSubresource) vk.SubresourceLayout {
	d.mu.Lock()
	defer d.mu.Unlock()
	im, ok := lookup[*image](d, KindImage, uint64(img))
	if !ok || sub.MipLevel >= im.info.MipLevels || sub.ArrayLayer >= im.info.ArrayLayers {
		return vk.SubresourceLayout{}
	}
	arrayPitch := im.layerSize()
	offset := arrayPitch * vk.DeviceSize(sub.ArrayLayer)
	for l := uint32(0); l < sub.MipLevel; l++ {
		offset += im.levelSize(l)
	}
	e := im.info.Extent
	row := levelExtent(e.Width, sub.MipLevel) * texelSize(im.info.Format) * vk.DeviceSize(im.info.Samples)
	depth := row * levelExtent(e.Height, sub.MipLevel)
	return vk.SubresourceLayout{
		Offset:     offset,
		Size:       im.levelSize(sub.MipLevel),
		RowPitch:   row,
		ArrayPitch: arrayPitch,
		DepthPitch: depth,
	}
}
