// Package vkgo is a vk.Device on a real Vulkan driver, reached through
// github.com/vulkan-go/vulkan.
//
// The caller owns the Vulkan instance and logical device: it loads the
// loader with vulkan.SetDefaultGetInstanceProcAddr and vulkan.Init,
// picks a physical device and creates the logical device, then wraps it:
//
//	dev := vkgo.New(gpu, device)
//	share := gfxvk.NewShare(dev)
//
// Register makes the same device available to driver.Open and
// driver.Default under driver.Vulkan.
//
// Handles are carried through gfxvk as 64-bit values, so the package
// needs a 64-bit target.
package vkgo

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	vulkan "github.com/vulkan-go/vulkan"

	"github.com/gogpu/gfxvk/driver"
	"github.com/gogpu/gfxvk/vk"
)

// ErrNoDevice is returned by the registered opener when it was given a
// null device.
var ErrNoDevice = errors.New("vkgo: null logical device")

// Device forwards vk records to a Vulkan logical device.
type Device struct {
	dev   vulkan.Device
	props vk.PhysicalDeviceMemoryProperties
}

var _ vk.Device = (*Device)(nil)

// New wraps a logical device created on gpu. The memory properties of
// gpu are read once.
func New(gpu vulkan.PhysicalDevice, dev vulkan.Device) *Device {
	var props vulkan.PhysicalDeviceMemoryProperties
	vulkan.GetPhysicalDeviceMemoryProperties(gpu, &props)
	props.Deref()
	return &Device{dev: dev, props: memoryProperties(&props)}
}

// Register registers gpu and dev as the driver.Vulkan device.
func Register(gpu vulkan.PhysicalDevice, dev vulkan.Device) {
	driver.Register(driver.Vulkan, func() (vk.Device, error) {
		if dev == nil {
			return nil, ErrNoDevice
		}
		return New(gpu, dev), nil
	})
}

// Native returns the wrapped logical device.
func (d *Device) Native() vulkan.Device { return d.dev }

func (d *Device) MemoryProperties() vk.PhysicalDeviceMemoryProperties { return d.props }

func (d *Device) AllocateMemory(info *vk.MemoryAllocateInfo) (vk.DeviceMemory, vk.Result) {
	ci := vulkan.MemoryAllocateInfo{
		SType:           vulkan.StructureType(info.SType),
		AllocationSize:  vulkan.DeviceSize(info.AllocationSize),
		MemoryTypeIndex: info.MemoryTypeIndex,
	}
	var mem vulkan.DeviceMemory
	res := vulkan.AllocateMemory(d.dev, &ci, nil, &mem)
	return vk.DeviceMemory(fromPtr(unsafe.Pointer(mem))), vk.Result(res)
}

func (d *Device) FreeMemory(mem vk.DeviceMemory) {
	if mem == vk.NullDeviceMemory {
		return
	}
	vulkan.FreeMemory(d.dev, vulkan.DeviceMemory(toPtr(uint64(mem))), nil)
}

func (d *Device) MapMemory(mem vk.DeviceMemory, offset, size vk.DeviceSize, flags vk.MemoryMapFlags) (unsafe.Pointer, vk.Result) {
	var data unsafe.Pointer
	res := vulkan.MapMemory(d.dev, vulkan.DeviceMemory(toPtr(uint64(mem))),
		vulkan.DeviceSize(offset), vulkan.DeviceSize(size), vulkan.MemoryMapFlags(flags), &data)
	return data, vk.Result(res)
}

func (d *Device) UnmapMemory(mem vk.DeviceMemory) {
	vulkan.UnmapMemory(d.dev, vulkan.DeviceMemory(toPtr(uint64(mem))))
}

func (d *Device) CreateBuffer(info *vk.BufferCreateInfo) (vk.Buffer, vk.Result) {
	ci := bufferInfo(info)
	var buf vulkan.Buffer
	res := vulkan.CreateBuffer(d.dev, &ci, nil, &buf)
	return vk.Buffer(fromPtr(unsafe.Pointer(buf))), vk.Result(res)
}

func (d *Device) DestroyBuffer(buf vk.Buffer) {
	if buf == vk.NullBuffer {
		return
	}
	vulkan.DestroyBuffer(d.dev, vulkan.Buffer(toPtr(uint64(buf))), nil)
}

func (d *Device) GetBufferMemoryRequirements(buf vk.Buffer) vk.MemoryRequirements {
	var req vulkan.MemoryRequirements
	vulkan.GetBufferMemoryRequirements(d.dev, vulkan.Buffer(toPtr(uint64(buf))), &req)
	req.Deref()
	return memoryRequirements(&req)
}

func (d *Device) BindBufferMemory(buf vk.Buffer, mem vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return vk.Result(vulkan.BindBufferMemory(d.dev, vulkan.Buffer(toPtr(uint64(buf))),
		vulkan.DeviceMemory(toPtr(uint64(mem))), vulkan.DeviceSize(offset)))
}

func (d *Device) CreateImage(info *vk.ImageCreateInfo) (vk.Image, vk.Result) {
	ci := imageInfo(info)
	var img vulkan.Image
	res := vulkan.CreateImage(d.dev, &ci, nil, &img)
	return vk.Image(fromPtr(unsafe.Pointer(img))), vk.Result(res)
}

func (d *Device) DestroyImage(img vk.Image) {
	if img == vk.NullImage {
		return
	}
	vulkan.DestroyImage(d.dev, vulkan.Image(toPtr(uint64(img))), nil)
}

func (d *Device) GetImageMemoryRequirements(img vk.Image) vk.MemoryRequirements {
	var req vulkan.MemoryRequirements
	vulkan.GetImageMemoryRequirements(d.dev, vulkan.Image(toPtr(uint64(img))), &req)
	req.Deref()
	return memoryRequirements(&req)
}

func (d *Device) BindImageMemory(img vk.Image, mem vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return vk.Result(vulkan.BindImageMemory(d.dev, vulkan.Image(toPtr(uint64(img))),
		vulkan.DeviceMemory(toPtr(uint64(mem))), vulkan.DeviceSize(offset)))
}

func (d *Device) GetImageSubresourceLayout(img vk.Image, sub vk.ImageSubresource) vk.SubresourceLayout {
	s := vulkan.ImageSubresource{
		AspectMask: vulkan.ImageAspectFlags(sub.AspectMask),
		MipLevel:   sub.MipLevel,
		ArrayLayer: sub.ArrayLayer,
	}
	var l vulkan.SubresourceLayout
	vulkan.GetImageSubresourceLayout(d.dev, vulkan.Image(toPtr(uint64(img))), &s, &l)
	l.Deref()
	return vk.SubresourceLayout{
		Offset:     vk.DeviceSize(l.Offset),
		Size:       vk.DeviceSize(l.Size),
		RowPitch:   vk.DeviceSize(l.RowPitch),
		ArrayPitch: vk.DeviceSize(l.ArrayPitch),
		DepthPitch: vk.DeviceSize(l.DepthPitch),
	}
}

func (d *Device) CreateImageView(info *vk.ImageViewCreateInfo) (vk.ImageView, vk.Result) {
	ci := imageViewInfo(info)
	var view vulkan.ImageView
	res := vulkan.CreateImageView(d.dev, &ci, nil, &view)
	return vk.ImageView(fromPtr(unsafe.Pointer(view))), vk.Result(res)
}

func (d *Device) DestroyImageView(view vk.ImageView) {
	if view == vk.NullImageView {
		return
	}
	vulkan.DestroyImageView(d.dev, vulkan.ImageView(toPtr(uint64(view))), nil)
}

func (d *Device) CreateShaderModule(info *vk.ShaderModuleCreateInfo) (vk.ShaderModule, vk.Result) {
	ci := vulkan.ShaderModuleCreateInfo{
		SType:    vulkan.StructureType(info.SType),
		Flags:    vulkan.ShaderModuleCreateFlags(info.Flags),
		CodeSize: info.CodeSize,
		PCode:    info.PCode,
	}
	var module vulkan.ShaderModule
	res := vulkan.CreateShaderModule(d.dev, &ci, nil, &module)
	return vk.ShaderModule(fromPtr(unsafe.Pointer(module))), vk.Result(res)
}

func (d *Device) DestroyShaderModule(module vk.ShaderModule) {
	if module == vk.NullShaderModule {
		return
	}
	vulkan.DestroyShaderModule(d.dev, vulkan.ShaderModule(toPtr(uint64(module))), nil)
}

func (d *Device) CreateDescriptorSetLayout(info *vk.DescriptorSetLayoutCreateInfo) (vk.DescriptorSetLayout, vk.Result) {
	ci := setLayoutInfo(info)
	var layout vulkan.DescriptorSetLayout
	res := vulkan.CreateDescriptorSetLayout(d.dev, &ci, nil, &layout)
	return vk.DescriptorSetLayout(fromPtr(unsafe.Pointer(layout))), vk.Result(res)
}

func (d *Device) DestroyDescriptorSetLayout(layout vk.DescriptorSetLayout) {
	if layout == vk.NullDescriptorSetLayout {
		return
	}
	vulkan.DestroyDescriptorSetLayout(d.dev, vulkan.DescriptorSetLayout(toPtr(uint64(layout))), nil)
}

func (d *Device) CreatePipelineLayout(info *vk.PipelineLayoutCreateInfo) (vk.PipelineLayout, vk.Result) {
	ci := pipelineLayoutInfo(info)
	var layout vulkan.PipelineLayout
	res := vulkan.CreatePipelineLayout(d.dev, &ci, nil, &layout)
	return vk.PipelineLayout(fromPtr(unsafe.Pointer(layout))), vk.Result(res)
}

func (d *Device) DestroyPipelineLayout(layout vk.PipelineLayout) {
	if layout == vk.NullPipelineLayout {
		return
	}
	vulkan.DestroyPipelineLayout(d.dev, vulkan.PipelineLayout(toPtr(uint64(layout))), nil)
}

func (d *Device) CreateDescriptorPool(info *vk.DescriptorPoolCreateInfo) (vk.DescriptorPool, vk.Result) {
	ci := descriptorPoolInfo(info)
	var pool vulkan.DescriptorPool
	res := vulkan.CreateDescriptorPool(d.dev, &ci, nil, &pool)
	return vk.DescriptorPool(fromPtr(unsafe.Pointer(pool))), vk.Result(res)
}

func (d *Device) DestroyDescriptorPool(pool vk.DescriptorPool) {
	if pool == vk.NullDescriptorPool {
		return
	}
	vulkan.DestroyDescriptorPool(d.dev, vulkan.DescriptorPool(toPtr(uint64(pool))), nil)
}

func (d *Device) CreateRenderPass(info *vk.RenderPassCreateInfo) (vk.RenderPass, vk.Result) {
	ci := renderPassInfo(info)
	var pass vulkan.RenderPass
	res := vulkan.CreateRenderPass(d.dev, &ci, nil, &pass)
	return vk.RenderPass(fromPtr(unsafe.Pointer(pass))), vk.Result(res)
}

func (d *Device) DestroyRenderPass(pass vk.RenderPass) {
	if pass == vk.NullRenderPass {
		return
	}
	vulkan.DestroyRenderPass(d.dev, vulkan.RenderPass(toPtr(uint64(pass))), nil)
}

func (d *Device) CreateGraphicsPipeline(info *vk.GraphicsPipelineCreateInfo) (vk.Pipeline, vk.Result) {
	infos := []vulkan.GraphicsPipelineCreateInfo{pipelineInfo(info)}
	pipelines := make([]vulkan.Pipeline, 1)
	res := vulkan.CreateGraphicsPipelines(d.dev, vulkan.PipelineCache(vulkan.NullHandle), 1, infos, nil, pipelines)
	return vk.Pipeline(fromPtr(unsafe.Pointer(pipelines[0]))), vk.Result(res)
}

func (d *Device) DestroyPipeline(p vk.Pipeline) {
	if p == vk.NullPipeline {
		return
	}
	vulkan.DestroyPipeline(d.dev, vulkan.Pipeline(toPtr(uint64(p))), nil)
}

func (d *Device) CreateSampler(info *vk.SamplerCreateInfo) (vk.Sampler, vk.Result) {
	ci := samplerInfo(info)
	var s vulkan.Sampler
	res := vulkan.CreateSampler(d.dev, &ci, nil, &s)
	return vk.Sampler(fromPtr(unsafe.Pointer(s))), vk.Result(res)
}

func (d *Device) DestroySampler(s vk.Sampler) {
	if s == vk.NullSampler {
		return
	}
	vulkan.DestroySampler(d.dev, vulkan.Sampler(toPtr(uint64(s))), nil)
}

func (d *Device) CreateFence(info *vk.FenceCreateInfo) (vk.Fence, vk.Result) {
	ci := vulkan.FenceCreateInfo{
		SType: vulkan.StructureType(info.SType),
		Flags: vulkan.FenceCreateFlags(info.Flags),
	}
	var f vulkan.Fence
	res := vulkan.CreateFence(d.dev, &ci, nil, &f)
	return vk.Fence(fromPtr(unsafe.Pointer(f))), vk.Result(res)
}

func (d *Device) DestroyFence(f vk.Fence) {
	if f == vk.NullFence {
		return
	}
	vulkan.DestroyFence(d.dev, vulkan.Fence(toPtr(uint64(f))), nil)
}

func (d *Device) CreateCommandPool(info *vk.CommandPoolCreateInfo) (vk.CommandPool, vk.Result) {
	ci := vulkan.CommandPoolCreateInfo{
		SType:            vulkan.StructureType(info.SType),
		Flags:            vulkan.CommandPoolCreateFlags(info.Flags),
		QueueFamilyIndex: info.QueueFamilyIndex,
	}
	var pool vulkan.CommandPool
	res := vulkan.CreateCommandPool(d.dev, &ci, nil, &pool)
	return vk.CommandPool(fromPtr(unsafe.Pointer(pool))), vk.Result(res)
}

func (d *Device) DestroyCommandPool(pool vk.CommandPool) {
	if pool == vk.NullCommandPool {
		return
	}
	vulkan.DestroyCommandPool(d.dev, vulkan.CommandPool(toPtr(uint64(pool))), nil)
}

func (d *Device) AllocateCommandBuffers(info *vk.CommandBufferAllocateInfo) ([]vk.CommandBuffer, vk.Result) {
	ci := vulkan.CommandBufferAllocateInfo{
		SType:              vulkan.StructureType(info.SType),
		CommandPool:        vulkan.CommandPool(toPtr(uint64(info.CommandPool))),
		Level:              vulkan.CommandBufferLevel(info.Level),
		CommandBufferCount: info.CommandBufferCount,
	}
	native := make([]vulkan.CommandBuffer, info.CommandBufferCount)
	res := vulkan.AllocateCommandBuffers(d.dev, &ci, native)
	if res != vulkan.Success {
		return nil, vk.Result(res)
	}
	out := make([]vk.CommandBuffer, len(native))
	for i, cb := range native {
		out[i] = vk.CommandBuffer(fromPtr(unsafe.Pointer(cb)))
	}
	return out, vk.Success
}
