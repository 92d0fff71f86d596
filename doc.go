// Package gfxvk creates Vulkan resources from backend-neutral gfx
// descriptors.
//
// # Overview
//
// A Factory translates buffer, texture, view, shader, program, pipeline
// and sampler descriptors into native objects on a vk.Device, places
// their memory, and registers them with a reference-counted handle
// manager. Native objects are destroyed exactly once, when the last
// reference to them is released or when the last Share of the device
// goes away.
//
// # Quick Start
//
//	dev := soft.New()
//	share := gfxvk.NewShare(dev)
//	defer share.Release()
//
//	f := gfxvk.NewFactory(share, 0, soft.TypeVideo, soft.TypeSystem)
//	defer f.Close()
//
//	buf, err := f.CreateBuffer(gfx.BufferInfo{
//		Role:  gfx.RoleConstant,
//		Usage: gfx.UsageDynamic,
//		Size:  256,
//	})
//	if err != nil {
//		return err
//	}
//	w, err := gfxvk.MapWritable[float32](f, buf)
//	if err != nil {
//		return err
//	}
//	w.Set(0, 1.5)
//	_ = w.Gate().Close()
//
// # Errors
//
// Descriptor problems are returned as typed errors that match the
// sentinels in errors.go with errors.Is. Driver failures are fatal: the
// factory logs them and panics with a *FatalError wrapped with a stack
// trace.
//
// # Memory
//
// Each resource gets its own allocation. CPUOnly resources live in the
// system memory type, everything else in the video type. Host mappings
// go through a mapping.Gate, which bounds-checks every access and is
// closed when the mapping ends.
//
// # Logging
//
// gfxvk is silent by default. Use SetLogger to route its structured
// log records to an slog.Logger.
//
// # Thread Safety
//
// A Factory is owned by one goroutine at a time. Share and the handle
// manager are safe for concurrent use.
package gfxvk
