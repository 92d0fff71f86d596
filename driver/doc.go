// Package driver is a registry of named device openers.
//
// Drivers register themselves from init() functions and are selected at
// runtime. The software driver registers on import:
//
//	import _ "github.com/gogpu/gfxvk/vk/soft"
//
// Use Open to request a driver by name, or Default to get the best
// available one:
//
//	dev, name, err := driver.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	share := gfxvk.NewShare(dev)
package driver
