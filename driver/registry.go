package driver

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/gfxvk/vk"
)

// Well-known driver names.
const (
	// Vulkan is a device on a real Vulkan implementation.
	Vulkan = "vulkan"
	// Soft is the in-process software device.
	Soft = "soft"
)

// Registry errors.
var (
	// ErrNotRegistered is returned when opening an unknown driver.
	ErrNotRegistered = errors.New("driver: not registered")

	// ErrNoDriver is returned by Default when no driver could be opened.
	ErrNoDriver = errors.New("driver: no driver available")
)

// Opener creates a new device.
type Opener func() (vk.Device, error)

var (
	registryMu sync.RWMutex
	openers    = make(map[string]Opener)
	// Priority order for Default (first that opens wins).
	priority = []string{Vulkan, Soft}
)

// Register registers an opener under name, replacing any previous one.
// It is typically called from init().
func Register(name string, open Opener) {
	registryMu.Lock()
	defer registryMu.Unlock()
	openers[name] = open
}

// Unregister removes a driver. This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(openers, name)
}

// Available returns the registered driver names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := openers[name]
	return ok
}

// Open opens the named driver.
func Open(name string) (vk.Device, error) {
	registryMu.RLock()
	open, ok := openers[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "%q", name)
	}
	dev, err := open()
	if err != nil {
		return nil, errors.Wrapf(err, "driver: open %q", name)
	}
	return dev, nil
}

// Default opens the best available driver: the priority list first, then
// the remaining drivers in name order. It returns the device and the name
// of the driver that opened it.
func Default() (vk.Device, string, error) {
	names := Available()
	order := make([]string, 0, len(names))
	for _, name := range priority {
		if slices.Contains(names, name) {
			order = append(order, name)
		}
	}
	for _, name := range names {
		if !slices.Contains(priority, name) {
			order = append(order, name)
		}
	}

	var errs error
	for _, name := range order {
		dev, err := Open(name)
		if err == nil {
			return dev, name, nil
		}
		errs = errors.CombineErrors(errs, err)
	}
	if errs != nil {
		return nil, "", errors.Mark(errs, ErrNoDriver)
	}
	return nil, "", ErrNoDriver
}
