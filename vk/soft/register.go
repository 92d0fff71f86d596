package soft

import (
	"github.com/gogpu/gfxvk/driver"
	"github.com/gogpu/gfxvk/vk"
)

func init() {
	driver.Register(driver.Soft, func() (vk.Device, error) {
		return New(), nil
	})
}
