package soft

import "github.com/gogpu/gfxvk/vk"

// texelRange maps a run of consecutive core formats to their texel size.
type texelRange struct {
	last  vk.Format
	bytes vk.DeviceSize
}

// texelRanges is sorted by last and covers formats 1 through 130.
var texelRanges = []texelRange{
	{1, 1},   // R4G4
	{8, 2},   // 16-bit packed
	{15, 1},  // R8
	{22, 2},  // R8G8
	{36, 3},  // R8G8B8, B8G8R8
	{57, 4},  // R8G8B8A8, B8G8R8A8, A8B8G8R8
	{69, 4},  // A2R10G10B10, A2B10G10R10
	{76, 2},  // R16
	{83, 4},  // R16G16
	{90, 6},  // R16G16B16
	{97, 8},  // R16G16B16A16
	{100, 4}, // R32
	{103, 8}, // R32G32
	{106, 12},
	{109, 16},
	{112, 8}, // R64
	{115, 16},
	{118, 24},
	{121, 32},
	{123, 4}, // B10G11R11, E5B9G9R9
	{124, 2}, // D16
	{126, 4}, // X8D24, D32
	{127, 1}, // S8
	{129, 4}, // D16S8, D24S8
	{130, 8}, // D32S8
}

// texelSize returns the byte size of one texel of f, or 0 for formats the
// software driver does not know.
func texelSize(f vk.Format) vk.DeviceSize {
	if f <= vk.FormatUndefined {
		return 0
	}
	for _, r := range texelRanges {
		if f <= r.last {
			return r.bytes
		}
	}
	return 0
}
