package vk

// Format is a native texel format.
type Format int32

// Core formats.
const (
	FormatUndefined                Format = 0
	FormatR4g4UnormPack8           Format = 1
	FormatR4g4b4a4UnormPack16      Format = 2
	FormatB4g4r4a4UnormPack16      Format = 3
	FormatR5g6b5UnormPack16        Format = 4
	FormatB5g6r5UnormPack16        Format = 5
	FormatR5g5b5a1UnormPack16      Format = 6
	FormatB5g5r5a1UnormPack16      Format = 7
	FormatA1r5g5b5UnormPack16      Format = 8
	FormatR8Unorm                  Format = 9
	FormatR8Snorm                  Format = 10
	FormatR8Uscaled                Format = 11
	FormatR8Sscaled                Format = 12
	FormatR8Uint                   Format = 13
	FormatR8Sint                   Format = 14
	FormatR8Srgb                   Format = 15
	FormatR8g8Unorm                Format = 16
	FormatR8g8Snorm                Format = 17
	FormatR8g8Uscaled              Format = 18
	FormatR8g8Sscaled              Format = 19
	FormatR8g8Uint                 Format = 20
	FormatR8g8Sint                 Format = 21
	FormatR8g8Srgb                 Format = 22
	FormatR8g8b8Unorm              Format = 23
	FormatR8g8b8Snorm              Format = 24
	FormatR8g8b8Uscaled            Format = 25
	FormatR8g8b8Sscaled            Format = 26
	FormatR8g8b8Uint               Format = 27
	FormatR8g8b8Sint               Format = 28
	FormatR8g8b8Srgb               Format = 29
	FormatB8g8r8Unorm              Format = 30
	FormatB8g8r8Snorm              Format = 31
	FormatB8g8r8Uscaled            Format = 32
	FormatB8g8r8Sscaled            Format = 33
	FormatB8g8r8Uint               Format = 34
	FormatB8g8r8Sint               Format = 35
	FormatB8g8r8Srgb               Format = 36
	FormatR8g8b8a8Unorm            Format = 37
	FormatR8g8b8a8Snorm            Format = 38
	FormatR8g8b8a8Uscaled          Format = 39
	FormatR8g8b8a8Sscaled          Format = 40
	FormatR8g8b8a8Uint             Format = 41
	FormatR8g8b8a8Sint             Format = 42
	FormatR8g8b8a8Srgb             Format = 43
	FormatB8g8r8a8Unorm            Format = 44
	FormatB8g8r8a8Snorm            Format = 45
	FormatB8g8r8a8Uscaled          Format = 46
	FormatB8g8r8a8Sscaled          Format = 47
	FormatB8g8r8a8Uint             Format = 48
	FormatB8g8r8a8Sint             Format = 49
	FormatB8g8r8a8Srgb             Format = 50
	FormatA8b8g8r8UnormPack32      Format = 51
	FormatA8b8g8r8SnormPack32      Format = 52
	FormatA8b8g8r8UscaledPack32    Format = 53
	FormatA8b8g8r8SscaledPack32    Format = 54
	FormatA8b8g8r8UintPack32       Format = 55
	FormatA8b8g8r8SintPack32       Format = 56
	FormatA8b8g8r8SrgbPack32       Format = 57
	FormatA2r10g10b10UnormPack32   Format = 58
	FormatA2r10g10b10SnormPack32   Format = 59
	FormatA2r10g10b10UscaledPack32 Format = 60
	FormatA2r10g10b10SscaledPack32 Format = 61
	FormatA2r10g10b10UintPack32    Format = 62
	FormatA2r10g10b10SintPack32    Format = 63
	FormatA2b10g10r10UnormPack32   Format = 64
	FormatA2b10g10r10SnormPack32   Format = 65
	FormatA2b10g10r10UscaledPack32 Format = 66
	FormatA2b10g10r10SscaledPack32 Format = 67
	FormatA2b10g10r10UintPack32    Format = 68
	FormatA2b10g10r10SintPack32    Format = 69
	FormatR16Unorm                 Format = 70
	FormatR16Snorm                 Format = 71
	FormatR16Uscaled               Format = 72
	FormatR16Sscaled               Format = 73
	FormatR16Uint                  Format = 74
	FormatR16Sint                  Format = 75
	FormatR16Sfloat                Format = 76
	FormatR16g16Unorm              Format = 77
	FormatR16g16Snorm              Format = 78
	FormatR16g16Uscaled            Format = 79
	FormatR16g16Sscaled            Format = 80
	FormatR16g16Uint               Format = 81
	FormatR16g16Sint               Format = 82
	FormatR16g16Sfloat             Format = 83
	FormatR16g16b16Unorm           Format = 84
	FormatR16g16b16Snorm           Format = 85
	FormatR16g16b16Uscaled         Format = 86
	FormatR16g16b16Sscaled         Format = 87
	FormatR16g16b16Uint            Format = 88
	FormatR16g16b16Sint            Format = 89
	FormatR16g16b16Sfloat          Format = 90
	FormatR16g16b16a16Unorm        Format = 91
	FormatR16g16b16a16Snorm        Format = 92
	FormatR16g16b16a16Uscaled      Format = 93
	FormatR16g16b16a16Sscaled      Format = 94
	FormatR16g16b16a16Uint         Format = 95
	FormatR16g16b16a16Sint         Format = 96
	FormatR16g16b16a16Sfloat       Format = 97
	FormatR32Uint                  Format = 98
	FormatR32Sint                  Format = 99
	FormatR32Sfloat                Format = 100
	FormatR32g32Uint               Format = 101
	FormatR32g32Sint               Format = 102
	FormatR32g32Sfloat             Format = 103
	FormatR32g32b32Uint            Format = 104
	FormatR32g32b32Sint            Format = 105
	FormatR32g32b32Sfloat          Format = 106
	FormatR32g32b32a32Uint         Format = 107
	FormatR32g32b32a32Sint         Format = 108
	FormatR32g32b32a32Sfloat       Format = 109
	FormatR64Uint                  Format = 110
	FormatR64Sint                  Format = 111
	FormatR64Sfloat                Format = 112
	FormatR64g64Uint               Format = 113
	FormatR64g64Sint               Format = 114
	FormatR64g64Sfloat             Format = 115
	FormatR64g64b64Uint            Format = 116
	FormatR64g64b64Sint            Format = 117
	FormatR64g64b64Sfloat          Format = 118
	FormatR64g64b64a64Uint         Format = 119
	FormatR64g64b64a64Sint         Format = 120
	FormatR64g64b64a64Sfloat       Format = 121
	FormatB10g11r11UfloatPack32    Format = 122
	FormatE5b9g9r9UfloatPack32     Format = 123
	FormatD16Unorm                 Format = 124
	FormatX8D24UnormPack32         Format = 125
	FormatD32Sfloat                Format = 126
	FormatS8Uint                   Format = 127
	FormatD16UnormS8Uint           Format = 128
	FormatD24UnormS8Uint           Format = 129
	FormatD32SfloatS8Uint          Format = 130
)
