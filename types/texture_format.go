// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package types

import "fmt"

// TextureFormat identifies an abstract pixel format. The set is closed:
// backends classify every format's capabilities (see the hal package) and
// treat values outside this enum as programming errors.
type TextureFormat uint32

// Texture formats. Grouped by channel layout; compressed formats last.
const (
	// TextureFormatUndefined is the zero format; not a usable format.
	TextureFormatUndefined TextureFormat = iota

	// 8-bit single channel.
	TextureFormatR8Unorm
	TextureFormatR8Snorm
	TextureFormatR8Uint
	TextureFormatR8Sint

	// 16-bit single channel.
	TextureFormatR16Uint
	TextureFormatR16Sint
	TextureFormatR16Float

	// 8-bit two channel.
	TextureFormatRG8Unorm
	TextureFormatRG8Snorm
	TextureFormatRG8Uint
	TextureFormatRG8Sint

	// 32-bit single channel.
	TextureFormatR32Uint
	TextureFormatR32Sint
	TextureFormatR32Float

	// 16-bit two channel.
	TextureFormatRG16Uint
	TextureFormatRG16Sint
	TextureFormatRG16Float

	// 8-bit four channel.
	TextureFormatRGBA8Unorm
	TextureFormatRGBA8UnormSrgb
	TextureFormatRGBA8Snorm
	TextureFormatRGBA8Uint
	TextureFormatRGBA8Sint
	TextureFormatBGRA8Unorm
	TextureFormatBGRA8UnormSrgb

	// Packed 32-bit.
	TextureFormatRGB10A2Unorm
	TextureFormatRG11B10Float

	// 32-bit two channel.
	TextureFormatRG32Uint
	TextureFormatRG32Sint
	TextureFormatRG32Float

	// 16-bit four channel.
	TextureFormatRGBA16Uint
	TextureFormatRGBA16Sint
	TextureFormatRGBA16Float

	// 32-bit four channel.
	TextureFormatRGBA32Uint
	TextureFormatRGBA32Sint
	TextureFormatRGBA32Float

	// Depth and stencil.
	TextureFormatDepth32Float
	TextureFormatDepth24Plus
	TextureFormatDepth24PlusStencil8

	// BC block compression (desktop only).
	TextureFormatBC1RGBAUnorm
	TextureFormatBC1RGBAUnormSrgb
	TextureFormatBC2RGBAUnorm
	TextureFormatBC2RGBAUnormSrgb
	TextureFormatBC3RGBAUnorm
	TextureFormatBC3RGBAUnormSrgb
	TextureFormatBC4RUnorm
	TextureFormatBC4RSnorm
	TextureFormatBC5RGUnorm
	TextureFormatBC5RGSnorm
	TextureFormatBC6HRGBUfloat
	TextureFormatBC6HRGBSfloat
	TextureFormatBC7RGBAUnorm
	TextureFormatBC7RGBAUnormSrgb

	// ETC2/EAC compression (mobile).
	TextureFormatETC2RGBUnorm
	TextureFormatETC2RGBUnormSrgb
	TextureFormatETC2RGBA1Unorm
	TextureFormatETC2RGBA1UnormSrgb
	TextureFormatEACRUnorm
	TextureFormatEACRSnorm
	TextureFormatEACRGUnorm
	TextureFormatEACRGSnorm

	// ASTC compression (mobile).
	TextureFormatASTC4x4RGBAUnorm
	TextureFormatASTC4x4RGBAUnormSrgb
	TextureFormatASTC5x4RGBAUnorm
	TextureFormatASTC5x4RGBAUnormSrgb
	TextureFormatASTC5x5RGBAUnorm
	TextureFormatASTC5x5RGBAUnormSrgb
	TextureFormatASTC6x5RGBAUnorm
	TextureFormatASTC6x5RGBAUnormSrgb
	TextureFormatASTC6x6RGBAUnorm
	TextureFormatASTC6x6RGBAUnormSrgb
	TextureFormatASTC8x5RGBAUnorm
	TextureFormatASTC8x5RGBAUnormSrgb
	TextureFormatASTC8x6RGBAUnorm
	TextureFormatASTC8x6RGBAUnormSrgb
	TextureFormatASTC8x8RGBAUnorm
	TextureFormatASTC8x8RGBAUnormSrgb
	TextureFormatASTC10x5RGBAUnorm
	TextureFormatASTC10x5RGBAUnormSrgb
	TextureFormatASTC10x6RGBAUnorm
	TextureFormatASTC10x6RGBAUnormSrgb
	TextureFormatASTC10x8RGBAUnorm
	TextureFormatASTC10x8RGBAUnormSrgb
	TextureFormatASTC10x10RGBAUnorm
	TextureFormatASTC10x10RGBAUnormSrgb
	TextureFormatASTC12x10RGBAUnorm
	TextureFormatASTC12x10RGBAUnormSrgb
	TextureFormatASTC12x12RGBAUnorm
	TextureFormatASTC12x12RGBAUnormSrgb

	// TextureFormatCount is one past the last format. Not a format;
	// useful for exhaustive iteration in tables and tests.
	TextureFormatCount
)

// IsCompressed reports whether the format is block-compressed
// (BC, ETC2/EAC, or ASTC).
func (f TextureFormat) IsCompressed() bool {
	return f >= TextureFormatBC1RGBAUnorm && f < TextureFormatCount
}

// IsDepthStencil reports whether the format has a depth or stencil aspect.
func (f TextureFormat) IsDepthStencil() bool {
	switch f {
	case TextureFormatDepth32Float, TextureFormatDepth24Plus, TextureFormatDepth24PlusStencil8:
		return true
	default:
		return false
	}
}

var textureFormatNames = map[TextureFormat]string{
	TextureFormatUndefined:              "Undefined",
	TextureFormatR8Unorm:                "R8Unorm",
	TextureFormatR8Snorm:                "R8Snorm",
	TextureFormatR8Uint:                 "R8Uint",
	TextureFormatR8Sint:                 "R8Sint",
	TextureFormatR16Uint:                "R16Uint",
	TextureFormatR16Sint:                "R16Sint",
	TextureFormatR16Float:               "R16Float",
	TextureFormatRG8Unorm:               "RG8Unorm",
	TextureFormatRG8Snorm:               "RG8Snorm",
	TextureFormatRG8Uint:                "RG8Uint",
	TextureFormatRG8Sint:                "RG8Sint",
	TextureFormatR32Uint:                "R32Uint",
	TextureFormatR32Sint:                "R32Sint",
	TextureFormatR32Float:               "R32Float",
	TextureFormatRG16Uint:               "RG16Uint",
	TextureFormatRG16Sint:               "RG16Sint",
	TextureFormatRG16Float:              "RG16Float",
	TextureFormatRGBA8Unorm:             "RGBA8Unorm",
	TextureFormatRGBA8UnormSrgb:         "RGBA8UnormSrgb",
	TextureFormatRGBA8Snorm:             "RGBA8Snorm",
	TextureFormatRGBA8Uint:              "RGBA8Uint",
	TextureFormatRGBA8Sint:              "RGBA8Sint",
	TextureFormatBGRA8Unorm:             "BGRA8Unorm",
	TextureFormatBGRA8UnormSrgb:         "BGRA8UnormSrgb",
	TextureFormatRGB10A2Unorm:           "RGB10A2Unorm",
	TextureFormatRG11B10Float:           "RG11B10Float",
	TextureFormatRG32Uint:               "RG32Uint",
	TextureFormatRG32Sint:               "RG32Sint",
	TextureFormatRG32Float:              "RG32Float",
	TextureFormatRGBA16Uint:             "RGBA16Uint",
	TextureFormatRGBA16Sint:             "RGBA16Sint",
	TextureFormatRGBA16Float:            "RGBA16Float",
	TextureFormatRGBA32Uint:             "RGBA32Uint",
	TextureFormatRGBA32Sint:             "RGBA32Sint",
	TextureFormatRGBA32Float:            "RGBA32Float",
	TextureFormatDepth32Float:           "Depth32Float",
	TextureFormatDepth24Plus:            "Depth24Plus",
	TextureFormatDepth24PlusStencil8:    "Depth24PlusStencil8",
	TextureFormatBC1RGBAUnorm:           "BC1RGBAUnorm",
	TextureFormatBC1RGBAUnormSrgb:       "BC1RGBAUnormSrgb",
	TextureFormatBC2RGBAUnorm:           "BC2RGBAUnorm",
	TextureFormatBC2RGBAUnormSrgb:       "BC2RGBAUnormSrgb",
	TextureFormatBC3RGBAUnorm:           "BC3RGBAUnorm",
	TextureFormatBC3RGBAUnormSrgb:       "BC3RGBAUnormSrgb",
	TextureFormatBC4RUnorm:              "BC4RUnorm",
	TextureFormatBC4RSnorm:              "BC4RSnorm",
	TextureFormatBC5RGUnorm:             "BC5RGUnorm",
	TextureFormatBC5RGSnorm:             "BC5RGSnorm",
	TextureFormatBC6HRGBUfloat:          "BC6HRGBUfloat",
	TextureFormatBC6HRGBSfloat:          "BC6HRGBSfloat",
	TextureFormatBC7RGBAUnorm:           "BC7RGBAUnorm",
	TextureFormatBC7RGBAUnormSrgb:       "BC7RGBAUnormSrgb",
	TextureFormatETC2RGBUnorm:           "ETC2RGBUnorm",
	TextureFormatETC2RGBUnormSrgb:       "ETC2RGBUnormSrgb",
	TextureFormatETC2RGBA1Unorm:         "ETC2RGBA1Unorm",
	TextureFormatETC2RGBA1UnormSrgb:     "ETC2RGBA1UnormSrgb",
	TextureFormatEACRUnorm:              "EACRUnorm",
	TextureFormatEACRSnorm:              "EACRSnorm",
	TextureFormatEACRGUnorm:             "EACRGUnorm",
	TextureFormatEACRGSnorm:             "EACRGSnorm",
	TextureFormatASTC4x4RGBAUnorm:       "ASTC4x4RGBAUnorm",
	TextureFormatASTC4x4RGBAUnormSrgb:   "ASTC4x4RGBAUnormSrgb",
	TextureFormatASTC5x4RGBAUnorm:       "ASTC5x4RGBAUnorm",
	TextureFormatASTC5x4RGBAUnormSrgb:   "ASTC5x4RGBAUnormSrgb",
	TextureFormatASTC5x5RGBAUnorm:       "ASTC5x5RGBAUnorm",
	TextureFormatASTC5x5RGBAUnormSrgb:   "ASTC5x5RGBAUnormSrgb",
	TextureFormatASTC6x5RGBAUnorm:       "ASTC6x5RGBAUnorm",
	TextureFormatASTC6x5RGBAUnormSrgb:   "ASTC6x5RGBAUnormSrgb",
	TextureFormatASTC6x6RGBAUnorm:       "ASTC6x6RGBAUnorm",
	TextureFormatASTC6x6RGBAUnormSrgb:   "ASTC6x6RGBAUnormSrgb",
	TextureFormatASTC8x5RGBAUnorm:       "ASTC8x5RGBAUnorm",
	TextureFormatASTC8x5RGBAUnormSrgb:   "ASTC8x5RGBAUnormSrgb",
	TextureFormatASTC8x6RGBAUnorm:       "ASTC8x6RGBAUnorm",
	TextureFormatASTC8x6RGBAUnormSrgb:   "ASTC8x6RGBAUnormSrgb",
	TextureFormatASTC8x8RGBAUnorm:       "ASTC8x8RGBAUnorm",
	TextureFormatASTC8x8RGBAUnormSrgb:   "ASTC8x8RGBAUnormSrgb",
	TextureFormatASTC10x5RGBAUnorm:      "ASTC10x5RGBAUnorm",
	TextureFormatASTC10x5RGBAUnormSrgb:  "ASTC10x5RGBAUnormSrgb",
	TextureFormatASTC10x6RGBAUnorm:      "ASTC10x6RGBAUnorm",
	TextureFormatASTC10x6RGBAUnormSrgb:  "ASTC10x6RGBAUnormSrgb",
	TextureFormatASTC10x8RGBAUnorm:      "ASTC10x8RGBAUnorm",
	TextureFormatASTC10x8RGBAUnormSrgb:  "ASTC10x8RGBAUnormSrgb",
	TextureFormatASTC10x10RGBAUnorm:     "ASTC10x10RGBAUnorm",
	TextureFormatASTC10x10RGBAUnormSrgb: "ASTC10x10RGBAUnormSrgb",
	TextureFormatASTC12x10RGBAUnorm:     "ASTC12x10RGBAUnorm",
	TextureFormatASTC12x10RGBAUnormSrgb: "ASTC12x10RGBAUnormSrgb",
	TextureFormatASTC12x12RGBAUnorm:     "ASTC12x12RGBAUnorm",
	TextureFormatASTC12x12RGBAUnormSrgb: "ASTC12x12RGBAUnormSrgb",
}

// String returns the format name without the TextureFormat prefix.
func (f TextureFormat) String() string {
	if name, ok := textureFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("TextureFormat(%d)", uint32(f))
}
