// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"fmt"

	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/types"
)

// TextureFormatCapabilities classifies what this backend supports for one
// format. The function is total over the defined formats; an undefined
// format is a programming error and panics rather than defaulting.
//
// The storage bits follow the "TEXTURE IMAGE LOADS AND STORES" section of
// the GLES 3.2 specification. Compressed formats can be sampled and
// filtered but never rendered to or accessed as storage on this API
// family.
func (a *Adapter) TextureFormatCapabilities(format types.TextureFormat) hal.TextureFormatCapabilities {
	unfilteredColor := hal.FormatCapabilitySampled | hal.FormatCapabilityColorAttachment
	filteredColor := unfilteredColor | hal.FormatCapabilitySampledLinear | hal.FormatCapabilityColorAttachmentBlend
	depthStencil := hal.FormatCapabilitySampled | hal.FormatCapabilityDepthStencilAttachment

	switch format {
	case types.TextureFormatR8Unorm, types.TextureFormatR8Snorm:
		return filteredColor
	case types.TextureFormatR8Uint, types.TextureFormatR8Sint,
		types.TextureFormatR16Uint, types.TextureFormatR16Sint:
		return unfilteredColor
	case types.TextureFormatR16Float, types.TextureFormatRG8Unorm, types.TextureFormatRG8Snorm:
		return filteredColor
	case types.TextureFormatRG8Uint, types.TextureFormatRG8Sint,
		types.TextureFormatR32Uint, types.TextureFormatR32Sint:
		return unfilteredColor | hal.FormatCapabilityStorage
	case types.TextureFormatR32Float:
		return unfilteredColor
	case types.TextureFormatRG16Uint, types.TextureFormatRG16Sint:
		return unfilteredColor
	case types.TextureFormatRG16Float, types.TextureFormatRGBA8Unorm, types.TextureFormatRGBA8UnormSrgb:
		return filteredColor | hal.FormatCapabilityStorage
	case types.TextureFormatBGRA8UnormSrgb, types.TextureFormatRGBA8Snorm, types.TextureFormatBGRA8Unorm:
		return filteredColor
	case types.TextureFormatRGBA8Uint, types.TextureFormatRGBA8Sint:
		return unfilteredColor | hal.FormatCapabilityStorage
	case types.TextureFormatRGB10A2Unorm, types.TextureFormatRG11B10Float:
		return filteredColor
	case types.TextureFormatRG32Uint, types.TextureFormatRG32Sint:
		return unfilteredColor
	case types.TextureFormatRG32Float:
		return unfilteredColor | hal.FormatCapabilityStorage
	case types.TextureFormatRGBA16Uint, types.TextureFormatRGBA16Sint:
		return unfilteredColor | hal.FormatCapabilityStorage
	case types.TextureFormatRGBA16Float:
		return filteredColor | hal.FormatCapabilityStorage
	case types.TextureFormatRGBA32Uint, types.TextureFormatRGBA32Sint:
		return unfilteredColor | hal.FormatCapabilityStorage
	case types.TextureFormatRGBA32Float:
		return unfilteredColor | hal.FormatCapabilityStorage
	case types.TextureFormatDepth32Float,
		types.TextureFormatDepth24Plus,
		types.TextureFormatDepth24PlusStencil8:
		return depthStencil
	case types.TextureFormatBC1RGBAUnorm,
		types.TextureFormatBC1RGBAUnormSrgb,
		types.TextureFormatBC2RGBAUnorm,
		types.TextureFormatBC2RGBAUnormSrgb,
		types.TextureFormatBC3RGBAUnorm,
		types.TextureFormatBC3RGBAUnormSrgb,
		types.TextureFormatBC4RUnorm,
		types.TextureFormatBC4RSnorm,
		types.TextureFormatBC5RGUnorm,
		types.TextureFormatBC5RGSnorm,
		types.TextureFormatBC6HRGBUfloat,
		types.TextureFormatBC6HRGBSfloat,
		types.TextureFormatBC7RGBAUnorm,
		types.TextureFormatBC7RGBAUnormSrgb,
		types.TextureFormatETC2RGBUnorm,
		types.TextureFormatETC2RGBUnormSrgb,
		types.TextureFormatETC2RGBA1Unorm,
		types.TextureFormatETC2RGBA1UnormSrgb,
		types.TextureFormatEACRUnorm,
		types.TextureFormatEACRSnorm,
		types.TextureFormatEACRGUnorm,
		types.TextureFormatEACRGSnorm,
		types.TextureFormatASTC4x4RGBAUnorm,
		types.TextureFormatASTC4x4RGBAUnormSrgb,
		types.TextureFormatASTC5x4RGBAUnorm,
		types.TextureFormatASTC5x4RGBAUnormSrgb,
		types.TextureFormatASTC5x5RGBAUnorm,
		types.TextureFormatASTC5x5RGBAUnormSrgb,
		types.TextureFormatASTC6x5RGBAUnorm,
		types.TextureFormatASTC6x5RGBAUnormSrgb,
		types.TextureFormatASTC6x6RGBAUnorm,
		types.TextureFormatASTC6x6RGBAUnormSrgb,
		types.TextureFormatASTC8x5RGBAUnorm,
		types.TextureFormatASTC8x5RGBAUnormSrgb,
		types.TextureFormatASTC8x6RGBAUnorm,
		types.TextureFormatASTC8x6RGBAUnormSrgb,
		types.TextureFormatASTC8x8RGBAUnorm,
		types.TextureFormatASTC8x8RGBAUnormSrgb,
		types.TextureFormatASTC10x5RGBAUnorm,
		types.TextureFormatASTC10x5RGBAUnormSrgb,
		types.TextureFormatASTC10x6RGBAUnorm,
		types.TextureFormatASTC10x6RGBAUnormSrgb,
		types.TextureFormatASTC10x8RGBAUnorm,
		types.TextureFormatASTC10x8RGBAUnormSrgb,
		types.TextureFormatASTC10x10RGBAUnorm,
		types.TextureFormatASTC10x10RGBAUnormSrgb,
		types.TextureFormatASTC12x10RGBAUnorm,
		types.TextureFormatASTC12x10RGBAUnormSrgb,
		types.TextureFormatASTC12x12RGBAUnorm,
		types.TextureFormatASTC12x12RGBAUnormSrgb:
		return hal.FormatCapabilitySampled | hal.FormatCapabilitySampledLinear
	default:
		panic(fmt.Sprintf("gles: no capability entry for format %v", format))
	}
}
