// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

// Package types defines the shared wgpu type vocabulary: backends, device
// classification, features, limits, and texture formats. It has no
// dependencies and is imported by every other package in the module.
package types

import "fmt"

// Backend identifies a graphics API a hal backend is built on.
type Backend uint8

// Supported backends.
const (
	// BackendEmpty is the zero backend; no API selected.
	BackendEmpty Backend = iota

	// BackendVulkan is the Vulkan API.
	BackendVulkan

	// BackendMetal is Apple's Metal API.
	BackendMetal

	// BackendDX12 is Direct3D 12.
	BackendDX12

	// BackendGL is OpenGL ES 3.x (including WebGL 2 contexts).
	BackendGL

	// BackendBrowserWebGPU is the browser's native WebGPU implementation.
	BackendBrowserWebGPU
)

// String returns the backend name as commonly displayed to users.
func (b Backend) String() string {
	switch b {
	case BackendEmpty:
		return "empty"
	case BackendVulkan:
		return "Vulkan"
	case BackendMetal:
		return "Metal"
	case BackendDX12:
		return "DX12"
	case BackendGL:
		return "GL"
	case BackendBrowserWebGPU:
		return "BrowserWebGPU"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// DeviceType classifies an adapter by where it executes.
//
// GL has no query for this, so the gles backend infers it from the
// vendor and renderer strings; other backends report it directly.
type DeviceType uint8

// Device classifications.
const (
	// DeviceTypeOther is an unclassified device.
	DeviceTypeOther DeviceType = iota

	// DeviceTypeIntegratedGPU shares memory with the CPU.
	DeviceTypeIntegratedGPU

	// DeviceTypeDiscreteGPU has its own dedicated memory.
	DeviceTypeDiscreteGPU

	// DeviceTypeVirtualGPU is a virtualized or paravirtualized device.
	DeviceTypeVirtualGPU

	// DeviceTypeCPU is a software rasterizer.
	DeviceTypeCPU
)

// String returns a human-readable device classification.
func (d DeviceType) String() string {
	switch d {
	case DeviceTypeOther:
		return "Other"
	case DeviceTypeIntegratedGPU:
		return "IntegratedGPU"
	case DeviceTypeDiscreteGPU:
		return "DiscreteGPU"
	case DeviceTypeVirtualGPU:
		return "VirtualGPU"
	case DeviceTypeCPU:
		return "CPU"
	default:
		return fmt.Sprintf("DeviceType(%d)", uint8(d))
	}
}

// AdapterInfo is the normalized identity of a probed adapter.
// It is derived once during probing and never mutated.
type AdapterInfo struct {
	// Name is the adapter name as reported by the driver
	// (the original renderer string, case preserved).
	Name string

	// Vendor is the PCI vendor id, or 0 when the vendor is unknown.
	Vendor uint32

	// Device is the PCI device id, or 0 when unavailable (always 0 on GL).
	Device uint32

	// DeviceType is the inferred device classification.
	DeviceType DeviceType

	// Backend is the API this adapter was probed through.
	Backend Backend
}

// Extent3D describes the size of a texture or presentation surface.
type Extent3D struct {
	Width              uint32
	Height             uint32
	DepthOrArrayLayers uint32
}

// PresentMode selects how presentation waits for the display.
type PresentMode uint8

// Presentation modes.
const (
	// PresentModeImmediate presents without waiting for vblank (may tear).
	PresentModeImmediate PresentMode = iota

	// PresentModeMailbox replaces the queued image on each present.
	PresentModeMailbox

	// PresentModeFifo queues images and waits for vblank (vsync).
	PresentModeFifo
)

// String returns the presentation mode name.
func (p PresentMode) String() string {
	switch p {
	case PresentModeImmediate:
		return "Immediate"
	case PresentModeMailbox:
		return "Mailbox"
	case PresentModeFifo:
		return "Fifo"
	default:
		return fmt.Sprintf("PresentMode(%d)", uint8(p))
	}
}

// CompositeAlphaMode selects how the compositor treats surface alpha.
type CompositeAlphaMode uint8

// Alpha composition modes.
const (
	// CompositeAlphaModeOpaque ignores the alpha channel.
	CompositeAlphaModeOpaque CompositeAlphaMode = iota

	// CompositeAlphaModePreMultiplied expects premultiplied alpha.
	CompositeAlphaModePreMultiplied

	// CompositeAlphaModePostMultiplied expects straight alpha.
	CompositeAlphaModePostMultiplied

	// CompositeAlphaModeInherit defers to the window system.
	CompositeAlphaModeInherit
)

// ShaderModel is a coarse shader capability level, named after the
// D3D shader model tiers.
type ShaderModel uint8

// Shader model tiers.
const (
	// ShaderModel2 covers DX9.1-level shading.
	ShaderModel2 ShaderModel = iota

	// ShaderModel4 covers DX10-level shading.
	ShaderModel4

	// ShaderModel5 covers DX11-level shading and is what the GLES 3.x
	// backend reports.
	ShaderModel5
)

// String returns the tier name.
func (s ShaderModel) String() string {
	switch s {
	case ShaderModel2:
		return "SM2"
	case ShaderModel4:
		return "SM4"
	case ShaderModel5:
		return "SM5"
	default:
		return fmt.Sprintf("ShaderModel(%d)", uint8(s))
	}
}
