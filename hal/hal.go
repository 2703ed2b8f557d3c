// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

// Package hal defines the backend-neutral hardware abstraction layer:
// the interfaces each graphics backend implements, the descriptor and
// capability types exchanged across them, and a registry through which
// backend packages make themselves available.
//
// Backends must be registered via RegisterBackend and are selected via
// GetBackend. Importing a backend package for its side effects is enough:
//
//	import _ "github.com/OptimisticPeach/wgpu/hal/gles"
package hal

import (
	"errors"

	"github.com/OptimisticPeach/wgpu/types"
)

// Common hal errors.
var (
	// ErrOutOfMemory is returned when the native API signals an
	// allocation failure during object creation.
	ErrOutOfMemory = errors.New("hal: out of memory")

	// ErrUnsupportedFeature is returned when a device is opened with
	// features the adapter did not report.
	ErrUnsupportedFeature = errors.New("hal: unsupported feature requested")
)

// InstanceFlags control instance-wide debugging behavior.
type InstanceFlags uint32

// Instance flag bits.
const (
	// InstanceFlagsDebug enables backend debug labels and markers.
	InstanceFlagsDebug InstanceFlags = 1 << iota

	// InstanceFlagsValidation enables backend validation where available.
	InstanceFlagsValidation
)

// InstanceDescriptor configures instance creation.
type InstanceDescriptor struct {
	// Name labels the instance for debugging tools.
	Name string

	// Flags select debugging behavior.
	Flags InstanceFlags
}

// API is the entry point a backend package registers. It creates
// instances of that backend.
type API interface {
	// Backend identifies the graphics API this backend drives.
	Backend() types.Backend

	// CreateInstance creates a new instance of this backend.
	CreateInstance(desc *InstanceDescriptor) (Instance, error)
}

// Instance owns backend-global state and enumerates adapters.
type Instance interface {
	// EnumerateAdapters returns every adapter the instance can see.
	// The returned slice is a snapshot; probing happens when a native
	// context becomes known to the instance, not on every call.
	EnumerateAdapters() []ExposedAdapter

	// Destroy releases instance resources. The instance must not be
	// used afterwards.
	Destroy()
}

// Adapter is a probed physical device. Its capability data is fixed at
// probe time; all methods are read-only except Open.
type Adapter interface {
	// Open creates a device/queue pair using the requested feature
	// subset. Requesting features the adapter did not expose fails with
	// ErrUnsupportedFeature. Allocation failures during bootstrap fail
	// with ErrOutOfMemory and leave no partial objects behind.
	Open(features types.Features) (OpenDevice, error)

	// TextureFormatCapabilities classifies what the adapter supports
	// for one format. Total: every defined format yields a non-empty set.
	TextureFormatCapabilities(format types.TextureFormat) TextureFormatCapabilities

	// SurfaceCapabilities describes presentation support for a surface,
	// or nil when the surface cannot be presented to.
	SurfaceCapabilities(surface Surface) *SurfaceCapabilities
}

// Device creates GPU resources. Resource types beyond shader modules are
// implemented by the backends incrementally.
type Device interface {
	// CreateShaderModule validates and wraps a shader source.
	CreateShaderModule(desc *ShaderModuleDescriptor) (ShaderModule, error)

	// Destroy releases device-owned objects.
	Destroy()
}

// Queue submits work and owns per-submission transient state.
type Queue interface {
	// Destroy releases queue-owned objects.
	Destroy()
}

// Surface is a presentation target. Construction is backend- and
// window-system-specific; hal only passes surfaces through.
type Surface interface {
	// Presentable reports whether the surface can currently be
	// presented to.
	Presentable() bool
}

// ShaderModule is an opaque, device-owned shader object.
type ShaderModule interface {
	// Label returns the debug label the module was created with.
	Label() string
}

// ShaderSource carries one shader representation. Exactly one field
// should be set.
type ShaderSource struct {
	// WGSL is WGSL source text.
	WGSL string

	// SPIRV is SPIR-V bytecode as little-endian words.
	SPIRV []uint32
}

// ShaderModuleDescriptor configures shader module creation.
type ShaderModuleDescriptor struct {
	Label  string
	Source ShaderSource
}

// OpenDevice is the result of Adapter.Open: a device and its queue.
// Both share the adapter's immutable capability data.
type OpenDevice struct {
	Device Device
	Queue  Queue
}

// ExposedAdapter packages an adapter with everything probed about it.
type ExposedAdapter struct {
	Adapter      Adapter
	Info         types.AdapterInfo
	Features     types.Features
	Capabilities Capabilities
}

// Capabilities aggregates the numeric and flag capabilities of an
// adapter. Built once per probe and treated as immutable afterwards.
type Capabilities struct {
	Limits     types.Limits
	Downlevel  DownlevelCapabilities
	Alignments Alignments
}

// DownlevelCapabilities describes what a downlevel adapter can do beyond
// the guaranteed baseline.
type DownlevelCapabilities struct {
	Flags       types.DownlevelFlags
	ShaderModel types.ShaderModel
}

// Alignments are the buffer alignment requirements of an adapter.
// Every value is in bytes and must be non-zero.
type Alignments struct {
	// BufferCopyOffset is the required alignment of buffer copy offsets.
	BufferCopyOffset uint64

	// BufferCopyPitch is the required alignment of rows in buffer/texture
	// copies.
	BufferCopyPitch uint64

	// UniformBufferOffset is the required alignment of dynamic uniform
	// buffer offsets.
	UniformBufferOffset uint64

	// StorageBufferOffset is the required alignment of dynamic storage
	// buffer offsets.
	StorageBufferOffset uint64
}

// TextureFormatCapabilities is a bitset of the operations an adapter
// supports for one texture format.
type TextureFormatCapabilities uint32

// Format capability bits.
const (
	// FormatCapabilitySampled marks the format usable in sampled textures.
	FormatCapabilitySampled TextureFormatCapabilities = 1 << iota

	// FormatCapabilitySampledLinear marks support for linear filtering.
	FormatCapabilitySampledLinear

	// FormatCapabilityStorage marks read/write storage texture access.
	FormatCapabilityStorage

	// FormatCapabilityColorAttachment marks render target support.
	FormatCapabilityColorAttachment

	// FormatCapabilityColorAttachmentBlend marks blendable render targets.
	FormatCapabilityColorAttachmentBlend

	// FormatCapabilityDepthStencilAttachment marks depth/stencil target
	// support.
	FormatCapabilityDepthStencilAttachment
)

// Contains reports whether every bit in other is set in c.
func (c TextureFormatCapabilities) Contains(other TextureFormatCapabilities) bool {
	return c&other == other
}

// TextureUses is a bitset of the ways a texture may be used.
type TextureUses uint32

// Texture use bits.
const (
	// TextureUseCopySrc marks the texture as a copy source.
	TextureUseCopySrc TextureUses = 1 << iota

	// TextureUseCopyDst marks the texture as a copy destination.
	TextureUseCopyDst

	// TextureUseResource marks sampled or readonly-storage shader access.
	TextureUseResource

	// TextureUseColorTarget marks use as a color render target.
	TextureUseColorTarget

	// TextureUseDepthStencilRead marks read-only depth/stencil use.
	TextureUseDepthStencilRead

	// TextureUseDepthStencilWrite marks writable depth/stencil use.
	TextureUseDepthStencilWrite

	// TextureUseStorageRead marks read-only storage texture access.
	TextureUseStorageRead

	// TextureUseStorageWrite marks writable storage texture access.
	TextureUseStorageWrite
)

// Contains reports whether every bit in other is set in u.
func (u TextureUses) Contains(other TextureUses) bool {
	return u&other == other
}

// SurfaceCapabilities describes what a presentable surface supports.
type SurfaceCapabilities struct {
	// Formats lists presentable texture formats, preferred first.
	Formats []types.TextureFormat

	// PresentModes lists supported presentation modes.
	PresentModes []types.PresentMode

	// CompositeAlphaModes lists supported alpha composition modes.
	CompositeAlphaModes []types.CompositeAlphaMode

	// SwapChainSizeMin and SwapChainSizeMax bound the swap chain image
	// count, inclusive.
	SwapChainSizeMin uint32
	SwapChainSizeMax uint32

	// Usage is the set of uses supported on the presentable images.
	Usage TextureUses

	// CurrentExtent is the surface's current size, or nil when unknown.
	CurrentExtent *types.Extent3D

	// ExtentMin and ExtentMax bound the valid surface size, inclusive.
	ExtentMin types.Extent3D
	ExtentMax types.Extent3D
}
