// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OptimisticPeach/wgpu"
	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/types"
)

// ErrProbe is wrapped by capability aggregation failures. A probe failure
// means the context cannot be exposed as an adapter at all; there is no
// partial or degraded descriptor.
var ErrProbe = errors.New("gles: capability probe failed")

// stringsThatImplyIntegrated are renderer substrings of devices known to
// be integrated. Matching is case-insensitive, first match wins; table
// order is meaningful.
var stringsThatImplyIntegrated = []string{
	" xpress", // space on purpose so we don't match express
	"radeon hd 4200",
	"radeon hd 4250",
	"radeon hd 4290",
	"radeon hd 4270",
	"radeon hd 4225",
	"radeon hd 3100",
	"radeon hd 3200",
	"radeon hd 3000",
	"radeon hd 3300",
	"radeon(tm) r4 graphics",
	"radeon(tm) r5 graphics",
	"radeon(tm) r6 graphics",
	"radeon(tm) r7 graphics",
	"radeon r7 graphics",
	"nforce", // all nvidia nforce are integrated
	"tegra",  // all nvidia tegra are integrated
	"shield", // all nvidia shield are integrated
	"igp",
	"mali",
	"intel",
}

// stringsThatImplyCPU are renderer substrings of software rasterizers.
var stringsThatImplyCPU = []string{"mesa offscreen", "swiftshader", "lavapipe"}

// vendorIDs maps vendor-name substrings to PCI vendor ids.
// Source: Sascha Willems' Vulkan hardware database. First match in table
// order wins; downstream feature gating keys off these ids, so the table
// is policy and must not be reordered.
var vendorIDs = []struct {
	substr string
	id     uint32
}{
	{"amd", 0x1002},
	{"imgtec", 0x1010},
	{"nvidia", 0x10DE},
	{"arm", 0x13B5},
	{"qualcomm", 0x5143},
	{"intel", 0x8086},
}

// makeAdapterInfo normalizes the raw vendor and renderer strings into an
// adapter identity. GL has no device-type query, so the type is inferred
// from the renderer string; the original renderer string is preserved as
// the display name.
func makeAdapterInfo(vendorOrig, rendererOrig string) types.AdapterInfo {
	vendor := strings.ToLower(vendorOrig)
	renderer := strings.ToLower(rendererOrig)

	deviceType := types.DeviceTypeDiscreteGPU
	switch {
	case strings.Contains(vendor, "qualcomm"),
		strings.Contains(vendor, "intel"),
		containsAny(renderer, stringsThatImplyIntegrated):
		deviceType = types.DeviceTypeIntegratedGPU
	case containsAny(renderer, stringsThatImplyCPU):
		deviceType = types.DeviceTypeCPU
	}

	var vendorID uint32
	for _, entry := range vendorIDs {
		if strings.Contains(vendor, entry.substr) {
			vendorID = entry.id
			break
		}
	}

	return types.AdapterInfo{
		Name:       rendererOrig,
		Vendor:     vendorID,
		Device:     0,
		DeviceType: deviceType,
		Backend:    types.BackendGL,
	}
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Expose probes a native context and aggregates its self-reported state
// into an adapter. It returns an error when the driver version or shading
// language version cannot be parsed, or when aggregation would produce an
// inconsistent descriptor (such as a zero buffer alignment).
//
// Expose must run on the thread owning the context. The returned
// adapter's capability data is immutable from here on.
func Expose(ctx Context) (*hal.ExposedAdapter, error) {
	logger := wgpu.Logger()

	vendor := ctx.GetParameterString(glVendor)
	renderer := ctx.GetParameterString(glRenderer)
	versionStr := ctx.GetParameterString(glVersion)
	logger.Info("gles: probing adapter",
		"vendor", vendor, "renderer", renderer, "version", versionStr)

	ver, err := parseVersion(versionStr)
	if err != nil {
		logger.Warn("gles: unusable driver version", "version", versionStr, "error", err)
		return nil, err
	}

	extensions := ctx.SupportedExtensions()
	logger.Debug("gles: extensions", "count", len(extensions))

	slVersionStr := ctx.GetParameterString(glShadingLanguageVersion)
	logger.Info("gles: shading language version", "version", slVersionStr)
	slVer, err := parseVersion(slVersionStr)
	if err != nil {
		logger.Warn("gles: unusable shading language version",
			"version", slVersionStr, "error", err)
		return nil, err
	}
	shadingLanguageVersion := glslVersion{
		value:    uint16(slVer.major)*100 + uint16(slVer.minor)*10,
		embedded: true,
	}

	es31 := ver.atLeast(3, 1)
	es32 := ver.atLeast(3, 2)

	// ETC2 is mandatory at the minimum supported API level.
	features := types.FeatureTextureCompressionETC2
	if extensions["GL_EXT_depth_clamp"] {
		features |= types.FeatureDepthClamping
	}
	if es31 {
		features |= types.FeatureVertexWritableStorage
	}

	// Guaranteed on every ES 3.0 driver.
	downlevelFlags := types.DownlevelFlagsDeviceLocalImageCopies |
		types.DownlevelFlagsNonPowerOfTwoMipmappedTextures |
		types.DownlevelFlagsCubeArrayTextures |
		types.DownlevelFlagsComparisonSamplers
	if es31 {
		downlevelFlags |= types.DownlevelFlagsComputeShaders
		downlevelFlags |= types.DownlevelFlagsFragmentWritableStorage
		downlevelFlags |= types.DownlevelFlagsIndirectExecution
	}
	// Positive base_vertex could be emulated like start_instance, but
	// negative offsets cannot, so the whole flag waits for ES 3.2.
	if es32 {
		downlevelFlags |= types.DownlevelFlagsBaseVertex
	}
	if es32 || extensions["GL_EXT_draw_buffers_indexed"] {
		downlevelFlags |= types.DownlevelFlagsIndependentBlending
	}

	maxTextureSize := uint32(ctx.GetParameterInt(glMaxTextureSize))
	maxTexture3DSize := uint32(ctx.GetParameterInt(glMax3DTextureSize))

	minUniformBufferOffsetAlignment := uint32(ctx.GetParameterInt(glUniformBufferOffsetAlignment))
	// The storage alignment query only exists from ES 3.1.
	minStorageBufferOffsetAlignment := uint32(256)
	if es31 {
		minStorageBufferOffsetAlignment = uint32(ctx.GetParameterInt(glShaderStorageBufferOffsetAlignment))
	}
	if minUniformBufferOffsetAlignment == 0 {
		return nil, fmt.Errorf("%w: driver reported zero uniform buffer offset alignment", ErrProbe)
	}
	if minStorageBufferOffsetAlignment == 0 {
		return nil, fmt.Errorf("%w: driver reported zero storage buffer offset alignment", ErrProbe)
	}

	// The portable per-stage limit is bounded by the weaker stage.
	maxUniformBuffersPerShaderStage := min(
		ctx.GetParameterInt(glMaxVertexUniformBlocks),
		ctx.GetParameterInt(glMaxFragmentUniformBlocks))
	maxStorageBuffersPerShaderStage := min(
		ctx.GetParameterInt(glMaxVertexShaderStorageBlocks),
		ctx.GetParameterInt(glMaxFragmentShaderStorageBlocks))
	maxStorageTexturesPerShaderStage := ctx.GetParameterInt(glMaxFragmentImageUniforms)

	maxStorageBufferBindingSize := uint32(0)
	if es31 {
		maxStorageBufferBindingSize = uint32(ctx.GetParameterInt(glMaxShaderStorageBlockSize))
	}

	limits := types.Limits{
		MaxTextureDimension1D: maxTextureSize,
		MaxTextureDimension2D: maxTextureSize,
		MaxTextureDimension3D: maxTexture3DSize,
		MaxTextureArrayLayers: uint32(ctx.GetParameterInt(glMaxArrayTextureLayers)),
		MaxBindGroups:         maxBindGroups,
		MaxDynamicUniformBuffersPerPipelineLayout: uint32(maxUniformBuffersPerShaderStage),
		MaxDynamicStorageBuffersPerPipelineLayout: uint32(maxStorageBuffersPerShaderStage),
		MaxSampledTexturesPerShaderStage:          maxTextureSlots,
		MaxSamplersPerShaderStage:                 maxSamplers,
		MaxStorageBuffersPerShaderStage:           uint32(maxStorageBuffersPerShaderStage),
		MaxStorageTexturesPerShaderStage:          uint32(maxStorageTexturesPerShaderStage),
		MaxUniformBuffersPerShaderStage:           uint32(maxUniformBuffersPerShaderStage),
		MaxUniformBufferBindingSize:               uint32(ctx.GetParameterInt(glMaxUniformBlockSize)),
		MaxStorageBufferBindingSize:               maxStorageBufferBindingSize,
		MaxVertexBuffers:                          min(uint32(ctx.GetParameterInt(glMaxVertexAttribBindings)), maxVertexBuffers),
		MaxVertexAttributes:                       min(uint32(ctx.GetParameterInt(glMaxVertexAttribs)), maxVertexAttributes),
		MaxVertexBufferArrayStride:                uint32(ctx.GetParameterInt(glMaxVertexAttribStride)),
		MaxPushConstantSize:                       0,
	}

	var privateCaps privateCapabilities
	if es31 {
		privateCaps |= privateShaderBindingLayout
		privateCaps |= privateMemoryBarriers
		privateCaps |= privateVertexBufferLayout
	}
	if extensions["GL_EXT_texture_shadow_lod"] {
		privateCaps |= privateShaderTextureShadowLod
	}

	return &hal.ExposedAdapter{
		Adapter: &Adapter{
			shared: &adapterShared{
				context:                ctx,
				features:               features,
				privateCaps:            privateCaps,
				shadingLanguageVersion: shadingLanguageVersion,
			},
		},
		Info:     makeAdapterInfo(vendor, renderer),
		Features: features,
		Capabilities: hal.Capabilities{
			Limits: limits,
			Downlevel: hal.DownlevelCapabilities{
				Flags:       downlevelFlags,
				ShaderModel: types.ShaderModel5,
			},
			Alignments: hal.Alignments{
				BufferCopyOffset:    4,
				BufferCopyPitch:     4,
				UniformBufferOffset: uint64(minUniformBufferOffsetAlignment),
				StorageBufferOffset: uint64(minStorageBufferOffsetAlignment),
			},
		},
	}, nil
}

// Open allocates the baseline objects every submission path relies on:
// a shared vertex array object (bound for the context's lifetime), a
// zero-filled buffer used as the source of clears and fills, and the two
// framebuffers the queue binds for draws and copies. Construction is
// all-or-nothing: any allocation failure rolls back the objects created
// so far and surfaces hal.ErrOutOfMemory.
func (a *Adapter) Open(features types.Features) (hal.OpenDevice, error) {
	if !a.shared.features.Contains(features) {
		return hal.OpenDevice{}, fmt.Errorf("%w: requested %#x, adapter exposes %#x",
			hal.ErrUnsupportedFeature, uint64(features), uint64(a.shared.features))
	}
	ctx := a.shared.context

	ctx.PixelStore(glUnpackAlignment, 1)
	ctx.PixelStore(glPackAlignment, 1)

	mainVAO, err := ctx.CreateVertexArray()
	if err != nil {
		return hal.OpenDevice{}, fmt.Errorf("%w: vertex array", hal.ErrOutOfMemory)
	}
	ctx.BindVertexArray(mainVAO)

	zeroBuffer, err := ctx.CreateBuffer()
	if err != nil {
		ctx.BindVertexArray(0)
		ctx.DeleteVertexArray(mainVAO)
		return hal.OpenDevice{}, fmt.Errorf("%w: zero buffer", hal.ErrOutOfMemory)
	}
	ctx.BindBuffer(glCopyReadBuffer, zeroBuffer)
	ctx.BufferData(glCopyReadBuffer, make([]byte, zeroBufferSize), glStaticDraw)

	drawFBO, err := ctx.CreateFramebuffer()
	if err != nil {
		ctx.DeleteBuffer(zeroBuffer)
		ctx.BindVertexArray(0)
		ctx.DeleteVertexArray(mainVAO)
		return hal.OpenDevice{}, fmt.Errorf("%w: draw framebuffer", hal.ErrOutOfMemory)
	}
	copyFBO, err := ctx.CreateFramebuffer()
	if err != nil {
		ctx.DeleteFramebuffer(drawFBO)
		ctx.DeleteBuffer(zeroBuffer)
		ctx.BindVertexArray(0)
		ctx.DeleteVertexArray(mainVAO)
		return hal.OpenDevice{}, fmt.Errorf("%w: copy framebuffer", hal.ErrOutOfMemory)
	}

	wgpu.Logger().Info("gles: device opened", "features", uint64(features))

	return hal.OpenDevice{
		Device: &Device{
			shared:  a.shared,
			mainVAO: mainVAO,
		},
		Queue: &Queue{
			shared:     a.shared,
			features:   features,
			drawFBO:    drawFBO,
			copyFBO:    copyFBO,
			zeroBuffer: zeroBuffer,
		},
	}, nil
}

// SurfaceCapabilities reports presentation support for a surface, or nil
// when the surface is not presentable. GL swap chains are fixed-function:
// two sRGB color formats, FIFO presentation, opaque composition, a
// double-buffered chain between 4x4 and 4096x4096 pixels, and images
// usable only as color targets.
func (a *Adapter) SurfaceCapabilities(surface hal.Surface) *hal.SurfaceCapabilities {
	if surface == nil || !surface.Presentable() {
		return nil
	}
	return &hal.SurfaceCapabilities{
		Formats: []types.TextureFormat{
			types.TextureFormatRGBA8UnormSrgb,
			types.TextureFormatBGRA8UnormSrgb,
		},
		PresentModes:        []types.PresentMode{types.PresentModeFifo},
		CompositeAlphaModes: []types.CompositeAlphaMode{types.CompositeAlphaModeOpaque},
		SwapChainSizeMin:    2,
		SwapChainSizeMax:    2,
		Usage:               hal.TextureUseColorTarget,
		CurrentExtent:       nil,
		ExtentMin:           types.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 1},
		ExtentMax:           types.Extent3D{Width: 4096, Height: 4096, DepthOrArrayLayers: 1},
	}
}
