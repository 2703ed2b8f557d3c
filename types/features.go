// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"strings"
)

// Features is a bitset of optional capabilities an adapter may expose.
// Features are reported by the adapter at probe time and requested by
// the application at device-open time; requesting a feature the adapter
// did not report is an error.
type Features uint64

// Feature bits.
const (
	// FeatureDepthClamping allows disabling depth clipping in favor of
	// clamping fragments to the depth range.
	FeatureDepthClamping Features = 1 << iota

	// FeatureTextureCompressionBC enables the BC1-BC7 block-compressed
	// formats. Desktop-only; never reported by the GLES backend.
	FeatureTextureCompressionBC

	// FeatureTextureCompressionETC2 enables the ETC2/EAC compressed
	// formats. Guaranteed on GLES 3.0 and up.
	FeatureTextureCompressionETC2

	// FeatureTextureCompressionASTC enables the ASTC LDR formats.
	FeatureTextureCompressionASTC

	// FeaturePipelineStatisticsQuery enables pipeline statistics queries.
	FeaturePipelineStatisticsQuery

	// FeatureTimestampQuery enables timestamp queries.
	FeatureTimestampQuery

	// FeatureVertexWritableStorage allows vertex shaders to write to
	// storage buffers and storage textures.
	FeatureVertexWritableStorage

	// FeaturePushConstants enables push constant uploads.
	FeaturePushConstants
)

// Contains reports whether every bit in other is set in f.
func (f Features) Contains(other Features) bool {
	return f&other == other
}

var featureNames = []struct {
	bit  Features
	name string
}{
	{FeatureDepthClamping, "DepthClamping"},
	{FeatureTextureCompressionBC, "TextureCompressionBC"},
	{FeatureTextureCompressionETC2, "TextureCompressionETC2"},
	{FeatureTextureCompressionASTC, "TextureCompressionASTC"},
	{FeaturePipelineStatisticsQuery, "PipelineStatisticsQuery"},
	{FeatureTimestampQuery, "TimestampQuery"},
	{FeatureVertexWritableStorage, "VertexWritableStorage"},
	{FeaturePushConstants, "PushConstants"},
}

// String returns the set feature names joined by "|", or "none".
func (f Features) String() string {
	var names []string
	for _, entry := range featureNames {
		if f&entry.bit != 0 {
			names = append(names, entry.name)
			f &^= entry.bit
		}
	}
	if f != 0 {
		names = append(names, fmt.Sprintf("%#x", uint64(f)))
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// DownlevelFlags is a bitset of functionality that a fully WebGPU-capable
// adapter guarantees but downlevel APIs (GL, D3D11) may lack. A missing
// bit means the feature must not be used on this adapter.
type DownlevelFlags uint32

// Downlevel capability bits.
const (
	// DownlevelFlagsComputeShaders marks compute shader support.
	DownlevelFlagsComputeShaders DownlevelFlags = 1 << iota

	// DownlevelFlagsFragmentWritableStorage allows fragment shaders to
	// write to storage buffers and storage textures.
	DownlevelFlagsFragmentWritableStorage

	// DownlevelFlagsIndirectExecution marks indirect draw/dispatch support.
	DownlevelFlagsIndirectExecution

	// DownlevelFlagsBaseVertex marks support for the base-vertex draw
	// parameter.
	DownlevelFlagsBaseVertex

	// DownlevelFlagsIndependentBlending allows distinct blend state per
	// color target.
	DownlevelFlagsIndependentBlending

	// DownlevelFlagsDeviceLocalImageCopies marks support for copies
	// between device-local images.
	DownlevelFlagsDeviceLocalImageCopies

	// DownlevelFlagsNonPowerOfTwoMipmappedTextures marks support for
	// mipmaps on textures with non-power-of-two dimensions.
	DownlevelFlagsNonPowerOfTwoMipmappedTextures

	// DownlevelFlagsCubeArrayTextures marks cube array texture support.
	DownlevelFlagsCubeArrayTextures

	// DownlevelFlagsComparisonSamplers marks comparison sampler support.
	DownlevelFlagsComparisonSamplers
)

// Contains reports whether every bit in other is set in d.
func (d DownlevelFlags) Contains(other DownlevelFlags) bool {
	return d&other == other
}

var downlevelFlagNames = []struct {
	bit  DownlevelFlags
	name string
}{
	{DownlevelFlagsComputeShaders, "ComputeShaders"},
	{DownlevelFlagsFragmentWritableStorage, "FragmentWritableStorage"},
	{DownlevelFlagsIndirectExecution, "IndirectExecution"},
	{DownlevelFlagsBaseVertex, "BaseVertex"},
	{DownlevelFlagsIndependentBlending, "IndependentBlending"},
	{DownlevelFlagsDeviceLocalImageCopies, "DeviceLocalImageCopies"},
	{DownlevelFlagsNonPowerOfTwoMipmappedTextures, "NonPowerOfTwoMipmappedTextures"},
	{DownlevelFlagsCubeArrayTextures, "CubeArrayTextures"},
	{DownlevelFlagsComparisonSamplers, "ComparisonSamplers"},
}

// String returns the set flag names joined by "|", or "none".
func (d DownlevelFlags) String() string {
	var names []string
	for _, entry := range downlevelFlagNames {
		if d&entry.bit != 0 {
			names = append(names, entry.name)
			d &^= entry.bit
		}
	}
	if d != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(d)))
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
