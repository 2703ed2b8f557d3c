// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package types

// Limits is the set of numeric limits an adapter guarantees. Every field
// is a maximum unless noted otherwise. A device opened against an adapter
// may rely on these values without re-querying the driver.
type Limits struct {
	// MaxTextureDimension1D is the maximum width of a 1D texture.
	MaxTextureDimension1D uint32

	// MaxTextureDimension2D is the maximum width/height of a 2D texture.
	MaxTextureDimension2D uint32

	// MaxTextureDimension3D is the maximum extent of a 3D texture.
	MaxTextureDimension3D uint32

	// MaxTextureArrayLayers is the maximum layer count of an array texture.
	MaxTextureArrayLayers uint32

	// MaxBindGroups is the maximum number of bind groups in a pipeline
	// layout.
	MaxBindGroups uint32

	// MaxDynamicUniformBuffersPerPipelineLayout bounds dynamic uniform
	// buffer bindings across a pipeline layout.
	MaxDynamicUniformBuffersPerPipelineLayout uint32

	// MaxDynamicStorageBuffersPerPipelineLayout bounds dynamic storage
	// buffer bindings across a pipeline layout.
	MaxDynamicStorageBuffersPerPipelineLayout uint32

	// MaxSampledTexturesPerShaderStage bounds sampled texture bindings
	// visible to a single shader stage.
	MaxSampledTexturesPerShaderStage uint32

	// MaxSamplersPerShaderStage bounds sampler bindings visible to a
	// single shader stage.
	MaxSamplersPerShaderStage uint32

	// MaxStorageBuffersPerShaderStage bounds storage buffer bindings
	// visible to a single shader stage.
	MaxStorageBuffersPerShaderStage uint32

	// MaxStorageTexturesPerShaderStage bounds storage texture bindings
	// visible to a single shader stage.
	MaxStorageTexturesPerShaderStage uint32

	// MaxUniformBuffersPerShaderStage bounds uniform buffer bindings
	// visible to a single shader stage.
	MaxUniformBuffersPerShaderStage uint32

	// MaxUniformBufferBindingSize is the maximum size of a single uniform
	// buffer binding, in bytes.
	MaxUniformBufferBindingSize uint32

	// MaxStorageBufferBindingSize is the maximum size of a single storage
	// buffer binding, in bytes. Zero when storage buffers are unsupported.
	MaxStorageBufferBindingSize uint32

	// MaxVertexBuffers is the maximum number of vertex buffer bindings.
	MaxVertexBuffers uint32

	// MaxVertexAttributes is the maximum number of vertex attributes.
	MaxVertexAttributes uint32

	// MaxVertexBufferArrayStride is the maximum stride between elements
	// of a vertex buffer, in bytes.
	MaxVertexBufferArrayStride uint32

	// MaxPushConstantSize is the maximum push constant range, in bytes.
	// Zero when push constants are unsupported.
	MaxPushConstantSize uint32
}

// DefaultLimits returns the limits guaranteed by a fully WebGPU-capable
// adapter. Backends report at least these values unless the hardware
// cannot provide them, in which case the probed limits are lower and the
// adapter is downlevel.
func DefaultLimits() Limits {
	return Limits{
		MaxTextureDimension1D:                     8192,
		MaxTextureDimension2D:                     8192,
		MaxTextureDimension3D:                     2048,
		MaxTextureArrayLayers:                     256,
		MaxBindGroups:                             4,
		MaxDynamicUniformBuffersPerPipelineLayout: 8,
		MaxDynamicStorageBuffersPerPipelineLayout: 4,
		MaxSampledTexturesPerShaderStage:          16,
		MaxSamplersPerShaderStage:                 16,
		MaxStorageBuffersPerShaderStage:           8,
		MaxStorageTexturesPerShaderStage:          4,
		MaxUniformBuffersPerShaderStage:           12,
		MaxUniformBufferBindingSize:               65536,
		MaxStorageBufferBindingSize:               134217728,
		MaxVertexBuffers:                          8,
		MaxVertexAttributes:                       16,
		MaxVertexBufferArrayStride:                2048,
		MaxPushConstantSize:                       0,
	}
}
