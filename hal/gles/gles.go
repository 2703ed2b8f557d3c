// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

// Package gles implements the hal backend for OpenGL ES 3.x, including
// WebGL 2 contexts.
//
// GL reports its state as loosely formatted strings (version, vendor,
// renderer), an extension name set, and raw integer queries. This package
// normalizes all of that into the portable hal capability descriptor at
// probe time; nothing downstream re-queries the driver.
//
// The native context itself is out of scope: callers hand the backend a
// Context implementation (EGL, WGL, WebGL glue) and the backend only
// issues queries and fixed-size allocations through it. All calls must
// happen on the thread owning the native context.
package gles

import (
	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/types"
)

// Architectural limits of the backend, independent of what the driver
// reports.
const (
	// maxTextureSlots is the number of sampled texture slots the command
	// encoder manages per stage.
	maxTextureSlots = 16

	// maxSamplers is the number of sampler slots the command encoder
	// manages per stage.
	maxSamplers = 16

	// maxVertexAttributes is the number of vertex attributes the vertex
	// state tracker supports.
	maxVertexAttributes = 16

	// maxVertexBuffers is the number of vertex buffer bindings the
	// vertex state tracker supports.
	maxVertexBuffers = 16

	// maxBindGroups is the number of bind groups a pipeline layout may
	// use on this backend.
	maxBindGroups = 8

	// zeroBufferSize is the size of the shared zero-filled buffer used
	// as the source for buffer clears and fills.
	zeroBufferSize = 256 << 10
)

func init() {
	hal.RegisterBackend(API{})
}

// privateCapabilities select internal code paths. They are probed
// alongside the public capabilities but never exposed to applications.
type privateCapabilities uint32

const (
	// privateShaderBindingLayout marks support for explicit binding
	// layout qualifiers in shaders (ES 3.1).
	privateShaderBindingLayout privateCapabilities = 1 << iota

	// privateShaderTextureShadowLod marks support for
	// GL_EXT_texture_shadow_lod.
	privateShaderTextureShadowLod

	// privateMemoryBarriers marks glMemoryBarrier availability (ES 3.1).
	privateMemoryBarriers

	// privateVertexBufferLayout marks support for separate vertex buffer
	// bindings via glBindVertexBuffer (ES 3.1).
	privateVertexBufferLayout
)

// contains reports whether every bit in other is set in p.
func (p privateCapabilities) contains(other privateCapabilities) bool {
	return p&other == other
}

// glslVersion is the shading language version the backend emits shaders
// for, in the GLSL #version encoding (e.g. 310 for ES 3.1).
type glslVersion struct {
	value uint16

	// embedded distinguishes the ES dialect from desktop GLSL.
	embedded bool
}

// adapterShared is the probe-time state shared read-only by the adapter,
// its device, and its queue. The longest-lived of the three keeps it
// reachable; nothing mutates it after Expose returns.
type adapterShared struct {
	context                Context
	features               types.Features
	privateCaps            privateCapabilities
	shadingLanguageVersion glslVersion
}

// Adapter is a probed GL context exposed through the hal interfaces.
type Adapter struct {
	shared *adapterShared
}

var _ hal.Adapter = (*Adapter)(nil)

// Surface is a presentation target. Window-system glue constructs it;
// the backend only reads the presentable flag.
type Surface struct {
	presentable bool
}

// NewSurface wraps a window-system target. presentable reports whether
// the target can be presented to (an offscreen pbuffer cannot).
func NewSurface(presentable bool) *Surface {
	return &Surface{presentable: presentable}
}

// Presentable reports whether the surface can be presented to.
func (s *Surface) Presentable() bool { return s.presentable }

var _ hal.Surface = (*Surface)(nil)
