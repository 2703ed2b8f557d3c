// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/OptimisticPeach/wgpu/hal"
)

// Shader errors.
var (
	// ErrEmptyShaderSource is returned when a shader module descriptor
	// carries neither WGSL nor SPIR-V.
	ErrEmptyShaderSource = errors.New("gles: empty shader source")
)

// Device creates GPU resources on an opened adapter. It owns the shared
// vertex array object that stays bound for the context's lifetime.
//
// A Device must only be used from the thread owning the native context.
type Device struct {
	shared  *adapterShared
	mainVAO VertexArray
}

var _ hal.Device = (*Device)(nil)

// ShaderModule is a validated shader held until pipeline linking, when it
// is translated to the adapter's GLSL dialect.
type ShaderModule struct {
	label string

	// wgsl is the original source; kept because GLSL generation happens
	// per pipeline, against the probed shading language version.
	wgsl string

	// spirv is the validated intermediate form.
	spirv []uint32
}

// Label returns the debug label the module was created with.
func (m *ShaderModule) Label() string { return m.label }

var _ hal.ShaderModule = (*ShaderModule)(nil)

// CreateShaderModule validates a shader source and wraps it for later
// translation. WGSL sources are run through the naga compiler so that
// invalid shaders fail at module creation, not at pipeline creation.
func (d *Device) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	switch {
	case desc.Source.WGSL != "":
		spirvBytes, err := naga.Compile(desc.Source.WGSL)
		if err != nil {
			return nil, fmt.Errorf("gles: shader %q: %w", desc.Label, err)
		}
		return &ShaderModule{
			label: desc.Label,
			wgsl:  desc.Source.WGSL,
			spirv: spirvWords(spirvBytes),
		}, nil
	case len(desc.Source.SPIRV) != 0:
		return &ShaderModule{
			label: desc.Label,
			spirv: desc.Source.SPIRV,
		}, nil
	default:
		return nil, ErrEmptyShaderSource
	}
}

// spirvWords reassembles little-endian SPIR-V bytes into 32-bit words.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words
}

// Destroy unbinds and deletes the shared vertex array object.
func (d *Device) Destroy() {
	ctx := d.shared.context
	ctx.BindVertexArray(0)
	ctx.DeleteVertexArray(d.mainVAO)
}
