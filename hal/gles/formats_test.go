// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"testing"

	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/types"
)

func probedAdapter(t *testing.T) *Adapter {
	t.Helper()
	exposed, err := Expose(newFakeContext("OpenGL ES 3.1"))
	if err != nil {
		t.Fatalf("Expose: %v", err)
	}
	return exposed.Adapter.(*Adapter)
}

// TestTextureFormatCapabilitiesTotal walks every defined format: the
// classification must be total and every format at least sampleable.
func TestTextureFormatCapabilitiesTotal(t *testing.T) {
	adapter := probedAdapter(t)

	for f := types.TextureFormat(1); f < types.TextureFormatCount; f++ {
		caps := adapter.TextureFormatCapabilities(f)
		if !caps.Contains(hal.FormatCapabilitySampled) {
			t.Errorf("%v: not sampleable (caps %#x)", f, uint32(caps))
		}
	}
}

// TestTextureFormatCapabilitiesCompressed verifies that compressed
// formats are sample-only.
func TestTextureFormatCapabilitiesCompressed(t *testing.T) {
	adapter := probedAdapter(t)

	want := hal.FormatCapabilitySampled | hal.FormatCapabilitySampledLinear
	for f := types.TextureFormat(1); f < types.TextureFormatCount; f++ {
		if !f.IsCompressed() {
			continue
		}
		if caps := adapter.TextureFormatCapabilities(f); caps != want {
			t.Errorf("%v: caps = %#x, want sampled+filterable only", f, uint32(caps))
		}
	}
}

// TestTextureFormatCapabilitiesTiers spot-checks each tier of the
// classification.
func TestTextureFormatCapabilitiesTiers(t *testing.T) {
	adapter := probedAdapter(t)

	unfiltered := hal.FormatCapabilitySampled | hal.FormatCapabilityColorAttachment
	filtered := unfiltered | hal.FormatCapabilitySampledLinear | hal.FormatCapabilityColorAttachmentBlend
	depth := hal.FormatCapabilitySampled | hal.FormatCapabilityDepthStencilAttachment

	tests := []struct {
		format types.TextureFormat
		want   hal.TextureFormatCapabilities
	}{
		{types.TextureFormatR8Unorm, filtered},
		{types.TextureFormatR8Uint, unfiltered},
		{types.TextureFormatR32Float, unfiltered}, // float32 filtering needs an extension
		{types.TextureFormatR32Uint, unfiltered | hal.FormatCapabilityStorage},
		{types.TextureFormatRGBA8Unorm, filtered | hal.FormatCapabilityStorage},
		{types.TextureFormatBGRA8Unorm, filtered}, // no BGRA storage images in GLES
		{types.TextureFormatRGBA16Float, filtered | hal.FormatCapabilityStorage},
		{types.TextureFormatRGBA32Float, unfiltered | hal.FormatCapabilityStorage},
		{types.TextureFormatDepth32Float, depth},
		{types.TextureFormatDepth24PlusStencil8, depth},
	}
	for _, tt := range tests {
		if got := adapter.TextureFormatCapabilities(tt.format); got != tt.want {
			t.Errorf("%v: caps = %#x, want %#x", tt.format, uint32(got), uint32(tt.want))
		}
	}
}

// TestTextureFormatCapabilitiesUndefined verifies the programming-error
// contract for formats outside the defined range.
func TestTextureFormatCapabilitiesUndefined(t *testing.T) {
	adapter := probedAdapter(t)

	defer func() {
		if recover() == nil {
			t.Error("undefined format did not panic")
		}
	}()
	adapter.TextureFormatCapabilities(types.TextureFormatUndefined)
}
