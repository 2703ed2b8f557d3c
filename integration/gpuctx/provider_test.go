// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gpuctx

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/hal/gles"
	"github.com/OptimisticPeach/wgpu/types"
)

// fakeGL implements gles.Context with canned ES 3.1 answers. Parameter
// keys are the public GL enum values.
type fakeGL struct {
	nextName uint32
	live     int
}

var fakeStrings = map[uint32]string{
	0x1F00: "Test Vendor",            // VENDOR
	0x1F01: "Test Renderer 1000",     // RENDERER
	0x1F02: "OpenGL ES 3.1",          // VERSION
	0x8B8C: "OpenGL ES GLSL ES 3.10", // SHADING_LANGUAGE_VERSION
}

var fakeInts = map[uint32]int{
	0x0D33: 8192,    // MAX_TEXTURE_SIZE
	0x8073: 2048,    // MAX_3D_TEXTURE_SIZE
	0x88FF: 256,     // MAX_ARRAY_TEXTURE_LAYERS
	0x8A30: 65536,   // MAX_UNIFORM_BLOCK_SIZE
	0x90DE: 1 << 27, // MAX_SHADER_STORAGE_BLOCK_SIZE
	0x8A34: 256,     // UNIFORM_BUFFER_OFFSET_ALIGNMENT
	0x90DF: 256,     // SHADER_STORAGE_BUFFER_OFFSET_ALIGNMENT
	0x8A2B: 12,      // MAX_VERTEX_UNIFORM_BLOCKS
	0x8A2D: 14,      // MAX_FRAGMENT_UNIFORM_BLOCKS
	0x90D6: 8,       // MAX_VERTEX_SHADER_STORAGE_BLOCKS
	0x90DA: 4,       // MAX_FRAGMENT_SHADER_STORAGE_BLOCKS
	0x90CE: 4,       // MAX_FRAGMENT_IMAGE_UNIFORMS
	0x82DA: 16,      // MAX_VERTEX_ATTRIB_BINDINGS
	0x8869: 32,      // MAX_VERTEX_ATTRIBS
	0x82E5: 2048,    // MAX_VERTEX_ATTRIB_STRIDE
}

func (f *fakeGL) GetParameterString(pname uint32) string { return fakeStrings[pname] }
func (f *fakeGL) GetParameterInt(pname uint32) int       { return fakeInts[pname] }
func (f *fakeGL) SupportedExtensions() map[string]bool   { return nil }

func (f *fakeGL) alloc() uint32 {
	f.nextName++
	f.live++
	return f.nextName
}

func (f *fakeGL) CreateVertexArray() (gles.VertexArray, error) {
	return gles.VertexArray(f.alloc()), nil
}
func (f *fakeGL) BindVertexArray(gles.VertexArray)       {}
func (f *fakeGL) DeleteVertexArray(gles.VertexArray)     { f.live-- }
func (f *fakeGL) CreateBuffer() (gles.Buffer, error)     { return gles.Buffer(f.alloc()), nil }
func (f *fakeGL) BindBuffer(uint32, gles.Buffer)         {}
func (f *fakeGL) BufferData(uint32, []byte, uint32)      {}
func (f *fakeGL) DeleteBuffer(gles.Buffer)               { f.live-- }
func (f *fakeGL) CreateFramebuffer() (gles.Framebuffer, error) {
	return gles.Framebuffer(f.alloc()), nil
}
func (f *fakeGL) DeleteFramebuffer(gles.Framebuffer) { f.live-- }
func (f *fakeGL) PixelStore(uint32, int32)           {}

func exposeFake(t *testing.T) (*fakeGL, *hal.ExposedAdapter) {
	t.Helper()
	ctx := &fakeGL{}
	exposed, err := gles.Expose(ctx)
	if err != nil {
		t.Fatalf("Expose: %v", err)
	}
	return ctx, exposed
}

func TestNewProvider(t *testing.T) {
	_, exposed := exposeFake(t)

	p, err := New(exposed, 0, gles.NewSurface(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	if p.Device() == nil {
		t.Error("Device() = nil")
	}
	if p.Queue() == nil {
		t.Error("Queue() = nil")
	}
	if p.Adapter() == nil {
		t.Error("Adapter() = nil")
	}
	// The sRGB surface format maps to its base unorm format.
	if got := p.SurfaceFormat(); got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("SurfaceFormat = %v, want RGBA8Unorm", got)
	}
	if got := p.Info().Name; got != "Test Renderer 1000" {
		t.Errorf("Info().Name = %q, want the probed renderer", got)
	}

	// Poll must be callable in a render loop without side effects.
	p.Device().(*deviceHandle).Poll(false)
	p.Device().(*deviceHandle).Poll(true)
}

func TestNewProviderNoSurface(t *testing.T) {
	_, exposed := exposeFake(t)

	p, err := New(exposed, 0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	if got := p.SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat = %v, want Undefined without a surface", got)
	}
}

func TestNewProviderErrors(t *testing.T) {
	if _, err := New(nil, 0, nil); !errors.Is(err, ErrNilAdapter) {
		t.Errorf("New(nil) error = %v, want ErrNilAdapter", err)
	}

	ctx, exposed := exposeFake(t)
	_, err := New(exposed, types.FeaturePushConstants, nil)
	if !errors.Is(err, hal.ErrUnsupportedFeature) {
		t.Errorf("New error = %v, want ErrUnsupportedFeature", err)
	}
	if ctx.live != 0 {
		t.Errorf("failed New leaked %d objects", ctx.live)
	}
}

func TestProviderClose(t *testing.T) {
	ctx, exposed := exposeFake(t)

	p, err := New(exposed, 0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ctx.live == 0 {
		t.Fatal("open allocated no objects")
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if ctx.live != 0 {
		t.Errorf("%d objects survived Close", ctx.live)
	}
	if p.Device() != nil || p.Queue() != nil || p.Adapter() != nil {
		t.Error("closed provider still hands out handles")
	}

	// Idempotent.
	if err := p.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestContextTextureFormat(t *testing.T) {
	tests := []struct {
		in   types.TextureFormat
		want gputypes.TextureFormat
	}{
		{types.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8Unorm},
		{types.TextureFormatRGBA8UnormSrgb, gputypes.TextureFormatRGBA8Unorm},
		{types.TextureFormatBGRA8UnormSrgb, gputypes.TextureFormatBGRA8Unorm},
		{types.TextureFormatR8Unorm, gputypes.TextureFormatR8Unorm},
		{types.TextureFormatDepth24PlusStencil8, gputypes.TextureFormatDepth24PlusStencil8},
		{types.TextureFormatRG11B10Float, gputypes.TextureFormatUndefined},
	}
	for _, tt := range tests {
		if got := contextTextureFormat(tt.in); got != tt.want {
			t.Errorf("contextTextureFormat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
