// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

// fakeContext implements Context for testing. It answers queries from
// fixed maps, tracks live objects, and can be told to fail specific
// allocation calls.
type fakeContext struct {
	strings    map[uint32]string
	ints       map[uint32]int
	extensions map[string]bool

	// Allocation failure injection. failFramebufferAt fails the n-th
	// CreateFramebuffer call (1-based); zero means never fail.
	failVertexArray   bool
	failBuffer        bool
	failFramebufferAt int

	nextName          uint32
	framebufferCalls  int
	liveVertexArrays  map[VertexArray]bool
	liveBuffers       map[Buffer]bool
	liveFramebuffers  map[Framebuffer]bool
	boundVertexArray  VertexArray
	boundBuffers      map[uint32]Buffer
	lastBufferDataLen int
	lastBufferUsage   uint32
	pixelStore        map[uint32]int32
}

// errAlloc stands in for a native out-of-memory signal.
type errAlloc struct{}

func (errAlloc) Error() string { return "allocation failed" }

// newFakeContext builds a context reporting the given version string and
// a plausible set of ES 3.x limits.
func newFakeContext(version string) *fakeContext {
	return &fakeContext{
		strings: map[uint32]string{
			glVendor:                 "Test Vendor",
			glRenderer:               "Test Renderer 1000",
			glVersion:                version,
			glShadingLanguageVersion: "OpenGL ES GLSL ES 3.10",
		},
		ints: map[uint32]int{
			glMaxTextureSize:                     8192,
			glMax3DTextureSize:                   2048,
			glMaxArrayTextureLayers:              256,
			glMaxUniformBlockSize:                65536,
			glMaxShaderStorageBlockSize:          1 << 27,
			glUniformBufferOffsetAlignment:       256,
			glShaderStorageBufferOffsetAlignment: 256,
			glMaxVertexUniformBlocks:             12,
			glMaxFragmentUniformBlocks:           14,
			glMaxVertexShaderStorageBlocks:       8,
			glMaxFragmentShaderStorageBlocks:     4,
			glMaxFragmentImageUniforms:           4,
			glMaxVertexAttribBindings:            16,
			glMaxVertexAttribs:                   32,
			glMaxVertexAttribStride:              2048,
		},
		extensions:       map[string]bool{},
		liveVertexArrays: map[VertexArray]bool{},
		liveBuffers:      map[Buffer]bool{},
		liveFramebuffers: map[Framebuffer]bool{},
		boundBuffers:     map[uint32]Buffer{},
		pixelStore:       map[uint32]int32{},
	}
}

func (c *fakeContext) GetParameterString(pname uint32) string { return c.strings[pname] }

func (c *fakeContext) GetParameterInt(pname uint32) int { return c.ints[pname] }

func (c *fakeContext) SupportedExtensions() map[string]bool { return c.extensions }

func (c *fakeContext) CreateVertexArray() (VertexArray, error) {
	if c.failVertexArray {
		return 0, errAlloc{}
	}
	c.nextName++
	va := VertexArray(c.nextName)
	c.liveVertexArrays[va] = true
	return va, nil
}

func (c *fakeContext) BindVertexArray(va VertexArray) { c.boundVertexArray = va }

func (c *fakeContext) DeleteVertexArray(va VertexArray) { delete(c.liveVertexArrays, va) }

func (c *fakeContext) CreateBuffer() (Buffer, error) {
	if c.failBuffer {
		return 0, errAlloc{}
	}
	c.nextName++
	buf := Buffer(c.nextName)
	c.liveBuffers[buf] = true
	return buf, nil
}

func (c *fakeContext) BindBuffer(target uint32, buf Buffer) { c.boundBuffers[target] = buf }

func (c *fakeContext) BufferData(target uint32, data []byte, usage uint32) {
	c.lastBufferDataLen = len(data)
	c.lastBufferUsage = usage
}

func (c *fakeContext) DeleteBuffer(buf Buffer) { delete(c.liveBuffers, buf) }

func (c *fakeContext) CreateFramebuffer() (Framebuffer, error) {
	c.framebufferCalls++
	if c.failFramebufferAt != 0 && c.framebufferCalls >= c.failFramebufferAt {
		return 0, errAlloc{}
	}
	c.nextName++
	fb := Framebuffer(c.nextName)
	c.liveFramebuffers[fb] = true
	return fb, nil
}

func (c *fakeContext) DeleteFramebuffer(fb Framebuffer) { delete(c.liveFramebuffers, fb) }

func (c *fakeContext) PixelStore(pname uint32, value int32) { c.pixelStore[pname] = value }

// liveObjects counts every object the context still considers alive.
func (c *fakeContext) liveObjects() int {
	return len(c.liveVertexArrays) + len(c.liveBuffers) + len(c.liveFramebuffers)
}
