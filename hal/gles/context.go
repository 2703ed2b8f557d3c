// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

// GL constants used by the probe and bootstrap paths. Values are from the
// OpenGL ES 3.2 headers.
const (
	glVendor                             = 0x1F00
	glRenderer                           = 0x1F01
	glVersion                            = 0x1F02
	glShadingLanguageVersion             = 0x8B8C
	glMaxTextureSize                     = 0x0D33
	glMax3DTextureSize                   = 0x8073
	glMaxArrayTextureLayers              = 0x88FF
	glMaxUniformBlockSize                = 0x8A30
	glMaxShaderStorageBlockSize          = 0x90DE
	glUniformBufferOffsetAlignment       = 0x8A34
	glShaderStorageBufferOffsetAlignment = 0x90DF
	glMaxVertexUniformBlocks             = 0x8A2B
	glMaxFragmentUniformBlocks           = 0x8A2D
	glMaxVertexShaderStorageBlocks       = 0x90D6
	glMaxFragmentShaderStorageBlocks     = 0x90DA
	glMaxFragmentImageUniforms           = 0x90CE
	glMaxVertexAttribBindings            = 0x82DA
	glMaxVertexAttribs                   = 0x8869
	glMaxVertexAttribStride              = 0x82E5
	glUnpackAlignment                    = 0x0CF5
	glPackAlignment                      = 0x0D05
	glCopyReadBuffer                     = 0x8F36
	glStaticDraw                         = 0x88E4
)

// Native object handles. Zero is never a valid handle returned by a
// successful creation call.
type (
	// VertexArray is a native vertex array object name.
	VertexArray uint32

	// Buffer is a native buffer object name.
	Buffer uint32

	// Framebuffer is a native framebuffer object name.
	Framebuffer uint32
)

// Context is the call surface this backend requires from a native GL ES
// context. Window-system integration and function loading live behind it;
// the backend treats it as an opaque query/command interface.
//
// A Context is bound to the thread that created it. All backend
// operations happen on that thread; Context implementations do not need
// to be safe for concurrent use.
type Context interface {
	// GetParameterString queries a string parameter such as glVendor.
	GetParameterString(pname uint32) string

	// GetParameterInt queries an integer parameter such as
	// glMaxTextureSize.
	GetParameterInt(pname uint32) int

	// SupportedExtensions returns the extension names the driver
	// reports. The backend treats the map as read-only after capture.
	SupportedExtensions() map[string]bool

	// CreateVertexArray creates a vertex array object.
	// Returns hal.ErrOutOfMemory-compatible failure via a non-nil error.
	CreateVertexArray() (VertexArray, error)

	// BindVertexArray binds a vertex array object. Zero unbinds.
	BindVertexArray(va VertexArray)

	// DeleteVertexArray deletes a vertex array object.
	DeleteVertexArray(va VertexArray)

	// CreateBuffer creates a buffer object.
	CreateBuffer() (Buffer, error)

	// BindBuffer binds a buffer to a target such as glCopyReadBuffer.
	// A zero buffer unbinds the target.
	BindBuffer(target uint32, buf Buffer)

	// BufferData allocates and fills the buffer bound to target.
	BufferData(target uint32, data []byte, usage uint32)

	// DeleteBuffer deletes a buffer object.
	DeleteBuffer(buf Buffer)

	// CreateFramebuffer creates a framebuffer object.
	CreateFramebuffer() (Framebuffer, error)

	// DeleteFramebuffer deletes a framebuffer object.
	DeleteFramebuffer(fb Framebuffer)

	// PixelStore sets a pixel storage parameter such as glUnpackAlignment.
	PixelStore(pname uint32, value int32)
}
