package main

import "github.com/OptimisticPeach/wgpu/hal/gles"

// driverReport is the JSON shape of a captured driver. Limits are keyed
// by the snake_case names below; anything missing falls back to a
// plausible default so partial captures still replay.
type driverReport struct {
	Vendor                 string         `json:"vendor"`
	Renderer               string         `json:"renderer"`
	Version                string         `json:"version"`
	ShadingLanguageVersion string         `json:"shading_language_version"`
	Extensions             []string       `json:"extensions"`
	Limits                 map[string]int `json:"limits"`
}

// limitKeys maps GL parameter enums to report keys and replay defaults.
var limitKeys = map[uint32]struct {
	key string
	def int
}{
	0x0D33: {"max_texture_size", 8192},
	0x8073: {"max_3d_texture_size", 2048},
	0x88FF: {"max_array_texture_layers", 256},
	0x8A30: {"max_uniform_block_size", 65536},
	0x90DE: {"max_shader_storage_block_size", 1 << 27},
	0x8A34: {"uniform_buffer_offset_alignment", 256},
	0x90DF: {"shader_storage_buffer_offset_alignment", 256},
	0x8A2B: {"max_vertex_uniform_blocks", 12},
	0x8A2D: {"max_fragment_uniform_blocks", 12},
	0x90D6: {"max_vertex_shader_storage_blocks", 4},
	0x90DA: {"max_fragment_shader_storage_blocks", 4},
	0x90CE: {"max_fragment_image_uniforms", 4},
	0x82DA: {"max_vertex_attrib_bindings", 16},
	0x8869: {"max_vertex_attribs", 16},
	0x82E5: {"max_vertex_attrib_stride", 2048},
}

// replayContext implements gles.Context against a driver report. The
// allocation methods exist to satisfy the interface; the probe only
// issues queries.
type replayContext struct {
	report     *driverReport
	extensions map[string]bool
	nextName   uint32
}

func newReplayContext(report *driverReport) *replayContext {
	extensions := make(map[string]bool, len(report.Extensions))
	for _, ext := range report.Extensions {
		extensions[ext] = true
	}
	return &replayContext{report: report, extensions: extensions}
}

func (c *replayContext) GetParameterString(pname uint32) string {
	switch pname {
	case 0x1F00: // VENDOR
		return c.report.Vendor
	case 0x1F01: // RENDERER
		return c.report.Renderer
	case 0x1F02: // VERSION
		return c.report.Version
	case 0x8B8C: // SHADING_LANGUAGE_VERSION
		return c.report.ShadingLanguageVersion
	}
	return ""
}

func (c *replayContext) GetParameterInt(pname uint32) int {
	entry, ok := limitKeys[pname]
	if !ok {
		return 0
	}
	if v, ok := c.report.Limits[entry.key]; ok {
		return v
	}
	return entry.def
}

func (c *replayContext) SupportedExtensions() map[string]bool { return c.extensions }

func (c *replayContext) alloc() uint32 {
	c.nextName++
	return c.nextName
}

func (c *replayContext) CreateVertexArray() (gles.VertexArray, error) {
	return gles.VertexArray(c.alloc()), nil
}
func (c *replayContext) BindVertexArray(gles.VertexArray)   {}
func (c *replayContext) DeleteVertexArray(gles.VertexArray) {}
func (c *replayContext) CreateBuffer() (gles.Buffer, error) { return gles.Buffer(c.alloc()), nil }
func (c *replayContext) BindBuffer(uint32, gles.Buffer)     {}
func (c *replayContext) BufferData(uint32, []byte, uint32)  {}
func (c *replayContext) DeleteBuffer(gles.Buffer)           {}
func (c *replayContext) CreateFramebuffer() (gles.Framebuffer, error) {
	return gles.Framebuffer(c.alloc()), nil
}
func (c *replayContext) DeleteFramebuffer(gles.Framebuffer) {}
func (c *replayContext) PixelStore(uint32, int32)           {}
