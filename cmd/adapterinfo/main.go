// Command adapterinfo replays a GL driver report through the gles
// backend and prints the capabilities it would expose. Driver reports
// come from a JSON file or from flags, so driver quirks can be inspected
// without the hardware at hand.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/OptimisticPeach/wgpu"
	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/hal/gles"
	"github.com/OptimisticPeach/wgpu/types"
)

func main() {
	var (
		reportPath = flag.String("report", "", "JSON driver report to replay (overrides the string flags)")
		vendor     = flag.String("vendor", "Qualcomm", "GL_VENDOR string")
		renderer   = flag.String("renderer", "Adreno (TM) 640", "GL_RENDERER string")
		version    = flag.String("version", "OpenGL ES 3.2", "GL_VERSION string")
		glsl       = flag.String("glsl", "OpenGL ES GLSL ES 3.20", "GL_SHADING_LANGUAGE_VERSION string")
		exts       = flag.String("extensions", "", "comma-separated extension names")
		formats    = flag.Bool("formats", false, "also print per-format capabilities")
		verbose    = flag.Bool("v", false, "log probe details to stderr")
	)
	flag.Parse()

	if *verbose {
		wgpu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	report := &driverReport{
		Vendor:                 *vendor,
		Renderer:               *renderer,
		Version:                *version,
		ShadingLanguageVersion: *glsl,
	}
	if *exts != "" {
		report.Extensions = strings.Split(*exts, ",")
	}
	if *reportPath != "" {
		data, err := os.ReadFile(*reportPath)
		if err != nil {
			log.Fatalf("Failed to read report: %v", err)
		}
		if err := json.Unmarshal(data, report); err != nil {
			log.Fatalf("Failed to parse report: %v", err)
		}
	}

	exposed, err := gles.Expose(newReplayContext(report))
	if err != nil {
		log.Fatalf("Probe failed: %v", err)
	}

	info := exposed.Info
	fmt.Printf("Adapter:      %s\n", info.Name)
	fmt.Printf("Vendor:       %#06x\n", info.Vendor)
	fmt.Printf("Device type:  %s\n", info.DeviceType)
	fmt.Printf("Backend:      %s\n", info.Backend)
	fmt.Printf("Features:     %s\n", exposed.Features)

	dl := exposed.Capabilities.Downlevel
	fmt.Printf("Downlevel:    %s\n", dl.Flags)
	fmt.Printf("Shader model: %s\n", dl.ShaderModel)

	al := exposed.Capabilities.Alignments
	fmt.Println("Alignments:")
	fmt.Printf("  buffer copy offset:    %d\n", al.BufferCopyOffset)
	fmt.Printf("  buffer copy pitch:     %d\n", al.BufferCopyPitch)
	fmt.Printf("  uniform buffer offset: %d\n", al.UniformBufferOffset)
	fmt.Printf("  storage buffer offset: %d\n", al.StorageBufferOffset)

	printLimits(exposed.Capabilities.Limits)

	if caps := exposed.Adapter.SurfaceCapabilities(gles.NewSurface(true)); caps != nil {
		fmt.Println("Surface:")
		fmt.Printf("  formats:       %v\n", caps.Formats)
		fmt.Printf("  present modes: %v\n", caps.PresentModes)
		fmt.Printf("  swap chain:    %d..%d images\n", caps.SwapChainSizeMin, caps.SwapChainSizeMax)
		fmt.Printf("  extent:        %dx%d..%dx%d\n",
			caps.ExtentMin.Width, caps.ExtentMin.Height,
			caps.ExtentMax.Width, caps.ExtentMax.Height)
	}

	if *formats {
		fmt.Println("Formats:")
		for f := types.TextureFormat(1); f < types.TextureFormatCount; f++ {
			fmt.Printf("  %-28s %s\n", f, formatCaps(exposed.Adapter.TextureFormatCapabilities(f)))
		}
	}
}

func printLimits(l types.Limits) {
	fmt.Println("Limits:")
	rows := []struct {
		name  string
		value uint32
	}{
		{"max texture dimension 1d", l.MaxTextureDimension1D},
		{"max texture dimension 2d", l.MaxTextureDimension2D},
		{"max texture dimension 3d", l.MaxTextureDimension3D},
		{"max texture array layers", l.MaxTextureArrayLayers},
		{"max bind groups", l.MaxBindGroups},
		{"max dynamic uniform buffers per pipeline layout", l.MaxDynamicUniformBuffersPerPipelineLayout},
		{"max dynamic storage buffers per pipeline layout", l.MaxDynamicStorageBuffersPerPipelineLayout},
		{"max sampled textures per shader stage", l.MaxSampledTexturesPerShaderStage},
		{"max samplers per shader stage", l.MaxSamplersPerShaderStage},
		{"max storage buffers per shader stage", l.MaxStorageBuffersPerShaderStage},
		{"max storage textures per shader stage", l.MaxStorageTexturesPerShaderStage},
		{"max uniform buffers per shader stage", l.MaxUniformBuffersPerShaderStage},
		{"max uniform buffer binding size", l.MaxUniformBufferBindingSize},
		{"max storage buffer binding size", l.MaxStorageBufferBindingSize},
		{"max vertex buffers", l.MaxVertexBuffers},
		{"max vertex attributes", l.MaxVertexAttributes},
		{"max vertex buffer array stride", l.MaxVertexBufferArrayStride},
		{"max push constant size", l.MaxPushConstantSize},
	}
	for _, row := range rows {
		fmt.Printf("  %-48s %d\n", row.name, row.value)
	}
}

func formatCaps(caps hal.TextureFormatCapabilities) string {
	names := []struct {
		bit  hal.TextureFormatCapabilities
		name string
	}{
		{hal.FormatCapabilitySampled, "sampled"},
		{hal.FormatCapabilitySampledLinear, "filterable"},
		{hal.FormatCapabilityStorage, "storage"},
		{hal.FormatCapabilityColorAttachment, "color-attachment"},
		{hal.FormatCapabilityColorAttachmentBlend, "blendable"},
		{hal.FormatCapabilityDepthStencilAttachment, "depth-stencil-attachment"},
	}
	var out []string
	for _, entry := range names {
		if caps.Contains(entry.bit) {
			out = append(out, entry.name)
		}
	}
	return strings.Join(out, ", ")
}
