// Package wgpu is a Pure Go port of the wgpu hardware abstraction layer.
//
// # Overview
//
// wgpu exposes GPU hardware through a small set of backend-neutral
// interfaces (see the hal subpackage) and per-API backends that implement
// them. This module currently ships the OpenGL ES backend (hal/gles),
// which probes a native GL context, normalizes its self-reported state
// into a portable capability descriptor, and opens a device/queue pair.
//
// # Quick Start
//
//	import (
//	    "github.com/OptimisticPeach/wgpu/hal"
//	    "github.com/OptimisticPeach/wgpu/types"
//
//	    _ "github.com/OptimisticPeach/wgpu/hal/gles"
//	)
//
//	api, ok := hal.GetBackend(types.BackendGL)
//	if !ok {
//	    // backend package not linked in
//	}
//	instance, err := api.CreateInstance(&hal.InstanceDescriptor{})
//	// ... adopt a native context, then:
//	adapters := instance.EnumerateAdapters()
//
// # Architecture
//
// The module is organized into:
//   - types: the shared wgpu type vocabulary (features, limits, formats)
//   - hal: backend-neutral interfaces, descriptors, and backend registry
//   - hal/gles: the OpenGL ES 3.x backend
//   - integration/gpuctx: bridge to the gogpu/gpucontext interfaces
//
// # Capability Probing
//
// GL drivers report versions, vendor names, and limits as loosely
// formatted strings and raw integers. The gles backend reconciles those
// into a single immutable capability descriptor; everything downstream
// (device and queue creation, pipeline validation) reads that descriptor
// and never re-queries the driver.
package wgpu

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
