// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

// Package gpuctx exposes an opened hal adapter through the gpucontext
// device-sharing interfaces, so libraries built against
// gpucontext.DeviceProvider can run on top of this module's backends.
//
// The data flow is:
//
//	hal.ExposedAdapter -> Open -> Provider -> gpucontext.DeviceProvider
//
// A Provider owns the hal device and queue it wraps; Close releases both.
// Like the backends themselves, a Provider is confined to the thread that
// owns the underlying native context.
package gpuctx
