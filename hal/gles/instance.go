// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"github.com/OptimisticPeach/wgpu"
	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/types"
)

// API is the gles backend entry point. It registers itself with the hal
// registry in this package's init.
type API struct{}

var _ hal.API = API{}

// Backend returns types.BackendGL.
func (API) Backend() types.Backend { return types.BackendGL }

// CreateInstance creates an empty instance. GL contexts come from
// window-system glue outside this module, so the instance starts with no
// adapters; hand contexts to AdoptContext as they become current.
func (API) CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error) {
	var flags hal.InstanceFlags
	if desc != nil {
		flags = desc.Flags
	}
	return &Instance{flags: flags}, nil
}

// Instance collects adapters probed from adopted native contexts.
//
// An Instance is confined to the thread that owns its contexts, like
// every other type in this package.
type Instance struct {
	flags    hal.InstanceFlags
	adapters []hal.ExposedAdapter
}

var _ hal.Instance = (*Instance)(nil)

// AdoptContext probes a native context and, on success, adds the
// resulting adapter to the instance. The context must be current on the
// calling thread. Probe failures are logged and returned; the instance
// is unchanged by a failed probe.
func (i *Instance) AdoptContext(ctx Context) error {
	exposed, err := Expose(ctx)
	if err != nil {
		wgpu.Logger().Warn("gles: context not adoptable", "error", err)
		return err
	}
	i.adapters = append(i.adapters, *exposed)
	return nil
}

// EnumerateAdapters returns a snapshot of the adapters adopted so far.
func (i *Instance) EnumerateAdapters() []hal.ExposedAdapter {
	out := make([]hal.ExposedAdapter, len(i.adapters))
	copy(out, i.adapters)
	return out
}

// Destroy drops the adapter list. Native contexts are owned by the
// caller and are not released here.
func (i *Instance) Destroy() {
	i.adapters = nil
}
