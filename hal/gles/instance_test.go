// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"testing"

	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/types"
)

// TestBackendRegistered verifies that importing the package makes the GL
// backend discoverable through the registry.
func TestBackendRegistered(t *testing.T) {
	api, ok := hal.GetBackend(types.BackendGL)
	if !ok {
		t.Fatal("GL backend not registered")
	}
	if api.Backend() != types.BackendGL {
		t.Errorf("Backend() = %v, want BackendGL", api.Backend())
	}
}

func TestInstanceAdoptContext(t *testing.T) {
	api, _ := hal.GetBackend(types.BackendGL)
	inst, err := api.CreateInstance(&hal.InstanceDescriptor{Name: "test"})
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	defer inst.Destroy()
	gl := inst.(*Instance)

	if got := inst.EnumerateAdapters(); len(got) != 0 {
		t.Fatalf("fresh instance exposes %d adapters, want 0", len(got))
	}

	if err := gl.AdoptContext(newFakeContext("OpenGL ES 3.1")); err != nil {
		t.Fatalf("AdoptContext: %v", err)
	}
	adapters := inst.EnumerateAdapters()
	if len(adapters) != 1 {
		t.Fatalf("adapters = %d, want 1", len(adapters))
	}
	if adapters[0].Info.Backend != types.BackendGL {
		t.Errorf("Info.Backend = %v, want BackendGL", adapters[0].Info.Backend)
	}
}

func TestInstanceAdoptContextFailure(t *testing.T) {
	inst := &Instance{}

	// A desktop GL version string is rejected by the probe.
	if err := inst.AdoptContext(newFakeContext("4.6.0 NVIDIA 535.54.03")); err == nil {
		t.Fatal("AdoptContext accepted an unprobeable context")
	}
	if got := inst.EnumerateAdapters(); len(got) != 0 {
		t.Errorf("failed adopt left %d adapters behind", len(got))
	}
}

// TestEnumerateAdaptersSnapshot verifies that the returned slice is a
// copy, not a view of the instance's state.
func TestEnumerateAdaptersSnapshot(t *testing.T) {
	inst := &Instance{}
	if err := inst.AdoptContext(newFakeContext("OpenGL ES 3.0")); err != nil {
		t.Fatalf("AdoptContext: %v", err)
	}

	snap := inst.EnumerateAdapters()
	if err := inst.AdoptContext(newFakeContext("OpenGL ES 3.1")); err != nil {
		t.Fatalf("AdoptContext: %v", err)
	}
	if len(snap) != 1 {
		t.Errorf("earlier snapshot grew to %d adapters", len(snap))
	}
	if got := inst.EnumerateAdapters(); len(got) != 2 {
		t.Errorf("adapters = %d, want 2", len(got))
	}

	inst.Destroy()
	if got := inst.EnumerateAdapters(); len(got) != 0 {
		t.Errorf("adapters after Destroy = %d, want 0", len(got))
	}
}
