// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package hal

import (
	"sync"

	"github.com/OptimisticPeach/wgpu/types"
)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[types.Backend]API)
	// Priority order for backend selection (first available wins).
	backendPriority = []types.Backend{
		types.BackendVulkan,
		types.BackendMetal,
		types.BackendDX12,
		types.BackendGL,
	}
)

// RegisterBackend registers a backend API.
// This is typically called from init() functions in backend packages.
// If a backend for the same API is already registered, it is replaced.
func RegisterBackend(api API) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[api.Backend()] = api
}

// UnregisterBackend removes a backend from the registry.
// This is useful for testing.
func UnregisterBackend(b types.Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, b)
}

// GetBackend returns the registered API for a backend.
// The second result is false if no such backend is registered.
func GetBackend(b types.Backend) (API, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	api, ok := backends[b]
	return api, ok
}

// Backends returns the registered backends in priority order, followed by
// any registered backends outside the priority list.
func Backends() []types.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[types.Backend]bool, len(backends))
	out := make([]types.Backend, 0, len(backends))
	for _, b := range backendPriority {
		if _, ok := backends[b]; ok {
			out = append(out, b)
			seen[b] = true
		}
	}
	for b := range backends {
		if !seen[b] {
			out = append(out, b)
		}
	}
	return out
}

// DefaultBackend returns the best available backend based on priority.
// The second result is false if no backends are registered.
func DefaultBackend() (API, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, b := range backendPriority {
		if api, ok := backends[b]; ok {
			return api, true
		}
	}
	return nil, false
}
