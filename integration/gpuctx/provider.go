// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gpuctx

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/types"
)

// ErrNilAdapter is returned when a nil exposed adapter is passed.
var ErrNilAdapter = errors.New("gpuctx: nil adapter")

// Provider adapts an opened hal adapter to gpucontext.DeviceProvider.
//
// Provider is NOT safe for concurrent use; it inherits the thread
// confinement of the hal objects it wraps.
type Provider struct {
	device  *deviceHandle
	queue   *queueHandle
	adapter *adapterHandle
	format  gputypes.TextureFormat
	closed  bool
}

var _ gpucontext.DeviceProvider = (*Provider)(nil)

// New opens the exposed adapter with the requested features and wraps
// the resulting device and queue. When surface is non-nil and
// presentable, the provider reports the adapter's preferred surface
// format; otherwise SurfaceFormat returns gputypes.TextureFormatUndefined.
//
// The provider takes ownership of the opened device and queue; release
// them with Close.
func New(exposed *hal.ExposedAdapter, features types.Features, surface hal.Surface) (*Provider, error) {
	if exposed == nil {
		return nil, ErrNilAdapter
	}

	open, err := exposed.Adapter.Open(features)
	if err != nil {
		return nil, fmt.Errorf("gpuctx: open failed: %w", err)
	}

	format := gputypes.TextureFormatUndefined
	if caps := exposed.Adapter.SurfaceCapabilities(surface); caps != nil && len(caps.Formats) > 0 {
		format = contextTextureFormat(caps.Formats[0])
	}

	return &Provider{
		device:  &deviceHandle{device: open.Device},
		queue:   &queueHandle{queue: open.Queue},
		adapter: &adapterHandle{info: exposed.Info},
		format:  format,
	}, nil
}

// Device returns the shared device handle.
func (p *Provider) Device() gpucontext.Device {
	if p.closed {
		return nil
	}
	return p.device
}

// Queue returns the shared queue handle.
func (p *Provider) Queue() gpucontext.Queue {
	if p.closed {
		return nil
	}
	return p.queue
}

// Adapter returns the shared adapter handle.
func (p *Provider) Adapter() gpucontext.Adapter {
	if p.closed {
		return nil
	}
	return p.adapter
}

// SurfaceFormat returns the texture format consumers should render in.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat {
	return p.format
}

// Info returns the identity of the wrapped adapter.
func (p *Provider) Info() types.AdapterInfo {
	return p.adapter.info
}

// Close destroys the wrapped device and queue. Close is idempotent.
func (p *Provider) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.device.device.Destroy()
	p.queue.queue.Destroy()
	return nil
}

// deviceHandle implements gpucontext.Device over a hal device.
type deviceHandle struct {
	device hal.Device
}

var _ gpucontext.Device = (*deviceHandle)(nil)

// Poll is a no-op: the GL family executes work in submission order and
// has no fence to wait on at this layer.
func (h *deviceHandle) Poll(wait bool) {}

// Destroy releases the underlying device. Prefer Provider.Close, which
// also releases the queue.
func (h *deviceHandle) Destroy() { h.device.Destroy() }

// queueHandle implements gpucontext.Queue over a hal queue.
type queueHandle struct {
	queue hal.Queue
}

var _ gpucontext.Queue = (*queueHandle)(nil)

// adapterHandle implements gpucontext.Adapter, carrying the probed
// identity for consumers that inspect it.
type adapterHandle struct {
	info types.AdapterInfo
}

var _ gpucontext.Adapter = (*adapterHandle)(nil)

// contextTextureFormat maps a hal surface format to the gpucontext
// vocabulary. The context layer does not distinguish sRGB views from
// their base format, so both map to the unorm family.
func contextTextureFormat(f types.TextureFormat) gputypes.TextureFormat {
	switch f {
	case types.TextureFormatRGBA8Unorm, types.TextureFormatRGBA8UnormSrgb:
		return gputypes.TextureFormatRGBA8Unorm
	case types.TextureFormatBGRA8Unorm, types.TextureFormatBGRA8UnormSrgb:
		return gputypes.TextureFormatBGRA8Unorm
	case types.TextureFormatR8Unorm:
		return gputypes.TextureFormatR8Unorm
	case types.TextureFormatDepth24PlusStencil8:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}
