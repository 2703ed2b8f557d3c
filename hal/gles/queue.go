// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"github.com/OptimisticPeach/wgpu/hal"
	"github.com/OptimisticPeach/wgpu/types"
)

// Queue submits recorded work to the context. It owns the framebuffers
// used for draw-time attachment binding and copies, the shared
// zero-filled buffer, and the transient query-result scratch list.
//
// A Queue is owned by a single thread; it shares the immutable adapter
// state but its own fields are mutable and unsynchronized.
type Queue struct {
	shared     *adapterShared
	features   types.Features
	drawFBO    Framebuffer
	copyFBO    Framebuffer
	zeroBuffer Buffer

	// tempQueryResults collects resolved query values between submit
	// and readback. Reused across submissions to avoid reallocation.
	tempQueryResults []uint64
}

var _ hal.Queue = (*Queue)(nil)

// Features returns the feature set the device was opened with.
func (q *Queue) Features() types.Features { return q.features }

// Destroy deletes the queue-owned native objects.
func (q *Queue) Destroy() {
	ctx := q.shared.context
	ctx.DeleteFramebuffer(q.drawFBO)
	ctx.DeleteFramebuffer(q.copyFBO)
	ctx.DeleteBuffer(q.zeroBuffer)
	q.tempQueryResults = nil
}
