// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"errors"
	"testing"
)

// TestParseVersion runs the driver strings observed in the wild through
// the parser.
func TestParseVersion(t *testing.T) {
	tests := []struct {
		src     string
		want    version
		wantErr bool
	}{
		// Malformed strings fail cleanly.
		{src: "1", wantErr: true},
		{src: "1.", wantErr: true},
		{src: "1 h3l1o. W0rld", wantErr: true},
		{src: "1. h3l1o. W0rld", wantErr: true},
		{src: "1.2.3", wantErr: true},
		{src: "", wantErr: true},

		// Plain ES strings.
		{src: "OpenGL ES 3.1", want: version{3, 1}},
		{src: "OpenGL ES 2.0 Google Nexus", want: version{2, 0}},
		{src: "GLSL ES 1.1", want: version{1, 1}},

		// Trailing zeros in the minor are stripped; leading zero wins.
		{src: "OpenGL ES GLSL ES 3.20", want: version{3, 2}},
		{src: "OpenGL ES GLSL ES 3.00", want: version{3, 0}},

		// WebGL 2.0 is the ES 3.0 API surface, so the major is bumped;
		// WebGL shading language strings already carry the ES number.
		{src: "WebGL 2.0 (OpenGL ES 3.0 Chromium)", want: version{3, 0}},
		{src: "WebGL GLSL ES 3.00 (OpenGL ES GLSL ES 3.0 Chromium)", want: version{3, 0}},

		// The bump must not wrap the major around.
		{src: "WebGL 255.0 Absurd Driver", wantErr: true},

		// Revision components are ignored.
		{src: "OpenGL ES 3.1.7 Vendor Blob", want: version{3, 1}},
	}
	for _, tt := range tests {
		got, err := parseVersion(tt.src)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseVersion(%q) = %v, want error", tt.src, got)
			} else if !errors.Is(err, ErrVersionParse) {
				t.Errorf("parseVersion(%q) error = %v, want ErrVersionParse", tt.src, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseVersion(%q) error = %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseVersion(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

// TestVersionAtLeast tests the version ordering.
func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		v            version
		major, minor uint8
		want         bool
	}{
		{version{3, 1}, 3, 1, true},
		{version{3, 2}, 3, 1, true},
		{version{4, 0}, 3, 1, true},
		{version{3, 0}, 3, 1, false},
		{version{2, 9}, 3, 0, false},
	}
	for _, tt := range tests {
		if got := tt.v.atLeast(tt.major, tt.minor); got != tt.want {
			t.Errorf("%v.atLeast(%d, %d) = %v, want %v", tt.v, tt.major, tt.minor, got, tt.want)
		}
	}
}
