// Copyright 2026 The wgpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrVersionParse is wrapped by every version-string parse failure.
// A parse failure makes the whole probe fail; the adapter is unusable.
var ErrVersionParse = errors.New("gles: cannot parse version string")

// version is a parsed (major, minor) GL or GLSL version pair.
// Ordered lexicographically on major then minor.
type version struct {
	major uint8
	minor uint8
}

// atLeast reports whether v >= (major, minor).
func (v version) atLeast(major, minor uint8) bool {
	return v.major > major || (v.major == major && v.minor >= minor)
}

// parseVersion extracts the (major, minor) pair from a GL_VERSION or
// GL_SHADING_LANGUAGE_VERSION string. The GL specification describes the
// syntax as
//
//	<major>       ::= <number>
//	<minor>       ::= <number>
//	<revision>    ::= <number>
//	<vendor-info> ::= <string>
//	<release>     ::= <major> "." <minor> ["." <revision>]
//	<version>     ::= <release> [" " <vendor-info>]
//
// optionally prefixed with "OpenGL ES " or "WebGL ", and with
// "GLSL ES " embedded for shading language strings. Parsing is
// intentionally lenient and recovers the first two numbers where it can;
// anything less fails with ErrVersionParse.
//
// WebGL version numbering is offset by one generation from the ES API it
// wraps, so "WebGL 2.0 ..." parses as ES (3, 0). WebGL shading language
// strings carry the ES GLSL version directly and are not remapped.
func parseVersion(src string) (version, error) {
	const webglSig = "WebGL "
	// According to the WebGL specification:
	// VERSION                   WebGL<space>1.0<space><vendor-specific information>
	// SHADING_LANGUAGE_VERSION  WebGL<space>GLSL<space>ES<space>1.0<space><vendor-specific information>
	isWebGL := strings.HasPrefix(src, webglSig)
	rest := src
	if isWebGL {
		if pos := strings.LastIndex(src, webglSig); pos >= 0 {
			rest = src[pos+len(webglSig):]
		}
	} else {
		const esSig = " ES "
		pos := strings.LastIndex(src, esSig)
		if pos < 0 {
			return version{}, fmt.Errorf("%w: no ES marker in %q", ErrVersionParse, src)
		}
		rest = src[pos+len(esSig):]
	}

	const glslESSig = "GLSL ES "
	isGLSL := false
	if pos := strings.Index(rest, glslESSig); pos >= 0 {
		rest = rest[pos+len(glslESSig):]
		isGLSL = true
	}

	release := rest
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		release = rest[:i]
		// Everything after the space is vendor info; discarded.
	}

	parts := strings.Split(release, ".")
	major, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return version{}, fmt.Errorf("%w: bad release %q in %q", ErrVersionParse, release, src)
	}
	if len(parts) < 2 {
		return version{}, fmt.Errorf("%w: missing minor in %q", ErrVersionParse, src)
	}
	// Drivers report minors like "20" (meaning 2) or "00" (meaning 0).
	// A leading zero forces zero; otherwise trailing zeros are stripped
	// before parsing. Known drivers are matched against exactly these
	// rules; do not "fix".
	minorStr := parts[1]
	if strings.HasPrefix(minorStr, "0") {
		minorStr = "0"
	} else {
		minorStr = strings.TrimRight(minorStr, "0")
	}
	minor, err := strconv.ParseUint(minorStr, 10, 8)
	if err != nil {
		return version{}, fmt.Errorf("%w: bad minor %q in %q", ErrVersionParse, parts[1], src)
	}
	// A third component (revision) is ignored.

	if isWebGL && !isGLSL {
		// WebGL 2.0 is the ES 3.0 API surface.
		major++
		if major > 0xFF {
			return version{}, fmt.Errorf("%w: major out of range in %q", ErrVersionParse, src)
		}
	}
	return version{major: uint8(major), minor: uint8(minor)}, nil
}
