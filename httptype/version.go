/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package httptype

import "strings"

// Version is the HTTP protocol version hint of a request, or the negotiated
// version of a response.
type Version uint8

const (
	// VersionUseBest lets the transport pick the best version available.
	VersionUseBest Version = iota
	// Version1_0 requests HTTP 1.0.
	Version1_0
	// Version1_1 requests HTTP 1.1.
	Version1_1
	// Version2_0 attempts HTTP 2 but falls back to 1.1 on failure.
	Version2_0
	// Version2_0TLS attempts HTTP 2 over TLS only, falling back to 1.1.
	Version2_0TLS
	// Version2_0Only uses HTTP 2 prior knowledge with no fallback to 1.1.
	Version2_0Only
	// VersionUnknown is any unrecognized version.
	VersionUnknown Version = 255
)

// Some liberty is taken on the version strings where they don't match the
// specification.
const (
	strVersionUnknown = "HTTP/unknown"
	strVersionUseBest = "HTTP/Best"
	strVersion1_0     = "HTTP/1.0"
	strVersion1_1     = "HTTP/1.1"
	strVersion2_0     = "HTTP/2.0"
	strVersion2_0TLS  = "HTTP/2.0-TLS"
	strVersion2_0Only = "HTTP/2.0-only"
)

// String returns the text representation of the version.
func (v Version) String() string {
	switch v {
	case VersionUseBest:
		return strVersionUseBest
	case Version1_0:
		return strVersion1_0
	case Version1_1:
		return strVersion1_1
	case Version2_0:
		return strVersion2_0
	case Version2_0TLS:
		return strVersion2_0TLS
	case Version2_0Only:
		return strVersion2_0Only
	default:
		return strVersionUnknown
	}
}

// ParseVersion returns the Version matching the given string, case
// insensitive. Any unknown input maps to VersionUnknown.
func ParseVersion(str string) Version {
	switch {
	case strings.EqualFold(str, strVersionUseBest):
		return VersionUseBest
	case strings.EqualFold(str, strVersion1_0):
		return Version1_0
	case strings.EqualFold(str, strVersion1_1):
		return Version1_1
	case strings.EqualFold(str, strVersion2_0):
		return Version2_0
	case strings.EqualFold(str, strVersion2_0TLS):
		return Version2_0TLS
	case strings.EqualFold(str, strVersion2_0Only):
		return Version2_0Only
	default:
		return VersionUnknown
	}
}

// VersionFromProto maps the major/minor protocol numbers of a received
// response to a Version value.
func VersionFromProto(major, minor int) Version {
	switch {
	case major == 1 && minor == 0:
		return Version1_0
	case major == 1 && minor == 1:
		return Version1_1
	case major == 2:
		return Version2_0
	default:
		return VersionUnknown
	}
}
