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

// Package response provides the read-only outcome bundle of a request.
package response

import (
	"time"

	libhdr "github.com/nabbar/golift/header"
	libhtt "github.com/nabbar/golift/httptype"
	libsts "github.com/nabbar/golift/status"
)

// Data holds the parts of a response. It is consumed by New to build the
// read-only Response handed to callers.
type Data struct {
	// Result is the library's terminal outcome, distinct from the HTTP
	// status code.
	Result libsts.Status
	// Code is the HTTP response status code.
	Code libhtt.StatusCode
	// Version is the negotiated HTTP version of the response.
	Version libhtt.Version
	// Headers are the response header fields. The request executor stores
	// them sorted by name; the values of one name keep reception order.
	Headers []libhdr.Header
	// Body is the downloaded payload, if any.
	Body []byte
	// TotalTime is the total time spent executing the request.
	TotalTime time.Duration
	// NumConnects is the number of connections made, saturated at 255.
	NumConnects uint8
	// NumRedirects is the number of redirects traversed, saturated at 255.
	NumRedirects uint8
}

// Response is the outcome of a request.
//
// Always check Result before using any other field: a request that never
// reached the remote server carries no meaningful HTTP code, headers or
// body.
type Response interface {
	// Result returns how the request ended up inside the library. This is
	// not the HTTP status code returned by the remote server.
	Result() libsts.Status

	// StatusCode returns the HTTP response status code.
	StatusCode() libhtt.StatusCode

	// Version returns the HTTP version of the response.
	Version() libhtt.Version

	// Headers returns the HTTP response headers.
	Headers() []libhdr.Header

	// Body returns the HTTP download payload.
	Body() []byte

	// TotalTime returns the total request time.
	TotalTime() time.Duration

	// NumConnects returns the number of connections made to execute the
	// request.
	NumConnects() uint8

	// NumRedirects returns the number of redirects made during the
	// request.
	NumRedirects() uint8

	// Dump formats the response in the raw HTTP format: status line,
	// headers, blank line, then the body verbatim.
	Dump() []byte

	// String returns Dump as a string.
	String() string
}

// New builds a read-only response from the given parts.
func New(d Data) Response {
	return &rsp{d: d}
}
