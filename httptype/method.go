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

// Package httptype provides the wire boundary enums of the library: HTTP
// methods, HTTP version hints, HTTP status codes, content types and
// connection types, each with bidirectional string conversions.
package httptype

import (
	"net/http"
	"strings"
)

// Method is the HTTP request method.
type Method uint8

const (
	MethodUnknown Method = iota
	MethodGet
	MethodHead
	MethodPost
	MethodPut
	MethodDelete
	MethodConnect
	MethodOptions
	MethodPatch
)

const strMethodUnknown = "unknown"

// String returns the wire representation of the method, e.g. "GET".
func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodHead:
		return http.MethodHead
	case MethodPost:
		return http.MethodPost
	case MethodPut:
		return http.MethodPut
	case MethodDelete:
		return http.MethodDelete
	case MethodConnect:
		return http.MethodConnect
	case MethodOptions:
		return http.MethodOptions
	case MethodPatch:
		return http.MethodPatch
	default:
		return strMethodUnknown
	}
}

// Std returns the net/http method constant to use on the wire.
// An unknown method falls back to GET.
func (m Method) Std() string {
	if m == MethodUnknown {
		return http.MethodGet
	}

	return m.String()
}

// ParseMethod returns the Method matching the given string, case
// insensitive. Any unknown input maps to MethodUnknown.
func ParseMethod(str string) Method {
	switch {
	case strings.EqualFold(str, http.MethodGet):
		return MethodGet
	case strings.EqualFold(str, http.MethodHead):
		return MethodHead
	case strings.EqualFold(str, http.MethodPost):
		return MethodPost
	case strings.EqualFold(str, http.MethodPut):
		return MethodPut
	case strings.EqualFold(str, http.MethodDelete):
		return MethodDelete
	case strings.EqualFold(str, http.MethodConnect):
		return MethodConnect
	case strings.EqualFold(str, http.MethodOptions):
		return MethodOptions
	case strings.EqualFold(str, http.MethodPatch):
		return MethodPatch
	default:
		return MethodUnknown
	}
}
