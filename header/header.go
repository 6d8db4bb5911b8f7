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

// Package header provides a single HTTP header field stored in its wire
// form "Name: Value". The stored form always contains the two bytes ": "
// after the name, whatever the input looked like.
package header

import "strings"

// Header is one HTTP header field. The zero value is an empty header with
// an empty name and an empty value.
type Header struct {
	data     string
	colonPos int
}

// New creates a header from a name and a value.
// New(n, v).Data() is always n + ": " + v.
func New(name, value string) Header {
	var b strings.Builder

	b.Grow(len(name) + len(value) + 2)
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)

	return Header{
		data:     b.String(),
		colonPos: len(name),
	}
}

// Parse creates a header from a full "Name: Value" field. The stored form
// is normalized so the two bytes ": " always follow the name: a missing
// colon or a trailing colon yields an empty value, and a single space is
// inserted after the colon when the input lacks one.
func Parse(full string) Header {
	pos := strings.Index(full, ":")

	switch {
	case pos < 0:
		pos = len(full)
		full += ": "
	case pos == len(full)-1:
		full += " "
	case full[pos+1] != ' ':
		full = full[:pos+1] + " " + full[pos+1:]
	}

	return Header{
		data:     full,
		colonPos: pos,
	}
}

// Data returns the entire header field, e.g. "Connection: Keep-Alive".
func (h Header) Data() string {
	return h.data
}

// Name returns the header's name.
func (h Header) Name() string {
	return h.data[:h.colonPos]
}

// Value returns the header's value, or empty if it doesn't have one.
// The stored form is built with ": " so the value starts two bytes after
// the colon position.
func (h Header) Value() string {
	if len(h.data) < h.colonPos+2 {
		return ""
	}

	return h.data[h.colonPos+2:]
}

// String implements fmt.Stringer and returns the full header field.
func (h Header) String() string {
	return h.data
}
