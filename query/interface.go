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

// Package query provides a simple reusable url builder plus the
// percent-encoding helpers of the library.
//
// The builder accumulates scheme, host, optional port, ordered path parts,
// ordered query parameters and an optional fragment, then emits the url on
// Build. Build resets the internal state so the builder can be re-used to
// craft another url. It does not validate that the correct parts for a url
// are provided; the user must be diligent to set all the appropriate
// fields.
package query

// Builder accumulates url parts and emits
// scheme://host[:port][/path[/...]][?k=v&...][#frag].
//
// Query parameter values are percent-encoded; path parts are emitted
// verbatim. Parameters and path parts keep their insertion order and are
// not de-duplicated.
type Builder interface {
	// Scheme sets the url scheme, without the "://" separator.
	Scheme(scheme string) Builder

	// Hostname sets the url host, e.g. "www.example.com".
	Hostname(host string) Builder

	// Port sets the url port. A zero port is omitted from the url.
	Port(port uint16) Builder

	// AddPathPart appends one path segment, without any '/'.
	AddPathPart(part string) Builder

	// AddQueryParameter appends one query parameter. The value is
	// percent-encoded on Build.
	AddQueryParameter(name, value string) Builder

	// Fragment sets the url fragment, without the '#'.
	Fragment(fragment string) Builder

	// Build emits the url accumulated since the last Build call, then
	// resets the builder for the next url.
	Build() string
}

// New returns a new empty url builder.
func New() Builder {
	return &builder{}
}
