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

// Package share provides a reference-counted carrier of DNS results, TLS
// session state and connection pool that can be mounted into many clients
// or synchronous requests concurrently.
//
// Each lockable resource class is guarded by its own mutex so independent
// classes do not serialize each other.
package share

import (
	"crypto/tls"
	"net/http"

	libtrp "github.com/nabbar/golift/transport"
)

// Share carries the selected resource classes across requests and clients.
//
// A Share is reference counted: New returns it with one reference, every
// mounting party calls Acquire, and Close releases one reference. The
// resources are torn down when the last reference is released.
type Share interface {
	// Options returns the resource classes this share carries.
	Options() Options

	// Acquire adds one reference and returns the share itself.
	Acquire() Share

	// Close releases one reference; the last release closes the pooled
	// idle connections and drops the DNS cache. The TLS session cache is
	// kept.
	Close() error

	// Resolver returns the caching resolve function for transport
	// dialers, or nil when DNS sharing is not enabled.
	Resolver() libtrp.FctResolve

	// SessionCache returns the shared TLS session cache, or nil when TLS
	// sharing is not enabled.
	SessionCache() tls.ClientSessionCache

	// Transport returns the shared pooled transport, or nil when
	// connection sharing is not enabled.
	Transport() *http.Transport
}

// New creates a share carrying the given resource classes.
func New(opt Options) Share {
	s := &shr{
		opt: opt,
		dns: make(map[string]string),
	}

	s.ref.Store(1)

	if opt.Has(OptSSL) {
		s.ssl = tls.NewLRUClientSessionCache(0)
	}

	if opt.Has(OptData) {
		s.trn = libtrp.New(libtrp.Config{}, s.ssl, s.Resolver())
	}

	return s
}
