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

package share

import "strings"

// Options selects which resource classes a share carries across requests
// and clients.
type Options uint8

const (
	// OptNothing shares nothing across requests.
	OptNothing Options = 0
	// OptDNS shares DNS resolution results across requests.
	OptDNS Options = 1 << 1
	// OptSSL shares TLS session state across requests.
	OptSSL Options = 1 << 2
	// OptData shares the connection pool across requests.
	OptData Options = 1 << 3

	// OptDNSSSL shares DNS with TLS sessions.
	OptDNSSSL = OptDNS | OptSSL
	// OptDNSData shares DNS with the connection pool.
	OptDNSData = OptDNS | OptData
	// OptSSLData shares TLS sessions with the connection pool.
	OptSSLData = OptSSL | OptData
	// OptAll shares all available resource classes.
	OptAll = OptDNS | OptSSL | OptData
)

// Has returns true when every class of the given options set is enabled.
func (o Options) Has(opt Options) bool {
	return opt != OptNothing && o&opt == opt
}

// String returns a '+' joined list of the enabled classes, or "nothing".
func (o Options) String() string {
	var p []string

	if o.Has(OptDNS) {
		p = append(p, "dns")
	}

	if o.Has(OptSSL) {
		p = append(p, "ssl")
	}

	if o.Has(OptData) {
		p = append(p, "data")
	}

	if len(p) < 1 {
		return "nothing"
	}

	return strings.Join(p, "+")
}
