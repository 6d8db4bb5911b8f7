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

package request

import (
	"strconv"
	"strings"

	liberr "github.com/nabbar/golib/errors"
)

// ResolveHost maps one host and port combination to an IP address,
// bypassing DNS resolution for it.
type ResolveHost struct {
	host string
	port uint16
	ip   string
}

// NewResolveHost creates an override resolving host:port to the given IP
// address literal.
func NewResolveHost(host string, port uint16, ip string) ResolveHost {
	return ResolveHost{
		host: host,
		port: port,
		ip:   ip,
	}
}

// ParseResolveHost parses a "host:port:ip" formatted override.
func ParseResolveHost(str string) (ResolveHost, liberr.Error) {
	prt := strings.Split(str, ":")
	if len(prt) != 3 || len(prt[0]) < 1 || len(prt[2]) < 1 {
		return ResolveHost{}, ErrorResolveInvalid.Error(nil)
	}

	p, err := strconv.ParseUint(prt[1], 10, 16)
	if err != nil {
		return ResolveHost{}, ErrorResolveInvalid.Error(err)
	}

	return NewResolveHost(prt[0], uint16(p), prt[2]), nil
}

// Host returns the host that should be resolved.
func (r ResolveHost) Host() string {
	return r.host
}

// Port returns the port that should be resolved.
func (r ResolveHost) Port() uint16 {
	return r.port
}

// IP returns the IP address being resolved to.
func (r ResolveHost) IP() string {
	return r.ip
}

// String returns the "host:port:ip" formatted override as consumed by the
// transport dialer.
func (r ResolveHost) String() string {
	return r.host + ":" + strconv.FormatUint(uint64(r.port), 10) + ":" + r.ip
}
