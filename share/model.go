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

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	libtrp "github.com/nabbar/golift/transport"
)

// One mutex per lockable resource class so independent classes do not
// serialize each other.
const (
	lockDNS = iota
	lockSSL
	lockData
	lockCount
)

type shr struct {
	opt Options
	ref atomic.Int64
	mux [lockCount]sync.Mutex

	dns map[string]string
	ssl tls.ClientSessionCache
	trn *http.Transport
}

func (o *shr) Options() Options {
	return o.opt
}

func (o *shr) Acquire() Share {
	o.ref.Add(1)
	return o
}

func (o *shr) Close() error {
	if o.ref.Add(-1) > 0 {
		return nil
	}

	o.mux[lockData].Lock()
	if o.trn != nil {
		o.trn.CloseIdleConnections()
	}
	o.mux[lockData].Unlock()

	o.mux[lockDNS].Lock()
	o.dns = make(map[string]string)
	o.mux[lockDNS].Unlock()

	return nil
}

func (o *shr) Resolver() libtrp.FctResolve {
	if !o.opt.Has(OptDNS) {
		return nil
	}

	return o.resolve
}

func (o *shr) SessionCache() tls.ClientSessionCache {
	return o.ssl
}

func (o *shr) Transport() *http.Transport {
	return o.trn
}

// resolve caches DNS lookup results per "host:port" address. Literal IP
// addresses bypass the cache entirely.
func (o *shr) resolve(address string) (string, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return address, nil
	}

	if net.ParseIP(host) != nil {
		return address, nil
	}

	o.mux[lockDNS].Lock()
	dst, ok := o.dns[address]
	o.mux[lockDNS].Unlock()

	if ok {
		return dst, nil
	}

	ips, err := net.DefaultResolver.LookupHost(context.Background(), host)
	if err != nil {
		return "", err
	}

	dst = net.JoinHostPort(ips[0], port)

	o.mux[lockDNS].Lock()
	o.dns[address] = dst
	o.mux[lockDNS].Unlock()

	return dst, nil
}
