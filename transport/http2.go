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

package transport

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	liberr "github.com/nabbar/golib/errors"
	libhtp "golang.org/x/net/http2"
)

// ConfigureHttp2 upgrades an http.Transport to speak HTTP/2 when the
// server supports it.
func ConfigureHttp2(tr *http.Transport) liberr.Error {
	if err := libhtp.ConfigureTransport(tr); err != nil {
		return ErrorTransportHttp2.Error(err)
	}

	return nil
}

// NewH2C builds a prior-knowledge HTTP/2 cleartext transport: requests are
// sent as HTTP/2 over a plain TCP connection with no 1.1 fallback and no
// protocol negotiation.
//
// The dialer honors the same context values as the regular transports
// (resolve overrides, connect timeout, happy-eyeballs delay, dial counter).
func NewH2C(cfg Config, rsv FctResolve) *libhtp.Transport {
	dia := &dialer{
		cfg: cfg.withDefaults(),
		rsv: rsv,
	}

	return &libhtp.Transport{
		AllowHTTP: true,
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return dia.DialContext(ctx, network, addr)
		},
	}
}
