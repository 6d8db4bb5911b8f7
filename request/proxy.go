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
	"net/url"
	"strconv"
)

// ProxyType is the kind of HTTP proxy to connect to.
type ProxyType uint8

const (
	// ProxyHTTP connects to the proxy in cleartext.
	ProxyHTTP ProxyType = iota
	// ProxyHTTPS connects to the proxy over TLS.
	ProxyHTTPS
)

// String returns the url scheme of the proxy type.
func (p ProxyType) String() string {
	if p == ProxyHTTPS {
		return "https"
	}

	return "http"
}

// AuthType is an authentication method usable with the proxy.
type AuthType uint8

const (
	// AuthBasic is basic HTTP authentication, the default.
	AuthBasic AuthType = iota
	// AuthAny allows all available methods, picking the most secure.
	AuthAny
	// AuthAnySafe allows all available 'secure/safe' methods.
	AuthAnySafe
)

// Proxy describes the proxy to route a request through.
type Proxy struct {
	// Type is the kind of proxy to connect to, HTTP or HTTPS.
	Type ProxyType
	// Host is the proxy hostname.
	Host string
	// Port is the proxy port; a zero value means 80.
	Port uint32
	// Username is the optional username to authenticate with.
	Username string
	// Password is the optional password to authenticate with.
	Password string
	// AuthTypes lists authentication methods. It is copied with the
	// request but not applied: the proxy is always given Username and
	// Password as basic credentials in its url, whatever the list holds.
	AuthTypes []AuthType
}

// URL returns the proxy endpoint as an url, including credentials if any.
func (p Proxy) URL() *url.URL {
	prt := p.Port
	if prt == 0 {
		prt = 80
	}

	u := &url.URL{
		Scheme: p.Type.String(),
		Host:   p.Host + ":" + strconv.FormatUint(uint64(prt), 10),
	}

	if len(p.Password) > 0 {
		u.User = url.UserPassword(p.Username, p.Password)
	} else if len(p.Username) > 0 {
		u.User = url.User(p.Username)
	}

	return u
}
