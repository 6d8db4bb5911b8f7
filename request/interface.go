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

// Package request provides the description of one HTTP call and the
// executor binding it to the transport.
//
// A request is built on the calling goroutine, then either performed
// synchronously with Perform or handed to a client for asynchronous
// execution. Once submitted to a client the request must not be mutated
// anymore; ownership comes back to the caller together with the response
// on completion.
package request

import (
	"context"
	"time"

	liberr "github.com/nabbar/golib/errors"
	libhdr "github.com/nabbar/golift/header"
	libhtt "github.com/nabbar/golift/httptype"
	libres "github.com/nabbar/golift/response"
	libshr "github.com/nabbar/golift/share"
)

// CompleteHandler is called once when an asynchronous request completes.
// Ownership of the request comes back to the caller with the response.
type CompleteHandler func(req Request, rsp libres.Response)

// ProgressHandler is called periodically with the transfer progress of a
// request: bytes downloaded so far, total bytes expected to download,
// bytes uploaded so far, total bytes to upload. Returning false aborts the
// transfer.
type ProgressHandler func(dlNow, dlTotal, ulNow, ulTotal int64) bool

// CertType is the encoding of a client certificate file.
type CertType uint8

const (
	// CertPEM is a PEM encoded certificate, the default.
	CertPEM CertType = iota
	// CertDER is a DER encoded certificate.
	CertDER
)

// String returns the text representation of the certificate type.
func (c CertType) String() string {
	if c == CertDER {
		return "DER"
	}

	return "PEM"
}

// Request describes one HTTP call. All setters are meant for the building
// phase, before the request is performed or submitted.
type Request interface {
	// Clone returns a deep copy of the request.
	Clone() Request

	// URL returns the url of the HTTP request.
	URL() string
	// SetURL sets the url of the HTTP request.
	SetURL(uri string)

	// Method returns the HTTP method this request will use.
	Method() libhtt.Method
	// SetMethod sets the HTTP method this request should use.
	SetMethod(mtd libhtt.Method)

	// Version returns the HTTP version hint this request will use.
	Version() libhtt.Version
	// SetVersion sets the HTTP version hint this request should use.
	SetVersion(vrs libhtt.Version)

	// FollowRedirects returns whether the request follows redirects.
	FollowRedirects() bool
	// MaxRedirects returns how many redirects may be followed:
	// -1 infinite, 0 none.
	MaxRedirects() int64
	// SetFollowRedirects enables or disables following redirects. When
	// enabling, an optional cap limits how many redirects are followed;
	// no cap means infinite.
	SetFollowRedirects(follow bool, max ...uint64)

	// VerifySSLPeer returns whether the TLS peer is verified.
	VerifySSLPeer() bool
	// SetVerifySSLPeer sets whether the TLS peer is verified. Enabled by
	// default.
	SetVerifySSLPeer(verify bool)
	// VerifySSLHost returns whether the TLS hostname is verified.
	VerifySSLHost() bool
	// SetVerifySSLHost sets whether the TLS hostname is verified. Enabled
	// by default.
	SetVerifySSLHost(verify bool)
	// VerifySSLStatus returns whether the certificate status is checked.
	VerifySSLStatus() bool
	// SetVerifySSLStatus sets whether the certificate status is checked.
	// Disabled by default.
	SetVerifySSLStatus(verify bool)

	// SSLCert returns the client certificate file in use, if any.
	SSLCert() string
	// SetSSLCert sets the client certificate file to use.
	SetSSLCert(path string)
	// SSLCertType returns the client certificate encoding.
	SSLCertType() CertType
	// SetSSLCertType sets the client certificate encoding.
	SetSSLCertType(t CertType)
	// SSLKey returns the client key file in use, if any.
	SSLKey() string
	// SetSSLKey sets the client key file to use.
	SetSSLKey(path string)
	// KeyPassword returns the pass phrase of the client key.
	KeyPassword() string
	// SetKeyPassword sets the pass phrase of the client key.
	SetKeyPassword(password string)

	// Proxy returns the proxy information of this request, or nil.
	Proxy() *Proxy
	// SetProxy sets the proxy information of this request.
	SetProxy(prx Proxy)

	// AcceptEncodings returns the configured Accept-Encoding values and
	// whether any were configured. A configured empty list means all
	// codecs built into the transport.
	AcceptEncodings() ([]string, bool)
	// SetAcceptEncoding sets the list of accepted encodings, joined with
	// a comma on the wire. Mutually exclusive with adding an own
	// Accept-Encoding header.
	SetAcceptEncoding(encodings []string)
	// AcceptEncodingAllAvailable asks for every codec built into the
	// transport.
	AcceptEncodingAllAvailable()

	// ResolveHosts returns the host:port => ip overrides of this request.
	ResolveHosts() []ResolveHost
	// AddResolveHost adds an override to bypass DNS lookups.
	AddResolveHost(rsv ResolveHost)
	// ClearResolveHosts removes all overrides set on this request.
	ClearResolveHosts()

	// Headers returns the list of headers added to this request.
	Headers() []libhdr.Header
	// AddHeader adds a request header with its value. Insertion order is
	// preserved and duplicates are allowed.
	AddHeader(name, value string)
	// RemoveHeader strips the header from the request, including the few
	// default headers the transport always adds in certain scenarios.
	RemoveHeader(name string)
	// ClearHeaders removes every header set on this request.
	ClearHeaders()

	// Body returns the request body, or empty if it was never set.
	Body() []byte
	// SetBody sets the request to POST with the given body. Override the
	// method afterwards if desired. Mutually exclusive with mime fields.
	SetBody(data []byte) liberr.Error
	// MimeFields returns the mime fields set on this request.
	MimeFields() []MimeField
	// AddMimeField adds a field to this mime form request. Mutually
	// exclusive with a request body.
	AddMimeField(mf MimeField) liberr.Error

	// Timeout returns the total time allowed to the request, if set.
	Timeout() (time.Duration, bool)
	// SetTimeout limits the total time allowed to the request.
	SetTimeout(d time.Duration)
	// ClearTimeout removes the total time limit. Without it a request
	// could hang forever if the remote never responds.
	ClearTimeout()

	// ConnectTimeout returns the time allowed to connect, if set.
	ConnectTimeout() (time.Duration, bool)
	// SetConnectTimeout limits the time allowed to connect. For requests
	// run through a client this value may exceed the total timeout to let
	// connections establish while requests on the established keep-alive
	// connection time out quickly.
	SetConnectTimeout(d time.Duration)
	// ClearConnectTimeout removes the connect time limit.
	ClearConnectTimeout()

	// HappyEyeballsTimeout returns the happy eyeballs delay, if set.
	// See https://en.wikipedia.org/wiki/Happy_Eyeballs
	HappyEyeballsTimeout() (time.Duration, bool)
	// SetHappyEyeballsTimeout sets the happy eyeballs algorithm delay.
	SetHappyEyeballsTimeout(d time.Duration)
	// ClearHappyEyeballsTimeout removes the happy eyeballs delay.
	ClearHappyEyeballsTimeout()

	// OnComplete sets the handler called when this request completes
	// asynchronously. Unused by the synchronous Perform path.
	OnComplete(fct CompleteHandler)
	// CompleteHandler returns the current completion handler.
	CompleteHandler() CompleteHandler

	// OnTransferProgress sets or unsets the transfer progress handler of
	// this request. A nil handler disables progress callbacks.
	OnTransferProgress(fct ProgressHandler)
	// ProgressHandler returns the current progress handler.
	ProgressHandler() ProgressHandler

	// Perform synchronously executes this request on the calling
	// goroutine and returns the response.
	//
	// Note: if there is no timeout set on the request and the remote
	// server fails to respond, this call can block forever.
	Perform(ctx context.Context, shr libshr.Share) (libres.Response, liberr.Error)
}

// New creates a new request for the given url, with method GET, the best
// available HTTP version and redirect following enabled without limit.
func New(uri string) Request {
	return &rqs{
		url: uri,
		mtd: libhtt.MethodGet,
		vrs: libhtt.VersionUseBest,
		flw: true,
		mrd: -1,
		vfp: true,
		vfh: true,
	}
}
