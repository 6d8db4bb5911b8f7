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
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"io"
	"math"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	libuid "github.com/hashicorp/go-uuid"
	liberr "github.com/nabbar/golib/errors"
	libhdr "github.com/nabbar/golift/header"
	libhtt "github.com/nabbar/golift/httptype"
	libres "github.com/nabbar/golift/response"
	libshr "github.com/nabbar/golift/share"
	libsts "github.com/nabbar/golift/status"
	libtrp "github.com/nabbar/golift/transport"
	"github.com/sirupsen/logrus"
)

// ErrFailedToStart marks a transfer that could not be handed over to the
// transport. Passing it to Executor.Response yields an ErrorFailedToStart
// outcome with a synthetic 500 status.
var ErrFailedToStart = errors.New("request failed to start")

// errProgressAborted cancels a transfer when the progress handler returns
// false.
var errProgressAborted = errors.New("transfer aborted by progress handler")

// downloadError marks a failure while reading the response body off the
// socket.
type downloadError struct {
	err error
}

func (e *downloadError) Error() string {
	return "download error: " + e.err.Error()
}

func (e *downloadError) Unwrap() error {
	return e.err
}

// Env binds an executor to its surroundings: the pooled transport of the
// client or share it runs under, the client-wide resolve overrides and
// connect timeout, and an optional logger provider.
type Env struct {
	// Transport is the base pooled transport for requests carrying no
	// transport-level overrides. When nil, the share's pooled transport
	// or the process-wide default transport is used.
	Transport http.RoundTripper

	// TransportCfg configures the dedicated transports built for requests
	// carrying transport-level overrides (proxy, TLS policy, version).
	TransportCfg libtrp.Config

	// ResolveHosts are overrides applied to every request of this
	// environment, after the request's own overrides.
	ResolveHosts []ResolveHost

	// ConnectTimeout limits the connect phase of every request of this
	// environment that has no own connect timeout.
	ConnectTimeout time.Duration

	// Share is the optional share mounted into this environment.
	Share libshr.Share

	// Log provides the logger entry to trace transfers with, or nil.
	Log func() *logrus.Entry
}

// Executor binds one request to the transport and drives it to completion,
// building the response along the way. It is acquired by the client (or
// the synchronous Perform path) and recycled after use; it is not meant to
// be used directly by library users.
type Executor interface {
	// StartSync binds a caller-owned request for a synchronous drive.
	StartSync(req Request)

	// StartAsync takes ownership of a request for an asynchronous drive
	// and captures its completion handler as the sink.
	StartAsync(req Request)

	// Request returns the currently bound request.
	Request() Request

	// SetSink replaces the completion sink.
	SetSink(fct CompleteHandler)

	// TakeSink moves the completion sink out; a second take returns nil.
	TakeSink() CompleteHandler

	// HandlerProcessed reports whether the completion handler has already
	// been taken care of for this request.
	HandlerProcessed() bool

	// SetHandlerProcessed marks the completion handler as processed.
	SetHandlerProcessed()

	// Prepare applies every request field to the transport. A request
	// the transport cannot express fails here.
	Prepare() liberr.Error

	// Do drives the transfer on the calling goroutine. The budget, when
	// positive, bounds the whole transfer; sub-millisecond budgets round
	// up to one millisecond.
	Do(ctx context.Context, budget time.Duration) error

	// Response harvests the transfer outcome into a response, mapping
	// the given terminal error to the library status.
	Response(err error) libres.Response

	// TimesUpResponse stamps a synthetic gateway-timeout response with
	// the given total time.
	TimesUpResponse(total time.Duration) libres.Response

	// Reset frees the per-request state and readies the executor for
	// reuse.
	Reset()
}

// NewExecutor creates an executor bound to the given environment.
func NewExecutor(env Env) Executor {
	id, _ := libuid.GenerateUUID()

	return &exe{
		env: env,
		id:  id,
		ver: libhtt.Version1_1,
	}
}

type exe struct {
	env Env
	id  string

	req Request
	own bool

	snk CompleteHandler
	prc bool

	hcl *http.Client
	hrq *http.Request
	cls func()
	rsl []string
	hey *time.Duration
	cnc context.CancelCauseFunc

	ctr atomic.Uint32
	red uint32

	hdr []libhdr.Header
	bdy bytes.Buffer
	ver libhtt.Version
	cod int
	dur time.Duration

	ulT int64
	ulN atomic.Int64
	dlT atomic.Int64
	dlN atomic.Int64
}

func (o *exe) StartSync(req Request) {
	o.req = req
	o.own = false
}

func (o *exe) StartAsync(req Request) {
	o.req = req
	o.own = true
	o.snk = req.CompleteHandler()
}

func (o *exe) Request() Request {
	return o.req
}

func (o *exe) SetSink(fct CompleteHandler) {
	o.snk = fct
}

func (o *exe) TakeSink() CompleteHandler {
	fct := o.snk
	o.snk = nil
	return fct
}

func (o *exe) HandlerProcessed() bool {
	return o.prc
}

func (o *exe) SetHandlerProcessed() {
	o.prc = true
}

func (o *exe) Prepare() liberr.Error {
	if o.req == nil {
		return ErrorParamEmpty.Error(nil)
	}

	uri, err := url.Parse(o.req.URL())
	if err != nil {
		return ErrorURLInvalid.Error(err)
	} else if len(uri.Scheme) < 1 || len(uri.Host) < 1 {
		return ErrorURLInvalid.Error(nil)
	}

	if o.req.VerifySSLStatus() {
		// Certificate status checking (OCSP) is not exposed by the
		// transport; surface the capability gap here.
		return ErrorTLSStatusUnsupported.Error(nil)
	}

	var (
		bod io.Reader
		cln int64
		ctp string
		e   liberr.Error
	)

	if b := o.req.Body(); len(b) > 0 {
		bod = bytes.NewReader(b)
		cln = int64(len(b))
	} else if bod, cln, ctp, e = o.mimeBody(); e != nil {
		return e
	}

	req, err := http.NewRequest(o.req.Method().Std(), uri.String(), bod)
	if err != nil {
		return ErrorPrepareFailed.Error(err)
	}

	if len(ctp) > 0 {
		req.Header.Set("Content-Type", ctp)
	}

	for _, h := range o.req.Headers() {
		switch {
		case len(h.Value()) < 1:
			// An empty value strips the header, including the defaults
			// the transport adds on its own.
			req.Header.Del(h.Name())

			if strings.EqualFold(h.Name(), "User-Agent") {
				// The transport injects its default agent unless the
				// field exists empty.
				req.Header.Set("User-Agent", "")
			}
		case strings.EqualFold(h.Name(), "Host"):
			req.Host = h.Value()
		default:
			req.Header.Add(h.Name(), h.Value())
		}
	}

	if enc, ok := o.req.AcceptEncodings(); ok {
		if len(enc) > 0 {
			req.Header.Set("Accept-Encoding", strings.Join(enc, ", "))
		} else {
			// An empty list asks for every codec built into the
			// transport.
			req.Header.Set("Accept-Encoding", "gzip")
		}
	}

	if o.req.Version() == libhtt.Version1_0 {
		// The transport has no HTTP/1.0 request line; the closest
		// expression is 1.1 without connection reuse.
		req.Close = true
	}

	rt, cls, e := o.pickTransport()
	if e != nil {
		return e
	}

	o.cls = cls
	o.hcl = &http.Client{
		Transport:     rt,
		CheckRedirect: o.checkRedirect,
	}

	var rsl []string
	for _, rh := range o.req.ResolveHosts() {
		rsl = append(rsl, rh.String())
	}
	for _, rh := range o.env.ResolveHosts {
		rsl = append(rsl, rh.String())
	}
	o.rsl = rsl

	if d, ok := o.req.HappyEyeballsTimeout(); ok {
		o.hey = &d
	}

	o.ulT = cln
	o.hrq = req

	return nil
}

func (o *exe) mimeBody() (io.Reader, int64, string, liberr.Error) {
	mfs := o.req.MimeFields()
	if len(mfs) < 1 {
		return nil, 0, "", nil
	}

	buf := bytes.NewBuffer(make([]byte, 0, 1024))
	mpw := multipart.NewWriter(buf)

	for _, mf := range mfs {
		if mf.IsFile() {
			w, err := mpw.CreateFormFile(mf.Name(), filepath.Base(mf.FilePath()))
			if err != nil {
				return nil, 0, "", ErrorPrepareFailed.Error(err)
			}

			f, err := os.Open(mf.FilePath())
			if err != nil {
				return nil, 0, "", ErrorMimeFileNotFound.Error(err)
			}

			_, err = io.Copy(w, f)
			_ = f.Close()

			if err != nil {
				return nil, 0, "", ErrorPrepareFailed.Error(err)
			}
		} else if err := mpw.WriteField(mf.Name(), mf.Value()); err != nil {
			return nil, 0, "", ErrorPrepareFailed.Error(err)
		}
	}

	if err := mpw.Close(); err != nil {
		return nil, 0, "", ErrorPrepareFailed.Error(err)
	}

	return bytes.NewReader(buf.Bytes()), int64(buf.Len()), mpw.FormDataContentType(), nil
}

func (o *exe) pickTransport() (http.RoundTripper, func(), liberr.Error) {
	var (
		prx = o.req.Proxy()
		vrs = o.req.Version()
		tlc = !o.req.VerifySSLPeer() || !o.req.VerifySSLHost() || len(o.req.SSLCert()) > 0 || len(o.req.SSLKey()) > 0
	)

	if prx == nil && vrs == libhtt.VersionUseBest && !tlc {
		if o.env.Transport != nil {
			return o.env.Transport, nil, nil
		}

		if o.env.Share != nil && o.env.Share.Transport() != nil {
			return o.env.Share.Transport(), nil, nil
		}

		return libtrp.Global(), nil, nil
	}

	var (
		rsv libtrp.FctResolve
		ses tls.ClientSessionCache
	)

	if o.env.Share != nil {
		rsv = o.env.Share.Resolver()
		ses = o.env.Share.SessionCache()
	}

	if vrs == libhtt.Version2_0Only {
		t := libtrp.NewH2C(o.env.TransportCfg, rsv)
		return t, t.CloseIdleConnections, nil
	}

	cfg := o.env.TransportCfg

	if prx != nil {
		cfg.Proxy = prx.URL()
	}

	if vrs != libhtt.VersionUseBest {
		// HTTP/2 is enabled explicitly below for the 2.0 hints so the
		// 1.x hints stay on HTTP/1.1.
		cfg.DisableHTTP2 = true
	}

	t := libtrp.New(cfg, ses, rsv)

	if t.TLSClientConfig == nil {
		t.TLSClientConfig = &tls.Config{}
	}

	if !o.req.VerifySSLPeer() || !o.req.VerifySSLHost() {
		t.TLSClientConfig.InsecureSkipVerify = true
	}

	if len(o.req.SSLCert()) > 0 || len(o.req.SSLKey()) > 0 {
		if crt, e := o.loadClientCert(); e != nil {
			return nil, nil, e
		} else {
			t.TLSClientConfig.Certificates = []tls.Certificate{crt}
		}
	}

	if vrs == libhtt.Version2_0 || vrs == libhtt.Version2_0TLS {
		if e := libtrp.ConfigureHttp2(t); e != nil {
			return nil, nil, ErrorPrepareFailed.Error(e)
		}
	}

	return t, t.CloseIdleConnections, nil
}

func (o *exe) loadClientCert() (tls.Certificate, liberr.Error) {
	crt := o.req.SSLCert()
	key := o.req.SSLKey()

	if len(crt) < 1 {
		return tls.Certificate{}, ErrorTLSCertInvalid.Error(nil)
	}

	if len(key) < 1 {
		key = crt
	}

	if o.req.SSLCertType() == CertDER {
		return o.loadClientCertDER(crt, key)
	}

	cb, err := os.ReadFile(crt)
	if err != nil {
		return tls.Certificate{}, ErrorTLSCertInvalid.Error(err)
	}

	kb, err := os.ReadFile(key)
	if err != nil {
		return tls.Certificate{}, ErrorTLSCertInvalid.Error(err)
	}

	if pass := o.req.KeyPassword(); len(pass) > 0 {
		if kb, err = decryptKeyPEM(kb, pass); err != nil {
			return tls.Certificate{}, ErrorTLSCertInvalid.Error(err)
		}
	}

	c, err := tls.X509KeyPair(cb, kb)
	if err != nil {
		return tls.Certificate{}, ErrorTLSCertInvalid.Error(err)
	}

	return c, nil
}

func (o *exe) loadClientCertDER(crt, key string) (tls.Certificate, liberr.Error) {
	cb, err := os.ReadFile(crt)
	if err != nil {
		return tls.Certificate{}, ErrorTLSCertInvalid.Error(err)
	}

	kb, err := os.ReadFile(key)
	if err != nil {
		return tls.Certificate{}, ErrorTLSCertInvalid.Error(err)
	}

	leaf, err := x509.ParseCertificate(cb)
	if err != nil {
		return tls.Certificate{}, ErrorTLSCertInvalid.Error(err)
	}

	prv, err := parseKeyDER(kb)
	if err != nil {
		return tls.Certificate{}, ErrorTLSCertInvalid.Error(err)
	}

	return tls.Certificate{
		Certificate: [][]byte{cb},
		PrivateKey:  prv,
		Leaf:        leaf,
	}, nil
}

func parseKeyDER(der []byte) (any, error) {
	if k, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return k, nil
	}

	if k, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return k, nil
	}

	return x509.ParseECPrivateKey(der)
}

func decryptKeyPEM(kb []byte, pass string) ([]byte, error) {
	blk, _ := pem.Decode(kb)
	if blk == nil {
		return nil, errors.New("no pem block found in key file")
	}

	//nolint:staticcheck
	if !x509.IsEncryptedPEMBlock(blk) {
		return kb, nil
	}

	//nolint:staticcheck
	der, err := x509.DecryptPEMBlock(blk, []byte(pass))
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{Type: blk.Type, Bytes: der}), nil
}

func (o *exe) checkRedirect(req *http.Request, via []*http.Request) error {
	if !o.req.FollowRedirects() {
		return http.ErrUseLastResponse
	}

	if max := o.req.MaxRedirects(); max >= 0 && int64(len(via)) > max {
		return http.ErrUseLastResponse
	}

	o.red++

	return nil
}

func (o *exe) Do(ctx context.Context, budget time.Duration) error {
	if o.hrq == nil || o.hcl == nil {
		return ErrFailedToStart
	}

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cnl := context.WithCancelCause(ctx)
	o.cnc = cnl
	defer cnl(nil)

	if budget > 0 {
		if budget < time.Millisecond {
			budget = time.Millisecond
		}

		var tcl context.CancelFunc
		ctx, tcl = context.WithTimeout(ctx, budget)
		defer tcl()
	}

	if len(o.rsl) > 0 {
		ctx = libtrp.WithResolve(ctx, o.rsl)
	}

	if d, ok := o.req.ConnectTimeout(); ok {
		ctx = libtrp.WithConnectTimeout(ctx, d)
	} else if o.env.ConnectTimeout > 0 {
		ctx = libtrp.WithConnectTimeout(ctx, o.env.ConnectTimeout)
	}

	if o.hey != nil {
		ctx = libtrp.WithHappyEyeballs(ctx, *o.hey)
	}

	ctx = libtrp.WithConnCount(ctx, &o.ctr)

	req := o.hrq.WithContext(ctx)

	if fct := o.req.ProgressHandler(); fct != nil && req.Body != nil {
		req.Body = &uploadBody{src: req.Body, exe: o}
	}

	if l := o.log(); l != nil {
		l.WithFields(logrus.Fields{
			"method": o.req.Method().String(),
			"url":    o.req.URL(),
		}).Debug("transfer starting")
	}

	beg := time.Now()
	defer func() {
		o.dur = time.Since(beg)
	}()

	rsp, err := o.hcl.Do(req)
	if err != nil {
		if errors.Is(context.Cause(ctx), errProgressAborted) {
			return errProgressAborted
		}

		return err
	}

	defer func() {
		_ = rsp.Body.Close()
	}()

	o.cod = rsp.StatusCode
	o.ver = libhtt.VersionFromProto(rsp.ProtoMajor, rsp.ProtoMinor)
	o.storeHeaders(rsp.Header)

	if rsp.ContentLength > 0 {
		o.dlT.Store(rsp.ContentLength)
	}

	var src io.Reader = rsp.Body
	if fct := o.req.ProgressHandler(); fct != nil {
		src = &downloadReader{src: rsp.Body, exe: o}
	}

	if _, err = io.Copy(&o.bdy, src); err != nil {
		if errors.Is(context.Cause(ctx), errProgressAborted) {
			return errProgressAborted
		}

		if errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return &downloadError{err: err}
	}

	// An abort decided on the very last progress call may land after the
	// body is fully read; it still wins over the success outcome.
	if errors.Is(context.Cause(ctx), errProgressAborted) {
		return errProgressAborted
	}

	return nil
}

// storeHeaders flattens the received header map into the ordered header
// list of the response. Names are sorted so the dump output stays stable.
func (o *exe) storeHeaders(hdr http.Header) {
	keys := make([]string, 0, len(hdr))
	for k := range hdr {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range hdr[k] {
			o.hdr = append(o.hdr, libhdr.New(k, v))
		}
	}
}

func (o *exe) Response(err error) libres.Response {
	sts := convert(err)
	cod := libhtt.ParseStatusCode(o.cod)

	if sts == libsts.ErrorFailedToStart && cod == libhtt.StatusUnknown {
		// No wire outcome exists for a request that never started; a 500
		// isn't perfect but better than nothing.
		cod = libhtt.Status500InternalServerError
	}

	if l := o.log(); l != nil {
		l.WithFields(logrus.Fields{
			"status": sts.String(),
			"code":   cod.Int(),
			"time":   o.dur.String(),
		}).Debug("transfer completed")
	}

	return libres.New(libres.Data{
		Result:       sts,
		Code:         cod,
		Version:      o.ver,
		Headers:      o.hdr,
		Body:         append([]byte(nil), o.bdy.Bytes()...),
		TotalTime:    clampTotalTime(o.dur),
		NumConnects:  sat8(o.ctr.Load()),
		NumRedirects: sat8(o.red),
	})
}

// TimesUpResponse builds its synthetic outcome from constants only: the
// underlying transfer may still be mutating the harvest fields while the
// user visible timeout is delivered.
func (o *exe) TimesUpResponse(total time.Duration) libres.Response {
	return libres.New(libres.Data{
		Result:       libsts.Timeout,
		Code:         libhtt.Status504GatewayTimeout,
		Version:      libhtt.Version1_1,
		TotalTime:    clampTotalTime(total),
		NumConnects:  0,
		NumRedirects: 0,
	})
}

func (o *exe) Reset() {
	if o.cls != nil {
		o.cls()
		o.cls = nil
	}

	o.req = nil
	o.own = false
	o.snk = nil
	o.prc = false

	o.hcl = nil
	o.hrq = nil
	o.rsl = nil
	o.hey = nil
	o.cnc = nil

	o.ctr.Store(0)
	o.red = 0

	o.hdr = nil
	o.bdy.Reset()
	o.ver = libhtt.Version1_1
	o.cod = 0
	o.dur = 0

	o.ulT = 0
	o.ulN.Store(0)
	o.dlT.Store(0)
	o.dlN.Store(0)
}

func (o *exe) log() *logrus.Entry {
	if o.env.Log == nil {
		return nil
	}

	if l := o.env.Log(); l != nil {
		return l.WithField("transfer", o.id)
	}

	return nil
}

func (o *exe) fireProgress() {
	fct := o.req.ProgressHandler()
	if fct == nil {
		return
	}

	if !fct(o.dlN.Load(), o.dlT.Load(), o.ulN.Load(), o.ulT) {
		if o.cnc != nil {
			o.cnc(errProgressAborted)
		}
	}
}

type uploadBody struct {
	src io.ReadCloser
	exe *exe
}

func (u *uploadBody) Read(p []byte) (int, error) {
	n, err := u.src.Read(p)

	if n > 0 {
		u.exe.ulN.Add(int64(n))
		u.exe.fireProgress()
	}

	return n, err
}

func (u *uploadBody) Close() error {
	return u.src.Close()
}

type downloadReader struct {
	src io.Reader
	exe *exe
}

func (d *downloadReader) Read(p []byte) (int, error) {
	n, err := d.src.Read(p)

	if n > 0 {
		d.exe.dlN.Add(int64(n))
		d.exe.fireProgress()
	}

	return n, err
}

// convert maps a terminal transport error into the library status.
func convert(err error) libsts.Status {
	if err == nil {
		return libsts.Success
	}

	if errors.Is(err, ErrFailedToStart) {
		return libsts.ErrorFailedToStart
	}

	if errors.Is(err, errProgressAborted) {
		return libsts.Error
	}

	var dle *downloadError
	if errors.As(err, &dle) {
		return libsts.DownloadError
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return libsts.Timeout
	}

	var dns *net.DNSError
	if errors.As(err, &dns) {
		return libsts.ConnectDNSError
	}

	var (
		cve *tls.CertificateVerificationError
		rhe tls.RecordHeaderError
		uae x509.UnknownAuthorityError
		hne x509.HostnameError
		cie x509.CertificateInvalidError
	)

	if errors.As(err, &cve) || errors.As(err, &rhe) || errors.As(err, &uae) || errors.As(err, &hne) || errors.As(err, &cie) {
		return libsts.ConnectSSLError
	}

	var ope *net.OpError
	if errors.As(err, &ope) && ope.Op == "dial" {
		return libsts.ConnectError
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return libsts.ResponseEmpty
	}

	return libsts.Error
}

func sat8(v uint32) uint8 {
	if v >= math.MaxUint8 {
		return math.MaxUint8
	}

	return uint8(v)
}

func clampTotalTime(d time.Duration) time.Duration {
	if d.Milliseconds() > math.MaxUint32 {
		return time.Duration(math.MaxUint32) * time.Millisecond
	}

	return d
}
