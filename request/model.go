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
	"time"

	liberr "github.com/nabbar/golib/errors"
	libhdr "github.com/nabbar/golift/header"
	libhtt "github.com/nabbar/golift/httptype"
)

type rqs struct {
	url string
	mtd libhtt.Method
	vrs libhtt.Version

	flw bool
	mrd int64

	vfp bool
	vfh bool
	vfs bool
	crt string
	crv CertType
	key string
	kpw string

	prx *Proxy

	enc    []string
	encSet bool

	rsv []ResolveHost
	hdr []libhdr.Header

	bdy    []byte
	bdySet bool
	mim    []MimeField
	mimSet bool

	tmo *time.Duration
	cto *time.Duration
	hey *time.Duration

	fcp ProgressHandler
	fcc CompleteHandler
}

func (r *rqs) Clone() Request {
	n := &rqs{}
	*n = *r

	if r.prx != nil {
		p := *r.prx
		p.AuthTypes = append([]AuthType(nil), r.prx.AuthTypes...)
		n.prx = &p
	}

	n.enc = append([]string(nil), r.enc...)
	n.rsv = append([]ResolveHost(nil), r.rsv...)
	n.hdr = append([]libhdr.Header(nil), r.hdr...)
	n.bdy = append([]byte(nil), r.bdy...)
	n.mim = append([]MimeField(nil), r.mim...)

	if r.tmo != nil {
		d := *r.tmo
		n.tmo = &d
	}

	if r.cto != nil {
		d := *r.cto
		n.cto = &d
	}

	if r.hey != nil {
		d := *r.hey
		n.hey = &d
	}

	return n
}

func (r *rqs) URL() string {
	return r.url
}

func (r *rqs) SetURL(uri string) {
	r.url = uri
}

func (r *rqs) Method() libhtt.Method {
	return r.mtd
}

func (r *rqs) SetMethod(mtd libhtt.Method) {
	r.mtd = mtd
}

func (r *rqs) Version() libhtt.Version {
	return r.vrs
}

func (r *rqs) SetVersion(vrs libhtt.Version) {
	r.vrs = vrs
}

func (r *rqs) FollowRedirects() bool {
	return r.flw
}

func (r *rqs) MaxRedirects() int64 {
	return r.mrd
}

func (r *rqs) SetFollowRedirects(follow bool, max ...uint64) {
	r.flw = follow

	if !follow {
		return
	}

	if len(max) > 0 {
		r.mrd = int64(max[0])
	} else {
		r.mrd = -1
	}
}

func (r *rqs) VerifySSLPeer() bool {
	return r.vfp
}

func (r *rqs) SetVerifySSLPeer(verify bool) {
	r.vfp = verify
}

func (r *rqs) VerifySSLHost() bool {
	return r.vfh
}

func (r *rqs) SetVerifySSLHost(verify bool) {
	r.vfh = verify
}

func (r *rqs) VerifySSLStatus() bool {
	return r.vfs
}

func (r *rqs) SetVerifySSLStatus(verify bool) {
	r.vfs = verify
}

func (r *rqs) SSLCert() string {
	return r.crt
}

func (r *rqs) SetSSLCert(path string) {
	r.crt = path
}

func (r *rqs) SSLCertType() CertType {
	return r.crv
}

func (r *rqs) SetSSLCertType(t CertType) {
	r.crv = t
}

func (r *rqs) SSLKey() string {
	return r.key
}

func (r *rqs) SetSSLKey(path string) {
	r.key = path
}

func (r *rqs) KeyPassword() string {
	return r.kpw
}

func (r *rqs) SetKeyPassword(password string) {
	r.kpw = password
}

func (r *rqs) Proxy() *Proxy {
	return r.prx
}

func (r *rqs) SetProxy(prx Proxy) {
	r.prx = &prx
}

func (r *rqs) AcceptEncodings() ([]string, bool) {
	return r.enc, r.encSet
}

func (r *rqs) SetAcceptEncoding(encodings []string) {
	r.enc = encodings
	r.encSet = true
}

func (r *rqs) AcceptEncodingAllAvailable() {
	r.enc = []string{}
	r.encSet = true
}

func (r *rqs) ResolveHosts() []ResolveHost {
	return r.rsv
}

func (r *rqs) AddResolveHost(rsv ResolveHost) {
	r.rsv = append(r.rsv, rsv)
}

func (r *rqs) ClearResolveHosts() {
	r.rsv = nil
}

func (r *rqs) Headers() []libhdr.Header {
	return r.hdr
}

func (r *rqs) AddHeader(name, value string) {
	r.hdr = append(r.hdr, libhdr.New(name, value))
}

func (r *rqs) RemoveHeader(name string) {
	r.AddHeader(name, "")
}

func (r *rqs) ClearHeaders() {
	r.hdr = nil
}

func (r *rqs) Body() []byte {
	return r.bdy
}

func (r *rqs) SetBody(data []byte) liberr.Error {
	if r.mimSet {
		return ErrorBodyMimeExclusive.Error(nil)
	}

	r.bdy = data
	r.bdySet = true
	r.mtd = libhtt.MethodPost

	return nil
}

func (r *rqs) MimeFields() []MimeField {
	return r.mim
}

func (r *rqs) AddMimeField(mf MimeField) liberr.Error {
	if r.bdySet {
		return ErrorBodyMimeExclusive.Error(nil)
	}

	r.mim = append(r.mim, mf)
	r.mimSet = true

	return nil
}

func (r *rqs) Timeout() (time.Duration, bool) {
	if r.tmo == nil {
		return 0, false
	}

	return *r.tmo, true
}

func (r *rqs) SetTimeout(d time.Duration) {
	r.tmo = &d
}

func (r *rqs) ClearTimeout() {
	r.tmo = nil
}

func (r *rqs) ConnectTimeout() (time.Duration, bool) {
	if r.cto == nil {
		return 0, false
	}

	return *r.cto, true
}

func (r *rqs) SetConnectTimeout(d time.Duration) {
	r.cto = &d
}

func (r *rqs) ClearConnectTimeout() {
	r.cto = nil
}

func (r *rqs) HappyEyeballsTimeout() (time.Duration, bool) {
	if r.hey == nil {
		return 0, false
	}

	return *r.hey, true
}

func (r *rqs) SetHappyEyeballsTimeout(d time.Duration) {
	r.hey = &d
}

func (r *rqs) ClearHappyEyeballsTimeout() {
	r.hey = nil
}

func (r *rqs) OnComplete(fct CompleteHandler) {
	r.fcc = fct
}

func (r *rqs) CompleteHandler() CompleteHandler {
	return r.fcc
}

func (r *rqs) OnTransferProgress(fct ProgressHandler) {
	r.fcp = fct
}

func (r *rqs) ProgressHandler() ProgressHandler {
	return r.fcp
}
