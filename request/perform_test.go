/*
 *  MIT License
 *
 *  Copyright (c) 2024 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

package request_test

import (
	libhtt "github.com/nabbar/golift/httptype"
	librqs "github.com/nabbar/golift/request"
	libshr "github.com/nabbar/golift/share"
	libsts "github.com/nabbar/golift/status"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Perform", func() {
	Context("Simple synchronous requests", func() {
		It("must succeed with a 200 on the root", func() {
			r := librqs.New("http://" + srvAddr + "/")

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.Success))
			Expect(rsp.StatusCode()).To(Equal(libhtt.Status200OK))
			Expect(rsp.Body()).ToNot(BeEmpty())
			Expect(rsp.NumConnects()).To(BeNumerically(">=", 1))
		})
		It("must succeed with a 404 on a missing path", func() {
			r := librqs.New("http://" + srvAddr + "/not/here")

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.Success))
			Expect(rsp.StatusCode()).To(Equal(libhtt.Status404NotFound))
		})
		It("must return no body for a HEAD", func() {
			r := librqs.New("http://" + srvAddr + "/")
			r.SetMethod(libhtt.MethodHead)

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.Success))
			Expect(rsp.StatusCode()).To(Equal(libhtt.Status200OK))
			Expect(rsp.Body()).To(BeEmpty())
		})
	})

	Context("POST rejection", func() {
		It("must surface a 405 when posting where it is not allowed", func() {
			r := librqs.New("http://" + srvAddr + "/no-post")
			Expect(r.SetBody([]byte("payload"))).To(BeNil())
			r.RemoveHeader("Expect")

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.Success))
			Expect(rsp.StatusCode()).To(Equal(libhtt.Status405MethodNotAllowed))
		})
	})

	Context("Redirect policy", func() {
		It("must surface the first response when redirects are blocked", func() {
			r := librqs.New("http://" + srvAddr + "/redirect")
			r.SetFollowRedirects(true, 0)

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.Success))
			Expect(rsp.StatusCode()).To(Equal(libhtt.Status302Found))
			Expect(rsp.NumRedirects()).To(Equal(uint8(0)))
		})
		It("must follow the redirect by default", func() {
			r := librqs.New("http://" + srvAddr + "/redirect")

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.StatusCode()).To(Equal(libhtt.Status200OK))
			Expect(rsp.NumRedirects()).To(Equal(uint8(1)))
		})
	})

	Context("Connect errors", func() {
		It("must report a dns failure", func() {
			r := librqs.New("http://host.that.does.not.resolve.invalid/")

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.ConnectDNSError))
		})
		It("must report a refused connection", func() {
			r := librqs.New("http://127.0.0.1:1/")

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.ConnectError))
		})
	})

	Context("With a share", func() {
		It("must reuse the share across synchronous requests", func() {
			shr := libshr.New(libshr.OptAll)
			defer func() {
				_ = shr.Close()
			}()

			for i := 0; i < 3; i++ {
				r := librqs.New("http://" + srvAddr + "/")

				rsp, err := r.Perform(ctx, shr)
				Expect(err).To(BeNil())
				Expect(rsp.Result()).To(Equal(libsts.Success))
				Expect(rsp.StatusCode()).To(Equal(libhtt.Status200OK))
			}
		})
	})

	Context("Prepare failures", func() {
		It("must fail to start on an unparsable url", func() {
			r := librqs.New("not a url at all")

			rsp, err := r.Perform(ctx, nil)
			Expect(err).ToNot(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.ErrorFailedToStart))
			Expect(rsp.StatusCode()).To(Equal(libhtt.Status500InternalServerError))
		})
	})

	Context("Transfer progress", func() {
		It("must observe download progress and allow completion", func() {
			var calls int

			r := librqs.New("http://" + srvAddr + "/")
			r.OnTransferProgress(func(dlNow, dlTotal, ulNow, ulTotal int64) bool {
				calls++
				return true
			})

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.Success))
			Expect(calls).To(BeNumerically(">=", 1))
		})
		It("must abort the transfer when the handler says stop", func() {
			r := librqs.New("http://" + srvAddr + "/")
			r.OnTransferProgress(func(dlNow, dlTotal, ulNow, ulTotal int64) bool {
				return false
			})

			rsp, err := r.Perform(ctx, nil)
			Expect(err).To(BeNil())
			Expect(rsp.Result()).To(Equal(libsts.Error))
		})
	})
})
