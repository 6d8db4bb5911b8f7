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

package client_test

import (
	"sync/atomic"
	"time"

	libcli "github.com/nabbar/golift/client"
	librqs "github.com/nabbar/golift/request"
	libres "github.com/nabbar/golift/response"
	libshr "github.com/nabbar/golift/share"
	libsts "github.com/nabbar/golift/status"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client with Share", func() {
	Context("Two clients sharing everything", func() {
		It("must deliver every completion across both clients", func() {
			const perClient = 50

			shr := libshr.New(libshr.OptAll)
			defer func() {
				_ = shr.Close()
			}()

			c1, err := libcli.New(ctx, libcli.Options{}, shr, nil, nil)
			Expect(err).To(BeNil())
			c2, err := libcli.New(ctx, libcli.Options{}, shr, nil, nil)
			Expect(err).To(BeNil())

			defer func() {
				_ = c1.Close()
				_ = c2.Close()
			}()

			var count atomic.Int64
			done := make(chan struct{}, 2*perClient)

			fct := func(req librqs.Request, rsp libres.Response) {
				if rsp.Result() == libsts.Success {
					count.Add(1)
				}
				done <- struct{}{}
			}

			for _, c := range []libcli.Client{c1, c2} {
				reqs := make([]librqs.Request, 0, perClient)
				for i := 0; i < perClient; i++ {
					r := librqs.New("http://" + srvAddr + "/")
					r.SetTimeout(2 * time.Second)
					reqs = append(reqs, r)
				}
				Expect(c.StartRequestsFunc(reqs, fct)).To(BeNil())
			}

			for i := 0; i < 2*perClient; i++ {
				Eventually(done, 10*time.Second).Should(Receive())
			}

			Expect(count.Load()).To(Equal(int64(2 * perClient)))
			Eventually(c1.Empty, 5*time.Second, 10*time.Millisecond).Should(BeTrue())
			Eventually(c2.Empty, 5*time.Second, 10*time.Millisecond).Should(BeTrue())
		})
	})

	Context("Thread hook", func() {
		It("must call the hook on loop start and stop", func() {
			var started, stopped atomic.Int32

			c, err := libcli.New(ctx, libcli.Options{}, nil, func(start bool) {
				if start {
					started.Add(1)
				} else {
					stopped.Add(1)
				}
			}, nil)
			Expect(err).To(BeNil())
			Expect(started.Load()).To(Equal(int32(1)))

			Expect(c.Close()).ToNot(HaveOccurred())
			Eventually(stopped.Load, time.Second).Should(Equal(int32(1)))
		})
	})
})
