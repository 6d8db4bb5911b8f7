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
	libhtt "github.com/nabbar/golift/httptype"
	librqs "github.com/nabbar/golift/request"
	libres "github.com/nabbar/golift/response"
	libsts "github.com/nabbar/golift/status"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newClient() libcli.Client {
	c, err := libcli.New(ctx, libcli.Options{}, nil, nil, nil)
	Expect(err).To(BeNil())
	Expect(c.IsRunning()).To(BeTrue())
	return c
}

var _ = Describe("Client", func() {
	Context("Single asynchronous request", func() {
		It("must fulfill the future with a 200", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			fut, err := c.StartRequest(librqs.New("http://" + srvAddr + "/"))
			Expect(err).To(BeNil())

			res := <-fut
			Expect(res.Request).ToNot(BeNil())
			Expect(res.Response.Result()).To(Equal(libsts.Success))
			Expect(res.Response.StatusCode()).To(Equal(libhtt.Status200OK))
		})
		It("must invoke the callback with a 404 on a missing path", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			done := make(chan libres.Response, 1)

			err := c.StartRequestFunc(librqs.New("http://"+srvAddr+"/not/here"), func(req librqs.Request, rsp libres.Response) {
				done <- rsp
			})
			Expect(err).To(BeNil())

			rsp := <-done
			Expect(rsp.Result()).To(Equal(libsts.Success))
			Expect(rsp.StatusCode()).To(Equal(libhtt.Status404NotFound))
		})
		It("must reject a nil request or a nil callback", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			_, err := c.StartRequest(nil)
			Expect(err).ToNot(BeNil())

			Expect(c.StartRequestFunc(nil, func(librqs.Request, libres.Response) {})).ToNot(BeNil())
			Expect(c.StartRequestFunc(librqs.New("http://"+srvAddr+"/"), nil)).ToNot(BeNil())
		})
	})

	Context("Batched requests", func() {
		It("must complete one hundred concurrent requests then drain", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			reqs := make([]librqs.Request, 0, 100)
			for i := 0; i < 100; i++ {
				r := librqs.New("http://" + srvAddr + "/")
				r.SetTimeout(time.Second)
				reqs = append(reqs, r)
			}

			fut, err := c.StartRequests(reqs)
			Expect(err).To(BeNil())
			Expect(fut).To(HaveLen(100))

			for _, f := range fut {
				res := <-f
				Expect(res.Response.Result()).To(Equal(libsts.Success))
				Expect(res.Response.StatusCode()).To(Equal(libhtt.Status200OK))
			}

			Eventually(c.Empty, 5*time.Second, 10*time.Millisecond).Should(BeTrue())
		})
		It("must skip nil entries but complete every other one", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			var count atomic.Int32
			done := make(chan struct{}, 8)

			reqs := []librqs.Request{
				librqs.New("http://" + srvAddr + "/"),
				nil,
				librqs.New("http://" + srvAddr + "/not/here"),
				nil,
				librqs.New("http://" + srvAddr + "/"),
			}

			err := c.StartRequestsFunc(reqs, func(req librqs.Request, rsp libres.Response) {
				count.Add(1)
				done <- struct{}{}
			})
			Expect(err).To(BeNil())

			for i := 0; i < 3; i++ {
				Eventually(done, 5*time.Second).Should(Receive())
			}
			Expect(count.Load()).To(Equal(int32(3)))
		})
	})

	Context("Two-tier timeouts", func() {
		It("must deliver the user timeout while the connect budget keeps running", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			r := librqs.New("http://" + srvAddr + "/slow")
			r.SetTimeout(5 * time.Millisecond)
			r.SetConnectTimeout(time.Second)

			fut, err := c.StartRequest(r)
			Expect(err).To(BeNil())

			res := <-fut
			Expect(res.Response.Result()).To(Equal(libsts.Timeout))
			Expect(res.Response.StatusCode()).To(Equal(libhtt.Status504GatewayTimeout))
			Expect(res.Response.TotalTime()).To(Equal(5 * time.Millisecond))
			Expect(res.Response.NumConnects()).To(Equal(uint8(0)))
			Expect(res.Response.NumRedirects()).To(Equal(uint8(0)))

			// The transfer is still winding down in the background.
			Eventually(c.Empty, 5*time.Second, 10*time.Millisecond).Should(BeTrue())
		})
		It("must stamp each request with its own timeout", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			r1 := librqs.New("http://" + srvAddr + "/slow")
			r1.SetTimeout(5 * time.Millisecond)
			r1.SetConnectTimeout(time.Second)

			r2 := librqs.New("http://" + srvAddr + "/slow")
			r2.SetTimeout(10 * time.Millisecond)
			r2.SetConnectTimeout(time.Second)

			fut, err := c.StartRequests([]librqs.Request{r1, r2})
			Expect(err).To(BeNil())

			res1 := <-fut[0]
			res2 := <-fut[1]

			Expect(res1.Response.Result()).To(Equal(libsts.Timeout))
			Expect(res1.Response.TotalTime()).To(Equal(5 * time.Millisecond))
			Expect(res2.Response.Result()).To(Equal(libsts.Timeout))
			Expect(res2.Response.TotalTime()).To(Equal(10 * time.Millisecond))

			Eventually(c.Empty, 5*time.Second, 10*time.Millisecond).Should(BeTrue())
		})
		It("must not hang on a zero timeout", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			r := librqs.New("http://" + srvAddr + "/slow")
			r.SetTimeout(0)
			r.SetConnectTimeout(time.Second)

			fut, err := c.StartRequest(r)
			Expect(err).To(BeNil())

			res := <-fut
			Expect(res.Response.Result()).To(Equal(libsts.Timeout))
			Expect(res.Response.StatusCode()).To(Equal(libhtt.Status504GatewayTimeout))
			Expect(res.Response.TotalTime()).To(BeNumerically("<=", time.Millisecond))

			Eventually(c.Empty, 5*time.Second, 10*time.Millisecond).Should(BeTrue())
		})
		It("must let the transport enforce a plain total timeout", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			r := librqs.New("http://" + srvAddr + "/slow")
			r.SetTimeout(10 * time.Millisecond)

			fut, err := c.StartRequest(r)
			Expect(err).To(BeNil())

			res := <-fut
			Expect(res.Response.Result()).To(Equal(libsts.Timeout))
		})
	})

	Context("Stopping", func() {
		It("must reject new requests with a failed start", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			c.Stop()
			Expect(c.IsStopping()).To(BeTrue())

			done := make(chan libres.Response, 1)

			err := c.StartRequestFunc(librqs.New("http://"+srvAddr+"/"), func(req librqs.Request, rsp libres.Response) {
				done <- rsp
			})
			Expect(err).To(BeNil())

			rsp := <-done
			Expect(rsp.Result()).To(Equal(libsts.ErrorFailedToStart))
			Expect(rsp.StatusCode()).To(Equal(libhtt.Status500InternalServerError))
		})
		It("must report empty after close", func() {
			c := newClient()

			fut, err := c.StartRequest(librqs.New("http://" + srvAddr + "/"))
			Expect(err).To(BeNil())

			<-fut

			Expect(c.Close()).ToNot(HaveOccurred())
			Expect(c.Size()).To(Equal(0))
			Expect(c.IsRunning()).To(BeFalse())
		})
	})

	Context("Failed start on the loop", func() {
		It("must complete a request with an unparsable url through the sink", func() {
			c := newClient()
			defer func() {
				_ = c.Close()
			}()

			fut, err := c.StartRequest(librqs.New("not a url at all"))
			Expect(err).To(BeNil())

			res := <-fut
			Expect(res.Response.Result()).To(Equal(libsts.ErrorFailedToStart))
			Expect(res.Response.StatusCode()).To(Equal(libhtt.Status500InternalServerError))

			Eventually(c.Empty, 5*time.Second, 10*time.Millisecond).Should(BeTrue())
		})
	})
})
